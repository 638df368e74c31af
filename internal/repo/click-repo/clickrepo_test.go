package clickrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smilaev/refledger/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindActive(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Active click exists",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "member_id", "fingerprint", "ip_hash", "user_agent", "created_at", "expires_at"}).
					AddRow(1, 9, "fp_1", "ab12", "Mozilla/5.0", now.Add(-time.Hour), now.Add(29*24*time.Hour))
				mock.ExpectQuery(regexp.QuoteMeta("WHERE member_id = $1 AND fingerprint = $2 AND expires_at > $3")).
					WithArgs(9, "fp_1", now).
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name: "No unexpired click",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE member_id = $1 AND fingerprint = $2 AND expires_at > $3")).
					WithArgs(9, "fp_1", now).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE member_id = $1 AND fingerprint = $2 AND expires_at > $3")).
					WithArgs(9, "fp_1", now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			click, err := repo.FindActive(context.Background(), 9, "fp_1", now)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if !tt.found {
				assert.Nil(t, click)
				return
			}
			require.NotNil(t, click)
			assert.Equal(t, 1, click.ID)
			assert.Equal(t, "fp_1", click.Fingerprint)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	click := &domain.AttributionClick{
		MemberID:    9,
		Fingerprint: "fp_1",
		IPHash:      "ab12",
		UserAgent:   "Mozilla/5.0",
		CreatedAt:   now,
		ExpiresAt:   now.Add(30 * 24 * time.Hour),
	}

	t.Run("Successful save assigns the id", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO attribution_clicks")).
			WithArgs(9, "fp_1", "ab12", "Mozilla/5.0", click.CreatedAt, click.ExpiresAt).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(3))

		require.NoError(t, repo.Save(context.Background(), click))
		assert.Equal(t, 3, click.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO attribution_clicks")).
			WithArgs(9, "fp_1", "ab12", "Mozilla/5.0", click.CreatedAt, click.ExpiresAt).
			WillReturnError(errors.New("database error"))

		require.Error(t, repo.Save(context.Background(), click))
	})
}

func TestRepository_CountActiveByMember(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Counts unexpired clicks", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE member_id = $1 AND expires_at > $2")).
			WithArgs(9, now).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(6))

		count, err := repo.CountActiveByMember(context.Background(), 9, now)
		require.NoError(t, err)
		assert.Equal(t, 6, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE member_id = $1 AND expires_at > $2")).
			WithArgs(9, now).
			WillReturnError(errors.New("database error"))

		count, err := repo.CountActiveByMember(context.Background(), 9, now)
		require.Error(t, err)
		assert.Zero(t, count)
	})
}
