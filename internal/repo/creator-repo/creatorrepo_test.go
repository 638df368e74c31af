package creatorrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/smilaev/refledger/internal/domain"
	"github.com/smilaev/refledger/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	t.Run("Creator exists", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{
			"id", "name", "total_revenue", "monthly_revenue",
			"tier1_threshold", "tier2_threshold", "tier3_threshold", "tier4_threshold",
			"tier1_reward", "tier2_reward", "tier3_reward", "tier4_reward",
			"created_at",
		}).AddRow(
			7, "studio", decimal.RequireFromString("1200"), decimal.RequireFromString("300"),
			5, 15, 50, 150,
			"badge", "shoutout", "merch", "call",
			now,
		)
		mock.ExpectQuery(regexp.QuoteMeta("FROM creators")).
			WithArgs(7).
			WillReturnRows(rows)

		creator, err := repo.FindByID(context.Background(), 7)
		require.NoError(t, err)
		require.NotNil(t, creator)
		assert.Equal(t, "studio", creator.Name)
		assert.Equal(t, 15, creator.TierThresholds.Tier2)
		assert.Equal(t, "merch", creator.TierThresholds.Tier3Reward)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Creator does not exist", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM creators")).
			WithArgs(8).
			WillReturnError(pgx.ErrNoRows)

		creator, err := repo.FindByID(context.Background(), 8)
		require.NoError(t, err)
		assert.Nil(t, creator)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM creators")).
			WithArgs(7).
			WillReturnError(errors.New("database error"))

		creator, err := repo.FindByID(context.Background(), 7)
		require.Error(t, err)
		assert.Nil(t, creator)
	})
}

func TestRepository_AddRevenue(t *testing.T) {
	repo, mock, tx := NewMock(t)

	t.Run("Positive delta", func(t *testing.T) {
		delta := decimal.RequireFromString("70")
		tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			mock.ExpectExec(regexp.QuoteMeta("SET total_revenue = total_revenue + $1")).
				WithArgs(delta, 7).
				WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			return fn(ctx)
		})

		require.NoError(t, repo.AddRevenue(context.Background(), 7, delta))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		delta := decimal.RequireFromString("-70")
		tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			mock.ExpectExec(regexp.QuoteMeta("SET total_revenue = total_revenue + $1")).
				WithArgs(delta, 7).
				WillReturnError(errors.New("database error"))
			return fn(ctx)
		})

		require.Error(t, repo.AddRevenue(context.Background(), 7, delta))
	})
}

func TestRepository_UpdateTierThresholds(t *testing.T) {
	repo, mock, tx := NewMock(t)
	thresholds := &domain.TierThresholds{
		Tier1: 5, Tier2: 15, Tier3: 50, Tier4: 150,
		Tier1Reward: "badge", Tier2Reward: "shoutout", Tier3Reward: "merch", Tier4Reward: "call",
	}

	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
		mock.ExpectExec(regexp.QuoteMeta("SET tier1_threshold = $1")).
			WithArgs(5, 15, 50, 150, "badge", "shoutout", "merch", "call", 7).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		return fn(ctx)
	})

	require.NoError(t, repo.UpdateTierThresholds(context.Background(), 7, thresholds))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListIDs(t *testing.T) {
	repo, mock, _ := NewMock(t)

	t.Run("Lists creator ids in order", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id"}).AddRow(1).AddRow(2).AddRow(7)
		mock.ExpectQuery(regexp.QuoteMeta("FROM creators")).
			WillReturnRows(rows)

		ids, err := repo.ListIDs(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 7}, ids)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM creators")).
			WillReturnError(errors.New("database error"))

		ids, err := repo.ListIDs(context.Background())
		require.Error(t, err)
		assert.Nil(t, ids)
	})
}
