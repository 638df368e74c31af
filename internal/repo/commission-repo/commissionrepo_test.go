package commissionrepo

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

func commissionRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "payment_id", "creator_id", "buyer_member_id", "referrer_member_id",
		"sale_amount", "member_share", "creator_share", "platform_share",
		"payment_type", "status", "created_at",
	})
}

func TestRepository_FindByPaymentID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	referrer := 9
	tests := []struct {
		name      string
		paymentID string
		mockSetup func()
		expectErr bool
		result    *domain.Commission
	}{
		{
			name:      "Commission exists",
			paymentID: "pay_1",
			mockSetup: func() {
				rows := commissionRows().AddRow(
					1, "pay_1", 7, 4, &referrer,
					decimal.RequireFromString("100"), decimal.RequireFromString("10"),
					decimal.RequireFromString("70"), decimal.RequireFromString("20"),
					"subscription", domain.CommissionStatusPending, now,
				)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE payment_id = $1")).
					WithArgs("pay_1").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Commission{
				ID:               1,
				PaymentID:        "pay_1",
				CreatorID:        7,
				BuyerMemberID:    4,
				ReferrerMemberID: &referrer,
				SaleAmount:       decimal.RequireFromString("100"),
				MemberShare:      decimal.RequireFromString("10"),
				CreatorShare:     decimal.RequireFromString("70"),
				PlatformShare:    decimal.RequireFromString("20"),
				PaymentType:      "subscription",
				Status:           domain.CommissionStatusPending,
				CreatedAt:        now,
			},
		},
		{
			name:      "Commission does not exist",
			paymentID: "pay_missing",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE payment_id = $1")).
					WithArgs("pay_missing").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:      "Database error",
			paymentID: "pay_1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE payment_id = $1")).
					WithArgs("pay_1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			commission, err := repo.FindByPaymentID(context.Background(), tt.paymentID)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.result, commission)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_InsertOrGet(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	commission := &domain.Commission{
		PaymentID:     "pay_1",
		CreatorID:     7,
		BuyerMemberID: 4,
		SaleAmount:    decimal.RequireFromString("100"),
		MemberShare:   decimal.Zero,
		CreatorShare:  decimal.RequireFromString("80"),
		PlatformShare: decimal.RequireFromString("20"),
		PaymentType:   "subscription",
		Status:        domain.CommissionStatusPending,
		CreatedAt:     now,
	}
	insertArgs := []interface{}{
		"pay_1", 7, 4, (*int)(nil),
		decimal.RequireFromString("100"), decimal.Zero,
		decimal.RequireFromString("80"), decimal.RequireFromString("20"),
		"subscription", domain.CommissionStatusPending, now,
	}

	t.Run("Inserts new commission", func(t *testing.T) {
		rows := commissionRows().AddRow(
			1, "pay_1", 7, 4, nil,
			decimal.RequireFromString("100"), decimal.Zero,
			decimal.RequireFromString("80"), decimal.RequireFromString("20"),
			"subscription", domain.CommissionStatusPending, now,
		)
		mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (payment_id) DO NOTHING")).
			WithArgs(insertArgs...).
			WillReturnRows(rows)

		inserted, created, err := repo.InsertOrGet(context.Background(), commission)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, 1, inserted.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Conflict returns the existing row", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (payment_id) DO NOTHING")).
			WithArgs(insertArgs...).
			WillReturnError(pgx.ErrNoRows)
		existing := commissionRows().AddRow(
			41, "pay_1", 7, 4, nil,
			decimal.RequireFromString("100"), decimal.Zero,
			decimal.RequireFromString("80"), decimal.RequireFromString("20"),
			"subscription", domain.CommissionStatusPaid, now,
		)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE payment_id = $1")).
			WithArgs("pay_1").
			WillReturnRows(existing)

		got, created, err := repo.InsertOrGet(context.Background(), commission)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, 41, got.ID)
		assert.Equal(t, domain.CommissionStatusPaid, got.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Conflict with vanished row fails", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (payment_id) DO NOTHING")).
			WithArgs(insertArgs...).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE payment_id = $1")).
			WithArgs("pay_1").
			WillReturnError(pgx.ErrNoRows)

		got, created, err := repo.InsertOrGet(context.Background(), commission)
		require.Error(t, err)
		assert.False(t, created)
		assert.Nil(t, got)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (payment_id) DO NOTHING")).
			WithArgs(insertArgs...).
			WillReturnError(errors.New("database error"))

		_, _, err := repo.InsertOrGet(context.Background(), commission)
		require.Error(t, err)
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock, tx := NewMock(t)
	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successful status update",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
					mock.ExpectExec(regexp.QuoteMeta("UPDATE commissions")).
						WithArgs(domain.CommissionStatusRefunded, 1).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					return fn(ctx)
				})
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
					mock.ExpectExec(regexp.QuoteMeta("UPDATE commissions")).
						WithArgs(domain.CommissionStatusRefunded, 1).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			err := repo.UpdateStatus(context.Background(), 1, domain.CommissionStatusRefunded)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByReferrer(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	referrer := 9

	t.Run("Lists commissions for a referrer", func(t *testing.T) {
		rows := commissionRows().
			AddRow(2, "pay_2", 7, 4, &referrer,
				decimal.RequireFromString("50"), decimal.RequireFromString("5"),
				decimal.RequireFromString("35"), decimal.RequireFromString("10"),
				"subscription", domain.CommissionStatusPaid, now).
			AddRow(1, "pay_1", 7, 4, &referrer,
				decimal.RequireFromString("100"), decimal.RequireFromString("10"),
				decimal.RequireFromString("70"), decimal.RequireFromString("20"),
				"subscription", domain.CommissionStatusPaid, now.Add(-time.Hour))
		mock.ExpectQuery(regexp.QuoteMeta("WHERE referrer_member_id = $1")).
			WithArgs(9, 10).
			WillReturnRows(rows)

		commissions, err := repo.FindByReferrer(context.Background(), 9, 10)
		require.NoError(t, err)
		require.Len(t, commissions, 2)
		assert.Equal(t, "pay_2", commissions[0].PaymentID)
		assert.Equal(t, "pay_1", commissions[1].PaymentID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE referrer_member_id = $1")).
			WithArgs(9, 10).
			WillReturnError(errors.New("database error"))

		commissions, err := repo.FindByReferrer(context.Background(), 9, 10)
		require.Error(t, err)
		assert.Nil(t, commissions)
	})
}
