package ledgerservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/smilaev/refledger/internal/domain"
	"github.com/smilaev/refledger/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockMemberRepo, *MockCreatorRepo, *MockCommissionRepo, *MockRefundRepo) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	memberRepo := NewMockMemberRepo(ctrl)
	creatorRepo := NewMockCreatorRepo(ctrl)
	commissionRepo := NewMockCommissionRepo(ctrl)
	refundRepo := NewMockRefundRepo(ctrl)

	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().
		Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()

	service := New(memberRepo, creatorRepo, commissionRepo, refundRepo, txManager)
	return service, memberRepo, creatorRepo, commissionRepo, refundRepo
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSplitSale(t *testing.T) {
	tests := []struct {
		name             string
		amount           decimal.Decimal
		organic          bool
		expectedMember   decimal.Decimal
		expectedCreator  decimal.Decimal
		expectedPlatform decimal.Decimal
	}{
		{
			name:             "Referred sale splits 10/70/20",
			amount:           dec("100"),
			organic:          false,
			expectedMember:   dec("10"),
			expectedCreator:  dec("70"),
			expectedPlatform: dec("20"),
		},
		{
			name:             "Organic sale moves member share to creator",
			amount:           dec("100"),
			organic:          true,
			expectedMember:   dec("0"),
			expectedCreator:  dec("80"),
			expectedPlatform: dec("20"),
		},
		{
			name:             "Awkward amount still sums exactly",
			amount:           dec("49.99"),
			organic:          false,
			expectedMember:   dec("4.999"),
			expectedCreator:  dec("34.993"),
			expectedPlatform: dec("9.998"),
		},
		{
			name:             "Single cent",
			amount:           dec("0.01"),
			organic:          false,
			expectedMember:   dec("0.001"),
			expectedCreator:  dec("0.007"),
			expectedPlatform: dec("0.002"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			member, creator, platform := splitSale(tt.amount, tt.organic)

			assert.True(t, tt.expectedMember.Equal(member), "member share: want %s got %s", tt.expectedMember, member)
			assert.True(t, tt.expectedCreator.Equal(creator), "creator share: want %s got %s", tt.expectedCreator, creator)
			assert.True(t, tt.expectedPlatform.Equal(platform), "platform share: want %s got %s", tt.expectedPlatform, platform)
			assert.True(t, tt.amount.Equal(member.Add(creator).Add(platform)), "shares must sum to the sale amount")
		})
	}
}

func TestSplitRefund(t *testing.T) {
	commission := &domain.Commission{
		SaleAmount:    dec("100"),
		MemberShare:   dec("10"),
		CreatorShare:  dec("70"),
		PlatformShare: dec("20"),
	}

	tests := []struct {
		name             string
		commission       *domain.Commission
		refundAmount     decimal.Decimal
		expectedMember   decimal.Decimal
		expectedCreator  decimal.Decimal
		expectedPlatform decimal.Decimal
	}{
		{
			name:             "Full refund reverses original shares exactly",
			commission:       commission,
			refundAmount:     dec("100"),
			expectedMember:   dec("10"),
			expectedCreator:  dec("70"),
			expectedPlatform: dec("20"),
		},
		{
			name:             "Half refund reverses half of each share",
			commission:       commission,
			refundAmount:     dec("50"),
			expectedMember:   dec("5"),
			expectedCreator:  dec("35"),
			expectedPlatform: dec("10"),
		},
		{
			name: "Full refund of awkward amount returns stored shares",
			commission: &domain.Commission{
				SaleAmount:    dec("49.99"),
				MemberShare:   dec("4.999"),
				CreatorShare:  dec("34.993"),
				PlatformShare: dec("9.998"),
			},
			refundAmount:     dec("49.99"),
			expectedMember:   dec("4.999"),
			expectedCreator:  dec("34.993"),
			expectedPlatform: dec("9.998"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			member, creator, platform := splitRefund(tt.commission, tt.refundAmount)

			assert.True(t, tt.expectedMember.Equal(member), "member reversal: want %s got %s", tt.expectedMember, member)
			assert.True(t, tt.expectedCreator.Equal(creator), "creator reversal: want %s got %s", tt.expectedCreator, creator)
			assert.True(t, tt.expectedPlatform.Equal(platform), "platform reversal: want %s got %s", tt.expectedPlatform, platform)
			assert.True(t, tt.refundAmount.Equal(member.Add(creator).Add(platform)), "reversals must sum to the refund amount")
		})
	}
}

func TestSplitRefundSumsToRefundAmount(t *testing.T) {
	commission := &domain.Commission{
		SaleAmount:    dec("49.99"),
		MemberShare:   dec("4.999"),
		CreatorShare:  dec("34.993"),
		PlatformShare: dec("9.998"),
	}

	for _, amount := range []string{"0.01", "3.33", "12.5", "33.33", "49.98"} {
		refund := dec(amount)
		member, creator, platform := splitRefund(commission, refund)
		assert.True(t, refund.Equal(member.Add(creator).Add(platform)),
			"refund %s: reversals %s+%s+%s must sum to the refund amount", amount, member, creator, platform)
	}
}

func TestRecordSale(t *testing.T) {
	refCode := "7992739875"
	firstPaid := time.Now().Add(-time.Hour)

	tests := []struct {
		name             string
		prepareMock      func(m *MockMemberRepo, c *MockCreatorRepo, com *MockCommissionRepo)
		expectedError    error
		alreadyProcessed bool
		firstPaidSale    bool
	}{
		{
			name: "Unknown membership",
			prepareMock: func(m *MockMemberRepo, c *MockCreatorRepo, com *MockCommissionRepo) {
				m.EXPECT().FindByMembershipID(gomock.Any(), "mem_1").Return(nil, nil)
			},
			expectedError: domain.ErrUnknownMembership,
		},
		{
			name: "Organic sale credits creator only",
			prepareMock: func(m *MockMemberRepo, c *MockCreatorRepo, com *MockCommissionRepo) {
				buyer := &domain.Member{ID: 5, CreatorID: 7, MembershipID: "mem_1", FirstPaidAt: &firstPaid}
				m.EXPECT().FindByMembershipID(gomock.Any(), "mem_1").Return(buyer, nil)
				com.EXPECT().InsertOrGet(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, commission *domain.Commission) (*domain.Commission, bool, error) {
						assert.Nil(t, commission.ReferrerMemberID)
						assert.True(t, commission.MemberShare.IsZero())
						assert.True(t, dec("80").Equal(commission.CreatorShare))
						return commission, true, nil
					})
				c.EXPECT().AddRevenue(gomock.Any(), 7, gomock.Any()).Return(nil)
			},
		},
		{
			name: "First paid sale credits referrer and moves the counter",
			prepareMock: func(m *MockMemberRepo, c *MockCreatorRepo, com *MockCommissionRepo) {
				buyer := &domain.Member{ID: 5, CreatorID: 7, MembershipID: "mem_1", ReferredBy: &refCode}
				referrer := &domain.Member{ID: 9, CreatorID: 7, ReferralCode: refCode, TotalReferred: 4}
				m.EXPECT().FindByMembershipID(gomock.Any(), "mem_1").Return(buyer, nil)
				m.EXPECT().FindByReferralCode(gomock.Any(), refCode).Return(referrer, nil)
				com.EXPECT().InsertOrGet(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, commission *domain.Commission) (*domain.Commission, bool, error) {
						return commission, true, nil
					})
				m.EXPECT().AddEarnings(gomock.Any(), 9, gomock.Any()).Return(nil)
				m.EXPECT().IncrementReferred(gomock.Any(), 9).Return(nil)
				m.EXPECT().MarkFirstPaid(gomock.Any(), 5, gomock.Any()).Return(nil)
				c.EXPECT().AddRevenue(gomock.Any(), 7, gomock.Any()).Return(nil)
			},
			firstPaidSale: true,
		},
		{
			name: "Recurring sale credits referrer without moving the counter",
			prepareMock: func(m *MockMemberRepo, c *MockCreatorRepo, com *MockCommissionRepo) {
				buyer := &domain.Member{ID: 5, CreatorID: 7, MembershipID: "mem_1", ReferredBy: &refCode, FirstPaidAt: &firstPaid}
				referrer := &domain.Member{ID: 9, CreatorID: 7, ReferralCode: refCode, TotalReferred: 4}
				m.EXPECT().FindByMembershipID(gomock.Any(), "mem_1").Return(buyer, nil)
				m.EXPECT().FindByReferralCode(gomock.Any(), refCode).Return(referrer, nil)
				com.EXPECT().InsertOrGet(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, commission *domain.Commission) (*domain.Commission, bool, error) {
						return commission, true, nil
					})
				m.EXPECT().AddEarnings(gomock.Any(), 9, gomock.Any()).Return(nil)
				c.EXPECT().AddRevenue(gomock.Any(), 7, gomock.Any()).Return(nil)
			},
		},
		{
			name: "Dangling referral pointer falls back to organic",
			prepareMock: func(m *MockMemberRepo, c *MockCreatorRepo, com *MockCommissionRepo) {
				buyer := &domain.Member{ID: 5, CreatorID: 7, MembershipID: "mem_1", ReferredBy: &refCode, FirstPaidAt: &firstPaid}
				m.EXPECT().FindByMembershipID(gomock.Any(), "mem_1").Return(buyer, nil)
				m.EXPECT().FindByReferralCode(gomock.Any(), refCode).Return(nil, nil)
				com.EXPECT().InsertOrGet(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, commission *domain.Commission) (*domain.Commission, bool, error) {
						assert.Nil(t, commission.ReferrerMemberID)
						return commission, true, nil
					})
				c.EXPECT().AddRevenue(gomock.Any(), 7, gomock.Any()).Return(nil)
			},
		},
		{
			name: "Duplicate payment returns stored result without side effects",
			prepareMock: func(m *MockMemberRepo, c *MockCreatorRepo, com *MockCommissionRepo) {
				buyer := &domain.Member{ID: 5, CreatorID: 7, MembershipID: "mem_1", FirstPaidAt: &firstPaid}
				m.EXPECT().FindByMembershipID(gomock.Any(), "mem_1").Return(buyer, nil)
				stored := &domain.Commission{ID: 1, PaymentID: "pay_1", CreatorID: 7, Status: domain.CommissionStatusPaid}
				com.EXPECT().InsertOrGet(gomock.Any(), gomock.Any()).Return(stored, false, nil)
			},
			alreadyProcessed: true,
		},
		{
			name: "Earnings write failure aborts the transaction",
			prepareMock: func(m *MockMemberRepo, c *MockCreatorRepo, com *MockCommissionRepo) {
				buyer := &domain.Member{ID: 5, CreatorID: 7, MembershipID: "mem_1", ReferredBy: &refCode, FirstPaidAt: &firstPaid}
				referrer := &domain.Member{ID: 9, CreatorID: 7, ReferralCode: refCode}
				m.EXPECT().FindByMembershipID(gomock.Any(), "mem_1").Return(buyer, nil)
				m.EXPECT().FindByReferralCode(gomock.Any(), refCode).Return(referrer, nil)
				com.EXPECT().InsertOrGet(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, commission *domain.Commission) (*domain.Commission, bool, error) {
						return commission, true, nil
					})
				m.EXPECT().AddEarnings(gomock.Any(), 9, gomock.Any()).Return(errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, memberRepo, creatorRepo, commissionRepo, _ := NewMock(t)
			tt.prepareMock(memberRepo, creatorRepo, commissionRepo)

			outcome, err := service.RecordSale(context.Background(), "pay_1", "mem_1", dec("100"), "subscription")
			if tt.expectedError != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
				return
			}

			require.NoError(t, err)
			require.NotNil(t, outcome)
			assert.Equal(t, tt.alreadyProcessed, outcome.AlreadyProcessed)
			assert.Equal(t, tt.firstPaidSale, outcome.FirstPaidSale)
		})
	}
}

func TestRecordSaleSelfReferralIsOrganic(t *testing.T) {
	service, memberRepo, creatorRepo, commissionRepo, _ := NewMock(t)

	refCode := "7992739875"
	now := time.Now()
	// the buyer somehow carries their own referral code
	buyer := &domain.Member{ID: 5, CreatorID: 7, MembershipID: "mem_1", ReferralCode: refCode, ReferredBy: &refCode, FirstPaidAt: &now}
	memberRepo.EXPECT().FindByMembershipID(gomock.Any(), "mem_1").Return(buyer, nil)
	memberRepo.EXPECT().FindByReferralCode(gomock.Any(), refCode).Return(buyer, nil)
	commissionRepo.EXPECT().InsertOrGet(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, commission *domain.Commission) (*domain.Commission, bool, error) {
			assert.Nil(t, commission.ReferrerMemberID)
			return commission, true, nil
		})
	creatorRepo.EXPECT().AddRevenue(gomock.Any(), 7, gomock.Any()).Return(nil)

	outcome, err := service.RecordSale(context.Background(), "pay_1", "mem_1", dec("100"), "subscription")
	require.NoError(t, err)
	assert.Nil(t, outcome.ReferrerMemberID)
}

func TestReverseSale(t *testing.T) {
	referrerID := 9
	commission := func() *domain.Commission {
		return &domain.Commission{
			ID:               1,
			PaymentID:        "pay_1",
			CreatorID:        7,
			ReferrerMemberID: &referrerID,
			SaleAmount:       dec("100"),
			MemberShare:      dec("10"),
			CreatorShare:     dec("70"),
			PlatformShare:    dec("20"),
			Status:           domain.CommissionStatusPaid,
		}
	}

	tests := []struct {
		name             string
		refundAmount     decimal.Decimal
		prepareMock      func(m *MockMemberRepo, c *MockCreatorRepo, com *MockCommissionRepo, r *MockRefundRepo)
		expectedError    error
		alreadyProcessed bool
		expectedStatus   string
	}{
		{
			name:         "Unknown payment",
			refundAmount: dec("100"),
			prepareMock: func(m *MockMemberRepo, c *MockCreatorRepo, com *MockCommissionRepo, r *MockRefundRepo) {
				r.EXPECT().FindByRefundID(gomock.Any(), "ref_1").Return(nil, nil)
				com.EXPECT().FindByPaymentID(gomock.Any(), "pay_1").Return(nil, nil)
			},
			expectedError: domain.ErrUnknownPayment,
		},
		{
			name:         "Refund exceeding sale amount is rejected",
			refundAmount: dec("100.01"),
			prepareMock: func(m *MockMemberRepo, c *MockCreatorRepo, com *MockCommissionRepo, r *MockRefundRepo) {
				r.EXPECT().FindByRefundID(gomock.Any(), "ref_1").Return(nil, nil)
				com.EXPECT().FindByPaymentID(gomock.Any(), "pay_1").Return(commission(), nil)
			},
			expectedError: domain.ErrInvalidRefundAmount,
		},
		{
			name:         "Non-positive refund is rejected",
			refundAmount: dec("0"),
			prepareMock: func(m *MockMemberRepo, c *MockCreatorRepo, com *MockCommissionRepo, r *MockRefundRepo) {
				r.EXPECT().FindByRefundID(gomock.Any(), "ref_1").Return(nil, nil)
				com.EXPECT().FindByPaymentID(gomock.Any(), "pay_1").Return(commission(), nil)
			},
			expectedError: domain.ErrInvalidRefundAmount,
		},
		{
			name:         "Full refund reverses all shares and marks refunded",
			refundAmount: dec("100"),
			prepareMock: func(m *MockMemberRepo, c *MockCreatorRepo, com *MockCommissionRepo, r *MockRefundRepo) {
				r.EXPECT().FindByRefundID(gomock.Any(), "ref_1").Return(nil, nil)
				com.EXPECT().FindByPaymentID(gomock.Any(), "pay_1").Return(commission(), nil)
				m.EXPECT().AddEarnings(gomock.Any(), referrerID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int, delta decimal.Decimal) error {
						assert.True(t, dec("-10").Equal(delta))
						return nil
					})
				c.EXPECT().AddRevenue(gomock.Any(), 7, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int, delta decimal.Decimal) error {
						assert.True(t, dec("-70").Equal(delta))
						return nil
					})
				com.EXPECT().UpdateStatus(gomock.Any(), 1, domain.CommissionStatusRefunded).Return(nil)
				r.EXPECT().InsertOrGet(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, refund *domain.Refund) (*domain.Refund, bool, error) {
						return refund, true, nil
					})
			},
			expectedStatus: domain.CommissionStatusRefunded,
		},
		{
			name:         "Partial refund reverses proportionally and marks partial_refund",
			refundAmount: dec("50"),
			prepareMock: func(m *MockMemberRepo, c *MockCreatorRepo, com *MockCommissionRepo, r *MockRefundRepo) {
				r.EXPECT().FindByRefundID(gomock.Any(), "ref_1").Return(nil, nil)
				com.EXPECT().FindByPaymentID(gomock.Any(), "pay_1").Return(commission(), nil)
				m.EXPECT().AddEarnings(gomock.Any(), referrerID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int, delta decimal.Decimal) error {
						assert.True(t, dec("-5").Equal(delta))
						return nil
					})
				c.EXPECT().AddRevenue(gomock.Any(), 7, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int, delta decimal.Decimal) error {
						assert.True(t, dec("-35").Equal(delta))
						return nil
					})
				com.EXPECT().UpdateStatus(gomock.Any(), 1, domain.CommissionStatusPartialRefund).Return(nil)
				r.EXPECT().InsertOrGet(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, refund *domain.Refund) (*domain.Refund, bool, error) {
						return refund, true, nil
					})
			},
			expectedStatus: domain.CommissionStatusPartialRefund,
		},
		{
			name:         "Duplicate refund id is acknowledged without reprocessing",
			refundAmount: dec("100"),
			prepareMock: func(m *MockMemberRepo, c *MockCreatorRepo, com *MockCommissionRepo, r *MockRefundRepo) {
				r.EXPECT().FindByRefundID(gomock.Any(), "ref_1").Return(&domain.Refund{ID: 3, RefundID: "ref_1"}, nil)
				com.EXPECT().FindByPaymentID(gomock.Any(), "pay_1").Return(commission(), nil)
			},
			alreadyProcessed: true,
		},
		{
			name:         "Concurrent duplicate rolls back and reports processed",
			refundAmount: dec("100"),
			prepareMock: func(m *MockMemberRepo, c *MockCreatorRepo, com *MockCommissionRepo, r *MockRefundRepo) {
				r.EXPECT().FindByRefundID(gomock.Any(), "ref_1").Return(nil, nil)
				com.EXPECT().FindByPaymentID(gomock.Any(), "pay_1").Return(commission(), nil)
				m.EXPECT().AddEarnings(gomock.Any(), referrerID, gomock.Any()).Return(nil)
				c.EXPECT().AddRevenue(gomock.Any(), 7, gomock.Any()).Return(nil)
				com.EXPECT().UpdateStatus(gomock.Any(), 1, domain.CommissionStatusRefunded).Return(nil)
				r.EXPECT().InsertOrGet(gomock.Any(), gomock.Any()).
					Return(&domain.Refund{ID: 3, RefundID: "ref_1"}, false, nil)
			},
			alreadyProcessed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, memberRepo, creatorRepo, commissionRepo, refundRepo := NewMock(t)
			tt.prepareMock(memberRepo, creatorRepo, commissionRepo, refundRepo)

			outcome, err := service.ReverseSale(context.Background(), "ref_1", "pay_1", tt.refundAmount, "requested by member")
			if tt.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, outcome)
			assert.Equal(t, tt.alreadyProcessed, outcome.AlreadyProcessed)
			if tt.expectedStatus != "" {
				require.NotNil(t, outcome.Commission)
				assert.Equal(t, tt.expectedStatus, outcome.Commission.Status)
			}
		})
	}
}
