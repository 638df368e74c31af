package memberservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/smilaev/refledger/internal/domain"
	"github.com/smilaev/refledger/pkg/refcode"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockCache) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	cache := NewMockCache(ctrl)
	service := New(repo, cache, time.Minute)
	return service, repo, cache
}

func TestRegister(t *testing.T) {
	referrerCode := "7992739875"

	tests := []struct {
		name          string
		referredBy    *string
		prepareMock   func(repo *MockRepo)
		expectedError error
		expectedID    int
	}{
		{
			name: "New member gets a referral code",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByMembershipID(gomock.Any(), "mem_1").Return(nil, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, member *domain.Member) error {
						assert.True(t, refcode.IsValid(member.ReferralCode))
						assert.Equal(t, domain.MemberStatusActive, member.Status)
						member.ID = 12
						return nil
					})
			},
			expectedID: 12,
		},
		{
			name: "Existing membership returns the stored record",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByMembershipID(gomock.Any(), "mem_1").Return(&domain.Member{ID: 5, MembershipID: "mem_1"}, nil)
			},
			expectedID: 5,
		},
		{
			name:       "Referrer code is validated at signup",
			referredBy: &referrerCode,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByMembershipID(gomock.Any(), "mem_1").Return(nil, nil)
				repo.EXPECT().FindByReferralCode(gomock.Any(), referrerCode).Return(nil, nil)
			},
			expectedError: domain.ErrUnknownCode,
		},
		{
			name:       "Valid referrer code is stored",
			referredBy: &referrerCode,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByMembershipID(gomock.Any(), "mem_1").Return(nil, nil)
				repo.EXPECT().FindByReferralCode(gomock.Any(), referrerCode).Return(&domain.Member{ID: 9}, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, member *domain.Member) error {
						require.NotNil(t, member.ReferredBy)
						assert.Equal(t, referrerCode, *member.ReferredBy)
						member.ID = 13
						return nil
					})
			},
			expectedID: 13,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _ := NewMock(t)
			tt.prepareMock(repo)

			member, err := service.Register(context.Background(), 7, "mem_1", tt.referredBy)
			if tt.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, member.ID)
		})
	}
}

func TestGetStats(t *testing.T) {
	member := &domain.Member{ID: 12, TotalReferred: 34}

	t.Run("Cache miss loads from store and fills cache", func(t *testing.T) {
		service, repo, cache := NewMock(t)
		cache.EXPECT().Get(gomock.Any(), "member:12", gomock.Any()).Return(false, nil)
		repo.EXPECT().FindByID(gomock.Any(), 12).Return(member, nil)
		cache.EXPECT().Set(gomock.Any(), "member:12", member, time.Minute).Return(nil)

		got, err := service.GetStats(context.Background(), 12)
		require.NoError(t, err)
		assert.Equal(t, member, got)
	})

	t.Run("Cache hit skips the store", func(t *testing.T) {
		service, _, cache := NewMock(t)
		cache.EXPECT().Get(gomock.Any(), "member:12", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest any) (bool, error) {
				*dest.(*domain.Member) = *member
				return true, nil
			})

		got, err := service.GetStats(context.Background(), 12)
		require.NoError(t, err)
		assert.Equal(t, member.TotalReferred, got.TotalReferred)
	})

	t.Run("Missing member", func(t *testing.T) {
		service, repo, cache := NewMock(t)
		cache.EXPECT().Get(gomock.Any(), "member:12", gomock.Any()).Return(false, nil)
		repo.EXPECT().FindByID(gomock.Any(), 12).Return(nil, nil)

		got, err := service.GetStats(context.Background(), 12)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestCancel(t *testing.T) {
	t.Run("Active membership is cancelled", func(t *testing.T) {
		service, repo, _ := NewMock(t)
		repo.EXPECT().FindByMembershipID(gomock.Any(), "mem_1").Return(&domain.Member{ID: 5, Status: domain.MemberStatusActive}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "mem_1", domain.MemberStatusCancelled).Return(nil)

		require.NoError(t, service.Cancel(context.Background(), "mem_1"))
	})

	t.Run("Unknown membership is a no-op", func(t *testing.T) {
		service, repo, _ := NewMock(t)
		repo.EXPECT().FindByMembershipID(gomock.Any(), "mem_1").Return(nil, nil)

		require.NoError(t, service.Cancel(context.Background(), "mem_1"))
	})
}
