package tierservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/smilaev/refledger/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockMemberRepo, *MockCreatorRepo, *MockNotifier) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	memberRepo := NewMockMemberRepo(ctrl)
	creatorRepo := NewMockCreatorRepo(ctrl)
	notifier := NewMockNotifier(ctrl)
	service := New(memberRepo, creatorRepo, notifier)
	return service, memberRepo, creatorRepo, notifier
}

func thresholds() *domain.TierThresholds {
	return &domain.TierThresholds{Tier1: 5, Tier2: 15, Tier3: 50, Tier4: 150}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		name          string
		totalReferred int
		expected      string
	}{
		{name: "Zero referrals is Bronze", totalReferred: 0, expected: TierBronze},
		{name: "Below tier1 is still Bronze", totalReferred: 4, expected: TierBronze},
		{name: "At tier1 is Bronze", totalReferred: 5, expected: TierBronze},
		{name: "At tier2 becomes Silver", totalReferred: 15, expected: TierSilver},
		{name: "Between tier2 and tier3 is Silver", totalReferred: 49, expected: TierSilver},
		{name: "At tier3 becomes Gold", totalReferred: 50, expected: TierGold},
		{name: "At tier4 becomes Platinum", totalReferred: 150, expected: TierPlatinum},
		{name: "Far beyond tier4 stays Platinum", totalReferred: 5000, expected: TierPlatinum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TierFor(tt.totalReferred, thresholds()))
		})
	}
}

func TestCrossedMilestones(t *testing.T) {
	tests := []struct {
		name     string
		prev     int
		next     int
		expected []int
	}{
		{name: "No movement", prev: 9, next: 9, expected: nil},
		{name: "Below first milestone", prev: 3, next: 4, expected: nil},
		{name: "Crossing one milestone", prev: 9, next: 10, expected: []int{10}},
		{name: "Crossing several at once", prev: 20, next: 120, expected: []int{25, 50, 100}},
		{name: "Already past a milestone does not re-fire", prev: 10, next: 11, expected: nil},
		{name: "Landing exactly on a milestone", prev: 24, next: 25, expected: []int{25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CrossedMilestones(tt.prev, tt.next))
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name         string
		prevReferred int
		newReferred  int
		prepareMock  func(m *MockMemberRepo, c *MockCreatorRepo, n *MockNotifier)
	}{
		{
			name:         "Missing member is a no-op",
			prevReferred: 0,
			newReferred:  1,
			prepareMock: func(m *MockMemberRepo, c *MockCreatorRepo, n *MockNotifier) {
				m.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
		},
		{
			name:         "No tier or milestone change writes nothing",
			prevReferred: 6,
			newReferred:  7,
			prepareMock: func(m *MockMemberRepo, c *MockCreatorRepo, n *MockNotifier) {
				m.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Member{ID: 1, CreatorID: 7, Tier: TierBronze}, nil)
				c.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.Creator{ID: 7, TierThresholds: *thresholds()}, nil)
			},
		},
		{
			name:         "Tier promotion persists the new tier",
			prevReferred: 14,
			newReferred:  15,
			prepareMock: func(m *MockMemberRepo, c *MockCreatorRepo, n *MockNotifier) {
				m.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Member{ID: 1, CreatorID: 7, Tier: TierBronze, LastMilestone: 10}, nil)
				c.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.Creator{ID: 7, TierThresholds: *thresholds()}, nil)
				m.EXPECT().UpdateTierState(gomock.Any(), 1, TierSilver, 10).Return(nil)
			},
		},
		{
			name:         "Milestone crossing notifies and advances the guard",
			prevReferred: 9,
			newReferred:  10,
			prepareMock: func(m *MockMemberRepo, c *MockCreatorRepo, n *MockNotifier) {
				m.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Member{ID: 1, CreatorID: 7, Tier: TierBronze}, nil)
				c.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.Creator{ID: 7, TierThresholds: *thresholds()}, nil)
				n.EXPECT().MilestoneReached(gomock.Any(), 1, 10)
				m.EXPECT().UpdateTierState(gomock.Any(), 1, TierBronze, 10).Return(nil)
			},
		},
		{
			name:         "Milestone already recorded never re-fires",
			prevReferred: 9,
			newReferred:  10,
			prepareMock: func(m *MockMemberRepo, c *MockCreatorRepo, n *MockNotifier) {
				m.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Member{ID: 1, CreatorID: 7, Tier: TierBronze, LastMilestone: 10}, nil)
				c.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.Creator{ID: 7, TierThresholds: *thresholds()}, nil)
			},
		},
		{
			name:         "Several milestones in one delta all notify",
			prevReferred: 20,
			newReferred:  120,
			prepareMock: func(m *MockMemberRepo, c *MockCreatorRepo, n *MockNotifier) {
				m.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Member{ID: 1, CreatorID: 7, Tier: TierSilver, LastMilestone: 10}, nil)
				c.EXPECT().FindByID(gomock.Any(), 7).Return(&domain.Creator{ID: 7, TierThresholds: *thresholds()}, nil)
				n.EXPECT().MilestoneReached(gomock.Any(), 1, 25)
				n.EXPECT().MilestoneReached(gomock.Any(), 1, 50)
				n.EXPECT().MilestoneReached(gomock.Any(), 1, 100)
				m.EXPECT().UpdateTierState(gomock.Any(), 1, TierGold, 100).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, memberRepo, creatorRepo, notifier := NewMock(t)
			tt.prepareMock(memberRepo, creatorRepo, notifier)

			err := service.Evaluate(context.Background(), 1, tt.prevReferred, tt.newReferred)
			require.NoError(t, err)
		})
	}
}
