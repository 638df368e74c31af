package service

import (
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/smilaev/refledger/internal/pg"
	"github.com/smilaev/refledger/internal/repo"
	"github.com/smilaev/refledger/internal/service/rankservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	mockTxManager := pg.NewMockTXManager(ctrl)
	mockCache := rankservice.NewMockCache(ctrl)
	repos := repo.New(mockDB, mockTxManager)

	services := New(repos, mockTxManager, mockCache, time.Minute)

	assert.NotNil(t, services.AttributionService)
	assert.NotNil(t, services.LedgerService)
	assert.NotNil(t, services.RankService)
	assert.NotNil(t, services.TierService)
	assert.NotNil(t, services.MemberService)
	assert.NotNil(t, services.CreatorService)
}
