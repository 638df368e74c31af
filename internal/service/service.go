package service

import (
	"time"

	"github.com/smilaev/refledger/internal/pg"
	"github.com/smilaev/refledger/internal/repo"
	"github.com/smilaev/refledger/internal/service/attributionservice"
	"github.com/smilaev/refledger/internal/service/creatorservice"
	"github.com/smilaev/refledger/internal/service/ledgerservice"
	"github.com/smilaev/refledger/internal/service/memberservice"
	"github.com/smilaev/refledger/internal/service/rankservice"
	"github.com/smilaev/refledger/internal/service/tierservice"
)

type Services struct {
	AttributionService *attributionservice.Service
	LedgerService      *ledgerservice.Service
	RankService        *rankservice.Service
	TierService        *tierservice.Service
	MemberService      *memberservice.Service
	CreatorService     *creatorservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, cache rankservice.Cache, cacheTTL time.Duration) *Services {
	attributionService := attributionservice.New(repo.MemberRepo, repo.ClickRepo)
	ledgerService := ledgerservice.New(repo.MemberRepo, repo.CreatorRepo, repo.CommissionRepo, repo.RefundRepo, txManager)
	rankService := rankservice.New(repo.MemberRepo, repo.CreatorRepo, cache, cacheTTL)
	tierService := tierservice.New(repo.MemberRepo, repo.CreatorRepo, tierservice.LogNotifier{})
	memberService := memberservice.New(repo.MemberRepo, cache, cacheTTL)
	creatorService := creatorservice.New(repo.CreatorRepo)

	return &Services{
		AttributionService: attributionService,
		LedgerService:      ledgerService,
		RankService:        rankService,
		TierService:        tierService,
		MemberService:      memberService,
		CreatorService:     creatorService,
	}
}
