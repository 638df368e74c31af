package repo

import (
	"github.com/smilaev/refledger/internal/pg"
	clickrepo "github.com/smilaev/refledger/internal/repo/click-repo"
	commissionrepo "github.com/smilaev/refledger/internal/repo/commission-repo"
	creatorrepo "github.com/smilaev/refledger/internal/repo/creator-repo"
	eventrepo "github.com/smilaev/refledger/internal/repo/event-repo"
	memberrepo "github.com/smilaev/refledger/internal/repo/member-repo"
	refundrepo "github.com/smilaev/refledger/internal/repo/refund-repo"
)

type Repositories struct {
	MemberRepo     *memberrepo.Repository
	CreatorRepo    *creatorrepo.Repository
	ClickRepo      *clickrepo.Repository
	CommissionRepo *commissionrepo.Repository
	RefundRepo     *refundrepo.Repository
	EventRepo      *eventrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		MemberRepo:     memberrepo.New(conn, txManager),
		CreatorRepo:    creatorrepo.New(conn, txManager),
		ClickRepo:      clickrepo.New(conn),
		CommissionRepo: commissionrepo.New(conn, txManager),
		RefundRepo:     refundrepo.New(conn),
		EventRepo:      eventrepo.New(conn, txManager),
	}
}
