package repo

import (
	"github.com/shopforge/shopforge/internal/pg"
	auditrepo "github.com/shopforge/shopforge/internal/repo/audit-repo"
	deploymentrepo "github.com/shopforge/shopforge/internal/repo/deployment-repo"
	jobrepo "github.com/shopforge/shopforge/internal/repo/job-repo"
	leaserepo "github.com/shopforge/shopforge/internal/repo/lease-repo"
	ledgerrepo "github.com/shopforge/shopforge/internal/repo/ledger-repo"
	secretrepo "github.com/shopforge/shopforge/internal/repo/secret-repo"
	shoprepo "github.com/shopforge/shopforge/internal/repo/shop-repo"
	userrepo "github.com/shopforge/shopforge/internal/repo/user-repo"
)

// Repositories bundles every persistence adapter behind one constructor.
// Fields are concrete because most repos back more than one service.
type Repositories struct {
	UserRepo       *userrepo.Repository
	ShopRepo       *shoprepo.Repository
	DeploymentRepo *deploymentrepo.Repository
	SecretRepo     *secretrepo.Repository
	LedgerRepo     *ledgerrepo.Repository
	AuditRepo      *auditrepo.Repository
	JobRepo        *jobrepo.Repository
	LeaseRepo      *leaserepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	shopRepo := shoprepo.New(conn, txManager)
	deploymentRepo := deploymentrepo.New(conn, txManager)
	secretRepo := secretrepo.New(conn)
	ledgerRepo := ledgerrepo.New(conn, txManager)
	auditRepo := auditrepo.New(conn)
	jobRepo := jobrepo.New(conn, txManager)
	leaseRepo := leaserepo.New(conn)

	return &Repositories{
		UserRepo:       userRepo,
		ShopRepo:       shopRepo,
		DeploymentRepo: deploymentRepo,
		SecretRepo:     secretRepo,
		LedgerRepo:     ledgerRepo,
		AuditRepo:      auditRepo,
		JobRepo:        jobRepo,
		LeaseRepo:      leaseRepo,
	}
}
