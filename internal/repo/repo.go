package repo

import (
	"github.com/GlebRadaev/ecomarket/internal/pg"
	balancerepo "github.com/GlebRadaev/ecomarket/internal/repo/balance-repo"
	clientrepo "github.com/GlebRadaev/ecomarket/internal/repo/client-repo"
	historyrepo "github.com/GlebRadaev/ecomarket/internal/repo/history-repo"
	pointrepo "github.com/GlebRadaev/ecomarket/internal/repo/point-repo"
	productrepo "github.com/GlebRadaev/ecomarket/internal/repo/product-repo"
	redemptionrepo "github.com/GlebRadaev/ecomarket/internal/repo/redemption-repo"
	requestrepo "github.com/GlebRadaev/ecomarket/internal/repo/request-repo"
	rewardrepo "github.com/GlebRadaev/ecomarket/internal/repo/reward-repo"
	userrepo "github.com/GlebRadaev/ecomarket/internal/repo/user-repo"
	"github.com/GlebRadaev/ecomarket/internal/service/authservice"
	"github.com/GlebRadaev/ecomarket/internal/service/clientservice"
	"github.com/GlebRadaev/ecomarket/internal/service/ledgerservice"
	"github.com/GlebRadaev/ecomarket/internal/service/pointservice"
	"github.com/GlebRadaev/ecomarket/internal/service/productservice"
	"github.com/GlebRadaev/ecomarket/internal/service/requestservice"
	"github.com/GlebRadaev/ecomarket/internal/service/rewardservice"
)

// RewardRepo serves both the catalogue and the ledger's redemption lookups.
type RewardRepo interface {
	rewardservice.RewardRepo
	ledgerservice.RewardRepo
}

// RedemptionRepo serves both voucher lookups and the ledger's redemption writes.
type RedemptionRepo interface {
	rewardservice.RedemptionRepo
	ledgerservice.RedemptionRepo
}

type Repositories struct {
	UserRepo       authservice.Repo
	BalanceRepo    ledgerservice.BalanceRepo
	HistoryRepo    ledgerservice.HistoryRepo
	RewardRepo     RewardRepo
	RedemptionRepo RedemptionRepo
	RequestRepo    requestservice.Repo
	ProductRepo    productservice.Repo
	ClientRepo     clientservice.Repo
	PointRepo      pointservice.Repo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:       userrepo.New(conn),
		BalanceRepo:    balancerepo.New(conn),
		HistoryRepo:    historyrepo.New(conn),
		RewardRepo:     rewardrepo.New(conn),
		RedemptionRepo: redemptionrepo.New(conn),
		RequestRepo:    requestrepo.New(conn),
		ProductRepo:    productrepo.New(conn),
		ClientRepo:     clientrepo.New(conn),
		PointRepo:      pointrepo.New(conn),
	}
}
