package service

import (
	"time"

	"github.com/GlebRadaev/ecomarket/internal/pg"
	"github.com/GlebRadaev/ecomarket/internal/repo"
	"github.com/GlebRadaev/ecomarket/internal/service/authservice"
	"github.com/GlebRadaev/ecomarket/internal/service/clientservice"
	"github.com/GlebRadaev/ecomarket/internal/service/ledgerservice"
	"github.com/GlebRadaev/ecomarket/internal/service/pointservice"
	"github.com/GlebRadaev/ecomarket/internal/service/productservice"
	"github.com/GlebRadaev/ecomarket/internal/service/requestservice"
	"github.com/GlebRadaev/ecomarket/internal/service/rewardservice"
	pkgauth "github.com/GlebRadaev/ecomarket/pkg/auth"
)

type Services struct {
	AuthService    *authservice.Service
	LedgerService  *ledgerservice.Service
	RewardService  *rewardservice.Service
	RequestService *requestservice.Service
	ProductService *productservice.Service
	ClientService  *clientservice.Service
	PointService   *pointservice.Service
}

func New(repos *repo.Repositories, txManager pg.TXManager, jwtService pkgauth.JWTServiceInterface, tokenTTL time.Duration) *Services {
	ledgerService := ledgerservice.New(txManager, repos.BalanceRepo, repos.HistoryRepo, repos.RewardRepo, repos.RedemptionRepo)
	authService := authservice.New(repos.UserRepo, ledgerService, txManager, &pkgauth.HashService{}, jwtService, tokenTTL)

	return &Services{
		AuthService:    authService,
		LedgerService:  ledgerService,
		RewardService:  rewardservice.New(repos.RewardRepo, repos.RedemptionRepo, ledgerService),
		RequestService: requestservice.New(repos.RequestRepo, ledgerService, txManager),
		ProductService: productservice.New(repos.ProductRepo),
		ClientService:  clientservice.New(repos.ClientRepo),
		PointService:   pointservice.New(repos.PointRepo),
	}
}
