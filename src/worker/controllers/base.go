package controllers

import (
	"sync"

	"tracker/src/repositories"
	"tracker/src/scheduler"
	"tracker/src/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

type Controller struct {
	DB               *pgxpool.Pool
	PortfolioService services.PortfolioServiceI
	PricingService   services.PricingServiceI
	NetWorthRepo     repositories.NetWorthRepository
	Logger           *logrus.Logger

	SchedulerMutex sync.Mutex
	Schedulers     map[string]*scheduler.ScheduledTask
}

func NewController(db *pgxpool.Pool, logger *logrus.Logger) *Controller {
	assetRepo := repositories.NewAssetRepository(db)
	holdingRepo := repositories.NewHoldingRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	settlementRepo := repositories.NewSettlementRepository(db)

	return &Controller{
		DB:               db,
		PortfolioService: services.NewPortfolioService(holdingRepo, assetRepo, transactionRepo, settlementRepo),
		PricingService:   services.NewPricingService(assetRepo),
		NetWorthRepo:     repositories.NewNetWorthRepository(db),
		Logger:           logger,
		Schedulers:       map[string]*scheduler.ScheduledTask{},
	}
}
