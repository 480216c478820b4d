package controllers

import (
	"context"

	"tracker/src/config"
	"tracker/src/models"
	"tracker/src/repositories"
	"tracker/src/schemas"
	"tracker/src/services"
	redis_utils "tracker/src/utils/redis"

	"github.com/go-chi/jwtauth"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IController interface {
	GetAllAssets(ctx context.Context) ([]models.Asset, error)
	GetAssetByID(ctx context.Context, id int) (*models.Asset, error)

	GetAllHoldings(ctx context.Context) ([]models.HoldingWithAsset, error)
	GetHoldingByID(ctx context.Context, id int) (*models.HoldingWithAsset, error)
	BuyAsset(ctx context.Context, req *schemas.BuyRequest) (*schemas.BuyResponse, error)
	SellHolding(ctx context.Context, req *schemas.SellRequest) (*schemas.SellResponse, error)

	GetAllTransactions(ctx context.Context) ([]models.Transaction, error)
	GetSettlement(ctx context.Context) (*models.Settlement, error)
	GetNetWorthHistory(ctx context.Context) ([]models.NetWorth, error)

	GetPortfolioSummary(ctx context.Context) (*schemas.PortfolioSummary, error)
	GetPortfolioReport(ctx context.Context) (string, error)

	IssueToken(ctx context.Context, username, password string) (*schemas.TokenResponse, error)
}

type Controller struct {
	AssetRepo       repositories.AssetRepository
	HoldingRepo     repositories.HoldingRepository
	TransactionRepo repositories.TransactionRepository
	SettlementRepo  repositories.SettlementRepository
	NetWorthRepo    repositories.NetWorthRepository

	LedgerService    services.LedgerServiceI
	PortfolioService services.PortfolioServiceI

	// Cache is optional; a nil handler disables summary caching.
	Cache     *redis_utils.RedisHandler
	TokenAuth *jwtauth.JWTAuth
	AuthCfg   config.AuthConfig
}

func NewController(db *pgxpool.Pool, cache *redis_utils.RedisHandler, cfg *config.Config) *Controller {
	assetRepo := repositories.NewAssetRepository(db)
	holdingRepo := repositories.NewHoldingRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	settlementRepo := repositories.NewSettlementRepository(db)
	netWorthRepo := repositories.NewNetWorthRepository(db)

	return &Controller{
		AssetRepo:        assetRepo,
		HoldingRepo:      holdingRepo,
		TransactionRepo:  transactionRepo,
		SettlementRepo:   settlementRepo,
		NetWorthRepo:     netWorthRepo,
		LedgerService:    services.NewLedgerService(db, assetRepo, holdingRepo, transactionRepo, settlementRepo),
		PortfolioService: services.NewPortfolioService(holdingRepo, assetRepo, transactionRepo, settlementRepo),
		Cache:            cache,
		TokenAuth:        jwtauth.New("HS256", []byte(cfg.Auth.Secret), nil),
		AuthCfg:          cfg.Auth,
	}
}
