package main

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RuslanName/P2PBot-sub000/config"
	"github.com/RuslanName/P2PBot-sub000/internal/adapter/chain"
	httpHandler "github.com/RuslanName/P2PBot-sub000/internal/adapter/http/handler"
	"github.com/RuslanName/P2PBot-sub000/internal/adapter/notify"
	"github.com/RuslanName/P2PBot-sub000/internal/adapter/price"
	pgStorage "github.com/RuslanName/P2PBot-sub000/internal/adapter/storage/postgres"
	redisStorage "github.com/RuslanName/P2PBot-sub000/internal/adapter/storage/redis"
	"github.com/RuslanName/P2PBot-sub000/internal/core/domain"
	"github.com/RuslanName/P2PBot-sub000/internal/core/ports"
	"github.com/RuslanName/P2PBot-sub000/internal/lock"
	"github.com/RuslanName/P2PBot-sub000/internal/service"
	"github.com/RuslanName/P2PBot-sub000/pkg/logger"
	"github.com/RuslanName/P2PBot-sub000/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting P2P exchange settlement core")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Currency registry and per-currency chain clients
	registry, chains, err := buildChains(cfg.Currencies, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize chain clients")
	}

	// Initialize repositories
	offerRepo := pgStorage.NewOfferRepo(pool)
	dealRepo := pgStorage.NewDealRepo(pool)
	walletRepo := pgStorage.NewWalletRepo(pool)
	caseRepo := pgStorage.NewComplianceRepo(pool)
	legRepo := pgStorage.NewSettlementLegRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Redis-backed stores
	windowStore := redisStorage.NewWindowStore(rdb)
	priceOracle := redisStorage.NewPriceCache(rdb, price.NewOracle(cfg.Price.BaseURL), cfg.Price.CacheTTL)

	// Kafka notifier
	notifier, err := notify.NewKafkaNotifier(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Kafka")
	}
	defer notifier.Close()
	log.Info().Msg("Kafka connected")

	// Key vault
	vault, err := service.NewKeyVaultService(cfg.Vault.MasterSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize key vault")
	}

	// Core services
	balanceSvc := service.NewBalanceService(walletRepo, chains, registry, cfg.Balance.Freshness, log)
	reservationSvc := service.NewReservationService(dealRepo)
	complianceSvc := service.NewComplianceService(caseRepo, windowStore, notifier, cfg.Compliance, log)
	settlementSvc, err := service.NewSettlementService(
		walletRepo, legRepo, chains, registry, vault,
		balanceSvc, complianceSvc, cfg.Fees, log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize settlement service")
	}
	dealSvc := service.NewDealService(
		transactor, dealRepo, offerRepo, walletRepo,
		balanceSvc, reservationSvc, complianceSvc, settlementSvc,
		notifier, lock.NewArena(), cfg.Sweeper.DealTTL, log,
	)
	offerSvc := service.NewOfferService(offerRepo, priceOracle, registry, log)

	// Expiry sweeper
	sweeper := service.NewSweeper(
		dealRepo, dealSvc, caseRepo, notifier,
		cfg.Sweeper.Interval, cfg.Sweeper.DealTTL, cfg.Compliance.CaseTTL, log,
	)
	sweepCtx, stopSweeper := context.WithCancel(ctx)
	defer stopSweeper()
	go sweeper.Run(sweepCtx)

	// Metrics registry
	promRegistry := prometheus.NewRegistry()
	metrics.Register(promRegistry)

	// Health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		DealSvc:        dealSvc,
		OfferSvc:       offerSvc,
		BalanceSvc:     balanceSvc,
		ReservationSvc: reservationSvc,
		ComplianceSvc:  complianceSvc,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Registry:       promRegistry,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	stopSweeper()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// buildChains seeds the currency registry from configuration and dials one
// chain client per currency, keyed by family.
func buildChains(currencies []config.CurrencyConfig, log zerolog.Logger) (domain.CurrencyRegistry, ports.ChainClients, error) {
	registry := make(domain.CurrencyRegistry, len(currencies))
	chains := ports.ChainClients{
		UTXO:    make(map[string]ports.UTXOChain),
		Account: make(map[string]ports.AccountChain),
	}

	for _, cc := range currencies {
		cur := domain.Currency{
			Code:          cc.Code,
			Family:        domain.CurrencyFamily(cc.Family),
			BaseDivisor:   cc.BaseDivisor,
			FallbackRate:  cc.FallbackRate,
			TokenContract: cc.TokenContract,
		}
		if cc.FixedFee != "" {
			fee, err := decimal.NewFromString(cc.FixedFee)
			if err != nil {
				return nil, chains, fmt.Errorf("currency %s: parse fixed fee: %w", cc.Code, err)
			}
			cur.FixedFee = fee
		}

		switch cur.Family {
		case domain.FamilyUTXO:
			chains.UTXO[cc.Code] = chain.NewUTXOClient(cc.RPCURL, cc.RPCUser, cc.RPCPassword, cc.FallbackRate, log)
		case domain.FamilyAccount:
			backend, err := chain.DialEVMBackend(cc.RPCURL)
			if err != nil {
				return nil, chains, fmt.Errorf("currency %s: dial chain: %w", cc.Code, err)
			}
			chains.Account[cc.Code] = chain.NewEVMClient(
				backend, big.NewInt(cc.ChainID), cc.TokenContract, cc.TreasuryKey, log,
			)
		default:
			return nil, chains, fmt.Errorf("currency %s: unknown family %q", cc.Code, cc.Family)
		}

		registry[cc.Code] = cur
	}

	return registry, chains, nil
}
