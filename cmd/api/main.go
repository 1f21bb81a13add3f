package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ticket-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/ticket-analytics-api/infrastructure/repository"
	"github.com/vfg2006/ticket-analytics-api/internal/api"
	"github.com/vfg2006/ticket-analytics-api/internal/config"
	"github.com/vfg2006/ticket-analytics-api/internal/scheduler"
	"github.com/vfg2006/ticket-analytics-api/internal/usecases/analytics"
	"github.com/vfg2006/ticket-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/ticket-analytics-api/internal/usecases/guarding"
	"github.com/vfg2006/ticket-analytics-api/internal/usecases/scoping"
	"github.com/vfg2006/ticket-analytics-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(log.Options{
		Level:      cfg.App.LogLevel,
		Format:     cfg.App.LogFormat,
		File:       cfg.App.LogFile,
		MaxSizeMB:  cfg.App.LogMaxSizeMB,
		MaxBackups: cfg.App.LogMaxBackups,
		MaxAgeDays: cfg.App.LogMaxAgeDays,
	})
	log.L.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	storeRepo := repository.NewStoreRepository(pgConn)
	orderLedger := repository.NewOrderLedgerRepository(pgConn)
	refundLedger := repository.NewRefundLedgerRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	guard := guarding.NewService(log.L.WithField("component", "analytics_guard"))
	resolver := scoping.NewService(guard, storeRepo)

	analyticsService := analytics.NewService(
		guard,
		resolver,
		authenticating.NewIdentityProvider(),
		orderLedger,
		refundLedger,
	)

	auditService := scheduler.NewReconciliationAuditService(
		analyticsService,
		authenticator,
		cfg,
		log.L.WithField("component", "reconciliation_audit"),
	)

	if err := auditService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de auditoria de reconciliação")
	} else {
		log.L.Info("Agendador de auditoria de reconciliação iniciado com sucesso")
	}

	server, err := api.New(cfg, analyticsService, authenticator, auditService, pgConn)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.WithError(err).Error("Servidor finalizado com erro")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
