package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transactions-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/transactions-dashboard-api/infrastructure/integrator/seedsource"
	"github.com/vfg2006/transactions-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/transactions-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/transactions-dashboard-api/internal/api"
	"github.com/vfg2006/transactions-dashboard-api/internal/config"
	"github.com/vfg2006/transactions-dashboard-api/internal/scheduler"
	"github.com/vfg2006/transactions-dashboard-api/internal/usecases/browsing"
	"github.com/vfg2006/transactions-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/transactions-dashboard-api/internal/usecases/seeding"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	// Aplica as migrações antes de montar os repositórios
	if err := migration.Run(pgConn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações no banco de dados")
	}

	transactionRepo := repository.NewTransactionRepository(pgConn)

	seedClient := seedsource.NewClient(cfg)

	browserService := browsing.NewService(transactionRepo)
	reporterService := reporting.NewService(transactionRepo)
	seederService := seeding.NewService(seedClient, transactionRepo)

	// Inicializa o agendador de reimportação do seed
	seedSyncService := scheduler.NewSeedSyncService(seederService, cfg)
	if err := seedSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reimportação do seed")
	}

	server, err := api.New(
		cfg,
		browserService,
		reporterService,
		seederService,
		seedSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
