package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/order-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/order-analytics-api/infrastructure/repository"
	"github.com/vfg2006/order-analytics-api/internal/api"
	"github.com/vfg2006/order-analytics-api/internal/config"
	"github.com/vfg2006/order-analytics-api/internal/scheduler"
	"github.com/vfg2006/order-analytics-api/internal/sink"
	"github.com/vfg2006/order-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/order-analytics-api/internal/usecases/loading"
)

func main() {
	serve := flag.Bool("serve", false, "após a carga, expõe os KPIs via API HTTP e agenda recargas")
	flag.Parse()

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

	// Configuração incompleta aborta antes de tocar nas fontes de dados
	if err := cfg.Validate(); err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sources := loading.NewFileSourceProvider(cfg.Sources)
	resultSink := sink.New(cfg.Output.Dir)

	// As duas abordagens são independentes: a falha fatal de uma não
	// impede a execução da outra
	sqlErr := runSQLApproach(ctx, cfg, sources, resultSink)
	if sqlErr != nil {
		logrus.WithError(sqlErr).Error("Abordagem SQL falhou")
	}

	memoryErr := runMemoryApproach(ctx, cfg, sources, resultSink)
	if memoryErr != nil {
		logrus.WithError(memoryErr).Error("Abordagem em memória falhou")
	}

	if *serve {
		if err := runServer(ctx, cfg, sources); err != nil {
			logrus.Fatal(err)
		}
		return
	}

	if sqlErr != nil || memoryErr != nil {
		os.Exit(1)
	}

	logrus.Info("Análise concluída pelas duas abordagens")
}

// runSQLApproach executa o caminho relacional: carga no banco e os quatro
// KPIs como sentenças de agregação
func runSQLApproach(
	ctx context.Context,
	cfg *config.Config,
	sources loading.SourceProvider,
	resultSink *sink.Sink,
) error {
	conn, err := pgconn(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	loader := loading.NewService(
		repository.NewSchemaRepository(conn),
		repository.NewCustomerRepository(conn),
		repository.NewOrderRepository(conn),
		sources,
	)

	summary, rejections, err := loader.Run(ctx)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"customers_loaded": summary.CustomersLoaded,
		"orders_loaded":    summary.OrdersLoaded,
		"rejects":          summary.Rejects,
	}).Info("Resumo da carga (SQL)")

	if err := resultSink.WriteJSON("sql_load_summary.json", summary); err != nil {
		return err
	}
	if err := resultSink.WriteJSON("sql_rejections.json", rejections); err != nil {
		return err
	}

	engine := analyzing.NewSQLService(repository.NewKPIRepository(conn))

	report, err := analyzing.BuildReport(ctx, engine, cfg.KPI.TopSpendersWindowDays, cfg.KPI.TopSpendersLimit)
	if err != nil {
		return err
	}

	return resultSink.WriteReportJSON("sql", report)
}

// runMemoryApproach executa o caminho tabular: reingestão das fontes para o
// espelho em memória e os mesmos quatro KPIs por agrupamento imperativo
func runMemoryApproach(
	ctx context.Context,
	cfg *config.Config,
	sources loading.SourceProvider,
	resultSink *sink.Sink,
) error {
	input, err := loading.ReadAndClean(sources)
	if err != nil {
		return err
	}

	ds, summary, rejections := loading.BuildDataset(input)

	logrus.WithFields(logrus.Fields{
		"customers_loaded": summary.CustomersLoaded,
		"orders_loaded":    summary.OrdersLoaded,
		"rejects":          summary.Rejects,
	}).Info("Resumo da carga (memória)")

	// O caminho em memória sobrevive sozinho quando o relacional falha;
	// o seu resumo e as suas rejeições também vão para o diretório de saída
	if err := resultSink.WriteJSON("memory_load_summary.json", summary); err != nil {
		return err
	}
	if err := resultSink.WriteJSON("memory_rejections.json", rejections); err != nil {
		return err
	}

	engine := analyzing.NewMemoryService(ds)

	report, err := analyzing.BuildReport(ctx, engine, cfg.KPI.TopSpendersWindowDays, cfg.KPI.TopSpendersLimit)
	if err != nil {
		return err
	}

	if err := resultSink.WriteReportJSON("memory", report); err != nil {
		return err
	}

	return resultSink.WriteReportCSV("memory", report)
}

// runServer mantém o processo vivo servindo os KPIs do armazenamento
// persistido, com recarga periódica agendada
func runServer(ctx context.Context, cfg *config.Config, sources loading.SourceProvider) error {
	conn, err := pgconn(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	loader := loading.NewService(
		repository.NewSchemaRepository(conn),
		repository.NewCustomerRepository(conn),
		repository.NewOrderRepository(conn),
		sources,
	)
	tracker := loading.NewTracker()

	summary, rejections, err := loader.Run(ctx)
	if err != nil {
		return err
	}
	tracker.Record(summary, rejections)

	refreshService := scheduler.NewRefreshSyncService(loader, tracker, cfg)
	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga")
	}

	engine := analyzing.NewSQLService(repository.NewKPIRepository(conn))

	server, err := api.New(cfg, engine, loader, tracker)
	if err != nil {
		return err
	}

	return server.Run(ctx)
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) (*postgres.Connection, error) {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		return nil, err
	}

	if err := conn.Ping(ctx); err != nil {
		return nil, err
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn, nil
}
