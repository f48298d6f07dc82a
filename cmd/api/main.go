package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-pilot-api/infrastructure/integrator/gemini"
	"github.com/vfg2006/profit-pilot-api/infrastructure/repository"
	"github.com/vfg2006/profit-pilot-api/internal/api"
	"github.com/vfg2006/profit-pilot-api/internal/config"
	"github.com/vfg2006/profit-pilot-api/internal/scheduler"
	"github.com/vfg2006/profit-pilot-api/internal/usecases/cataloging"
	"github.com/vfg2006/profit-pilot-api/internal/usecases/insighting"
	"github.com/vfg2006/profit-pilot-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Inicializa configuração de logs antes de ler o ambiente
	log.Setup(os.Getenv("LOG_LEVEL"))

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := repository.Open(ctx, cfg.Storage)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir armazenamento de produtos")
	}
	defer closeRepo()

	logrus.WithFields(logrus.Fields{
		"driver": cfg.Storage.Driver,
		"path":   cfg.Storage.Path,
	}).Info("Armazenamento de produtos configurado")

	store := cataloging.NewStore(repo)

	insightService := insighting.NewService(newGenerator(ctx, cfg), store, cfg.App.Currency)

	insightRefreshService := scheduler.NewInsightRefreshService(insightService, cfg)

	server, err := api.New(cfg, store, insightService, insightRefreshService)
	if err != nil {
		logrus.Fatal(err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := insightRefreshService.Start(gctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização de insights")
			return err
		}
		return nil
	})

	g.Go(func() error {
		return server.Run(gctx)
	})

	if err := g.Wait(); err != nil {
		logrus.Error(err)
	}

	insightRefreshService.Wait()
	logrus.Info("Aplicação finalizada")
}

// newGenerator cria o cliente Gemini quando há chave configurada.
// Sem chave, os insights caem no fallback local.
func newGenerator(ctx context.Context, cfg *config.Config) insighting.Generator {
	if !cfg.HasGemini() {
		logrus.Warn("GEMINI_API_KEY não configurada, insights usarão fallback")
		return nil
	}

	client, err := gemini.NewClient(ctx, cfg.Gemini)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar cliente Gemini, insights usarão fallback")
		return nil
	}

	logrus.WithField("model", cfg.Gemini.Model).Info("Cliente Gemini configurado")
	return client
}
