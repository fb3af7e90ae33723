package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hugohenrick/whop-relay/internal/config"
	"github.com/hugohenrick/whop-relay/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Carregar variáveis de ambiente
	dotEnvErr := config.LoadDotEnv()

	// Falta de credencial impede a subida, nunca é adiada para a primeira requisição
	cfg, err := config.Load()
	if err != nil {
		var cfgErr *config.ConfigError
		if errors.As(err, &cfgErr) {
			return fmt.Errorf("relay não pode iniciar: %w", err)
		}
		return err
	}

	log := logger.NewLogger(cfg.LogLevel)
	if dotEnvErr != nil {
		log.Warn("Arquivo .env não encontrado", "error", dotEnvErr)
	}

	app, err := NewApp(cfg, log, nil)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Start(ctx)
}
