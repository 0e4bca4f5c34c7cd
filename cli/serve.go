package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/notewise/notewise/engine/executor"
	"github.com/notewise/notewise/engine/infra/server"
	llmadapter "github.com/notewise/notewise/engine/llm/adapter"
	"github.com/notewise/notewise/pkg/config"
	"github.com/notewise/notewise/pkg/logger"
)

func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP proxy server",
		RunE:  runServe,
	}
	cmd.Flags().String("env-file", ".env", "Path to the env file loaded before configuration")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	envFile, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return fmt.Errorf("failed to get env-file flag: %w", err)
	}
	// Missing env files are fine; real deployments configure via environment.
	if _, statErr := os.Stat(envFile); statErr == nil {
		if loadErr := godotenv.Load(envFile); loadErr != nil {
			return fmt.Errorf("failed to load env file %s: %w", envFile, loadErr)
		}
	}

	logLevel, logJSON, logSource, err := logger.GetLoggerConfig(cmd)
	if err != nil {
		return err
	}
	logger.SetupLogger(logLevel, logJSON, logSource)
	log := logger.GetDefault()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logger.ContextWithLogger(ctx, log)

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	var client llmadapter.Client
	if cfg.LLM.APIKeyConfigured() {
		adapter, adapterErr := llmadapter.NewLangChainAdapter(&cfg.LLM)
		if adapterErr != nil {
			return adapterErr
		}
		client = adapter
	} else {
		log.Warn("no API key configured; AI requests will be rejected",
			"env_var", "LLM_API_KEY",
		)
		client = llmadapter.NewUnconfiguredClient()
	}

	srv := server.New(cfg, executor.New(client), log)
	log.Info("starting notewise",
		"provider", cfg.LLM.Provider,
		"model", cfg.LLM.Model,
		"api_key_configured", cfg.LLM.APIKeyConfigured(),
	)
	return srv.Run(ctx)
}
