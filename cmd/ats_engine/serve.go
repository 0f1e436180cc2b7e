package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/eliteskills/ats-engine/internal/config"
	"github.com/eliteskills/ats-engine/internal/grammar"
	"github.com/eliteskills/ats-engine/internal/server"
	"github.com/eliteskills/ats-engine/internal/server/ratelimit"
)

var (
	serveConfigPath string
	servePort       int
	serveDBURL      string
	serveRateRPM    int
	serveRateBurst  int
	serveGrammar    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for scanning resumes against job descriptions.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveDBURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	serveCmd.Flags().IntVar(&serveRateRPM, "rate-limit-rpm", 30, "Requests per minute per client (0 disables rate limiting)")
	serveCmd.Flags().IntVar(&serveRateBurst, "rate-limit-burst", 10, "Burst allowance per client")
	serveCmd.Flags().BoolVar(&serveGrammar, "grammar", false, "Run improved drafts through the grammar correction API")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	var cfg config.Config
	if serveConfigPath != "" {
		loadedCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	// CLI flags override config file values when explicitly set
	if cmd.Flags().Changed("port") || cfg.Port == 0 {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = serveDBURL
	}
	if cmd.Flags().Changed("rate-limit-rpm") || cfg.RateLimitRPM == 0 {
		cfg.RateLimitRPM = serveRateRPM
	}
	if cmd.Flags().Changed("rate-limit-burst") || cfg.RateLimitBurst == 0 {
		cfg.RateLimitBurst = serveRateBurst
	}
	if cmd.Flags().Changed("grammar") {
		cfg.GrammarEnabled = serveGrammar
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
		Grammar:     grammarClient(&cfg),
		RateLimit: &ratelimit.Config{
			Enabled:           cfg.RateLimitRPM > 0,
			RequestsPerMinute: cfg.RateLimitRPM,
			Burst:             cfg.RateLimitBurst,
			CleanupInterval:   5 * time.Minute,
		},
		ShutdownTimeout: cfg.ShutdownTimeoutDuration(),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// grammarClient builds a grammar client from config. Disabled unless enabled
// explicitly; correction is always best-effort.
func grammarClient(cfg *config.Config) *grammar.Client {
	return &grammar.Client{
		Enabled:  cfg.GrammarEnabled,
		APIURL:   cfg.GrammarAPIURL,
		Language: cfg.GrammarLanguage,
	}
}
