package mcp

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/AlliediMpact/coinbox-go/client"
	"github.com/AlliediMpact/coinbox-go/mcp/internal/handlers"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Configuration holds all settings for the MCP server
type config struct {
	HTTPAddr        string
	LogLevel        zerolog.Level
	ServerName      string
	ServerVersion   string
	ShutdownTimeout time.Duration
	HTTPReadTimeout time.Duration
	HTTPIdleTimeout time.Duration
}

// loadConfig loads configuration from environment variables, then args.
func loadConfig(args []string) (*config, error) {
	cfg := &config{
		HTTPAddr:        getEnvOrDefault("MCP_HTTP_ADDR", ":11547"),
		ServerName:      getEnvOrDefault("MCP_SERVER_NAME", "coinbox-mcp-server"),
		ServerVersion:   getEnvOrDefault("MCP_SERVER_VERSION", client.Version),
		ShutdownTimeout: parseDurationOrDefault("SHUTDOWN_TIMEOUT", "10s"),
		HTTPReadTimeout: parseDurationOrDefault("HTTP_READ_TIMEOUT", "5s"),
		HTTPIdleTimeout: parseDurationOrDefault("HTTP_IDLE_TIMEOUT", "120s"),
	}

	cfg.LogLevel = parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info"))

	// Command line flags override env vars
	fs := flag.NewFlagSet("coinbox-mcp-server", flag.ContinueOnError)
	var rawLogLevel string
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "Listen address for the streamable HTTP transport")
	fs.StringVar(&rawLogLevel, "log-level", cfg.LogLevel.String(), "Log level: debug|info|warn|error")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if rawLogLevel != "" {
		cfg.LogLevel = parseLogLevel(rawLogLevel)
	}
	return cfg, nil
}

// initLogger initializes the logger with the configured level
func (c *config) initLogger() {
	zerolog.SetGlobalLevel(c.LogLevel)
	log.Logger = log.With().Caller().Logger()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationOrDefault(envKey, defaultValue string) time.Duration {
	if value := os.Getenv(envKey); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	d, _ := time.ParseDuration(defaultValue)
	return d
}

func parseLogLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

// NewServer builds an MCP server exposing every Coin Box tool backed by sdk.
func NewServer(name, version string, sdk *client.Client) (*server.MCPServer, error) {
	s := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
	)

	for _, h := range []toolRegisterer{
		handlers.NewLoanHandler(sdk),
		handlers.NewInvestmentHandler(sdk),
		handlers.NewTransactionHandler(sdk),
		handlers.NewCryptoOrderHandler(sdk),
	} {
		if err := h.RegisterTools(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// RunMCPServer starts the MCP server configured from the environment and
// the process arguments.
func RunMCPServer() error {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}
	cfg.initLogger()

	sdk, err := client.NewFromEnv()
	if err != nil {
		log.Error().Stack().Err(err).Msg("Failed to create client")
		return err
	}
	log.Info().Str("base_url", sdk.BaseURL()).Msg("Client created successfully")

	s, err := NewServer(cfg.ServerName, cfg.ServerVersion, sdk)
	if err != nil {
		log.Error().Err(err).Msg("Failed to register tools")
		return err
	}

	// Auto-detect transport method
	if shouldUseStdio() {
		// Stdio transport (for desktop hosts, launched processes)
		log.Info().Msg("Starting Coin Box MCP server (stdio transport)")
		defer func() { _ = sdk.Close() }()
		return server.ServeStdio(s)
	}

	log.Info().Str("addr", cfg.HTTPAddr).Msg("Starting Coin Box MCP server (Streamable HTTP)")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	shutdownComplete := make(chan struct{})

	streamSrv := server.NewStreamableHTTPServer(
		s,
		server.WithEndpointPath("/mcp"),
		server.WithHeartbeatInterval(30*time.Second),
	)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      streamSrv,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: 0, // streaming responses have no deadline
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		defer close(shutdownComplete)

		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		log.Info().Msg("Shutting down HTTP server...")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during HTTP server shutdown")
		}

		log.Info().Msg("Shutting down MCP streamable server...")
		if err := streamSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during MCP server shutdown")
		}

		if err := sdk.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing Coin Box client")
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("HTTP server error")
		return err
	}

	<-shutdownComplete
	log.Info().Msg("MCP server shutdown complete")
	return nil
}

// shouldUseStdio determines whether to use stdio transport based on environment
func shouldUseStdio() bool {
	if os.Getenv("MCP_STDIO") == "true" {
		return true
	}
	if os.Getenv("MCP_HTTP") == "true" {
		return false
	}

	// Use stdio if stdin is not a terminal (launched by another process)
	if fileInfo, err := os.Stdin.Stat(); err == nil {
		return (fileInfo.Mode() & os.ModeCharDevice) == 0
	}
	return false
}
