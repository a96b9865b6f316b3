package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/evert/color-hints-mcp-go/internal/config"
	"github.com/evert/color-hints-mcp-go/internal/lookup"
	"github.com/evert/color-hints-mcp-go/internal/middleware"
	"github.com/evert/color-hints-mcp-go/internal/registry"
	"github.com/evert/color-hints-mcp-go/internal/scan"
	"github.com/evert/color-hints-mcp-go/internal/services"
)

func main() {
	// Structured logging to stderr (stdout is reserved for MCP stdio transport)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	if err := run(ctx, os.Args[1:]); err != nil {
		cancel()
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
	cancel()
}

func run(ctx context.Context, args []string) error {
	// Load configuration
	cfg, err := config.Load(args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Set log level from config
	level, _ := config.ParseLogLevel(cfg.LogLevel)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	settings, err := config.LoadSettings(cfg.SettingsPath)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	opts, err := settings.ScanOptions()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	// Tables are built before any tool can run and never change afterwards.
	tables, err := lookup.Load(settings.LookupOptions(cfg.PantoneDir))
	if err != nil {
		return fmt.Errorf("loading color tables: %w", err)
	}
	engine, err := scan.NewEngine(tables, opts)
	if err != nil {
		return fmt.Errorf("compiling color grammar: %w", err)
	}
	slog.Info("color tables loaded",
		"names", tables.Names.Len(),
		"pantone_codes", tables.PantoneCodes.Len(),
		"pantone_names", tables.PantoneNames.Len(),
		"ral", tables.RAL.Len(),
		"ansi", tables.ANSI.Len(),
		"notations", engine.Allowed().Strings(),
	)

	factory := services.NewFactory(cfg.CredentialsFile)
	serviceAccount := services.ServiceAccountEmail(cfg.CredentialsFile)

	tierMap := loadTierMap(cfg.TiersPath)

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "color-hints-mcp",
		Version: "1.0.0",
	}, nil)

	// Wire SDK middleware
	server.AddReceivingMiddleware(
		middleware.LoggingMiddleware(logger),
		middleware.ShareHintMiddleware(serviceAccount),
	)

	// Register all tools through the registry
	registry.RegisterAll(server, engine, factory, cfg, tierMap)

	slog.Info("starting color hints MCP server",
		"transport", cfg.Server.Transport,
		"tier", cfg.ToolTier,
		"serviceAccount", serviceAccount,
	)

	// Start server on selected transport
	switch cfg.Server.Transport {
	case "stdio":
		if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
			return fmt.Errorf("stdio server error: %w", err)
		}

	case "streamable-http":
		mcpHandler := mcp.NewStreamableHTTPHandler(
			func(r *http.Request) *mcp.Server { return server },
			nil,
		)

		mux := http.NewServeMux()
		mux.Handle("/mcp", mcpHandler)

		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		httpServer := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			slog.Info("shutting down HTTP server")
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				slog.Error("HTTP server shutdown error", "error", err)
			}
		}()

		slog.Info("listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			return fmt.Errorf("HTTP server error: %w", err)
		}

	default:
		return fmt.Errorf("unknown transport %q — use 'stdio' or 'streamable-http'", cfg.Server.Transport)
	}

	return nil
}

// loadTierMap reads the tier file: the configured path, else the container
// path, else the repository-relative one. Without any, the built-in tiers
// apply.
func loadTierMap(configured string) map[string]config.ToolInfo {
	candidates := []string{configured, "/configs/tool_tiers.yaml", filepath.Join("configs", "tool_tiers.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, statErr := os.Stat(path); statErr != nil {
			continue
		}
		tierMap, err := config.LoadTiers(path)
		if err != nil {
			slog.Warn("could not load tier config — using built-in tiers",
				"path", path,
				"error", err,
			)
			return config.DefaultTiers()
		}
		return tierMap
	}
	return config.DefaultTiers()
}
