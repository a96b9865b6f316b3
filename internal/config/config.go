package config

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds all server configuration loaded from environment variables and CLI flags.
type Config struct {
	Server struct {
		Transport string
		Port      int
		Host      string
	}
	ToolTier        string
	EnabledServices []string
	LogLevel        string
	SettingsPath    string
	PantoneDir      string
	TiersPath       string
	CredentialsFile string
}

// Load reads configuration from environment variables and the given CLI
// arguments (without the program name). Flags take precedence over
// environment variables.
func Load(args []string) (*Config, error) {
	cfg := &Config{}

	cfg.EnabledServices = splitList(os.Getenv("ENABLED_SERVICES"))
	cfg.Server.Host = envOrDefault("COLOR_HINTS_HOST", "0.0.0.0")
	cfg.Server.Transport = envOrDefault("MCP_TRANSPORT", "stdio")
	cfg.LogLevel = envOrDefault("LOG_LEVEL", "info")
	cfg.ToolTier = envOrDefault("TOOL_TIER", "complete")
	cfg.SettingsPath = os.Getenv("COLOR_HINTS_SETTINGS")
	cfg.PantoneDir = os.Getenv("COLOR_HINTS_PANTONE_DIR")
	cfg.TiersPath = os.Getenv("COLOR_HINTS_TIERS")
	cfg.CredentialsFile = os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")

	// Port
	portStr := os.Getenv("MCP_PORT")
	if portStr == "" {
		portStr = os.Getenv("PORT")
	}
	if portStr == "" {
		portStr = "8000"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid port %q: %w", portStr, err)
	}
	cfg.Server.Port = port

	fs := flag.NewFlagSet("color-hints-mcp", flag.ContinueOnError)
	fs.StringVar(&cfg.Server.Transport, "transport", cfg.Server.Transport, "Transport mode: stdio or streamable-http")
	fs.IntVar(&cfg.Server.Port, "port", cfg.Server.Port, "HTTP port for streamable-http")
	var toolsFlag string
	fs.StringVar(&toolsFlag, "tools", "", "Services to enable (comma-separated): colors,drive")
	fs.StringVar(&cfg.ToolTier, "tool-tier", cfg.ToolTier, "Load tools by tier: core, extended, or complete")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, or error")
	fs.StringVar(&cfg.SettingsPath, "settings", cfg.SettingsPath, "Path to the color settings YAML file")
	fs.StringVar(&cfg.PantoneDir, "pantone-dir", cfg.PantoneDir, "Directory of Pantone book JSON files")
	fs.StringVar(&cfg.TiersPath, "tiers", cfg.TiersPath, "Path to tool_tiers.yaml")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// CLI --tools flag overrides (not appends to) the ENABLED_SERVICES env var.
	if toolsFlag != "" {
		cfg.EnabledServices = splitList(toolsFlag)
	}

	switch cfg.Server.Transport {
	case "stdio", "streamable-http":
	default:
		return nil, fmt.Errorf("unknown transport %q — use 'stdio' or 'streamable-http'", cfg.Server.Transport)
	}
	if TierLevel(cfg.ToolTier) == 0 {
		return nil, fmt.Errorf("unknown tool tier %q — use 'core', 'extended', or 'complete'", cfg.ToolTier)
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseLogLevel maps a LOG_LEVEL value to a slog level.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
