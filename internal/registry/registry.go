package registry

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/evert/color-hints-mcp-go/internal/config"
	"github.com/evert/color-hints-mcp-go/internal/scan"
	"github.com/evert/color-hints-mcp-go/internal/services"
	"github.com/evert/color-hints-mcp-go/internal/tools"
	"github.com/evert/color-hints-mcp-go/internal/tools/colors"
	"github.com/evert/color-hints-mcp-go/internal/tools/drive"
)

// toolNameRE enforces SEP-986: tool names must match ^[a-zA-Z0-9_-]{1,64}$
var toolNameRE = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// ValidateToolName checks that a tool name complies with SEP-986.
func ValidateToolName(name string) error {
	if !toolNameRE.MatchString(name) {
		return fmt.Errorf("tool name %q does not match SEP-986 pattern ^[a-zA-Z0-9_-]{1,64}$", name)
	}
	return nil
}

// serviceEnabled returns true if the service is enabled (or no filter is set).
func serviceEnabled(cfg *config.Config, service string) bool {
	return len(cfg.EnabledServices) == 0 || slices.Contains(cfg.EnabledServices, service)
}

// RegisterAll registers all tool packages with the server, applying tier and
// service filters. The drive service is skipped when factory is nil.
func RegisterAll(server *mcp.Server, engine *scan.Engine, factory *services.Factory, cfg *config.Config, tierMap map[string]config.ToolInfo) {
	slog.Info("registering tools",
		"tier", cfg.ToolTier,
		"services", cfg.EnabledServices,
	)

	var include tools.Filter = func(tool *mcp.Tool) bool {
		if err := ValidateToolName(tool.Name); err != nil {
			slog.Error("invalid tool name, skipping", "error", err)
			return false
		}
		return ShouldIncludeTool(tool.Name, cfg, tierMap)
	}

	if serviceEnabled(cfg, "colors") {
		colors.Register(server, engine, include)
		slog.Info("registered service", "service", "colors")
	}
	if serviceEnabled(cfg, "drive") && factory != nil {
		drive.Register(server, factory, engine, include)
		slog.Info("registered service", "service", "drive")
	}
}

// ShouldIncludeTool checks whether a tool should be registered based on the current config.
func ShouldIncludeTool(toolName string, cfg *config.Config, tierMap map[string]config.ToolInfo) bool {
	info, ok := tierMap[toolName]
	if !ok {
		slog.Warn("tool not found in tier config, skipping", "tool", toolName)
		return false
	}

	// Filter by tier level
	if config.TierLevel(info.Tier) > config.TierLevel(cfg.ToolTier) {
		return false
	}

	// Filter by enabled services
	return serviceEnabled(cfg, info.Service)
}
