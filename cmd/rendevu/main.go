// rendevu manages Cal.com availability over MCP and relays booking webhooks
// to a generative text provider.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/soypete/rendevu/pkg/calcom"
	"github.com/soypete/rendevu/pkg/config"
	"github.com/soypete/rendevu/pkg/httpbridge"
	"github.com/soypete/rendevu/pkg/llm"
	"github.com/soypete/rendevu/pkg/logging"
	"github.com/soypete/rendevu/pkg/mcp"
	"github.com/soypete/rendevu/pkg/tools"
	calcomtools "github.com/soypete/rendevu/pkg/tools/calcom"
	"github.com/soypete/rendevu/pkg/webhook"
)

const (
	serverName = "rendevu"
	version    = "1.0.0"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:   "rendevu",
		Short: "Cal.com tools over MCP and an AI webhook relay",
		Long: `rendevu exposes Cal.com schedules, event types, bookings, slots, profile and
OAuth clients as MCP tools, and relays Cal.com webhooks to Anthropic or OpenAI
to draft briefs, summaries and emails.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to config file (default: rendevu.yaml)")

	rootCmd.AddCommand(mcpCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(toolsCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger, err := logging.New(cfg.Log.Level, !cfg.IsProduction())
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func newCalcomClient(cfg *config.Config, logger *zap.Logger) *calcom.Client {
	return calcom.NewClient(calcom.Config{
		APIKey:     cfg.Calcom.APIKey,
		BaseURL:    cfg.Calcom.BaseURL,
		APIVersion: cfg.Calcom.APIVersion,
		Timeout:    cfg.Calcom.Timeout,
	}, calcom.WithLogger(logger))
}

func mcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if err := cfg.RequireCalcom(); err != nil {
				return err
			}

			registry := tools.NewToolRegistry()
			if err := calcomtools.Register(registry, newCalcomClient(cfg, logger)); err != nil {
				return fmt.Errorf("failed to register tools: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server := mcp.NewServer(serverName, version, registry, mcp.WithLogger(logger))
			return server.Run(ctx)
		},
	}
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the webhook relay and AI HTTP endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if addr != "" {
				cfg.HTTP.Addr = addr
			}

			provider, err := llm.NewProvider(llm.Config{
				Provider: llm.ProviderType(cfg.AI.Provider),
				APIKey:   cfg.AIAPIKey(),
				Model:    cfg.AI.Model,
				BaseURL:  cfg.AIBaseURL(),
			}, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server := httpbridge.NewServer(provider, webhook.NewDispatcher(provider, logger), logger)
			return server.Run(ctx, cfg.HTTP.Addr, cfg.HTTP.ShutdownTimeout)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides HTTP_ADDR)")
	return cmd
}

// toolEntry is one row of the exported tool catalog
type toolEntry struct {
	Name        string                 `json:"name" yaml:"name"`
	Description string                 `json:"description" yaml:"description"`
	InputSchema map[string]interface{} `json:"inputSchema" yaml:"inputSchema"`
}

func toolsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Print the MCP tool catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := tools.NewToolRegistry()
			if err := calcomtools.Register(registry, calcom.NewClient(calcom.Config{})); err != nil {
				return err
			}
			return writeCatalog(cmd.OutOrStdout(), registry, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format (json, yaml)")
	return cmd
}

func writeCatalog(w io.Writer, registry *tools.ToolRegistry, format string) error {
	list := registry.List()
	catalog := make([]toolEntry, 0, len(list))
	for _, tool := range list {
		catalog = append(catalog, toolEntry{
			Name:        tool.Name(),
			Description: tool.Description(),
			InputSchema: tool.InputSchema(),
		})
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(catalog)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(catalog); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format: %s (supported: json, yaml)", format)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", serverName, version)
		},
	}
}
