package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"Storefront/internal/storefront"
	"Storefront/internal/tui"
	"Storefront/pkg/kit"
)

const service = "storefront"

var (
	apiURL       string
	timeout      time.Duration
	logFile      string
	dateLayout   string
	otlpEndpoint string
	verbose      bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Browse the product catalog from the terminal",
	Long: `storefront loads the product catalog from the catalog API and shows it as
a browsable grid with search, a detail view and an in-memory cart.

Run without arguments to start the interactive browser.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = kit.NewFileLogger(service, logFile, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		tp, err := kit.NewTracerProvider(cmd.Context(), kit.TracingConfig{
			ServiceName: service,
			Endpoint:    otlpEndpoint,
		})
		if err != nil {
			return err
		}
		cobra.OnFinalize(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(ctx); err != nil {
				logger.Warn("tracer shutdown", zap.Error(err))
			}
		})
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl := newController()
		logger.Info("starting interactive storefront", zap.String("api_url", apiURL))

		p := tea.NewProgram(tui.New(cmd.Context(), ctrl),
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
			tea.WithContext(cmd.Context()),
		)
		_, err := p.Run()
		return err
	},
}

var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "Print the catalog, optionally filtered by name or category",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl := newController()
		if err := ctrl.Start(cmd.Context()); err != nil {
			return err
		}
		if len(args) == 1 {
			ctrl.Search(args[0])
		}

		fmt.Fprintln(cmd.OutOrStdout(), tui.CardTable(ctrl.Screen.Cards()))
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Fetch a single product and print its details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[0])
		}

		ctrl := newController()
		if err := ctrl.OpenRemote(cmd.Context(), id); err != nil {
			return err
		}

		d, _ := ctrl.Screen.Detail()
		fmt.Fprintln(cmd.OutOrStdout(), tui.DetailText(d))
		return nil
	},
}

func newController() *storefront.Controller {
	client := storefront.NewCatalogClient(apiURL, timeout)
	return storefront.NewController(client, logger, storefront.WithDateLayout(dateLayout))
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&apiURL, "api-url", getenv("STOREFRONT_API_URL", "http://localhost:8082"), "catalog API base URL")
	f.DurationVar(&timeout, "timeout", getenvDuration("STOREFRONT_TIMEOUT", 5*time.Second), "per-request timeout for catalog calls (0 disables)")
	f.StringVar(&logFile, "log-file", getenv("STOREFRONT_LOG_FILE", "storefront.log"), "file to write JSON logs to")
	f.StringVar(&dateLayout, "date-layout", storefront.DefaultDateLayout, "Go time layout for the Added date")
	f.StringVar(&otlpEndpoint, "otlp-endpoint", os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"), "OTLP gRPC endpoint for traces (empty disables export)")
	f.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(listCmd, showCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvDuration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
