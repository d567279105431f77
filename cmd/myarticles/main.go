package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"myarticles/internal/article"
	"myarticles/internal/config"
	"myarticles/internal/logging"
	"myarticles/internal/telemetry"
	"myarticles/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	endpoint   string
	timeout    time.Duration
	logFile    string
	verbose    bool
	once       bool
)

// rootCmd shows the article list
var rootCmd = &cobra.Command{
	Use:   "myarticles",
	Short: "Show every article served by the article endpoint",
	Long: `myarticles fetches the article collection once from the configured
endpoint (default http://localhost:4000) and lists every title.

Configuration precedence: flags, then MYARTICLES_* environment variables,
then the YAML config file, then built-in defaults.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML config file (or set "+config.EnvConfig+")")
	rootCmd.Flags().StringVar(&endpoint, "endpoint", article.DefaultEndpoint, "article endpoint URL (or set "+config.EnvEndpoint+")")
	rootCmd.Flags().DurationVar(&timeout, "timeout", config.DefaultTimeout, "fetch timeout, 0 disables (or set "+config.EnvTimeout+")")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&once, "once", false, "fetch, print the list and exit without the interactive UI")
}

// overrides collects only the flags the user actually set.
func overrides(cmd *cobra.Command) config.Overrides {
	var o config.Overrides
	if cmd.Flags().Changed("config") {
		o.ConfigPath = &configPath
	}
	if cmd.Flags().Changed("endpoint") {
		o.Endpoint = &endpoint
	}
	if cmd.Flags().Changed("timeout") {
		o.Timeout = &timeout
	}
	return o
}

func run(cmd *cobra.Command, out io.Writer) error {
	cfg, err := config.Load(overrides(cmd))
	if err != nil {
		return err
	}

	logger, err := logging.New(logFile, verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting", zap.String("endpoint", cfg.Endpoint), zap.Duration("timeout", cfg.Timeout))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	tp, err := telemetry.NewProvider(ctx)
	if err != nil {
		logger.Warn("tracing disabled", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("trace shutdown", zap.Error(err))
		}
	}()

	src := article.NewHTTPSource(cfg.Endpoint,
		article.WithTimeout(cfg.Timeout),
		article.WithLogger(logger),
		article.WithTracer(tp.Tracer(article.TracerName)),
	)

	if once {
		return printOnce(src, logger, out)
	}

	model := ui.NewAppModel(src, logger).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// printOnce mounts a list view without a terminal program, waits for its
// single fetch and prints the unstyled tree.
func printOnce(src article.Source, logger *zap.Logger, out io.Writer) error {
	v := ui.NewArticleListView(src, logger)
	if fetch := v.Mount(); fetch != nil {
		v.Update(fetch())
	}

	if _, err := io.WriteString(out, v.Tree().String()); err != nil {
		return err
	}
	if failed, ok := v.State().(ui.Failed); ok {
		return fmt.Errorf("load articles: %w", failed.Err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "myarticles: %v\n", err)
		os.Exit(1)
	}
}
