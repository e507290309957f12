package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/Sternrassler/museum-client/internal/config"
	"github.com/Sternrassler/museum-client/internal/output"
	"github.com/Sternrassler/museum-client/pkg/logging"
	"github.com/Sternrassler/museum-client/pkg/metrics"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app holds what every subcommand shares once configuration is loaded.
type app struct {
	out    io.Writer
	errOut io.Writer

	cfgFile     string
	verbose     bool
	metricsAddr string

	v       *viper.Viper
	cfg     *config.Config
	printer *output.Printer
	logger  zerolog.Logger

	closers []func() error
}

// execute runs artview with args. Resources opened by the command are closed
// even when it fails; PersistentPostRunE is skipped after a RunE error.
func execute(out, errOut io.Writer, args []string) (err error) {
	a := &app{out: out, errOut: errOut, v: viper.New()}
	defer func() {
		err = errors.Join(err, a.close())
	}()

	root := newRootCmd(a)
	root.SetArgs(args)
	return root.Execute()
}

func newRootCmd(a *app) *cobra.Command {

	root := &cobra.Command{
		Use:   "artview",
		Short: "Browse museum collections page by page",
		Long: `artview fetches one page of artworks at a time from the Metropolitan
Museum of Art or the Art Institute of Chicago.

Example usage:
  artview departments                      # List Met departments
  artview met --department "Asian Art"     # First page of a department
  artview artic --page 3                   # Third page of the AIC collection
  artview browse met                       # Interactive browser`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.Context())
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is .artview.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	flags.Int("page-size", 12, "items per page")
	flags.Bool("json", false, "print pages as JSON")
	flags.StringVar(&a.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while running")

	_ = a.v.BindPFlag("pagination.page_size", flags.Lookup("page-size"))
	_ = a.v.BindPFlag("output.json", flags.Lookup("json"))
	_ = a.v.BindPFlag("metrics.addr", flags.Lookup("metrics-addr"))

	root.AddCommand(
		newMetCmd(a),
		newArticCmd(a),
		newDepartmentsCmd(a),
		newBrowseCmd(a),
	)
	return root
}

func (a *app) init(ctx context.Context) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if a.verbose {
		cfg.Logging.Level = string(logging.LevelDebug)
	}
	a.cfg = cfg

	a.logger = logging.Setup(logging.Config{
		Level:  logging.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format == "text",
		Output: a.errOut,
	}).With().Str("component", "artview").Logger()

	a.printer = output.NewPrinterTo(a.out, a.errOut, cfg.Output.Colors)

	a.logger.Debug().
		Str("config_file", a.v.ConfigFileUsed()).
		Int("page_size", cfg.Pagination.PageSize).
		Str("cache_store", cfg.Cache.Store).
		Msg("Configuration loaded")

	if cfg.Metrics.Addr != "" {
		if err := a.serveMetrics(ctx, cfg.Metrics.Addr); err != nil {
			return err
		}
	}
	return nil
}

// serveMetrics exposes /metrics until the command finishes.
func (a *app) serveMetrics(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("metrics listener: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error().Err(err).Msg("Metrics server failed")
		}
	}()
	a.logger.Info().Str("addr", ln.Addr().String()).Msg("Serving metrics")

	a.closers = append(a.closers, func() error {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return nil
}

func (a *app) close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
