package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hturner08/openmc/pkg/chain"
	"github.com/hturner08/openmc/pkg/config"
	"github.com/hturner08/openmc/pkg/deplete"
)

var (
	chainFile     string
	crossSections string
	configPath    string
)

var rootCmd = &cobra.Command{
	Use:   "deplete",
	Short: "Couple a transport solver with a depletion chain",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Inspect depletion chain files",
}

var chainInfoCmd = &cobra.Command{
	Use:   "info <chain-file>",
	Short: "Summarize a depletion chain file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := chain.FromXML(args[0], nil)
		if err != nil {
			return err
		}
		fmt.Printf("chain: %s\n", args[0])
		fmt.Printf("nuclides: %d\n", c.Len())
		fmt.Printf("reaction types: %v\n", c.ReactionTypes())
		for _, n := range c.Nuclides {
			fmt.Printf("  %-10s decay_modes=%d reactions=%d\n", n.Name, len(n.DecayModes), len(n.Reactions))
		}
		return nil
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the depletion chain path from argument, environment, and registry",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := config.NewLogger(config.LoggingConfig{Level: "info", Format: "console"})
		if err != nil {
			return err
		}
		defer logger.Sync()

		path, err := deplete.ResolveChainFile(deplete.Settings{
			ChainFile:     chainFile,
			CrossSections: crossSections,
		}, logger)
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute one scoped depletion run with the built-in constant operator",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("error loading configuration: %w", err)
		}

		logger, err := config.NewLogger(cfg.Logging)
		if err != nil {
			return fmt.Errorf("error setting up logger: %w", err)
		}
		defer logger.Sync()

		base, err := deplete.NewBase(deplete.Settings{
			ChainFile:     cfg.Chain.File,
			CrossSections: cfg.Chain.CrossSections,
			FissionQ:      cfg.Chain.FissionQ,
		}, logger)
		if err != nil {
			return err
		}
		base.SetOutputDir(cfg.Output.Dir)

		if cfg.Monitoring.Enabled {
			srv := startMetricsServer(cfg.Monitoring.Addr, logger)
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				srv.Shutdown(ctx)
			}()
		}

		op := deplete.NewConstantOperator(base, cfg.Operator.Eigenvalue, cfg.Operator.Materials, cfg.Operator.Volumes)
		r := &depletionRun{op: op, logger: logger}
		return r.Run()
	},
}

func startMetricsServer(addr string, logger *zap.Logger) *http.Server {
	router := chi.NewRouter()
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	go func() {
		logger.Info("Metrics server listening", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Metrics server error", zap.Error(err))
		}
	}()
	return srv
}

func init() {
	resolveCmd.Flags().StringVar(&chainFile, "chain-file", "", "Explicit depletion chain file path")
	resolveCmd.Flags().StringVar(&crossSections, "cross-sections", "", "Cross-section registry document")
	runCmd.Flags().StringVar(&configPath, "config", "config.yaml", "Path to configuration file")

	chainCmd.AddCommand(chainInfoCmd)
	rootCmd.AddCommand(chainCmd, resolveCmd, runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
