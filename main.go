package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sahana-eden/budget/internal/config"
	v1 "github.com/sahana-eden/budget/internal/controllers/v1"
	"github.com/sahana-eden/budget/internal/models"
	"github.com/sahana-eden/budget/internal/rollup"
	"github.com/sahana-eden/budget/internal/router"
	"github.com/spf13/cobra"
)

var (
	// configFile is set by the --config flag.
	configFile string

	cfg    config.Config
	engine *rollup.Engine
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "eden-budget",
	Short:             "Budget roll-up engine for emergency response deployments",
	PersistentPreRunE: setup,
	RunE:              serve,
	SilenceUsage:      true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the API",
	RunE:  serve,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the database schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		// The schema is migrated on connect
		log.Info().Msg("database schema is up to date")
		return nil
	},
}

var refreshAll bool

var refreshCmd = &cobra.Command{
	Use:   "refresh [budget name]...",
	Short: "Recalculate budgets from their definitions",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if refreshAll {
			if len(args) > 0 {
				return fmt.Errorf("budget names can not be combined with --all")
			}
			return engine.RefreshAll(ctx)
		}

		if len(args) == 0 {
			return fmt.Errorf("name at least one budget or use --all")
		}

		for _, name := range args {
			budget, err := engine.GetBudgetByName(ctx, name)
			if err != nil {
				return fmt.Errorf("budget '%s': %w", name, err)
			}

			budget, err = engine.Refresh(ctx, budget.ID)
			if err != nil {
				return fmt.Errorf("budget '%s': %w", name, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: one-time %s %s, recurring %s %s\n", budget.Name, budget.TotalOnetimeCosts.StringFixed(2), cfg.Currency, budget.TotalRecurringCosts.StringFixed(2), cfg.Currency)
		}

		return nil
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Report stored totals that do not match their definition",
	RunE: func(cmd *cobra.Command, args []string) error {
		drifts, err := engine.Verify(cmd.Context())
		if err != nil {
			return err
		}

		for _, d := range drifts {
			fmt.Fprintln(cmd.OutOrStdout(), d.String())
		}

		if len(drifts) > 0 {
			return fmt.Errorf("%d totals do not match, run 'refresh --all' to repair them", len(drifts))
		}

		fmt.Fprintln(cmd.OutOrStdout(), "all totals match")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), router.Version())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file, environment variables take precedence")
	refreshCmd.Flags().BoolVar(&refreshAll, "all", false, "refresh every kit, bundle and budget")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads the configuration, configures logging and connects to the database.
func setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	var err error
	cfg, err = config.Load(configFile)
	if err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || strings.EqualFold(cfg.LogFormat, "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	if cfg.UsePostgres() {
		err = models.ConnectPostgres(cfg.PostgresDSN())
	} else {
		if err := os.MkdirAll(cfg.DataDir, os.ModePerm); err != nil {
			return err
		}
		err = models.Connect(cfg.SQLitePath())
	}
	if err != nil {
		return err
	}

	engine = rollup.New(models.DB,
		rollup.WithSettings(cfg.Settings),
		rollup.WithAuditor(rollup.LogAuditor{Logger: log.Logger.With().Str("component", "audit").Logger()}),
	)

	return nil
}

func serve(cmd *cobra.Command, args []string) error {
	r, teardown, err := router.Config(cfg.APIURL, cfg.CorsAllowOrigins)
	defer teardown()
	if err != nil {
		return err
	}

	router.AttachRoutes(v1.Controller{Engine: engine}, r.Group("/"), cfg.EnablePprof)

	log.Info().Str("url", cfg.APIURL.String()).Str("currency", cfg.Currency).Msgf("listening on port %s", cfg.Port)
	return r.Run(":" + cfg.Port)
}
