package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avelk/marketmath/internal/market"
)

var rootCmd = &cobra.Command{
	Use:   "marketmath",
	Short: "Price-per-unit quiz for the terminal",
	Long:  "Marketmath — a terminal quiz that generates word problems over a randomized market stall and scores free-text answers.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("templates", "", "Path to a question templates JSON file (default: embedded set)")
	pf.Float64("tolerance", 0.01, "Absolute tolerance for numeric answer comparison")
	pf.StringSlice("items", []string{"A", "B", "C", "D", "E", "F"}, "Item identifiers")
	pf.Int("min-quantity", 5, "Minimum item quantity")
	pf.Int("max-quantity", 100, "Maximum item quantity")
	pf.Int("quantity-step", 5, "Quantity grid step")
	pf.Int("min-total", 100, "Minimum item total price")
	pf.Int("max-total", 1000, "Maximum item total price")
	pf.Int("total-step", 50, "Total price grid step")
	pf.String("log-level", "info", "Log level (debug, info, warn, error)")
	pf.String("log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupLogging configures the default slog logger from flags.
func setupLogging(cmd *cobra.Command) {
	v := viperForCmd(cmd)

	var logLevel slog.Level
	switch strings.ToLower(v.GetString("log-level")) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: logLevel}
	var logHandler slog.Handler
	switch strings.ToLower(v.GetString("log-format")) {
	case "json":
		logHandler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	default:
		logHandler = slog.NewTextHandler(os.Stderr, handlerOpts)
	}
	slog.SetDefault(slog.New(logHandler))
}

// viperForCmd binds a command's flags and environment to a fresh viper
// instance.
func viperForCmd(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	_ = v.BindPFlags(cmd.Flags())
	_ = v.BindPFlags(cmd.Root().PersistentFlags())

	v.SetEnvPrefix("MARKETMATH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("marketmath")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/marketmath")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Warn("error reading config file", "error", err)
		}
	} else {
		slog.Info("loaded config file", "path", v.ConfigFileUsed())
	}

	return v
}

// marketConfig builds and validates the synthesizer configuration. A bad
// range or step is a fatal configuration error, not a recoverable one.
func marketConfig(v *viper.Viper) (market.Config, error) {
	cfg := market.Config{
		MinQuantity:  v.GetInt("min-quantity"),
		MaxQuantity:  v.GetInt("max-quantity"),
		QuantityStep: v.GetInt("quantity-step"),
		MinTotal:     v.GetInt("min-total"),
		MaxTotal:     v.GetInt("max-total"),
		TotalStep:    v.GetInt("total-step"),
		Items:        v.GetStringSlice("items"),
	}

	if cfg.QuantityStep <= 0 || cfg.TotalStep <= 0 {
		return cfg, fmt.Errorf("steps must be positive (quantity-step=%d, total-step=%d)", cfg.QuantityStep, cfg.TotalStep)
	}
	if cfg.MaxQuantity < cfg.MinQuantity {
		return cfg, fmt.Errorf("max-quantity %d below min-quantity %d", cfg.MaxQuantity, cfg.MinQuantity)
	}
	if cfg.MaxTotal < cfg.MinTotal {
		return cfg, fmt.Errorf("max-total %d below min-total %d", cfg.MaxTotal, cfg.MinTotal)
	}
	if cfg.MinQuantity <= 0 {
		return cfg, fmt.Errorf("min-quantity must be positive, got %d", cfg.MinQuantity)
	}
	if len(cfg.Items) == 0 {
		return cfg, fmt.Errorf("at least one item identifier is required")
	}
	return cfg, nil
}
