// Command luckwood suggests lottery tickets from the last draw.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/xtding233/luckwood/internal/config"
	"github.com/xtding233/luckwood/internal/lottery"
	"github.com/xtding233/luckwood/internal/render"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type app struct {
	cfg    config.Config
	logger *slog.Logger
	out    io.Writer
	errOut io.Writer
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}
	var (
		configPath string
		seed       uint64
		output     string
	)

	root := &cobra.Command{
		Use:           "luckwood",
		Short:         "Suggest lottery number groups from the most recent draw",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if seed > 0 {
				cfg.RNG = config.RNGConfig{Mode: config.ModeSeeded, Seed: seed}
			}
			if output != "" {
				cfg.Output = output
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = newLogger(errOut, cfg).With(slog.String("run_id", uuid.NewString()))
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&configPath, "config", "luckwood.yaml", "path to configuration file")
	root.PersistentFlags().Uint64Var(&seed, "seed", 0, "seed for reproducible output (0 = use config)")
	root.PersistentFlags().StringVar(&output, "output", "", "output format: text or json")

	root.AddCommand(a.newPredictCmd(), a.newCoverageCmd(), a.newGamesCmd())
	return root
}

// newLogger mirrors the configured level and handler format.
func newLogger(w io.Writer, cfg config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func (a *app) newPredictCmd() *cobra.Command {
	var gameName string
	cmd := &cobra.Command{
		Use:     "predict NUMBERS...",
		Short:   "Generate prediction groups from the last draw",
		Example: "  luckwood predict --game ssq 1 2 3 4 5 6\n  luckwood predict --game dlt 3,9,14,21,33",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := lottery.ParseGame(gameName)
			if err != nil {
				return fmt.Errorf("%w: %q", err, gameName)
			}
			draw, err := parseNumbers(args)
			if err != nil {
				return err
			}
			preds, err := lottery.Predict(g, draw, a.cfg.RandomSource())
			if err != nil {
				a.logger.Warn("prediction rejected",
					slog.String("game", string(g)),
					slog.Int("numbers", len(draw)),
					slog.String("error", err.Error()),
				)
				return err
			}
			a.logger.Debug("prediction generated",
				slog.String("game", string(g)),
				slog.String("rng", a.cfg.RNG.Mode),
				slog.Int("groups", len(preds)),
			)
			if a.cfg.Output == "json" {
				return render.JSON(a.out, g, preds)
			}
			return render.Text(a.out, g, preds)
		},
	}
	cmd.Flags().StringVarP(&gameName, "game", "g", string(lottery.GameDoubleColor), "game: double_color (ssq) or super_lotto (dlt)")
	return cmd
}

func (a *app) newCoverageCmd() *cobra.Command {
	var (
		gameName string
		trials   int
	)
	cmd := &cobra.Command{
		Use:   "coverage NUMBERS...",
		Short: "Run repeated predictions and check every legal value shows up",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := lottery.ParseGame(gameName)
			if err != nil {
				return fmt.Errorf("%w: %q", err, gameName)
			}
			draw, err := parseNumbers(args)
			if err != nil {
				return err
			}
			if trials <= 0 {
				trials = a.cfg.Coverage.Trials
			}
			rep, err := lottery.RunCoverage(g, draw, trials, a.cfg.RandomSource())
			if err != nil {
				return err
			}
			a.logger.Info("coverage finished",
				slog.String("game", string(g)),
				slog.Int("trials", rep.Trials),
				slog.Float64("p_value", rep.PValue),
			)
			if rep.PValue < a.cfg.Coverage.Significance {
				a.logger.Warn("companion frequencies deviate from uniform",
					slog.Float64("p_value", rep.PValue),
					slog.Float64("significance", a.cfg.Coverage.Significance),
				)
			}

			if a.cfg.Output == "json" {
				err = render.CoverageJSON(a.out, rep)
			} else {
				err = render.CoverageText(a.out, rep)
			}
			if err != nil {
				return err
			}
			if !rep.Complete() {
				return fmt.Errorf("coverage incomplete: %d primary and %d companion values never appeared",
					len(rep.MissingPrimary), len(rep.MissingCompanion))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&gameName, "game", "g", string(lottery.GameDoubleColor), "game: double_color (ssq) or super_lotto (dlt)")
	cmd.Flags().IntVar(&trials, "trials", 0, "number of repeated predictions (0 = use config)")
	return cmd
}

func (a *app) newGamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "List supported games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, g := range lottery.Games() {
				r, _ := lottery.RulesFor(g)
				_, err := fmt.Fprintf(a.out, "%-12s %-18s draw %d of 1-%d, %d groups of %d + %d of 1-%d\n",
					r.Game, r.DisplayName, r.DrawSize, r.PrimaryMax,
					r.Groups, r.GroupSize, r.CompanionsPerGroup, r.CompanionMax)
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// parseNumbers accepts separate args and/or comma separated lists.
func parseNumbers(args []string) ([]int, error) {
	var out []int
	for _, arg := range args {
		for _, f := range strings.Split(arg, ",") {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("invalid number %q", f)
			}
			out = append(out, n)
		}
	}
	return out, nil
}
