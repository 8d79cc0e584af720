package cmd

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"strconv"

	"github.com/commtower/commtower/internal/config"
	"github.com/commtower/commtower/internal/ui"
	"github.com/commtower/commtower/pkg/plot"
	"github.com/spf13/cobra"
)

type runOptions struct {
	configPath string
	rows       int
	cols       int
	towers     int
	seed       uint64
	show       bool
}

var runOpts runOptions

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Place towers on a plot until it is full or a tower count is reached",
	Long: `Runs one simulation. With --towers 0 (the default) towers are placed until the
plot is completely covered and the number of towers is reported. Otherwise that
many towers are placed and the covered area and ratio are reported.

Settings are read from commtower.yaml when present; flags override them.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runRun(cmd, runOpts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	addRunFlags(runCmd, &runOpts)
	rootCmd.AddCommand(runCmd)
}

func addRunFlags(c *cobra.Command, o *runOptions) {
	c.Flags().StringVarP(&o.configPath, "config", "c", config.DefaultFile, "Path to the configuration file")
	c.Flags().IntVar(&o.rows, "rows", 0, "Plot rows (overrides config)")
	c.Flags().IntVar(&o.cols, "cols", 0, "Plot columns (overrides config)")
	c.Flags().IntVarP(&o.towers, "towers", "n", 0, "Towers to build; 0 fills the plot (overrides config)")
	c.Flags().Uint64Var(&o.seed, "seed", 0, "Random seed; 0 picks one (overrides config)")
	c.Flags().BoolVar(&o.show, "show", false, "Print the final coverage grid")
}

// resolveConfig loads the configuration file (if it exists) and applies the
// flags that were explicitly set on cmd.
func resolveConfig(cmd *cobra.Command, opts runOptions) (*config.Config, error) {
	var cfg *config.Config
	if _, err := os.Stat(opts.configPath); err == nil {
		cfg, err = config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
	} else if cmd.Flags().Changed("config") {
		return nil, fmt.Errorf("config file %s not found", opts.configPath)
	} else {
		cfg = &config.Config{}
		config.ApplyDefaults(cfg)
	}

	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Plot.Rows = opts.rows
	}
	if flags.Changed("cols") {
		cfg.Plot.Cols = opts.cols
	}
	if flags.Changed("towers") {
		cfg.Simulation.Towers = opts.towers
	}
	if flags.Changed("seed") {
		cfg.Simulation.Seed = opts.seed
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runRun executes one simulation and prints its outcome.
func runRun(cmd *cobra.Command, opts runOptions) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	if err := setupLogging(cfg.Logging); err != nil {
		return fmt.Errorf("failed to initialise logging: %w", err)
	}

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	simOpts := plot.Options{
		Towers:    cfg.Simulation.Towers,
		MaxTowers: cfg.Simulation.MaxTowers,
		Rand:      rand.New(rand.NewPCG(seed, seed)),
	}
	if cfg.Simulation.Towers > 0 {
		simOpts.MaxTowers = 0
	}

	var res plot.Result
	err = ui.RunSpinner(fmt.Sprintf("Placing towers on %dx%d plot...", cfg.Plot.Rows, cfg.Plot.Cols), func() error {
		var simErr error
		res, simErr = plot.Simulate(ctx, cfg.Plot.Rows, cfg.Plot.Cols, simOpts)
		return simErr
	})

	ui.PrintHeader("Simulation")
	ui.PrintSuccess("Plot", fmt.Sprintf("%dx%d (%d cells)", cfg.Plot.Rows, cfg.Plot.Cols, cfg.Plot.Rows*cfg.Plot.Cols))
	ui.PrintSuccess("Seed", strconv.FormatUint(seed, 10))
	if err != nil {
		if errors.Is(err, plot.ErrTowerLimit) || errors.Is(err, context.Canceled) {
			ui.PrintWarning("Stopped", fmt.Sprintf("after %d towers, %d/%d cells covered", res.Towers, res.Covered, res.Area))
		}
		return err
	}

	if cfg.Simulation.Towers == 0 {
		ui.PrintSuccess("Towers to fill", strconv.Itoa(res.Towers))
	} else {
		ui.PrintSuccess("Towers", strconv.Itoa(res.Towers))
		ui.PrintSuccess("Covered", fmt.Sprintf("%d cells", res.Covered))
		ui.PrintSuccess("Ratio", strconv.FormatFloat(res.Ratio, 'f', 3, 64))
	}
	if opts.show {
		ui.PrintHeader("Coverage")
		ui.PrintGrid(res.Coverage.Mask().Lines())
	}
	return nil
}
