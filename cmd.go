package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"qftsim/quantum"
)

// cliFlags holds every flag value before it is merged into a Config.
type cliFlags struct {
	configPath string
	logLevel   string
	qubits     int
	seed       int64
	epsilon    float64
	noReverse  bool

	noPause  bool
	circuit  bool
	qasmPath string

	shots   int
	workers int

	inverse bool
	measure bool
}

func newRootCmd() *cobra.Command {
	f := &cliFlags{}

	root := &cobra.Command{
		Use:   "qftsim",
		Short: "Apply a Quantum Fourier Transform to a simulated register and measure it",
		Long: `qftsim allocates a register of qubits in |0...0>, applies the Quantum
Fourier Transform, measures every qubit and prints the outcomes together
with the basis state they encode.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQFT(cmd, f)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "yaml config file")
	pf.StringVar(&f.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	pf.IntVarP(&f.qubits, "qubits", "n", 0, "number of qubits")
	pf.Int64Var(&f.seed, "seed", -1, "random seed, negative to seed from the clock")
	pf.Float64Var(&f.epsilon, "epsilon", 0, "norm tolerance")
	pf.BoolVar(&f.noReverse, "no-reverse", false, "omit the final bit-reversal swaps")
	addRunFlags(root.Flags(), f)

	run := &cobra.Command{
		Use:   "run",
		Short: "Run the QFT once and print the measured basis state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQFT(cmd, f)
		},
	}
	addRunFlags(run.Flags(), f)

	sample := &cobra.Command{
		Use:   "sample",
		Short: "Run the QFT for many shots and print the outcome histogram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return sampleQFT(cmd, f)
		},
	}
	sample.Flags().IntVar(&f.shots, "shots", 0, "number of shots")
	sample.Flags().IntVar(&f.workers, "workers", 0, "parallel workers, 0 for GOMAXPROCS")

	qasm := &cobra.Command{
		Use:   "qasm",
		Short: "Print the QFT circuit as OpenQASM 2.0",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printQASM(cmd, f)
		},
	}
	qasm.Flags().BoolVar(&f.inverse, "inverse", false, "print the inverse QFT")
	qasm.Flags().BoolVar(&f.measure, "measure", false, "append measurements of every qubit")

	root.AddCommand(run, sample, qasm)
	return root
}

func addRunFlags(fs *pflag.FlagSet, f *cliFlags) {
	fs.BoolVar(&f.noPause, "no-pause", false, "exit without waiting for a key")
	fs.BoolVar(&f.circuit, "circuit", false, "draw the circuit before the results")
	fs.StringVar(&f.qasmPath, "qasm", "", "run an OpenQASM 2.0 file instead of the QFT")
}

// resolveConfig loads the config file, if any, and applies the flags the
// user set explicitly.
func resolveConfig(cmd *cobra.Command, f *cliFlags) (Config, zerolog.Logger, error) {
	cfg := DefaultConfig()
	if f.configPath != "" {
		var err error
		if cfg, err = LoadConfig(f.configPath); err != nil {
			return cfg, zerolog.Nop(), err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if fs.Changed("qubits") {
		cfg.Qubits = f.qubits
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("epsilon") {
		cfg.Epsilon = f.epsilon
	}
	if fs.Changed("no-reverse") {
		cfg.Reverse = !f.noReverse
	}
	if fs.Changed("no-pause") {
		cfg.Pause = !f.noPause
	}
	if fs.Changed("shots") {
		cfg.Shots = f.shots
	}
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}

	if err := cfg.Validate(); err != nil {
		return cfg, zerolog.Nop(), fmt.Errorf("invalid configuration: %w", err)
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return cfg, zerolog.Nop(), err
	}
	if e := logger.Debug(); e.Enabled() {
		e.Msg("effective configuration\n" + spew.Sdump(cfg))
	}
	return cfg, logger, nil
}

func newSimulator(cfg Config, logger zerolog.Logger) *quantum.Simulator {
	return quantum.NewSimulator(
		quantum.WithLogger(logger),
		quantum.WithTolerance(cfg.Epsilon),
		quantum.WithSwapNetwork(cfg.Reverse),
	)
}

func runQFT(cmd *cobra.Command, f *cliFlags) error {
	cfg, logger, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	sim := newSimulator(cfg, logger)
	seed := cfg.SeedValue()
	rng := quantum.NewSource(seed)
	logger.Info().Uint64("seed", seed).Msg("starting run")

	var (
		circuit *quantum.Circuit
		results []quantum.Result
	)
	if f.qasmPath != "" {
		data, err := os.ReadFile(f.qasmPath)
		if err != nil {
			return fmt.Errorf("read circuit: %w", err)
		}
		if circuit, err = quantum.ParseQASM(string(data)); err != nil {
			return err
		}
		results, err = sim.Run(circuit, rng)
		if err != nil {
			logger.Error().Err(err).Str("file", f.qasmPath).Msg("circuit run failed")
			return fmt.Errorf("run %s: %w", f.qasmPath, err)
		}
	} else {
		if circuit, err = quantum.QFT(cfg.Qubits, quantum.WithReversal(cfg.Reverse)); err != nil {
			return err
		}
		results, err = sim.Run(circuit, rng)
		if err != nil {
			logger.Error().Err(err).Int("qubits", cfg.Qubits).Msg("qft run failed")
			return fmt.Errorf("run qft: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	if f.circuit {
		fmt.Fprintln(out, renderCircuit(circuit, true))
	}
	fmt.Fprint(out, renderResults(results))

	if !cfg.Pause {
		return nil
	}
	return pause(cmd, logger)
}

// pause waits for a key when stdin is a terminal and only prints the
// prompt otherwise.
func pause(cmd *cobra.Command, logger zerolog.Logger) error {
	out := cmd.OutOrStdout()
	in, ok := cmd.InOrStdin().(*os.File)
	if !ok || !isatty.IsTerminal(in.Fd()) {
		fmt.Fprintln(out, dimStyle.Render(pausePrompt))
		logger.Debug().Msg("stdin is not a terminal, not waiting for a key")
		return nil
	}
	return waitForKey(cmd.Context(), in, out)
}

func sampleQFT(cmd *cobra.Command, f *cliFlags) error {
	cfg, logger, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	sim := newSimulator(cfg, logger)
	seed := cfg.SeedValue()
	logger.Info().Uint64("seed", seed).Int("shots", cfg.Shots).Msg("starting sample")

	h, err := sim.SampleQFT(cmd.Context(), cfg.Qubits, quantum.SampleConfig{
		Shots:   cfg.Shots,
		Seed:    seed,
		Workers: cfg.Workers,
	})
	if err != nil {
		logger.Error().Err(err).Msg("sampling failed")
		return fmt.Errorf("sample qft: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), renderHistogram(h))
	return nil
}

func printQASM(cmd *cobra.Command, f *cliFlags) error {
	cfg, _, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}
	build := quantum.QFT
	if f.inverse {
		build = quantum.InverseQFT
	}
	c, err := build(cfg.Qubits, quantum.WithReversal(cfg.Reverse))
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), c.ToQASM(f.measure))
	return nil
}
