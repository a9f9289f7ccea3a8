// Command profilereduce runs the BRKGA profile-reduction engine against a
// Matrix Market input graph, reporting the best labeling's profile found
// within a wall-clock budget.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sloanpr/profilereduce/brkga"
	"github.com/sloanpr/profilereduce/graph"
	"github.com/sloanpr/profilereduce/mtxio"
	"github.com/sloanpr/profilereduce/rng"
)

// exit codes, per the external-interfaces spec: 0 success, non-zero on
// load/parameter/invariant failure, 143 on SIGTERM.
const (
	exitSuccess   = 0
	exitFailure   = 1
	exitBadParams = 2
	exitSIGTERM   = 143
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(exitFailure)
	}
}

func newRootCmd() *cobra.Command {
	var (
		filename string
		maxTime  int64
		initMode int
		pop      int
		elite    int
		mutants  int
		prob     float64
		irace    bool
		seed     int64
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "profilereduce",
		Short: "Reduce the bandwidth/profile of a sparse symmetric matrix via BRKGA",
		RunE: func(cmd *cobra.Command, args []string) error {
			configureLogging(verbose)
			return run(runConfig{
				filename: filename,
				maxTime:  time.Duration(maxTime) * time.Second,
				initMode: initMode,
				pop:      pop,
				elite:    elite,
				mutants:  mutants,
				prob:     prob,
				irace:    irace,
				seed:     seed,
			})
		},
	}

	flags := cmd.Flags()
	var alpha float64

	flags.StringVar(&filename, "filename", "input/usps_norm_5NN.mtx", "path to the Matrix Market (.mtx) input graph")
	flags.Int64Var(&maxTime, "max-time", 10, "wall-clock deadline in seconds")
	flags.IntVar(&initMode, "init", 1, "0 = constructive-N, 1 = msW-constructive")
	flags.IntVar(&pop, "pop", 20, "BRKGA population size (must be >= 10)")
	flags.IntVar(&elite, "elite", 8, "BRKGA elite set size")
	flags.IntVar(&mutants, "mutants", 4, "BRKGA mutant count")
	flags.Float64Var(&prob, "prob", 0.75, "elite key inheritance probability")
	flags.Float64Var(&alpha, "alpha", 0, "unused by BRKGA; reserved for compatibility with external parameter tuners")
	flags.BoolVar(&irace, "irace", false, "print only the final best profile, for automated tuning")
	flags.Int64Var(&seed, "seed", 0, "RNG seed; 0 draws a non-deterministic seed")
	flags.BoolVar(&verbose, "verbose", false, "enable debug-level logging")

	return cmd
}

func configureLogging(verbose bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

type runConfig struct {
	filename string
	maxTime  time.Duration
	initMode int
	pop      int
	elite    int
	mutants  int
	prob     float64
	irace    bool
	seed     int64
}

func run(cfg runConfig) error {
	if cfg.pop < 10 {
		fmt.Fprintln(os.Stderr, "You need to use pop >= 10;")
		os.Exit(exitBadParams)
	}

	f, err := os.Open(cfg.filename)
	if err != nil {
		log.Error().Err(err).Str("filename", cfg.filename).Msg("failed to open input file")
		os.Exit(exitFailure)
	}
	defer f.Close()

	g, err := mtxio.Load(f, true)
	if err != nil {
		log.Error().Err(err).Msg("failed to load graph")
		os.Exit(exitFailure)
	}
	installSIGTERMHandler(g)

	g.EvaluateProfile()
	if !cfg.irace {
		fmt.Printf("\nInitial Profile: %d\n\tBRKGA-Pr...\n", g.Profile)
	}

	var r *rng.Source
	if cfg.seed != 0 {
		r = rng.NewSeeded(cfg.seed)
	} else {
		r = rng.New()
	}

	initMode := brkga.InitConstructiveSloan
	if cfg.initMode != 0 {
		initMode = brkga.InitConstructiveMultilevel
	}

	start := time.Now()
	result, err := brkga.Run(g, brkga.Params{
		Population: cfg.pop,
		Elite:      cfg.elite,
		Mutants:    cfg.mutants,
		EliteProb:  cfg.prob,
		Init:       initMode,
		Deadline:   cfg.maxTime,
	}, r)
	if err != nil {
		log.Error().Err(err).Msg("invalid BRKGA parameters")
		os.Exit(exitBadParams)
	}
	elapsed := time.Since(start)

	if cfg.irace {
		fmt.Println(result.Profile)
	} else {
		fmt.Printf("Profile: %d\tgenerations: %d\ttotal time: %ds\n", result.Profile, result.Generations, int(elapsed.Seconds()))
	}

	if err := g.Feasible(); err != nil {
		log.Error().Err(err).Msg("solution is not feasible")
		os.Exit(exitFailure)
	}

	return nil
}

// installSIGTERMHandler prints the currently recorded best profile (or the
// unbounded sentinel if none has been evaluated yet) and exits 143, so a
// terminated long-running search still reports its best answer so far.
func installSIGTERMHandler(g *graph.Graph) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM)
	go func() {
		<-sigCh
		best := g.BestProfile
		if best == graph.Unbounded {
			fmt.Println(graph.Unbounded)
		} else {
			fmt.Println(best)
		}
		os.Exit(exitSIGTERM)
	}()
}
