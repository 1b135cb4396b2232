package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/samuelfneumann/gogym"
	"github.com/samuelfneumann/gorollout/agent/policy"
	"github.com/samuelfneumann/gorollout/environment"
	"github.com/samuelfneumann/gorollout/environment/gym"
	"github.com/samuelfneumann/gorollout/environment/wrappers"
	"github.com/samuelfneumann/gorollout/metrics"
	"github.com/samuelfneumann/gorollout/rollout"
	"github.com/samuelfneumann/gorollout/rollout/tracker"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use: "gorollout",
		Short: "gorollout evaluates policies in batches of Gym " +
			"environments run in lockstep",
	}
	rootCmd.AddCommand(evaluateCmd())
	rootCmd.AddCommand(gamesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// evalConfig collects the evaluate command's flags
type evalConfig struct {
	game        string
	numEnvs     int
	numEpisodes int
	stackSize   int
	seed        uint64
	logInterval int
	stepBudget  int
	jpegObs     bool
	jpegQuality int
	frameSize   int
	out         string
	parallel    bool
	progress    bool
}

// evaluateCmd returns the evaluate sub-command, which runs a batched
// evaluation on a single Atari game and prints summary metrics
func evaluateCmd() *cobra.Command {
	var cfg evalConfig

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate a policy on an Atari game",
		RunE: func(cmd *cobra.Command, args []string) error {
			return evaluate(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.game, "game", "breakout",
		"plain name of the Atari game to evaluate on")
	flags.IntVar(&cfg.numEnvs, "num-envs", 8,
		"number of environments run in lockstep")
	flags.IntVar(&cfg.numEpisodes, "num-episodes", 16,
		"total episodes to evaluate, a multiple of num-envs")
	flags.IntVar(&cfg.stackSize, "stack", 4,
		"trailing timesteps reported to the policy")
	flags.Uint64Var(&cfg.seed, "seed", 100,
		"seed for the per-episode seed schedule")
	flags.IntVar(&cfg.logInterval, "log-interval", 100,
		"ticks between progress log lines, 0 to disable")
	flags.IntVar(&cfg.stepBudget, "step-budget", 0,
		"maximum ticks per round, 0 to use the episode cutoff")
	flags.BoolVar(&cfg.jpegObs, "jpeg", true,
		"round trip observations through JPEG encoding")
	flags.IntVar(&cfg.jpegQuality, "jpeg-quality", 95,
		"JPEG encoding quality from 1 to 100")
	flags.IntVar(&cfg.frameSize, "frame-size", 84,
		"width and height of observation frames in pixels")
	flags.StringVar(&cfg.out, "out", "",
		"file to save episodic returns to")
	flags.BoolVar(&cfg.parallel, "parallel", false,
		"step environments concurrently within each tick")
	flags.BoolVar(&cfg.progress, "progress", false,
		"display a progress bar for each round")

	return cmd
}

// evaluate runs a batched evaluation as described by cfg
func evaluate(cfg evalConfig) error {
	defer gogym.Close()

	// Fail before spending a run on a game whose scores cannot be
	// normalized afterwards
	if _, err := metrics.AtariBaselines.Normalize(cfg.game, 0); err != nil {
		return err
	}

	var transform wrappers.ObsTransform
	if cfg.jpegObs {
		transform = wrappers.JPEGRoundTrip(cfg.frameSize, cfg.frameSize,
			cfg.jpegQuality)
	}

	rawEnvs := make([]environment.Environment, cfg.numEnvs)
	envs := make([]rollout.Environment, cfg.numEnvs)

	// Closes whatever the construction loop has managed to build
	defer func() {
		if err := environment.CloseAll(rawEnvs...); err != nil {
			log.Printf("evaluate: %v", err)
		}
	}()

	for i := 0; i < cfg.numEnvs; i++ {
		raw, err := gym.NewAtari(cfg.game, cfg.seed+uint64(i))
		if err != nil {
			return fmt.Errorf("evaluate: could not create "+
				"environment: %v", err)
		}
		rawEnvs[i] = raw

		seq, err := wrappers.NewSequence(raw, cfg.stackSize, transform)
		if err != nil {
			return fmt.Errorf("evaluate: could not wrap "+
				"environment: %v", err)
		}
		envs[i] = seq
	}

	numActions := int(rawEnvs[0].ActionSpec().UpperBound.AtVec(0)) + 1
	p, err := policy.NewUniform(numActions, cfg.seed)
	if err != nil {
		return fmt.Errorf("evaluate: could not create policy: %v", err)
	}

	r, err := rollout.New(envs, p, rollout.Config{
		NumEpisodes: cfg.numEpisodes,
		StepBudget:  cfg.stepBudget,
		LogInterval: cfg.logInterval,
		Seed:        cfg.seed,
		Parallel:    cfg.parallel,
		Progress:    cfg.progress,
	})
	if err != nil {
		return err
	}
	if cfg.out != "" {
		r.Register(tracker.NewReturn(cfg.out))
	}

	returns, err := r.Run()
	if err != nil {
		return err
	}
	r.Save()

	rawSummary, err := metrics.Summarize(returns)
	if err != nil {
		return err
	}
	fmt.Println("rew_sum")
	fmt.Println(rawSummary)

	fmt.Println(strings.Repeat("-", 10))

	normalized, err := metrics.AtariBaselines.NormalizeAll(cfg.game,
		returns)
	if err != nil {
		return err
	}
	normSummary, err := metrics.Summarize(normalized)
	if err != nil {
		return err
	}
	fmt.Println("human_normalized_score")
	fmt.Println(normSummary)

	return nil
}

// gamesCmd returns the games sub-command, which lists the games with
// baseline scores to normalize against
func gamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "List the games with baseline scores",
		Run: func(cmd *cobra.Command, args []string) {
			games := make([]string, 0, len(metrics.AtariBaselines))
			for game := range metrics.AtariBaselines {
				games = append(games, game)
			}
			sort.Strings(games)
			for _, game := range games {
				fmt.Println(game)
			}
		},
	}
}
