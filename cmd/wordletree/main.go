// Command wordletree builds a Wordle decision tree from a solutions
// and non-solutions word list, optionally evaluates it, and optionally
// persists it to disk.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/wordletree/wordletree/device"
	"github.com/wordletree/wordletree/evaluator"
	"github.com/wordletree/wordletree/feedback"
	"github.com/wordletree/wordletree/hardmode"
	"github.com/wordletree/wordletree/kernel"
	"github.com/wordletree/wordletree/tree"
	"github.com/wordletree/wordletree/treeio"
	"github.com/wordletree/wordletree/word"
)

type cliFlags struct {
	solutions    string
	nonSolutions string
	hardMode     bool
	metric       int
	k            int
	cpuOnly      bool
	saveTree     bool
	treeOut      string
	calibration  string
	noDiagnosis  bool
	noEvaluate   bool
}

func parseFlags(args []string) (cliFlags, error) {
	fs := flag.NewFlagSet("wordletree", flag.ContinueOnError)
	f := cliFlags{}
	fs.StringVar(&f.solutions, "solutions", "", "path to the solutions word list (required)")
	fs.StringVar(&f.nonSolutions, "guesses", "", "path to the non-solutions word list (required)")
	fs.BoolVar(&f.hardMode, "hard_mode", false, "build in hard mode")
	fs.IntVar(&f.metric, "metric", 0, "scoring metric: 0, 1, or 2")
	fs.IntVar(&f.k, "k", 0, "candidate-pool size for metric 1 (default kernel.DefaultTopK)")
	fs.BoolVar(&f.cpuOnly, "cpu", false, "disable the accelerator back-end entirely")
	fs.BoolVar(&f.saveTree, "save_tree", false, "persist the resulting tree to --tree_out")
	fs.StringVar(&f.treeOut, "tree_out", "tree.json", "output path for --save_tree")
	fs.StringVar(&f.calibration, "calibration", "calibration.json", "path to the device calibration cache")
	fs.BoolVar(&f.noDiagnosis, "no_diagnosis", false, "suppress the progress clock")
	fs.BoolVar(&f.noEvaluate, "no_evaluate", false, "skip the post-build evaluation report")
	if err := fs.Parse(args); err != nil {
		return cliFlags{}, err
	}
	if f.solutions == "" || f.nonSolutions == "" {
		return cliFlags{}, fmt.Errorf("wordletree: --solutions and --guesses are required")
	}
	if f.metric < 0 || f.metric > 2 {
		return cliFlags{}, fmt.Errorf("wordletree: --metric must be 0, 1, or 2")
	}
	return f, nil
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "wordletree: panic: %v\n", r)
			os.Exit(1)
		}
	}()

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "wordletree: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags, err := parseFlags(args)
	if err != nil {
		return err
	}

	targets, guesses, err := word.LoadGame(flags.solutions, flags.nonSolutions)
	if err != nil {
		return fmt.Errorf("load word lists: %w", err)
	}

	fTG, err := feedback.BuildBatched(targets, guesses)
	if err != nil {
		return fmt.Errorf("build feedback matrix: %w", err)
	}

	var table *hardmode.Table
	var fGG *feedback.Matrix
	if flags.hardMode {
		table = hardmode.Build()
		fGG, err = feedback.BuildBatched(guesses, guesses)
		if err != nil {
			return fmt.Errorf("build hard-mode feedback matrix: %w", err)
		}
	}

	metric := kernel.Metric(flags.metric)
	memo := kernel.NewMemo(0)
	cpu := kernel.NewScalarScorer(metric, flags.k, memo)
	accel := kernel.NewBatchedScorer(metric, flags.k, memo)

	key := device.CalibrationKey(metric, flags.k, "scalar")
	optimizer := device.NewOptimizer(cpu, accel, !flags.cpuOnly, key, flags.calibration)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if err := optimizer.EnsureCalibrated(rng, targets.Len(), guesses.Len(), fTG); err != nil {
		return fmt.Errorf("calibrate device optimizer: %w", err)
	}

	buildOpts := []tree.Option{tree.WithOptimizer(optimizer)}
	if flags.hardMode {
		buildOpts = append(buildOpts, tree.WithHardMode(table, fGG))
	}
	if !flags.noDiagnosis {
		buildOpts = append(buildOpts, tree.WithDiagnostics(time.Second, func(ev tree.ProgressEvent) {
			fmt.Fprintf(os.Stderr, "  [progress] vertices=%d elapsed=%s\n", ev.VertexCount, ev.Elapsed)
		}))
	}

	result, stats, err := tree.Build(targets, guesses, fTG, buildOpts...)
	if err != nil {
		return fmt.Errorf("build tree: %w", err)
	}
	fmt.Fprintf(os.Stdout, "built tree: %d vertices in %s, first guess %q\n",
		stats.VertexCount, stats.Duration, guesses.Word(stats.FirstGuess))

	if flags.saveTree {
		outPath := treeOutputPath(flags.treeOut, flags.hardMode)
		if err := treeio.Save(outPath, result, guesses, guesses.Length()); err != nil {
			return fmt.Errorf("save tree: %w", err)
		}
	}

	if !flags.noEvaluate {
		report, err := evaluator.Evaluate(result, targets, guesses, fTG, stats.Duration)
		if err != nil {
			return fmt.Errorf("evaluate tree: %w", err)
		}
		fmt.Fprint(os.Stdout, report.String())
	}

	return nil
}

// treeOutputPath appends a hard-mode marker so easy-mode and hard-mode
// trees never collide on disk, per spec.md §6's "separate file names
// are used for easy-mode and hard-mode trees".
func treeOutputPath(base string, hardMode bool) string {
	if !hardMode {
		return base
	}
	return hardModeSuffix(base)
}

func hardModeSuffix(base string) string {
	const suffix = ".hard"
	for i := len(base) - 1; i >= 0; i-- {
		if base[i] == '.' {
			return base[:i] + suffix + base[i:]
		}
	}
	return base + suffix
}
