package main

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"slices"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	bst "github.com/e11jah/linkedbst"
)

var cmdBench = &cli.Command{
	Name:  "bench",
	Usage: "time random lookups in a word list against unbalanced and rebalanced trees",
	Flags: append([]cli.Flag{
		&cli.IntFlag{
			Name:    "lookups",
			Aliases: []string{"n"},
			Usage:   "number of random lookups per run",
			Value:   10000,
			EnvVars: []string{"BSTDEMO_LOOKUPS"},
		},
		&cli.IntFlag{
			Name:  "sorted-prefix",
			Usage: "number of leading words inserted in file order",
			Value: 900,
		},
	}, sourceFlags...),
	Action: runBench,
}

type benchOptions struct {
	lookups      int
	sortedPrefix int
	seed         uint64
}

type benchResult struct {
	name     string
	size     int
	height   int
	balanced bool
	build    time.Duration
	find     time.Duration
}

func runBench(cctx *cli.Context) error {
	words, err := loadWords(cctx)
	if err != nil {
		return err
	}

	opts := benchOptions{
		lookups:      cctx.Int("lookups"),
		sortedPrefix: cctx.Int("sorted-prefix"),
		seed:         cctx.Uint64("seed"),
	}
	results := bench(words, opts)
	renderResults(os.Stdout, results)
	return nil
}

// bench runs the four lookup scenarios: a linear scan over the word list, a
// tree built from a prefix of the list in its original order, a tree built
// from random picks, and that same tree after rebalancing.
func bench(words []string, opts benchOptions) []benchResult {
	r := rand.New(rand.NewPCG(opts.seed, opts.seed))
	pick := func(from []string) string {
		return from[r.IntN(len(from))]
	}

	var results []benchResult

	slog.Info("scanning word list", "words", len(words), "lookups", opts.lookups)
	start := time.Now()
	for i := 0; i < opts.lookups; i++ {
		slices.Contains(words, pick(words))
	}
	results = append(results, benchResult{
		name:   "list",
		size:   len(words),
		height: -1,
		find:   time.Since(start),
	})

	prefix := words[:min(opts.sortedPrefix, len(words))]
	slog.Info("building tree from word order", "words", len(prefix))
	start = time.Now()
	ordered := bst.New(prefix...)
	built := time.Since(start)
	results = append(results, timeFinds("tree (file order)", ordered, built, opts.lookups, func() string {
		return pick(prefix)
	}))

	slog.Info("building tree from random picks", "words", len(words))
	start = time.Now()
	random := bst.New[string]()
	for range words {
		random.Add(pick(words))
	}
	built = time.Since(start)
	results = append(results, timeFinds("tree (random order)", random, built, opts.lookups, func() string {
		return pick(words)
	}))

	slog.Info("rebalancing", "height", random.Height())
	start = time.Now()
	balanced := random.Rebalance()
	built = time.Since(start)
	results = append(results, timeFinds("tree (rebalanced)", balanced, built, opts.lookups, func() string {
		return pick(words)
	}))

	return results
}

func timeFinds(name string, tree *bst.Tree[string], built time.Duration, lookups int, next func() string) benchResult {
	start := time.Now()
	for i := 0; i < lookups; i++ {
		tree.Find(next())
	}
	res := benchResult{
		name:     name,
		size:     tree.Size(),
		height:   tree.Height(),
		balanced: tree.IsBalanced(),
		build:    built,
		find:     time.Since(start),
	}
	slog.Debug("lookups done", "tree", name, "size", res.size, "height", res.height, "elapsed", res.find)
	return res
}

func renderResults(w io.Writer, results []benchResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"structure", "size", "height", "balanced", "build", "lookups"})

	rows := make([]table.Row, 0, len(results))
	for _, res := range results {
		height, balanced := any(res.height), any(res.balanced)
		if res.height < 0 {
			height, balanced = "-", "-"
		}
		rows = append(rows, table.Row{res.name, res.size, height, balanced, res.build, res.find})
	}
	t.AppendRows(rows)
	t.Render()
}
