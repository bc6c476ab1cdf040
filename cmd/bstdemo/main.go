package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

var sourceFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "words",
		Aliases: []string{"w"},
		Usage:   "path to a newline-separated word list",
		EnvVars: []string{"BSTDEMO_WORDS"},
	},
	&cli.StringFlag{
		Name:    "dataset",
		Usage:   "name of a built-in key set (see 'datasets')",
		EnvVars: []string{"BSTDEMO_DATASET"},
	},
	&cli.Uint64Flag{
		Name:    "seed",
		Usage:   "seed for random word picks",
		Value:   1,
		EnvVars: []string{"BSTDEMO_SEED"},
	},
}

func run(args []string) error {

	app := cli.App{
		Name:    "bstdemo",
		Usage:   "binary search tree lookup benchmarks",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (eg: warn, info, debug)",
				Value:   "info",
				EnvVars: []string{"BSTDEMO_LOG_LEVEL", "LOG_LEVEL"},
			},
		},
		Before: func(cctx *cli.Context) error {
			configLogger(cctx, os.Stderr)
			return nil
		},
	}
	app.Commands = []*cli.Command{
		cmdBench,
		cmdShow,
		cmdDatasets,
	}
	return app.Run(args)
}

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}
