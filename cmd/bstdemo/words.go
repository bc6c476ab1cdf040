package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/openacid/testkeys"
	"github.com/urfave/cli/v2"
)

var cmdDatasets = &cli.Command{
	Name:   "datasets",
	Usage:  "list built-in key sets",
	Action: runDatasets,
}

func runDatasets(cctx *cli.Context) error {
	for _, name := range testkeys.AssetNames() {
		fmt.Println(name)
	}
	return nil
}

// loadWords reads the word source selected by --words or --dataset.
func loadWords(cctx *cli.Context) ([]string, error) {
	path, dataset := cctx.String("words"), cctx.String("dataset")
	switch {
	case path != "":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		words, err := readWords(f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		slog.Debug("loaded word list", "path", path, "count", len(words))
		return words, nil
	case dataset != "":
		words, err := loadDataset(dataset)
		if err != nil {
			return nil, err
		}
		slog.Debug("loaded key set", "dataset", dataset, "count", len(words))
		return words, nil
	}
	return nil, fmt.Errorf("need to provide --words or --dataset")
}

// readWords returns the non-empty lines of r in file order.
func readWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("no words found")
	}
	return words, nil
}

func loadDataset(name string) ([]string, error) {
	if !slices.Contains(testkeys.AssetNames(), name) {
		return nil, fmt.Errorf("unknown dataset %q", name)
	}
	words := testkeys.Load(name)
	if len(words) == 0 {
		return nil, fmt.Errorf("dataset %q is empty", name)
	}
	return words, nil
}
