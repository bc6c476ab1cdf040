package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"github.com/xlab/treeprint"

	bst "github.com/e11jah/linkedbst"
)

var cmdShow = &cli.Command{
	Name:  "show",
	Usage: "print the shape of a tree built from a word list",
	Flags: append([]cli.Flag{
		&cli.IntFlag{
			Name:    "limit",
			Aliases: []string{"n"},
			Usage:   "number of leading words to insert",
			Value:   32,
		},
		&cli.BoolFlag{
			Name:  "rebalance",
			Usage: "rebalance before printing",
		},
		&cli.BoolFlag{
			Name:  "sideways",
			Usage: "print the tree rotated counterclockwise instead of as branches",
		},
	}, sourceFlags...),
	Action: runShow,
}

func runShow(cctx *cli.Context) error {
	words, err := loadWords(cctx)
	if err != nil {
		return err
	}
	if limit := cctx.Int("limit"); limit > 0 && limit < len(words) {
		words = words[:limit]
	}

	tree := bst.New(words...)
	if cctx.Bool("rebalance") {
		tree = tree.Rebalance()
	}

	if cctx.Bool("sideways") {
		fmt.Print(tree.String())
	} else {
		fmt.Println(shape(tree).String())
	}
	fmt.Printf("size=%d height=%d balanced=%t\n", tree.Size(), tree.Height(), tree.IsBalanced())
	return nil
}

// shape converts the tree into printable branches. Children are tagged with
// the side they hang from.
func shape[T any](tree *bst.Tree[T]) treeprint.Tree {
	out := treeprint.New()
	// branches[d] is the most recent node seen at depth d; in pre-order
	// that is always the parent of the next node at depth d+1
	var branches []treeprint.Tree
	tree.Walk(func(item T, depth int, side bst.Side) bool {
		if depth == 0 {
			out.SetValue(item)
			branches = append(branches[:0], out)
			return true
		}
		branch := branches[depth-1].AddMetaBranch(side, item)
		branches = append(branches[:depth], branch)
		return true
	})
	return out
}
