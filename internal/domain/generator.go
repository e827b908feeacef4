package domain

import (
	"context"

	"golang.org/x/sync/errgroup"

	m "github.com/mouse-blink/tspaths/internal/model"
)

// GenerateArgs are the inputs of one batch rewrite.
type GenerateArgs struct {
	Files   []m.Path
	Aliases []m.Alias
	Paths   m.ProjectPaths
	// Threads bounds how many files are analysed at once. Values below 1 mean 1.
	Threads int
}

// Generator computes the changes for a batch of files.
type Generator interface {
	// GenerateChanges returns one FileChange per file whose text changed, in
	// input order. The first failing file aborts the batch.
	GenerateChanges(ctx context.Context, args GenerateArgs) ([]m.FileChange, error)
}

type generator struct {
	rewriter Rewriter
}

// NewGenerator constructs a Generator.
func NewGenerator(rewriter Rewriter) Generator {
	return &generator{rewriter: rewriter}
}

func (g *generator) GenerateChanges(ctx context.Context, args GenerateArgs) ([]m.FileChange, error) {
	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	results := make([]*m.FileChange, len(args.Files))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, file := range args.Files {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			change, changed, err := g.rewriter.ReplaceAliasPathsInFile(file, args.Aliases, args.Paths)
			if err != nil {
				return err
			}

			if changed {
				results[i] = &change
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	changes := make([]m.FileChange, 0, len(results))

	for _, change := range results {
		if change != nil {
			changes = append(changes, *change)
		}
	}

	return changes, nil
}
