package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/balancedforest/balance"
	"github.com/katalvlaran/balancedforest/builder"
	"github.com/katalvlaran/balancedforest/caseio"
)

// generateOptions are the flags of the generate command.
type generateOptions struct {
	shape     string
	count     int
	nodes     int
	legs      []int
	spine     int
	seed      int64
	minWeight int64
	maxWeight int64
	shuffle   bool
	output    string
}

func newGenerateCmd(a *app) *cobra.Command {
	o := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write generated cases in the solve input format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.finish(cmd); err != nil {
				return err
			}

			cases, err := o.build()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if o.output != "" && o.output != "-" {
				f, err := os.Create(o.output)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				out = f
			}
			if err = caseio.WriteCases(out, cases); err != nil {
				return fmt.Errorf("write cases: %w", err)
			}
			a.log.Info("cases generated", "shape", o.shape, "count", len(cases), "seed", o.seed)

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&o.shape, "shape", "random", "path, star, spider, caterpillar or random")
	flags.IntVarP(&o.count, "count", "n", 1, "number of cases")
	flags.IntVar(&o.nodes, "nodes", 10, "nodes per case (path, star, random)")
	flags.IntSliceVar(&o.legs, "legs", []int{3, 3, 3}, "leg lengths (spider); first entry is leaves per spine node (caterpillar)")
	flags.IntVar(&o.spine, "spine", 4, "spine length (caterpillar)")
	flags.Int64Var(&o.seed, "seed", 1, "random seed")
	flags.Int64Var(&o.minWeight, "min-weight", 1, "smallest node weight")
	flags.Int64Var(&o.maxWeight, "max-weight", 9, "largest node weight")
	flags.BoolVar(&o.shuffle, "shuffle", false, "shuffle edge order and orientation")
	flags.StringVarP(&o.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// constructor maps the shape flag to a builder constructor.
func (o *generateOptions) constructor() (builder.Constructor, error) {
	switch o.shape {
	case "path":
		return builder.Path(o.nodes), nil
	case "star":
		return builder.Star(o.nodes), nil
	case "spider":
		return builder.Spider(o.legs...), nil
	case "caterpillar":
		legs := 0
		if len(o.legs) > 0 {
			legs = o.legs[0]
		}
		return builder.Caterpillar(o.spine, legs), nil
	case "random":
		return builder.RandomTree(o.nodes), nil
	default:
		return nil, fmt.Errorf("shape %q: %w", o.shape, ErrInvalidConfig)
	}
}

// build generates o.count cases; case i uses seed o.seed+i.
func (o *generateOptions) build() ([]balance.Case, error) {
	if o.count < 0 {
		return nil, fmt.Errorf("count %d: %w", o.count, ErrInvalidConfig)
	}
	if o.minWeight < 0 || o.maxWeight < o.minWeight {
		return nil, fmt.Errorf("weights [%d,%d]: %w", o.minWeight, o.maxWeight, ErrInvalidConfig)
	}
	con, err := o.constructor()
	if err != nil {
		return nil, err
	}

	cases := make([]balance.Case, 0, o.count)
	for i := 0; i < o.count; i++ {
		opts := []builder.BuilderOption{
			builder.WithSeed(o.seed + int64(i)),
			builder.WithUniformWeight(o.minWeight, o.maxWeight),
		}
		if o.shuffle {
			opts = append(opts, builder.WithShuffledEdges())
		}
		c, err := builder.BuildCase(con, opts...)
		if err != nil {
			return nil, fmt.Errorf("case %d: %w", i+1, err)
		}
		cases = append(cases, c)
	}

	return cases, nil
}
