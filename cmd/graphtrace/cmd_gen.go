package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphtrace/builder"
	"github.com/katalvlaran/graphtrace/core"
	"github.com/katalvlaran/graphtrace/internal/wire"
)

var idSchemes = map[string]func() builder.BuilderOption{
	"decimal": func() builder.BuilderOption { return builder.WithIDScheme(builder.DefaultIDFn) },
	"one":     builder.WithOneBasedIDs,
	"excel":   builder.WithExcelColumnIDs,
}

func runGen(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("size %q: %w", args[1], err)
	}
	cons, err := builder.Named(args[0], n)
	if err != nil {
		return err
	}
	if minWeight < 0 || minWeight > maxWeight {
		return fmt.Errorf("weights need 0 <= --min-weight <= --max-weight, got %d and %d", minWeight, maxWeight)
	}
	idOpt, ok := idSchemes[genIDs]
	if !ok {
		return fmt.Errorf("unknown --ids %q", genIDs)
	}

	bopts := []builder.BuilderOption{builder.WithSeed(seed), idOpt()}
	switch {
	case minWeight == maxWeight:
		bopts = append(bopts, builder.WithConstantWeight(float64(minWeight)))
	case realWeights:
		bopts = append(bopts, builder.WithUniformWeight(float64(minWeight), float64(maxWeight)))
	default:
		bopts = append(bopts, builder.WithUniformIntWeight(minWeight, maxWeight))
	}

	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(genDirect)}, bopts, cons)
	if err != nil {
		return err
	}

	return wire.Encode(cmd.OutOrStdout(), wire.FromCore(g), wire.Format(genFormat))
}
