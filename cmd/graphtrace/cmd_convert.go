package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphtrace/converters"
	"github.com/katalvlaran/graphtrace/internal/wire"
)

func runConvert(cmd *cobra.Command, _ []string) error {
	if convertFrom != "" {
		return convertFromData(cmd)
	}
	if graphPath == "" {
		return fmt.Errorf("--to needs --graph")
	}

	doc, err := wire.ReadGraphFile(graphPath)
	if err != nil {
		return err
	}
	g, err := doc.ToCore()
	if err != nil {
		return err
	}

	var v any
	switch convertTo {
	case wire.FromMatrix:
		var opts []converters.Option
		if presence {
			opts = append(opts, converters.WithPresence())
		}
		v, err = converters.ToAdjacencyMatrix(g, opts...)
	case wire.FromEdgeList:
		v, err = converters.ToEdgeList(g)
	case wire.FromAdjList:
		v, err = converters.ToAdjacencyList(g)
	default:
		return fmt.Errorf("unknown --to %q (want matrix, edge_list or adj_list)", convertTo)
	}
	if err != nil {
		return err
	}

	return wire.Encode(cmd.OutOrStdout(), v, wire.JSON)
}

func convertFromData(cmd *cobra.Command) error {
	if inputPath == "" {
		return fmt.Errorf("--from needs --input")
	}
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}

	req := wire.ConvertRequest{
		Data:       data,
		IsDirected: directed,
		TypeFrom:   convertFrom,
		Labels:     labels,
	}
	var opts []converters.Option
	if capacity > 0 {
		opts = append(opts, converters.WithCapacity(capacity))
	}
	g, err := req.Build(opts...)
	if err != nil {
		return err
	}

	return wire.Encode(cmd.OutOrStdout(), wire.FromCore(g), wire.Format(outputFormat))
}
