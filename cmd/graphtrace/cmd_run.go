package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphtrace/engine"
	"github.com/katalvlaran/graphtrace/internal/logging"
	"github.com/katalvlaran/graphtrace/internal/wire"
)

func runAlgorithm(cmd *cobra.Command, args []string) error {
	doc, err := wire.ReadGraphFile(graphPath)
	if err != nil {
		return err
	}
	g, err := doc.ToCore()
	if err != nil {
		return err
	}

	level := logLevel
	if level == "" {
		level = "warn"
	}
	eng := engine.New(engine.WithLogger(logging.New(level, "text", cmd.ErrOrStderr())))

	res, err := eng.Run(cmd.Context(), engine.Request{
		Algorithm: args[0],
		Graph:     g,
		StartID:   startID,
		EndID:     endID,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if logsOnly {
		for _, line := range res.Logs {
			fmt.Fprintln(out, line)
		}
		return nil
	}

	return wire.Encode(out, wire.FromResult(res), wire.JSON)
}
