package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphtrace/builder"
	"github.com/katalvlaran/graphtrace/engine"
)

// --- Global Command Variables ---
var (
	configPath string
	logLevel   string

	// run
	graphPath string
	startID   string
	endID     string
	logsOnly  bool

	// convert
	convertTo    string
	convertFrom  string
	inputPath    string
	directed     bool
	labels       []string
	capacity     float64
	presence     bool
	outputFormat string

	// gen
	seed        int64
	minWeight   int
	maxWeight   int
	realWeights bool
	genIDs      string
	genDirect   bool
	genFormat   string

	rootCmd = &cobra.Command{
		Use:           "graphtrace",
		Short:         "Step-by-step graph algorithm traces",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  runServe, // cmd_serve.go
	}

	runCmd = &cobra.Command{
		Use:       "run ALGORITHM",
		Short:     "Run one algorithm on a graph file and print its trace",
		Long:      "Run one algorithm on a JSON or YAML graph file.\nAlgorithms: " + strings.Join(engine.Algorithms(), ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: engine.Algorithms(),
		RunE:      runAlgorithm, // cmd_run.go
	}

	convertCmd = &cobra.Command{
		Use:   "convert",
		Short: "Convert a graph to or from matrix, edge list and adjacency list form",
		Args:  cobra.NoArgs,
		RunE:  runConvert, // cmd_convert.go
	}

	genCmd = &cobra.Command{
		Use:       "gen TOPOLOGY N",
		Short:     "Generate a fixture graph",
		Long:      "Generate a fixture graph.\nTopologies: " + strings.Join(builder.Topologies, ", "),
		Args:      cobra.ExactArgs(2),
		ValidArgs: builder.Topologies,
		RunE:      runGen, // cmd_gen.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides the configuration)")

	runCmd.Flags().StringVarP(&graphPath, "graph", "g", "", "graph file (.json, .yaml or .yml)")
	runCmd.Flags().StringVarP(&startID, "start", "s", "", "start node id (source for ford_fulkerson)")
	runCmd.Flags().StringVarP(&endID, "end", "e", "", "end node id (sink for ford_fulkerson)")
	runCmd.Flags().BoolVar(&logsOnly, "logs", false, "print only the log lines")
	_ = runCmd.MarkFlagRequired("graph")

	convertCmd.Flags().StringVar(&convertTo, "to", "", "render --graph as matrix, edge_list or adj_list")
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "build a graph from --input in matrix, edge_list or adj_list form")
	convertCmd.Flags().StringVarP(&graphPath, "graph", "g", "", "graph file for --to")
	convertCmd.Flags().StringVarP(&inputPath, "input", "i", "", "JSON data file for --from")
	convertCmd.Flags().BoolVar(&directed, "directed", false, "treat --from data as directed")
	convertCmd.Flags().StringSliceVar(&labels, "labels", nil, "node labels for --from matrix")
	convertCmd.Flags().Float64Var(&capacity, "capacity", 0, "capacity stamped on every synthesised link (0 leaves it unset)")
	convertCmd.Flags().BoolVar(&presence, "presence", false, "write 1 instead of weights for --to matrix")
	convertCmd.Flags().StringVarP(&outputFormat, "output", "o", "json", "graph output format for --from: json or yaml")
	convertCmd.MarkFlagsMutuallyExclusive("to", "from")
	convertCmd.MarkFlagsOneRequired("to", "from")

	genCmd.Flags().Int64Var(&seed, "seed", 1, "random seed for weights")
	genCmd.Flags().IntVar(&minWeight, "min-weight", 1, "smallest integer weight")
	genCmd.Flags().IntVar(&maxWeight, "max-weight", 1, "largest integer weight")
	genCmd.Flags().BoolVar(&realWeights, "real-weights", false, "draw real-valued weights from [min-weight, max-weight]")
	genCmd.Flags().StringVar(&genIDs, "ids", "decimal", "vertex id scheme: decimal, one or excel")
	genCmd.Flags().BoolVar(&genDirect, "directed", false, "emit a directed graph (each link in both directions)")
	genCmd.Flags().StringVarP(&genFormat, "output", "o", "json", "output format: json or yaml")

	rootCmd.AddCommand(serveCmd, runCmd, convertCmd, genCmd)
}
