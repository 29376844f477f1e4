package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gremlin/cmd/util"
	"github.com/katalvlaran/gremlin/dsl"
	"github.com/katalvlaran/gremlin/logger"
	"github.com/katalvlaran/gremlin/query"
	"github.com/katalvlaran/gremlin/yamlgraph"
)

const (
	graphFlag  = "graph"
	strictFlag = "strict"
	outputFlag = "output"
)

var outputFormats = []string{"text", "json", "yaml"}

// NewQueryCommand returns the command that runs one traversal chain against a YAML graph.
func NewQueryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query CHAIN",
		Short: "Run a traversal chain against a graph file",
		Long: fmt.Sprintf(`Run a traversal chain against a graph file and print the resulting vertex IDs.

Supported steps: %v`, dsl.StepNames()),
		Example: `  gremlinq query --graph norse.yaml 'v("thor").out("parents")'
  gremlinq query --graph norse.yaml --output json 'v(thor).out(parents).in(parents).unique()'`,
		Args: cobra.ExactArgs(1),
		RunE: runQuery,
		PreRun: func(cmd *cobra.Command, _ []string) {
			flags := cmd.Flags()
			util.MustBindPFlag(graphFlag, flags.Lookup(graphFlag))
			util.MustBindPFlag(strictFlag, flags.Lookup(strictFlag))
			util.MustBindPFlag(outputFlag, flags.Lookup(outputFlag))
		},
	}

	flags := cmd.Flags()
	flags.String(graphFlag, "", "path to the YAML graph document")
	flags.Bool(strictFlag, false, "fail on back/except labels that were never recorded")
	flags.StringP(outputFlag, "o", "text", "output format: text, json or yaml")

	// NOTE: if you add a new flag here, add the binding in PreRun

	return cmd
}

func runQuery(cmd *cobra.Command, args []string) error {
	graphPath := viper.GetString(graphFlag)
	output := viper.GetString(outputFlag)
	if graphPath == "" {
		return fmt.Errorf("missing --%s", graphFlag)
	}
	if !slices.Contains(outputFormats, output) {
		return fmt.Errorf("invalid output format: %s", output)
	}

	log, err := logger.NewLogger(viper.GetString(logFormatFlag), viper.GetString(logLevelFlag))
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	g, err := yamlgraph.LoadFile(graphPath)
	if err != nil {
		return err
	}
	log.Debug("graph loaded",
		zap.String("path", graphPath),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()))

	opts := []query.Option{query.WithLogger(log)}
	if viper.GetBool(strictFlag) {
		opts = append(opts, query.WithStrictLabels())
	}

	q, err := dsl.Build(args[0], g, opts...)
	if err != nil {
		return err
	}
	results, err := q.RunContext(cmd.Context())
	if err != nil {
		return err
	}

	return writeResults(cmd.OutOrStdout(), output, results)
}

func writeResults(w io.Writer, format string, results []string) error {
	switch format {
	case "json":
		return json.NewEncoder(w).Encode(results)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, r := range results {
			if _, err := fmt.Fprintln(w, r); err != nil {
				return err
			}
		}
		return nil
	}
}
