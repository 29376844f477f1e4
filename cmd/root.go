// Package cmd contains the commands of the gremlinq binary.
package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/gremlin/cmd/util"
	"github.com/katalvlaran/gremlin/logger"
)

const (
	logFormatFlag = "log-format"
	logLevelFlag  = "log-level"
)

// NewRootCommand enables all children commands to read flags from CLI flags, environment
// variables prefixed with GREMLINQ, or gremlinq.yaml (in that order).
func NewRootCommand() *cobra.Command {
	viper.SetConfigName("gremlinq")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("GREMLINQ")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	configPaths := []string{"/etc/gremlinq", "$HOME/.gremlinq", "."}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}
	// a missing config file is fine; flags and env still apply
	_ = viper.ReadInConfig()

	cmd := &cobra.Command{
		Use:   "gremlinq",
		Short: "Run lazy Gremlin-style traversals over graphs described in YAML",
		Long: `gremlinq loads a labeled multigraph from a YAML document and runs a traversal chain such as

  v("thor").as("me").out("parents").in("parents").unique().except("me")

against it, printing the resulting vertex IDs.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			util.MustBindPFlag(logFormatFlag, flags.Lookup(logFormatFlag))
			util.MustBindPFlag(logLevelFlag, flags.Lookup(logLevelFlag))

			return validateLogFlags(viper.GetString(logFormatFlag), viper.GetString(logLevelFlag))
		},
	}

	flags := cmd.PersistentFlags()
	flags.String(logFormatFlag, "text", fmt.Sprintf("log format. one of %v", logger.Formats))
	flags.String(logLevelFlag, "info", fmt.Sprintf("log level. one of %v", logger.Levels))

	return cmd
}

func validateLogFlags(format, level string) error {
	if !slices.Contains(logger.Formats, format) {
		return fmt.Errorf("invalid log format: %s, expected one of %v", format, logger.Formats)
	}
	if !slices.Contains(logger.Levels, level) {
		return fmt.Errorf("invalid log level: %s, expected one of %v", level, logger.Levels)
	}

	return nil
}
