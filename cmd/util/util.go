// Package util provides common helpers for the spf13/cobra commands of gremlinq.
package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// MustBindPFlag binds key to a pflag (as used by cobra) and panics if the binding fails.
func MustBindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic("failed to bind pflag: " + err.Error())
	}
}

// PrepareTempConfigDir points HOME at a temporary directory and creates
// $HOME/.gremlinq in it, so tests never read a real configuration.
func PrepareTempConfigDir(t *testing.T) string {
	_, err := os.Stat("/etc/gremlinq/gremlinq.yaml")
	require.ErrorIs(t, err, os.ErrNotExist, "Config file at /etc/gremlinq/gremlinq.yaml would disturb test result.")

	homedir := t.TempDir()
	t.Setenv("HOME", homedir)

	confdir := filepath.Join(homedir, ".gremlinq")
	require.NoError(t, os.Mkdir(confdir, 0o750))

	return confdir
}

// PrepareTempConfigFile writes config to $HOME/.gremlinq/gremlinq.yaml in a temporary HOME.
func PrepareTempConfigFile(t *testing.T, config string) {
	confdir := PrepareTempConfigDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(confdir, "gremlinq.yaml"), []byte(config), 0o600))
}
