package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandWiring(t *testing.T) {
	expected := []string{"libs", "cxxflags", "ldflags", "cmakeflags", "cache"}

	for _, name := range expected {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, "subcommand %s should be registered", name)
		assert.Equal(t, name, cmd.Name())
	}

	assert.NotEmpty(t, rootCmd.Version)
}

func TestFlagCommandsRequireLibraries(t *testing.T) {
	for _, cmd := range []string{"cxxflags", "ldflags", "cmakeflags"} {
		sub, _, err := rootCmd.Find([]string{cmd})
		require.NoError(t, err)

		err = sub.Args(sub, []string{})
		assert.Error(t, err, "%s without libraries should be rejected", cmd)

		err = sub.Args(sub, []string{"zlib"})
		assert.NoError(t, err)
	}
}

func TestLibsCommandRejectsArgs(t *testing.T) {
	sub, _, err := rootCmd.Find([]string{"libs"})
	require.NoError(t, err)

	err = sub.Args(sub, []string{"zlib"})
	assert.Error(t, err)
}
