package globals

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	flags := AddInputFlags(cmd, FlagUML, FlagAPIRoot, FlagPrevious)

	require.NoError(t, cmd.ParseFlags([]string{"--uml", "model.xmi", "--previous", "old.xmi"}))
	assert.Equal(t, "model.xmi", flags.UML)
	assert.Equal(t, "old.xmi", flags.Previous)
	assert.Len(t, flags.Options(cmd), 2, "unset flags add no options")

	assert.Nil(t, cmd.Flags().Lookup(FlagTerminology))
	assert.Panics(t, func() { AddInputFlags(cmd, "bogus") })
}
