package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatIDs(t *testing.T) {
	assert.Equal(t, "-", formatIDs(nil))
	assert.Equal(t, "3", formatIDs([]uint{3}))
	assert.Equal(t, "1,2,10", formatIDs([]uint{1, 2, 10}))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "flag", firstNonEmpty("flag", "config"))
	assert.Equal(t, "config", firstNonEmpty("  ", "config"))
	assert.Empty(t, firstNonEmpty("", ""))
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"ID", "USERNAME"}, [][]string{{"1", "admin"}, {"12", "ana"}})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "USERNAME")
	assert.Contains(t, lines[1], "admin")
	assert.Contains(t, lines[2], "ana")
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCmd()

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}

	assert.ElementsMatch(t, []string{"migrate", "create-admin", "promote", "list-users", "reconcile"}, names)

	reconcile, _, err := root.Find([]string{"reconcile"})
	require.NoError(t, err)
	assert.NotNil(t, reconcile.Flags().Lookup("user"))
}
