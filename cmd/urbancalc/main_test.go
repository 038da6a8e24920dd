package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadExprs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("1+2\n\n(2+3)*4\n"), 0o644))

	v, err := readExprs(path, true)
	require.NoError(t, err)
	require.Equal(t, []string{"1+2", "(2+3)*4"}, v)

	v, err = readExprs(path, false)
	require.NoError(t, err)
	require.Equal(t, []string{"1+2\n\n(2+3)*4\n"}, v)

	_, err = readExprs(filepath.Join(t.TempDir(), "missing"), false)
	require.Error(t, err)
}
