package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExclusiveCumSum(t *testing.T) {
	assert.Equal(t, []int{0, 4, 6}, ExclusiveCumSum([]int{4, 2, 2}))
	assert.Equal(t, []int{}, ExclusiveCumSum([]int{}))
}

func TestCeilDiv(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, CeilDiv(0, 16))
	assert.Equal(1, CeilDiv(1, 16))
	assert.Equal(1, CeilDiv(16, 16))
	assert.Equal(5, CeilDiv(72, 16))
}

func TestModIsNeverNegative(t *testing.T) {
	assert.Equal(t, 10, Mod(-2, 12))
	assert.Equal(t, 3, Mod(15, 12))
}

func TestMaxAndSum(t *testing.T) {
	assert.Equal(t, 6, Max(5, 4, 6))
	assert.Equal(t, 3, Max(3))
	assert.Equal(t, 12, Sum([]int{4, 8}))
}

func TestGatherSongDirs(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"002", "001", "003"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, name), 0777))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "001", "melody.txt"), nil, 0666))
	require.NoError(t, os.WriteFile(filepath.Join(root, "002", "melody.txt"), nil, 0666))

	dirs, err := GatherSongDirs(root, "melody.txt", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "001"), filepath.Join(root, "002")}, dirs)

	dirs, err = GatherSongDirs(root, "melody.txt", 1)
	require.NoError(t, err)
	assert.Len(t, dirs, 1)
}
