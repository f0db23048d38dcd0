package benchmark

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "run.json")
	run := sampleRun()
	run.Label = "baseline"
	run.Commit = "abc1234"

	require.NoError(t, SaveJSON(path, run))

	loaded, err := LoadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, "baseline", loaded.Label)
	assert.Equal(t, "abc1234", loaded.Commit)
	assert.Equal(t, run.Series, loaded.Series)
}

func TestSaveJSONRejectsInvalidRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	run := sampleRun()
	run.Series[0].Points[0].Micros = -1
	assert.Error(t, SaveJSON(path, run))
}

func TestLoadJSONMissingFile(t *testing.T) {
	_, err := LoadJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadJSONRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, writeFile(path, "{not json"))
	_, err := LoadJSON(path)
	assert.ErrorContains(t, err, "unmarshal")
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

func TestParseSizes(t *testing.T) {
	sizes, err := ParseSizes("1, 2,4,8")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 8}, sizes)

	_, err = ParseSizes("1,2,2")
	assert.ErrorContains(t, err, "strictly increasing")
	_, err = ParseSizes("0,1")
	assert.ErrorContains(t, err, "positive")
	_, err = ParseSizes("a,b")
	assert.Error(t, err)
	_, err = ParseSizes("")
	assert.Error(t, err)
}

func TestSizesUpTo(t *testing.T) {
	assert.Equal(t, []int{1, 2, 4, 8}, SizesUpTo(8))
	assert.Equal(t, []int{1, 2, 4, 8}, SizesUpTo(9))
	assert.Equal(t, []int{1}, SizesUpTo(1))
	assert.Empty(t, SizesUpTo(0))
}

func TestFormatSizes(t *testing.T) {
	assert.Equal(t, "1,2,4", FormatSizes([]int{1, 2, 4}))
}
