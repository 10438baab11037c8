package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/luckwood/internal/lottery"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cfg := filepath.Join(t.TempDir(), "missing.yaml")
	cmd.SetArgs(append([]string{"--config", cfg}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestPredictDoubleColorText(t *testing.T) {
	out, _, err := run(t, "predict", "--seed", "9", "--game", "ssq", "1", "2", "3", "4", "5", "6")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Double Color Ball", lines[0])
	assert.True(t, strings.HasPrefix(lines[5], "Group 5: "))
}

func TestPredictSeededIsReproducible(t *testing.T) {
	a, _, err := run(t, "predict", "--seed", "3", "-g", "dlt", "1,2,3,4,5")
	require.NoError(t, err)
	b, _, err := run(t, "predict", "--seed", "3", "-g", "dlt", "1,2,3,4,5")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPredictJSON(t *testing.T) {
	out, _, err := run(t, "predict", "--output", "json", "-g", "super_lotto", "1", "2", "3", "4", "5")
	require.NoError(t, err)

	var got struct {
		Game   lottery.Game `json:"game"`
		Groups []struct {
			Numbers []int `json:"numbers"`
			Feature int   `json:"feature"`
		} `json:"groups"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, lottery.GameSuperLotto, got.Game)
	require.Len(t, got.Groups, 6)
	for _, g := range got.Groups {
		require.Len(t, g.Numbers, 7)
		assert.Equal(t, g.Numbers[6], g.Feature)
	}
}

func TestPredictWrongLength(t *testing.T) {
	out, _, err := run(t, "predict", "-g", "ssq", "1", "2", "3", "4", "5")
	assert.ErrorIs(t, err, lottery.ErrInvalidInput)
	assert.Empty(t, out)
}

func TestPredictBadInput(t *testing.T) {
	_, _, err := run(t, "predict", "-g", "ssq", "1", "two")
	assert.ErrorContains(t, err, `invalid number "two"`)

	_, _, err = run(t, "predict", "-g", "keno", "1")
	assert.ErrorIs(t, err, lottery.ErrUnknownGame)

	_, _, err = run(t, "predict", "--output", "yaml", "1")
	assert.ErrorContains(t, err, "output must be text or json")
}

func TestCoverage(t *testing.T) {
	out, logs, err := run(t, "coverage", "--seed", "1", "--trials", "300", "-g", "dlt", "1", "2", "3", "4", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "trials: 300")
	assert.Contains(t, out, "coverage: complete")
	assert.Contains(t, logs, "coverage finished")
	assert.Contains(t, logs, "run_id=")
}

func TestGames(t *testing.T) {
	out, _, err := run(t, "games")
	require.NoError(t, err)
	assert.Contains(t, out, "double_color")
	assert.Contains(t, out, "super_lotto")
}

func TestParseNumbers(t *testing.T) {
	got, err := parseNumbers([]string{"1,2", " 3 ", "4,,5", ""})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)

	_, err = parseNumbers([]string{"1.5"})
	assert.Error(t, err)
}
