package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedAsk replaces askOne with a canned answer sequence.
func scriptedAsk(t *testing.T, answers []interface{}) {
	t.Helper()
	orig := askOne
	i := 0
	askOne = func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
		require.Less(t, i, len(answers), "more prompts than scripted answers")
		switch r := response.(type) {
		case *string:
			*r = answers[i].(string)
		case *bool:
			*r = answers[i].(bool)
		default:
			t.Fatalf("unexpected response type %T", response)
		}
		i++
		return nil
	}
	t.Cleanup(func() { askOne = orig })
}

func TestRunInitWritesConfig(t *testing.T) {
	defer viper.Reset()
	initOutput = filepath.Join(t.TempDir(), "config.yaml")
	defer func() { initOutput = "config.yaml" }()

	scriptedAsk(t, []interface{}{"4096", "1s", "3s", "sqlite", "out.svg"})

	var buf bytes.Buffer
	initCmd.SetOut(&buf)
	require.NoError(t, runInit(initCmd, nil))
	assert.Contains(t, buf.String(), "Wrote")

	data, err := os.ReadFile(initOutput)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "4096")
	assert.Contains(t, content, "sqlite")
	assert.Contains(t, content, "out.svg")
}

func TestRunInitPostgresAsksForDSN(t *testing.T) {
	defer viper.Reset()
	initOutput = filepath.Join(t.TempDir(), "config.yaml")
	defer func() { initOutput = "config.yaml" }()

	scriptedAsk(t, []interface{}{"8192", "2s", "5s", "postgres", "postgres://localhost/bench", "chart.png"})

	var buf bytes.Buffer
	initCmd.SetOut(&buf)
	require.NoError(t, runInit(initCmd, nil))

	data, err := os.ReadFile(initOutput)
	require.NoError(t, err)
	assert.Contains(t, string(data), "postgres://localhost/bench")
}

func TestRunInitRefusesOverwrite(t *testing.T) {
	defer viper.Reset()
	initOutput = filepath.Join(t.TempDir(), "config.yaml")
	defer func() { initOutput = "config.yaml" }()
	require.NoError(t, os.WriteFile(initOutput, []byte("samples: 7\n"), 0o644))

	scriptedAsk(t, []interface{}{false})

	var buf bytes.Buffer
	initCmd.SetOut(&buf)
	require.NoError(t, runInit(initCmd, nil))
	assert.Contains(t, buf.String(), "Aborted")

	data, err := os.ReadFile(initOutput)
	require.NoError(t, err)
	assert.Equal(t, "samples: 7\n", string(data))
}

func TestRunInitRejectsBadDuration(t *testing.T) {
	defer viper.Reset()
	initOutput = filepath.Join(t.TempDir(), "config.yaml")
	defer func() { initOutput = "config.yaml" }()

	scriptedAsk(t, []interface{}{"1024", "not-a-duration"})

	err := runInit(initCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "warmup")
}
