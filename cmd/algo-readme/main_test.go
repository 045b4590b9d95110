package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"algo-readme/internal/domain/model"
	"algo-readme/internal/usecase"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "algo-readme dev\n", out.String())
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})
	cmd.SetErr(&bytes.Buffer{})

	assert.Error(t, cmd.Execute())
}

func TestPrintSummary(t *testing.T) {
	var out bytes.Buffer
	printSummary(&out, &usecase.RunSummary{
		Total:     3,
		Counts:    model.TierCounts{model.TierBronze: 2, model.TierGold: 1},
		Fallbacks: 1,
	})

	got := out.String()
	assert.Contains(t, got, "README updated: 3 problems")
	assert.Contains(t, got, "🥉 브론즈: 2")
	assert.Contains(t, got, "🥇 골드: 1")
	assert.Contains(t, got, "1 problem(s) rendered with fallback metadata")
}
