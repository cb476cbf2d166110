package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-tangle/tangle"
)

func TestParseWarningMode(t *testing.T) {
	cases := map[string]tangle.WarningMode{
		"":      tangle.WarningsNone,
		"none":  tangle.WarningsNone,
		"soft":  tangle.WarningsSoft,
		"error": tangle.WarningsError,
	}
	for input, want := range cases {
		got, err := parseWarningMode(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseWarningModeRejectsUnknown(t *testing.T) {
	_, err := parseWarningMode("loud")
	assert.Error(t, err)
}

func TestCLIConfigWiresFlags(t *testing.T) {
	cli := &CLI{Debug: true, Warnings: "error", NoTangle: true}
	cfg, err := cli.config()
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, tangle.WarningsError, cfg.Warnings)
	assert.False(t, cfg.TangleCode)
}
