package main

import (
	"bytes"
	"flag"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlagsDefault(t *testing.T) {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	os.Args = []string{"cmd"}

	cfg := parseFlags()
	assert.False(t, cfg.Serve)
	assert.Equal(t, 0, cfg.Port)
}

func TestParseFlagsServe(t *testing.T) {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	os.Args = []string{"cmd", "-serve", "-port", "9090"}

	cfg := parseFlags()
	assert.True(t, cfg.Serve)
	assert.Equal(t, 9090, cfg.Port)
}

func TestBuildDemoBattlePlacesBothMons(t *testing.T) {
	b, h1, h2 := buildDemoBattle(7)

	m1 := b.Mon(h1)
	m2 := b.Mon(h2)
	assert.Equal(t, "bulbasaur", m1.SpeciesID)
	assert.Equal(t, "charmander", m2.SpeciesID)
	assert.Equal(t, m1.MaxHP, m1.HP)
	assert.Equal(t, m2.MaxHP, m2.HP)
}

func TestRunScriptedTurnPrintsLogAndDamage(t *testing.T) {
	b, h1, h2 := buildDemoBattle(7)

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	runScriptedTurn(b, h1, h2)

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, "Turn 1 log")
	assert.Contains(t, output, "bulbasaur hp:")
	assert.Contains(t, output, "charmander hp:")

	m1 := b.Mon(h1)
	m2 := b.Mon(h2)
	assert.Less(t, m1.HP, m1.MaxHP)
	assert.Less(t, m2.HP, m2.MaxHP)
}

func TestRunWithoutServeReturnsImmediately(t *testing.T) {
	cfg := &Config{Serve: false}

	oldStdout := os.Stdout
	_, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	runErr := run(cfg)

	w.Close()
	os.Stdout = oldStdout

	assert.NoError(t, runErr)
}
