package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSampleCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newSampleCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestSampleCmd(t *testing.T) {
	out, err := runSampleCmd(t, "--min", "10", "--max", "100", "--count", "5", "--seed", "42")
	require.NoError(t, err)

	lines := strings.Fields(out)
	require.Len(t, lines, 5)
	for _, line := range lines {
		v, err := strconv.Atoi(line)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 10)
		assert.Less(t, v, 100)
	}
}

func TestSampleCmdSeededReproducibility(t *testing.T) {
	a, err := runSampleCmd(t, "--min", "0", "--max", "1000000", "--count", "10", "--seed", "7")
	require.NoError(t, err)
	b, err := runSampleCmd(t, "--min", "0", "--max", "1000000", "--count", "10", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSampleCmdLogNormal(t *testing.T) {
	out, err := runSampleCmd(t, "--min", "1", "--max", "10000", "--count", "20",
		"--dist", "lognormal", "--mean", "100", "--seed", "3")
	require.NoError(t, err)
	assert.Len(t, strings.Fields(out), 20)
}

func TestSampleCmdBadRange(t *testing.T) {
	_, err := runSampleCmd(t, "--min", "100", "--max", "100")
	assert.Error(t, err)
}

func TestSampleCmdBadDistribution(t *testing.T) {
	_, err := runSampleCmd(t, "--min", "1", "--max", "10", "--dist", "zipf")
	assert.Error(t, err)
}
