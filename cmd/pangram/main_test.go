package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dendrascience/katas/internal/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(nil, strings.NewReader("ABCDEFGHIJKLMNOPQRSTUVWXYZ\n"), &out))
	assert.Equal(t, "true\n", out.String())
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer
	err := run(nil, strings.NewReader(""), &out)
	assert.ErrorIs(t, err, input.ErrEmptyInput)

	err = run([]string{"--bogus"}, strings.NewReader("ABCDEFGHIJKLMNOPQRSTUVWXYZ\n"), &out)
	assert.Error(t, err)
}

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"--version"}, strings.NewReader(""), &out))
	assert.True(t, strings.HasPrefix(out.String(), "pangram version "))
	assert.Contains(t, out.String(), "Package: katas\n")
}
