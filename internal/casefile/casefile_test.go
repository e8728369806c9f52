package casefile

import (
	"bytes"
	"context"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dendrascience/katas/kata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleCases = `cases:
  - id: digits-123
    kata: digits
    number: 123
    want: {sum: 6, product: 6, absolute_difference: 0}
  - kata: digits
    number: 305
    want: {sum: 8, product: 0, absolute_difference: 8}
  - kata: digits
    number: 0
    want_error: invalid_argument
  - kata: pangram
    text: thequickbrownfoxjumpsoverthelazydog
    want_pangram: true
  - kata: pangram
    text: whatdoesthefoxsay
    want_pangram: false
  - kata: stones
    total: 6
    steps: [3, 2]
    want_unvisited: 2
  - kata: stones
    total: 10
    steps: [1, 2, 3]
    birds: 3
    want_unvisited: 0
  - kata: stones
    total: 10
    steps: [2, 0]
    want_error: invalid_argument
`

func ptr[T any](v T) *T { return &v }

func TestDecode(t *testing.T) {
	f, err := Decode(strings.NewReader(sampleCases))
	require.NoError(t, err)
	require.Len(t, f.Cases, 8)

	first := f.Cases[0]
	assert.Equal(t, "digits-123", first.ID)
	assert.Equal(t, KataDigits, first.Kata)
	assert.Equal(t, 123, first.Number)
	assert.Equal(t, &kata.Digits{Sum: 6, Product: 6, AbsoluteDifference: 0}, first.Want)

	stones := f.Cases[6]
	assert.Equal(t, []int{1, 2, 3}, stones.Steps)
	require.NotNil(t, stones.Birds)
	assert.Equal(t, 3, *stones.Birds)
}

func TestDecode_Empty(t *testing.T) {
	f, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Cases)
}

func TestDecode_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "unknown kata", doc: "cases:\n  - kata: sudoku\n"},
		{name: "missing expectation", doc: "cases:\n  - kata: digits\n    number: 4\n"},
		{name: "bad want_error", doc: "cases:\n  - kata: digits\n    number: 0\n    want_error: boom\n"},
		{name: "pangram with want_error", doc: "cases:\n  - kata: pangram\n    text: x\n    want_pangram: false\n    want_error: invalid_argument\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidCase)
		})
	}

	_, err := Decode(strings.NewReader("cases:\n  - kata: digits\n    nubmer: 4\n"))
	assert.Error(t, err, "unknown fields must be rejected")
}

func TestRun(t *testing.T) {
	f, err := Decode(strings.NewReader(sampleCases))
	require.NoError(t, err)

	report, err := Run(context.Background(), f, zap.NewNop())
	require.NoError(t, err)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 8, report.Total)
	assert.Equal(t, 8, report.Passed)
	assert.True(t, report.OK())
	assert.Empty(t, report.Failures())
	assert.Equal(t, "6 6 0", report.Results[0].Got)
	assert.Equal(t, WantInvalidArgument, report.Results[2].Got)
}

func TestRun_ReportsFailures(t *testing.T) {
	f := File{Cases: []Case{
		{Kata: KataDigits, Number: 123, Want: &kata.Digits{Sum: 6, Product: 7, AbsoluteDifference: 1}},
		{Kata: KataDigits, Number: 42, WantError: WantInvalidArgument},
		{Kata: KataStones, Total: 6, Steps: []int{3, 2}, Birds: ptr(1), WantUnvisited: ptr(2)},
		{Kata: KataPangram, Text: "abc", WantPangram: ptr(false)},
	}}

	report, err := Run(context.Background(), f, nil)
	require.NoError(t, err)
	assert.False(t, report.OK())
	assert.Equal(t, 3, report.Failed)
	assert.Equal(t, 1, report.Passed)

	failures := report.Failures()
	require.Len(t, failures, 3)
	assert.Contains(t, failures[0].Reason, "got 6 6 0")
	assert.Contains(t, failures[1].Reason, "expected invalid_argument error")
	assert.Contains(t, failures[2].Reason, "unexpected error")
	assert.Equal(t, 2, failures[2].Index)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := File{Cases: []Case{{Kata: KataPangram, Text: "a", WantPangram: ptr(false)}}}
	report, err := Run(ctx, f, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, report.Total)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	f := Generate(30, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, Save(path, f))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded.Cases, 30)
	for i := range f.Cases {
		assert.Equal(t, f.Cases[i].ID, loaded.Cases[i].ID)
		assert.Equal(t, f.Cases[i].Kata, loaded.Cases[i].Kata)
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestGenerate_PassesRun(t *testing.T) {
	f := Generate(200, rand.New(rand.NewPCG(42, 7)))
	require.Len(t, f.Cases, 200)
	require.NoError(t, f.Validate())

	seen := map[Kata]bool{}
	for _, c := range f.Cases {
		assert.NotEmpty(t, c.ID)
		seen[c.Kata] = true
	}
	assert.Len(t, seen, 3)

	// Round-trip through YAML so the encoded form is what gets checked.
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, f))
	decoded, err := Decode(&buf)
	require.NoError(t, err)

	report, err := Run(context.Background(), decoded, nil)
	require.NoError(t, err)
	assert.True(t, report.OK(), "failures: %+v", report.Failures())
}
