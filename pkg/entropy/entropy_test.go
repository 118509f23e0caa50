package entropy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededIsDeterministic(t *testing.T) {
	a, b := NewSeeded(42), NewSeeded(42)
	for range 10 {
		assert.Equal(t, a.Float64(), b.Float64())
	}

	c := NewSeeded(43)
	assert.NotEqual(t, NewSeeded(42).Float64(), c.Float64())
}

func TestSequenceCycles(t *testing.T) {
	seq := NewSequence(0.1, 0.2, 1.5, -1)

	assert.Equal(t, 0.1, seq.Float64())
	assert.Equal(t, 0.2, seq.Float64())
	assert.Less(t, seq.Float64(), 1.0)
	assert.Equal(t, 0.0, seq.Float64())
	assert.Equal(t, 0.1, seq.Float64(), "sequence should wrap")
	assert.Equal(t, 5, seq.Drawn())

	assert.Equal(t, 0.5, NewSequence().Float64())
}

func TestRange(t *testing.T) {
	assert.InDelta(t, 10.0, Range(NewSequence(0), 10, 20), 1e-9)
	assert.InDelta(t, 15.0, Range(NewSequence(0.5), 10, 20), 1e-9)
	assert.Less(t, Range(NewSequence(0.9999999), 10, 20), 20.0)
}

func TestIntn(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		n    int
		want int
	}{
		{name: "zero", v: 0, n: 6, want: 0},
		{name: "middle", v: 0.5, n: 6, want: 3},
		{name: "top", v: 0.99999, n: 6, want: 5},
		{name: "empty", v: 0.5, n: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Intn(NewSequence(tt.v), tt.n))
		})
	}
}

func TestChanceAndPick(t *testing.T) {
	assert.True(t, Chance(NewSequence(0.69), 0.7))
	assert.False(t, Chance(NewSequence(0.7), 0.7))
	assert.Equal(t, "c", Pick(NewSequence(0.9), []string{"a", "b", "c"}))
}

func TestCalculate(t *testing.T) {
	seed := uint64(1234)

	got, err := Calculate(Config{Mode: ModeManual, Value: &seed})
	require.NoError(t, err)
	assert.Equal(t, seed, got)

	_, err = Calculate(Config{Mode: ModeManual})
	assert.Error(t, err)

	a, err := Calculate(Config{Mode: ModeContent}, "#3b82f6", "#ffffff")
	require.NoError(t, err)
	b, err := Calculate(Config{Mode: ModeContent}, "#3B82F6", "#FFFFFF")
	require.NoError(t, err)
	assert.Equal(t, a, b, "content seed should ignore hex case")

	_, err = Calculate(Config{Mode: ModeContent})
	assert.Error(t, err)

	_, err = Calculate(Config{Mode: "weird"})
	assert.Error(t, err)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" Content ")
	require.NoError(t, err)
	assert.Equal(t, ModeContent, m)

	_, err = ParseMode("filepath")
	assert.ErrorContains(t, err, "invalid seed mode")
}
