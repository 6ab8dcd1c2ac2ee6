package pkg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeProbabilities(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, ComputeProbabilities(strings.NewReader("aaab"), &out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, AlphabetSize)

	for i, line := range lines {
		switch byte(i) {
		case 'a':
			require.Equal(t, "0.75000000", line)
		case 'b':
			require.Equal(t, "0.25000000", line)
		default:
			require.Equal(t, "0.00000000", line)
		}
	}
}

func TestComputeProbabilitiesEmptyInput(t *testing.T) {
	var out bytes.Buffer
	err := ComputeProbabilities(strings.NewReader(""), &out)
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestCountFrequenciesHighBytes(t *testing.T) {
	// bytes outside the alphabet still count toward the total
	counts, total, err := CountFrequencies(bytes.NewReader([]byte{'a', 0x80, 0xff, 'a'}))
	require.NoError(t, err)
	require.Equal(t, uint64(4), total)
	require.Equal(t, uint64(2), counts['a'])
}

func TestReadProbabilitiesRoundTrip(t *testing.T) {
	var table bytes.Buffer
	require.NoError(t, ComputeProbabilities(strings.NewReader("huffman huffman"), &table))

	weights, err := ReadProbabilities(&table)
	require.NoError(t, err)
	require.Len(t, weights, AlphabetSize)

	var sum float64
	for _, w := range weights {
		sum += w
	}
	require.InDelta(t, 1.0, sum, 1e-6)
}

func TestReadProbabilitiesShortTable(t *testing.T) {
	table := strings.Repeat("0.00781250\n", 10)
	_, err := ReadProbabilities(strings.NewReader(table))
	require.ErrorIs(t, err, ErrBadProbFile)
}

func TestReadProbabilitiesBadValue(t *testing.T) {
	table := "0.50000000\nnot-a-number\n"
	_, err := ReadProbabilities(strings.NewReader(table))
	require.ErrorIs(t, err, ErrBadProbFile)
}

func TestReadProbabilitiesIgnoresExtraValues(t *testing.T) {
	table := strings.Repeat("0.00781250\n", AlphabetSize+5)
	weights, err := ReadProbabilities(strings.NewReader(table))
	require.NoError(t, err)
	require.Len(t, weights, AlphabetSize)
}
