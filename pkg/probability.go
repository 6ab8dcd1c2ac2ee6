package pkg

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Frequency counting and the decimal probability table format: exactly
// AlphabetSize lines, each a fraction printed with 8 digits after the
// decimal point, line i holding the probability of symbol value i.

var (
	// ErrEmptyInput is returned when a probability sample has no bytes.
	ErrEmptyInput = errors.New("input file is empty")

	// ErrBadProbFile is returned when a probability table has fewer
	// than AlphabetSize parseable values.
	ErrBadProbFile = errors.New("malformed probability file")
)

// CountFrequencies counts symbol occurrences in r. Bytes outside the
// alphabet count toward the total but occupy no table slot; the input
// is assumed to be ASCII text.
func CountFrequencies(r io.Reader) (counts [AlphabetSize]uint64, total uint64, err error) {
	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return counts, total, err
		}
		if b < AlphabetSize {
			counts[b]++
		}
		total++
	}
	return counts, total, nil
}

// ComputeProbabilities counts r and writes the probability table to w.
func ComputeProbabilities(r io.Reader, w io.Writer) error {
	counts, total, err := CountFrequencies(r)
	if err != nil {
		return err
	}
	if total == 0 {
		return ErrEmptyInput
	}

	bw := bufio.NewWriter(w)
	for _, c := range counts {
		if _, err := fmt.Fprintf(bw, "%.8f\n", float64(c)/float64(total)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadProbabilities parses a probability table from r: AlphabetSize
// whitespace-separated floating values in symbol order. Fewer values,
// or a token that does not parse, is fatal to the caller.
func ReadProbabilities(r io.Reader) ([]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	weights := make([]float64, 0, AlphabetSize)
	for len(weights) < AlphabetSize && sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: value %d: %v", ErrBadProbFile, len(weights), err)
		}
		weights = append(weights, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(weights) < AlphabetSize {
		return nil, fmt.Errorf("%w: got %d of %d values", ErrBadProbFile, len(weights), AlphabetSize)
	}
	return weights, nil
}
