package pkg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileFlowEndToEnd(t *testing.T) {
	dir := t.TempDir()
	sample := filepath.Join(dir, "sample.txt")
	probfile := filepath.Join(dir, "probfile.txt")
	listing := filepath.Join(dir, "codes.txt")
	encoded := filepath.Join(dir, "sample.txt.enc")
	decoded := filepath.Join(dir, "sample.txt.new")

	require.NoError(t, os.WriteFile(sample, []byte("aaab"), 0o644))

	require.NoError(t, ComputeProbabilitiesFile(sample, probfile))
	table, err := os.ReadFile(probfile)
	require.NoError(t, err)
	require.Len(t, strings.Split(strings.TrimRight(string(table), "\n"), "\n"), AlphabetSize)

	require.NoError(t, GenerateCodesFile(probfile, listing))
	codes, err := os.ReadFile(listing)
	require.NoError(t, err)
	require.Len(t, strings.Split(strings.TrimRight(string(codes), "\n"), "\n"), AlphabetSize)

	require.NoError(t, EncodeFile(probfile, sample, encoded, CodecOptions{}))
	bits, err := os.ReadFile(encoded)
	require.NoError(t, err)
	require.NotEmpty(t, bits)
	require.Equal(t, "", strings.Trim(string(bits), "01"))

	require.NoError(t, DecodeFile(probfile, encoded, decoded, CodecOptions{}))
	out, err := os.ReadFile(decoded)
	require.NoError(t, err)
	require.Equal(t, "aaab", string(out))
}

func TestFileFlowPacked(t *testing.T) {
	dir := t.TempDir()
	sample := filepath.Join(dir, "data.txt")
	probfile := filepath.Join(dir, "probfile.txt")
	encoded := filepath.Join(dir, "data.bin")
	decoded := filepath.Join(dir, "data.out")

	data := strings.Repeat("compress me! ", 50)
	require.NoError(t, os.WriteFile(sample, []byte(data), 0o644))
	require.NoError(t, ComputeProbabilitiesFile(sample, probfile))

	opts := CodecOptions{Packed: true}
	require.NoError(t, EncodeFile(probfile, sample, encoded, opts))
	require.NoError(t, DecodeFile(probfile, encoded, decoded, opts))

	out, err := os.ReadFile(decoded)
	require.NoError(t, err)
	require.Equal(t, data, string(out))
}

func TestFileFlowMissingInputs(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "nope.txt")
	probfile := filepath.Join(dir, "probfile.txt")

	require.Error(t, ComputeProbabilitiesFile(missing, probfile))
	require.Error(t, GenerateCodesFile(missing, filepath.Join(dir, "codes.txt")))
	require.Error(t, EncodeFile(missing, missing, filepath.Join(dir, "x.enc"), CodecOptions{}))
	require.Error(t, DecodeFile(missing, missing, filepath.Join(dir, "x.new"), CodecOptions{}))
}

func TestGenerateCodesFileBadTable(t *testing.T) {
	dir := t.TempDir()
	probfile := filepath.Join(dir, "short.txt")
	require.NoError(t, os.WriteFile(probfile, []byte("0.5\n0.5\n"), 0o644))

	err := GenerateCodesFile(probfile, filepath.Join(dir, "codes.txt"))
	require.ErrorIs(t, err, ErrBadProbFile)
}
