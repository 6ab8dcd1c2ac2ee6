package pkg

import (
	"fmt"
	"os"
)

// File-level operations behind the CLI commands. Each opens its own
// inputs and outputs, runs one full pass, and closes everything on
// every exit path. Encode and decode rebuild the identical tree from
// the same probability table, which is what keeps the two directions
// symmetric.

// CodecOptions selects the wire format for file encode/decode.
type CodecOptions struct {
	Packed bool
}

// ComputeProbabilitiesFile counts samplePath and writes the 128-line
// probability table to probPath.
func ComputeProbabilitiesFile(samplePath, probPath string) error {
	in, err := os.Open(samplePath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(probPath)
	if err != nil {
		return err
	}
	defer out.Close()

	return ComputeProbabilities(in, out)
}

// GenerateCodesFile builds the tree from probPath and writes the
// diagnostic code listing to outPath.
func GenerateCodesFile(probPath, outPath string) error {
	root, err := loadTree(probPath)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	return WriteCodeListing(root, out)
}

// EncodeFile encodes dataPath into encodedPath using the tree built
// from probPath.
func EncodeFile(probPath, dataPath, encodedPath string, opts CodecOptions) error {
	root, err := loadTree(probPath)
	if err != nil {
		return err
	}

	in, err := os.Open(dataPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(encodedPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if opts.Packed {
		return EncodePacked(root, in, out)
	}
	return Encode(root, in, out)
}

// DecodeFile decodes encodedPath into decodedPath using the tree built
// from probPath.
func DecodeFile(probPath, encodedPath, decodedPath string, opts CodecOptions) error {
	root, err := loadTree(probPath)
	if err != nil {
		return err
	}

	in, err := os.Open(encodedPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(decodedPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if opts.Packed {
		return DecodePacked(root, in, out)
	}
	return Decode(root, in, out)
}

func loadTree(probPath string) (*TreeNode, error) {
	f, err := os.Open(probPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	weights, err := ReadProbabilities(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", probPath, err)
	}
	return BuildASCIITree(weights), nil
}
