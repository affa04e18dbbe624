package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/hsiuhsiu/secp256k1-zkp-go/pkg/zkp/opaque"
)

type vector struct {
	Name string      `yaml:"name"`
	Type opaque.Kind `yaml:"type"`
	Hex  string      `yaml:"hex"`
}

type vectorFile struct {
	Vectors []vector `yaml:"vectors"`
}

func loadVectors(r io.Reader) ([]vector, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file vectorFile
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("parse vectors: %w", err)
	}
	return file.Vectors, nil
}

// checkVectors reports each vector and returns how many failed to decode.
func checkVectors(vectors []vector, out io.Writer) int {
	invalid := 0
	for _, v := range vectors {
		value, err := opaque.Parse(v.Type, v.Hex)
		if err != nil {
			invalid++
			fmt.Fprintf(out, "INVALID %s (%s): %v\n", v.Name, v.Type, err)
			continue
		}
		fmt.Fprintf(out, "ok      %s (%s): %s\n", v.Name, v.Type, value)
	}
	return invalid
}
