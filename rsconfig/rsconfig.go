// Package rsconfig loads codeword fixtures for the decoder demonstration
// CLI from a YAML file, standing in for the surrounding QR library that
// supplies an ordered byte sequence and a parity/erasure/error plan for
// it to decode.
package rsconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrorInjection XORs Mask into Codeword at Position before decoding.
type ErrorInjection struct {
	Position int `yaml:"position"`
	Mask     int `yaml:"mask"`
}

// Fixture describes one codeword to feed through the decoders.
type Fixture struct {
	Name           string           `yaml:"name"`
	Codeword       []int            `yaml:"codeword"`
	NumParity      int              `yaml:"num_parity"`
	Erasures       []int            `yaml:"erasures"`
	InjectedErrors []ErrorInjection `yaml:"injected_errors"`
}

// FixtureSet is the top-level shape of a fixture file: a named list of
// fixtures to run in order.
type FixtureSet struct {
	Fixtures []Fixture `yaml:"fixtures"`
}

// Load reads and parses a fixture file from disk.
func Load(path string) (*FixtureSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rsconfig: reading %s: %w", path, err)
	}
	var set FixtureSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("rsconfig: parsing %s: %w", path, err)
	}
	return &set, nil
}

// Received applies the fixture's injected errors and erasures to a copy
// of Codeword, returning the simulated received word.
func (f Fixture) Received() []int {
	received := make([]int, len(f.Codeword))
	copy(received, f.Codeword)
	for _, inj := range f.InjectedErrors {
		if inj.Position >= 0 && inj.Position < len(received) {
			received[inj.Position] ^= inj.Mask
		}
	}
	for _, pos := range f.Erasures {
		if pos >= 0 && pos < len(received) {
			received[pos] = 0
		}
	}
	return received
}
