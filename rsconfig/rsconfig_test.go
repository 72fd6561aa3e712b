package rsconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
fixtures:
  - name: one-error
    codeword: [32, 65, 205, 69, 41, 220, 46, 128, 236, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0]
    num_parity: 10
    injected_errors:
      - position: 3
        mask: 42
  - name: two-erasures
    codeword: [1, 2, 3, 4, 5, 6, 7, 8]
    num_parity: 4
    erasures: [0, 5]
`

func TestLoadParsesFixtures(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	set, err := Load(path)
	require.NoError(t, err)
	require.Len(t, set.Fixtures, 2)

	assert.Equal(t, "one-error", set.Fixtures[0].Name)
	assert.Equal(t, 10, set.Fixtures[0].NumParity)
	assert.Equal(t, 3, set.Fixtures[0].InjectedErrors[0].Position)

	assert.Equal(t, []int{0, 5}, set.Fixtures[1].Erasures)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestReceivedAppliesErrorsAndErasures(t *testing.T) {
	f := Fixture{
		Codeword:       []int{1, 2, 3, 4},
		InjectedErrors: []ErrorInjection{{Position: 1, Mask: 0xFF}},
		Erasures:       []int{3},
	}
	got := f.Received()
	assert.Equal(t, []int{1, 2 ^ 0xFF, 3, 0}, got)
	assert.Equal(t, []int{1, 2, 3, 4}, f.Codeword)
}
