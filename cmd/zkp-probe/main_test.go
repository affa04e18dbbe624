package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadVectorsRejectsUnknownFields(t *testing.T) {
	_, err := loadVectors(strings.NewReader("vectors:\n  - name: a\n    kind: tweak\n"))
	require.Error(t, err)
}

func TestLoadVectorsEmpty(t *testing.T) {
	vs, err := loadVectors(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, vs)
}

func TestCheckVectors(t *testing.T) {
	vs := []vector{
		{Name: "good", Type: "commitment", Hex: "09" + strings.Repeat("00", 32)},
		{Name: "odd", Type: "commitment", Hex: "0"},
		{Name: "secret", Type: "tweak", Hex: strings.Repeat("0f", 32)},
	}

	var out bytes.Buffer
	invalid := checkVectors(vs, &out)

	assert.Equal(t, 1, invalid)
	assert.Contains(t, out.String(), "INVALID odd")
	assert.Contains(t, out.String(), "ok      secret (tweak): [redacted]")
	assert.NotContains(t, out.String(), strings.Repeat("0f", 32))
}

func TestRunVectorsFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"--vectors", filepath.Join("testdata", "vectors.yaml")}, &stdout, &stderr))
	assert.Equal(t, 4, strings.Count(stdout.String(), "ok      "))
}

func TestRunVectorsFileWithInvalidEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vectors:\n  - name: bad\n    type: pubkey\n    hex: \"zz\"\n"), 0o600))

	var stdout, stderr bytes.Buffer
	err := run([]string{"--vectors", path}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 vectors invalid")
}

func TestRunScratchProbe(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"--scratch-size", "0,100"}, &stdout, &stderr))

	out := stdout.String()
	if strings.Contains(out, "native bindings unavailable") {
		return
	}
	assert.Contains(t, out, "scratch space ok: max_size=0")
	assert.Contains(t, out, "scratch space ok: max_size=100")
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"--version"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "secp256k1-zkp-go")
}
