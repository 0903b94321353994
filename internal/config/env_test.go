package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetForTest(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		os.Unsetenv(k)
	}
	t.Cleanup(func() {
		for _, k := range keys {
			os.Unsetenv(k)
		}
	})
}

func TestLoadEnvValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	body := `# settings
GOSTRETCH_T_FFT=1024
export GOSTRETCH_T_HOP=256
GOSTRETCH_T_QUOTED="a \"quoted\" value"
GOSTRETCH_T_SINGLE='c:\path'
GOSTRETCH_T_SLASH="c:\\dir"
GOSTRETCH_T_MIXED="a\\"b"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	tests := []struct {
		key string
		val string
	}{
		{key: "GOSTRETCH_T_FFT", val: "1024"},
		{key: "GOSTRETCH_T_HOP", val: "256"},
		{key: "GOSTRETCH_T_QUOTED", val: `a "quoted" value`},
		{key: "GOSTRETCH_T_SINGLE", val: `c:\path`},
		{key: "GOSTRETCH_T_SLASH", val: `c:\dir`},
		{key: "GOSTRETCH_T_MIXED", val: `a\"b`},
	}
	keys := make([]string, 0, len(tests))
	for _, tt := range tests {
		keys = append(keys, tt.key)
	}
	unsetForTest(t, keys...)

	require.NoError(t, LoadEnv(path))
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.val, os.Getenv(tt.key))
		})
	}
}

func TestLoadEnvKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GOSTRETCH_TEST_A=1\nexport GOSTRETCH_TEST_B=2\n"), 0o600))

	t.Setenv("GOSTRETCH_TEST_B", "preset")
	unsetForTest(t, "GOSTRETCH_TEST_A")

	require.NoError(t, LoadEnv(path, filepath.Join(t.TempDir(), "missing.env"), "", t.TempDir()))

	assert.Equal(t, "1", os.Getenv("GOSTRETCH_TEST_A"))
	assert.Equal(t, "preset", os.Getenv("GOSTRETCH_TEST_B"))
}

func TestLoadEnvEarlierFileWins(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.env")
	second := filepath.Join(dir, "second.env")
	require.NoError(t, os.WriteFile(first, []byte("GOSTRETCH_TEST_C=first\n"), 0o600))
	require.NoError(t, os.WriteFile(second, []byte("GOSTRETCH_TEST_C=second\nGOSTRETCH_TEST_D=second\n"), 0o600))
	unsetForTest(t, "GOSTRETCH_TEST_C", "GOSTRETCH_TEST_D")

	require.NoError(t, LoadEnv(first, second))
	assert.Equal(t, "first", os.Getenv("GOSTRETCH_TEST_C"))
	assert.Equal(t, "second", os.Getenv("GOSTRETCH_TEST_D"))
}

func TestLoadDefaultEnvReadsStretchEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.env")
	require.NoError(t, os.WriteFile(path, []byte("GOSTRETCH_TEST_E=42\n"), 0o600))
	t.Setenv("STRETCH_ENV", path)
	t.Setenv("HOME", t.TempDir())
	unsetForTest(t, "GOSTRETCH_TEST_E")

	require.NoError(t, LoadDefaultEnv())
	assert.Equal(t, 42, Int("GOSTRETCH_TEST_E", 0))
}

func TestTypedGetters(t *testing.T) {
	t.Setenv("GOSTRETCH_INT", " 512 ")
	t.Setenv("GOSTRETCH_FLOAT", "0.75")
	t.Setenv("GOSTRETCH_BOOL", "true")
	t.Setenv("GOSTRETCH_BAD", "x")

	assert.Equal(t, 512, Int("GOSTRETCH_INT", 1))
	assert.Equal(t, 0.75, Float("GOSTRETCH_FLOAT", 1))
	assert.True(t, Bool("GOSTRETCH_BOOL", false))

	assert.Equal(t, 7, Int("GOSTRETCH_BAD", 7))
	assert.Equal(t, 1.5, Float("GOSTRETCH_BAD", 1.5))
	assert.False(t, Bool("GOSTRETCH_BAD", false))
	assert.Equal(t, 3, Int("GOSTRETCH_UNSET_FOR_TEST", 3))
}
