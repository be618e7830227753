package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, input string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(input), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestVersion(t *testing.T) {
	code, out, _ := runCmd(t, "", "-version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "rpncalc dev\n", out)
}

func TestOneShot(t *testing.T) {
	code, out, _ := runCmd(t, "", "-e", "3 4 + 2 *")
	assert.Equal(t, 0, code)
	assert.Equal(t, "\nCurrent Session: default\nStack:\n14\n", out)
}

func TestOneShotJSON(t *testing.T) {
	code, out, _ := runCmd(t, "", "-output", "json", "-e", "1e7 2")
	assert.Equal(t, 0, code)
	assert.Equal(t, `{"view":"stack","session":"default","stack":["1e7","2"]}`+"\n", out)
}

func TestInteractive(t *testing.T) {
	code, out, _ := runCmd(t, "1 2 swap\nquit\n")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, `Type "exit" or "quit" to quit`)
	assert.Contains(t, out, "Stack:\n2\n1\n")
}

func TestBadFlags(t *testing.T) {
	code, _, _ := runCmd(t, "", "-nope")
	assert.Equal(t, 2, code)

	code, _, errOut := runCmd(t, "", "-output", "xml", "-e", "1")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "output format")

	code, _, errOut = runCmd(t, "", "-log-level", "loud", "-e", "1")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "log level")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rpncalc.toml")
	require.NoError(t, os.WriteFile(path, []byte("[shell]\noutput = \"json\"\n"), 0o644))

	code, out, _ := runCmd(t, "", "-config", path, "-e", "5")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, `"stack":["5"]`)

	// Flags override the file
	code, out, _ = runCmd(t, "", "-config", path, "-output", "text", "-e", "5")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Stack:\n5\n")
}

func TestMissingConfigFile(t *testing.T) {
	code, _, errOut := runCmd(t, "", "-config", "/does/not/exist.toml")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Failed to load config")
}

func TestMetricsAddr(t *testing.T) {
	code, out, _ := runCmd(t, "", "-metrics-addr", "127.0.0.1:0", "-e", "1")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Stack:\n1\n")
}
