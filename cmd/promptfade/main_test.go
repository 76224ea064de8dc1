package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func noConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "absent.yaml")
}

func TestRun_When_BadFlag(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := run([]string{"-definitely-not-a-flag"}, &out, &errBuf)
	assert.Equal(t, 2, code)
}

func TestRun_When_UserDiffersFromLogname(t *testing.T) {
	t.Setenv("USER", "cosmonaut")
	t.Setenv("USERNAME", "cosmonaut")
	t.Setenv("LOGNAME", "astronaut")
	clearSSHVars(t)

	var out, errBuf bytes.Buffer
	code := run([]string{"-config", noConfig(t), "-color", "never"}, &out, &errBuf)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "cosmonaut")
}

func TestRun_When_SSHConnection(t *testing.T) {
	t.Setenv("USER", "astronaut")
	t.Setenv("USERNAME", "astronaut")
	t.Setenv("LOGNAME", "astronaut")
	clearSSHVars(t)
	t.Setenv("SSH_CONNECTION", "192.168.223.17 36673 192.168.223.229 22")

	var out, errBuf bytes.Buffer
	code := run([]string{"-config", noConfig(t), "-color", "never"}, &out, &errBuf)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "astronaut")
}

func TestRun_When_BrokenConfigFallsBack(t *testing.T) {
	t.Setenv("USER", "cosmonaut")
	t.Setenv("USERNAME", "cosmonaut")
	t.Setenv("LOGNAME", "astronaut")
	clearSSHVars(t)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("gradient: [oops"), 0o644))

	var out, errBuf bytes.Buffer
	code := run([]string{"-config", path, "-color", "never"}, &out, &errBuf)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "cosmonaut")
	assert.Contains(t, errBuf.String(), "default configuration")
}

func TestColorEnabled_Modes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.True(t, colorEnabled("always", &buf))
	assert.False(t, colorEnabled("never", &buf))
	// A plain buffer is not a terminal.
	assert.False(t, colorEnabled("auto", &buf))
}

// clearSSHVars unsets the SSH environment variables so display decisions in
// tests only see what the test configured. t.Setenv has already snapshotted
// the originals for restore.
func clearSSHVars(t *testing.T) {
	t.Helper()
	for _, v := range []string{"SSH_CONNECTION", "SSH_CLIENT", "SSH_TTY"} {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}
