package config_test

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/Xavientois/shuttle/internal/platform/config"
)

// TestExitfExitsWithCode1 verifies that Exitf writes to stderr and exits
// with code 1. It uses the subprocess test pattern because os.Exit cannot be
// intercepted in-process.
func TestExitfExitsWithCode1(t *testing.T) {
	if os.Getenv("TEST_EXITF_SUBPROCESS") == "1" {
		config.Exitf("fatal: %s", "something broke")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExitfExitsWithCode1")
	cmd.Env = append(os.Environ(), "TEST_EXITF_SUBPROCESS=1")
	output, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected exit error, got %v", err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("exit code = %d, want 1", exitErr.ExitCode())
	}
	if !strings.Contains(string(output), "fatal: something broke") {
		t.Fatalf("expected message in output, got %q", string(output))
	}
}
