package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// TestConsumerBinary builds the consumer and checks its console output and exit code.
// Set SKIP_COMPLEX_TESTS=1 to skip this test
func TestConsumerBinary(t *testing.T) {
	if os.Getenv("SKIP_COMPLEX_TESTS") != "" {
		t.Skip("Skipping complex tests")
	}

	binary := filepath.Join(t.TempDir(), "mymath-consumer")
	buildCmd := exec.Command("go", "build", "-o", binary, ".")
	if buildOutput, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build consumer: %v\nOutput: %s", err, buildOutput)
	}

	cmd := exec.Command(binary)
	cmd.Env = append(os.Environ(), "MYMATH_DEBUG=0")
	output, err := cmd.Output()
	if err != nil {
		t.Fatalf("Consumer exited with error: %v", err)
	}

	want := "10 + 20 = 30\n5 * 6 = 30\n✅ Math library works correctly!\n"
	if string(output) != want {
		t.Errorf("Unexpected output:\n%s\nwant:\n%s", output, want)
	}

	if code := cmd.ProcessState.ExitCode(); code != 0 {
		t.Errorf("Exit code = %d; want 0", code)
	}
}
