package framework

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertSuccess(t *testing.T, result Result) {
	t.Helper()
	assert.Equal(t, 0, result.ExitCode, "Expected success, stderr: %s", result.Stderr)
}

func AssertExitCode(t *testing.T, result Result, expected int) {
	t.Helper()
	assert.Equal(t, expected, result.ExitCode, "Unexpected exit code, stderr: %s", result.Stderr)
}

func AssertOutputContains(t *testing.T, output, expected string) {
	t.Helper()
	assert.Contains(t, output, expected, "Expected output containing '%s', got: %s", expected, output)
}

func AssertOutputNotContains(t *testing.T, output, unexpected string) {
	t.Helper()
	assert.NotContains(t, output, unexpected, "Expected output not containing '%s', got: %s", unexpected, output)
}

func AssertMultipleStringsInOutput(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, exp := range expected {
		AssertOutputContains(t, output, exp)
	}
}

func AssertHelpfulError(t *testing.T, output string) {
	t.Helper()

	helpfulElements := []string{
		"Solutions:",
		"Solution:",
		"Cause:",
		"Tip:",
		"•",
		"Usage:",
	}

	for _, element := range helpfulElements {
		if strings.Contains(output, element) {
			return
		}
	}

	t.Errorf("Error message does not appear to be helpful. Got: %s", output)
}
