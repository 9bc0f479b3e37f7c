// Package testutil holds helpers shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ContainsDetail checks if any detail string contains the given substring.
func ContainsDetail(details []string, substr string) bool {
	for _, d := range details {
		if strings.Contains(d, substr) {
			return true
		}
	}
	return false
}

// WriteTempFile writes content to name inside a fresh temp dir and returns the path.
func WriteTempFile(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
