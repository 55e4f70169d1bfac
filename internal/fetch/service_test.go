package fetch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600); err != nil {
		t.Fatalf("failed to create %s: %v", name, err)
	}
}

func TestResolveOutput_SingleMatch(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "abc123.webm")

	path, err := resolveOutput(dir, "abc123", VideoExt)
	if err != nil {
		t.Fatalf("resolveOutput() returned error: %v", err)
	}
	if filepath.Base(path) != "abc123.webm" {
		t.Errorf("resolveOutput() = %s, expected the lone match", path)
	}
}

func TestResolveOutput_PrefersExpectedContainer(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "abc123.webm")
	touch(t, dir, "abc123.mp4")
	touch(t, dir, "abc123.mkv")

	path, err := resolveOutput(dir, "abc123", VideoExt)
	if err != nil {
		t.Fatalf("resolveOutput() returned error: %v", err)
	}
	if filepath.Base(path) != "abc123.mp4" {
		t.Errorf("resolveOutput() = %s, expected preferred container abc123.mp4", path)
	}
}

func TestResolveOutput_DeterministicWithoutPreferred(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "abc123.webm")
	touch(t, dir, "abc123.m4a")

	path, err := resolveOutput(dir, "abc123", AudioExt)
	if err != nil {
		t.Fatalf("resolveOutput() returned error: %v", err)
	}
	// Neither match is .mp3, so the first in sorted order wins.
	if filepath.Base(path) != "abc123.m4a" {
		t.Errorf("resolveOutput() = %s, expected sorted-first abc123.m4a", path)
	}
}

func TestResolveOutput_NoMatches(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "unrelated.mp4")

	_, err := resolveOutput(dir, "abc123", VideoExt)
	if !errors.Is(err, ErrNoOutput) {
		t.Errorf("resolveOutput() error = %v, expected ErrNoOutput", err)
	}
}

func TestResolveOutput_IgnoresOtherBaseNames(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "abc123.mp4")
	touch(t, dir, "def456.mp4")

	path, err := resolveOutput(dir, "def456", VideoExt)
	if err != nil {
		t.Fatalf("resolveOutput() returned error: %v", err)
	}
	if filepath.Base(path) != "def456.mp4" {
		t.Errorf("resolveOutput() = %s, expected def456.mp4", path)
	}
}

func TestSanitizeBaseName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"abc-123_DEF.x", "abc-123_DEF.x"},
		{"has space", "has_space"},
		{"slash/and\\back", "slash_and_back"},
		{"emoji🎬name", "emoji_name"},
		{"семпл", "_____"},
		{"a8f5f167-f44f-4964-bbca-169915dd7b41", "a8f5f167-f44f-4964-bbca-169915dd7b41"},
	}

	for _, test := range tests {
		result := sanitizeBaseName(test.input)
		if result != test.expected {
			t.Errorf("sanitizeBaseName(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}
