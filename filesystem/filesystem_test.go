package filesystem

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalFileSystem(t *testing.T) {
	tempDir := t.TempDir()
	fs := NewLocalFileSystem(tempDir)

	// Test WriteFile
	content := []byte("Hello, World!")
	if err := fs.WriteFile("test.txt", content); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	// Test IsFile
	if !fs.IsFile("test.txt") {
		t.Error("Should be a file")
	}

	// Test FileSize
	size, err := fs.FileSize("test.txt")
	if err != nil {
		t.Errorf("FileSize failed: %v", err)
	}
	if size != int64(len(content)) {
		t.Errorf("Expected size %d, got %d", len(content), size)
	}

	// Test OpenFile
	file, size, err := fs.OpenFile("test.txt")
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	defer file.Close()

	if size != int64(len(content)) {
		t.Errorf("Expected size %d, got %d", len(content), size)
	}
	readContent, err := io.ReadAll(file)
	if err != nil {
		t.Errorf("ReadAll failed: %v", err)
	}
	if string(readContent) != string(content) {
		t.Errorf("Expected %s, got %s", content, readContent)
	}
}

func TestWriteFileTruncates(t *testing.T) {
	tempDir := t.TempDir()
	fs := NewLocalFileSystem(tempDir)

	if err := fs.WriteFile("note.txt", []byte("a much longer first version")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := fs.WriteFile("note.txt", []byte("short")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(tempDir, "note.txt"))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != "short" {
		t.Errorf("Expected short, got %q", got)
	}
}

func TestOpenFileNotFound(t *testing.T) {
	tempDir := t.TempDir()
	fs := NewLocalFileSystem(tempDir)

	if err := os.Mkdir(filepath.Join(tempDir, "subdir"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tempDir, "foo.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	testCases := []string{
		"missing.txt",
		"subdir",
		"",
		"foo.txt/bar",
		strings.Repeat("a", 300),
	}
	for _, name := range testCases {
		_, _, err := fs.OpenFile(name)
		if !errors.Is(err, ErrFileNotFound) {
			t.Errorf("OpenFile(%q) = %v, want %v", name, err, ErrFileNotFound)
		}
		if fs.IsFile(name) {
			t.Errorf("IsFile(%q) = true, want false", name)
		}
	}

	if _, err := fs.FileSize("missing.txt"); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("FileSize = %v, want %v", err, ErrFileNotFound)
	}
	if _, err := fs.FileSize("foo.txt/bar"); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("FileSize = %v, want %v", err, ErrFileNotFound)
	}
}

func TestWriteFileMissingParent(t *testing.T) {
	fs := NewLocalFileSystem(t.TempDir())

	if err := fs.WriteFile("nested/dir/file.txt", []byte("x")); err == nil {
		t.Error("WriteFile should fail when the parent directory is missing")
	}
	if err := fs.WriteFile("", []byte("x")); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("WriteFile(\"\") = %v, want %v", err, ErrInvalidPath)
	}
}

func TestResolve(t *testing.T) {
	fs := NewLocalFileSystem("/srv/data")

	testCases := []struct {
		name     string
		expected string
	}{
		{"foo.txt", "/srv/data/foo.txt"},
		{"a/b.txt", "/srv/data/a/b.txt"},
		{"../escape", "/srv/escape"},
	}

	for _, tc := range testCases {
		if got := fs.Resolve(tc.name); got != tc.expected {
			t.Errorf("Resolve(%q) = %q, want %q", tc.name, got, tc.expected)
		}
	}
}
