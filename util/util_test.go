package util

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestColorize(t *testing.T) {
	if got := Colorize("ok", TerminalGreen, false); got != "ok" {
		t.Errorf("Colorize(disabled) == %q, want %q", got, "ok")
	}

	expected := TerminalGreen + "ok" + TerminalReset
	if got := Colorize("ok", TerminalGreen, true); got != expected {
		t.Errorf("Colorize(enabled) == %q, want %q", got, expected)
	}
}

func TestCheckDirIsValid(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(file, []byte("apple"), 0644); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name     string
		path     string
		expected bool
	}{
		{name: "Directory", path: dir, expected: true},
		{name: "File", path: file, expected: false},
		{name: "Missing", path: filepath.Join(dir, "missing"), expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CheckDirIsValid(tc.path)
			if err != nil {
				t.Fatalf("CheckDirIsValid() error == %v, want nil", err)
			}
			if got != tc.expected {
				t.Errorf("CheckDirIsValid(%q) == %v, want %v", tc.path, got, tc.expected)
			}
		})
	}
}

func TestListSubDirectories(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"fruit", "news", ".git"} {
		if err := os.Mkdir(filepath.Join(dir, name), 0755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ListSubDirectories(dir)
	if err != nil {
		t.Fatalf("ListSubDirectories() error == %v, want nil", err)
	}
	expected := []string{"fruit", "news"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("ListSubDirectories() == %v, want %v", got, expected)
	}
}
