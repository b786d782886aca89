package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRankDemoCorpus(t *testing.T) {
	out, err := execute(t, "rank")
	if err != nil {
		t.Fatalf("rank returned error: %v", err)
	}
	if strings.TrimSpace(out) != "3" {
		t.Fatalf("rank output == %q, want 3", out)
	}
}

func TestRankArgs(t *testing.T) {
	out, err := execute(t, "rank", "apple pie", "pie crust", "apple")
	if err != nil {
		t.Fatalf("rank returned error: %v", err)
	}
	if strings.TrimSpace(out) != "3" {
		t.Fatalf("rank output == %q, want 3", out)
	}
}

func TestRankErrors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want string
	}{
		{name: "single document", args: []string{"rank", "apple"}, want: "at least 2 documents"},
		{name: "empty document", args: []string{"rank", "apple", "..."}, want: "document 1 has no words"},
		{name: "reference out of range", args: []string{"rank", "--reference", "9"}, want: "out of range"},
		{name: "negative reference", args: []string{"rank", "--reference", "-1"}, want: "corpus.reference"},
		{name: "bad log level", args: []string{"rank", "--log-level", "loud"}, want: "log.level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("unexpected error %q, want it to mention %q", err, tc.want)
			}
		})
	}
}

func TestRankConfigAndDir(t *testing.T) {
	base := t.TempDir()
	docs := filepath.Join(base, "docs")
	if err := os.Mkdir(docs, 0o755); err != nil {
		t.Fatal(err)
	}
	for name, text := range map[string]string{
		"1.txt": "pie crust",
		"2.txt": "apple pie",
		"3.txt": "crust",
	} {
		if err := os.WriteFile(filepath.Join(docs, name), []byte(text), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	configPath := filepath.Join(base, "docrank.toml")
	configBody := "[corpus]\nreference = 1\ndocuments = [\"apple pie\", \"pie\", \"apple\"]\n"
	if err := os.WriteFile(configPath, []byte(configBody), 0o644); err != nil {
		t.Fatal(err)
	}

	// reference "pie": idf(pie) = ln(3/2), "apple" scores 0 and the reference is skipped
	out, err := execute(t, "rank", "--config", configPath)
	if err != nil {
		t.Fatalf("rank returned error: %v", err)
	}
	if strings.TrimSpace(out) != "1" {
		t.Fatalf("rank --config output == %q, want 1", out)
	}

	// --dir replaces the configured documents; reference stays 1 ("apple pie")
	out, err = execute(t, "rank", "--config", configPath, "--dir", docs)
	if err != nil {
		t.Fatalf("rank returned error: %v", err)
	}
	if strings.TrimSpace(out) != "1" {
		t.Fatalf("rank --dir output == %q, want 1", out)
	}
}

func TestTableCommand(t *testing.T) {
	out, err := execute(t, "table")
	if err != nil {
		t.Fatalf("table returned error: %v", err)
	}
	for _, want := range []string{"Term Frequency", "Inverse Document Frequency", "Most similar to doc1: 3 (doc3)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestVocabCommand(t *testing.T) {
	out, err := execute(t, "vocab", "--plain", "An apple, an orange.", "pear")
	if err != nil {
		t.Fatalf("vocab returned error: %v", err)
	}
	want := "an\t2\napple\t1\norange\t1\n"
	if out != want {
		t.Fatalf("vocab output == %q, want %q", out, want)
	}
}

func TestSampleConfigCommand(t *testing.T) {
	out, err := execute(t, "sample-config")
	if err != nil {
		t.Fatalf("sample-config returned error: %v", err)
	}
	if !strings.Contains(out, "[corpus]") {
		t.Fatalf("sample-config output missing [corpus]:\n%s", out)
	}

	path := filepath.Join(t.TempDir(), "docrank.toml")
	if _, err := execute(t, "sample-config", path); err != nil {
		t.Fatalf("sample-config %s returned error: %v", path, err)
	}
	if _, err := execute(t, "rank", "--config", path); err != nil {
		t.Fatalf("rank with written sample returned error: %v", err)
	}
}
