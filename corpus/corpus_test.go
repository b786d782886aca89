package corpus

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/deanrtaylor1/docrank/config"
)

func writeFile(t *testing.T, dir string, name string, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestFromDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "An apple a day keeps the doctor away.")
	writeFile(t, dir, "a.txt", "I'd... like, an! apple.")
	writeFile(t, dir, "c.html", "<html><body><p>Never compare an apple</p><p>to an orange.</p></body></html>")
	writeFile(t, dir, "d.md", "# skipped")
	if err := os.Mkdir(filepath.Join(dir, "e.txt"), 0755); err != nil {
		t.Fatal(err)
	}

	docs, err := FromDirectory(dir)
	if err != nil {
		t.Fatalf("FromDirectory() error == %v, want nil", err)
	}

	expected := []Document{
		{Name: "a.txt", Text: "I'd... like, an! apple."},
		{Name: "b.txt", Text: "An apple a day keeps the doctor away."},
		{Name: "c.html", Text: "Never compare an apple to an orange."},
	}
	if !reflect.DeepEqual(docs, expected) {
		t.Errorf("FromDirectory() == %v, want %v", docs, expected)
	}
}

func TestFromDirectoryMissing(t *testing.T) {
	if _, err := FromDirectory(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("FromDirectory() error == nil, want non-nil")
	}
}

func TestFromFilePathBadPDF(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.pdf", "not a pdf")

	if _, err := FromFilePath(filepath.Join(dir, "broken.pdf")); err == nil {
		t.Error("FromFilePath(broken.pdf) error == nil, want non-nil")
	}
}

func TestIsSupported(t *testing.T) {
	testCases := map[string]bool{
		"a.txt":  true,
		"a.HTML": true,
		"a.htm":  true,
		"a.pdf":  true,
		"a.md":   false,
		"README": false,
	}
	for name, expected := range testCases {
		if got := IsSupported(name); got != expected {
			t.Errorf("IsSupported(%q) == %v, want %v", name, got, expected)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "from dir")

	testCases := []struct {
		name     string
		cfg      config.Corpus
		args     []string
		expected []string
	}{
		{
			name:     "Args win",
			cfg:      config.Corpus{Documents: []string{"from config"}},
			args:     []string{"one", "two"},
			expected: []string{"one", "two"},
		},
		{
			name:     "Directory",
			cfg:      config.Corpus{Dir: dir},
			expected: []string{"from dir"},
		},
		{
			name:     "Config documents",
			cfg:      config.Corpus{Documents: []string{"from config", "again"}},
			expected: []string{"from config", "again"},
		},
		{
			name:     "Demo",
			expected: Texts(Demo),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			docs, err := Load(tc.cfg, tc.args)
			if err != nil {
				t.Fatalf("Load() error == %v, want nil", err)
			}
			if got := Texts(docs); !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Load() == %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestFromStrings(t *testing.T) {
	docs := FromStrings([]string{"a", "b"})
	expected := []Document{{Name: "doc1", Text: "a"}, {Name: "doc2", Text: "b"}}
	if !reflect.DeepEqual(docs, expected) {
		t.Errorf("FromStrings() == %v, want %v", docs, expected)
	}
}
