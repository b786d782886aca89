// Package corpus assembles the ordered document list the pipeline ranks, from
// command-line arguments, a directory of files or the configuration.
package corpus

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/deanrtaylor1/docrank/config"
	"github.com/deanrtaylor1/docrank/lexer"
	"github.com/deanrtaylor1/docrank/logger"
)

type Document struct {
	Name string
	Text string
}

// Demo is the corpus used when no other source supplies documents
var Demo = []Document{
	{Name: "doc1", Text: "I'd... like, an! apple."},
	{Name: "doc2", Text: "An apple a day keeps the doctor away."},
	{Name: "doc3", Text: "Never compare an apple to an orange."},
	{Name: "doc4", Text: "I prefer scikit-learn to orange."},
}

// Load picks the first non-empty source: args, then the configured directory,
// then the configured documents, then Demo.
func Load(cfg config.Corpus, args []string) ([]Document, error) {
	switch {
	case len(args) > 0:
		return FromStrings(args), nil
	case cfg.Dir != "":
		return FromDirectory(cfg.Dir)
	case len(cfg.Documents) > 0:
		return FromStrings(cfg.Documents), nil
	}
	logger.HandleDebug("no documents supplied, using demo corpus")
	docs := make([]Document, len(Demo))
	copy(docs, Demo)
	return docs, nil
}

func FromStrings(texts []string) []Document {
	docs := make([]Document, 0, len(texts))
	for i, text := range texts {
		docs = append(docs, Document{Name: fmt.Sprintf("doc%d", i+1), Text: text})
	}
	return docs
}

// FromDirectory reads every supported file directly under dirPath in file name order.
// Unsupported extensions and subdirectories are skipped.
func FromDirectory(dirPath string) ([]Document, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("FromDirectory: failed reading the directory %s: %w", dirPath, err)
	}

	var docs []Document
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !IsSupported(entry.Name()) {
			continue
		}
		filePath := filepath.Join(dirPath, entry.Name())
		text, err := FromFilePath(filePath)
		if err != nil {
			return nil, err
		}
		logger.HandleDebug("loaded document", "path", filePath, "bytes", len(text))
		docs = append(docs, Document{Name: entry.Name(), Text: text})
	}
	return docs, nil
}

func IsSupported(fileName string) bool {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".txt", ".html", ".htm", ".pdf":
		return true
	}
	return false
}

// FromFilePath returns the text content of a document file based on its extension
func FromFilePath(filePath string) (string, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".html", ".htm":
		content, err := readText(filePath)
		if err != nil {
			return "", err
		}
		return lexer.ParseHtmlTextContent(content), nil
	case ".pdf":
		return readPDF(filePath)
	default:
		return readText(filePath)
	}
}

func readText(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("readText: failed reading the file %s: %w", filePath, err)
	}
	return string(content), nil
}

func readPDF(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("readPDF: failed opening the file %s: %w", filePath, err)
	}
	defer f.Close()

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("readPDF: failed extracting text from %s: %w", filePath, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("readPDF: failed reading text from %s: %w", filePath, err)
	}
	return buf.String(), nil
}

// Texts returns the raw text of each document, in order
func Texts(docs []Document) []string {
	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Text
	}
	return texts
}
