package lexer

import (
	"errors"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// Characters replaced by a space during normalization. Apostrophes and hyphens are
// word-internal and kept, so "i'd" and "scikit-learn" stay single tokens.
const punctuation = ".,;:!?\"\n"

const separator = ' '

// ErrEOF is returned by Next once the content has no tokens left
var ErrEOF = errors.New("no more tokens")

// TermFreq maps a word to the number of times it occurs in a document
type TermFreq map[string]int

// Total returns the number of word occurrences, not unique words
func (tf TermFreq) Total() int {
	n := 0
	for _, freq := range tf {
		n += freq
	}
	return n
}

// Lexer splits normalized content into tokens. It works on bytes so text that is not
// valid UTF-8 keeps its exact byte values.
type Lexer struct {
	content []byte
}

// Stat is a token and its frequency, as listed by MapToSortedSlice
type Stat struct {
	Token string
	Freq  int
}

// Normalize lower-cases ASCII letters and replaces every punctuation byte with a space.
// All other bytes are copied unchanged.
func Normalize(text string) string {
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= 'A' && c <= 'Z':
			c += 'a' - 'A'
		case strings.IndexByte(punctuation, c) >= 0:
			c = separator
		}
		out[i] = c
	}
	return string(out)
}

// NewLexer creates a new Lexer over the normalized form of content
func NewLexer(content string) *Lexer {
	return &Lexer{[]byte(Normalize(content))}
}

// TrimLeft trims separators from the left of the content
func (l *Lexer) TrimLeft() {
	for len(l.content) > 0 && l.content[0] == separator {
		l.content = l.content[1:]
	}
}

// Chop chops the content by n and returns the chopped content
func (l *Lexer) Chop(n int) (token []byte) {
	token = l.content[:n]
	l.content = l.content[n:]
	return token
}

// ChopWhile chops the content while the predicate f returns true
func (l *Lexer) ChopWhile(f func(byte) bool) (token []byte) {
	n := 0
	for n < len(l.content) && f(l.content[n]) {
		n += 1
	}
	return l.Chop(n)
}

// NextToken returns the next token, nil once the content is exhausted
func (l *Lexer) NextToken() []byte {
	l.TrimLeft()

	if len(l.content) == 0 {
		return nil
	}
	return l.ChopWhile(func(b byte) bool {
		return b != separator
	})
}

// Next returns the next token as a string
func (l *Lexer) Next() (string, error) {
	token := l.NextToken()
	if token == nil {
		return "EOF", ErrEOF
	}
	return string(token), nil
}

// Tokenize normalizes text and counts the occurrences of each word
func Tokenize(text string) TermFreq {
	tf := make(TermFreq)

	l := NewLexer(text)
	for {
		token, err := l.Next()
		if err != nil {
			break
		}
		tf[token] += 1
	}
	return tf
}

// ParseHtmlTextContent parses a html string and returns its text nodes joined by spaces
func ParseHtmlTextContent(htmlContent string) string {
	var content strings.Builder

	d := html.NewTokenizer(strings.NewReader(htmlContent))
	for {
		tt := d.Next()
		switch tt {
		case html.ErrorToken:
			return strings.TrimSpace(content.String())
		case html.TextToken:
			text := strings.TrimSpace(string(d.Text()))
			if text == "" {
				continue
			}
			if content.Len() > 0 {
				content.WriteByte(separator)
			}
			content.WriteString(text)
		}
	}
}

// Utility function to sort a map by value, ties broken alphabetically
func MapToSortedSlice(m map[string]int) (stats []Stat) {
	for k, v := range m {
		stats = append(stats, Stat{Token: k, Freq: v})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Freq != stats[j].Freq {
			return stats[i].Freq > stats[j].Freq
		}
		return stats[i].Token < stats[j].Token
	})

	return stats
}
