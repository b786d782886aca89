package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/deanrtaylor1/docrank/corpus"
	"github.com/deanrtaylor1/docrank/lexer"
	"github.com/deanrtaylor1/docrank/pipeline"
	"github.com/deanrtaylor1/docrank/rank"
	"github.com/deanrtaylor1/docrank/tfidf"
	"github.com/deanrtaylor1/docrank/util"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

var caser = cases.Title(language.English, cases.NoLower)

func title(s string) string {
	return caser.String(s)
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	style := table.StyleRounded
	style.Format.Header = text.FormatDefault
	tw.SetStyle(style)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// VocabularyTable lists the reference terms by descending count
func VocabularyTable(vocab tfidf.Vocabulary) string {
	var rows [][]string
	for _, stat := range lexer.MapToSortedSlice(vocab.Counts()) {
		rows = append(rows, []string{stat.Token, strconv.Itoa(stat.Freq)})
	}
	return renderTable([]string{title("term"), title("count")}, rows, []columnAlignment{alignLeft, alignRight})
}

// scoresTable renders one row per document and one column per reference term
func scoresTable(name string, vocab tfidf.Vocabulary, docs []corpus.Document, scores []tfidf.TermScores) string {
	terms := vocab.Terms()
	headers := append([]string{title(name)}, terms...)
	aligns := []columnAlignment{alignLeft}
	for range terms {
		aligns = append(aligns, alignRight)
	}

	var rows [][]string
	for i, doc := range scores {
		row := []string{documentLabel(docs, i)}
		for _, term := range terms {
			row = append(row, formatScore(doc[term]))
		}
		rows = append(rows, row)
	}
	return renderTable(headers, rows, aligns)
}

func idfTable(vocab tfidf.Vocabulary, idf tfidf.IDFTable) string {
	var rows [][]string
	for _, term := range vocab.Terms() {
		rows = append(rows, []string{term, formatScore(idf[term])})
	}
	return renderTable([]string{title("term"), title("inverse document frequency")}, rows, []columnAlignment{alignLeft, alignRight})
}

// resultsTable lists the ranking best score first
func resultsTable(report *pipeline.Report, docs []corpus.Document) string {
	var rows [][]string
	for _, r := range rank.SortByScore(report.Results) {
		mark := ""
		switch {
		case r.Reference:
			mark = "reference"
		case r.Position == report.MostSimilar:
			mark = "most similar"
		}
		rows = append(rows, []string{strconv.Itoa(r.Position), documentLabel(docs, r.Position-1), formatScore(r.Score), mark})
	}
	return renderTable(
		[]string{"#", title("document"), title("score"), ""},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft},
	)
}

func documentLabel(docs []corpus.Document, i int) string {
	if i < len(docs) {
		return docs[i].Name
	}
	return fmt.Sprintf("doc%d", i+1)
}

// RenderReport writes every stage of the pipeline followed by the ranking
func RenderReport(w io.Writer, report *pipeline.Report, docs []corpus.Document, color bool) {
	section := func(name string) {
		fmt.Fprintln(w, util.Colorize(title(name), util.TerminalCyan, color))
	}

	section("reference vocabulary")
	fmt.Fprintln(w, VocabularyTable(report.Vocabulary))
	section("term frequency")
	fmt.Fprintln(w, scoresTable("document", report.Vocabulary, docs, report.TF))
	section("inverse document frequency")
	fmt.Fprintln(w, idfTable(report.Vocabulary, report.IDF))
	section("tf-idf")
	fmt.Fprintln(w, scoresTable("document", report.Vocabulary, docs, report.TFIDF))
	section("ranking")
	fmt.Fprintln(w, resultsTable(report, docs))
	RenderMostSimilar(w, report, docs, color)
}

func RenderMostSimilar(w io.Writer, report *pipeline.Report, docs []corpus.Document, color bool) {
	msg := fmt.Sprintf("Most similar to %s: %d (%s)",
		documentLabel(docs, report.Reference), report.MostSimilar, documentLabel(docs, report.MostSimilar-1))
	fmt.Fprintln(w, util.Colorize(msg, util.TerminalGreen, color))
}
