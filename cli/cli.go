package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/deanrtaylor1/docrank/corpus"
	"github.com/deanrtaylor1/docrank/logger"
	"github.com/deanrtaylor1/docrank/pipeline"
	"github.com/deanrtaylor1/docrank/util"
)

//CLI Interface of docrank

const (
	bullet          = "○ "
	optionDemo      = "docrank: Demo Corpus"
	optionQuit      = "docrank: Quit"
	optionReference = "docrank: Choose Reference"
	optionCorpus    = "docrank: Select Corpus"
)

var errQuit = errors.New("quit")

// Prompter asks the user to pick one of options
type Prompter interface {
	Select(message string, options []string) (string, error)
}

type SurveyPrompter struct{}

func (SurveyPrompter) Select(message string, options []string) (string, error) {
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}

	var selected string
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return selected, nil
}

type Session struct {
	Prompter Prompter
	Out      io.Writer
	// CorporaDir holds one subdirectory of documents per corpus
	CorporaDir string
	Color      bool
}

// Clean up the CLI response to remove the bullet point
func formatCliResponse(response string) string {
	return strings.Replace(response, bullet, "", -1)
}

func withBullets(options []string) []string {
	bulleted := make([]string, 0, len(options))
	for _, o := range options {
		bulleted = append(bulleted, bullet+o)
	}
	return bulleted
}

func (s *Session) selectOption(message string, options []string) (string, error) {
	selected, err := s.Prompter.Select(message, withBullets(options))
	if err != nil {
		return "", err
	}
	return formatCliResponse(selected), nil
}

// Run keeps prompting for a corpus and reference document until the user quits
func (s *Session) Run() error {
	for {
		docs, err := s.selectCorpus()
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		err = s.rankLoop(docs)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) selectCorpus() ([]corpus.Document, error) {
	var options []string
	if ok, _ := util.CheckDirIsValid(s.CorporaDir); ok {
		dirs, err := util.ListSubDirectories(s.CorporaDir)
		if err != nil {
			return nil, fmt.Errorf("listing corpora: %w", err)
		}
		options = append(options, dirs...)
	}
	options = append(options, optionDemo, optionQuit)

	for {
		selected, err := s.selectOption("Select a corpus:", options)
		if err != nil {
			return nil, err
		}

		switch selected {
		case optionQuit:
			return nil, errQuit
		case optionDemo:
			docs := make([]corpus.Document, len(corpus.Demo))
			copy(docs, corpus.Demo)
			return docs, nil
		}

		docs, err := corpus.FromDirectory(filepath.Join(s.CorporaDir, selected))
		if err != nil {
			return nil, err
		}
		// ranking needs a reference and at least one other document
		if len(docs) < 2 {
			msg := fmt.Sprintf("corpus %s has %d supported documents, need at least 2", selected, len(docs))
			fmt.Fprintln(s.Out, util.Colorize(msg, util.TerminalRed, s.Color))
			continue
		}
		return docs, nil
	}
}

// rankLoop returns nil when the user asks for another corpus
func (s *Session) rankLoop(docs []corpus.Document) error {
	for {
		names := make([]string, 0, len(docs))
		for _, doc := range docs {
			names = append(names, doc.Name)
		}

		selected, err := s.selectOption("Select the reference document:", names)
		if err != nil {
			return err
		}
		reference := indexOf(names, selected)

		report, err := pipeline.Analyze(corpus.Texts(docs), reference)
		if err != nil {
			logger.HandleError(err)
			fmt.Fprintln(s.Out, util.Colorize(err.Error(), util.TerminalRed, s.Color))
		} else {
			RenderReport(s.Out, report, docs, s.Color)
		}

		next, err := s.selectOption("Next:", []string{optionReference, optionCorpus, optionQuit})
		if err != nil {
			return err
		}
		switch next {
		case optionQuit:
			return errQuit
		case optionCorpus:
			return nil
		}
	}
}

func indexOf(options []string, selected string) int {
	for i, o := range options {
		if o == selected {
			return i
		}
	}
	return -1
}
