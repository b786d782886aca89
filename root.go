package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deanrtaylor1/docrank/cli"
	"github.com/deanrtaylor1/docrank/config"
	"github.com/deanrtaylor1/docrank/corpus"
	"github.com/deanrtaylor1/docrank/lexer"
	"github.com/deanrtaylor1/docrank/logger"
	"github.com/deanrtaylor1/docrank/pipeline"
	"github.com/deanrtaylor1/docrank/server"
	"github.com/deanrtaylor1/docrank/util"
)

type commandContext struct {
	configPath string
	dir        string
	reference  int
	logLevel   string
	addr       string
	corpora    string

	cfg *config.Config
}

// load reads the config file and applies any flags set on cmd over it
func (c *commandContext) load(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("dir") {
		cfg.Corpus.Dir = c.dir
		cfg.Corpus.Documents = nil
	}
	if flags.Changed("reference") {
		cfg.Corpus.Reference = c.reference
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = c.logLevel
	}
	if flags.Changed("addr") {
		cfg.Server.Addr = c.addr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logger.Init(cfg.Log.Level, cmd.ErrOrStderr()); err != nil {
		return err
	}
	c.cfg = cfg
	return nil
}

func (c *commandContext) analyze(args []string) ([]corpus.Document, *pipeline.Report, error) {
	docs, err := corpus.Load(c.cfg.Corpus, args)
	if err != nil {
		return nil, nil, err
	}
	report, err := pipeline.Analyze(corpus.Texts(docs), c.cfg.Corpus.Reference)
	if err != nil {
		return nil, nil, err
	}
	logger.HandleDebug("ranked corpus", "documents", len(docs), "most_similar", report.MostSimilar)
	return docs, report, nil
}

func colorEnabled(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && util.IsTerminal(f)
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "docrank",
		Short:         "Rank documents by TF-IDF similarity to a reference document",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "sample-config" {
				return nil
			}
			return ctx.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.configPath, "config", "c", "", "Configuration file path (TOML)")
	flags.StringVarP(&ctx.dir, "dir", "d", "", "Directory of .txt, .html and .pdf documents")
	flags.IntVarP(&ctx.reference, "reference", "r", 0, "Position (0-based) of the reference document")
	flags.StringVar(&ctx.logLevel, "log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(newRankCommand(ctx))
	rootCmd.AddCommand(newTableCommand(ctx))
	rootCmd.AddCommand(newVocabCommand(ctx))
	rootCmd.AddCommand(newServeCommand(ctx))
	rootCmd.AddCommand(newCliCommand(ctx))
	rootCmd.AddCommand(newSampleConfigCommand())

	return rootCmd
}

func newRankCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rank [documents...]",
		Short: "Print the 1-based position of the document most similar to the reference",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, report, err := ctx.analyze(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.MostSimilar)
			return nil
		},
	}
}

func newTableCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "table [documents...]",
		Short: "Print the TF, IDF and TF-IDF tables and the ranking",
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, report, err := ctx.analyze(args)
			if err != nil {
				return err
			}
			cli.RenderReport(cmd.OutOrStdout(), report, docs, colorEnabled(cmd))
			return nil
		},
	}
}

func newVocabCommand(ctx *commandContext) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "vocab [documents...]",
		Short: "Print the reference vocabulary",
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := corpus.Load(ctx.cfg.Corpus, args)
			if err != nil {
				return err
			}
			reference := ctx.cfg.Corpus.Reference
			if reference >= len(docs) {
				return fmt.Errorf("reference document %d out of range [0,%d)", reference, len(docs))
			}

			vocab := pipeline.BuildVocabulary(docs[reference].Text)
			if plain {
				for _, stat := range lexer.MapToSortedSlice(vocab.Counts()) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", stat.Token, stat.Freq)
				}
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.VocabularyTable(vocab))
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Print tab-separated term and count lines")
	return cmd
}

func newServeCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the ranking HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.Serve(cmd.Context(), ctx.cfg.Server.Addr)
		},
	}
	cmd.Flags().StringVar(&ctx.addr, "addr", "", "Address to listen on (overrides server.addr)")
	return cmd
}

func newCliCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cli",
		Short: "Interactively pick a corpus and reference document",
		RunE: func(cmd *cobra.Command, args []string) error {
			session := &cli.Session{
				Prompter:   cli.SurveyPrompter{},
				Out:        cmd.OutOrStdout(),
				CorporaDir: ctx.corpora,
				Color:      colorEnabled(cmd),
			}
			return session.Run()
		},
	}
	cmd.Flags().StringVar(&ctx.corpora, "corpora", "./corpora", "Directory holding one subdirectory per corpus")
	return cmd
}

func newSampleConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sample-config [path]",
		Short: "Print the sample configuration, or write it to path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return config.CreateSample(args[0])
			}
			fmt.Fprint(cmd.OutOrStdout(), config.SampleConfig())
			return nil
		},
	}
}
