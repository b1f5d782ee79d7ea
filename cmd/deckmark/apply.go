package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/deckmark/deckmark/apply"
	"github.com/deckmark/deckmark/logger"
	"github.com/deckmark/deckmark/markup"
	"github.com/deckmark/deckmark/sink/acmesink"
	"github.com/deckmark/deckmark/sink/xmlsink"
)

var (
	applyDialect string
	applyOut     string
	applyAcmeWin int

	applyCmd = &cobra.Command{
		Use:   "apply [file]",
		Short: "Parse markup and apply it to a target",
		Long: `apply runs the write path: block transform, inline parse, and run
application.  By default the result is written as an XML document to
stdout (or --out); with --acme the target is a live acme window instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dialect, err := dialectFromFlag(applyDialect)
			if err != nil {
				return err
			}
			text, err := readInput(args)
			if err != nil {
				return err
			}

			processed, blocks := markup.Transform(dialect, text)
			plain, runs := markup.NewParser(dialect).Parse(processed)
			logger.L(rootCtx).Debug("parsed",
				zap.Stringer("dialect", dialect),
				zap.Int("runs", len(runs)),
				zap.Int("blocks", len(blocks)))

			ap := &apply.Applier{
				BaseFontSize:   cfg.Header.BaseSize,
				HeaderSizeStep: cfg.Header.LevelStep,
			}

			if applyAcmeWin != 0 {
				sink, err := acmesink.Dial(applyAcmeWin)
				if err != nil {
					return err
				}
				defer sink.Close() //nolint:errcheck
				ap.Apply(rootCtx, sink, plain, runs)
				ap.ApplyBlocks(rootCtx, sink, plain, blocks)
				return sink.Flush()
			}

			sink := xmlsink.New()
			ap.Apply(rootCtx, sink, plain, runs)
			ap.ApplyBlocks(rootCtx, sink, plain, blocks)

			out := os.Stdout
			if applyOut != "" {
				f, err := os.Create(applyOut)
				if err != nil {
					return fmt.Errorf("create %s: %w", applyOut, err)
				}
				defer f.Close()
				out = f
			}
			_, err = sink.WriteTo(out)
			return err
		},
	}
)

func init() {
	applyCmd.Flags().StringVarP(&applyDialect, "dialect", "d", "", "markup dialect: html or markdown (default from config)")
	applyCmd.Flags().StringVarP(&applyOut, "out", "o", "", "write XML output to file instead of stdout")
	applyCmd.Flags().IntVar(&applyAcmeWin, "acme", 0, "apply to the acme window with this ID")
}
