package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/deckmark/deckmark/apply"
	"github.com/deckmark/deckmark/markup"
	"github.com/deckmark/deckmark/sink/termsink"
)

var (
	previewDialect string

	previewCmd = &cobra.Command{
		Use:   "preview [file]",
		Short: "Render markup on the terminal",
		Long: `preview parses the input and draws the styled result on the terminal
screen.  Press any key to exit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dialect, err := dialectFromFlag(previewDialect)
			if err != nil {
				return err
			}
			text, err := readInput(args)
			if err != nil {
				return err
			}

			processed, blocks := markup.Transform(dialect, text)
			plain, runs := markup.NewParser(dialect).Parse(processed)

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("open screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("init screen: %w", err)
			}
			defer screen.Fini()

			width, _ := screen.Size()
			sink := termsink.New(screen, 0, 0, width)

			ap := &apply.Applier{
				BaseFontSize:   cfg.Header.BaseSize,
				HeaderSizeStep: cfg.Header.LevelStep,
			}
			ap.Apply(rootCtx, sink, plain, runs)
			ap.ApplyBlocks(rootCtx, sink, plain, blocks)

			for {
				switch screen.PollEvent().(type) {
				case *tcell.EventKey:
					return nil
				case *tcell.EventResize:
					screen.Sync()
				}
			}
		},
	}
)

func init() {
	previewCmd.Flags().StringVarP(&previewDialect, "dialect", "d", "", "markup dialect: html or markdown (default from config)")
}
