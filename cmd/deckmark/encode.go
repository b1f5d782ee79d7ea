package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deckmark/deckmark/apply"
	"github.com/deckmark/deckmark/markup"
	"github.com/deckmark/deckmark/sink/memsink"
)

var (
	encodeDialect string

	encodeCmd = &cobra.Command{
		Use:   "encode [file]",
		Short: "Round-trip markup through the codec and print the canonical form",
		Long: `encode parses the input, applies it to an in-memory target, and reads it
back through the reverse codec.  The output is the canonical HTML-dialect
form of the input: a convenient normaliser, and a quick way to see what a
markup string actually styles.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dialect, err := dialectFromFlag(encodeDialect)
			if err != nil {
				return err
			}
			text, err := readInput(args)
			if err != nil {
				return err
			}

			processed, _ := markup.Transform(dialect, text)
			plain, runs := markup.NewParser(dialect).Parse(processed)

			sink := memsink.New()
			var ap apply.Applier
			ap.Apply(rootCtx, sink, plain, runs)

			fmt.Println(markup.EncodeTarget(sink))
			return nil
		},
	}
)

func init() {
	encodeCmd.Flags().StringVarP(&encodeDialect, "dialect", "d", "", "markup dialect: html or markdown (default from config)")
}
