package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/deckmark/deckmark/config"
	"github.com/deckmark/deckmark/logger"
	"github.com/deckmark/deckmark/markup"
)

var (
	verbose    bool
	configPath string

	cfg     config.Config
	rootCtx context.Context

	rootCmd = &cobra.Command{
		Use:   "deckmark",
		Short: "Apply inline-markup styling to rich-text targets",
		Long: `deckmark converts marked-up text (an HTML-like or Markdown-like dialect)
into plain text plus formatting runs and drives them onto a rich-text
target: a DrawingML-flavoured XML document, an acme editor window, or a
terminal preview.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var (
				l   *zap.Logger
				err error
			)
			if verbose {
				l, err = zap.NewDevelopment()
			} else {
				l, err = zap.NewProduction()
			}
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			zap.ReplaceGlobals(l)
			rootCtx = logger.NewContext(context.Background(), l)

			path := configPath
			if path == "" {
				path = config.Path()
			}
			cfg, err = config.Load(path)
			if err != nil {
				return err
			}
			l.Debug("config loaded", zap.String("path", path), zap.String("dialect", cfg.Dialect))
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: XDG config home)")

	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(previewCmd)
}

// dialectFromFlag resolves the --dialect flag against the configured
// default.
func dialectFromFlag(name string) (markup.Dialect, error) {
	if name == "" {
		name = cfg.Dialect
	}
	switch name {
	case "html":
		return markup.HTML, nil
	case "markdown", "md":
		return markup.Markdown, nil
	}
	return 0, fmt.Errorf("unknown dialect %q (want html or markdown)", name)
}

// readInput returns the markup text: the named file, or stdin when no
// argument is given.
func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), nil
}
