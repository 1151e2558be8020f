package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/at-ishikawa/etym/internal/config"
	"github.com/at-ishikawa/etym/internal/display"
	"github.com/at-ishikawa/etym/internal/etymology"
	"github.com/at-ishikawa/etym/internal/wordlist"
	"github.com/spf13/cobra"
)

type lookupOptions struct {
	verbose     bool
	random      bool
	maxAttempts uint
	wordsFile   string
	output      display.Format
	color       display.ColorMode
}

func newRootCommand() *cobra.Command {
	var debugMode bool
	opts := lookupOptions{
		output: display.FormatText,
		color:  display.ColorModeAuto,
	}

	rootCommand := cobra.Command{
		Use:           "etym [query...]",
		Short:         "Look up the origin of a word on etymonline.com",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !opts.random {
				return errors.New("requires a query unless --random is set")
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			opts.color.Apply()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			cfg, err := loadConfig(func(cfg *config.Config) {
				if flags.Changed("max-attempts") {
					cfg.Lookup.MaxAttempts = opts.maxAttempts
				}
				if flags.Changed("words-file") {
					cfg.Dictionary.WordsFile = opts.wordsFile
				}
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			disp := display.NewWithWidth(cfg.Display.Width)
			if file, ok := out.(*os.File); ok {
				disp = display.New(file, cfg.Display.Width)
			}
			if opts.output != display.FormatText {
				disp = disp.Plain()
			}

			var progress io.Writer
			if opts.verbose {
				progress = out
			}
			words := wordlist.NewFileWordList(cfg.Dictionary.WordsFile, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
			client := etymology.NewClient(
				etymology.NewHTTPFetcher(cfg.Etymonline.BaseURL, cfg.Etymonline.Timeout),
				etymology.NewBeautifier(disp),
				words,
				progress,
				etymology.Options{
					MaxAttempts:    cfg.Lookup.MaxAttempts,
					RetryDelay:     cfg.Lookup.RetryDelay,
					RandomFallback: opts.random,
				},
			)
			return runLookup(cmd.Context(), strings.Join(args, " "), client, words, display.NewRenderer(out, disp, opts.output))
		},
	}

	persistentFlags := rootCommand.PersistentFlags()
	persistentFlags.StringVar(&configFile, "config", "", "config file path")
	persistentFlags.BoolVar(&debugMode, "debug", false, "Enable debug mode")
	persistentFlags.Var(&opts.color, "color", fmt.Sprintf("When to use colors. Possible values are %v", display.ColorModes()))

	flags := rootCommand.Flags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Print progress while querying")
	flags.BoolVarP(&opts.random, "random", "r", false, "Look up a random dictionary word when the query has no entries")
	flags.UintVar(&opts.maxAttempts, "max-attempts", config.DefaultMaxAttempts, "Maximum number of queries in random mode")
	flags.StringVar(&opts.wordsFile, "words-file", config.DefaultWordsFile, "Word list used in random mode")
	flags.VarP(&opts.output, "output", "o", fmt.Sprintf("Output format. Possible values are %v", display.Formats()))

	return &rootCommand
}

// runLookup draws a random word when query is empty, looks it up and renders the entries.
func runLookup(
	ctx context.Context,
	query string,
	client *etymology.Client,
	words etymology.WordSource,
	renderer *display.Renderer,
) error {
	if query == "" {
		word, err := words.RandomWord()
		if err != nil {
			return fmt.Errorf("words.RandomWord > %w", err)
		}
		query = word
	}

	entries, err := client.Lookup(ctx, query)
	if err != nil {
		return fmt.Errorf("client.Lookup > %w", err)
	}
	if err := renderer.Render(entries); err != nil {
		return fmt.Errorf("renderer.Render > %w", err)
	}
	return nil
}

// errorMessage turns the lookup failures into the one-line messages shown to users.
func errorMessage(err error) string {
	var noResults *etymology.NoResultsFoundError
	var connectivity *etymology.ConnectivityError
	var missingDictionary *wordlist.DictionaryNotFoundError

	switch {
	case errors.Is(err, etymology.ErrAttemptsExhausted):
		return unwrapMessage(err)
	case errors.As(err, &connectivity):
		return connectivity.Error()
	case errors.As(err, &noResults):
		return noResults.Error()
	case errors.As(err, &missingDictionary):
		return missingDictionary.Error()
	default:
		return fmt.Sprintf("failed to execute a command: %+v", err)
	}
}

// unwrapMessage drops the "callee >" prefixes added on the way up.
func unwrapMessage(err error) string {
	message := err.Error()
	if i := strings.LastIndex(message, " > "); i >= 0 {
		return message[i+len(" > "):]
	}
	return message
}
