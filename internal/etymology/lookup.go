package etymology

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/avast/retry-go"
)

const DefaultMaxAttempts uint = 5

type Options struct {
	// MaxAttempts bounds the number of queries sent, including the first one.
	MaxAttempts uint
	RetryDelay  time.Duration
	// RandomFallback retries a query without results using a random word.
	RandomFallback bool
}

// Client runs lookups against etymonline: fetch, extract and beautify,
// retried with random words when RandomFallback is enabled.
type Client struct {
	fetcher    Fetcher
	beautifier *Beautifier
	words      WordSource
	progress   io.Writer
	options    Options
}

// NewClient creates a Client. progress receives the "Querying... OK/FAIL"
// lines and may be nil; words may be nil unless RandomFallback is set.
func NewClient(fetcher Fetcher, beautifier *Beautifier, words WordSource, progress io.Writer, options Options) *Client {
	if options.MaxAttempts == 0 {
		options.MaxAttempts = DefaultMaxAttempts
	}
	if progress == nil {
		progress = io.Discard
	}
	return &Client{
		fetcher:    fetcher,
		beautifier: beautifier,
		words:      words,
		progress:   progress,
		options:    options,
	}
}

// Lookup returns the entries for query. Without random fallback a query with
// no entries fails with *NoResultsFoundError; a *ConnectivityError is never
// retried. When every attempt fails the error wraps ErrAttemptsExhausted.
func (client *Client) Lookup(ctx context.Context, query string) ([]Entry, error) {
	var entries []Entry
	var attempts uint
	current := query

	err := retry.Do(
		func() error {
			if attempts > 0 {
				word, err := client.words.RandomWord()
				if err != nil {
					return retry.Unrecoverable(fmt.Errorf("words.RandomWord > %w", err))
				}
				current = word
			}
			attempts++

			result, err := client.attempt(ctx, current)
			if err != nil {
				return err
			}
			entries = result
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.options.MaxAttempts),
		retry.Delay(client.options.RetryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(client.isRetryable),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Debug("Retrying lookup with a random word",
				"attempt", n+1,
				"query", current,
				"lastError", err)
		}),
	)
	if err != nil {
		var noResults *NoResultsFoundError
		if client.options.RandomFallback && attempts >= client.options.MaxAttempts && errors.As(err, &noResults) {
			return nil, fmt.Errorf("%w after %d attempts: %w", ErrAttemptsExhausted, attempts, err)
		}
		return nil, err
	}
	return entries, nil
}

func (client *Client) isRetryable(err error) bool {
	if !client.options.RandomFallback || client.words == nil || !retry.IsRecoverable(err) {
		return false
	}
	var noResults *NoResultsFoundError
	return errors.As(err, &noResults)
}

func (client *Client) attempt(ctx context.Context, query string) ([]Entry, error) {
	_, _ = fmt.Fprintf(client.progress, "Querying etymonline.com for '%s'... ", query)

	body, err := client.fetcher.Fetch(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetcher.Fetch > %w", err)
	}

	extraction, err := Extract(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("Extract > %w", err)
	}
	if !extraction.Found {
		_, _ = fmt.Fprintln(client.progress, "FAIL")
		slog.Default().Debug("No entries found", "query", query)
		return nil, &NoResultsFoundError{Query: query}
	}
	_, _ = fmt.Fprintln(client.progress, "OK")

	entries := make([]Entry, 0, len(extraction.Entries))
	for _, raw := range extraction.Entries {
		entries = append(entries, Entry{
			Headword:  raw.Headword,
			Etymology: client.beautifier.Beautify(raw.Fragment),
		})
	}
	return entries, nil
}
