// Package wordlist draws random words from a newline-delimited dictionary file.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
)

var ErrEmptyWordList = errors.New("word list is empty")

type DictionaryNotFoundError struct {
	Path string
}

func (e *DictionaryNotFoundError) Error() string {
	return fmt.Sprintf("Could not find dictionary file at %s.", e.Path)
}

// FileWordList reads the file on every draw, so edits are picked up without restarting.
type FileWordList struct {
	path string
	rand *rand.Rand
}

func NewFileWordList(path string, r *rand.Rand) *FileWordList {
	return &FileWordList{
		path: path,
		rand: r,
	}
}

func (l *FileWordList) RandomWord() (string, error) {
	words, err := l.readWords()
	if err != nil {
		return "", err
	}
	if len(words) == 0 {
		return "", fmt.Errorf("%s: %w", l.path, ErrEmptyWordList)
	}

	word := words[l.rand.IntN(len(words))]
	slog.Default().Debug("Picked a random word", "word", word, "candidates", len(words))
	return word, nil
}

func (l *FileWordList) readWords() ([]string, error) {
	file, err := os.Open(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &DictionaryNotFoundError{Path: l.path}
	}
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner.Scan > %w", err)
	}
	return words, nil
}
