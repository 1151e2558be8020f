package etymology

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/etymology/mock_etymology.go -package=mock_etymology

// Fetcher retrieves the raw search page for a query.
type Fetcher interface {
	Fetch(ctx context.Context, query string) ([]byte, error)
}

// WordSource supplies replacement queries in random fallback mode.
type WordSource interface {
	RandomWord() (string, error)
}

// Styler renders inline emphasis for the active display.
type Styler interface {
	Italic(s string) string
}
