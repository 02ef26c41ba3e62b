// Package splitter provides recursive character text splitting.
//
// Text is cut into overlapping fixed-size windows, preferring semantic
// boundaries (paragraph, then line, then sentence, then word) before
// falling back to a hard cut.
package splitter

import "strings"

// DefaultWindowSize is the default number of characters per window.
const DefaultWindowSize = 800

// DefaultOverlap is the default number of overlapping characters.
const DefaultOverlap = 150

// separators in preference order: paragraph, line, sentence, word.
var separators = []string{"\n\n", "\n", ". ", " "}

// Splitter cuts text into overlapping windows at semantic boundaries.
type Splitter struct {
	windowSize int
	overlap    int
}

// Option configures the splitter.
type Option func(*Splitter)

// WithWindowSize sets the window size in characters.
func WithWindowSize(size int) Option {
	return func(s *Splitter) {
		if size > 0 {
			s.windowSize = size
		}
	}
}

// WithOverlap sets the overlap between windows in characters.
func WithOverlap(overlap int) Option {
	return func(s *Splitter) {
		if overlap >= 0 {
			s.overlap = overlap
		}
	}
}

// New creates a splitter with the given options.
func New(opts ...Option) *Splitter {
	s := &Splitter{
		windowSize: DefaultWindowSize,
		overlap:    DefaultOverlap,
	}

	for _, opt := range opts {
		opt(s)
	}

	// Overlap must leave room to advance
	if s.overlap >= s.windowSize {
		s.overlap = s.windowSize / 4
	}

	return s
}

// WindowSize returns the configured window size.
func (s *Splitter) WindowSize() int {
	return s.windowSize
}

// Split cuts text into windows of at most the configured size.
// Consecutive windows overlap so no character is dropped at a cut.
// Whitespace-only windows are skipped.
func (s *Splitter) Split(text string) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	var out []string

	start := 0
	for start < len(runes) {
		end := start + s.windowSize
		if end >= len(runes) {
			end = len(runes)
		} else {
			end = s.cutPoint(runes, start, end)
		}

		window := string(runes[start:end])
		if strings.TrimSpace(window) != "" {
			out = append(out, window)
		}

		if end == len(runes) {
			break
		}

		next := end - s.overlap
		if next <= start {
			next = start + 1
		}
		start = next
	}

	return out
}

// cutPoint finds the best boundary in (start, limit], trying each
// separator in preference order. A boundary only counts if it keeps
// the window at least half full; otherwise the next separator is
// tried, and failing all of them the hard limit is used.
func (s *Splitter) cutPoint(runes []rune, start, limit int) int {
	window := string(runes[start:limit])
	minCut := s.windowSize / 2

	for _, sep := range separators {
		idx := strings.LastIndex(window, sep)
		if idx < 0 {
			continue
		}
		// Cut after the separator so nothing is lost
		cut := len([]rune(window[:idx])) + len([]rune(sep))
		if cut >= minCut {
			return start + cut
		}
	}

	return limit
}
