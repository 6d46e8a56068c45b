package edit

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// segment is a run of text between two word boundaries, in rune offsets.
type segment struct {
	start, end int
	word       bool
}

// segments splits text at Unicode word boundaries. Dots split words as well,
// so URLs and file names can be walked piece by piece.
func segments(text string) []segment {
	var (
		segs  []segment
		state = -1
		pos   int
	)
	for len(text) > 0 {
		var w string
		w, text, state = uniseg.FirstWordInString(text, state)

		start := pos
		for i, r := range []rune(w) {
			if r == '.' {
				if pos+i > start {
					segs = append(segs, newSegment(w, start-pos, pos+i-pos, pos))
				}
				segs = append(segs, segment{start: pos + i, end: pos + i + 1})
				start = pos + i + 1
			}
		}
		end := pos + runeLen(w)
		if start < end {
			segs = append(segs, newSegment(w, start-pos, end-pos, pos))
		}
		pos = end
	}
	return segs
}

func newSegment(w string, from, to, base int) segment {
	s := segment{start: base + from, end: base + to}
	for _, r := range []rune(w)[from:to] {
		if isWordChar(r) {
			s.word = true
			break
		}
	}
	return s
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// NextWord returns the end of the first word that ends after i.
func NextWord(text string, i int) int {
	for _, s := range segments(text) {
		if s.word && s.end > i {
			return s.end
		}
	}
	return runeLen(text)
}

// PreviousWord returns the start of the last word that starts before i.
func PreviousWord(text string, i int) int {
	segs := segments(text)
	for j := len(segs) - 1; j >= 0; j-- {
		if s := segs[j]; s.word && s.start < i {
			return s.start
		}
	}
	return 0
}

// WordAt returns the range of the word touching i. Between two non-word runs
// the surrounding separator is selected.
func WordAt(text string, i int) Range {
	segs := segments(text)
	if len(segs) == 0 {
		return Caret(0)
	}
	for j, s := range segs {
		if i < s.start || i >= s.end {
			continue
		}
		if !s.word && i == s.start && j > 0 && segs[j-1].word {
			s = segs[j-1]
		}
		return Span(s.start, s.end)
	}
	last := segs[len(segs)-1]
	return Span(last.start, last.end)
}
