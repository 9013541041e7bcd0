package text

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize text to aid in fuzzy matching. In particular, we remove
// diacritics, "ö" becomes "o". Note that Mn is the unicode key for nonspacing
// marks.
func Normalize(in string) (string, error) {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, in)
	return out, err
}

// Highlight renders every case-insensitive occurrence of needle in haystack
// with match, and the rest with base.
func Highlight(haystack, needle string, base, match lipgloss.Style) string {
	if needle == "" {
		return base.Render(haystack)
	}

	folder := cases.Fold()
	hay := []rune(haystack)
	folded := make([]string, len(hay))
	for i, r := range hay {
		folded[i] = folder.String(string(r))
	}
	want := []rune(folder.String(needle))

	marked := make([]bool, len(hay))
	for i := range hay {
		if matchAt(folded, want, i) {
			for j := i; j < i+len(want) && j < len(hay); j++ {
				marked[j] = true
			}
		}
	}

	b := strings.Builder{}
	run := []rune{}
	on := false
	flush := func() {
		if len(run) == 0 {
			return
		}
		if on {
			b.WriteString(match.Render(string(run)))
		} else {
			b.WriteString(base.Render(string(run)))
		}
		run = run[:0]
	}
	for i, r := range hay {
		if marked[i] != on {
			flush()
			on = marked[i]
		}
		run = append(run, r)
	}
	flush()
	return b.String()
}

// matchAt reports whether want starts at rune i of folded. Runes that fold to
// more than one rune never match, so they only ever compare against themselves.
func matchAt(folded []string, want []rune, i int) bool {
	if i+len(want) > len(folded) {
		return false
	}
	for j, w := range want {
		if folded[i+j] != string(w) {
			return false
		}
	}
	return true
}

// Suggest returns up to n of candidates that fuzzily match needle, best
// first. Diacritics are ignored on both sides.
func Suggest(needle string, candidates []string, n int) []string {
	if needle == "" || n <= 0 {
		return nil
	}

	normalized := make([]string, len(candidates))
	for i, c := range candidates {
		s, err := Normalize(strings.ToLower(c))
		if err != nil {
			s = strings.ToLower(c)
		}
		normalized[i] = s
	}
	query, err := Normalize(strings.ToLower(needle))
	if err != nil {
		query = strings.ToLower(needle)
	}

	matches := fuzzy.Find(query, normalized)
	out := []string{}
	for _, m := range matches {
		if len(out) == n {
			break
		}
		out = append(out, candidates[m.Index])
	}
	return out
}

// Fit pads or truncates s so it occupies exactly width cells.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		s = TruncateWithTail(s, uint(width), Ellipsis)
	}
	return runewidth.FillRight(s, width)
}

// FitLeft is Fit aligned to the right edge, for numbers.
func FitLeft(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		s = TruncateWithTail(s, uint(width), Ellipsis)
	}
	return runewidth.FillLeft(s, width)
}

func TruncateWithTail(txt string, width uint, ellipsis string) string {
	return truncate.StringWithTail(txt, width, ellipsis)
}
