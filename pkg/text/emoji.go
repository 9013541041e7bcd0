package text

import (
	"hash/fnv"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/enescakir/emoji"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	Ellipsis = "…"
)

var (
	EmojiFavorite = emoji.GlowingStar.String()
	EmojiTrophy   = emoji.Trophy.String()
	EmojiBall     = emoji.SoccerBall.String()
	EmojiStadium  = emoji.Stadium.String()
	EmojiCoach    = emoji.Clipboard.String()
	EmojiFounded  = emoji.Calendar.String()
	EmojiSuccess  = emoji.CheckMarkButton.String()
	EmojiError    = emoji.CrossMark.String()
	EmojiInfo     = emoji.Information.String()
	EmojiThinking = emoji.ThinkingFace.String()
)

var (
	crestColorHashSalt uint32 = 6969420
	// NOTE: changing these dimensions uncovers some awkward indexing issues in
	// the color selection. avoid if you can help it
	crestColors = colorGrid(4, 4)
)

// Return the time in a human-readable format relative to the current time.
func RelativeTime(then time.Time) string {
	now := time.Now()
	ago := now.Sub(then)
	if ago < time.Minute {
		return "just now"
	} else if ago < humanize.Week {
		return humanize.CustomRelTime(then, now, "ago", "from now", magnitudes)
	}
	return then.Format("02 Jan 2006 15:04 MST")
}

// Magnitudes for relative time.
var magnitudes = []humanize.RelTimeMagnitude{
	{D: time.Second, Format: "now", DivBy: time.Second},
	{D: 2 * time.Second, Format: "1 second %s", DivBy: 1},
	{D: time.Minute, Format: "%d seconds %s", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "1 minute %s", DivBy: 1},
	{D: time.Hour, Format: "%d minutes %s", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "1 hour %s", DivBy: 1},
	{D: humanize.Day, Format: "%d hours %s", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "1 day %s", DivBy: 1},
	{D: humanize.Week, Format: "%d days %s", DivBy: humanize.Day},
	{D: math.MaxInt64, Format: "a long while %s", DivBy: 1},
}

// Crest is a two letter monogram for a team, colored consistently by name.
// It stands in for the badge image in the terminal.
func Crest(name string) string {
	h := fnv.New32a()
	h.Write([]byte(name))
	hash := h.Sum32() + crestColorHashSalt

	rangeX, rangeY := len(crestColors), len(crestColors[0])
	idx := int(hash % uint32(rangeX*rangeY))
	x, y := idx/rangeY, idx%rangeY

	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(crestColors[x][y])).
		Render(Initials(name))
}

// Initials are the first letters of the first two words of name, ignoring
// club prefixes like "FC". A single word contributes its first two letters.
func Initials(name string) string {
	words := []string{}
	for _, w := range strings.Fields(name) {
		switch strings.ToLower(w) {
		case "fc", "cf", "afc", "sc", "ac":
			continue
		}
		words = append(words, w)
	}
	if len(words) == 0 {
		words = strings.Fields(name)
	}

	var out []rune
	switch len(words) {
	case 0:
		return "??"
	case 1:
		out = []rune(words[0])
		if len(out) > 2 {
			out = out[:2]
		}
	default:
		out = []rune{[]rune(words[0])[0], []rune(words[1])[0]}
	}
	return strings.ToUpper(string(out))
}

// Gradient returns steps hex colors blended from red through yellow to green.
func Gradient(steps int) []string {
	if steps <= 0 {
		return nil
	}
	red, _ := colorful.Hex("#F25D94")
	yellow, _ := colorful.Hex("#EDFF82")
	green, _ := colorful.Hex("#04B575")

	out := make([]string, steps)
	for i := range out {
		t := 0.0
		if steps > 1 {
			t = float64(i) / float64(steps-1)
		}
		var c colorful.Color
		if t < 0.5 {
			c = red.BlendLuv(yellow, t*2)
		} else {
			c = yellow.BlendLuv(green, (t-0.5)*2)
		}
		out[i] = c.Clamped().Hex()
	}
	return out
}

// Bar draws percent (0-100) as a width cell gradient bar.
func Bar(percent, width int) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(math.Round(float64(percent) / 100 * float64(width)))
	colors := Gradient(width)

	b := strings.Builder{}
	for i := 0; i < width; i++ {
		if i < filled {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i])).Render("█"))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#3C3C3C")).Render("░"))
		}
	}
	return b.String()
}

func colorGrid(xSteps, ySteps int) [][]string {
	x0y0, _ := colorful.Hex("#F25D94")
	x1y0, _ := colorful.Hex("#EDFF82")
	x0y1, _ := colorful.Hex("#643AFF")
	x1y1, _ := colorful.Hex("#14F9D5")

	x0 := make([]colorful.Color, ySteps)
	for i := range x0 {
		x0[i] = x0y0.BlendLuv(x0y1, float64(i)/float64(ySteps))
	}

	x1 := make([]colorful.Color, ySteps)
	for i := range x1 {
		x1[i] = x1y0.BlendLuv(x1y1, float64(i)/float64(ySteps))
	}

	grid := make([][]string, ySteps)
	for x := 0; x < ySteps; x++ {
		y0 := x0[x]
		grid[x] = make([]string, xSteps)
		for y := 0; y < xSteps; y++ {
			grid[x][y] = y0.BlendLuv(x1[x], float64(y)/float64(xSteps)).Hex()
		}
	}

	return grid
}
