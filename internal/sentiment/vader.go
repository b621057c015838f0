package sentiment

import (
	"context"
	"html"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

// compound score bounds for the offline labels
const vaderThreshold = 0.20

var (
	markdownLink = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	bareURL      = regexp.MustCompile(`https?://\S+|www\.\S+`)
	htmlTag      = regexp.MustCompile(`<[^>]*>`)
)

// Vader scores text locally. It needs no network and answers
// "positive", "negative" or "neutral".
type Vader struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVader() *Vader {
	return &Vader{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *Vader) Predict(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	score := v.analyzer.PolarityScores(PlainText(text)).Compound
	switch {
	case score >= vaderThreshold:
		return "positive", nil
	case score <= -vaderThreshold:
		return "negative", nil
	default:
		return "neutral", nil
	}
}

// PlainText flattens markdown to a single line of words with links removed.
func PlainText(input string) string {
	input = markdownLink.ReplaceAllString(input, "$1")
	// no smartypants, so apostrophes survive for the lexicon
	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.HTMLFlagsNone,
	})
	out := blackfriday.Run([]byte(input),
		blackfriday.WithNoExtensions(),
		blackfriday.WithRenderer(renderer),
	)
	text := html.UnescapeString(htmlTag.ReplaceAllString(string(out), " "))
	text = bareURL.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}
