package deepgram

import (
	"fmt"
	"strings"

	"github.com/dskvich/deepgram-telegram-bot/pkg/domain"
)

// Analysis is the distilled text intelligence result.
type Analysis struct {
	Summary        string
	Topics         []string
	Intents        []string
	Sentiment      string
	SentimentScore float64
}

type analysisResponse struct {
	Results struct {
		Summary struct {
			Text string `json:"text"`
		} `json:"summary"`
		Topics struct {
			Segments []struct {
				Topics []struct {
					Topic string `json:"topic"`
				} `json:"topics"`
			} `json:"segments"`
		} `json:"topics"`
		Intents struct {
			Segments []struct {
				Intents []struct {
					Intent string `json:"intent"`
				} `json:"intents"`
			} `json:"segments"`
		} `json:"intents"`
		Sentiments struct {
			Average struct {
				Sentiment      string  `json:"sentiment"`
				SentimentScore float64 `json:"sentiment_score"`
			} `json:"average"`
		} `json:"sentiments"`
	} `json:"results"`
}

func (r *analysisResponse) toAnalysis() *Analysis {
	a := &Analysis{
		Summary:        strings.TrimSpace(r.Results.Summary.Text),
		Sentiment:      r.Results.Sentiments.Average.Sentiment,
		SentimentScore: r.Results.Sentiments.Average.SentimentScore,
	}

	seen := make(map[string]bool)
	for _, seg := range r.Results.Topics.Segments {
		for _, t := range seg.Topics {
			if t.Topic != "" && !seen[t.Topic] {
				seen[t.Topic] = true
				a.Topics = append(a.Topics, t.Topic)
			}
		}
	}

	seen = make(map[string]bool)
	for _, seg := range r.Results.Intents.Segments {
		for _, i := range seg.Intents {
			if i.Intent != "" && !seen[i.Intent] {
				seen[i.Intent] = true
				a.Intents = append(a.Intents, i.Intent)
			}
		}
	}

	return a
}

// FormatAnalysis renders a sectioned markdown report. A section appears for
// every feature enabled in opts, even when the vendor returned nothing for it.
func FormatAnalysis(a *Analysis, opts domain.TISettings) string {
	var b strings.Builder

	if opts.Summarize != domain.SummarizeOff {
		b.WriteString("## Summary\n")
		if a.Summary != "" {
			b.WriteString(a.Summary)
		} else {
			b.WriteString("(none)")
		}
		b.WriteString("\n\n")
	}

	if opts.Topics {
		b.WriteString("## Topics\n")
		writeList(&b, a.Topics)
	}

	if opts.Intents {
		b.WriteString("## Intents\n")
		writeList(&b, a.Intents)
	}

	if opts.Sentiment {
		b.WriteString("## Sentiment\n")
		if a.Sentiment != "" {
			fmt.Fprintf(&b, "%s (%.2f)", a.Sentiment, a.SentimentScore)
		} else {
			b.WriteString("(none)")
		}
		b.WriteString("\n\n")
	}

	return strings.TrimSpace(b.String())
}

func writeList(b *strings.Builder, items []string) {
	if len(items) == 0 {
		b.WriteString("(none)\n\n")
		return
	}
	for _, item := range items {
		b.WriteString("- " + item + "\n")
	}
	b.WriteString("\n")
}
