package discussion

import (
	"strings"

	"github.com/heartmarshall/dreamr-backend/internal/domain"
)

const basePrompt = `You are continuing a conversation about a dream that was already analyzed.
You receive the dream and the analysis the user has already read, followed by the conversation so far.

- Answer the newest message directly and build on the existing analysis instead of starting over.
- Change the analysis only when the user adds information that clearly contradicts it.
- Do not summarize unless asked.
- Read sexual or explicit material symbolically and never graphically.
- If the message has nothing to do with dreams, redirect politely in one sentence.
- Reply in the language of the conversation. Prefix list items with "-- ".`

func systemPrompt(d *domain.Dream) string {
	var b strings.Builder
	b.WriteString(basePrompt)
	b.WriteString("\n\nDream:\n")
	b.WriteString(d.Text)
	if d.Analysis != nil {
		b.WriteString("\n\nAnalysis the user already read:\n")
		b.WriteString(*d.Analysis)
	}
	return b.String()
}
