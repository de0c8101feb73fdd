package governance

import (
	"sort"
	"strings"

	"github.com/wgergely/repoctl/internal/rules"
)

const headingPrefix = "## "

// ExportAgentsMD renders ruleSet into a single AGENTS.md document: one
// "## <id>" heading per rule, its content verbatim beneath, sorted by
// id for deterministic, diff-friendly output.
func ExportAgentsMD(ruleSet []rules.Rule) string {
	sorted := make([]rules.Rule, len(ruleSet))
	copy(sorted, ruleSet)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	var b strings.Builder
	for i, r := range sorted {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(headingPrefix)
		b.WriteString(r.ID)
		b.WriteString("\n\n")
		b.WriteString(r.Content)
		if !strings.HasSuffix(r.Content, "\n") {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// ImportedRule is one (id, content) pair parsed back out of an
// AGENTS.md document.
type ImportedRule struct {
	ID      string
	Content string
}

// ImportAgentsMD parses an AGENTS.md document back into its (id,
// content) pairs. A rule's content runs from just after its heading
// to the next "## " heading or EOF; the single blank line conventionally
// separating a heading (or the next heading) from its body is
// dropped, but every other blank line inside the content is preserved
// verbatim - this is what makes import(export(rules)) a round trip.
func ImportAgentsMD(doc string) []ImportedRule {
	lines := strings.Split(doc, "\n")

	var headings []int
	for i, line := range lines {
		if strings.HasPrefix(line, headingPrefix) {
			headings = append(headings, i)
		}
	}

	out := make([]ImportedRule, 0, len(headings))
	for n, start := range headings {
		end := len(lines)
		if n+1 < len(headings) {
			end = headings[n+1]
		}

		id := strings.TrimSpace(strings.TrimPrefix(lines[start], headingPrefix))
		body := lines[start+1 : end]

		if len(body) > 0 && body[0] == "" {
			body = body[1:]
		}
		if len(body) > 0 && body[len(body)-1] == "" {
			body = body[:len(body)-1]
		}

		out = append(out, ImportedRule{ID: id, Content: strings.Join(body, "\n")})
	}
	return out
}
