package translator

import (
	"sort"
	"strings"

	"github.com/wgergely/repoctl/internal/rules"
	"github.com/wgergely/repoctl/internal/tools"
)

// TranslateRules renders ruleSet into a single instructions string for
// reg's config format, returning empty Content when the tool doesn't
// support custom instructions or there's nothing to render - checking
// the capability here, rather than trusting a caller to have already
// filtered, is what keeps an unsupported tool from ever getting content
// it can't use.
func TranslateRules(reg tools.Registration, ruleSet []rules.Rule) Content {
	if !reg.SupportsInstructions() || len(ruleSet) == 0 {
		return Empty()
	}

	format := reg.Definition.Integration.ConfigType
	return WithInstructions(format, formatRules(ruleSet, format))
}

func formatRules(ruleSet []rules.Rule, format tools.ConfigType) string {
	sorted := make([]rules.Rule, len(ruleSet))
	copy(sorted, ruleSet)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	parts := make([]string, 0, len(sorted))
	for _, r := range sorted {
		parts = append(parts, formatRule(r, format))
	}
	return strings.Join(parts, "\n\n")
}

func formatRule(r rules.Rule, format tools.ConfigType) string {
	switch format {
	case tools.ConfigMarkdown, tools.ConfigText:
		return formatMarkdownRule(r)
	default:
		return r.Content
	}
}

func formatMarkdownRule(r rules.Rule) string {
	var b strings.Builder
	b.WriteString("## ")
	b.WriteString(r.ID)
	b.WriteString("\n\n")
	b.WriteString(r.Content)
	if len(r.Tags) > 0 {
		b.WriteString("\n\n**Tags:** ")
		b.WriteString(strings.Join(r.Tags, ", "))
	}
	return b.String()
}
