package translator

import (
	"strings"
	"testing"

	"github.com/wgergely/repoctl/internal/rules"
	"github.com/wgergely/repoctl/internal/tools"
)

func TestTranslateRules_RespectsCapability(t *testing.T) {
	tool := makeTool(false, false, false, tools.ConfigMarkdown)
	content := TranslateRules(tool, []rules.Rule{makeRule("r1")})
	if !content.IsEmpty() {
		t.Errorf("TranslateRules() = %+v, want empty when unsupported", content)
	}
}

func TestTranslateRules_EmptyRuleSet(t *testing.T) {
	tool := makeTool(true, false, false, tools.ConfigMarkdown)
	content := TranslateRules(tool, nil)
	if !content.IsEmpty() {
		t.Errorf("TranslateRules() = %+v, want empty for nil rules", content)
	}
}

func TestTranslateRules_SortedByID(t *testing.T) {
	tool := makeTool(true, false, false, tools.ConfigMarkdown)
	ruleSet := []rules.Rule{makeRule("zeta"), makeRule("alpha")}
	content := TranslateRules(tool, ruleSet)
	alphaIdx := strings.Index(content.Instructions, "alpha")
	zetaIdx := strings.Index(content.Instructions, "zeta")
	if alphaIdx == -1 || zetaIdx == -1 || alphaIdx > zetaIdx {
		t.Errorf("rules not sorted by ID: %q", content.Instructions)
	}
}

func TestTranslateRules_PlainFormatUsesRawContent(t *testing.T) {
	tool := makeTool(true, false, false, tools.ConfigJSON)
	ruleSet := []rules.Rule{makeRule("r1")}
	content := TranslateRules(tool, ruleSet)
	if strings.Contains(content.Instructions, "## ") {
		t.Errorf("Instructions = %q, want no markdown heading for JSON format", content.Instructions)
	}
}

func TestTranslateRules_MarkdownIncludesTags(t *testing.T) {
	tool := makeTool(true, false, false, tools.ConfigMarkdown)
	r := rules.New("r1", "content", []string{"a", "b"})
	content := TranslateRules(tool, []rules.Rule{r})
	if !strings.Contains(content.Instructions, "**Tags:** a, b") {
		t.Errorf("Instructions = %q, want tags rendered", content.Instructions)
	}
}
