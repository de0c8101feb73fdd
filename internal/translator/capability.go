package translator

import (
	"github.com/wgergely/repoctl/internal/rules"
	"github.com/wgergely/repoctl/internal/tools"
)

// Translate renders ruleSet and mcpServers into Content for reg,
// generating only the pieces reg's declared capabilities actually
// support.
func Translate(reg tools.Registration, ruleSet []rules.Rule, mcpServers any) Content {
	content := Empty()
	content.Format = reg.Definition.Integration.ConfigType

	if reg.SupportsInstructions() {
		rendered := TranslateRules(reg, ruleSet)
		content.Instructions = rendered.Instructions
		content.HasInstructions = rendered.HasInstructions
	}

	if reg.SupportsMCP() && mcpServers != nil {
		content.MCPServers = mcpServers
	}

	return content
}

// HasCapabilities reports whether reg has any capability translation
// would act on.
func HasCapabilities(reg tools.Registration) bool {
	return reg.HasAnyCapability()
}
