package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/wgergely/repoctl/internal/atomicio"
	"github.com/wgergely/repoctl/internal/constants"
	"github.com/wgergely/repoctl/internal/translator"
)

// rulesDataKey is the translator.Content.Data key a DirectoryWriter
// reads its per-rule files from. Callers populate it with a []RuleFile
// rather than a single rendered Instructions string, since a directory
// writer owns many files, not one.
const rulesDataKey = "rules"

// RuleFile is one rule destined for its own file under a rules
// directory.
type RuleFile struct {
	ID      string
	Content string
}

// nonWordRun collapses anything that isn't a word character or hyphen
// so a rule ID becomes a safe filename fragment.
var nonWordRun = regexp.MustCompile(`[^\w-]+`)

// DirectoryWriter writes one Markdown file per rule into path (treated
// as a directory), named NN-<id>.md in rule order. Unlike the other
// writers this never emits managed-block markers: every file in the
// directory is fully owned by the writer.
type DirectoryWriter struct{}

func (w *DirectoryWriter) Write(path string, content translator.Content, _ *SchemaKeys) error {
	ruleFiles, _ := content.Data[rulesDataKey].([]RuleFile)

	if err := os.MkdirAll(path, constants.DirPermissions); err != nil {
		return err
	}

	if err := clearManagedRuleFiles(path); err != nil {
		return err
	}

	for i, rule := range ruleFiles {
		name := fmt.Sprintf("%02d-%s.md", i+1, sanitizeRuleID(rule.ID))
		if err := atomicio.Write(filepath.Join(path, name), []byte(rule.Content), atomicio.DefaultConfig()); err != nil {
			return err
		}
	}
	return nil
}

// CanHandle reports whether path is already a directory on disk. Tools
// that want per-rule directory output should be routed here explicitly
// by their SupportsRulesDirectory capability rather than relying on
// path sniffing for a not-yet-created directory.
func (w *DirectoryWriter) CanHandle(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

var ruleFilePattern = regexp.MustCompile(`^\d{2}-[\w-]+\.md$`)

// clearManagedRuleFiles removes every file this writer previously
// produced, so a rule that's been deleted or renamed doesn't leave a
// stale file behind.
func clearManagedRuleFiles(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		if e.IsDir() || !ruleFilePattern.MatchString(e.Name()) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

func sanitizeRuleID(id string) string {
	sanitized := nonWordRun.ReplaceAllString(id, "-")
	sanitized = strings.Trim(sanitized, "-")
	if sanitized == "" {
		return "rule"
	}
	return sanitized
}

// SortRuleFiles returns ruleFiles sorted by ID, the same deterministic
// ordering the Markdown/JSON instruction renderers use.
func SortRuleFiles(ruleFiles []RuleFile) []RuleFile {
	sorted := make([]RuleFile, len(ruleFiles))
	copy(sorted, ruleFiles)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return sorted
}
