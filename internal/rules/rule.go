// Package rules implements the central rule registry: the single source
// of truth for configuration content that gets projected into tool
// config files. A Rule's UUID doubles as the managed-block marker the
// content substrate uses to find that rule's projection in a target
// file.
package rules

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// Rule is one atomic unit of configuration content.
type Rule struct {
	UUID        string    `toml:"uuid"`
	ID          string    `toml:"id"`
	Content     string    `toml:"content"`
	Created     time.Time `toml:"created"`
	Updated     time.Time `toml:"updated"`
	Tags        []string  `toml:"tags"`
	ContentHash string    `toml:"content_hash"`
}

// New creates a rule with a freshly generated UUID.
func New(id, content string, tags []string) Rule {
	return WithUUID(uuid.NewString(), id, content, tags)
}

// WithUUID creates a rule with a caller-supplied UUID, for migration or
// deterministic tests.
func WithUUID(ruleUUID, id, content string, tags []string) Rule {
	now := time.Now().UTC()
	return Rule{
		UUID:        ruleUUID,
		ID:          id,
		Content:     content,
		Created:     now,
		Updated:     now,
		Tags:        tags,
		ContentHash: hashContent(content),
	}
}

// UpdateContent replaces the rule's content, recomputing its hash and
// bumping Updated.
func (r *Rule) UpdateContent(newContent string) {
	r.Content = newContent
	r.ContentHash = hashContent(newContent)
	r.Updated = time.Now().UTC()
}

// HasDrifted reports whether currentContent's hash differs from the
// rule's recorded content hash.
func (r *Rule) HasDrifted(currentContent string) bool {
	return r.ContentHash != hashContent(currentContent)
}

func hashContent(content string) string {
	sum := sha256.Sum256([]byte(content))
	return "sha256:" + hex.EncodeToString(sum[:])
}
