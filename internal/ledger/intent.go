package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Intent is one instance of a rule applied to the repository: a rule
// ID plus whatever arguments parameterize it, and the set of
// Projections recording where it actually landed.
type Intent struct {
	ID          string         `toml:"id"`
	UUID        string         `toml:"uuid"`
	Timestamp   time.Time      `toml:"timestamp"`
	Args        map[string]any `toml:"args,omitempty"`
	Projections []Projection   `toml:"projections,omitempty"`
}

// NewIntent creates an intent with a freshly generated UUID and the
// current timestamp.
func NewIntent(id string, args map[string]any) Intent {
	return IntentWithUUID(id, uuid.NewString(), args)
}

// IntentWithUUID creates an intent with a caller-supplied UUID, for
// migration or deterministic tests.
func IntentWithUUID(id, intentUUID string, args map[string]any) Intent {
	return Intent{ID: id, UUID: intentUUID, Timestamp: time.Now().UTC(), Args: args}
}

// AddProjection appends a projection to the intent.
func (i *Intent) AddProjection(p Projection) {
	i.Projections = append(i.Projections, p)
}

// RemoveProjection removes the projection targeting tool/file, if any,
// returning it and true on success.
func (i *Intent) RemoveProjection(tool, file string) (Projection, bool) {
	for idx, p := range i.Projections {
		if p.Tool == tool && p.File == file {
			removed := p
			i.Projections = append(i.Projections[:idx], i.Projections[idx+1:]...)
			return removed, true
		}
	}
	return Projection{}, false
}
