// Package ledger is the source of truth for what configuration should
// currently be present in a repository: every active Intent and the
// Projections recording how it was rendered into each tool's config.
// Persisted as TOML with file locking, since a ledger read or written
// while another process is mid-write would otherwise corrupt it.
package ledger

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/gofrs/flock"

	"github.com/wgergely/repoctl/internal/atomicio"
	"github.com/wgergely/repoctl/internal/constants"
	"github.com/wgergely/repoctl/internal/rerrors"
)

const ledgerVersion = "1.0"

// Ledger is the persisted collection of every active intent.
type Ledger struct {
	Version string   `toml:"version"`
	Intents []Intent `toml:"intents"`
}

// New returns an empty ledger at the current format version.
func New() *Ledger {
	return &Ledger{Version: ledgerVersion}
}

// Load reads a ledger from path under a shared lock, so a concurrent
// Save can't be read half-written.
func Load(path string) (*Ledger, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, rerrors.WithPath(rerrors.KindIO, "failed to open ledger", path, err)
	}
	defer file.Close()

	fl := flock.New(path + constants.LockFileSuffix)
	if err := fl.RLock(); err != nil {
		return nil, rerrors.WithPath(rerrors.KindIO, "failed to acquire shared lock", path, err)
	}
	defer fl.Unlock()

	var l Ledger
	if _, err := toml.NewDecoder(file).Decode(&l); err != nil {
		return nil, rerrors.Wrap(rerrors.KindParse, "failed to parse ledger TOML", err)
	}
	return &l, nil
}

// LoadOrCreate loads the ledger at path, or returns a new empty one if
// it does not exist yet.
func LoadOrCreate(path string) (*Ledger, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, rerrors.Wrap(rerrors.KindIO, "stat ledger", err)
	}
	return Load(path)
}

// Save persists the ledger to path atomically (temp file, fsync,
// rename), serialized against concurrent writers by atomicio's
// companion lock.
//
// Like the system this was ported from, Save does not itself guard
// against a load-modify-save race between two independent processes:
// two callers that both Load, modify, then Save will have the later
// Save win outright, since there is no read-lock held across the
// modification. Callers that need that guarantee must serialize their
// own load-modify-save sequence externally.
func (l *Ledger) Save(path string) error {
	return l.SaveWithConfig(path, atomicio.DefaultConfig())
}

// SaveWithConfig persists the ledger under the given atomicio.Config,
// letting a caller apply CLI-wide lock/fsync settings (internal/config)
// instead of the package defaults.
func (l *Ledger) SaveWithConfig(path string, cfg atomicio.Config) error {
	return atomicio.Save(path, *l, cfg)
}

// AddIntent appends an intent to the ledger.
func (l *Ledger) AddIntent(i Intent) {
	l.Intents = append(l.Intents, i)
}

// RemoveIntent deletes the intent with the given UUID, returning it
// and true on success.
func (l *Ledger) RemoveIntent(intentUUID string) (Intent, bool) {
	for idx, i := range l.Intents {
		if i.UUID == intentUUID {
			removed := i
			l.Intents = append(l.Intents[:idx], l.Intents[idx+1:]...)
			return removed, true
		}
	}
	return Intent{}, false
}

// GetIntent returns the intent with the given UUID.
func (l *Ledger) GetIntent(intentUUID string) (*Intent, bool) {
	for idx := range l.Intents {
		if l.Intents[idx].UUID == intentUUID {
			return &l.Intents[idx], true
		}
	}
	return nil, false
}

// FindByRule returns every intent referencing the given rule ID.
func (l *Ledger) FindByRule(ruleID string) []*Intent {
	var out []*Intent
	for idx := range l.Intents {
		if l.Intents[idx].ID == ruleID {
			out = append(out, &l.Intents[idx])
		}
	}
	return out
}

// fileProjection pairs an intent with one of its projections, returned
// by ProjectionsForFile.
type fileProjection struct {
	Intent     *Intent
	Projection Projection
}

// ProjectionsForFile returns every (intent, projection) pair whose
// projection targets file.
func (l *Ledger) ProjectionsForFile(file string) []fileProjection {
	var out []fileProjection
	for idx := range l.Intents {
		intent := &l.Intents[idx]
		for _, p := range intent.Projections {
			if p.File == file {
				out = append(out, fileProjection{Intent: intent, Projection: p})
			}
		}
	}
	return out
}
