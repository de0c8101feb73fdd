// Package sync implements the Engine that reconciles a repository's
// actual config files with what its manifest and rule registry say
// should be there: Check reports drift without touching anything, Sync
// writes every projection up to date, Fix narrows that to only the
// tools Check found unhealthy.
package sync

// Status is the overall health of a sync check.
type Status string

const (
	StatusHealthy Status = "healthy"
	StatusMissing Status = "missing"
	StatusDrifted Status = "drifted"
	StatusBroken  Status = "broken"
)

// DriftItem names one tool/file pair that Check found to be missing or
// drifted, with a human-readable reason.
type DriftItem struct {
	Tool        string
	File        string
	Description string
}

// Report is the outcome of a Check pass.
type Report struct {
	Status   Status
	Drifted  []DriftItem
	Missing  []DriftItem
	Messages []string
}

// Healthy returns a report with no issues.
func Healthy() Report {
	return Report{Status: StatusHealthy}
}

// WithMissing returns a report listing missing items.
func WithMissing(missing []DriftItem) Report {
	return Report{Status: StatusMissing, Missing: missing}
}

// WithDrifted returns a report listing drifted items.
func WithDrifted(drifted []DriftItem) Report {
	return Report{Status: StatusDrifted, Drifted: drifted}
}

// Broken returns a report indicating the check itself couldn't run.
func Broken(message string) Report {
	return Report{Status: StatusBroken, Messages: []string{message}}
}

// statusRank orders severity for Merge: a higher rank always wins.
var statusRank = map[Status]int{
	StatusHealthy: 0,
	StatusMissing: 1,
	StatusDrifted: 2,
	StatusBroken:  3,
}

// Merge combines r with other, keeping every item from both and taking
// the worse of the two statuses: Broken > Drifted > Missing > Healthy.
func (r Report) Merge(other Report) Report {
	r.Drifted = append(r.Drifted, other.Drifted...)
	r.Missing = append(r.Missing, other.Missing...)
	r.Messages = append(r.Messages, other.Messages...)

	if statusRank[other.Status] > statusRank[r.Status] {
		r.Status = other.Status
	}
	return r
}

// IsHealthy reports whether the check found nothing to do.
func (r Report) IsHealthy() bool { return r.Status == StatusHealthy }
