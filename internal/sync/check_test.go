package sync

import "testing"

func TestHealthy(t *testing.T) {
	r := Healthy()
	if r.Status != StatusHealthy {
		t.Errorf("Status = %v, want %v", r.Status, StatusHealthy)
	}
	if !r.IsHealthy() {
		t.Error("IsHealthy() = false")
	}
}

func TestWithMissing(t *testing.T) {
	item := DriftItem{Tool: "vscode", File: "settings.json", Description: "File not found"}
	r := WithMissing([]DriftItem{item})
	if r.Status != StatusMissing {
		t.Errorf("Status = %v, want %v", r.Status, StatusMissing)
	}
	if len(r.Missing) != 1 {
		t.Errorf("Missing = %v, want 1 item", r.Missing)
	}
}

func TestWithDrifted(t *testing.T) {
	item := DriftItem{Tool: "vscode", File: "settings.json", Description: "Checksum mismatch"}
	r := WithDrifted([]DriftItem{item})
	if r.Status != StatusDrifted {
		t.Errorf("Status = %v, want %v", r.Status, StatusDrifted)
	}
	if len(r.Drifted) != 1 {
		t.Errorf("Drifted = %v, want 1 item", r.Drifted)
	}
}

func TestMerge_DriftedIsWorseThanMissing(t *testing.T) {
	missing := WithMissing([]DriftItem{{Tool: "vscode", File: "a.json", Description: "Missing"}})
	drifted := WithDrifted([]DriftItem{{Tool: "cursor", File: "b.mdc", Description: "Drifted"}})

	merged := missing.Merge(drifted)

	if merged.Status != StatusDrifted {
		t.Errorf("Status = %v, want %v", merged.Status, StatusDrifted)
	}
	if len(merged.Missing) != 1 || len(merged.Drifted) != 1 {
		t.Errorf("merged = %+v, want 1 missing + 1 drifted", merged)
	}
}

func TestMerge_BrokenAlwaysWins(t *testing.T) {
	drifted := WithDrifted([]DriftItem{{Tool: "cursor", File: "b.mdc"}})
	broken := Broken("ledger corrupted")

	merged := drifted.Merge(broken)
	if merged.Status != StatusBroken {
		t.Errorf("Status = %v, want %v", merged.Status, StatusBroken)
	}
}

func TestMerge_HealthyPlusHealthyStaysHealthy(t *testing.T) {
	merged := Healthy().Merge(Healthy())
	if !merged.IsHealthy() {
		t.Error("Merge(Healthy, Healthy) is not healthy")
	}
}
