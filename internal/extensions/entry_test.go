package extensions

import "testing"

func TestValidate_EmptyName(t *testing.T) {
	e := Entry{Source: "https://example.com/x.git"}
	if err := e.Validate(); err == nil {
		t.Error("Validate() = nil, want error for empty name")
	}
}

func TestValidate_BadNameChars(t *testing.T) {
	e := Entry{Name: "bad name!", Source: "https://example.com/x.git"}
	if err := e.Validate(); err == nil {
		t.Error("Validate() = nil, want error for invalid characters")
	}
}

func TestValidate_EmptySource(t *testing.T) {
	e := Entry{Name: "ok-name"}
	if err := e.Validate(); err == nil {
		t.Error("Validate() = nil, want error for empty source")
	}
}

func TestValidate_OK(t *testing.T) {
	e := Entry{Name: "vault_spec-2", Source: "https://example.com/x.git"}
	if err := e.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}
