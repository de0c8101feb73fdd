package layout

import "testing"

func TestSlugStrategy_Basic(t *testing.T) {
	got := SlugStrategy{}.BranchToDirectory("hello-world")
	if got != "hello-world" {
		t.Errorf("BranchToDirectory() = %q, want %q", got, "hello-world")
	}
}

func TestSlugStrategy_Slashes(t *testing.T) {
	got := SlugStrategy{}.BranchToDirectory("feat/auth")
	if got != "feat-auth" {
		t.Errorf("BranchToDirectory() = %q, want %q", got, "feat-auth")
	}
}

func TestSlugStrategy_UnderscoresCollapseLikeDashes(t *testing.T) {
	got := SlugStrategy{}.BranchToDirectory("feat__user___auth")
	if got != "feat-user-auth" {
		t.Errorf("BranchToDirectory() = %q, want %q", got, "feat-user-auth")
	}
}

func TestSlugStrategy_LeadingAndTrailingDashesTrimmed(t *testing.T) {
	got := SlugStrategy{}.BranchToDirectory("--feat/auth--")
	if got != "feat-auth" {
		t.Errorf("BranchToDirectory() = %q, want %q", got, "feat-auth")
	}
}

func TestSlugStrategy_UnicodeLettersPassThrough(t *testing.T) {
	got := SlugStrategy{}.BranchToDirectory("feature/café")
	if got != "feature-café" {
		t.Errorf("BranchToDirectory() = %q, want %q", got, "feature-café")
	}
}

func TestSlugStrategy_EmojiAndPunctuationCollapse(t *testing.T) {
	got := SlugStrategy{}.BranchToDirectory("fix/🔥-urgent!!")
	if got != "fix-urgent" {
		t.Errorf("BranchToDirectory() = %q, want %q", got, "fix-urgent")
	}
}

func TestHierarchicalStrategy_PreservesSlashes(t *testing.T) {
	got := HierarchicalStrategy{}.BranchToDirectory("feat/user-auth")
	if got != "feat/user-auth" {
		t.Errorf("BranchToDirectory() = %q, want %q", got, "feat/user-auth")
	}
}

func TestHierarchicalStrategy_UnsafeCharsBecomeDashes(t *testing.T) {
	got := HierarchicalStrategy{}.BranchToDirectory("feat/user auth!")
	if got != "feat/user-auth-" {
		t.Errorf("BranchToDirectory() = %q, want %q", got, "feat/user-auth-")
	}
}

func TestHierarchicalStrategy_CollapsesAndTrimsSlashes(t *testing.T) {
	got := HierarchicalStrategy{}.BranchToDirectory("//feat//auth//")
	if got != "feat/auth" {
		t.Errorf("BranchToDirectory() = %q, want %q", got, "feat/auth")
	}
}
