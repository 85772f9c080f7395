package buildinfo

import (
	"testing"
)

func TestBinaryVersion(t *testing.T) {
	if BinaryVersion != "dev" {
		t.Errorf("Expected BinaryVersion to be 'dev', got '%s'", BinaryVersion)
	}
}

func TestModuleVersion(t *testing.T) {
	version := ModuleVersion()
	if version == "" {
		t.Log("ModuleVersion returned empty string (build info not available)")
		return
	}
	if len(version) < 2 {
		t.Errorf("ModuleVersion seems too short: '%s'", version)
	}
}

func TestVersionPrefersLdflags(t *testing.T) {
	original := BinaryVersion
	t.Cleanup(func() { BinaryVersion = original })

	BinaryVersion = "v1.2.3"
	if got := Version(); got != "v1.2.3" {
		t.Errorf("Version() = %q, expected v1.2.3", got)
	}
}

func TestVersionNeverEmpty(t *testing.T) {
	if Version() == "" {
		t.Error("Version() should never be empty")
	}
}
