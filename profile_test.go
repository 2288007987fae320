package svgico

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Should write the profile fixture: %v", err)
	}
	return path
}

func TestLoadProfile(t *testing.T) {
	path := writeProfile(t, `name: favicon
sizes: [16, 32, 48]
dpi: 72
`)

	p, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("Should load the profile: %v", err)
	}
	if p.Name != "favicon" {
		t.Errorf("Profile name expected to be favicon. Got %v", p.Name)
	}
	if !reflect.DeepEqual(p.Sizes, []uint{16, 32, 48}) {
		t.Errorf("Profile sizes expected to be [16 32 48]. Got %v", p.Sizes)
	}
	if p.DPI != 72 {
		t.Errorf("Profile DPI expected to be 72. Got %v", p.DPI)
	}
}

func TestLoadProfile_Defaults(t *testing.T) {
	path := writeProfile(t, "name: plain\n")

	p, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("Should load the profile: %v", err)
	}
	if !reflect.DeepEqual(p.Sizes, DefaultSizes) {
		t.Errorf("Profile sizes expected to fall back to the defaults. Got %v", p.Sizes)
	}
	if p.DPI != DefaultDPI {
		t.Errorf("Profile DPI expected to fall back to %v. Got %v", DefaultDPI, p.DPI)
	}
}

func TestLoadProfile_RejectsInvalidSizes(t *testing.T) {
	path := writeProfile(t, "sizes: [16, 300]\n")

	_, err := LoadProfile(path)
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Error expected to be ErrInvalidSize. Got %v", err)
	}
}

func TestLoadProfile_MissingFile(t *testing.T) {
	if _, err := LoadProfile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("A missing profile file expected to fail loading")
	}
}
