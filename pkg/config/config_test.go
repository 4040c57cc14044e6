package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.pless.dev/pkg/variant"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "culture: de-DE\ndb: /tmp/props.db\nlog: /tmp/log\nformat: F3\ntable: true\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{Culture: "de-DE", DB: "/tmp/props.db", Log: "/tmp/log", Format: "F3", Table: true}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestLoad_Empty(t *testing.T) {
	cfg, err := Load(writeFile(t, "# nothing here\n"))
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != *Default() {
		t.Errorf("config = %+v, want default", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"unknown field", "colour: red\n", "error parsing configuration"},
		{"bad yaml", "culture: [\n", "error parsing configuration"},
		{"bad culture", "culture: '!!'\n", "culture"},
		{"bad format", "format: Q\n", "format"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(writeFile(t, test.content))
			if err == nil || !strings.Contains(err.Error(), test.wantMsg) {
				t.Errorf("got error %v, want one containing %q", err, test.wantMsg)
			}
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := &Config{Culture: "fr", Format: "N2", Table: true}
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestProvider(t *testing.T) {
	p, err := (&Config{}).Provider()
	if err != nil {
		t.Fatal(err)
	}
	if p != variant.FormatProvider(variant.Invariant) {
		t.Errorf("empty culture gives %v, want Invariant", p)
	}
	p, err = (&Config{Culture: "de-DE"}).Provider()
	if err != nil {
		t.Fatal(err)
	}
	if got := p.NumberFormat().DecimalSeparator; got != "," {
		t.Errorf("de-DE decimal separator = %q, want \",\"", got)
	}
}
