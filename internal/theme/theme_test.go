package theme

import "testing"

// TestRegistryBuiltins ensures every builtin theme is registered and complete.
func TestRegistryBuiltins(t *testing.T) {
	r := NewRegistry()

	names := r.List()
	if len(names) == 0 {
		t.Fatal("registry should not be empty")
	}
	for _, name := range names {
		th, err := r.Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		if th.Primary == "" || th.Success == "" || th.Error == "" || th.Warning == "" {
			t.Errorf("theme %q has empty core colors", name)
		}
		if th.Type != "dark" && th.Type != "light" {
			t.Errorf("theme %q has invalid type %q", name, th.Type)
		}
	}

	if _, err := r.Get(DefaultName); err != nil {
		t.Errorf("default theme %q is not registered", DefaultName)
	}
	if _, err := r.Get("missing"); err == nil {
		t.Error("Get(missing) should fail")
	}
}

func TestResolve(t *testing.T) {
	tests := map[string]string{
		"":             DefaultName,
		"dracula":      "dracula",
		"no-such-one":  DefaultName,
		"github-light": "github-light",
	}
	for in, want := range tests {
		if got := Resolve(in).Name; got != want {
			t.Errorf("Resolve(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStatusStyle(t *testing.T) {
	s := NewStyles(nil)
	th := Default()

	if got := s.Status("added").GetForeground(); got != th.Success {
		t.Errorf("added color = %v", got)
	}
	if got := s.Status("deleted").GetForeground(); got != th.Error {
		t.Errorf("deleted color = %v", got)
	}
	if got := s.Status("modified").GetForeground(); got != th.Secondary {
		t.Errorf("modified color = %v", got)
	}
}
