package observable_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	observable "github.com/heplab/observable"
)

func writeDefs(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "observables.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadObservables(t *testing.T) {
	path := writeDefs(t, `observables:
  - name: "mass::ratio_mu_tau"
    latex: "m_\\mu / m_\\tau"
    unit: "1"
    expression: "<<mass::mu>> / <<mass::tau>>"
  - name: "mass::sum"
    unit: "GeV"
    expression: "<<mass::mu>> + <<mass::tau>>"
`)
	reg := observable.NewObservables()
	if err := observable.LoadObservables(path, reg); err != nil {
		t.Fatalf("load: %v", err)
	}

	ratio := observable.MustQualifiedName("mass::ratio_mu_tau")
	entry := reg.Entry(ratio)
	if entry == nil {
		t.Fatal("ratio entry not registered")
	}
	if entry.Latex() != `m_\mu / m_\tau` {
		t.Errorf("latex: %q", entry.Latex())
	}
	if entry.Unit() != observable.None {
		t.Errorf("unit: %q", entry.Unit())
	}
	if reg.Entry(observable.MustQualifiedName("mass::sum")).Unit() != observable.GeV {
		t.Errorf("sum unit: %q", reg.Entry(observable.MustQualifiedName("mass::sum")).Unit())
	}

	p := observable.NewParameters()
	p.Declare(observable.MustQualifiedName("mass::mu"), 0.105658)
	p.Declare(observable.MustQualifiedName("mass::tau"), 1.77684)
	obs, err := reg.Make(ratio, p, observable.NewKinematics(), observable.Options{})
	if err != nil {
		t.Fatalf("make: %v", err)
	}
	if got := obs.Evaluate(); math.Abs(got-0.059464662) > 1e-4 {
		t.Errorf("ratio: %g", got)
	}
}

func TestLoadObservablesForcedOptions(t *testing.T) {
	path := writeDefs(t, `observables:
  - name: "test::forced"
    options:
      l: tau
    expression: "<<test::width>>"
`)
	reg := observable.NewObservables()
	if err := reg.Add(observable.NewEntry(observable.MustQualifiedName("test::width"), "", observable.GeV, nil,
		func(_ *observable.Parameters, _ *observable.Kinematics, o observable.Options) float64 {
			if l, _ := o.Get("l"); l == "tau" {
				return 2
			}
			return 1
		})); err != nil {
		t.Fatal(err)
	}
	if err := observable.LoadObservables(path, reg); err != nil {
		t.Fatalf("load: %v", err)
	}
	obs, err := reg.Make(observable.MustQualifiedName("test::forced"), observable.NewParameters(), observable.NewKinematics(), observable.NewOptions(map[string]string{"l": "e"}))
	if err != nil {
		t.Fatalf("make: %v", err)
	}
	if got := obs.Evaluate(); got != 2 {
		t.Errorf("forced option from the file did not win: %g", got)
	}
}

func TestLoadObservablesErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"not yaml", "observables: ["},
		{"missing name", "observables:\n  - expression: \"1\"\n"},
		{"missing expression", "observables:\n  - name: \"test::a\"\n"},
		{"bad unit", "observables:\n  - name: \"test::a\"\n    unit: \"furlong\"\n    expression: \"1\"\n"},
		{"bad name", "observables:\n  - name: \"test::\"\n    expression: \"1\"\n"},
		{"bad expression", "observables:\n  - name: \"test::a\"\n    expression: \"1 +\"\n"},
		{"duplicate", "observables:\n  - name: \"test::a\"\n    expression: \"1\"\n  - name: \"test::a\"\n    expression: \"2\"\n"},
	}
	for _, c := range cases {
		path := writeDefs(t, c.content)
		reg := observable.NewObservables()
		if err := observable.LoadObservables(path, reg); err == nil {
			t.Errorf("%s: load succeeded", c.name)
		}
	}
	if err := observable.LoadObservables(filepath.Join(t.TempDir(), "absent.yaml"), observable.NewObservables()); err == nil {
		t.Error("loading a missing file succeeded")
	}
}
