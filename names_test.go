package observable_test

import (
	"testing"

	observable "github.com/heplab/observable"
)

func TestQualifiedNames(t *testing.T) {
	cases := []struct {
		in     string
		ok     bool
		prefix string
		name   string
	}{
		{"mass::mu", true, "mass", "mu"},
		{"B->Dlnu::BR", true, "B->Dlnu", "BR"},
		{"a", true, "", "a"},
		{"decay-constant::K_d", true, "decay-constant", "K_d"},
		{"", false, "", ""},
		{"::mu", false, "", ""},
		{"mass::", false, "", ""},
		{"mass:: mu", false, "", ""},
		{"mass mu", false, "", ""},
		{"mass::mu@q2=s", false, "", ""},
		{"<<mass::mu>>", false, "", ""},
		{"mass::mu\t", false, "", ""},
	}
	for _, c := range cases {
		n, err := observable.NewQualifiedName(c.in)
		if c.ok != (err == nil) {
			t.Errorf("NewQualifiedName(%q): ok=%v, err=%v", c.in, c.ok, err)
			continue
		}
		if !c.ok {
			if !n.IsZero() {
				t.Errorf("NewQualifiedName(%q): invalid input produced %q", c.in, n)
			}
			continue
		}
		if n.Prefix() != c.prefix || n.Name() != c.name {
			t.Errorf("NewQualifiedName(%q): parts %q/%q, want %q/%q", c.in, n.Prefix(), n.Name(), c.prefix, c.name)
		}
		if n.String() != c.in {
			t.Errorf("NewQualifiedName(%q): String() = %q", c.in, n)
		}
	}
}

func TestMustQualifiedNamePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic for an invalid name")
		}
	}()
	observable.MustQualifiedName("::broken")
}
