package observable_test

import (
	"testing"

	observable "github.com/heplab/observable"
)

func TestOptionsCopyOnConstruct(t *testing.T) {
	kv := map[string]string{"l": "e"}
	o := observable.NewOptions(kv)
	kv["l"] = "mu"
	if v, _ := o.Get("l"); v != "e" {
		t.Errorf("options track the source map: l = %q", v)
	}
}

func TestOptionsMerge(t *testing.T) {
	base := observable.NewOptions(map[string]string{"l": "e", "model": "SM"})
	forced := observable.NewOptions(map[string]string{"l": "tau"})
	m := base.Merge(forced)

	if v, _ := m.Get("l"); v != "tau" {
		t.Errorf("forced option does not win: l = %q", v)
	}
	if v, _ := m.Get("model"); v != "SM" {
		t.Errorf("unforced option lost: model = %q", v)
	}
	// Merge does not mutate either input.
	if v, _ := base.Get("l"); v != "e" {
		t.Errorf("merge mutated the base: l = %q", v)
	}
	if base.Len() != 2 || forced.Len() != 1 || m.Len() != 2 {
		t.Errorf("lengths: base %d, forced %d, merged %d", base.Len(), forced.Len(), m.Len())
	}
}

func TestOptionsMergeEmpty(t *testing.T) {
	o := observable.NewOptions(map[string]string{"l": "e"})
	if m := o.Merge(observable.Options{}); m.Len() != 1 {
		t.Errorf("merging empty forced: %v", m)
	}
	if m := (observable.Options{}).Merge(o); m.Len() != 1 {
		t.Errorf("merging into empty: %v", m)
	}
}

func TestOptionsString(t *testing.T) {
	cases := []struct {
		kv   map[string]string
		want string
	}{
		{nil, ""},
		{map[string]string{"l": "e"}, "l=e"},
		{map[string]string{"model": "SM", "l": "tau"}, "l=tau,model=SM"},
	}
	for _, c := range cases {
		if got := observable.NewOptions(c.kv).String(); got != c.want {
			t.Errorf("String(%v) = %q, want %q", c.kv, got, c.want)
		}
	}
}
