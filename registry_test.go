package observable_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pkg/errors"

	observable "github.com/heplab/observable"
)

func TestInsertRejectsDuplicates(t *testing.T) {
	reg := observable.NewObservables()
	name := observable.MustQualifiedName("test::r")
	if err := reg.Insert(name, "", observable.Options{}, "1 + 1"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := reg.Insert(name, "", observable.Options{}, "2 + 2"); err == nil {
		t.Error("second insert under the same name succeeded")
	}
	if err := reg.Add(observable.NewEntry(name, "", observable.None, nil, func(*observable.Parameters, *observable.Kinematics, observable.Options) float64 { return 0 })); err == nil {
		t.Error("add under an inserted name succeeded")
	}
}

func TestInsertAtomicOnParseError(t *testing.T) {
	reg := observable.NewObservables()
	name := observable.MustQualifiedName("test::broken")
	err := reg.Insert(name, "", observable.Options{}, "1 + * 2")
	if err == nil {
		t.Fatal("malformed expression registered")
	}
	var perr observable.ParsingError
	if !errors.As(err, &perr) {
		t.Errorf("error is not a ParsingError: %v", err)
	}
	if reg.Has(name) {
		t.Error("registry holds an entry after a failed insert")
	}
	// The name stays free for a corrected registration.
	if err := reg.Insert(name, "", observable.Options{}, "1 + 2"); err != nil {
		t.Errorf("re-insert after failure: %v", err)
	}
}

func TestNamesSorted(t *testing.T) {
	reg := observable.NewObservables()
	for _, s := range []string{"z::last", "a::first", "m::middle"} {
		if err := reg.Insert(observable.MustQualifiedName(s), "", observable.Options{}, "1"); err != nil {
			t.Fatalf("insert %q: %v", s, err)
		}
	}
	got := reg.Names()
	want := []string{"a::first", "m::middle", "z::last"}
	if len(got) != len(want) {
		t.Fatalf("want %d names, got %v", len(want), got)
	}
	for i, n := range got {
		if n.String() != want[i] {
			t.Errorf("names[%d]: want %q, got %q", i, want[i], n)
		}
	}
}

func TestMakeUnknown(t *testing.T) {
	reg := observable.NewObservables()
	_, err := reg.Make(observable.MustQualifiedName("no::such"), observable.NewParameters(), observable.NewKinematics(), observable.Options{})
	var uerr *observable.UnknownObservableError
	if !errors.As(err, &uerr) {
		t.Fatalf("want UnknownObservableError, got %v", err)
	}
	if uerr.Name.String() != "no::such" {
		t.Errorf("error names %q", uerr.Name)
	}
}

func TestDescribe(t *testing.T) {
	reg := observable.NewObservables()
	name := observable.MustQualifiedName("test::r")
	if err := reg.Insert(name, "", observable.Options{}, "1 + 1"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	var b strings.Builder
	reg.Entry(name).Describe(&b)
	if got := b.String(); got != "    type: expression observable\n" {
		t.Errorf("describe wrote %q", got)
	}
}

func TestEntryMetadataStable(t *testing.T) {
	// Registering the same expression text twice under different names
	// yields entries with identical derived metadata.
	reg := observable.NewObservables()
	if err := reg.Add(observable.NewEntry(observable.MustQualifiedName("test::w"), "", observable.GeV, []string{"q2"},
		func(_ *observable.Parameters, k *observable.Kinematics, _ observable.Options) float64 { return k.Value("q2") })); err != nil {
		t.Fatalf("add: %v", err)
	}
	const src = "<<test::w>> + <<test::w@q2=s>>"
	a := observable.MustQualifiedName("test::a")
	b := observable.MustQualifiedName("test::b")
	if err := reg.Insert(a, "", observable.Options{}, src); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := reg.Insert(b, "", observable.Options{}, src); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if !reflect.DeepEqual(reg.Entry(a).KinematicVariables(), reg.Entry(b).KinematicVariables()) {
		t.Errorf("same text, different kinematics: %v vs %v",
			reg.Entry(a).KinematicVariables(), reg.Entry(b).KinematicVariables())
	}
	if kv := reg.Entry(a).KinematicVariables(); !reflect.DeepEqual(kv, []string{"q2", "s"}) {
		t.Errorf("kinematics: want [q2 s], got %v", kv)
	}
}
