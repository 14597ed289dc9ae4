package observable

import (
	"fmt"
	"io"
	"sort"
)

// An Observable is a named, numerically evaluable quantity given a
// parameter/kinematics/options context. Concrete kinds are plain
// (formula-backed) observables, bare parameters, and expression
// observables; all of them satisfy this one capability set.
//
// An Observable owns its bound context references. Evaluate is safe to
// call concurrently only on independent observables: clones do not share
// trees, and cloning with fresh registries removes all shared state.
type Observable interface {
	// Name returns the qualified name of the observable.
	Name() QualifiedName
	// Evaluate computes the current value against the bound context.
	// Arithmetic follows IEEE 754; division by zero yields Inf or NaN.
	Evaluate() float64
	// Clone rebuilds the observable against independent copies of its
	// parameters and kinematics.
	Clone() Observable
	// CloneWithParameters rebuilds the observable against the given
	// parameters and an independent copy of its kinematics.
	CloneWithParameters(p *Parameters) Observable
	// CloneWithContext rebuilds the observable against the given
	// parameters and kinematics, preserving its name and options.
	CloneWithContext(p *Parameters, k *Kinematics) Observable
	// KinematicVariables returns the kinematic variable names the
	// observable depends on, sorted and duplicate-free.
	KinematicVariables() []string

	// Parameters, Kinematics, and Options expose the bound context.
	Parameters() *Parameters
	Kinematics() *Kinematics
	Options() Options
}

// An ObservableEntry is a registered template from which observables are
// minted on demand. Entries are immutable after registration.
type ObservableEntry interface {
	Name() QualifiedName
	// Latex returns the display label of the entry.
	Latex() string
	// Unit returns the physical unit tag of the entry.
	Unit() Unit
	// KinematicVariables returns the kinematic variable names observables
	// made from this entry depend on, sorted and duplicate-free.
	KinematicVariables() []string
	// Make constructs a new observable bound to the given context.
	Make(p *Parameters, k *Kinematics, o Options) (Observable, error)
	// Describe writes a diagnostic description of the entry kind.
	Describe(w io.Writer)
}

// EvalFunc is the formula of a plain observable.
type EvalFunc func(p *Parameters, k *Kinematics, o Options) float64

// NewEntry wraps a formula as an ObservableEntry. kinematicVariables
// names the phase-space variables the formula reads; Make declares any of
// them missing from the supplied kinematics with value zero.
func NewEntry(name QualifiedName, latex string, unit Unit, kinematicVariables []string, fn EvalFunc) ObservableEntry {
	kv := append([]string(nil), kinematicVariables...)
	sort.Strings(kv)
	return &plainEntry{name: name, latex: latex, unit: unit, kvars: kv, fn: fn}
}

type plainEntry struct {
	name  QualifiedName
	latex string
	unit  Unit
	kvars []string
	fn    EvalFunc
}

func (e *plainEntry) Name() QualifiedName          { return e.name }
func (e *plainEntry) Latex() string                { return e.latex }
func (e *plainEntry) Unit() Unit                   { return e.unit }
func (e *plainEntry) KinematicVariables() []string { return append([]string(nil), e.kvars...) }

func (e *plainEntry) Make(p *Parameters, k *Kinematics, o Options) (Observable, error) {
	for _, v := range e.kvars {
		if !k.Has(v) {
			k.Declare(v, 0)
		}
	}
	return &plainObservable{entry: e, p: p, k: k, o: o}, nil
}

func (e *plainEntry) Describe(w io.Writer) {
	fmt.Fprintln(w, "    type: plain observable")
}

type plainObservable struct {
	entry *plainEntry
	p     *Parameters
	k     *Kinematics
	o     Options
}

func (o *plainObservable) Name() QualifiedName          { return o.entry.name }
func (o *plainObservable) Evaluate() float64            { return o.entry.fn(o.p, o.k, o.o) }
func (o *plainObservable) KinematicVariables() []string { return o.entry.KinematicVariables() }
func (o *plainObservable) Parameters() *Parameters      { return o.p }
func (o *plainObservable) Kinematics() *Kinematics      { return o.k }
func (o *plainObservable) Options() Options             { return o.o }

func (o *plainObservable) Clone() Observable {
	return o.CloneWithContext(o.p.Clone(), o.k.Clone())
}

func (o *plainObservable) CloneWithParameters(p *Parameters) Observable {
	return o.CloneWithContext(p, o.k.Clone())
}

func (o *plainObservable) CloneWithContext(p *Parameters, k *Kinematics) Observable {
	return &plainObservable{entry: o.entry, p: p, k: k, o: o.o}
}

// parameterObservable reads a single parameter from the shared registry.
// It is what a reference binds to when its name is a bare parameter
// rather than a registered observable.
type parameterObservable struct {
	name QualifiedName
	p    *Parameters
	k    *Kinematics
}

func (o *parameterObservable) Name() QualifiedName          { return o.name }
func (o *parameterObservable) Evaluate() float64            { return o.p.Value(o.name) }
func (o *parameterObservable) KinematicVariables() []string { return nil }
func (o *parameterObservable) Parameters() *Parameters      { return o.p }
func (o *parameterObservable) Kinematics() *Kinematics      { return o.k }
func (o *parameterObservable) Options() Options             { return Options{} }

func (o *parameterObservable) Clone() Observable {
	return o.CloneWithContext(o.p.Clone(), o.k.Clone())
}

func (o *parameterObservable) CloneWithParameters(p *Parameters) Observable {
	return o.CloneWithContext(p, o.k.Clone())
}

func (o *parameterObservable) CloneWithContext(p *Parameters, k *Kinematics) Observable {
	return &parameterObservable{name: o.name, p: p, k: k}
}

// aliasedObservable renames the kinematic dependencies of a wrapped
// observable per a <<name@from=to>> override. The wrapped observable is
// constructed against an AliasView, so it already reads the outer slots;
// the wrapper's job is to report the outer names and to re-derive the
// view when cloned against a new kinematics.
type aliasedObservable struct {
	inner  Observable
	rename map[string]string
}

func (o *aliasedObservable) Name() QualifiedName     { return o.inner.Name() }
func (o *aliasedObservable) Evaluate() float64       { return o.inner.Evaluate() }
func (o *aliasedObservable) Parameters() *Parameters { return o.inner.Parameters() }
func (o *aliasedObservable) Kinematics() *Kinematics { return o.inner.Kinematics() }
func (o *aliasedObservable) Options() Options        { return o.inner.Options() }

func (o *aliasedObservable) KinematicVariables() []string {
	seen := make(map[string]bool)
	for _, v := range o.inner.KinematicVariables() {
		if to, ok := o.rename[v]; ok {
			v = to
		}
		seen[v] = true
	}
	kv := make([]string, 0, len(seen))
	for v := range seen {
		kv = append(kv, v)
	}
	sort.Strings(kv)
	return kv
}

func (o *aliasedObservable) Clone() Observable {
	// Cloning the inner context preserves the aliased cell structure.
	return &aliasedObservable{inner: o.inner.Clone(), rename: o.rename}
}

func (o *aliasedObservable) CloneWithParameters(p *Parameters) Observable {
	return &aliasedObservable{inner: o.inner.CloneWithParameters(p), rename: o.rename}
}

func (o *aliasedObservable) CloneWithContext(p *Parameters, k *Kinematics) Observable {
	return &aliasedObservable{inner: o.inner.CloneWithContext(p, k.AliasView(o.rename)), rename: o.rename}
}
