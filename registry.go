package observable

import (
	"github.com/pkg/errors"
)

// Observables is the registry mapping qualified names to observable
// entries. Expression observables registered with Insert resolve their
// references against the same registry they live in.
type Observables struct {
	entries map[QualifiedName]ObservableEntry
}

// NewObservables returns an empty registry.
func NewObservables() *Observables {
	return &Observables{entries: make(map[QualifiedName]ObservableEntry)}
}

// Add registers a ready-made entry, e.g. a plain formula entry from
// NewEntry. Registering a name twice is an error.
func (r *Observables) Add(entry ObservableEntry) error {
	name := entry.Name()
	if _, ok := r.entries[name]; ok {
		return errors.Errorf("observable %q is already registered", name)
	}
	r.entries[name] = entry
	return nil
}

// Insert registers an expression observable from its source text. The
// text is parsed immediately: on malformed input Insert fails with a
// ParsingError and the registry is left unchanged. forced options
// override whatever options are supplied when an observable is made from
// the entry.
func (r *Observables) Insert(name QualifiedName, latex string, forced Options, expression string) error {
	if _, ok := r.entries[name]; ok {
		return errors.Errorf("observable %q is already registered", name)
	}
	expr, err := ParseString(expression)
	if err != nil {
		return errors.Wrapf(err, "parsing expression for %q", name)
	}
	entry, err := newExpressionObservableEntry(name, latex, Undefined, expr, forced, r)
	if err != nil {
		return err
	}
	r.entries[name] = entry
	return nil
}

// Entry returns the entry registered under name, or nil.
func (r *Observables) Entry(name QualifiedName) ObservableEntry {
	return r.entries[name]
}

// Has reports whether an entry is registered under name.
func (r *Observables) Has(name QualifiedName) bool {
	_, ok := r.entries[name]
	return ok
}

// Names returns the registered names in sorted order.
func (r *Observables) Names() []QualifiedName {
	v := make([]QualifiedName, 0, len(r.entries))
	for k := range r.entries {
		v = append(v, k)
	}
	sortQualifiedNames(v)
	return v
}

// Make constructs an observable for a registered name bound to the given
// context. It fails with UnknownObservableError if the name is not
// registered.
func (r *Observables) Make(name QualifiedName, p *Parameters, k *Kinematics, o Options) (Observable, error) {
	entry := r.entries[name]
	if entry == nil {
		return nil, &UnknownObservableError{Name: name}
	}
	return entry.Make(p, k, o)
}

// UnknownObservableError indicates a lookup for a name that is not
// registered.
type UnknownObservableError struct {
	// Name is the name that was looked up.
	Name QualifiedName
}

func (err *UnknownObservableError) Error() string {
	return "unknown observable: " + err.Name.String()
}
