package observable

import "sort"

// Parameters is a registry of named scalar inputs, e.g. masses and
// couplings. A Parameters value is held by pointer: every holder of the
// same *Parameters sees every mutation. Clone produces an independent
// copy with the same current values and no further sharing.
//
// Parameters is not safe for concurrent mutation. Callers running
// evaluations in parallel give each worker its own clone.
type Parameters struct {
	cells map[QualifiedName]*float64
}

// NewParameters returns an empty parameter registry.
func NewParameters() *Parameters {
	return &Parameters{cells: make(map[QualifiedName]*float64)}
}

// Declare sets the value of a parameter, creating it if necessary.
func (p *Parameters) Declare(name QualifiedName, value float64) {
	if c := p.cells[name]; c != nil {
		*c = value
		return
	}
	v := value
	p.cells[name] = &v
}

// Set is Declare. It exists so that registries read like assignment at
// call sites that update existing parameters.
func (p *Parameters) Set(name QualifiedName, value float64) {
	p.Declare(name, value)
}

// Get returns the value of a parameter and whether it is declared.
func (p *Parameters) Get(name QualifiedName) (float64, bool) {
	c := p.cells[name]
	if c == nil {
		return 0, false
	}
	return *c, true
}

// Has reports whether a parameter is declared.
func (p *Parameters) Has(name QualifiedName) bool {
	return p.cells[name] != nil
}

// Value returns the value of a parameter. Panics with UnknownNameError if
// the parameter is not declared.
func (p *Parameters) Value(name QualifiedName) float64 {
	c := p.cells[name]
	if c == nil {
		panic(&UnknownNameError{Kind: "parameter", Name: name.String()})
	}
	return *c
}

// Clone returns an independent copy of the registry with identical current
// values. Keys that share a storage cell keep sharing one in the copy.
func (p *Parameters) Clone() *Parameters {
	n := &Parameters{cells: make(map[QualifiedName]*float64, len(p.cells))}
	moved := make(map[*float64]*float64, len(p.cells))
	for k, c := range p.cells {
		d := moved[c]
		if d == nil {
			v := *c
			d = &v
			moved[c] = d
		}
		n.cells[k] = d
	}
	return n
}

// Names returns the declared parameter names in sorted order.
func (p *Parameters) Names() []QualifiedName {
	v := make([]QualifiedName, 0, len(p.cells))
	for k := range p.cells {
		v = append(v, k)
	}
	sort.Slice(v, func(i, j int) bool { return v[i].full < v[j].full })
	return v
}

// Kinematics is a registry of named phase-space variables, e.g. "s" or
// "c_theta_l", scoped to one observable evaluation. It has the same
// sharing contract as Parameters: shared by pointer unless cloned.
type Kinematics struct {
	cells map[string]*float64
}

// NewKinematics returns an empty kinematics registry.
func NewKinematics() *Kinematics {
	return &Kinematics{cells: make(map[string]*float64)}
}

// Declare sets the value of a kinematic variable, creating it if necessary.
func (k *Kinematics) Declare(name string, value float64) {
	if c := k.cells[name]; c != nil {
		*c = value
		return
	}
	v := value
	k.cells[name] = &v
}

// Set is Declare.
func (k *Kinematics) Set(name string, value float64) {
	k.Declare(name, value)
}

// Get returns the value of a kinematic variable and whether it is declared.
func (k *Kinematics) Get(name string) (float64, bool) {
	c := k.cells[name]
	if c == nil {
		return 0, false
	}
	return *c, true
}

// Has reports whether a kinematic variable is declared.
func (k *Kinematics) Has(name string) bool {
	return k.cells[name] != nil
}

// Value returns the value of a kinematic variable. Panics with
// UnknownNameError if the variable is not declared.
func (k *Kinematics) Value(name string) float64 {
	c := k.cells[name]
	if c == nil {
		panic(&UnknownNameError{Kind: "kinematic variable", Name: name})
	}
	return *c
}

// Clone returns an independent copy of the registry with identical current
// values. Aliased keys keep sharing one cell in the copy.
func (k *Kinematics) Clone() *Kinematics {
	n := &Kinematics{cells: make(map[string]*float64, len(k.cells))}
	moved := make(map[*float64]*float64, len(k.cells))
	for name, c := range k.cells {
		d := moved[c]
		if d == nil {
			v := *c
			d = &v
			moved[c] = d
		}
		n.cells[name] = d
	}
	return n
}

// AliasView returns a registry that shares every cell with k and
// additionally maps each rename key to the cell of its target, declaring
// the target in k with value zero if it is absent. An observable
// constructed against the view reads and writes k's slots, with the
// renamed variables redirected.
func (k *Kinematics) AliasView(rename map[string]string) *Kinematics {
	n := &Kinematics{cells: make(map[string]*float64, len(k.cells)+len(rename))}
	for name, c := range k.cells {
		n.cells[name] = c
	}
	for from, to := range rename {
		if k.cells[to] == nil {
			k.Declare(to, 0)
		}
		n.cells[from] = k.cells[to]
	}
	return n
}

// Names returns the declared kinematic variable names in sorted order.
func (k *Kinematics) Names() []string {
	v := make([]string, 0, len(k.cells))
	for name := range k.cells {
		v = append(v, name)
	}
	sort.Strings(v)
	return v
}

// UnknownNameError is the panic value raised when a registry is read
// through Value for a name that was never declared. It signals a defect in
// the calling code rather than a user input problem.
type UnknownNameError struct {
	// Kind is "parameter" or "kinematic variable".
	Kind string
	// Name is the undeclared name.
	Name string
}

func (err *UnknownNameError) Error() string {
	return "unknown " + err.Kind + ": " + err.Name
}
