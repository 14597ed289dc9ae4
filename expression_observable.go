package observable

import (
	"fmt"
	"io"
)

// ExpressionObservable is an observable composed arithmetically from
// other observables, e.g. a ratio of two masses. It owns its bound
// expression tree exclusively: no two ExpressionObservables share tree
// nodes, even when minted from the same entry.
type ExpressionObservable struct {
	name       QualifiedName
	parameters *Parameters
	kinematics *Kinematics
	options    Options
	expression *BoundExpr
}

// newExpressionObservable binds an unbound expression against the given
// context. It fails when a reference cannot be resolved; an empty
// expression panics with InternalError since only a caller bypassing the
// parser can produce one.
func newExpressionObservable(name QualifiedName, p *Parameters, k *Kinematics, o Options, expr *Expr, reg *Observables) (*ExpressionObservable, error) {
	if expr == nil || expr.n == nil {
		panic(&InternalError{Msg: "empty expression encountered in ExpressionObservable"})
	}
	n, err := bindNode(expr.n, p, k, o, reg)
	if err != nil {
		return nil, err
	}
	return &ExpressionObservable{
		name:       name,
		parameters: p,
		kinematics: k,
		options:    o,
		expression: &BoundExpr{n: n},
	}, nil
}

// Name returns the qualified name of the observable.
func (x *ExpressionObservable) Name() QualifiedName {
	return x.name
}

// Evaluate computes the current value of the expression. Panics with
// InternalError if the expression is empty.
func (x *ExpressionObservable) Evaluate() float64 {
	if x.expression == nil {
		panic(&InternalError{Msg: "empty expression encountered in ExpressionObservable.Evaluate"})
	}
	return x.expression.Evaluate()
}

// Clone rebuilds the observable against independent copies of its
// parameters and kinematics. The result evaluates to the same value until
// either context is mutated.
func (x *ExpressionObservable) Clone() Observable {
	return x.CloneWithContext(x.parameters.Clone(), x.kinematics.Clone())
}

// CloneWithParameters rebuilds the observable against the given
// parameters and an independent copy of its kinematics.
func (x *ExpressionObservable) CloneWithParameters(p *Parameters) Observable {
	return x.CloneWithContext(p, x.kinematics.Clone())
}

// CloneWithContext rebuilds the observable against the given registries
// without re-parsing or re-binding: every observable leaf is cloned in
// place.
func (x *ExpressionObservable) CloneWithContext(p *Parameters, k *Kinematics) Observable {
	n := cloneNode(x.expression.n, p, k)
	return &ExpressionObservable{
		name:       x.name,
		parameters: p,
		kinematics: k,
		options:    x.options,
		expression: &BoundExpr{n: n},
	}
}

// KinematicVariables returns the kinematic variable names the expression
// depends on transitively, sorted and duplicate-free.
func (x *ExpressionObservable) KinematicVariables() []string {
	return collectKinematicVariables(x.expression.n, nil)
}

// Parameters returns the bound parameter registry.
func (x *ExpressionObservable) Parameters() *Parameters { return x.parameters }

// Kinematics returns the bound kinematics registry.
func (x *ExpressionObservable) Kinematics() *Kinematics { return x.kinematics }

// Options returns the options the observable was made with, including
// forced options from its entry.
func (x *ExpressionObservable) Options() Options { return x.options }

// Expression returns the bound expression tree.
func (x *ExpressionObservable) Expression() *BoundExpr { return x.expression }

// ExpressionObservableEntry is the registry-held template for an
// expression observable. The source text is parsed exactly once, at
// registration; every Make binds the stored tree afresh, so instances
// never share state.
type ExpressionObservableEntry struct {
	name               QualifiedName
	latex              string
	unit               Unit
	expression         *Expr
	kinematicVariables []string
	forcedOptions      Options
	observables        *Observables
}

func newExpressionObservableEntry(name QualifiedName, latex string, unit Unit, expr *Expr, forced Options, reg *Observables) (*ExpressionObservableEntry, error) {
	if expr == nil || expr.n == nil {
		panic(&InternalError{Msg: "empty expression encountered in ExpressionObservableEntry"})
	}
	return &ExpressionObservableEntry{
		name:               name,
		latex:              latex,
		unit:               unit,
		expression:         expr,
		kinematicVariables: collectKinematicVariables(expr.n, reg),
		forcedOptions:      forced,
		observables:        reg,
	}, nil
}

// Name returns the qualified name of the entry.
func (e *ExpressionObservableEntry) Name() QualifiedName { return e.name }

// Latex returns the display label of the entry.
func (e *ExpressionObservableEntry) Latex() string { return e.latex }

// Unit returns the unit tag of the entry.
func (e *ExpressionObservableEntry) Unit() Unit { return e.unit }

// Expression returns the stored unbound expression.
func (e *ExpressionObservableEntry) Expression() *Expr { return e.expression }

// KinematicVariables returns the kinematic variable names the expression
// depends on, sorted and duplicate-free. Repeated registration of the
// same text yields identical metadata.
func (e *ExpressionObservableEntry) KinematicVariables() []string {
	return append([]string(nil), e.kinematicVariables...)
}

// Make binds the stored expression against the given context and returns
// a new ExpressionObservable. The supplied options are merged with the
// entry's forced options, forced entries winning. Lookup failures from
// binding propagate.
func (e *ExpressionObservableEntry) Make(p *Parameters, k *Kinematics, o Options) (Observable, error) {
	if e.expression == nil || e.expression.n == nil {
		panic(&InternalError{Msg: "empty expression encountered in ExpressionObservableEntry.Make"})
	}
	return newExpressionObservable(e.name, p, k, o.Merge(e.forcedOptions), e.expression, e.observables)
}

// Describe writes the diagnostic description line identifying the entry
// kind.
func (e *ExpressionObservableEntry) Describe(w io.Writer) {
	fmt.Fprintln(w, "    type: expression observable")
}
