package observable

// evalNode computes the value of a bound expression tree in a post-order
// fold. Arithmetic is plain float64: division by zero yields IEEE
// infinity or NaN instead of an error.
func evalNode(n *node) float64 {
	switch n.kind {
	case nodeNum:
		return n.num
	case nodeObs:
		return n.obs.Evaluate()
	case nodeNeg:
		return -evalNode(n.left)
	case nodeNop:
		return evalNode(n.left)
	case nodeAdd:
		return evalNode(n.left) + evalNode(n.right)
	case nodeSub:
		return evalNode(n.left) - evalNode(n.right)
	case nodeMul:
		return evalNode(n.left) * evalNode(n.right)
	case nodeDiv:
		return evalNode(n.left) / evalNode(n.right)
	case nodeRef:
		panic(&InternalError{Msg: "evaluate on unbound reference <<" + n.name.String() + ">>"})
	default:
		panic("observable: invalid AST node " + n.kind.String())
	}
}

// Evaluate computes the value of the expression. Panics with
// InternalError if the expression is empty, which can only happen when a
// caller bypasses the parser and binder.
func (e *BoundExpr) Evaluate() float64 {
	if e == nil || e.n == nil {
		panic(&InternalError{Msg: "empty expression encountered in Evaluate"})
	}
	return evalNode(e.n)
}

// InternalError is the panic value raised when an operation encounters an
// empty or unbound expression tree. It signals a programming defect in
// the calling code, not a user input problem, and is never raised for
// well-formed trees produced by Parse and binding.
type InternalError struct {
	// Msg describes the violated invariant.
	Msg string
}

func (err *InternalError) Error() string {
	return "internal error: " + err.Msg
}
