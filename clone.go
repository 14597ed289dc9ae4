package observable

// cloneNode rebuilds a bound expression tree against a new parameter and
// kinematics context in a post-order rewrite. Literals are copied by
// value; observable leaves are cloned against the new context. Cloning is
// total for well-formed bound trees and never re-parses text.
func cloneNode(n *node, p *Parameters, k *Kinematics) *node {
	if n == nil {
		return nil
	}
	switch n.kind {
	case nodeNum:
		return &node{kind: nodeNum, num: n.num, text: n.text}
	case nodeObs:
		return &node{kind: nodeObs, obs: n.obs.CloneWithContext(p, k)}
	case nodeNeg, nodeNop:
		return &node{kind: n.kind, left: cloneNode(n.left, p, k)}
	case nodeAdd, nodeSub, nodeMul, nodeDiv:
		return &node{
			kind:  n.kind,
			left:  cloneNode(n.left, p, k),
			right: cloneNode(n.right, p, k),
		}
	case nodeRef:
		panic(&InternalError{Msg: "clone on unbound reference <<" + n.name.String() + ">>"})
	default:
		panic("observable: invalid AST node " + n.kind.String())
	}
}
