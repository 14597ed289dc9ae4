package observable

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression. A tree is
// either fully unbound (reference leaves hold qualified names) or fully
// bound (reference leaves hold live observables); binding is an
// all-or-nothing rewrite, so mixed trees never occur.
type node struct {
	kind nodeKind

	// num is the literal value of a nodeNum; text is its source form.
	num  float64
	text string

	// name and aliases describe a nodeRef.
	name    QualifiedName
	aliases []kinAlias

	// obs is the observable wrapped by a nodeObs.
	obs Observable

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // push num
	nodeRef // unbound reference to a named observable or parameter
	nodeObs // bound observable leaf

	nodeNeg // evaluate left, then negate
	nodeNop // evaluate left
	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeRef:
		return "Ref"
	case nodeObs:
		return "Obs"
	case nodeNeg:
		return "Neg"
	case nodeNop:
		return "Nop"
	case nodeAdd:
		return "Add"
	case nodeSub:
		return "Sub"
	case nodeMul:
		return "Mul"
	case nodeDiv:
		return "Div"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// kinAlias is one from=to pair of a kinematics override: the referenced
// observable reads the outer kinematics slot To wherever it declares From.
type kinAlias struct {
	From string
	To   string
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *node) fmt(b *strings.Builder) {
	b.WriteByte('(')
	defer b.WriteByte(')')
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b)
		}
		b.WriteByte('$')
	case nodeNum:
		if n.text != "" {
			b.WriteString(n.text)
		} else {
			b.WriteString(strconv.FormatFloat(n.num, 'g', -1, 64))
		}
	case nodeRef:
		b.WriteString("<<")
		b.WriteString(n.name.String())
		n.fmtaliases(b)
		b.WriteString(">>")
	case nodeObs:
		b.WriteString("<<")
		b.WriteString(n.obs.Name().String())
		b.WriteString(">>")
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b)
	case nodeNop:
		b.WriteByte('+')
		n.left.fmt(b)
	case nodeAdd:
		n.left.fmt(b)
		b.WriteString(" + ")
		n.right.fmt(b)
	case nodeSub:
		n.left.fmt(b)
		b.WriteString(" - ")
		n.right.fmt(b)
	case nodeMul:
		n.left.fmt(b)
		b.WriteString(" * ")
		n.right.fmt(b)
	case nodeDiv:
		n.left.fmt(b)
		b.WriteString(" / ")
		n.right.fmt(b)
	default:
		panic("observable: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

func (n *node) fmtaliases(b *strings.Builder) {
	if len(n.aliases) == 0 {
		return
	}
	b.WriteByte('@')
	for i, a := range n.aliases {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(a.From)
		b.WriteByte('=')
		b.WriteString(a.To)
	}
}

// Expr is a parsed, unbound expression. Its reference leaves hold
// qualified names; it cannot be evaluated until it is bound against a
// context, which every bind does on a fresh copy of the tree.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// String renders the expression with every term bracketed.
func (e *Expr) String() string {
	return e.n.String()
}

// References returns the qualified names referenced by the expression, in
// sorted order without duplicates.
func (e *Expr) References() []QualifiedName {
	seen := make(map[QualifiedName]bool)
	e.n.refs(seen)
	v := make([]QualifiedName, 0, len(seen))
	for k := range seen {
		v = append(v, k)
	}
	sortQualifiedNames(v)
	return v
}

func (n *node) refs(seen map[QualifiedName]bool) {
	if n == nil {
		return
	}
	if n.kind == nodeRef {
		seen[n.name] = true
	}
	if n.kind == nodeObs {
		seen[n.obs.Name()] = true
	}
	n.left.refs(seen)
	n.right.refs(seen)
}

func sortQualifiedNames(v []QualifiedName) {
	for i := 1; i < len(v); i++ {
		for j := i; j > 0 && v[j].full < v[j-1].full; j-- {
			v[j], v[j-1] = v[j-1], v[j]
		}
	}
}

// BoundExpr is an expression whose references have been resolved to live
// observables. It is produced only by binding or cloning, which replace
// every reference, so evaluating it cannot encounter an unbound leaf.
type BoundExpr struct {
	n *node
}

// String renders the expression with every term bracketed. Bound
// observable leaves render as references by name.
func (e *BoundExpr) String() string {
	return e.n.String()
}
