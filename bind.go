package observable

import (
	"github.com/pkg/errors"
)

// bindNode rewrites an expression tree post-order, replacing every
// reference leaf with a bound observable. References resolve first
// against registered observables, then against bare parameters. The
// rewrite is all-or-nothing: on failure no partially bound tree escapes.
func bindNode(n *node, p *Parameters, k *Kinematics, o Options, reg *Observables) (*node, error) {
	if n == nil {
		return nil, nil
	}
	switch n.kind {
	case nodeNum:
		return &node{kind: nodeNum, num: n.num, text: n.text}, nil
	case nodeObs:
		// Already bound; pass the leaf through unchanged, as when a
		// cloned tree is rewrapped.
		return &node{kind: nodeObs, obs: n.obs}, nil
	case nodeRef:
		obs, err := bindReference(n, p, k, o, reg)
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeObs, obs: obs}, nil
	case nodeNeg, nodeNop:
		left, err := bindNode(n.left, p, k, o, reg)
		if err != nil {
			return nil, err
		}
		return &node{kind: n.kind, left: left}, nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv:
		left, err := bindNode(n.left, p, k, o, reg)
		if err != nil {
			return nil, err
		}
		right, err := bindNode(n.right, p, k, o, reg)
		if err != nil {
			return nil, err
		}
		return &node{kind: n.kind, left: left, right: right}, nil
	default:
		panic("observable: invalid AST node " + n.kind.String())
	}
}

func bindReference(n *node, p *Parameters, k *Kinematics, o Options, reg *Observables) (Observable, error) {
	if entry := reg.Entry(n.name); entry != nil {
		kin := k
		var rename map[string]string
		if len(n.aliases) > 0 {
			rename = make(map[string]string, len(n.aliases))
			for _, a := range n.aliases {
				rename[a.From] = a.To
			}
			// Declare the slots in the outer registry first so that the
			// view shares cells with it rather than owning private ones.
			for _, v := range entry.KinematicVariables() {
				t := v
				if to, ok := rename[v]; ok {
					t = to
				}
				if !k.Has(t) {
					k.Declare(t, 0)
				}
			}
			kin = k.AliasView(rename)
		}
		obs, err := entry.Make(p, kin, o)
		if err != nil {
			return nil, errors.Wrapf(err, "binding reference <<%s>>", n.name)
		}
		if rename != nil {
			obs = &aliasedObservable{inner: obs, rename: rename}
		}
		return obs, nil
	}
	if p.Has(n.name) {
		if len(n.aliases) > 0 {
			return nil, errors.Errorf("binding reference <<%s>>: parameter references take no kinematics override", n.name)
		}
		return &parameterObservable{name: n.name, p: p, k: k}, nil
	}
	return nil, errors.Wrapf(&UnknownObservableError{Name: n.name}, "binding reference <<%s>>", n.name)
}
