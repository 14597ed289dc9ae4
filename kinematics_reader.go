package observable

import "sort"

// collectKinematicVariables walks a tree post-order and returns the union
// of the kinematic variable names its references depend on, sorted and
// duplicate-free. It works on bound and unbound trees alike: bound leaves
// report their own dependencies, unbound references are resolved against
// the registry. Bare parameter references contribute nothing.
func collectKinematicVariables(n *node, reg *Observables) []string {
	seen := make(map[string]bool)
	readKinematics(n, reg, seen)
	kv := make([]string, 0, len(seen))
	for v := range seen {
		kv = append(kv, v)
	}
	sort.Strings(kv)
	return kv
}

func readKinematics(n *node, reg *Observables, seen map[string]bool) {
	if n == nil {
		return
	}
	switch n.kind {
	case nodeObs:
		for _, v := range n.obs.KinematicVariables() {
			seen[v] = true
		}
	case nodeRef:
		entry := reg.Entry(n.name)
		if entry == nil {
			return
		}
		rename := make(map[string]string, len(n.aliases))
		for _, a := range n.aliases {
			rename[a.From] = a.To
		}
		for _, v := range entry.KinematicVariables() {
			if to, ok := rename[v]; ok {
				v = to
			}
			seen[v] = true
		}
	}
	readKinematics(n.left, reg, seen)
	readKinematics(n.right, reg, seen)
}
