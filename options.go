package observable

import (
	"sort"
	"strings"
)

// Options is an immutable string-to-string configuration map selecting
// model or formula variants, e.g. {"l": "e", "model": "SM"}. The zero
// Options is empty and usable.
type Options struct {
	m map[string]string
}

// NewOptions copies kv into an Options value. Later changes to kv do not
// affect the result.
func NewOptions(kv map[string]string) Options {
	if len(kv) == 0 {
		return Options{}
	}
	m := make(map[string]string, len(kv))
	for k, v := range kv {
		m[k] = v
	}
	return Options{m: m}
}

// Get returns the value of an option and whether it is set.
func (o Options) Get(name string) (string, bool) {
	v, ok := o.m[name]
	return v, ok
}

// Has reports whether an option is set.
func (o Options) Has(name string) bool {
	_, ok := o.m[name]
	return ok
}

// Len returns the number of options set.
func (o Options) Len() int {
	return len(o.m)
}

// Merge combines o with forced options. Entries in forced win over entries
// in o. Neither input is modified.
func (o Options) Merge(forced Options) Options {
	if len(forced.m) == 0 {
		return o
	}
	if len(o.m) == 0 {
		return forced
	}
	m := make(map[string]string, len(o.m)+len(forced.m))
	for k, v := range o.m {
		m[k] = v
	}
	for k, v := range forced.m {
		m[k] = v
	}
	return Options{m: m}
}

// Names returns the option names in sorted order.
func (o Options) Names() []string {
	v := make([]string, 0, len(o.m))
	for k := range o.m {
		v = append(v, k)
	}
	sort.Strings(v)
	return v
}

// String renders the options as "a=x,b=y" in sorted key order.
func (o Options) String() string {
	var b strings.Builder
	for i, k := range o.Names() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(o.m[k])
	}
	return b.String()
}
