package observable

import (
	"strings"

	"github.com/pkg/errors"
)

// A QualifiedName identifies a parameter or an observable. It usually has
// the form "prefix::name", e.g. "mass::mu" or "B->Dlnu::BR", though the
// prefix may be omitted. QualifiedName is a value type; two names are
// equal exactly when their canonical strings are.
type QualifiedName struct {
	full string
}

// NewQualifiedName validates s as a qualified name. If a "::" separator
// is present both parts must be non-empty; without one the whole of s is
// the name with an empty prefix. The name must not contain whitespace,
// the reference delimiters "<<" and ">>", or the kinematics override
// marker '@'.
func NewQualifiedName(s string) (QualifiedName, error) {
	if s == "" {
		return QualifiedName{}, errors.New("empty qualified name")
	}
	if i := strings.Index(s, "::"); i == 0 || (i > 0 && i+2 == len(s)) {
		return QualifiedName{}, errors.Errorf("qualified name %q has an empty part", s)
	}
	if strings.IndexFunc(s, isSpaceRune) >= 0 {
		return QualifiedName{}, errors.Errorf("qualified name %q contains whitespace", s)
	}
	if strings.Contains(s, "<<") || strings.Contains(s, ">>") || strings.ContainsRune(s, '@') {
		return QualifiedName{}, errors.Errorf("qualified name %q contains a reserved delimiter", s)
	}
	return QualifiedName{full: s}, nil
}

// MustQualifiedName is NewQualifiedName for names known to be valid.
// Panics otherwise.
func MustQualifiedName(s string) QualifiedName {
	n, err := NewQualifiedName(s)
	if err != nil {
		panic(err)
	}
	return n
}

func isSpaceRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Prefix returns the part before the "::" separator.
func (n QualifiedName) Prefix() string {
	i := strings.Index(n.full, "::")
	if i < 0 {
		return ""
	}
	return n.full[:i]
}

// Name returns the part after the "::" separator.
func (n QualifiedName) Name() string {
	i := strings.Index(n.full, "::")
	if i < 0 {
		return n.full
	}
	return n.full[i+2:]
}

func (n QualifiedName) String() string {
	return n.full
}

// IsZero reports whether n is the zero QualifiedName rather than a
// validated one.
func (n QualifiedName) IsZero() bool {
	return n.full == ""
}
