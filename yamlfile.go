package observable

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// yamlObservable is the on-disk shape of one observable definition.
type yamlObservable struct {
	Name       string            `yaml:"name"`
	Latex      string            `yaml:"latex"`
	Unit       string            `yaml:"unit"`
	Options    map[string]string `yaml:"options"`
	Expression string            `yaml:"expression"`
}

type yamlFile struct {
	Observables []yamlObservable `yaml:"observables"`
}

// LoadObservables reads expression observable definitions from a YAML
// file and inserts them into the registry. The file holds a list under
// the "observables" key; each item has a name, an optional latex label,
// optional forced options, and an expression. Each definition is
// validated and parsed before insertion, so a failing definition reports
// its name and leaves the registry without it.
func LoadObservables(path string, reg *Observables) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading observable definitions")
	}
	defs, err := parseObservableDefs(b)
	if err != nil {
		return errors.Wrapf(err, "loading %s", path)
	}
	for _, d := range defs {
		name, err := NewQualifiedName(d.Name)
		if err != nil {
			return errors.Wrapf(err, "loading %s", path)
		}
		unit, _ := ParseUnit(d.Unit)
		expr, err := ParseString(d.Expression)
		if err != nil {
			return errors.Wrapf(err, "loading %s: parsing expression for %q", path, d.Name)
		}
		entry, err := newExpressionObservableEntry(name, d.Latex, unit, expr, NewOptions(d.Options), reg)
		if err != nil {
			return errors.Wrapf(err, "loading %s", path)
		}
		if err := reg.Add(entry); err != nil {
			return errors.Wrapf(err, "loading %s", path)
		}
	}
	return nil
}

func parseObservableDefs(b []byte) ([]yamlObservable, error) {
	var f yamlFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, errors.Wrap(err, "unmarshalling definitions")
	}
	for i, d := range f.Observables {
		if d.Name == "" {
			return nil, errors.Errorf("definition %d has no name", i)
		}
		if d.Expression == "" {
			return nil, errors.Errorf("definition %q has no expression", d.Name)
		}
		if _, ok := ParseUnit(d.Unit); !ok {
			return nil, errors.Errorf("definition %q has unknown unit %q", d.Name, d.Unit)
		}
	}
	return f.Observables, nil
}
