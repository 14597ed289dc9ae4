package observable_test

import (
	"testing"

	observable "github.com/heplab/observable"
)

func FuzzInsertAndEvaluate(f *testing.F) {
	f.Add("<<mass::mu>>")
	f.Add("<<mass::mu>> / <<mass::tau>>")
	f.Add("-<<mass::mu>> * (2 + 3e1)")
	f.Add("1/0")
	f.Fuzz(func(t *testing.T, s string) {
		reg := observable.NewObservables()
		name := observable.MustQualifiedName("fuzz::expr")
		if err := reg.Insert(name, "", observable.Options{}, s); err != nil {
			return
		}
		p := observable.NewParameters()
		p.Declare(observable.MustQualifiedName("mass::mu"), 0.105658)
		p.Declare(observable.MustQualifiedName("mass::tau"), 1.77684)
		obs, err := reg.Make(name, p, observable.NewKinematics(), observable.Options{})
		if err != nil {
			return
		}
		obs.Evaluate()
	})
}
