package observable

// Unit tags an observable entry with its physical unit. Expression
// observables carry Undefined since units are not tracked through
// arithmetic.
type Unit string

const (
	Undefined  Unit = "undefined"
	None       Unit = "1"
	GeV        Unit = "GeV"
	GeV2       Unit = "GeV^2"
	InverseGeV Unit = "1/GeV"
	// InversePicoSecond is used for decay widths quoted as inverse lifetimes.
	InversePicoSecond Unit = "1/ps"
)

var knownUnits = map[string]Unit{
	string(None):              None,
	string(GeV):               GeV,
	string(GeV2):              GeV2,
	string(InverseGeV):        InverseGeV,
	string(InversePicoSecond): InversePicoSecond,
	string(Undefined):         Undefined,
}

// ParseUnit maps a unit string from a definition file to a Unit. The empty
// string maps to Undefined. Unknown strings are reported.
func ParseUnit(s string) (Unit, bool) {
	if s == "" {
		return Undefined, true
	}
	u, ok := knownUnits[s]
	return u, ok
}

func (u Unit) String() string {
	return string(u)
}
