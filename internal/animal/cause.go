package animal

// Cause identifies why an animal died. CauseNone means the animal is still
// alive. At most one cause occurs per animal per tick: the survival checks
// halt at the first failure, and a dead animal leaves the population.
type Cause uint8

const (
	CauseNone Cause = iota
	CauseNaturalCauses
	CauseDehydrated
	CauseStarved
	CauseOverheated
	CauseFroze
)

var causeNames = [...]string{
	CauseNone:          "alive",
	CauseNaturalCauses: "natural causes",
	CauseDehydrated:    "dehydrated",
	CauseStarved:       "starved",
	CauseOverheated:    "overheated",
	CauseFroze:         "froze",
}

func (c Cause) String() string {
	if int(c) < len(causeNames) {
		return causeNames[c]
	}
	return "unknown"
}

// MarshalText lets a Cause serve as a JSON map key in stats payloads.
func (c Cause) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Causes lists the five terminal outcomes in declaration order, for
// reporting.
func Causes() []Cause {
	return []Cause{CauseNaturalCauses, CauseDehydrated, CauseStarved, CauseOverheated, CauseFroze}
}
