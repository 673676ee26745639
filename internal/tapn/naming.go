package tapn

const (
	pnmlNamespace = "http://www.pnml.org/version-2009/grammar/pnml"
	netType       = "http://www.tapaal.net/"
)

// PlaceID returns the ID of the place that counts a node's compromise.
// Query text references places by these IDs, so they are shared with the
// query synthesizer.
func PlaceID(node string) string { return "compromised_" + node }

// TransitionID returns the ID of the transition that performs a node's
// attack step.
func TransitionID(node string) string { return "attack_" + node }

// EnablementID returns the ID of the marked place that lets a leaf's
// transition fire.
func EnablementID(node string) string { return "can_attack_" + node }

// placeName returns the display label of a state place.
func placeName(node string) string { return "comp_" + node }
