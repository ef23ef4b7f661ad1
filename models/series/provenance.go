package series

// Provenance tags which generator produced a series: the live grid feed or
// the local synthetic fallback. It is carried through to the HTTP boundary so
// callers can decide how to disclose it.
type Provenance string

const (
	ProvenanceLiveFeed  Provenance = "live"
	ProvenanceSynthetic Provenance = "synthetic"
)
