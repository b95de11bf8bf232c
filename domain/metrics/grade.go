package metrics

// Band pairs a strict lower bound with the label awarded above it.
type Band struct {
	Above float64
	Label string
}

// Grade walks the bands in written order and returns the first label whose
// bound the value strictly exceeds, or the fallback when none match. First
// match wins: the tie-break policy is the band order itself, so callers list
// the highest tier first.
func Grade(value float64, bands []Band, fallback string) string {
	for _, b := range bands {
		if value > b.Above {
			return b.Label
		}
	}
	return fallback
}
