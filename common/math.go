package common

// Sign returns -1 for negative values and +1 otherwise, so zero counts as
// positive travel.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
