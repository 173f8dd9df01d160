package dominosort

// Test-only exports of the link-matrix helpers.
var (
	FractionalIndex = fractionalIndex
	ShortestCycle   = shortestCycle
	RetracePath     = retracePath
)
