package engine

// Derivative orders used to index the coefficient rows.
const (
	positionOrder     = 0
	velocityOrder     = 1
	accelerationOrder = 2
)

// dims is the component count of both R³ and so(3).
const dims = 3
