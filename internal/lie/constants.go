package lie

const (
	// smallAngle is the rotation angle (radians) below which Exp and Log use
	// their first order Taylor expansions instead of the closed forms.
	smallAngle = 1e-6

	// halfTraceOffset appears in cos(θ) = (trace(R) - 1) / 2 and in the
	// θ / (2 sin θ) factor of the logarithm.
	halfTraceOffset = 0.5
)
