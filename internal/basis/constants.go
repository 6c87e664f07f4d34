package basis

// MaxOrder is the highest supported spline order. Factorials of k-1 must stay
// exact in a uint64 and the power sums in float64 lose integer precision well
// before k=20, so the practical limit is set lower.
const MaxOrder = 12
