package types

// Linearly map value from the [fromStart, fromEnd] range to the
// [toStart, toEnd] range. The value is not clamped.
func MapRange(value, fromStart, fromEnd, toStart, toEnd float32) float32 {
	return toStart + (value-fromStart)*(toEnd-toStart)/(fromEnd-fromStart)
}
