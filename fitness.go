package genart

// sumSquaredDiff returns the sum over all bytes of the squared difference
// between a and b. Both buffers hold one byte per channel, three channels
// per pixel; they must be the same length.
//
// The accumulator is 64-bit: a 512×512 canvas can reach
// 512*512*3*255² ≈ 5.1e13, far past 32-bit range.
func sumSquaredDiff(a, b []uint8) int64 {
	var sum int64
	for i := range a {
		d := int64(a[i]) - int64(b[i])
		sum += d * d
	}
	return sum
}
