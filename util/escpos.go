package util

// IntLowHigh splits n into b bytes, least significant first, the way
// ESC/POS length fields expect them.
func IntLowHigh(n int, b int) []byte {
	out := make([]byte, b)
	for i := 0; i < b; i++ {
		out[i] = byte(n % 256)
		n = n / 256
	}
	return out
}
