package textx

// caseGap is the distance between an ASCII lowercase letter and its
// uppercase counterpart.
const caseGap = 'a' - 'A'

// Reverse returns the bytes of s in reverse order.
// Empty and single-byte input come back unchanged.
func Reverse(s string) string {
	b := []byte(s)
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
	return string(b)
}

// ToUpper returns s with every ASCII letter a–z mapped to A–Z.
// All other bytes pass through unchanged.
func ToUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - caseGap
		}
	}
	return string(b)
}

// ToLower returns s with every ASCII letter A–Z mapped to a–z.
// All other bytes pass through unchanged.
func ToLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + caseGap
		}
	}
	return string(b)
}
