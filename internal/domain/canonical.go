package domain

// canonicalLengths ascend; NearestCanonicalLength relies on the order.
var canonicalLengths = [...]int{16, 20, 24, 28, 32}

// CanonicalLengths returns the entropy byte lengths a mnemonic encoder
// accepts, ascending. The result is a copy.
func CanonicalLengths() []int {
	l := canonicalLengths
	return l[:]
}

// IsCanonicalLength reports whether n is a canonical length.
func IsCanonicalLength(n int) bool {
	for _, l := range canonicalLengths {
		if n == l {
			return true
		}
	}
	return false
}

// NearestCanonicalLength returns the canonical length closest to n.
// Ties go to the smaller length.
func NearestCanonicalLength(n int) int {
	best := canonicalLengths[0]
	for _, l := range canonicalLengths[1:] {
		if abs(n-l) < abs(n-best) {
			best = l
		}
	}
	return best
}

// Canonicalize snaps b to the nearest canonical length, truncating from
// the end or right-padding with zero bytes. A canonical input is returned
// unchanged.
func Canonicalize(b []byte) []byte {
	if IsCanonicalLength(len(b)) {
		return b
	}
	target := NearestCanonicalLength(len(b))
	if len(b) > target {
		return b[:target]
	}
	out := make([]byte, target)
	copy(out, b)
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
