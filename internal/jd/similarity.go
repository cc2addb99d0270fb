package jd

// similarityRatio computes the Ratcliff-Obershelp similarity of two strings:
// 2*M/T where M is the total length of matched blocks and T the combined
// length. Result is in [0,1]; two empty strings score 1.
func similarityRatio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	matched := matchingBlocks([]byte(a), []byte(b))
	return 2 * float64(matched) / float64(len(a)+len(b))
}

// matchingBlocks sums the longest common substring of a and b plus,
// recursively, the matches in the unmatched regions on either side of it.
func matchingBlocks(a, b []byte) int {
	aStart, bStart, size := longestCommonSubstring(a, b)
	if size == 0 {
		return 0
	}
	total := size
	total += matchingBlocks(a[:aStart], b[:bStart])
	total += matchingBlocks(a[aStart+size:], b[bStart+size:])
	return total
}

func longestCommonSubstring(a, b []byte) (aStart, bStart, size int) {
	// lengths[j] holds the match length ending at a[i-1], b[j-1].
	lengths := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		// Walk b backwards so the row can be updated in place.
		for j := len(b); j >= 1; j-- {
			if a[i-1] == b[j-1] {
				lengths[j] = lengths[j-1] + 1
				if lengths[j] > size {
					size = lengths[j]
					aStart = i - size
					bStart = j - size
				}
			} else {
				lengths[j] = 0
			}
		}
	}
	return aStart, bStart, size
}
