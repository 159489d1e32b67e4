// Copyright (c) 2025 saisgo authors
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarray

// charAt returns the symbol at position i in a string of length l, treating
// position l as an implicit terminator strictly smaller than every real
// symbol. sym must have length l.
func charAt(sym []int32, i, l int32) int32 {
	if i == l {
		return -1
	}
	return sym[i]
}

// classifyTypes classifies every position of sym (including the implicit
// terminator at len(sym)) as S-type (true) or L-type (false), per:
//
//	type[i] = S  iff  sym[i] < sym[i+1]  or  (sym[i] == sym[i+1] and type[i+1] == S)
//
// with the terminator anchored as S-type. The returned slice has length
// len(sym)+1.
func classifyTypes(sym []int32) []bool {
	l := int32(len(sym))
	types := make([]bool, l+1)
	types[l] = true
	for i := l - 1; i >= 0; i-- {
		next := charAt(sym, i+1, l)
		switch {
		case sym[i] < next:
			types[i] = true
		case sym[i] > next:
			types[i] = false
		default:
			types[i] = types[i+1]
		}
	}
	return types
}

// isLMSPos reports whether position p (0 <= p <= l, l == len(types)-1) is a
// left-most S-type position: S-type, with an L-type predecessor. Position l
// (the terminator) is always LMS.
func isLMSPos(p int32, types []bool) bool {
	l := int32(len(types) - 1)
	if p == l {
		return true
	}
	if p == 0 {
		return false
	}
	return types[p] && !types[p-1]
}

// lmsPositions returns the interior LMS positions of sym (1 <= p < l) in
// increasing text order. The terminator itself (always LMS) is excluded;
// callers that need the full LMS set append l explicitly.
func lmsPositions(types []bool) []int32 {
	l := int32(len(types) - 1)
	var lms []int32
	for i := int32(1); i < l; i++ {
		if types[i] && !types[i-1] {
			lms = append(lms, i)
		}
	}
	return lms
}

// bucketSizes counts occurrences of each symbol in [0, sigma) within sym.
// The implicit terminator is never counted; it owns a reserved slot at SA
// index 0 that the bucket cursors below leave untouched.
func bucketSizes(sym []int32, sigma int32) []int32 {
	sizes := make([]int32, sigma)
	for _, c := range sym {
		sizes[c]++
	}
	return sizes
}

// bucketHeads computes, for each symbol, the first SA slot of its bucket
// (slot 0 is reserved for the terminator). Re-derived fresh from sizes each
// time it is needed, as cursors must not leak state between induction
// phases.
func bucketHeads(sizes []int32) []int32 {
	heads := make([]int32, len(sizes))
	offset := int32(1)
	for c, n := range sizes {
		heads[c] = offset
		offset += n
	}
	return heads
}

// bucketTails computes, for each symbol, the last SA slot of its bucket.
func bucketTails(sizes []int32) []int32 {
	tails := make([]int32, len(sizes))
	offset := int32(1)
	for c, n := range sizes {
		offset += n
		tails[c] = offset - 1
	}
	return tails
}
