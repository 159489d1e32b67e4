// Copyright (c) 2025 saisgo authors
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarray

// empty marks an out slot with no suffix placed yet. All-ones (-1) is safe
// since valid indices are never negative (the facade boundary enforces
// |S| <= maxLen, which keeps every index within int32).
const empty = ^int32(0)

// sais constructs the suffix array for sym (an alphabet-sigma integer
// string of length l) into out, treating position l as an implicit
// terminator smaller than every symbol. out must have length l+1.
//
// This is the shared recursive core behind buildBytes (sigma fixed at 256)
// and buildInts (sigma supplied by the caller, equal to the number of
// distinct LMS-substring names one recursion level down). Both entry points
// pre-seed out[0] with l via placeLMS; callers never need to do so
// themselves.
func sais(sym []int32, sigma int32, out []int32) {
	l := int32(len(sym))
	if l == 0 {
		out[0] = 0
		return
	}
	if l == 1 {
		out[0] = 1
		out[1] = 0
		return
	}

	types := classifyTypes(sym)
	sizes := bucketSizes(sym, sigma)
	lms := lmsPositions(types)

	placeLMS(sym, out, sizes, lms, l)
	induceL(sym, out, types, sizes)
	induceS(sym, out, types, sizes)

	if len(lms) == 0 {
		// The terminator is the only LMS position: no ambiguity to resolve,
		// the induced order above is already exact (e.g. constant-byte input).
		return
	}

	textOrder := append(append(make([]int32, 0, len(lms)+1), lms...), l)
	sortedLMS := extractSortedLMS(out, types)

	r, numNames := nameReduced(sym, types, l, sortedLMS, textOrder)

	m := len(textOrder)
	reducedSA := make([]int32, m+1)
	if int(numNames) == m {
		// Every LMS substring got a distinct name: r is already a
		// permutation of [0, m), so its suffix order is just the inverse map.
		reducedSA[0] = int32(m)
		for i, name := range r {
			reducedSA[name+1] = int32(i)
		}
	} else {
		buildInts(r, numNames, reducedSA)
	}

	finalOrder := make([]int32, m)
	for i := 0; i < m; i++ {
		finalOrder[i] = textOrder[reducedSA[i+1]]
	}

	placeFinal(sym, out, sizes, finalOrder, l)
	induceL(sym, out, types, sizes)
	induceS(sym, out, types, sizes)
}

// placeLMS resets out and places the interior LMS positions (in the
// arbitrary order lms happens to list them in) at the tails of their
// buckets, seeding the terminator at out[0].
func placeLMS(sym []int32, out []int32, sizes []int32, lms []int32, l int32) {
	for i := range out {
		out[i] = empty
	}
	out[0] = l
	tails := bucketTails(sizes)
	for i := len(lms) - 1; i >= 0; i-- {
		p := lms[i]
		c := sym[p]
		out[tails[c]] = p
		tails[c]--
	}
}

// placeFinal resets out and places the fully-sorted LMS order (order[0] is
// always l, the terminator) at bucket tails, in descending order so the
// buckets fill correctly ascending overall.
func placeFinal(sym []int32, out []int32, sizes []int32, order []int32, l int32) {
	for i := range out {
		out[i] = empty
	}
	tails := bucketTails(sizes)
	for i := len(order) - 1; i >= 1; i-- {
		p := order[i]
		c := sym[p]
		out[tails[c]] = p
		tails[c]--
	}
	out[0] = l
}

// induceL fills in every L-type position by scanning out left to right:
// whenever out[i] names a position whose left neighbour is L-type, that
// neighbour is written at the head of its bucket.
func induceL(sym []int32, out []int32, types []bool, sizes []int32) {
	heads := bucketHeads(sizes)
	for i := 0; i < len(out); i++ {
		j := out[i]
		if j == empty || j == 0 {
			continue
		}
		p := j - 1
		if !types[p] {
			c := sym[p]
			out[heads[c]] = p
			heads[c]++
		}
	}
}

// induceS fills in every S-type position by scanning out right to left,
// mirroring induceL.
func induceS(sym []int32, out []int32, types []bool, sizes []int32) {
	tails := bucketTails(sizes)
	for i := len(out) - 1; i >= 0; i-- {
		j := out[i]
		if j == empty || j == 0 {
			continue
		}
		p := j - 1
		if types[p] {
			c := sym[p]
			out[tails[c]] = p
			tails[c]--
		}
	}
}

// extractSortedLMS scans the (now fully-filled) out array and collects the
// LMS positions it contains, in the order the first induction pass settled
// on. That order is correct for comparing LMS *substrings* but not
// necessarily for full LMS *suffixes* — resolving that is nameReduced's job.
func extractSortedLMS(out []int32, types []bool) []int32 {
	sorted := make([]int32, 0, 8)
	for _, p := range out {
		if isLMSPos(p, types) {
			sorted = append(sorted, p)
		}
	}
	return sorted
}

// lmsLengths returns, aligned with textOrder (LMS positions in increasing
// text order, terminator last), the length of each LMS substring: the span
// up to and including the next LMS position, or 1 for the terminator's own
// trivial substring.
func lmsLengths(textOrder []int32) []int32 {
	m := len(textOrder)
	lens := make([]int32, m)
	for i := 0; i < m-1; i++ {
		lens[i] = textOrder[i+1] - textOrder[i] + 1
	}
	lens[m-1] = 1
	return lens
}

// lmsSubstringsEqual compares the length-length LMS substrings starting at
// a and b, including their L/S type pattern, using the terminator-aware
// accessors so a substring touching position l compares correctly against
// one that doesn't.
func lmsSubstringsEqual(sym []int32, types []bool, l, a, b, length int32) bool {
	for i := int32(0); i < length; i++ {
		if charAt(sym, a+i, l) != charAt(sym, b+i, l) {
			return false
		}
		if types[a+i] != types[b+i] {
			return false
		}
	}
	return true
}

// nameReduced assigns each LMS position a 0-based name by walking the
// sorted LMS order and incrementing whenever consecutive substrings differ
// (in content or L/S pattern), then projects those names back onto
// textOrder to build the reduced string r. Returns r and the number of
// distinct names assigned.
func nameReduced(sym []int32, types []bool, l int32, sortedLMS, textOrder []int32) (r []int32, numNames int32) {
	lens := lmsLengths(textOrder)
	posToLen := make([]int32, l+1)
	for i, p := range textOrder {
		posToLen[p] = lens[i]
	}

	nameOf := make([]int32, l+1)
	var name int32
	nameOf[sortedLMS[0]] = 0
	for i := 1; i < len(sortedLMS); i++ {
		a, b := sortedLMS[i-1], sortedLMS[i]
		if posToLen[a] != posToLen[b] || !lmsSubstringsEqual(sym, types, l, a, b, posToLen[a]) {
			name++
		}
		nameOf[b] = name
	}

	r = make([]int32, len(textOrder))
	for i, p := range textOrder {
		r[i] = nameOf[p]
	}
	return r, name + 1
}
