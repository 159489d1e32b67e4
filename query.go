// Copyright (c) 2025 saisgo authors
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarray

import (
	"bytes"
	"sort"
)

// compareSuffixToPattern compares the suffix of s starting at pos against
// pat, truncating the suffix to len(pat) bytes before comparing (a shorter
// suffix sorts before any pattern it's a strict prefix of).
func compareSuffixToPattern(s []byte, pos int32, pat []byte) int {
	suf := s[pos:]
	n := len(suf)
	if n > len(pat) {
		n = len(pat)
	}
	for i := 0; i < n; i++ {
		if suf[i] != pat[i] {
			if suf[i] < pat[i] {
				return -1
			}
			return 1
		}
	}
	if len(suf) < len(pat) {
		return -1
	}
	return 0
}

// hasPrefix reports whether the suffix of s starting at pos begins with pat.
func hasPrefix(s []byte, pos int32, pat []byte) bool {
	suf := s[pos:]
	if len(suf) < len(pat) {
		return false
	}
	return bytes.Equal(suf[:len(pat)], pat)
}

// lcpLen returns the length of the common prefix between the suffix of s
// starting at pos and pat.
func lcpLen(s []byte, pos int32, pat []byte) int {
	suf := s[pos:]
	n := len(suf)
	if n > len(pat) {
		n = len(pat)
	}
	i := 0
	for i < n && suf[i] == pat[i] {
		i++
	}
	return i
}

// FindRegion returns the half-open SA range of suffixes starting with pat.
// An empty pat matches every suffix, returning (0, n+1).
func (x *SuffixArray) FindRegion(pat []byte) (int, int) {
	lo, hi := x.bucket(pat)
	sa := x.sa[lo:hi]

	start := sort.Search(len(sa), func(i int) bool {
		return compareSuffixToPattern(x.s, sa[i], pat) >= 0
	})
	end := start + sort.Search(len(sa)-start, func(i int) bool {
		return !hasPrefix(x.s, sa[start+i], pat)
	})
	return lo + start, lo + end
}

// Contains reports whether pat occurs anywhere in the indexed string.
func (x *SuffixArray) Contains(pat []byte) bool {
	lo, hi := x.bucket(pat)
	sa := x.sa[lo:hi]

	i := sort.Search(len(sa), func(i int) bool {
		return compareSuffixToPattern(x.s, sa[i], pat) >= 0
	})
	return i < len(sa) && compareSuffixToPattern(x.s, sa[i], pat) == 0
}

// SearchAll returns every SA entry whose suffix starts with pat. The
// returned slice is in SA order, not ascending text-position order:
// downstream callers must not assume positional sorting (the original
// contract this library's source preserves deliberately; see DESIGN.md).
func (x *SuffixArray) SearchAll(pat []byte) []int32 {
	lo, hi := x.FindRegion(pat)
	return x.sa[lo:hi]
}

// SearchLCP returns a text range [start, start+l) realising the longest
// common prefix between pat and any suffix of the indexed string. When pat
// occurs in full, the range instead runs from that occurrence to the end of
// the string ([p, n)). When the two SA neighbours of the insertion point tie
// on prefix length, the right-hand one is returned.
func (x *SuffixArray) SearchLCP(pat []byte) (int, int) {
	lo, hi := x.bucket(pat)
	sa := x.sa[lo:hi]
	n := len(x.s)

	if len(sa) == 0 {
		// No suffix shares even the first byte of pat within this bucket;
		// fall back to the top-level (first-byte-only) bucket for a 1-byte
		// match, or report no match at all.
		tlo, thi := x.topBucket(pat)
		if thi > tlo {
			p := int(x.sa[tlo])
			return p, p + 1
		}
		return n, n
	}

	i := sort.Search(len(sa), func(i int) bool {
		return compareSuffixToPattern(x.s, sa[i], pat) >= 0
	})
	if i < len(sa) && compareSuffixToPattern(x.s, sa[i], pat) == 0 {
		p := int(sa[i])
		return p, n
	}

	switch {
	case i == 0:
		p := int(sa[0])
		return p, p + lcpLen(x.s, sa[0], pat)
	case i == len(sa):
		p := int(sa[i-1])
		return p, p + lcpLen(x.s, sa[i-1], pat)
	default:
		pa, pb := sa[i-1], sa[i]
		la, lb := lcpLen(x.s, pa, pat), lcpLen(x.s, pb, pat)
		if la > lb {
			return int(pa), int(pa) + la
		}
		return int(pb), int(pb) + lb
	}
}
