// Copyright (c) 2025 saisgo authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package suffixarray builds a suffix array over a byte string using the
// SA-IS algorithm and answers exact-pattern queries against it.
package suffixarray

// SuffixArray owns a byte string and its suffix array. The zero value is
// not usable; construct one with New, FromParts, or UncheckedFromParts.
type SuffixArray struct {
	s   []byte
	sa  []int32
	bkt []int32 // nil unless EnableBuckets has been called
}

// New builds a suffix array for s. Returns ErrInputTooLarge if s is too
// long to index with 32-bit positions.
func New(s []byte) (*SuffixArray, error) {
	if len(s) > maxLen {
		return nil, ErrInputTooLarge
	}
	sa := make([]int32, len(s)+1)
	buildBytes(s, sa)
	return &SuffixArray{s: s, sa: sa}, nil
}

// Set rebuilds the suffix array in place for a new byte string, reusing the
// existing SA storage when its capacity suffices. Any bucket index built by
// EnableBuckets is invalidated and must be rebuilt.
func (x *SuffixArray) Set(s []byte) error {
	if len(s) > maxLen {
		return ErrInputTooLarge
	}
	need := len(s) + 1
	if cap(x.sa) >= need {
		x.sa = x.sa[:need]
	} else {
		x.sa = make([]int32, need)
	}
	buildBytes(s, x.sa)
	x.s = s
	x.bkt = nil
	return nil
}

// Fit releases unused capacity in the backing suffix-array storage, e.g.
// after a Set onto a shorter string reused a larger allocation.
func (x *SuffixArray) Fit() {
	fit := make([]int32, len(x.sa))
	copy(fit, x.sa)
	x.sa = fit
}

// Len returns the length of the underlying byte string.
func (x *SuffixArray) Len() int { return len(x.s) }

// IsEmpty reports whether the underlying byte string is empty.
func (x *SuffixArray) IsEmpty() bool { return len(x.s) == 0 }

// Parts exposes the byte string and suffix array, borrowed read-only.
func (x *SuffixArray) Parts() ([]byte, []int32) { return x.s, x.sa }

// IntoParts takes ownership of the byte string and suffix array, leaving x
// empty. Intended for callers handing the pair off to an external packer.
func (x *SuffixArray) IntoParts() ([]byte, []int32) {
	s, sa := x.s, x.sa
	x.s, x.sa, x.bkt = nil, nil, nil
	return s, sa
}

// FromParts composes an externally-supplied (s, sa) pair, verifying the §3
// invariants. Returns ErrInconsistentSA if sa is not a valid suffix array
// for s.
func FromParts(s []byte, sa []int32) (*SuffixArray, error) {
	x := &SuffixArray{s: s, sa: sa}
	if !x.checkIntegrity() {
		return nil, ErrInconsistentSA
	}
	return x, nil
}

// UncheckedFromParts composes an externally-supplied (s, sa) pair without
// verifying any invariant. The caller is responsible for ensuring sa is
// actually the suffix array of s; violating that is a hazard, not an error
// this package can detect later.
func UncheckedFromParts(s []byte, sa []int32) *SuffixArray {
	return &SuffixArray{s: s, sa: sa}
}

// checkIntegrity verifies sa is a permutation of [0, len(s)] strictly
// sorted under the suffix order. Θ(n²) worst case (direct suffix
// comparisons); only used on externally-supplied data, never on the output
// of New/Set.
func (x *SuffixArray) checkIntegrity() bool {
	if len(x.s)+1 != len(x.sa) {
		return false
	}
	seen := make([]bool, len(x.sa))
	for _, p := range x.sa {
		if p < 0 || int(p) >= len(x.sa) || seen[p] {
			return false
		}
		seen[p] = true
	}
	for i := 1; i < len(x.sa); i++ {
		if compareSuffixes(x.s, x.sa[i-1], x.sa[i]) >= 0 {
			return false
		}
	}
	return true
}

// compareSuffixes compares two suffixes of s given by their starting
// positions, treating position len(s) as an implicit terminator smaller
// than every byte.
func compareSuffixes(s []byte, a, b int32) int {
	n := int32(len(s))
	for {
		switch {
		case a == n && b == n:
			return 0
		case a == n:
			return -1
		case b == n:
			return 1
		case s[a] != s[b]:
			if s[a] < s[b] {
				return -1
			}
			return 1
		}
		a++
		b++
	}
}

// EnableBuckets builds the 2-level (first-byte, second-byte) prefix-count
// index used to speed up repeated queries. Idempotent: a second call is a
// no-op. The layout mirrors the one-dimensional table
// [$; (0,$), (0,0), ..., (0,255); ...; (255,$), ..., (255,255)], storing
// cumulative right-boundaries so a bucket is the half-open range between
// two adjacent entries.
func (x *SuffixArray) EnableBuckets() {
	if x.bkt != nil {
		return
	}

	bkt := make([]int32, 256*257+1)
	bkt[0] = 1
	if n := len(x.s); n > 0 {
		for i := 0; i < n-1; i++ {
			c0, c1 := x.s[i], x.s[i+1]
			idx := int(c0)*257 + int(c1) + 1 + 1
			bkt[idx]++
		}
		c0 := x.s[n-1]
		idx := int(c0)*257 + 1
		bkt[idx]++
	}

	var sum int32
	for i, v := range bkt {
		sum += v
		bkt[i] = sum
	}
	x.bkt = bkt
}

// bucket returns the half-open SA range restricted to suffixes starting
// with pat, using the bucket index if one is enabled and otherwise the
// whole SA.
func (x *SuffixArray) bucket(pat []byte) (int, int) {
	if len(pat) == 0 || x.bkt == nil {
		return 0, len(x.sa)
	}
	if len(pat) > 1 {
		c0, c1 := pat[0], pat[1]
		idx := int(c0)*257 + int(c1) + 1 + 1
		return int(x.bkt[idx-1]), int(x.bkt[idx])
	}
	start := int(pat[0]) * 257
	return int(x.bkt[start]), int(x.bkt[start+257])
}

// topBucket returns the range of all suffixes sharing pat's first byte,
// ignoring any further bytes of pat.
func (x *SuffixArray) topBucket(pat []byte) (int, int) {
	if len(pat) == 0 || x.bkt == nil {
		return 0, len(x.sa)
	}
	start := int(pat[0]) * 257
	return int(x.bkt[start]), int(x.bkt[start+257])
}
