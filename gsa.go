// Copyright (c) 2025 saisgo authors
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarray

import (
	"fmt"
	"sort"
)

// gsaSep is the byte reserved to separate and anchor strings inside a GSA's
// concatenated text. It never appears inside an indexed string: byte 0x00
// is reserved for it, and NewGSAFromBytes rejects any string containing it.
const gsaSep byte = 0x00

// GSAMatch reports the offsets, within one of the strings given to NewGSA,
// where a pattern occurred.
type GSAMatch struct {
	String      int
	Occurrences []int32
}

// GSA is a generalized suffix array over several strings, built by
// concatenating them (separated and bracketed by gsaSep) and indexing the
// result with a single SuffixArray. It answers the same exact-pattern
// queries as SuffixArray, but resolves hits back to (string, offset) pairs.
type GSA struct {
	sa     *SuffixArray
	strIdx []int32 // strIdx[p] = index of the string owning text byte p
	starts []int32 // starts[i] = offset of string i's first byte within text
}

// NewGSA builds a generalized suffix array over strs.
func NewGSA(strs []string) (*GSA, error) {
	bs := make([][]byte, len(strs))
	for i, s := range strs {
		bs[i] = []byte(s)
	}
	return NewGSAFromBytes(bs)
}

// NewGSAFromBytes builds a generalized suffix array over strs. Returns an
// error if any string contains the reserved separator byte 0x00.
func NewGSAFromBytes(strs [][]byte) (*GSA, error) {
	text := []byte{gsaSep}
	strIdx := []int32{int32(-1)}
	starts := make([]int32, len(strs))

	for i, s := range strs {
		for _, b := range s {
			if b == gsaSep {
				return nil, fmt.Errorf("suffixarray: string %d contains reserved separator byte 0x00", i)
			}
		}
		starts[i] = int32(len(text))
		text = append(text, s...)
		text = append(text, gsaSep)
		for range s {
			strIdx = append(strIdx, int32(i))
		}
		strIdx = append(strIdx, int32(-1))
	}

	sa, err := New(text)
	if err != nil {
		return nil, err
	}
	return &GSA{sa: sa, strIdx: strIdx, starts: starts}, nil
}

// collect resolves SA positions to (string, offset) matches, dropping any
// position that lands directly on a separator byte.
func (g *GSA) collect(positions []int32) []GSAMatch {
	text, _ := g.sa.Parts()
	var order []int32
	byString := make(map[int32][]int32)

	for _, p := range positions {
		if int(p) >= len(text) || text[p] == gsaSep {
			continue
		}
		str := g.strIdx[p]
		off := p - g.starts[str]
		if _, ok := byString[str]; !ok {
			order = append(order, str)
		}
		byString[str] = append(byString[str], off)
	}

	matches := make([]GSAMatch, len(order))
	for i, str := range order {
		occ := byString[str]
		sort.Slice(occ, func(a, b int) bool { return occ[a] < occ[b] })
		matches[i] = GSAMatch{String: int(str), Occurrences: occ}
	}
	sort.Slice(matches, func(a, b int) bool { return matches[a].String < matches[b].String })
	return matches
}

// LookupTextOrder returns, for every string containing prefix, its
// occurrences (as offsets within that string), across all strings,
// ordered by string index.
func (g *GSA) LookupTextOrder(prefix []byte) []GSAMatch {
	lo, hi := g.sa.FindRegion(prefix)
	_, sa := g.sa.Parts()
	return g.collect(sa[lo:hi])
}

// LookupPrefix returns the strings that literally start with prefix.
func (g *GSA) LookupPrefix(prefix []byte) []GSAMatch {
	cp := make([]byte, len(prefix)+1)
	cp[0] = gsaSep
	copy(cp[1:], prefix)
	lo, hi := g.sa.FindRegion(cp)
	_, sa := g.sa.Parts()
	shifted := make([]int32, hi-lo)
	for i, p := range sa[lo:hi] {
		shifted[i] = p + 1
	}
	return g.collect(shifted)
}

// LookupSuffix returns the strings that literally end with suffix.
func (g *GSA) LookupSuffix(suffix []byte) []GSAMatch {
	if len(suffix) == 0 {
		// Every string ends with the empty suffix, at offset len(string).
		// The SA positions for that match are separators, which collect drops.
		text, _ := g.sa.Parts()
		matches := make([]GSAMatch, len(g.starts))
		for i, st := range g.starts {
			end := int32(len(text)) - 1
			if i+1 < len(g.starts) {
				end = g.starts[i+1] - 1
			}
			matches[i] = GSAMatch{String: i, Occurrences: []int32{end - st}}
		}
		return matches
	}
	cp := make([]byte, len(suffix)+1)
	copy(cp, suffix)
	cp[len(suffix)] = gsaSep
	lo, hi := g.sa.FindRegion(cp)
	_, sa := g.sa.Parts()
	return g.collect(sa[lo:hi])
}
