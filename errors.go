// Copyright (c) 2025 saisgo authors
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarray

import "errors"

// ErrInputTooLarge is returned by New and Set when the input byte string is
// too long to index with the package's int32 suffix indices
// (len(s) > maxLen, i.e. len(s) >= 2^31-1).
var ErrInputTooLarge = errors.New("suffixarray: input too large for 32-bit suffix array")

// ErrInconsistentSA is returned by FromParts when the supplied (s, sa) pair
// fails the §3 invariants: wrong length, sa not a permutation of [0, n], or
// sa not sorted under the suffix order.
var ErrInconsistentSA = errors.New("suffixarray: inconsistent suffix array")

// maxLen is the largest byte-string length buildBytes/buildInts can index
// with int32 positions: positions run up to len(s) and the core computes
// len(s)+1 in int32, so len(s) must stay below 2^31-1.
const maxLen = 1<<31 - 2
