// Copyright (c) 2025 saisgo authors
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarray

// buildBytes constructs the suffix array for a byte string s into out,
// which must have length len(s)+1. This is the byte-alphabet entry point
// (§4.1) that New and Set call: the byte alphabet is fixed at 256 symbols, so the text is
// widened to int32 once and handed to the shared SA-IS core.
func buildBytes(s []byte, out []int32) {
	sym := make([]int32, len(s))
	for i, b := range s {
		sym[i] = int32(b)
	}
	sais(sym, 256, out)
}
