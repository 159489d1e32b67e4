// Copyright (c) 2025 saisgo authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package pack implements the external packer collaborator described by
// suffixarray's §4.6/§6 contract: compressed, self-describing persistence
// for a suffix array, kept deliberately separate from the core package so
// that package never needs an I/O or compression dependency.
package pack

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/saisgo/suffixarray"
)

// formatV1 is the only blob format this package currently writes. Leading
// the blob with a format byte lets a future format change without breaking
// old blobs: Unpack can dispatch on it before touching the payload.
const formatV1 = 1

// PackError wraps a failure from the underlying length-framing or zstd
// layer, so callers can use errors.As to distinguish "malformed blob" from
// every other error suffixarray itself can return.
type PackError struct {
	Op  string
	Err error
}

func (e *PackError) Error() string {
	return fmt.Sprintf("suffixarray/pack: %s: %v", e.Op, e.Err)
}

func (e *PackError) Unwrap() error { return e.Err }

// Pack encodes a suffix array as [format byte][uvarint length][zstd stream
// of little-endian uint32 entries].
func Pack(sa []int32) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte(formatV1)

	var lenBuf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(lenBuf[:], uint64(len(sa)))
	buf.Write(lenBuf[:n])

	enc, err := zstd.NewWriter(&buf)
	if err != nil {
		return nil, &PackError{"pack", err}
	}

	var word [4]byte
	for _, v := range sa {
		binary.LittleEndian.PutUint32(word[:], uint32(v))
		if _, err := enc.Write(word[:]); err != nil {
			enc.Close()
			return nil, &PackError{"pack", err}
		}
	}
	if err := enc.Close(); err != nil {
		return nil, &PackError{"pack", err}
	}
	return buf.Bytes(), nil
}

// Unpack decodes a blob produced by Pack.
func Unpack(blob []byte) ([]int32, error) {
	r := bytes.NewReader(blob)

	format, err := r.ReadByte()
	if err != nil {
		return nil, &PackError{"unpack", err}
	}
	if format != formatV1 {
		return nil, &PackError{"unpack", fmt.Errorf("unsupported pack format %d", format)}
	}

	count, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, &PackError{"unpack", err}
	}

	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, &PackError{"unpack", err}
	}
	defer dec.Close()

	sa := make([]int32, count)
	var word [4]byte
	for i := range sa {
		if _, err := io.ReadFull(dec, word[:]); err != nil {
			return nil, &PackError{"unpack", err}
		}
		sa[i] = int32(binary.LittleEndian.Uint32(word[:]))
	}
	return sa, nil
}

// Dump packs the suffix-array half of x. The underlying byte string is
// never written: callers must supply the matching string themselves on
// Load, exactly as suffixarray's §6 contract requires.
func Dump(x *suffixarray.SuffixArray) ([]byte, error) {
	_, sa := x.Parts()
	return Pack(sa)
}

// Load decodes blob and composes it with s, running the §4.4 integrity
// check against s. Returns suffixarray.ErrInconsistentSA if the decoded
// array doesn't match s.
func Load(s []byte, blob []byte) (*suffixarray.SuffixArray, error) {
	sa, err := Unpack(blob)
	if err != nil {
		return nil, err
	}
	return suffixarray.FromParts(s, sa)
}

// UncheckedLoad decodes blob and composes it with s without verifying the
// result. Intended for trusted, previously-checked serialized data; an
// (s, blob) mismatch here is the caller's hazard.
func UncheckedLoad(s []byte, blob []byte) (*suffixarray.SuffixArray, error) {
	sa, err := Unpack(blob)
	if err != nil {
		return nil, err
	}
	return suffixarray.UncheckedFromParts(s, sa), nil
}
