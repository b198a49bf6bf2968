// Copyright 2025 streamvbyte Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build amd64 && !purego

package streamvbyte

import "encoding/binary"

// shuffleBytes16 performs a 16-byte PSHUFB: dst[i] = src[mask[i] & 0xF],
// or 0 where mask[i] has its high bit set. dst, src and mask must each
// point at at least 16 bytes; dst may alias src. Implemented in
// simd_amd64.s.
//
//go:noescape
func shuffleBytes16(dst, src, mask *byte)

// SSSE3 is the vector kernel: its quad primitive gathers or packs a
// quad's bytes with one 16-byte PSHUFB instead of branching per lane, at
// the cost of always touching a full 16-byte window regardless of the
// quad's true length. That window requirement is also what makes it a
// tailExcluder: decoding reads a 16-byte window of payload, which for the
// last few quads of a buffer could run past the buffer's end, so those
// fall back to Scalar (see codec.go/cursor.go). Encoding packs into a
// local buffer and copies only the quad's true length to the payload; the
// same tail quads go to Scalar there as well.
type SSSE3 struct{}

// TailQuads reports the number of trailing quads this kernel cannot
// safely process; see tailExcluder.
func (SSSE3) TailQuads() int { return 3 }

// DecodeQuads gathers the quad's payload bytes into four contiguous
// little-endian uint32 lanes using the precomputed decodeShuffle mask for
// ctrl, then extracts them.
func (SSSE3) DecodeQuads(ctrl byte, payload []byte, sink Sink, baseIndex int) int {
	var gathered [16]byte
	shuffleBytes16(&gathered[0], &payload[0], &decodeShuffle[ctrl][0])

	var quad [4]uint32
	for lane := 0; lane < 4; lane++ {
		quad[lane] = binary.LittleEndian.Uint32(gathered[4*lane : 4*lane+4])
	}
	sink.OnQuad(quad, baseIndex)
	return int(quadLen[ctrl])
}

// EncodeQuads derives each lane's byte length and the resulting control
// byte in scalar code (cheap, branch-per-lane arithmetic that a vector
// instruction brings little to), lays the four uint32 out as 16
// contiguous little-endian bytes, then uses the precomputed encodeShuffle
// mask for that control byte to pack them down to their true lengths with
// one PSHUFB.
func (SSSE3) EncodeQuads(nums [4]uint32, controlByte *byte, payload []byte) int {
	var ctrl byte
	for lane, num := range nums {
		ctrl |= byte(lenScalar(num)-1) << (2 * lane)
	}

	var widened [16]byte
	for lane, num := range nums {
		binary.LittleEndian.PutUint32(widened[4*lane:4*lane+4], num)
	}

	var packed [16]byte
	shuffleBytes16(&packed[0], &widened[0], &encodeShuffle[ctrl][0])

	n := int(quadLen[ctrl])
	copy(payload[:n], packed[:n])
	*controlByte = ctrl
	return n
}
