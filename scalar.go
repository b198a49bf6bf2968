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

package streamvbyte

import "math/bits"

// Scalar is the portable kernel: one uint32 encoded or decoded at a time,
// with no architecture requirement and no tail-exclusion rule. It is both
// the fallback kernel on platforms with no SIMD backend, and the mop-up
// kernel every SIMD DecodeCursor falls back to for a stream's final
// partial quad and its last few complete quads.
type Scalar struct{}

// lenScalar returns how many of num's bytes are significant: 1 for 0 (a
// single zero byte is still written), otherwise the count of non-leading-
// zero bytes.
func lenScalar(num uint32) int {
	if num == 0 {
		return 1
	}
	return 4 - bits.LeadingZeros32(num)/8
}

// EncodeNumScalar writes num's significant bytes, little-endian, to the
// front of output and returns how many bytes it wrote (1-4). output must
// have at least 4 bytes of headroom; only the returned prefix is
// meaningful.
func EncodeNumScalar(num uint32, output []byte) int {
	n := lenScalar(num)
	for i := 0; i < n; i++ {
		output[i] = byte(num >> (8 * i))
	}
	return n
}

// DecodeNumScalar reads a little-endian integer of the given byte length
// (1-4) from the front of input.
func DecodeNumScalar(length int, input []byte) uint32 {
	var num uint32
	for i := 0; i < length; i++ {
		num |= uint32(input[i]) << (8 * i)
	}
	return num
}

// EncodeQuads implements Encoder by scalar-encoding each of the four
// numbers in turn and packing their lengths into the control byte.
func (Scalar) EncodeQuads(nums [4]uint32, controlByte *byte, payload []byte) int {
	var ctrl byte
	written := 0
	for lane, num := range nums {
		n := EncodeNumScalar(num, payload[written:])
		// Lengths are stored as n-1 (0-3) in two bits per lane, lane 0
		// in the low bits.
		ctrl |= byte(n-1) << (2 * lane)
		written += n
	}
	*controlByte = ctrl
	return written
}

// DecodeQuads implements Decoder by deriving each lane's length from the
// precomputed lens table and scalar-decoding in turn.
func (Scalar) DecodeQuads(ctrl byte, payload []byte, sink Sink, baseIndex int) int {
	l := lens[ctrl]
	var quad [4]uint32
	read := 0
	for lane := 0; lane < 4; lane++ {
		n := int(l[lane])
		quad[lane] = DecodeNumScalar(n, payload[read:])
		read += n
	}
	sink.OnQuad(quad, baseIndex)
	return read
}

// decodeNumbersScalarFrom decodes count leftover numbers starting at lane
// startLane of a trailing partial quad (0-3 lanes total), one at a time,
// and delivers them individually via sink.OnNumber. This is the
// partial-quad tail path: a trailing group of fewer than four numbers has
// a control byte of its own with the same two-bits-per-lane encoding used
// by full quads, of which only the low lanes are meaningful. payload must
// already be positioned past
// any lanes before startLane; startLane is only needed to read the
// correct bits out of ctrl and to compute the right output index.
func decodeNumbersScalarFrom(ctrl byte, startLane, count int, payload []byte, sink Sink, baseIndex int) int {
	read := 0
	for i := 0; i < count; i++ {
		lane := startLane + i
		n := int((ctrl>>(2*lane))&0x3) + 1
		sink.OnNumber(DecodeNumScalar(n, payload[read:]), baseIndex+i)
		read += n
	}
	return read
}

// encodeNumbersScalar is the encode-side mirror of decodeNumbersScalarFrom:
// it encodes the len(nums) (0-3) leftover numbers and returns the partial
// control byte (only the low 2*len(nums) bits are meaningful) and bytes
// written.
func encodeNumbersScalar(nums []uint32, payload []byte) (ctrl byte, written int) {
	for lane, num := range nums {
		n := EncodeNumScalar(num, payload[written:])
		ctrl |= byte(n-1) << (2 * lane)
		written += n
	}
	return ctrl, written
}
