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

// Encode writes input's numbers to output using kernel E and returns the
// total number of bytes written (control region plus payload region).
// output must be at least MaxEncodedLen(len(input)) bytes.
//
// Full quads are encoded with E, except the last TailQuads() of them when
// E is a tailExcluder, which are encoded with Scalar; a trailing partial
// quad (len(input)%4 numbers) is always encoded with the Scalar kernel,
// mirroring the decode side's handling of a stream's tail.
func Encode[E Encoder](input []uint32, output []byte) int {
	var encoder E
	var scalar Scalar
	shape := computeEncodedShape(len(input))
	controlBytes := output[:shape.controlBytesLen]
	payload := output[shape.controlBytesLen:]

	safeLimit := shape.completeControlBytesLen - tailQuadsFor(encoder)
	if safeLimit < 0 {
		safeLimit = 0
	}

	written := 0
	for q := 0; q < shape.completeControlBytesLen; q++ {
		var quad [4]uint32
		copy(quad[:], input[4*q:4*q+4])
		var n int
		if q < safeLimit {
			n = encoder.EncodeQuads(quad, &controlBytes[q], payload[written:])
		} else {
			n = scalar.EncodeQuads(quad, &controlBytes[q], payload[written:])
		}
		written += n
	}

	if shape.leftoverNumbers > 0 {
		tail := input[4*shape.completeControlBytesLen:]
		ctrl, n := encodeNumbersScalar(tail, payload[written:])
		controlBytes[shape.completeControlBytesLen] = ctrl
		written += n
	}

	return shape.controlBytesLen + written
}

// Decode reads count numbers from input, encoded with any kernel, into
// output using kernel D and returns the number of input bytes consumed.
// output must have length at least count.
//
// Decode is a thin convenience wrapper around DecodeCursor/DecodeSlice for
// callers with no need to stream or skip: it is exactly
// NewDecodeCursor(input, count) followed by one DecodeSlice call sized to
// consume the whole stream.
func Decode[D Decoder](input []byte, count int, output []uint32) int {
	c := NewDecodeCursor(input, count)
	if n := DecodeSlice[D](c, output[:count]); n != count {
		panic("streamvbyte: Decode produced fewer numbers than requested")
	}
	return c.InputConsumed()
}

// MaxEncodedLen returns the largest number of bytes Encode could possibly
// write for count numbers: a full control-byte region plus a payload
// region where every number takes its maximum 4 bytes.
func MaxEncodedLen(count int) int {
	shape := computeEncodedShape(count)
	return shape.controlBytesLen + 4*count
}
