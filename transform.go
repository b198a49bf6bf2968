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

// Transformer lets a caller rewrite numbers immediately before they're
// encoded, so that a pattern in the *logical* data (e.g. a monotonic
// sequence) becomes one the codec's variable-length scheme compresses
// better, without changing the wire format itself. A Transformer is
// single-use: one instance per EncodeTransformed call.
//
// One interface carries both a quad and a single-number method: the quad
// form feeds complete quads on the hot path, the single-number form
// handles a stream's trailing partial quad.
type Transformer interface {
	// TransformQuad transforms four numbers immediately before they're
	// passed to an Encoder's EncodeQuads.
	TransformQuad(quad [4]uint32) [4]uint32
	// TransformNumber transforms one number, used for a stream's trailing
	// partial quad.
	TransformNumber(num uint32) uint32
}

// IdentityTransformer changes nothing: EncodeTransformed(...,
// IdentityTransformer{}) behaves exactly like Encode, which applies no
// transformer.
type IdentityTransformer struct{}

func (IdentityTransformer) TransformQuad(quad [4]uint32) [4]uint32 { return quad }
func (IdentityTransformer) TransformNumber(num uint32) uint32      { return num }

// DeltaTransformer replaces each number with the zigzag-encoded delta
// from the previous number (0 for the first), so a monotonic or
// slowly-varying sequence turns into a run of small values that encode to
// fewer bytes. Decoding such a stream requires walking it back with the
// corresponding inverse; Decode itself is transform-unaware, so a caller
// applying DeltaTransformer owns its own inverse pass after decoding.
type DeltaTransformer struct {
	prev uint32
}

func zigzagEncode32(n int32) uint32 {
	return uint32((n << 1) ^ (n >> 31))
}

func (t *DeltaTransformer) TransformNumber(num uint32) uint32 {
	// Wrapping subtraction, reinterpreted as a signed 32-bit delta: the
	// same trick the zigzag scheme itself relies on, so a sequence that
	// wraps past 2^32 still round-trips under the caller's inverse pass.
	delta := int32(num - t.prev)
	t.prev = num
	return zigzagEncode32(delta)
}

func (t *DeltaTransformer) TransformQuad(quad [4]uint32) [4]uint32 {
	var out [4]uint32
	for i, num := range quad {
		out[i] = t.TransformNumber(num)
	}
	return out
}

// EncodeTransformed is Encode with every number passed through tr first.
// It shares Encode's kernel-dispatch and tail-exclusion behavior; only the
// values handed to the kernel differ.
func EncodeTransformed[E Encoder](input []uint32, tr Transformer, output []byte) int {
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
		quad = tr.TransformQuad(quad)
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
		var transformed [3]uint32
		for i, num := range tail {
			transformed[i] = tr.TransformNumber(num)
		}
		ctrl, n := encodeNumbersScalar(transformed[:len(tail)], payload[written:])
		controlBytes[shape.completeControlBytesLen] = ctrl
		written += n
	}

	return shape.controlBytesLen + written
}
