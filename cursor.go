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

// DecodeCursor is a restartable, streaming decode position over one
// encoded buffer. It lets a caller decode a prefix of a stream, stop, do
// something else with partial results, and resume later without
// re-parsing control bytes it has already consumed. The one-shot Decode
// driver in codec.go is a thin wrapper over it.
type DecodeCursor struct {
	controlBytes []byte
	encodedNums  []byte
	shape        encodedShape
	totalNums    int

	numsDecoded      int
	controlBytesRead int
	encodedBytesRead int
}

// NewDecodeCursor creates a cursor over input, which must hold exactly
// count encoded numbers: computeEncodedShape(count).controlBytesLen
// control bytes followed by the payload region (input may be longer; only
// the encoded region is read).
func NewDecodeCursor(input []byte, count int) *DecodeCursor {
	shape := computeEncodedShape(count)
	return &DecodeCursor{
		controlBytes: input[:shape.controlBytesLen],
		encodedNums:  input[shape.controlBytesLen:],
		shape:        shape,
		totalNums:    count,
	}
}

// InputConsumed reports how many bytes of the original input have been
// consumed so far: the whole control-byte region (its size is fixed by
// the element count, so it counts as consumed from the start) plus
// however many payload bytes Skip/decode calls have read.
func (c *DecodeCursor) InputConsumed() int {
	return c.shape.controlBytesLen + c.encodedBytesRead
}

// HasMore reports whether any numbers remain undecoded.
func (c *DecodeCursor) HasMore() bool {
	return c.numsDecoded < c.totalNums
}

// Skip advances the cursor past k numbers without decoding them. k must
// be a multiple of 4 and must not exceed the complete quads remaining:
// Skip only ever moves whole-quad boundaries, since a partial quad's
// length can't be known without decoding it.
func (c *DecodeCursor) Skip(k int) {
	if k == 0 {
		return
	}
	if k%4 != 0 {
		panic("streamvbyte: DecodeCursor.Skip requires a multiple of 4")
	}
	quads := k / 4
	completeQuadsLeft := c.shape.completeControlBytesLen - c.controlBytesRead
	if quads > completeQuadsLeft {
		panic("streamvbyte: DecodeCursor.Skip exceeds remaining complete quads")
	}
	ctrlSlice := c.controlBytes[c.controlBytesRead : c.controlBytesRead+quads]
	skippedBytes := cumulativeEncodedLen(ctrlSlice)
	c.controlBytesRead += quads
	c.encodedBytesRead += skippedBytes
	c.numsDecoded += k
}

// DecodeSink decodes up to maxNumbersToDecode numbers (rounded down to the
// nearest quad boundary unless it reaches the stream's end, where a
// trailing partial quad may be decoded) using the kernel D, delivering
// results to sink, and returns how many numbers it actually decoded.
//
// Each complete quad is decoded by one DecodeQuads call, D's or, for the
// stream's last TailQuads() complete quads, Scalar's, with baseIndex
// counted from 0 at the start of this call. The trailing partial quad, if any and
// if reached, is always decoded with the Scalar kernel one number at a
// time via sink.OnNumber, since a partial quad has no quad-shaped
// representation to hand a SIMD kernel.
func DecodeSink[D Decoder](c *DecodeCursor, sink Sink, maxNumbersToDecode int) int {
	var decoder D
	var scalar Scalar
	decodedThisCall := 0

	maxQuads := maxNumbersToDecode / 4
	completeQuadsLeft := c.shape.completeControlBytesLen - c.controlBytesRead
	quadsToDecode := maxQuads
	if quadsToDecode > completeQuadsLeft {
		quadsToDecode = completeQuadsLeft
	}

	// D's quad primitive may need a fixed-size safety margin past a quad's
	// true length (a vector load/store); the last TailQuads() complete
	// quads of the whole stream always go through Scalar instead.
	safeLimit := c.shape.completeControlBytesLen - tailQuadsFor(decoder)
	if safeLimit < 0 {
		safeLimit = 0
	}

	for i := 0; i < quadsToDecode; i++ {
		ctrl := c.controlBytes[c.controlBytesRead]
		var n int
		if c.controlBytesRead < safeLimit {
			n = decoder.DecodeQuads(ctrl, c.encodedNums[c.encodedBytesRead:], sink, decodedThisCall)
		} else {
			n = scalar.DecodeQuads(ctrl, c.encodedNums[c.encodedBytesRead:], sink, decodedThisCall)
		}
		c.controlBytesRead++
		c.encodedBytesRead += n
		c.numsDecoded += 4
		decodedThisCall += 4
	}

	// Trailing partial quad: only reachable once every complete quad has
	// been consumed, and only delivered atomically, all of it or none of
	// it in this call, once the caller's remaining budget covers it.
	remainingBudget := maxNumbersToDecode - decodedThisCall
	if c.controlBytesRead == c.shape.completeControlBytesLen && c.numsDecoded < c.totalNums {
		leftover := c.totalNums - c.numsDecoded
		if remainingBudget >= leftover {
			// The partial quad's lengths live in the one extra control byte
			// appended after the complete quads.
			ctrl := c.controlBytes[c.controlBytesRead]
			n := decodeNumbersScalarFrom(ctrl, 0, leftover, c.encodedNums[c.encodedBytesRead:], sink, decodedThisCall)
			c.encodedBytesRead += n
			c.numsDecoded += leftover
			c.controlBytesRead++
			decodedThisCall += leftover
		}
	}

	return decodedThisCall
}

// DecodeSlice decodes as many numbers as fit in output using kernel D,
// returning the count actually decoded. Like DecodeSink, it decodes only
// whole quads, plus the trailing partial quad when all of it fits, so the
// count can be less than min(len(output), remaining).
func DecodeSlice[D Decoder](c *DecodeCursor, output []uint32) int {
	sink := NewSliceSink(output)
	return DecodeSink[D](c, sink, len(output))
}
