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

// Sink is the decoding polymorphism seam: it lets decoded quads flow into
// either a destination buffer or a user-defined callback without an
// intermediate allocation.
//
// OnNumber is called for every integer that is part of a trailing partial
// quad, which has no quad representation.
//
// OnQuad is called once per complete quad by every kernel, Scalar
// included, with the four decoded values in order. index/baseIndex are
// counted from 0 at the start of each DecodeSink invocation, not
// cumulatively across the cursor's lifetime.
//
// Every kernel delivers quads as a concrete [4]uint32, the natural
// representation of four lanes extracted from one 128-bit shuffle result.
// This keeps the hot loop's per-quad dispatch to a single interface call:
// the per-quad sink call is tolerable, a per-integer virtual call on the
// quad path would not be.
type Sink interface {
	OnNumber(value uint32, index int)
	OnQuad(quad [4]uint32, baseIndex int)
}

// SliceSink writes decoded numbers into a caller-owned []uint32, at
// Output[i] for the i-th number decoded by the owning DecodeCursor
// invocation. It is the sink DecodeSlice and Decode build on top of.
type SliceSink struct {
	Output []uint32
}

// NewSliceSink wraps output for use as a Sink.
func NewSliceSink(output []uint32) *SliceSink {
	return &SliceSink{Output: output}
}

func (s *SliceSink) OnNumber(value uint32, index int) {
	s.Output[index] = value
}

func (s *SliceSink) OnQuad(quad [4]uint32, baseIndex int) {
	// Contiguous store of the full quad, the decode-side mirror of the
	// SIMD encode kernel's contiguous 16-byte load.
	out := s.Output[baseIndex : baseIndex+4 : baseIndex+4]
	out[0], out[1], out[2], out[3] = quad[0], quad[1], quad[2], quad[3]
}

// CallbackSink adapts two plain functions into a Sink, for callers who want
// to consume decoded values (e.g. to compute a running aggregate) without
// writing them anywhere. If OnQuadFunc is nil, quads are decomposed into
// four OnNumberFunc calls, so a caller only has to implement the
// degenerate, always-available path.
type CallbackSink struct {
	OnNumberFunc func(value uint32, index int)
	OnQuadFunc   func(quad [4]uint32, baseIndex int)
}

func (s *CallbackSink) OnNumber(value uint32, index int) {
	s.OnNumberFunc(value, index)
}

func (s *CallbackSink) OnQuad(quad [4]uint32, baseIndex int) {
	if s.OnQuadFunc != nil {
		s.OnQuadFunc(quad, baseIndex)
		return
	}
	for i, v := range quad {
		s.OnNumberFunc(v, baseIndex+i)
	}
}
