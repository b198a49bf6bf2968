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

// Encoder and Decoder are the two kernel interfaces every Stream VByte
// backend implements: Scalar (always available), and the amd64 vector
// backend SSSE3 (simd_amd64.go). Encode and Decode are generic over
// these so that kernel selection happens at compile time through a type
// parameter. Go has no generic methods, so the dispatch surface is a pair
// of free functions parameterized over the kernel type rather than
// methods on it.
type Encoder interface {
	// EncodeQuads encodes exactly one quad of four numbers, appending
	// control and payload bytes to the regions the caller has prepared,
	// and returns the number of payload bytes written.
	EncodeQuads(nums [4]uint32, controlByte *byte, payload []byte) int
}

type Decoder interface {
	// DecodeQuads decodes the quad described by ctrl from payload and
	// delivers it to sink at baseIndex, returning the number of payload
	// bytes consumed.
	DecodeQuads(ctrl byte, payload []byte, sink Sink, baseIndex int) int
}

// tailExcluder is implemented by kernels whose quad primitive reads or
// writes a fixed-size window wider than a quad's true length (a 16-byte
// vector load or store, in particular) and so cannot safely run on the
// last few quads of a buffer, where that window would run past the
// buffer's end. Encode and Decode fall back to Scalar, which has no such
// requirement, for however many trailing quads TailQuads reports.
//
// Three is the exact margin for a 16-byte window: a quad's payload can be
// as short as 4 bytes, so a 16-byte access needs up to 12 more bytes past
// the quad it targets, and only quads followed by at least 3 further
// complete quads are guaranteed to have them.
type tailExcluder interface {
	TailQuads() int
}

func tailQuadsFor(k any) int {
	if te, ok := k.(tailExcluder); ok {
		return te.TailQuads()
	}
	return 0
}
