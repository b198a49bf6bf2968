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

import (
	"math/rand"
	"testing"

	"github.com/ajroetker/streamvbyte/internal/randgen"
)

// TestSSSE3TailQuadsBoundary pins the vector kernel's exclusion margin:
// it must never be asked to process any of the last 3 complete quads of a
// buffer, because its 16-byte load/store window can run past payload that
// doesn't exist.
func TestSSSE3TailQuadsBoundary(t *testing.T) {
	var k SSSE3
	if got := k.TailQuads(); got != 3 {
		t.Fatalf("SSSE3.TailQuads() = %d, want 3", got)
	}
}

// TestSSSE3NonClobberAtBufferEnd exercises encode/decode at sizes where the
// complete-quad region is exactly 1 through 5 quads: the 1-3 quad cases
// force every complete quad through Scalar (tail-excluded), and the 4-quad
// case is the smallest buffer where the SSSE3 kernel touches any quad at
// all (quad 0, since quads 1-3 are the last three). Bytes beyond what each
// call reports writing or reading must stay untouched.
func TestSSSE3NonClobberAtBufferEnd(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, quads := range []int{1, 2, 3, 4, 5} {
		nums := randgen.LengthUniform(rng, 4*quads)

		out := make([]byte, MaxEncodedLen(len(nums))+8)
		for i := range out {
			out[i] = 0xCC
		}
		n := Encode[SSSE3](nums, out)
		for i := n; i < len(out); i++ {
			if out[i] != 0xCC {
				t.Fatalf("quads=%d: byte %d beyond bytes_written was clobbered", quads, i)
			}
		}

		decoded := make([]uint32, len(nums)+4)
		for i := range decoded {
			decoded[i] = 0xDEADBEEF
		}
		Decode[SSSE3](out[:n], len(nums), decoded)
		for i, want := range nums {
			if decoded[i] != want {
				t.Fatalf("quads=%d: decoded[%d] = %#x, want %#x", quads, i, decoded[i], want)
			}
		}
		for i := len(nums); i < len(decoded); i++ {
			if decoded[i] != 0xDEADBEEF {
				t.Fatalf("quads=%d: element %d beyond count was clobbered", quads, i)
			}
		}
	}
}

// TestSSSE3SafeLimitExcludesLastThreeQuads checks the safe-limit
// arithmetic cursor.go and codec.go share: for any stream size, the limit
// must leave the last TailQuads() complete quads (or every complete quad,
// when there are fewer than that) to the scalar kernel.
func TestSSSE3SafeLimitExcludesLastThreeQuads(t *testing.T) {
	var k SSSE3
	for _, total := range []int{4, 8, 12, 16, 100} {
		shape := computeEncodedShape(total)
		safeLimit := shape.completeControlBytesLen - tailQuadsFor(k)
		if safeLimit < 0 {
			safeLimit = 0
		}
		wantScalar := k.TailQuads()
		if wantScalar > shape.completeControlBytesLen {
			wantScalar = shape.completeControlBytesLen
		}
		if shape.completeControlBytesLen-safeLimit < wantScalar && shape.completeControlBytesLen > 0 {
			t.Fatalf("total=%d: safeLimit %d leaves fewer than %d quads for Scalar (completeControlBytesLen=%d)",
				total, safeLimit, wantScalar, shape.completeControlBytesLen)
		}
	}
}

func TestRoundTripSSSE3(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, n := range []int{0, 1, 4, 7, 8, 40, 41, 4999} {
		nums := randgen.LengthUniform(rng, n)
		encodeRoundTrip[SSSE3, SSSE3](t, nums)
	}
}

func TestRoundTripMixedKernels(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	nums := randgen.LengthUniform(rng, 200)
	encodeRoundTrip[SSSE3, Scalar](t, nums)
	encodeRoundTrip[Scalar, SSSE3](t, nums)
}

func TestSSSE3KernelHonorsBudget(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	nums := randgen.LengthUniform(rng, 80)
	out := make([]byte, MaxEncodedLen(len(nums)))
	n := Encode[SSSE3](nums, out)

	shape := computeEncodedShape(len(nums))
	for budget := 0; budget <= shape.completeControlBytesLen; budget++ {
		c := NewDecodeCursor(out[:n], len(nums))
		buf := make([]uint32, 4*budget)
		k := DecodeSink[SSSE3](c, NewSliceSink(buf), 4*budget)
		if k%4 != 0 {
			t.Fatalf("budget %d: decoded %d numbers, not a multiple of 4", budget, k)
		}
		if k > 4*budget {
			t.Fatalf("budget %d: decoded %d numbers, exceeds 4*budget", budget, k)
		}
	}
}
