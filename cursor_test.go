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

import (
	"math/rand"
	"testing"

	"github.com/ajroetker/streamvbyte/internal/randgen"
)

func TestCursorDecodeSliceChunked(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	nums := randgen.LengthUniform(rng, 97)
	out := make([]byte, MaxEncodedLen(len(nums)))
	n := Encode[Scalar](nums, out)

	// Chunks below 4 are excluded: away from the stream's end a call with
	// budget < 4 legitimately decodes nothing (it can't split a quad), so
	// a loop feeding it would never finish.
	for _, chunk := range []int{4, 5, 7, 10, 97, 200} {
		c := NewDecodeCursor(out[:n], len(nums))
		var got []uint32
		for c.HasMore() {
			buf := make([]uint32, chunk)
			k := DecodeSlice[Scalar](c, buf)
			got = append(got, buf[:k]...)
		}
		if len(got) != len(nums) {
			t.Fatalf("chunk %d: decoded %d numbers, want %d", chunk, len(got), len(nums))
		}
		for i, want := range nums {
			if got[i] != want {
				t.Fatalf("chunk %d: got[%d] = %#x, want %#x", chunk, i, got[i], want)
			}
		}
	}
}

func TestScalarKernelHonorsBudget(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	nums := randgen.LengthUniform(rng, 80)
	out := make([]byte, MaxEncodedLen(len(nums)))
	n := Encode[Scalar](nums, out)

	shape := computeEncodedShape(len(nums))
	for budget := 0; budget <= shape.completeControlBytesLen; budget++ {
		c := NewDecodeCursor(out[:n], len(nums))
		buf := make([]uint32, 4*budget)
		k := DecodeSink[Scalar](c, NewSliceSink(buf), 4*budget)
		if k%4 != 0 {
			t.Fatalf("budget %d: decoded %d numbers, not a multiple of 4", budget, k)
		}
		if k > 4*budget {
			t.Fatalf("budget %d: decoded %d numbers, exceeds 4*budget", budget, k)
		}
	}
}

func TestCursorSmallBudgetReturnsNothingMidStream(t *testing.T) {
	nums := []uint32{1, 2, 3, 4, 5, 6, 7, 8}
	out := make([]byte, MaxEncodedLen(len(nums)))
	n := Encode[Scalar](nums, out)

	c := NewDecodeCursor(out[:n], len(nums))
	buf := make([]uint32, 3)
	if k := DecodeSlice[Scalar](c, buf); k != 0 {
		t.Fatalf("DecodeSlice with budget 3 decoded %d mid-stream, want 0", k)
	}
	if c.InputConsumed() != computeEncodedShape(len(nums)).controlBytesLen {
		t.Fatal("cursor advanced despite decoding nothing")
	}
}

func TestCursorSkipCorrectness(t *testing.T) {
	nums := make([]uint32, 40)
	for i := range nums {
		nums[i] = uint32(i * 12345)
	}
	out := make([]byte, MaxEncodedLen(len(nums)))
	n := Encode[Scalar](nums, out)

	for s := 0; s <= 36; s += 4 {
		c := NewDecodeCursor(out[:n], len(nums))
		c.Skip(s)
		remaining := make([]uint32, len(nums)-s)
		k := DecodeSlice[Scalar](c, remaining)
		if k != len(remaining) {
			t.Fatalf("skip %d: decoded %d, want %d", s, k, len(remaining))
		}
		for i, want := range nums[s:] {
			if remaining[i] != want {
				t.Fatalf("skip %d: remaining[%d] = %#x, want %#x", s, i, remaining[i], want)
			}
		}
	}
}

func TestCursorSkipRejectsMisalignment(t *testing.T) {
	nums := []uint32{1, 2, 3, 4, 5, 6, 7, 8}
	out := make([]byte, MaxEncodedLen(len(nums)))
	n := Encode[Scalar](nums, out)
	c := NewDecodeCursor(out[:n], len(nums))

	defer func() {
		if recover() == nil {
			t.Fatal("Skip(3) did not panic")
		}
	}()
	c.Skip(3)
}

func TestCursorSkipRejectsOverrun(t *testing.T) {
	nums := []uint32{1, 2, 3, 4}
	out := make([]byte, MaxEncodedLen(len(nums)))
	n := Encode[Scalar](nums, out)
	c := NewDecodeCursor(out[:n], len(nums))

	defer func() {
		if recover() == nil {
			t.Fatal("Skip(8) did not panic")
		}
	}()
	c.Skip(8)
}

func TestCursorInputConsumed(t *testing.T) {
	nums := []uint32{0, 256, 196608, 117440512, 512, 262144}
	out := make([]byte, MaxEncodedLen(len(nums)))
	n := Encode[Scalar](nums, out)

	c := NewDecodeCursor(out[:n], len(nums))
	// The control-byte region's size is fixed by the count alone, so it is
	// consumed up front; only payload consumption grows with decoding.
	ctrlLen := computeEncodedShape(len(nums)).controlBytesLen
	if c.InputConsumed() != ctrlLen {
		t.Fatalf("InputConsumed() = %d before any work, want %d", c.InputConsumed(), ctrlLen)
	}
	buf := make([]uint32, len(nums))
	DecodeSlice[Scalar](c, buf)
	if c.InputConsumed() != n {
		t.Fatalf("InputConsumed() = %d after full decode, want %d", c.InputConsumed(), n)
	}
}

func TestCursorTrailingPartialQuadIsAtomic(t *testing.T) {
	// 6 numbers: one complete quad, a trailing partial quad of 2. A budget
	// that covers the complete quad but falls short of the trailing two
	// numbers must deliver 0 of them, never 1: the trailing partial quad
	// is delivered all at once or not at all.
	nums := []uint32{10, 20, 30, 40, 50, 60}
	out := make([]byte, MaxEncodedLen(len(nums)))
	n := Encode[Scalar](nums, out)

	c := NewDecodeCursor(out[:n], len(nums))
	buf := make([]uint32, 5)
	k := DecodeSlice[Scalar](c, buf)
	if k != 4 {
		t.Fatalf("first call decoded %d, want 4 (partial quad withheld)", k)
	}
	if !c.HasMore() {
		t.Fatal("HasMore() = false, want true: trailing partial quad still pending")
	}

	buf2 := make([]uint32, 2)
	k2 := DecodeSlice[Scalar](c, buf2)
	if k2 != 2 {
		t.Fatalf("second call decoded %d, want 2", k2)
	}
	if buf2[0] != 50 || buf2[1] != 60 {
		t.Fatalf("trailing quad = %v, want [50 60]", buf2)
	}
	if c.HasMore() {
		t.Fatal("HasMore() = true after decoding everything")
	}
}
