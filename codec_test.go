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
	"bytes"
	"math/rand"
	"testing"

	"github.com/ajroetker/streamvbyte/internal/randgen"
)

func encodeRoundTrip[E Encoder, D Decoder](t *testing.T, nums []uint32) {
	t.Helper()
	out := make([]byte, MaxEncodedLen(len(nums)))
	n := Encode[E](nums, out)

	wantLen := computeEncodedShape(len(nums)).controlBytesLen
	for _, v := range nums {
		wantLen += lenScalar(v)
	}
	if n != wantLen {
		t.Fatalf("Encode returned %d bytes, want %d", n, wantLen)
	}

	decoded := make([]uint32, len(nums))
	got := Decode[D](out[:n], len(nums), decoded)
	if got != n {
		t.Fatalf("Decode consumed %d bytes, want %d", got, n)
	}
	for i, want := range nums {
		if decoded[i] != want {
			t.Fatalf("decoded[%d] = %#x, want %#x", i, decoded[i], want)
		}
	}
}

func TestRoundTripScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{0, 1, 2, 3, 4, 5, 7, 8, 100, 4999} {
		nums := randgen.LengthUniform(rng, n)
		encodeRoundTrip[Scalar, Scalar](t, nums)
	}
}

func TestNonClobber(t *testing.T) {
	nums := []uint32{1, 2, 3, 4, 5}
	out := make([]byte, MaxEncodedLen(len(nums))+8)
	for i := range out {
		out[i] = 0xAB
	}
	n := Encode[Scalar](nums, out)
	for i := n; i < len(out); i++ {
		if out[i] != 0xAB {
			t.Fatalf("byte %d beyond bytes_written was clobbered", i)
		}
	}

	decoded := make([]uint32, len(nums)+3)
	for i := range decoded {
		decoded[i] = 0xDEADBEEF
	}
	Decode[Scalar](out[:n], len(nums), decoded)
	for i := len(nums); i < len(decoded); i++ {
		if decoded[i] != 0xDEADBEEF {
			t.Fatalf("element %d beyond count was clobbered", i)
		}
	}
}

func TestEncodeScenarios(t *testing.T) {
	tests := []struct {
		name string
		nums []uint32
		want []byte
	}{
		{"single zero", []uint32{0}, []byte{0x00, 0x00}},
		{"empty", []uint32{}, nil},
		{
			"mixed lengths",
			[]uint32{0, 256, 196608, 117440512, 512, 262144},
			[]byte{
				0xE4, 0x09,
				0x00, 0x00, 0x01,
				0x00, 0x00, 0x03,
				0x00, 0x00, 0x00, 0x07,
				0x00, 0x02,
				0x00, 0x00, 0x04,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := make([]byte, MaxEncodedLen(len(tt.nums)))
			n := Encode[Scalar](tt.nums, out)
			if !bytes.Equal(out[:n], tt.want) {
				t.Errorf("Encode(%v) = % X, want % X", tt.nums, out[:n], tt.want)
			}
		})
	}
}

func TestDecodeSequential(t *testing.T) {
	nums := make([]uint32, 12)
	for i := range nums {
		nums[i] = uint32(i)
	}
	out := make([]byte, MaxEncodedLen(len(nums)))
	n := Encode[Scalar](nums, out)

	decoded := make([]uint32, len(nums))
	Decode[Scalar](out[:n], len(nums), decoded)
	for i, want := range nums {
		if decoded[i] != want {
			t.Fatalf("decoded[%d] = %d, want %d", i, decoded[i], want)
		}
	}
}

func TestCursorSkipToEnd(t *testing.T) {
	nums := make([]uint32, 100)
	for i := range nums {
		nums[i] = uint32(i)
	}
	out := make([]byte, MaxEncodedLen(len(nums)))
	n := Encode[Scalar](nums, out)

	c := NewDecodeCursor(out[:n], len(nums))
	c.Skip(100)
	if c.HasMore() {
		t.Fatal("HasMore() = true after skipping every number")
	}
}

func TestMaxEncodedLen(t *testing.T) {
	if got := MaxEncodedLen(0); got != 0 {
		t.Errorf("MaxEncodedLen(0) = %d, want 0", got)
	}
	if got := MaxEncodedLen(4); got != 1+16 {
		t.Errorf("MaxEncodedLen(4) = %d, want %d", got, 1+16)
	}
}
