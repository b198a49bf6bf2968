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

import "testing"

func TestLenScalar(t *testing.T) {
	tests := []struct {
		name string
		num  uint32
		want int
	}{
		{"zero", 0, 1},
		{"one byte max", 0xFF, 1},
		{"two byte min", 0x100, 2},
		{"two byte max", 0xFFFF, 2},
		{"three byte min", 0x10000, 3},
		{"four byte min", 0x1000000, 4},
		{"max uint32", 0xFFFFFFFF, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lenScalar(tt.num); got != tt.want {
				t.Errorf("lenScalar(%#x) = %d, want %d", tt.num, got, tt.want)
			}
		})
	}
}

func TestEncodeDecodeNumScalarRoundTrip(t *testing.T) {
	nums := []uint32{0, 1, 0xFF, 0x100, 0xFFFF, 0x10000, 0xFFFFFF, 0x1000000, 0xFFFFFFFF}
	for _, num := range nums {
		var buf [4]byte
		n := EncodeNumScalar(num, buf[:])
		if n != lenScalar(num) {
			t.Fatalf("EncodeNumScalar(%#x) wrote %d bytes, want %d", num, n, lenScalar(num))
		}
		got := DecodeNumScalar(n, buf[:])
		if got != num {
			t.Fatalf("round trip %#x -> %#x", num, got)
		}
	}
}

func TestScalarEncodeDecodeQuads(t *testing.T) {
	var s Scalar
	quad := [4]uint32{0, 300, 70000, 0xFFFFFFFF}

	var ctrl byte
	payload := make([]byte, 16)
	written := s.EncodeQuads(quad, &ctrl, payload)
	if written != 1+2+3+4 {
		t.Fatalf("EncodeQuads wrote %d bytes, want %d", written, 1+2+3+4)
	}

	sink := NewSliceSink(make([]uint32, 4))
	read := s.DecodeQuads(ctrl, payload, sink, 0)
	if read != written {
		t.Fatalf("DecodeQuads read %d bytes, want %d", read, written)
	}
	for i, want := range quad {
		if sink.Output[i] != want {
			t.Errorf("lane %d = %#x, want %#x", i, sink.Output[i], want)
		}
	}
}
