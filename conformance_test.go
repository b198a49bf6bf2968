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
	_ "embed"
	"testing"
)

//go:embed testdata/data.bin
var goldenData []byte

// TestReferenceConformance checks that encoding 0, 100, 200, ..., 499900
// (5000 values) reproduces the shipped golden file byte for byte. The
// golden bytes match the reference C implementation's output for the same
// sequence.
func TestReferenceConformance(t *testing.T) {
	nums := make([]uint32, 5000)
	for i := range nums {
		nums[i] = uint32(i * 100)
	}

	out := make([]byte, MaxEncodedLen(len(nums)))
	n := Encode[Scalar](nums, out)

	if !bytes.Equal(out[:n], goldenData) {
		t.Fatalf("encoded output does not match testdata/data.bin (got %d bytes, want %d)", n, len(goldenData))
	}

	decoded := make([]uint32, len(nums))
	Decode[Scalar](goldenData, len(nums), decoded)
	for i, want := range nums {
		if decoded[i] != want {
			t.Fatalf("decoding golden file: decoded[%d] = %d, want %d", i, decoded[i], want)
		}
	}
}
