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

func TestIdentityTransformerEncodesSameAsEncode(t *testing.T) {
	nums := []uint32{0, 1, 256, 70000, 0xFFFFFFFF, 5, 6, 7, 8}

	plain := make([]byte, MaxEncodedLen(len(nums)))
	nPlain := Encode[Scalar](nums, plain)

	transformed := make([]byte, MaxEncodedLen(len(nums)))
	nTransformed := EncodeTransformed[Scalar](nums, IdentityTransformer{}, transformed)

	if nPlain != nTransformed {
		t.Fatalf("lengths differ: %d vs %d", nPlain, nTransformed)
	}
	for i := 0; i < nPlain; i++ {
		if plain[i] != transformed[i] {
			t.Fatalf("byte %d differs: %#x vs %#x", i, plain[i], transformed[i])
		}
	}
}

func TestDeltaTransformerRoundTripsWithManualInverse(t *testing.T) {
	nums := []uint32{100, 105, 90, 90, 1000, 999, 0}

	out := make([]byte, MaxEncodedLen(len(nums)))
	tr := &DeltaTransformer{}
	n := EncodeTransformed[Scalar](nums, tr, out)

	decoded := make([]uint32, len(nums))
	Decode[Scalar](out[:n], len(nums), decoded)

	var prev uint32
	for i, zz := range decoded {
		delta := int32(zz>>1) ^ -int32(zz&1)
		got := prev + uint32(delta)
		if got != nums[i] {
			t.Fatalf("element %d: inverse gave %d, want %d", i, got, nums[i])
		}
		prev = got
	}
}
