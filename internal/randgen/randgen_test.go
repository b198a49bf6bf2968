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

package randgen

import (
	"math/rand"
	"testing"
)

func TestLengthUniformCoversAllLengthClasses(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	nums := LengthUniform(rng, 4000)

	var buckets [4]int
	for _, n := range nums {
		switch {
		case n < 1<<8:
			buckets[0]++
		case n < 1<<16:
			buckets[1]++
		case n < 1<<24:
			buckets[2]++
		default:
			buckets[3]++
		}
	}
	for i, count := range buckets {
		if count == 0 {
			t.Errorf("length class %d was never sampled across %d draws", i, len(nums))
		}
	}
}

func TestLengthUniformReturnsRequestedCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if got := len(LengthUniform(rng, 37)); got != 37 {
		t.Errorf("len = %d, want 37", got)
	}
}
