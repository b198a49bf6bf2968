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

// Package randgen generates uint32 values whose encoded byte length (1-4)
// is uniformly distributed, for exercising every kernel code path in
// roughly equal measure. A uniform sample of the full uint32 range is
// biased heavily towards 4-byte values (there are vastly more large
// numbers than small ones), which would barely touch the 1- and 2-byte
// cases a real corpus of small counters or deltas hits constantly.
package randgen

import (
	"math/rand"

	"github.com/samber/lo"
)

// lengthRange is the [lo, hi) span of values that encode to a given byte
// length under Stream VByte's "fewest significant bytes" rule.
type lengthRange struct {
	lo, hi uint64
}

var ranges = []lengthRange{
	{0, 1 << 8},
	{1 << 8, 1 << 16},
	{1 << 16, 1 << 24},
	{1 << 24, 1 << 32},
}

// LengthUniform returns n values whose encoded byte length is uniformly
// distributed across 1-4. lo.Sample picks the bucket; the value within it
// still comes from the caller's rand source.
func LengthUniform(rng *rand.Rand, n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		r := lo.Sample(ranges)
		out[i] = uint32(r.lo + uint64(rng.Int63n(int64(r.hi-r.lo))))
	}
	return out
}
