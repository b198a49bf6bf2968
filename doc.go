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

// Package streamvbyte encodes and decodes sequences of uint32 values with
// the Stream VByte format.
//
// Stream VByte separates per-value length metadata (control bytes) from
// value payloads (data bytes) so that decoding can be dispatched through a
// precomputed shuffle table and a single 16-byte vector permute per four
// values, instead of branching on length one value at a time. Encoding and
// decoding are synchronous, allocation-free, and operate entirely on
// caller-owned buffers.
//
//	nums := []uint32{0, 100, 200, 300}
//	out := make([]byte, MaxEncodedLen(len(nums)))
//	n := Encode[Scalar](nums, out)
//
//	decoded := make([]uint32, len(nums))
//	Decode[Scalar](out[:n], len(nums), decoded)
//
// The kernel used for a given call is chosen at compile time via a generic
// type parameter (Scalar, SSSE3); EncodeAuto and DecodeAuto
// offer a runtime-CPU-detected convenience entry point for callers who
// don't want to pick a kernel themselves.
package streamvbyte
