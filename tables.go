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

// This file documents the lookup tables consumed by the scalar and SIMD
// kernels. The tables themselves (lens, quadLen, decodeShuffle,
// encodeShuffle) live in tables_data.go and are produced offline by
// cmd/gentables, then embedded as read-only constants. There is
// deliberately no init() here: nothing is computed at startup.
//
//   - lens[ctrl]          -> four per-lane lengths, used by the scalar kernel.
//   - quadLen[ctrl]       -> total quad payload length, used to advance the
//     payload cursor when a quad is decoded or skipped.
//   - decodeShuffle[ctrl] -> 16-byte PSHUFB-class mask used by the SIMD
//     decode kernel to gather one quad's payload bytes into four
//     contiguous little-endian uint32 lanes.
//   - encodeShuffle[ctrl] -> 16-byte PSHUFB-class mask used by the SIMD
//     encode kernel to pack four 4-byte lanes down to their true lengths.
