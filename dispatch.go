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

// Dispatch function variables.
// These are initialized to the portable Scalar kernel and may be
// overridden by architecture-specific optimized kernels in init().

var (
	// EncodeAuto encodes using the best kernel available on this CPU.
	EncodeAuto func(input []uint32, output []byte) int

	// DecodeAuto decodes using the best kernel available on this CPU.
	DecodeAuto func(input []byte, count int, output []uint32) int
)

func init() {
	// Initialize with the portable Scalar kernel. This may be overridden
	// by an architecture-specific init() in a z_*.go file (e.g.
	// z_dispatch_amd64.go), which runs after this one.
	EncodeAuto = Encode[Scalar]
	DecodeAuto = Decode[Scalar]
}
