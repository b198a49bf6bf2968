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

//go:build amd64 && !purego

package streamvbyte

import "golang.org/x/sys/cpu"

// This file wires the SSSE3 kernel to the public dispatch variables. The
// z_ prefix makes this file sort after dispatch.go, so its init() runs
// second and can unconditionally override rather than needing to
// coordinate ordering with it.
func init() {
	if cpu.X86.HasSSSE3 {
		EncodeAuto = Encode[SSSE3]
		DecodeAuto = Decode[SSSE3]
	}
}
