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

// Command gentables regenerates tables_data.go, the four 256-entry lookup
// tables that drive streamvbyte's scalar and SIMD kernels.
//
// It is never imported by the streamvbyte package; its only interaction
// with the codec is the static Go source it writes. Run it with:
//
//	go run ./cmd/gentables -output tables_data.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
)

const licenseHeader = `// Copyright 2025 streamvbyte Authors
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

`

func lanes(ctrl int) [4]int {
	var l [4]int
	for i := 0; i < 4; i++ {
		l[i] = ((ctrl >> (2 * i)) & 0x3) + 1
	}
	return l
}

func main() {
	output := flag.String("output", "tables_data.go", "path to write the generated table source to")
	flag.Parse()

	var buf bytes.Buffer
	buf.WriteString(licenseHeader)
	fmt.Fprintln(&buf, "package streamvbyte")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "// Generated by cmd/gentables. DO NOT EDIT.")
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "// lens holds the four per-lane lengths (1-4) encoded by each of the 256")
	fmt.Fprintln(&buf, "// possible control-byte values.")
	fmt.Fprintln(&buf, "var lens = [256][4]uint8{")
	for c := 0; c < 256; c++ {
		l := lanes(c)
		fmt.Fprintf(&buf, "\t{%d, %d, %d, %d}, // 0x%02X\n", l[0], l[1], l[2], l[3], c)
	}
	fmt.Fprintln(&buf, "}")
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "// quadLen holds the total payload length (4-16) consumed by the quad")
	fmt.Fprintln(&buf, "// described by each control-byte value.")
	fmt.Fprintln(&buf, "var quadLen = [256]uint8{")
	for c := 0; c < 256; c += 16 {
		fmt.Fprint(&buf, "\t")
		for i := 0; i < 16; i++ {
			l := lanes(c + i)
			fmt.Fprintf(&buf, "%d, ", l[0]+l[1]+l[2]+l[3])
		}
		fmt.Fprintln(&buf)
	}
	fmt.Fprintln(&buf, "}")
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "// decodeShuffle holds, for each control-byte value, the 16-byte PSHUFB-class")
	fmt.Fprintln(&buf, "// mask that gathers the variable-length payload bytes of one quad into four")
	fmt.Fprintln(&buf, "// contiguous little-endian uint32 lanes. 0x80 marks a sentinel byte that a")
	fmt.Fprintln(&buf, "// byte-shuffle instruction zeroes instead of gathering.")
	fmt.Fprintln(&buf, "var decodeShuffle = [256][16]uint8{")
	for c := 0; c < 256; c++ {
		l := lanes(c)
		offs := [4]int{0, l[0], l[0] + l[1], l[0] + l[1] + l[2]}
		var mask [16]int
		for i := range mask {
			mask[i] = 0x80
		}
		for lane := 0; lane < 4; lane++ {
			for i := 0; i < l[lane]; i++ {
				mask[4*lane+i] = offs[lane] + i
			}
		}
		fmt.Fprint(&buf, "\t{")
		for _, m := range mask {
			fmt.Fprintf(&buf, "0x%02X, ", m)
		}
		fmt.Fprintf(&buf, "}, // 0x%02X\n", c)
	}
	fmt.Fprintln(&buf, "}")
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "// encodeShuffle holds, for each control-byte value, the 16-byte PSHUFB-class")
	fmt.Fprintln(&buf, "// mask that packs four 4-byte little-endian lanes down to their true")
	fmt.Fprintln(&buf, "// lengths, contiguously. Unused trailing output positions read from the")
	fmt.Fprintln(&buf, "// 0x80 sentinel and are zeroed.")
	fmt.Fprintln(&buf, "var encodeShuffle = [256][16]uint8{")
	for c := 0; c < 256; c++ {
		l := lanes(c)
		var mask [16]int
		for i := range mask {
			mask[i] = 0x80
		}
		outPos := 0
		for lane := 0; lane < 4; lane++ {
			for i := 0; i < l[lane]; i++ {
				mask[outPos] = 4*lane + i
				outPos++
			}
		}
		fmt.Fprint(&buf, "\t{")
		for _, m := range mask {
			fmt.Fprintf(&buf, "0x%02X, ", m)
		}
		fmt.Fprintf(&buf, "}, // 0x%02X\n", c)
	}
	fmt.Fprintln(&buf, "}")

	// gofmt the emitted source so regenerating reproduces the committed
	// file exactly (alignment, trailing commas in one-line literals).
	src, err := format.Source(buf.Bytes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "gentables: formatting output: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*output, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "gentables: %v\n", err)
		os.Exit(1)
	}
}
