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

// Command streamvbyte encodes and decodes lines of decimal uint32 values.
//
// Usage:
//
//	streamvbyte enc < numbers.txt > encoded.bin
//	streamvbyte dec -count 1000 < encoded.bin > numbers.txt
//
// enc reads one decimal uint32 per line and writes the encoded bytes to
// stdout. dec reads encoded bytes and writes one decimal per line; the
// format carries no element count of its own, so -count is required.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ajroetker/streamvbyte"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "enc":
		encode()
	case "dec":
		decCmd := flag.NewFlagSet("dec", flag.ExitOnError)
		count := decCmd.Int("count", 0, "count of numbers in the encoded input (required)")
		decCmd.Parse(os.Args[2:])
		if *count <= 0 {
			fmt.Fprintln(os.Stderr, "streamvbyte dec: -count is required and must be positive")
			os.Exit(1)
		}
		decode(*count)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: streamvbyte enc | streamvbyte dec -count N")
}

func encode() {
	var nums []uint32
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		n, err := strconv.ParseUint(scanner.Text(), 10, 32)
		if err != nil {
			fmt.Fprintf(os.Stderr, "streamvbyte enc: each line must be a uint32: %v\n", err)
			os.Exit(1)
		}
		nums = append(nums, uint32(n))
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "streamvbyte enc: reading stdin: %v\n", err)
		os.Exit(1)
	}

	encoded := make([]byte, streamvbyte.MaxEncodedLen(len(nums)))
	n := streamvbyte.EncodeAuto(nums, encoded)

	if _, err := os.Stdout.Write(encoded[:n]); err != nil {
		fmt.Fprintf(os.Stderr, "streamvbyte enc: writing stdout: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Encoded %d numbers\n", len(nums))
}

func decode(count int) {
	encoded, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "streamvbyte dec: reading stdin: %v\n", err)
		os.Exit(1)
	}

	decoded := make([]uint32, count)
	streamvbyte.DecodeAuto(encoded, count, decoded)

	w := bufio.NewWriter(os.Stdout)
	for _, d := range decoded {
		fmt.Fprintln(w, d)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "streamvbyte dec: writing stdout: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Decoded %d numbers\n", count)
}
