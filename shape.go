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

// encodedShape describes the derived geometry of an encoded stream for a
// given logical element count.
type encodedShape struct {
	// controlBytesLen is ceil(count/4): the length of region A.
	controlBytesLen int
	// completeControlBytesLen is floor(count/4): control bytes that
	// describe a full quad of four numbers.
	completeControlBytesLen int
	// leftoverNumbers is count mod 4, in [0,3]: the size of the trailing
	// partial quad, if any.
	leftoverNumbers int
}

func computeEncodedShape(count int) encodedShape {
	return encodedShape{
		controlBytesLen:         (count + 3) / 4,
		completeControlBytesLen: count / 4,
		leftoverNumbers:         count % 4,
	}
}

// cumulativeEncodedLen sums the total quad length (control-byte-driven, per
// tables.go's quadLen table) across controlBytes. Used by Skip to find how
// many payload bytes the skipped quads occupy.
func cumulativeEncodedLen(controlBytes []byte) int {
	total := 0
	for _, b := range controlBytes {
		total += int(quadLen[b])
	}
	return total
}
