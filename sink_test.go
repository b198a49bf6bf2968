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

func TestCallbackSinkWithoutQuadFunc(t *testing.T) {
	var got []uint32
	sink := &CallbackSink{
		OnNumberFunc: func(value uint32, index int) {
			got = append(got, value)
		},
	}
	sink.OnQuad([4]uint32{10, 20, 30, 40}, 0)
	want := []uint32{10, 20, 30, 40}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("got[%d] = %d, want %d", i, got[i], w)
		}
	}
}

func TestCallbackSinkWithQuadFunc(t *testing.T) {
	called := false
	sink := &CallbackSink{
		OnNumberFunc: func(value uint32, index int) { t.Fatal("OnNumberFunc should not be called") },
		OnQuadFunc: func(quad [4]uint32, baseIndex int) {
			called = true
		},
	}
	sink.OnQuad([4]uint32{1, 2, 3, 4}, 0)
	if !called {
		t.Fatal("OnQuadFunc was not invoked")
	}
}

func TestSliceSinkOnNumberAndOnQuad(t *testing.T) {
	out := make([]uint32, 8)
	sink := NewSliceSink(out)
	sink.OnNumber(7, 0)
	sink.OnQuad([4]uint32{1, 2, 3, 4}, 4)
	want := []uint32{7, 0, 0, 0, 1, 2, 3, 4}
	for i, w := range want {
		if out[i] != w {
			t.Errorf("out[%d] = %d, want %d", i, out[i], w)
		}
	}
}
