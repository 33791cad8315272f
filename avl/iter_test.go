// Copyright 2025 Naren Yellavula
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

package avl

import (
	"slices"
	"testing"
)

func TestAllIsRestartable(t *testing.T) {
	tree := New[string, int]()
	for i, k := range []string{"pear", "apple", "fig", "kiwi", "banana"} {
		tree.Insert(k, i)
	}

	seq := tree.All()
	var first, second []string
	for k := range seq {
		first = append(first, k)
	}
	for k := range seq {
		second = append(second, k)
	}

	want := []string{"apple", "banana", "fig", "kiwi", "pear"}
	if !slices.Equal(first, want) || !slices.Equal(second, want) {
		t.Errorf("passes = %v / %v; want %v", first, second, want)
	}
}

func TestAllStopsEarly(t *testing.T) {
	tree := New[int, int]()
	for i := 100; i > 0; i-- {
		tree.Insert(i, i*i)
	}

	var got []int
	for k, v := range tree.All() {
		if k > 3 {
			break
		}
		got = append(got, v)
	}
	if want := []int{1, 4, 9}; !slices.Equal(got, want) {
		t.Errorf("values = %v; want %v", got, want)
	}
}
