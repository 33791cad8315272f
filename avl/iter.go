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

import "iter"

// All returns an iterator over every key-value pair in ascending key order.
// Each call to the returned sequence walks the tree from the root again.
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		tree.root.items(yield)
	}
}

// Keys returns an iterator over the keys in ascending order.
func (tree *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		tree.root.keys(yield)
	}
}

// Len counts the entries by walking the ascending sequence.
func (tree *Tree[K, V]) Len() int {
	count := 0
	for range tree.All() {
		count++
	}
	return count
}

func (n *Node[K, V]) items(yield func(K, V) bool) bool {
	if n == nil {
		return true // doesn't terminate further iteration
	}
	return n.left.items(yield) && yield(n.key, n.value) && n.right.items(yield)
}

func (n *Node[K, V]) keys(yield func(K) bool) bool {
	if n == nil {
		return true
	}
	return n.left.keys(yield) && yield(n.key) && n.right.keys(yield)
}
