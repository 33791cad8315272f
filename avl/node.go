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

import "cmp"

// Node is a single element of the tree. Children are owned exclusively by
// their parent; Height is cached and maintained by the Tree.
type Node[K cmp.Ordered, V any] struct {
	key    K
	value  V
	height int
	left   *Node[K, V]
	right  *Node[K, V]
}

func newLeaf[K cmp.Ordered, V any](key K, value V) *Node[K, V] {
	return &Node[K, V]{key: key, value: value, height: 1}
}

func (n *Node[K, V]) Key() K { return n.key }

func (n *Node[K, V]) Value() V { return n.value }

// Height returns the cached height, 0 for a nil node.
func (n *Node[K, V]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *Node[K, V]) Left() *Node[K, V] { return n.left }

func (n *Node[K, V]) Right() *Node[K, V] { return n.right }
