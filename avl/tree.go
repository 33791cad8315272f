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

// Package avl implements a height-balanced binary search tree keyed by any
// ordered type.
//
// A Tree is not safe for concurrent use. Callers sharing one across
// goroutines must provide their own locking.
package avl

import "cmp"

type Tree[K cmp.Ordered, V any] struct {
	root *Node[K, V]
}

func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{root: nil}
}

// Root returns the root node, or nil when the tree is empty.
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Height returns the height of the whole tree. An empty tree has height 0.
func (tree *Tree[K, V]) Height() int {
	return tree.root.Height()
}

// BalanceFactor is height(left) - height(right) for the given node.
func (tree *Tree[K, V]) BalanceFactor(node *Node[K, V]) int {
	return tree.getBalanceFactor(node)
}

func (tree *Tree[K, V]) updateHeight(node *Node[K, V]) {
	node.height = max(node.left.Height(), node.right.Height()) + 1
}

func (tree *Tree[K, V]) getBalanceFactor(node *Node[K, V]) int {
	if node == nil {
		return 0
	}
	return node.left.Height() - node.right.Height()
}

func (tree *Tree[K, V]) rotateRight(y *Node[K, V]) *Node[K, V] {
	x := y.left
	t := x.right

	x.right = y
	y.left = t

	// y is now below x, so its height must be fixed first
	tree.updateHeight(y)
	tree.updateHeight(x)

	return x
}

func (tree *Tree[K, V]) rotateLeft(x *Node[K, V]) *Node[K, V] {
	y := x.right
	t := y.left

	y.left = x
	x.right = t

	tree.updateHeight(x)
	tree.updateHeight(y)

	return y
}

// Insert adds key with its value. Duplicate keys are accepted and routed to
// the right subtree of an equal key.
func (tree *Tree[K, V]) Insert(key K, value V) {
	tree.root = tree.insertRecursive(tree.root, key, value)
}

func (tree *Tree[K, V]) insertRecursive(node *Node[K, V], key K, value V) *Node[K, V] {
	if node == nil {
		return newLeaf(key, value)
	}

	if key < node.key {
		node.left = tree.insertRecursive(node.left, key, value)
	} else {
		node.right = tree.insertRecursive(node.right, key, value)
	}

	tree.updateHeight(node)

	balanceFactor := tree.getBalanceFactor(node)
	if balanceFactor > 1 {
		if key < node.left.key {
			return tree.rotateRight(node)
		}
		// Left-Right case
		node.left = tree.rotateLeft(node.left)
		return tree.rotateRight(node)
	} else if balanceFactor < -1 {
		// Equal keys descend right, so they belong to the Right-Right case.
		if key >= node.right.key {
			return tree.rotateLeft(node)
		}
		// Right-Left case
		node.right = tree.rotateRight(node.right)
		return tree.rotateLeft(node)
	}

	return node
}

// Remove deletes the first node matching key on the search path. It is a
// no-op when key is absent.
//
// A node with two children is not unlinked: it takes over the key and value
// of its in-order successor, and the successor is removed instead. Node
// pointers obtained from Root must therefore not be held across a Remove.
func (tree *Tree[K, V]) Remove(key K) {
	tree.root = tree.deleteRecursive(tree.root, key)
}

func (tree *Tree[K, V]) deleteRecursive(node *Node[K, V], key K) *Node[K, V] {
	if node == nil {
		return nil
	}

	if key < node.key {
		node.left = tree.deleteRecursive(node.left, key)
	} else if key > node.key {
		node.right = tree.deleteRecursive(node.right, key)
	} else {
		if node.left == nil {
			return node.right
		}
		if node.right == nil {
			return node.left
		}
		successor := tree.findMin(node.right)
		node.key = successor.key
		node.value = successor.value
		node.right = tree.removeMin(node.right)
	}

	tree.updateHeight(node)
	return tree.rebalance(node)
}

// removeMin unlinks the leftmost node of the subtree. It follows left links
// only, so with duplicate keys it removes exactly the node findMin returned.
func (tree *Tree[K, V]) removeMin(node *Node[K, V]) *Node[K, V] {
	if node.left == nil {
		return node.right
	}
	node.left = tree.removeMin(node.left)
	tree.updateHeight(node)
	return tree.rebalance(node)
}

func (tree *Tree[K, V]) findMin(node *Node[K, V]) *Node[K, V] {
	for node.left != nil {
		node = node.left
	}
	return node
}

func (tree *Tree[K, V]) findMax(node *Node[K, V]) *Node[K, V] {
	for node.right != nil {
		node = node.right
	}
	return node
}

func (tree *Tree[K, V]) rebalance(node *Node[K, V]) *Node[K, V] {
	balanceFactor := tree.getBalanceFactor(node)

	// Left-heavy
	if balanceFactor > 1 {
		if tree.getBalanceFactor(node.left) >= 0 {
			return tree.rotateRight(node)
		}
		node.left = tree.rotateLeft(node.left)
		return tree.rotateRight(node)
	}

	// Right-heavy
	if balanceFactor < -1 {
		if tree.getBalanceFactor(node.right) <= 0 {
			return tree.rotateLeft(node)
		}
		node.right = tree.rotateRight(node.right)
		return tree.rotateLeft(node)
	}

	return node
}

// Search returns the value stored under key and whether it was found.
func (tree *Tree[K, V]) Search(key K) (V, bool) {
	node := tree.root
	for node != nil {
		switch {
		case key < node.key:
			node = node.left
		case key > node.key:
			node = node.right
		default:
			return node.value, true
		}
	}
	var zero V
	return zero, false
}

// Min returns the smallest key and its value.
func (tree *Tree[K, V]) Min() (K, V, bool) {
	if tree.root == nil {
		var k K
		var v V
		return k, v, false
	}
	n := tree.findMin(tree.root)
	return n.key, n.value, true
}

// Max returns the largest key and its value.
func (tree *Tree[K, V]) Max() (K, V, bool) {
	if tree.root == nil {
		var k K
		var v V
		return k, v, false
	}
	n := tree.findMax(tree.root)
	return n.key, n.value, true
}
