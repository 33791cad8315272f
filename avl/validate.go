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
	"errors"
	"fmt"
)

var (
	ErrHeightMismatch = errors.New("cached height does not match subtree")
	ErrUnbalanced     = errors.New("balance factor out of range")
	ErrOrdering       = errors.New("keys out of order")
)

// Validate recomputes every height from the tree shape and checks it against
// the cached value, the balance bound and the in-order key ordering. The first
// violation found is returned.
func (tree *Tree[K, V]) Validate() error {
	if _, err := tree.checkNode(tree.root); err != nil {
		return err
	}

	first := true
	var prev K
	for k := range tree.Keys() {
		// duplicates may straddle a rotation, so only descending pairs fail
		if !first && k < prev {
			return fmt.Errorf("%w: %v follows %v", ErrOrdering, k, prev)
		}
		prev = k
		first = false
	}
	return nil
}

func (tree *Tree[K, V]) checkNode(node *Node[K, V]) (int, error) {
	if node == nil {
		return 0, nil
	}

	lh, err := tree.checkNode(node.left)
	if err != nil {
		return 0, err
	}
	rh, err := tree.checkNode(node.right)
	if err != nil {
		return 0, err
	}

	h := max(lh, rh) + 1
	if node.height != h {
		return 0, fmt.Errorf("%w: key %v has height %d, want %d", ErrHeightMismatch, node.key, node.height, h)
	}
	if bf := lh - rh; bf > 1 || bf < -1 {
		return 0, fmt.Errorf("%w: key %v has balance factor %d", ErrUnbalanced, node.key, bf)
	}
	return h, nil
}
