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

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avlstore %s**

A product catalog kept in a self-balancing AVL tree, keyed by product code.
Every insert and removal keeps the tree balanced, so lookups stay O(log n).

Built with Go %s

# 1. Commands
* **serve**: REST API on the configured address (products, tree diagram, statistics)
* **shell**: interactive prompt for add / get / update / rm / list / tree / stats
* **browse**: terminal browser for products and the tree diagram
* **tree**: print the tree as Mermaid or Graphviz DOT (use --copy for the clipboard)
* **list** and **stats**: ascending listing, height and product count
* **bench**: insert, search and remove random products and report timings

# 2. Catalog rules
* Product codes are unique. Adding an existing code is rejected
* Prices must be greater than zero and quantities must not be negative
* Categories: Eletrônicos, Roupas, Alimentos, Móveis, Livros, Brinquedos, Beleza, Esportes, Outros

# 3. Configuration
Settings live in ~/%s. Run 'avlstore config' to create or inspect the file.

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version(), configFileName)
	result := markdown.Render(message, 80, 3)
	return string(result)
}
