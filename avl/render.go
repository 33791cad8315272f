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
	"cmp"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultNameWidth is the display width names are capped at in node labels.
const DefaultNameWidth = 20

const (
	emptyNodeID    = "Vazio"
	emptyNodeLabel = "Árvore Vazia"
	nodeStyle      = "fill:#60a5fa,stroke:#2563eb,stroke-width:2px,color:#fff"
)

// Identifier is implemented by payloads that carry their own natural
// identifier. An empty NodeID falls back to the key.
type Identifier interface {
	NodeID() string
}

// Labeler is implemented by payloads that describe themselves in a node
// label. Each returned string is rendered on its own line. A nil result falls
// back to the key.
type Labeler interface {
	LabelLines(nameWidth int) []string
}

type RenderOptions struct {
	NameWidth int
}

func (o RenderOptions) nameWidth() int {
	if o.NameWidth <= 0 {
		return DefaultNameWidth
	}
	return o.NameWidth
}

type graphNode struct {
	id    string
	lines []string
}

type graphEdge struct {
	from, to string
}

// TruncateName caps name at width display cells and appends "..." when it
// was cut.
func TruncateName(name string, width int) string {
	if runewidth.StringWidth(name) <= width {
		return name
	}
	return runewidth.Truncate(name, width, "") + "..."
}

// RenderMermaid describes the current shape of the tree as a Mermaid
// "graph TD" flowchart. Nodes are visited in pre-order, children left then
// right.
func (tree *Tree[K, V]) RenderMermaid(opts RenderOptions) string {
	if tree.root == nil {
		return fmt.Sprintf("graph TD;\n%s[\"%s\"]", emptyNodeID, emptyNodeLabel)
	}

	nodes, edges := tree.graph(opts)

	lines := make([]string, 0, 2*len(nodes)+len(edges)+2)
	for _, n := range nodes {
		label := strings.ReplaceAll(strings.Join(n.lines, "<br/>"), `"`, "#quot;")
		lines = append(lines, fmt.Sprintf("    %s[\"%s\"]", n.id, label))
	}
	lines = append(lines, "")
	for _, e := range edges {
		lines = append(lines, fmt.Sprintf("    %s --> %s", e.from, e.to))
	}
	lines = append(lines, "")
	for _, n := range nodes {
		lines = append(lines, fmt.Sprintf("    style %s %s", n.id, nodeStyle))
	}

	return "graph TD;\n" + strings.Join(lines, "\n")
}

// RenderDOT describes the same walk as RenderMermaid in Graphviz syntax.
func (tree *Tree[K, V]) RenderDOT(opts RenderOptions) string {
	var b strings.Builder
	b.WriteString("digraph AVL {\n")

	if tree.root == nil {
		fmt.Fprintf(&b, "    %s [label=\"%s\"];\n}", emptyNodeID, emptyNodeLabel)
		return b.String()
	}

	b.WriteString("    node [shape=box, style=filled, fillcolor=\"#60a5fa\", color=\"#2563eb\", fontcolor=\"#ffffff\"];\n")
	nodes, edges := tree.graph(opts)
	for _, n := range nodes {
		escaped := make([]string, len(n.lines))
		for i, l := range n.lines {
			escaped[i] = dotEscape(l)
		}
		fmt.Fprintf(&b, "    %s [label=\"%s\"];\n", n.id, strings.Join(escaped, `\n`))
	}
	for _, e := range edges {
		fmt.Fprintf(&b, "    %s -> %s;\n", e.from, e.to)
	}
	b.WriteString("}")
	return b.String()
}

func (tree *Tree[K, V]) graph(opts RenderOptions) ([]graphNode, []graphEdge) {
	var nodes []graphNode
	var edges []graphEdge
	width := opts.nameWidth()

	var walk func(n *Node[K, V])
	walk = func(n *Node[K, V]) {
		id := nodeID(n)
		nodes = append(nodes, graphNode{id: id, lines: nodeLabel(n, width)})
		if n.left != nil {
			edges = append(edges, graphEdge{from: id, to: nodeID(n.left)})
			walk(n.left)
		}
		if n.right != nil {
			edges = append(edges, graphEdge{from: id, to: nodeID(n.right)})
			walk(n.right)
		}
	}
	walk(tree.root)

	return nodes, edges
}

func nodeID[K cmp.Ordered, V any](n *Node[K, V]) string {
	if ident, ok := any(n.value).(Identifier); ok {
		if id := ident.NodeID(); id != "" {
			return "Node" + sanitizeID(id)
		}
	}
	return "Node" + sanitizeID(fmt.Sprint(n.key))
}

func nodeLabel[K cmp.Ordered, V any](n *Node[K, V], width int) []string {
	if l, ok := any(n.value).(Labeler); ok {
		if lines := l.LabelLines(width); lines != nil {
			return lines
		}
	}
	return []string{fmt.Sprint(n.key)}
}

func sanitizeID(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '-':
			return 'n'
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, s)
}

func dotEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
