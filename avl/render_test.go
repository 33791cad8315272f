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
	"strings"
	"testing"
)

type labeled struct {
	id   string
	name string
}

func (l labeled) NodeID() string { return l.id }

func (l labeled) LabelLines(width int) []string {
	return []string{"ID: " + l.id, TruncateName(l.name, width)}
}

func TestRenderMermaidEmpty(t *testing.T) {
	tree := New[int64, string]()
	got := tree.RenderMermaid(RenderOptions{})
	want := "graph TD;\nVazio[\"Árvore Vazia\"]"
	if got != want {
		t.Errorf("RenderMermaid() = %q; want %q", got, want)
	}
	if strings.Contains(got, "-->") {
		t.Error("empty tree rendered an edge")
	}
}

func TestRenderMermaidPreOrder(t *testing.T) {
	tree := New[int64, string]()
	for _, k := range []int64{30, 20, 40, 10, 25, 35, 50} {
		tree.Insert(k, "")
	}

	want := strings.Join([]string{
		"graph TD;",
		`    Node30["30"]`,
		`    Node20["20"]`,
		`    Node10["10"]`,
		`    Node25["25"]`,
		`    Node40["40"]`,
		`    Node35["35"]`,
		`    Node50["50"]`,
		"",
		"    Node30 --> Node20",
		"    Node20 --> Node10",
		"    Node20 --> Node25",
		"    Node30 --> Node40",
		"    Node40 --> Node35",
		"    Node40 --> Node50",
		"",
		"    style Node30 " + nodeStyle,
		"    style Node20 " + nodeStyle,
		"    style Node10 " + nodeStyle,
		"    style Node25 " + nodeStyle,
		"    style Node40 " + nodeStyle,
		"    style Node35 " + nodeStyle,
		"    style Node50 " + nodeStyle,
	}, "\n")

	got := tree.RenderMermaid(RenderOptions{})
	if got != want {
		t.Errorf("RenderMermaid mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
	// rendering must not disturb the tree
	if again := tree.RenderMermaid(RenderOptions{}); again != got {
		t.Error("second render differs from the first")
	}
}

func TestRenderUsesPayloadLabels(t *testing.T) {
	tree := New[int64, labeled]()
	tree.Insert(2, labeled{id: "200", name: "Fone de Ouvido Sony WH-1000XM4"})
	tree.Insert(1, labeled{id: "100", name: `Say "hi"`})

	got := tree.RenderMermaid(RenderOptions{})
	for _, want := range []string{
		`Node200["ID: 200<br/>Fone de Ouvido Sony ..."]`,
		`Node100["ID: 100<br/>Say #quot;hi#quot;"]`,
		"Node200 --> Node100",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderMermaid() missing %q\n%s", want, got)
		}
	}

	dot := tree.RenderDOT(RenderOptions{NameWidth: 3})
	for _, want := range []string{
		"digraph AVL {",
		`Node200 [label="ID: 200\nFon..."];`,
		`Node100 [label="ID: 100\nSay..."];`,
		"Node200 -> Node100;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("RenderDOT() missing %q\n%s", want, dot)
		}
	}
}

func TestRenderDOTEmpty(t *testing.T) {
	tree := New[string, int]()
	got := tree.RenderDOT(RenderOptions{})
	if !strings.Contains(got, `Vazio [label="Árvore Vazia"];`) || strings.Contains(got, "->") {
		t.Errorf("RenderDOT() = %q", got)
	}
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  string
	}{
		{"Mouse", 20, "Mouse"},
		{"Notebook Dell Inspiron", 20, "Notebook Dell Inspir..."},
		{"Café Especial 250g", 4, "Café..."},
		{"exactly-twenty-chars", 20, "exactly-twenty-chars"},
	}

	for _, tc := range tests {
		if got := TruncateName(tc.name, tc.width); got != tc.want {
			t.Errorf("TruncateName(%q, %d) = %q; want %q", tc.name, tc.width, got, tc.want)
		}
	}
}

func TestSanitizeID(t *testing.T) {
	tests := map[string]string{
		"42":    "42",
		"-7":    "n7",
		"1.5":   "1_5",
		"a b":   "a_b",
		"abc_9": "abc_9",
	}
	for in, want := range tests {
		if got := sanitizeID(in); got != want {
			t.Errorf("sanitizeID(%q) = %q; want %q", in, got, want)
		}
	}
}
