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

package catalog

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
		ok    bool
	}{
		{"Livros", Livros, true},
		{"livros", Livros, true},
		{" ESPORTES ", Esportes, true},
		{"Eletrônicos", Eletronicos, true},
		{"eletronicos", Eletronicos, true},
		{"Moveis", Moveis, true},
		{"Ferramentas", "", false},
	}

	for _, tc := range tests {
		got, err := ParseCategory(tc.input)
		if tc.ok && (err != nil || got != tc.want) {
			t.Errorf("ParseCategory(%q) = %q, %v; want %q", tc.input, got, err, tc.want)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidProduct) {
			t.Errorf("ParseCategory(%q) error = %v; want ErrInvalidProduct", tc.input, err)
		}
	}
}

func TestProductJSONFieldNames(t *testing.T) {
	var p Product
	body := `{"codigo": 7, "nome": "Tapete de Yoga", "preco": 79.9, "quantidade": 45, "categoria": ["Esportes"]}`
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatal(err)
	}
	if p.Code != 7 || p.Name != "Tapete de Yoga" || p.Quantity != 45 || p.Categories[0] != Esportes {
		t.Errorf("decoded %+v", p)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestProductPresentation(t *testing.T) {
	p := &Product{Code: 12, Name: "Garrafa Térmica 1L", Price: 69.9, Quantity: 60, Categories: []Category{Outros}}

	if got, want := p.String(), "[12] Garrafa Térmica 1L - R$69.90 (60 un.)"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
	if p.NodeID() != "12" {
		t.Errorf("NodeID() = %q", p.NodeID())
	}

	lines := p.LabelLines(7)
	want := []string{"ID: 12", "Garrafa...", "R$ 69.90", "Qtd: 60"}
	if len(lines) != len(want) {
		t.Fatalf("LabelLines = %v", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("LabelLines[%d] = %q; want %q", i, lines[i], want[i])
		}
	}

	var nilProduct *Product
	if nilProduct.NodeID() != "" || nilProduct.LabelLines(20) != nil {
		t.Error("nil product should fall back to the key")
	}
}

func TestSampleProductsAreValid(t *testing.T) {
	seen := map[int64]bool{}
	for _, p := range SampleProducts() {
		if err := p.Validate(); err != nil {
			t.Errorf("%s: %v", p, err)
		}
		if seen[p.Code] {
			t.Errorf("duplicate sample code %d", p.Code)
		}
		seen[p.Code] = true
	}
}
