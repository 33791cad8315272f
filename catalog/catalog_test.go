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
	"errors"
	"strings"
	"sync"
	"testing"
)

func testProduct(code int64, name string) *Product {
	return &Product{
		Code:       code,
		Name:       name,
		Price:      10.5,
		Quantity:   3,
		Categories: []Category{Outros},
	}
}

func codes(products []*Product) []int64 {
	out := make([]int64, len(products))
	for i, p := range products {
		out[i] = p.Code
	}
	return out
}

func equalCodes(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCatalogAddGetList(t *testing.T) {
	c := New()
	for _, code := range []int64{30, 20, 40, 10, 25, 35, 50} {
		if err := c.Add(testProduct(code, "item")); err != nil {
			t.Fatalf("Add(%d): %v", code, err)
		}
	}

	p, err := c.Get(25)
	if err != nil {
		t.Fatalf("Get(25): %v", err)
	}
	if p.Code != 25 {
		t.Errorf("Get(25).Code = %d", p.Code)
	}

	want := []int64{10, 20, 25, 30, 35, 40, 50}
	if got := codes(c.List()); !equalCodes(got, want) {
		t.Errorf("List() codes = %v; want %v", got, want)
	}
	if s := c.Stats(); s.Total != 7 || s.Height != 3 {
		t.Errorf("Stats() = %+v; want {Height:3 Total:7}", s)
	}
}

func TestCatalogErrors(t *testing.T) {
	c := New()
	if err := c.Add(testProduct(1, "first")); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{"duplicate add", func() error { return c.Add(testProduct(1, "again")) }, ErrDuplicateCode},
		{"get missing", func() error { _, err := c.Get(99); return err }, ErrNotFound},
		{"remove missing", func() error { return c.Remove(99) }, ErrNotFound},
		{"update missing", func() error { return c.Update(99, testProduct(99, "x")) }, ErrNotFound},
		{"invalid price", func() error {
			p := testProduct(2, "free")
			p.Price = 0
			return c.Add(p)
		}, ErrInvalidProduct},
		{"empty name", func() error { return c.Add(testProduct(3, "  ")) }, ErrInvalidProduct},
		{"no categories", func() error {
			p := testProduct(4, "bare")
			p.Categories = nil
			return c.Add(p)
		}, ErrInvalidProduct},
		{"unknown category", func() error {
			p := testProduct(5, "odd")
			p.Categories = []Category{"Ferramentas"}
			return c.Add(p)
		}, ErrInvalidProduct},
		{"negative quantity", func() error {
			p := testProduct(6, "owed")
			p.Quantity = -1
			return c.Add(p)
		}, ErrInvalidProduct},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.run(); !errors.Is(err, tc.want) {
				t.Errorf("got error %v; want %v", err, tc.want)
			}
		})
	}

	if c.Count() != 1 {
		t.Errorf("Count() = %d after failed operations; want 1", c.Count())
	}
}

func TestCatalogUpdateSameCodeInPlace(t *testing.T) {
	c := New()
	for _, code := range []int64{2, 1, 3} {
		if err := c.Add(testProduct(code, "old")); err != nil {
			t.Fatal(err)
		}
	}
	heightBefore := c.Stats().Height

	updated := testProduct(2, "new name")
	updated.Quantity = 99
	if err := c.Update(2, updated); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, _ := c.Get(2)
	if got.Name != "new name" || got.Quantity != 99 {
		t.Errorf("Get(2) = %+v", got)
	}
	if c.Stats().Height != heightBefore {
		t.Error("in-place update changed the tree height")
	}
	if !strings.Contains(c.Mermaid(), "new name") {
		t.Error("rendered diagram still shows the old name")
	}
}

func TestCatalogUpdateChangesCode(t *testing.T) {
	c := New()
	for _, code := range []int64{10, 20, 30} {
		if err := c.Add(testProduct(code, "p")); err != nil {
			t.Fatal(err)
		}
	}

	if err := c.Update(20, testProduct(30, "clash")); !errors.Is(err, ErrDuplicateCode) {
		t.Fatalf("Update onto taken code: got %v", err)
	}
	if err := c.Update(20, testProduct(5, "moved")); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if _, err := c.Get(20); !errors.Is(err, ErrNotFound) {
		t.Errorf("old code still present: %v", err)
	}
	if p, err := c.Get(5); err != nil || p.Name != "moved" {
		t.Errorf("Get(5) = %v, %v", p, err)
	}
	if got, want := codes(c.List()), []int64{5, 10, 30}; !equalCodes(got, want) {
		t.Errorf("List() = %v; want %v", got, want)
	}
	if err := c.Check(); err != nil {
		t.Errorf("Check: %v", err)
	}
}

func TestCatalogReturnsCopies(t *testing.T) {
	c := New()
	if err := c.Add(testProduct(7, "original")); err != nil {
		t.Fatal(err)
	}

	p, _ := c.Get(7)
	p.Name = "tampered"
	p.Categories[0] = Livros

	again, _ := c.Get(7)
	if again.Name != "original" || again.Categories[0] != Outros {
		t.Errorf("stored product was modified through a copy: %+v", again)
	}
}

func TestCatalogRemoveKeepsOrder(t *testing.T) {
	c := New()
	for _, code := range []int64{30, 20, 40, 10, 25, 35, 50} {
		if err := c.Add(testProduct(code, "p")); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.Remove(20); err != nil {
		t.Fatalf("Remove(20): %v", err)
	}
	if got, want := codes(c.List()), []int64{10, 25, 30, 35, 40, 50}; !equalCodes(got, want) {
		t.Errorf("List() = %v; want %v", got, want)
	}
	if err := c.Check(); err != nil {
		t.Errorf("Check: %v", err)
	}
	// the bloom filter still remembers 20; the tree must have the final word
	if _, err := c.Get(20); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(20) after remove = %v", err)
	}
}

func TestCatalogRenderCaching(t *testing.T) {
	c := New(WithNameWidth(5))

	empty := c.Mermaid()
	if !strings.Contains(empty, "Árvore Vazia") {
		t.Fatalf("empty render = %q", empty)
	}

	if err := c.Add(testProduct(42, "Relógio Digital Casio")); err != nil {
		t.Fatal(err)
	}
	first := c.Mermaid()
	if first == empty {
		t.Fatal("render was not refreshed after Add")
	}
	if !strings.Contains(first, `Node42["ID: 42<br/>Relóg...<br/>R$ 10.50<br/>Qtd: 3"]`) {
		t.Errorf("unexpected label in\n%s", first)
	}
	if second := c.Mermaid(); second != first {
		t.Error("cached render differs")
	}

	dot, err := c.Render(FormatDOT)
	if err != nil || !strings.HasPrefix(dot, "digraph AVL {") {
		t.Errorf("Render(dot) = %q, %v", dot, err)
	}
	if c.DOT() != dot {
		t.Error("DOT() differs from Render(dot)")
	}
	if text, err := c.Render(""); err != nil || text != c.Mermaid() {
		t.Errorf("Render(\"\") = %q, %v; want the Mermaid diagram", text, err)
	}
	if _, err := c.Render("svg"); err == nil {
		t.Error("Render accepted an unknown format")
	}
}

func TestCatalogSeed(t *testing.T) {
	c := New()
	samples := SampleProducts()

	added, err := c.Seed(samples)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if added != len(samples) || c.Count() != len(samples) {
		t.Errorf("Seed added %d, Count %d; want %d", added, c.Count(), len(samples))
	}
	if err := c.Check(); err != nil {
		t.Errorf("Check: %v", err)
	}

	added, err = c.Seed(samples[:2])
	if added != 0 || !errors.Is(err, ErrDuplicateCode) {
		t.Errorf("reseed = %d, %v", added, err)
	}
}

func TestCatalogConcurrentAccess(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(base int64) {
			defer wg.Done()
			for i := int64(0); i < 50; i++ {
				code := base*1000 + i
				_ = c.Add(testProduct(code, "concurrent"))
				_, _ = c.Get(code)
				_ = c.Mermaid()
				if i%3 == 0 {
					_ = c.Remove(code)
				}
			}
		}(int64(w))
	}
	wg.Wait()

	if err := c.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}
	// 50 adds per worker, every third removed
	if got, want := c.Count(), 8*(50-17); got != want {
		t.Errorf("Count() = %d; want %d", got, want)
	}
}
