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
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/cybrota/avlstore/avl"
)

// Category is one of a fixed set of product categories.
type Category string

const (
	Eletronicos Category = "Eletrônicos"
	Roupas      Category = "Roupas"
	Alimentos   Category = "Alimentos"
	Moveis      Category = "Móveis"
	Livros      Category = "Livros"
	Brinquedos  Category = "Brinquedos"
	Beleza      Category = "Beleza"
	Esportes    Category = "Esportes"
	Outros      Category = "Outros"
)

var allCategories = []Category{
	Eletronicos, Roupas, Alimentos, Moveis, Livros, Brinquedos, Beleza, Esportes, Outros,
}

// Categories returns every known category in display order.
func Categories() []Category {
	return slices.Clone(allCategories)
}

// unaccented spellings accepted from terminals without a compose key
var categoryAliases = map[string]Category{
	"eletronicos": Eletronicos,
	"moveis":      Moveis,
}

// ParseCategory matches s against the known categories, ignoring case.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range allCategories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	if c, ok := categoryAliases[strings.ToLower(s)]; ok {
		return c, nil
	}
	return "", fmt.Errorf("%w: unknown category %q", ErrInvalidProduct, s)
}

func (c Category) Valid() bool {
	return slices.Contains(allCategories, c)
}

// Product is the record stored in the catalog, keyed by Code.
type Product struct {
	Code       int64      `json:"codigo" yaml:"codigo"`
	Name       string     `json:"nome" yaml:"nome"`
	Price      float64    `json:"preco" yaml:"preco"`
	Quantity   int        `json:"quantidade" yaml:"quantidade"`
	Categories []Category `json:"categoria" yaml:"categoria"`
}

// Validate reports the first field that breaks the product rules.
func (p *Product) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: missing product", ErrInvalidProduct)
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if !(p.Price > 0) {
		return fmt.Errorf("%w: price must be greater than 0, got %v", ErrInvalidProduct, p.Price)
	}
	if p.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative, got %d", ErrInvalidProduct, p.Quantity)
	}
	if len(p.Categories) == 0 {
		return fmt.Errorf("%w: at least one category is required", ErrInvalidProduct)
	}
	for _, c := range p.Categories {
		if !c.Valid() {
			return fmt.Errorf("%w: unknown category %q", ErrInvalidProduct, c)
		}
	}
	return nil
}

func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	c := *p
	c.Categories = slices.Clone(p.Categories)
	return &c
}

func (p *Product) String() string {
	return fmt.Sprintf("[%d] %s - R$%.2f (%d un.)", p.Code, p.Name, p.Price, p.Quantity)
}

// NodeID identifies the product's node in rendered diagrams.
func (p *Product) NodeID() string {
	if p == nil {
		return ""
	}
	return strconv.FormatInt(p.Code, 10)
}

// LabelLines describes the product in a diagram node.
func (p *Product) LabelLines(nameWidth int) []string {
	if p == nil {
		return nil
	}
	return []string{
		fmt.Sprintf("ID: %d", p.Code),
		avl.TruncateName(p.Name, nameWidth),
		FormatPrice(p.Price),
		fmt.Sprintf("Qtd: %d", p.Quantity),
	}
}

// FormatPrice renders an amount in reais with two decimals.
func FormatPrice(price float64) string {
	return fmt.Sprintf("R$ %.2f", price)
}
