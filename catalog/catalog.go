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

// Package catalog keeps products in an AVL tree keyed by product code and
// applies the add/update/remove policy on top of it.
package catalog

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"

	"github.com/cybrota/avlstore/avl"
)

const (
	bloomExpectedCodes = 100_000
	bloomFalsePositive = 0.01
)

// Stats summarises the shape of the catalog tree.
type Stats struct {
	Height int `json:"altura"`
	Total  int `json:"total_produtos"`
}

// Catalog owns one AVL tree of products. It is safe for concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	tree    *avl.Tree[int64, *Product]
	version uint64

	// every code ever inserted; a miss means the code is certainly absent
	seen *bloom.BloomFilter

	renders   *cache.Cache
	renderTTL time.Duration
	nameWidth int
	logger    *slog.Logger
}

type Option func(*Catalog)

// WithLogger sends one record per mutation to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithNameWidth caps product names in rendered diagrams.
func WithNameWidth(width int) Option {
	return func(c *Catalog) {
		if width > 0 {
			c.nameWidth = width
		}
	}
}

func WithRenderTTL(ttl time.Duration) Option {
	return func(c *Catalog) {
		if ttl > 0 {
			c.renderTTL = ttl
		}
	}
}

func New(opts ...Option) *Catalog {
	c := &Catalog{
		tree:      avl.New[int64, *Product](),
		seen:      bloom.NewWithEstimates(bloomExpectedCodes, bloomFalsePositive),
		renderTTL: DefaultRenderCacheExpiration,
		nameWidth: avl.DefaultNameWidth,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.renders = newRenderCache(c.renderTTL)
	return c
}

func codeBytes(code int64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(code))
	return b[:]
}

// Add stores a copy of p. Codes are unique within a catalog.
func (c *Catalog) Add(p *Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.lookup(p.Code); ok {
		return fmt.Errorf("%w: %d", ErrDuplicateCode, p.Code)
	}
	c.insert(p.Clone())
	c.logger.Info("product added", "product", p.String())
	return nil
}

// Get returns a copy of the product stored under code.
func (c *Catalog) Get(code int64) (*Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.lookup(code)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, code)
	}
	return p.Clone(), nil
}

// Update replaces the product stored under code with p. When p keeps the same
// code the stored record is edited in place; otherwise the old entry is
// removed and p is inserted under its new code.
func (c *Catalog) Update(code int64, p *Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	existing, ok := c.lookup(code)
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotFound, code)
	}

	if p.Code == code {
		// ordering depends on the key alone, so the tree shape is untouched
		existing.Name = p.Name
		existing.Price = p.Price
		existing.Quantity = p.Quantity
		existing.Categories = append(existing.Categories[:0], p.Categories...)
		c.version++
		c.logger.Info("product updated", "product", existing.String())
		return nil
	}

	if _, taken := c.lookup(p.Code); taken {
		return fmt.Errorf("%w: %d", ErrDuplicateCode, p.Code)
	}
	c.tree.Remove(code)
	c.insert(p.Clone())
	c.logger.Info("product moved", "from", code, "product", p.String())
	return nil
}

// Remove deletes the product stored under code.
func (c *Catalog) Remove(code int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.lookup(code); !ok {
		return fmt.Errorf("%w: %d", ErrNotFound, code)
	}
	c.tree.Remove(code)
	c.version++
	c.logger.Info("product removed", "code", code)
	return nil
}

// List returns copies of every product in ascending code order.
func (c *Catalog) List() []*Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	products := make([]*Product, 0)
	for _, p := range c.tree.All() {
		products = append(products, p.Clone())
	}
	return products
}

// Count measures the ascending listing.
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tree.Len()
}

func (c *Catalog) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Stats{Height: c.tree.Height(), Total: c.tree.Len()}
}

// Check verifies the tree invariants.
func (c *Catalog) Check() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tree.Validate()
}

// Render describes the current tree shape in the given format. Results are
// cached until the next mutation.
func (c *Catalog) Render(format Format) (string, error) {
	format, err := ParseFormat(string(format))
	if err != nil {
		return "", err
	}
	return c.render(format), nil
}

// Mermaid renders the tree as a Mermaid flowchart.
func (c *Catalog) Mermaid() string {
	return c.render(FormatMermaid)
}

// DOT renders the tree as a Graphviz digraph.
func (c *Catalog) DOT() string {
	return c.render(FormatDOT)
}

// render expects a format already accepted by ParseFormat.
func (c *Catalog) render(format Format) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if text, ok := getRender(c.renders, format, c.version); ok {
		return text
	}

	opts := avl.RenderOptions{NameWidth: c.nameWidth}
	var text string
	switch format {
	case FormatDOT:
		text = c.tree.RenderDOT(opts)
	default:
		text = c.tree.RenderMermaid(opts)
	}
	cacheRender(c.renders, format, c.version, text)
	return text
}

// Seed adds every product, skipping and reporting the ones that fail.
func (c *Catalog) Seed(products []*Product) (int, error) {
	added := 0
	var errs []error
	for _, p := range products {
		if err := c.Add(p); err != nil {
			errs = append(errs, err)
			continue
		}
		added++
	}
	return added, errors.Join(errs...)
}

func (c *Catalog) lookup(code int64) (*Product, bool) {
	if !c.seen.Test(codeBytes(code)) {
		return nil, false
	}
	return c.tree.Search(code)
}

func (c *Catalog) insert(p *Product) {
	c.tree.Insert(p.Code, p)
	c.seen.Add(codeBytes(p.Code))
	c.version++
}
