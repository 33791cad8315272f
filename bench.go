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
	"io"
	"math"
	"math/rand/v2"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/avlstore/catalog"
)

type benchResult struct {
	Inserted    int
	Height      int
	HeightBound int
	Insert      time.Duration
	Search      time.Duration
	Remove      time.Duration
	Remaining   int
}

// avlHeightBound is the worst-case AVL height for n keys.
func avlHeightBound(n int) int {
	return int(math.Ceil(1.44 * math.Log2(float64(n+2))))
}

func newBenchBar(max int, description string, showProgress bool) *progressbar.ProgressBar {
	if !showProgress {
		return progressbar.DefaultSilent(int64(max))
	}
	return progressbar.NewOptions(max,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

// runBench inserts n random products, looks each one up, then removes half
// of them, timing every phase.
func runBench(cat *catalog.Catalog, n int, seed uint64, showProgress bool) (benchResult, error) {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	codes := make([]int64, 0, n)
	used := make(map[int64]bool, n)
	for len(codes) < n {
		code := rng.Int64N(int64(n) * 10)
		if used[code] {
			continue
		}
		used[code] = true
		codes = append(codes, code)
	}

	categories := catalog.Categories()
	bar := newBenchBar(n, "🌳 Inserting products...", showProgress)
	start := time.Now()
	for _, code := range codes {
		p := &catalog.Product{
			Code:       code,
			Name:       fmt.Sprintf("Produto %d", code),
			Price:      1 + float64(rng.IntN(100000))/100,
			Quantity:   rng.IntN(500),
			Categories: []catalog.Category{categories[rng.IntN(len(categories))]},
		}
		if err := cat.Add(p); err != nil {
			return benchResult{}, err
		}
		_ = bar.Add(1)
	}
	insertTime := time.Since(start)
	bar.Finish()

	start = time.Now()
	for _, code := range codes {
		if _, err := cat.Get(code); err != nil {
			return benchResult{}, err
		}
	}
	searchTime := time.Since(start)

	stats := cat.Stats()

	bar = newBenchBar(n/2, "🪓 Removing products...", showProgress)
	start = time.Now()
	for _, code := range codes[:n/2] {
		if err := cat.Remove(code); err != nil {
			return benchResult{}, err
		}
		_ = bar.Add(1)
	}
	removeTime := time.Since(start)
	bar.Finish()

	if err := cat.Check(); err != nil {
		return benchResult{}, err
	}

	return benchResult{
		Inserted:    n,
		Height:      stats.Height,
		HeightBound: avlHeightBound(n),
		Insert:      insertTime,
		Search:      searchTime,
		Remove:      removeTime,
		Remaining:   cat.Count(),
	}, nil
}

func printBench(w io.Writer, r benchResult) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %d\n", styles.Header.Render("Produtos inseridos:"), r.Inserted)
	fmt.Fprintf(w, "%s %d (limite AVL %d)\n", styles.Header.Render("Altura:"), r.Height, r.HeightBound)
	fmt.Fprintf(w, "%s %v\n", styles.Header.Render("Inserção:"), r.Insert)
	fmt.Fprintf(w, "%s %v\n", styles.Header.Render("Busca:"), r.Search)
	fmt.Fprintf(w, "%s %v\n", styles.Header.Render("Remoção:"), r.Remove)
	fmt.Fprintf(w, "%s %d\n", styles.Header.Render("Restantes:"), r.Remaining)
}
