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
	"os"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/cybrota/avlstore/catalog"
)

func categoryNames(cats []catalog.Category) string {
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// productTable lays products out one per row in ascending code order.
func productTable(products []*catalog.Product) string {
	if len(products) == 0 {
		return styles.Muted.Render("Catalog is empty.")
	}

	rows := make([][]string, len(products))
	for i, p := range products {
		rows[i] = []string{
			strconv.FormatInt(p.Code, 10),
			p.Name,
			catalog.FormatPrice(p.Price),
			strconv.Itoa(p.Quantity),
			categoryNames(p.Categories),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Muted).
		Headers("Código", "Nome", "Preço", "Qtd", "Categorias").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Header
			}
			return styles.Cell
		})
	return t.String()
}

func printProducts(w io.Writer, products []*catalog.Product) {
	fmt.Fprintln(w, productTable(products))
}

func printStats(w io.Writer, s catalog.Stats) {
	fmt.Fprintf(w, "%s %d\n", styles.Header.Render("Altura:"), s.Height)
	fmt.Fprintf(w, "%s %d\n", styles.Header.Render("Total de produtos:"), s.Total)
}

// renderDiagramPreview wraps a diagram in a fenced block and renders it
// for the terminal. The raw text is returned when markdown rendering fails.
func renderDiagramPreview(diagram string, format catalog.Format) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return diagram
	}

	md := fmt.Sprintf("# Árvore AVL\n\n```%s\n%s\n```\n", format, diagram)
	out, err := renderer.Render(md)
	if err != nil {
		return diagram
	}
	return out
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, styles.SuccessMessage.Render("📋 Copied diagram to clipboard."))
	return nil
}
