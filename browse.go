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

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/avlstore/catalog"
)

// productItem adapts a product to the bubbles list
type productItem struct {
	product *catalog.Product
}

func (i productItem) Title() string {
	return fmt.Sprintf("%d · %s", i.product.Code, i.product.Name)
}

func (i productItem) Description() string {
	return fmt.Sprintf("%s · %d un. · %s", catalog.FormatPrice(i.product.Price), i.product.Quantity, categoryNames(i.product.Categories))
}

func (i productItem) FilterValue() string { return i.product.Name }

// BrowseModel represents the catalog browser state
type BrowseModel struct {
	catalog *catalog.Catalog
	format  catalog.Format

	products list.Model
	diagram  viewport.Model

	showTree bool
	status   string
	ready    bool

	width  int
	height int
}

func NewBrowseModel(cat *catalog.Catalog, format catalog.Format) BrowseModel {
	products := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	products.SetShowTitle(false)
	products.SetShowHelp(false)

	m := BrowseModel{
		catalog:  cat,
		format:   format,
		products: products,
		diagram:  viewport.New(0, 0),
	}
	m.refresh()
	return m
}

func (m *BrowseModel) refresh() tea.Cmd {
	all := m.catalog.List()
	items := make([]list.Item, len(all))
	for i, p := range all {
		items[i] = productItem{product: p}
	}

	text, err := m.catalog.Render(m.format)
	if err != nil {
		text = err.Error()
	}
	m.diagram.SetContent(text)

	stats := m.catalog.Stats()
	m.status = fmt.Sprintf("%d produtos · altura %d", stats.Total, stats.Height)
	return m.products.SetItems(items)
}

// Init is called when the program starts
func (m BrowseModel) Init() tea.Cmd {
	return nil
}

// Update handles all the I/O
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.products.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		case "tab":
			m.showTree = !m.showTree
			return m, nil
		case "x":
			if m.showTree {
				break
			}
			item, ok := m.products.SelectedItem().(productItem)
			if !ok {
				return m, nil
			}
			if err := m.catalog.Remove(item.product.Code); err != nil {
				m.status = err.Error()
				return m, nil
			}
			return m, m.refresh()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil
	}

	if m.showTree {
		m.diagram, cmd = m.diagram.Update(msg)
	} else {
		m.products, cmd = m.products.Update(msg)
	}
	return m, cmd
}

func (m *BrowseModel) updateLayout() {
	bodyHeight := m.height - 6
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	m.products.SetSize(m.width-4, bodyHeight)
	m.diagram.Width = m.width - 4
	m.diagram.Height = bodyHeight
}

// View renders the program's UI
func (m BrowseModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	title := " 📦 Produtos "
	body := m.products.View()
	if m.showTree {
		title = " 🌳 Árvore AVL "
		body = m.diagram.View()
	}

	box := styles.BorderFocused.
		Width(m.width - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, styles.Title.Render(title), body))

	footer := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.HelpKey.Render("tab"), styles.HelpDesc.Render(" produtos/árvore  "),
		styles.HelpKey.Render("/"), styles.HelpDesc.Render(" filtrar  "),
		styles.HelpKey.Render("x"), styles.HelpDesc.Render(" remover  "),
		styles.HelpKey.Render("q"), styles.HelpDesc.Render(" sair  "),
		styles.Muted.Render(m.status),
	)

	return lipgloss.JoinVertical(lipgloss.Left, box, footer)
}

// runBrowser starts the Bubble Tea application
func runBrowser(cat *catalog.Catalog, format catalog.Format) error {
	program := tea.NewProgram(
		NewBrowseModel(cat, format),
		tea.WithAltScreen(),
	)
	_, err := program.Run()
	return err
}
