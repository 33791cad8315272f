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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/cybrota/avlstore/catalog"
)

const serverShutdownTimeout = 10 * time.Second

// Handlers exposes one catalog over HTTP.
type Handlers struct {
	catalog *catalog.Catalog
}

func NewHandlers(cat *catalog.Catalog) *Handlers {
	return &Handlers{catalog: cat}
}

type messageResponse struct {
	Message string           `json:"mensagem"`
	Product *catalog.Product `json:"produto,omitempty"`
}

// newServer wires routes and middleware. It does not start listening.
func newServer(cat *catalog.Catalog, config *Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     config.Server.CORSOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status} latency=${latency_human}\n",
	}))

	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		code := http.StatusInternalServerError
		var msg any = "internal error"

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			msg = he.Message
		} else {
			slog.Error("handler error", "path", ctx.Path(), "err", err)
		}

		if ctx.Response().Committed {
			return
		}
		if err2 := ctx.JSON(code, map[string]any{"detail": msg}); err2 != nil {
			slog.Error("failed to write http error", "err", err2)
		}
	}

	h := NewHandlers(cat)
	e.GET("/", h.Home)
	e.GET("/produtos", h.ListProducts)
	e.POST("/produtos", h.AddProduct)
	e.GET("/produtos/:codigo", h.GetProduct)
	e.PUT("/produtos/:codigo", h.UpdateProduct)
	e.DELETE("/produtos/:codigo", h.RemoveProduct)
	e.GET("/arvore/avl", h.TreeMermaid)
	e.GET("/tree/visualize", h.TreeVisualize)
	e.GET("/tree/dot", h.TreeDOT)
	e.GET("/estatisticas", h.Stats)

	return e
}

// serve runs the API until SIGINT or SIGTERM.
func serve(cat *catalog.Catalog, config *Config) error {
	e := newServer(cat, config)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting catalog api", "listen", config.Server.Listen)
		errCh <- e.Start(config.Server.Listen)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down catalog api")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func catalogHTTPError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Produto não encontrado.")
	case errors.Is(err, catalog.ErrDuplicateCode):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, catalog.ErrInvalidProduct):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return err
}

func parseCode(c echo.Context) (int64, error) {
	code, err := strconv.ParseInt(c.Param("codigo"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid product code %q", c.Param("codigo")))
	}
	return code, nil
}

func bindProduct(c echo.Context) (*catalog.Product, error) {
	var p catalog.Product
	if err := c.Bind(&p); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid product body")
	}
	return &p, nil
}

func (h *Handlers) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "API do Catálogo AVL está online 🚀"})
}

func (h *Handlers) ListProducts(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"produtos": h.catalog.List()})
}

func (h *Handlers) AddProduct(c echo.Context) error {
	p, err := bindProduct(c)
	if err != nil {
		return err
	}
	if err := h.catalog.Add(p); err != nil {
		return catalogHTTPError(err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Produto adicionado com sucesso.", Product: p})
}

func (h *Handlers) GetProduct(c echo.Context) error {
	code, err := parseCode(c)
	if err != nil {
		return err
	}
	p, err := h.catalog.Get(code)
	if err != nil {
		return catalogHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"produto": p})
}

func (h *Handlers) UpdateProduct(c echo.Context) error {
	code, err := parseCode(c)
	if err != nil {
		return err
	}
	p, err := bindProduct(c)
	if err != nil {
		return err
	}
	if err := h.catalog.Update(code, p); err != nil {
		return catalogHTTPError(err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Produto atualizado.", Product: p})
}

func (h *Handlers) RemoveProduct(c echo.Context) error {
	code, err := parseCode(c)
	if err != nil {
		return err
	}
	if err := h.catalog.Remove(code); err != nil {
		return catalogHTTPError(err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: fmt.Sprintf("Produto %d removido com sucesso.", code)})
}

func (h *Handlers) TreeMermaid(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"mermaid": h.catalog.Mermaid()})
}

// TreeVisualize serves the same diagram under the key the web frontend reads.
func (h *Handlers) TreeVisualize(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"mermaid_string": h.catalog.Mermaid()})
}

func (h *Handlers) TreeDOT(c echo.Context) error {
	return c.String(http.StatusOK, h.catalog.DOT())
}

func (h *Handlers) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Stats())
}
