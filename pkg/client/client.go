// Package client is the data layer for consumers of the warehouse API. It
// fetches collections, holds them in per-list view state, and exposes
// create/update/delete actions that reconcile that state after the server
// operation completes. A simulated mode serves the same shapes without a
// backend.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrConfirmationDeclined is returned by delete actions when the confirmer
// declines; no request is issued in that case.
var ErrConfirmationDeclined = errors.New("delete not confirmed")

// ConfirmFunc asks the user to confirm a destructive action.
type ConfirmFunc func(prompt string) bool

// Client talks to the warehouse API and tracks view state per collection.
type Client struct {
	baseURL    string
	httpClient *http.Client
	confirm    ConfirmFunc

	products listView[Product]
	garages  listView[Garage]
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithConfirm sets the confirmer used before deletes. Without one, deletes
// proceed unconditionally.
func WithConfirm(fn ConfirmFunc) Option {
	return func(c *Client) { c.confirm = fn }
}

// New creates a client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewSimulated creates a client with no backend wired: requests are served
// from an in-memory dataset after an artificial delay.
func NewSimulated(delay time.Duration, opts ...Option) *Client {
	opts = append([]Option{WithHTTPClient(&http.Client{
		Transport: newSimulator(delay),
	})}, opts...)
	return New("http://warehouse.simulated", opts...)
}

// Products returns the loaded products with the view state.
func (c *Client) Products() ([]Product, State, error) {
	return c.products.snapshot()
}

// Garages returns the loaded garages with the view state.
func (c *Client) Garages() ([]Garage, State, error) {
	return c.garages.snapshot()
}

// LoadProducts fetches the product collection and updates the view state.
func (c *Client) LoadProducts(ctx context.Context) ([]Product, error) {
	c.products.loading()
	var out struct {
		Products []Product `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, "/products", nil, &out); err != nil {
		c.products.failed(err)
		return nil, err
	}
	c.products.loaded(out.Products)
	return out.Products, nil
}

// GetProduct fetches a single product by its identifier.
func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	var out struct {
		Product *Product `json:"product"`
	}
	if err := c.do(ctx, http.MethodGet, "/products/"+id, nil, &out); err != nil {
		return nil, err
	}
	return out.Product, nil
}

// SaveProduct creates the product when it has no identifier, and updates it
// otherwise. The loaded list is reconciled on success.
func (c *Client) SaveProduct(ctx context.Context, product Product) (*Product, error) {
	var out struct {
		Product *Product `json:"product"`
	}
	if product.ID == "" {
		if err := c.do(ctx, http.MethodPost, "/products/create", product, &out); err != nil {
			return nil, err
		}
		saved := *out.Product
		c.products.reconcile(func(items []Product) []Product {
			return append(items, saved)
		})
		return out.Product, nil
	}
	if err := c.do(ctx, http.MethodPut, "/products/"+product.ID, product, &out); err != nil {
		return nil, err
	}
	saved := *out.Product
	c.products.reconcile(func(items []Product) []Product {
		for i := range items {
			if items[i].ID == saved.ID {
				items[i] = saved
			}
		}
		return items
	})
	return out.Product, nil
}

// DeleteProduct removes a product after interactive confirmation.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	if c.confirm != nil && !c.confirm("Delete this product?") {
		return ErrConfirmationDeclined
	}
	if err := c.do(ctx, http.MethodDelete, "/products/"+id, nil, nil); err != nil {
		return err
	}
	c.products.reconcile(func(items []Product) []Product {
		kept := items[:0]
		for _, p := range items {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		return kept
	})
	return nil
}

// LoadGarages fetches the garage collection and updates the view state.
func (c *Client) LoadGarages(ctx context.Context) ([]Garage, error) {
	c.garages.loading()
	var out struct {
		Garages []Garage `json:"garages"`
	}
	if err := c.do(ctx, http.MethodGet, "/garages", nil, &out); err != nil {
		c.garages.failed(err)
		return nil, err
	}
	c.garages.loaded(out.Garages)
	return out.Garages, nil
}

// GetGarage fetches a single garage by its identifier.
func (c *Client) GetGarage(ctx context.Context, id string) (*Garage, error) {
	var out struct {
		Garage *Garage `json:"garage"`
	}
	if err := c.do(ctx, http.MethodGet, "/garages/"+id, nil, &out); err != nil {
		return nil, err
	}
	return out.Garage, nil
}

// SaveGarage creates the garage when it has no identifier, and updates it
// otherwise. The loaded list is reconciled on success.
func (c *Client) SaveGarage(ctx context.Context, garage Garage) (*Garage, error) {
	var out struct {
		Garage *Garage `json:"garage"`
	}
	if garage.ID == "" {
		if err := c.do(ctx, http.MethodPost, "/garages", garage, &out); err != nil {
			return nil, err
		}
		saved := *out.Garage
		c.garages.reconcile(func(items []Garage) []Garage {
			return append(items, saved)
		})
		return out.Garage, nil
	}
	if err := c.do(ctx, http.MethodPut, "/garages/"+garage.ID, garage, &out); err != nil {
		return nil, err
	}
	saved := *out.Garage
	c.garages.reconcile(func(items []Garage) []Garage {
		for i := range items {
			if items[i].ID == saved.ID {
				items[i] = saved
			}
		}
		return items
	})
	return out.Garage, nil
}

// DeleteGarage removes a garage after interactive confirmation.
func (c *Client) DeleteGarage(ctx context.Context, id string) error {
	if c.confirm != nil && !c.confirm("Delete this garage?") {
		return ErrConfirmationDeclined
	}
	if err := c.do(ctx, http.MethodDelete, "/garages/"+id, nil, nil); err != nil {
		return err
	}
	c.garages.reconcile(func(items []Garage) []Garage {
		kept := items[:0]
		for _, g := range items {
			if g.ID != id {
				kept = append(kept, g)
			}
		}
		return kept
	})
	return nil
}

// Stats recomputes the dashboard aggregates from the loaded collections.
func (c *Client) Stats() Summary {
	products, _, _ := c.products.snapshot()
	garages, _, _ := c.garages.snapshot()

	s := Summary{
		TotalProducts: len(products),
		TotalGarages:  len(garages),
	}
	for _, p := range products {
		s.TotalStock += p.Quantity
		s.TotalValue += p.InventoryValue()
	}
	return s
}

// do issues one request; there is no retry or automatic cancellation policy.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
