package client

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// simulator is an http.RoundTripper that serves the API's response shapes
// from an in-memory dataset, after an artificial delay. It stands in for the
// backend when none is wired.
type simulator struct {
	delay time.Duration

	mu       sync.Mutex
	products map[string]Product
	garages  map[string]Garage
}

func newSimulator(delay time.Duration) *simulator {
	s := &simulator{
		delay:    delay,
		products: make(map[string]Product),
		garages:  make(map[string]Garage),
	}
	for _, p := range []Product{
		{Name: "Steel Beams", Price: 1200, Quantity: 45},
		{Name: "Industrial Paint", Price: 85, Quantity: 120},
		{Name: "Power Drills", Price: 150, Quantity: 8},
	} {
		p.ID = uuid.New().String()
		s.products[p.ID] = p
	}
	g := Garage{ID: uuid.New().String(), Num: 101, Name: "North Wing", Size: GarageSize{Capacity: 500}}
	s.garages[g.ID] = g
	return s
}

func (s *simulator) RoundTrip(req *http.Request) (*http.Response, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-req.Context().Done():
			return nil, req.Context().Err()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := strings.TrimSuffix(req.URL.Path, "/")
	switch {
	case path == "/products":
		if req.Method == http.MethodGet {
			return jsonResponse(req, http.StatusOK, map[string]interface{}{"products": s.productList()})
		}
	case path == "/products/create" && req.Method == http.MethodPost:
		var p Product
		if err := json.NewDecoder(req.Body).Decode(&p); err != nil || p.Name == "" || p.Price < 0 || p.Quantity < 0 {
			return jsonResponse(req, http.StatusBadRequest, map[string]interface{}{"error": "Validation failed"})
		}
		p.ID = uuid.New().String()
		s.products[p.ID] = p
		return jsonResponse(req, http.StatusOK, map[string]interface{}{
			"message": "Product created successfully",
			"product": p,
		})
	case strings.HasPrefix(path, "/products/"):
		id := strings.TrimPrefix(path, "/products/")
		switch req.Method {
		case http.MethodGet:
			p, ok := s.products[id]
			if !ok {
				return jsonResponse(req, http.StatusNotFound, map[string]interface{}{"error": "Product not found"})
			}
			return jsonResponse(req, http.StatusOK, map[string]interface{}{"product": p})
		case http.MethodPut:
			if _, ok := s.products[id]; !ok {
				return jsonResponse(req, http.StatusNotFound, map[string]interface{}{"error": "Product not found"})
			}
			var p Product
			if err := json.NewDecoder(req.Body).Decode(&p); err != nil || p.Name == "" || p.Price < 0 || p.Quantity < 0 {
				return jsonResponse(req, http.StatusBadRequest, map[string]interface{}{"error": "Validation failed"})
			}
			p.ID = id
			s.products[id] = p
			return jsonResponse(req, http.StatusOK, map[string]interface{}{
				"message": "Product updated successfully",
				"product": p,
			})
		case http.MethodDelete:
			if _, ok := s.products[id]; !ok {
				return jsonResponse(req, http.StatusNotFound, map[string]interface{}{"error": "Product not found"})
			}
			delete(s.products, id)
			return jsonResponse(req, http.StatusOK, map[string]interface{}{"message": "Product deleted successfully"})
		}
	case path == "/garages":
		switch req.Method {
		case http.MethodGet:
			return jsonResponse(req, http.StatusOK, map[string]interface{}{"garages": s.garageList()})
		case http.MethodPost:
			var g Garage
			if err := json.NewDecoder(req.Body).Decode(&g); err != nil || g.Name == "" || g.Size.Capacity < 0 {
				return jsonResponse(req, http.StatusBadRequest, map[string]interface{}{"error": "Validation failed"})
			}
			g.ID = uuid.New().String()
			s.garages[g.ID] = g
			return jsonResponse(req, http.StatusOK, map[string]interface{}{
				"message": "Garage created successfully",
				"garage":  g,
			})
		}
	case strings.HasPrefix(path, "/garages/"):
		id := strings.TrimPrefix(path, "/garages/")
		switch req.Method {
		case http.MethodGet:
			g, ok := s.garages[id]
			if !ok {
				return jsonResponse(req, http.StatusNotFound, map[string]interface{}{"error": "Garage not found"})
			}
			return jsonResponse(req, http.StatusOK, map[string]interface{}{"garage": g})
		case http.MethodPut:
			if _, ok := s.garages[id]; !ok {
				return jsonResponse(req, http.StatusNotFound, map[string]interface{}{"error": "Garage not found"})
			}
			var g Garage
			if err := json.NewDecoder(req.Body).Decode(&g); err != nil || g.Name == "" || g.Size.Capacity < 0 {
				return jsonResponse(req, http.StatusBadRequest, map[string]interface{}{"error": "Validation failed"})
			}
			g.ID = id
			s.garages[id] = g
			return jsonResponse(req, http.StatusOK, map[string]interface{}{
				"message": "Garage updated successfully",
				"garage":  g,
			})
		case http.MethodDelete:
			if _, ok := s.garages[id]; !ok {
				return jsonResponse(req, http.StatusNotFound, map[string]interface{}{"error": "Garage not found"})
			}
			delete(s.garages, id)
			return jsonResponse(req, http.StatusOK, map[string]interface{}{"message": "Garage deleted successfully"})
		}
	}
	return jsonResponse(req, http.StatusNotFound, map[string]interface{}{"error": "Not found"})
}

func (s *simulator) productList() []Product {
	list := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		list = append(list, p)
	}
	return list
}

func (s *simulator) garageList() []Garage {
	list := make([]Garage, 0, len(s.garages))
	for _, g := range s.garages {
		list = append(list, g)
	}
	return list
}

func jsonResponse(req *http.Request, status int, payload interface{}) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewReader(body)),
		Request:    req,
	}, nil
}
