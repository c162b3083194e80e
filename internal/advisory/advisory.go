// Package advisory talks to the external text-generation collaborator that
// produces the dashboard's operational summary. The collaborator is opaque:
// it takes a snapshot of both collections and returns free text. Any failure
// degrades to a fixed fallback string and is never surfaced as an error.
package advisory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"warehouse/internal/models"
)

// FallbackMessage is returned whenever the collaborator is unreachable or
// errors out.
const FallbackMessage = "The AI assistant is temporarily unavailable. Check your stock levels manually."

// emptyMessage is returned when the collaborator answers with no text.
const emptyMessage = "No insights available at the moment."

const systemInstruction = "You are a senior logistics consultant specializing in warehouse optimization. Provide concise, actionable insights."

const promptTemplate = `Analyze this warehouse state and provide 3 key insights or recommendations for the manager:
Products: %s
Garages: %s

Return the analysis in a helpful, professional tone focusing on inventory health and capacity utilization.`

// Advisor produces a human-readable operational summary for the given
// warehouse snapshot. Implementations never return an error; they fall back
// to a static message instead.
type Advisor interface {
	WarehouseInsights(ctx context.Context, products []models.Product, garages []models.Garage) string
}

// HTTPAdvisor calls a text-generation service over HTTP.
type HTTPAdvisor struct {
	url    string
	apiKey string
	client *http.Client
}

// NewHTTPAdvisor creates an advisor for the given endpoint. An empty URL
// yields an advisor that always falls back.
func NewHTTPAdvisor(url, apiKey string) *HTTPAdvisor {
	return &HTTPAdvisor{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type generateRequest struct {
	SystemInstruction string `json:"system_instruction"`
	Prompt            string `json:"prompt"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// WarehouseInsights serializes the snapshot into a prompt and asks the
// collaborator for advisory text. The call is made once, with no retry.
func (a *HTTPAdvisor) WarehouseInsights(ctx context.Context, products []models.Product, garages []models.Garage) string {
	if a.url == "" {
		return FallbackMessage
	}

	productsJSON, err := json.Marshal(products)
	if err != nil {
		log.WithError(err).Warn("failed to serialize products for advisory prompt")
		return FallbackMessage
	}
	garagesJSON, err := json.Marshal(garages)
	if err != nil {
		log.WithError(err).Warn("failed to serialize garages for advisory prompt")
		return FallbackMessage
	}

	body, err := json.Marshal(generateRequest{
		SystemInstruction: systemInstruction,
		Prompt:            fmt.Sprintf(promptTemplate, productsJSON, garagesJSON),
	})
	if err != nil {
		log.WithError(err).Warn("failed to build advisory request")
		return FallbackMessage
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewReader(body))
	if err != nil {
		log.WithError(err).Warn("failed to build advisory request")
		return FallbackMessage
	}
	req.Header.Set("Content-Type", "application/json")
	if a.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.apiKey)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		log.WithError(err).Warn("advisory service call failed")
		return FallbackMessage
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.WithField("status", resp.StatusCode).Warn("advisory service returned non-OK status")
		return FallbackMessage
	}

	var generated generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&generated); err != nil {
		log.WithError(err).Warn("failed to decode advisory response")
		return FallbackMessage
	}
	if generated.Text == "" {
		return emptyMessage
	}
	return generated.Text
}
