package fipe

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the public FIPE vehicles API.
const DefaultBaseURL = "https://veiculos.fipe.org.br/api/veiculos"

// Reference table and vehicle type the administration standardized on.
const (
	referenceTable = "315"
	vehicleTypeCar = "1"
)

// Brand is one manufacturer entry as returned by FIPE.
type Brand struct {
	Label string `json:"Label"`
	Value string `json:"Value"`
}

// Model is one vehicle model entry, reduced to the first word of its
// FIPE label.
type Model struct {
	Label string `json:"Label"`
}

// Service fetches brand and model reference data from the FIPE API.
type Service struct {
	client  *http.Client
	baseURL string
}

// NewService returns a client for the given base URL, falling back to
// the public endpoint when empty.
func NewService(baseURL string) *Service {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Service{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Brands lists every car manufacturer known to the reference table.
func (s *Service) Brands(ctx context.Context) ([]Brand, error) {
	fields := map[string]string{
		"codigoTabelaReferencia": referenceTable,
		"codigoTipoVeiculo":      vehicleTypeCar,
	}

	var brands []Brand
	if err := s.post(ctx, "/ConsultarMarcas", fields, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

// Models lists the models of a brand, deduplicated by the first word of
// each label so "Onix 1.0", "Onix 1.4" and "Onix Plus" collapse into
// one "Onix" entry.
func (s *Service) Models(ctx context.Context, brandID string) ([]Model, error) {
	fields := map[string]string{
		"codigoTabelaReferencia": referenceTable,
		"codigoTipoVeiculo":      vehicleTypeCar,
		"codigoMarca":            brandID,
	}

	var payload struct {
		Modelos []struct {
			Label string `json:"Label"`
		} `json:"Modelos"`
	}
	if err := s.post(ctx, "/ConsultarModelos", fields, &payload); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	models := make([]Model, 0, len(payload.Modelos))
	for _, m := range payload.Modelos {
		first, _, _ := strings.Cut(m.Label, " ")
		if first == "" || seen[first] {
			continue
		}
		seen[first] = true
		models = append(models, Model{Label: first})
	}
	return models, nil
}

// post submits a multipart form, which is what the FIPE endpoints
// expect even for these simple lookups.
func (s *Service) post(ctx context.Context, path string, fields map[string]string, out interface{}) error {
	var body strings.Builder
	writer := multipart.NewWriter(&body)
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("build fipe form: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("build fipe form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, strings.NewReader(body.String()))
	if err != nil {
		return fmt.Errorf("build fipe request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("call fipe %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("call fipe %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode fipe %s response: %w", path, err)
	}
	return nil
}
