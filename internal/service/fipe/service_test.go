package fipe_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lfmorais/nara/backend/internal/service/fipe"
)

func TestBrandsSendsReferenceFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ConsultarMarcas" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("expected multipart form: %v", err)
		}
		if got := r.FormValue("codigoTabelaReferencia"); got != "315" {
			t.Fatalf("unexpected reference table %q", got)
		}
		if got := r.FormValue("codigoTipoVeiculo"); got != "1" {
			t.Fatalf("unexpected vehicle type %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"Label":"Chevrolet","Value":"23"},{"Label":"Fiat","Value":"21"}]`))
	}))
	defer server.Close()

	svc := fipe.NewService(server.URL)
	brands, err := svc.Brands(context.Background())
	if err != nil {
		t.Fatalf("Brands err: %v", err)
	}
	if len(brands) != 2 {
		t.Fatalf("expected 2 brands, got %d", len(brands))
	}
	if brands[0].Label != "Chevrolet" || brands[0].Value != "23" {
		t.Fatalf("unexpected first brand: %+v", brands[0])
	}
}

func TestModelsDeduplicatesByFirstWord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ConsultarModelos" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("expected multipart form: %v", err)
		}
		if got := r.FormValue("codigoMarca"); got != "23" {
			t.Fatalf("unexpected brand id %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Modelos":[
			{"Label":"Onix 1.0 LT"},
			{"Label":"Onix 1.4 LTZ"},
			{"Label":"Onix Plus"},
			{"Label":"Prisma 1.4"}
		]}`))
	}))
	defer server.Close()

	svc := fipe.NewService(server.URL)
	models, err := svc.Models(context.Background(), "23")
	if err != nil {
		t.Fatalf("Models err: %v", err)
	}
	if len(models) != 2 {
		t.Fatalf("expected 2 deduplicated models, got %d: %+v", len(models), models)
	}
	if models[0].Label != "Onix" || models[1].Label != "Prisma" {
		t.Fatalf("unexpected models: %+v", models)
	}
}

func TestNonOKStatusIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc := fipe.NewService(server.URL)
	if _, err := svc.Brands(context.Background()); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
