// Package main implements a mock catalog API server for local development.
// It serves canned product records from a JSON fixture so catalog enrichment
// can be exercised without a real catalog backend.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

type product struct {
	Identifier string          `json:"identifier"`
	Raw        json.RawMessage `json:"-"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/products.json", "path to products fixture")
	apiKey := flag.String("api-key", "", "when set, lookups require this bearer token")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	products, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "products", len(products))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /products/{identifier}", productHandler(logger, products, *apiKey))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock catalog server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// loadFixture reads a JSON array of product records and indexes them by
// identifier. Each record is kept verbatim so the fixture controls the
// exact response shape.
func loadFixture(path string) (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}

	products := make(map[string]json.RawMessage, len(raws))
	for i, raw := range raws {
		var p product
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("parsing fixture record %d: %w", i, err)
		}
		if p.Identifier == "" {
			return nil, fmt.Errorf("fixture record %d has no identifier", i)
		}
		products[p.Identifier] = raw
	}
	return products, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func productHandler(logger *slog.Logger, products map[string]json.RawMessage, apiKey string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if apiKey != "" {
			got := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if got != apiKey {
				logger.Warn("lookup with missing or wrong bearer token")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
				json.NewEncoder(w).Encode(map[string]string{
					"error": "invalid or missing bearer token",
				})
				return
			}
		}

		identifier := r.PathValue("identifier")
		raw, ok := products[identifier]
		if !ok {
			logger.Info("lookup miss", "identifier", identifier)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]string{
				"error": "product not found",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		w.Write(raw)
		logger.Info("lookup hit", "identifier", identifier)
	}
}
