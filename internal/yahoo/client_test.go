package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFetchPriceRegularMarketPrice(t *testing.T) {
	var gotPath, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"chart":{"result":[{"meta":{"regularMarketPrice":123.45,"previousClose":120.00}}]}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	price, ok := client.FetchPrice(context.Background(), "AAPL")
	if !ok {
		t.Fatal("FetchPrice ok = false, want true")
	}
	if !price.Equal(decimal.NewFromFloat(123.45)) {
		t.Errorf("price = %s, want 123.45", price)
	}
	if gotPath != "/v8/finance/chart/AAPL" {
		t.Errorf("path = %q, want /v8/finance/chart/AAPL", gotPath)
	}
	if gotUA == "" || gotUA == "Go-http-client/1.1" {
		t.Errorf("User-Agent = %q, want browser-like header", gotUA)
	}
}

func TestFetchPriceFallsBackToPreviousClose(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":[{"meta":{"regularMarketPrice":0,"previousClose":99.5}}]}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	price, ok := client.FetchPrice(context.Background(), "MSFT")
	if !ok {
		t.Fatal("FetchPrice ok = false, want true")
	}
	if !price.Equal(decimal.NewFromFloat(99.5)) {
		t.Errorf("price = %s, want 99.5", price)
	}
}

func TestFetchPriceAbsenceCases(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"both prices zero", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"chart":{"result":[{"meta":{"regularMarketPrice":0,"previousClose":0}}]}}`))
		}},
		{"empty result", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"chart":{"result":[]}}`))
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}},
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(server.URL, time.Second)
			if _, ok := client.FetchPrice(context.Background(), "XYZ"); ok {
				t.Error("FetchPrice ok = true, want false")
			}
		})
	}
}

func TestFetchPriceTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 20*time.Millisecond)

	if _, ok := client.FetchPrice(context.Background(), "SLOW"); ok {
		t.Error("FetchPrice ok = true on timeout, want false")
	}
}
