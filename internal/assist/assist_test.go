package assist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tmc/langchaingo/llms"
)

// stubLLM возвращает заранее заданный ответ модели.
type stubLLM struct {
	out string
	err error
}

func (s *stubLLM) Call(context.Context, string, ...llms.CallOption) (string, error) {
	return s.out, s.err
}

func (s *stubLLM) GenerateContent(context.Context, []llms.MessageContent, ...llms.CallOption) (*llms.ContentResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: s.out}},
	}, nil
}

func clientWith(llm llms.Model) *Client {
	return &Client{llm: llm, httpClient: &http.Client{}, imageURL: imageEndpoint}
}

func TestDishDescription(t *testing.T) {
	c := clientWith(&stubLLM{out: "  Pizza artesanal com borda crocante.  "})

	got := c.DishDescription(context.Background(), "Pizza", "muçarela, tomate")
	if got.Fallback {
		t.Fatalf("unexpected fallback: %+v", got)
	}
	if got.Value != "Pizza artesanal com borda crocante." {
		t.Fatalf("value = %q, response must be trimmed", got.Value)
	}
}

func TestDishDescriptionFallbacks(t *testing.T) {
	tests := []struct {
		name string
		llm  llms.Model
	}{
		{"model error", &stubLLM{err: errors.New("rate limited")}},
		{"empty response", &stubLLM{out: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clientWith(tt.llm).DishDescription(context.Background(), "Pizza", "queijo")
			if !got.Fallback || got.Value != fallbackDescription {
				t.Fatalf("want fallback description, got %+v", got)
			}
		})
	}
}

func TestSuggestPrice(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want int64
	}{
		{"plain number", "84.90", 8490},
		{"comma decimal", "84,90", 8490},
		{"currency prefix", "R$ 59.90", 5990},
		{"integer", "25", 2500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clientWith(&stubLLM{out: tt.out}).SuggestPrice(context.Background(), "Pizza")
			if got.Fallback || got.PriceCents != tt.want {
				t.Fatalf("SuggestPrice(%q) = %+v, want %d", tt.out, got, tt.want)
			}
		})
	}
}

func TestSuggestPriceFallbacks(t *testing.T) {
	tests := []struct {
		name string
		llm  llms.Model
	}{
		{"model error", &stubLLM{err: errors.New("timeout")}},
		{"not a number", &stubLLM{out: "cerca de trinta reais"}},
		{"zero", &stubLLM{out: "0"}},
		{"negative", &stubLLM{out: "-10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clientWith(tt.llm).SuggestPrice(context.Background(), "Pizza")
			if !got.Fallback || got.PriceCents != fallbackPriceCents {
				t.Fatalf("want fallback price, got %+v", got)
			}
		})
	}
}

func TestParsePriceCents(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{"84.90", 8490, false},
		{"84,90", 8490, false},
		{"R$84,90", 8490, false},
		{" R$ 25 ", 2500, false},
		{"29.999", 3000, false},
		{"", 0, true},
		{"abc", 0, true},
		{"0", 0, true},
		{"-5", 0, true},
	}

	for _, tt := range tests {
		got, err := parsePriceCents(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("parsePriceCents(%q): expected error", tt.raw)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parsePriceCents(%q): %v", tt.raw, err)
		}
		if got != tt.want {
			t.Fatalf("parsePriceCents(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestDishImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("authorization = %q", auth)
		}

		var req imageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Model != imageModel || req.Size != "1024x1024" {
			t.Errorf("unexpected request: %+v", req)
		}
		if !strings.Contains(req.Prompt, "Pizza Calabresa") {
			t.Errorf("prompt must carry the dish name: %q", req.Prompt)
		}

		json.NewEncoder(w).Encode(imageResponse{
			Data: []struct {
				B64JSON string `json:"b64_json"`
			}{{B64JSON: "aGVsbG8="}},
		})
	}))
	defer srv.Close()

	c := &Client{apiKey: "test-key", httpClient: srv.Client(), imageURL: srv.URL}

	got := c.DishImage(context.Background(), "Pizza Calabresa")
	if got.Fallback {
		t.Fatalf("unexpected fallback: %+v", got)
	}
	if got.DataURL != "data:image/png;base64,aGVsbG8=" {
		t.Fatalf("data url = %q", got.DataURL)
	}
}

func TestDishImageFallbacks(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"empty data", func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode(imageResponse{})
		}},
		{"broken body", func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("not json"))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := &Client{apiKey: "test-key", httpClient: srv.Client(), imageURL: srv.URL}
			if got := c.DishImage(context.Background(), "Pizza"); !got.Fallback || got.DataURL != "" {
				t.Fatalf("want fallback, got %+v", got)
			}
		})
	}
}

func TestNilClientFallbacks(t *testing.T) {
	var c *Client

	if got := c.DishDescription(context.Background(), "Pizza", "queijo"); !got.Fallback || got.Value != fallbackDescription {
		t.Fatalf("nil client description = %+v", got)
	}
	if got := c.SuggestPrice(context.Background(), "Pizza"); !got.Fallback || got.PriceCents != fallbackPriceCents {
		t.Fatalf("nil client price = %+v", got)
	}
	if got := c.DishImage(context.Background(), "Pizza"); !got.Fallback || got.DataURL != "" {
		t.Fatalf("nil client image = %+v", got)
	}
}
