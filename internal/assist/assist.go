// Package assist предоставляет клиент генерации контента меню через LLM.
//
// Все операции «выстрелил и забыл»: любая ошибка (нет ключа, сеть, кривой
// ответ) превращается в фиксированное значение по умолчанию, наружу ошибки
// не выходят. Признак Fallback в результате позволяет админке показать
// предупреждение.
package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Значения, подставляемые при любой ошибке генерации.
const (
	fallbackDescription = "Descrição indisponível no momento."
	fallbackPriceCents  = 2500
)

const (
	textModel     = "gpt-4o-mini"
	imageModel    = "gpt-image-1"
	imageEndpoint = "https://api.openai.com/v1/images/generations"
)

// TextResult — результат генерации текста.
type TextResult struct {
	Value    string `json:"value"`
	Fallback bool   `json:"fallback"`
}

// PriceResult — результат подбора цены, в сентаво.
type PriceResult struct {
	PriceCents int64 `json:"price"`
	Fallback   bool  `json:"fallback"`
}

// ImageResult — результат генерации фото блюда. Пустой DataURL с Fallback=true
// означает, что изображение получить не удалось.
type ImageResult struct {
	DataURL  string `json:"data_url"`
	Fallback bool   `json:"fallback"`
}

// Client инкапсулирует обращения к генеративной модели.
// Нулевой указатель допустим: все операции вернут значения по умолчанию.
type Client struct {
	llm        llms.Model
	apiKey     string
	httpClient *http.Client
	imageURL   string
}

// NewClient создаёт клиент генерации контента с указанным API-ключом.
func NewClient(apiKey string) (*Client, error) {
	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(textModel),
	)
	if err != nil {
		return nil, fmt.Errorf("create llm client: %w", err)
	}

	return &Client{
		llm:        llm,
		apiKey:     apiKey,
		httpClient: &http.Client{},
		imageURL:   imageEndpoint,
	}, nil
}

// DishDescription генерирует короткое аппетитное описание блюда.
func (c *Client) DishDescription(ctx context.Context, name, ingredients string) TextResult {
	if c == nil {
		return TextResult{Value: fallbackDescription, Fallback: true}
	}

	prompt := fmt.Sprintf(
		"Write a short, appetizing, and mouth-watering description (max 120 characters) for a menu item named %q containing these ingredients: %s. Language: Portuguese (Brazil).",
		name, ingredients,
	)

	out, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt)
	if err != nil {
		return TextResult{Value: fallbackDescription, Fallback: true}
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return TextResult{Value: fallbackDescription, Fallback: true}
	}
	return TextResult{Value: out}
}

// SuggestPrice подбирает реалистичную цену блюда в сентаво.
func (c *Client) SuggestPrice(ctx context.Context, name string) PriceResult {
	if c == nil {
		return PriceResult{PriceCents: fallbackPriceCents, Fallback: true}
	}

	prompt := fmt.Sprintf(
		"Suggest a realistic price in BRL (Brazilian Real) for a restaurant dish named %q. Return ONLY the number, no currency symbol.",
		name,
	)

	out, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt)
	if err != nil {
		return PriceResult{PriceCents: fallbackPriceCents, Fallback: true}
	}

	cents, err := parsePriceCents(out)
	if err != nil {
		return PriceResult{PriceCents: fallbackPriceCents, Fallback: true}
	}
	return PriceResult{PriceCents: cents}
}

// parsePriceCents извлекает денежную сумму из ответа модели.
// Модели возвращают число в разных написаниях: "84.90", "84,90", "R$ 84.90".
func parsePriceCents(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", raw, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("non-positive price %q", raw)
	}

	return int64(math.Round(v * 100)), nil
}

type imageRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Size   string `json:"size"`
}

type imageResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
}

// DishImage генерирует фотографию блюда и возвращает её как data-URL.
func (c *Client) DishImage(ctx context.Context, prompt string) ImageResult {
	if c == nil {
		return ImageResult{Fallback: true}
	}

	body, err := json.Marshal(imageRequest{
		Model:  imageModel,
		Prompt: "Professional food photography, appetizing, high resolution, 4k, close up of: " + prompt,
		Size:   "1024x1024",
	})
	if err != nil {
		return ImageResult{Fallback: true}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.imageURL, bytes.NewReader(body))
	if err != nil {
		return ImageResult{Fallback: true}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ImageResult{Fallback: true}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ImageResult{Fallback: true}
	}

	var result imageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return ImageResult{Fallback: true}
	}
	if len(result.Data) == 0 || result.Data[0].B64JSON == "" {
		return ImageResult{Fallback: true}
	}

	return ImageResult{DataURL: "data:image/png;base64," + result.Data[0].B64JSON}
}
