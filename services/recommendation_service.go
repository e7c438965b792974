package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/arinkulshi/diet-recommendation-tool/models"
)

const (
	geminiBaseURL      = "https://generativelanguage.googleapis.com/v1beta/models"
	maxPromptFavorites = 5

	SourceGemini   = "gemini"
	SourceFallback = "fallback"
)

type RecommendationResult struct {
	Recommendations []models.Recommendation `json:"recommendations"`
	Source          string                  `json:"source"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type RecService struct {
	favorites *FavoriteService
	client    *http.Client
	apiKey    string
	model     string
	baseURL   string
}

func NewRecService(favorites *FavoriteService, apiKey, model string) *RecService {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &RecService{
		favorites: favorites,
		client:    &http.Client{Timeout: 15 * time.Second},
		apiKey:    apiKey,
		model:     model,
		baseURL:   geminiBaseURL,
	}
}

// WithBaseURL points the service at another generateContent host.
func (r *RecService) WithBaseURL(u string) *RecService {
	r.baseURL = strings.TrimRight(u, "/")
	return r
}

// ForUser suggests foods similar to the user's favorites. Model failures
// never surface: the fixed fallback list is returned instead.
func (r *RecService) ForUser(ctx context.Context, userID uint) (*RecommendationResult, error) {
	favorites, err := r.favorites.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(favorites) == 0 || r.apiKey == "" {
		return fallbackResult(), nil
	}
	if len(favorites) > maxPromptFavorites {
		favorites = favorites[:maxPromptFavorites]
	}

	prompt, err := buildPrompt(favorites)
	if err != nil {
		log.Printf("recommendations: build prompt for user %d: %v", userID, err)
		return fallbackResult(), nil
	}
	text, err := r.generate(ctx, prompt)
	if err != nil {
		log.Printf("recommendations: gemini call failed for user %d: %v", userID, err)
		return fallbackResult(), nil
	}
	recs, ok := parseRecommendations(text)
	if !ok {
		log.Printf("recommendations: unparseable gemini reply for user %d", userID)
		return fallbackResult(), nil
	}
	return &RecommendationResult{Recommendations: recs, Source: SourceGemini}, nil
}

type favoriteSummary struct {
	Name          string `json:"name"`
	Category      string `json:"category"`
	NutritionInfo struct {
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Fat      float64 `json:"fat"`
		Carbs    float64 `json:"carbs"`
	} `json:"nutritionInfo"`
}

func buildPrompt(favorites []models.FavoriteFood) (string, error) {
	summary := make([]favoriteSummary, 0, len(favorites))
	for _, f := range favorites {
		var s favoriteSummary
		s.Name = f.DisplayName()
		s.Category = "Uncategorized"
		if f.BrandedFoodCategory != nil && *f.BrandedFoodCategory != "" {
			s.Category = *f.BrandedFoodCategory
		}
		s.NutritionInfo.Calories = deref(f.Calories)
		s.NutritionInfo.Protein = deref(f.Protein)
		s.NutritionInfo.Fat = deref(f.Fat)
		s.NutritionInfo.Carbs = deref(f.Carbohydrates)
		summary = append(summary, s)
	}
	b, err := json.Marshal(summary)
	if err != nil {
		return "", fmt.Errorf("marshal favorites summary: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("Based on these favorite foods:\n")
	sb.Write(b)
	sb.WriteString("\n\nRecommend 3 similar foods that the user might enjoy. For each recommendation, provide:\n")
	sb.WriteString("1. A name\n2. A brief description (under 15 words)\n3. A food category\n")
	sb.WriteString("4. 2-3 nutrition highlights\n5. A confidence score between 0 and 1\n\n")
	sb.WriteString("Return your answer as a valid JSON object following this exact format:\n")
	sb.WriteString(`{"recommendations":[{"name":"Food Name","description":"Brief description","category":"Category","nutritionHighlights":["highlight1","highlight2"],"confidence":0.9}]}`)
	sb.WriteString("\n\nONLY return the JSON. Do not include any text before or after the JSON.")
	return sb.String(), nil
}

func (r *RecService) generate(ctx context.Context, prompt string) (string, error) {
	body := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     0.7,
			TopP:            0.95,
			TopK:            40,
			MaxOutputTokens: 500,
		},
	}
	b, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal gemini request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", r.baseURL, r.model, r.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("create gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read gemini response error: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		preview := string(respBytes)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		return "", fmt.Errorf("gemini api error (%d): %s", resp.StatusCode, preview)
	}

	var out geminiResponse
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return "", fmt.Errorf("decode gemini response error: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in gemini response")
	}
	text := strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("empty gemini response")
	}
	return text, nil
}

var embeddedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```|(\\{.*\\})")

// parseRecommendations accepts a bare JSON object, a fenced ```json block,
// or the outermost {...} found in surrounding prose.
func parseRecommendations(content string) ([]models.Recommendation, bool) {
	if recs, ok := decodeRecommendations(content); ok {
		return recs, true
	}
	m := embeddedJSON.FindStringSubmatch(content)
	if m == nil {
		return nil, false
	}
	candidate := m[1]
	if candidate == "" {
		candidate = m[2]
	}
	return decodeRecommendations(strings.TrimSpace(candidate))
}

func decodeRecommendations(s string) ([]models.Recommendation, bool) {
	var payload struct {
		Recommendations []models.Recommendation `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(s), &payload); err != nil {
		return nil, false
	}
	if payload.Recommendations == nil {
		return nil, false
	}
	return payload.Recommendations, true
}

func fallbackResult() *RecommendationResult {
	return &RecommendationResult{Recommendations: FallbackRecommendations(), Source: SourceFallback}
}

// FallbackRecommendations is served whenever the model cannot be used.
func FallbackRecommendations() []models.Recommendation {
	return []models.Recommendation{
		{
			Name:                "Protein Smoothie",
			Description:         "Nutrient-packed drink with protein powder and fruits",
			Category:            "Beverages",
			NutritionHighlights: []string{"20g protein", "Rich in vitamins", "Low added sugar"},
			Confidence:          0.92,
		},
		{
			Name:                "Turkey Wraps",
			Description:         "Lean meat with vegetables in whole grain wrap",
			Category:            "Prepared Foods",
			NutritionHighlights: []string{"High protein", "Complex carbs", "Low fat"},
			Confidence:          0.87,
		},
		{
			Name:                "Mixed Nuts Trail Mix",
			Description:         "Balanced snack with nuts, seeds and dried fruits",
			Category:            "Snacks",
			NutritionHighlights: []string{"Healthy fats", "Plant protein", "Fiber source"},
			Confidence:          0.81,
		},
	}
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
