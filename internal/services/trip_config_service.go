package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"tourapp/internal/models/request_models"
	"tourapp/internal/models/response_models"
	"tourapp/pkg/utils"
)

// Travel pace options.
const (
	PaceRelaxed  = "relaxed"
	PaceBalanced = "balanced"
	PaceFast     = "fast"
)

// Budget tier options.
const (
	BudgetBasic   = "basic"
	BudgetPremium = "premium"
	BudgetLuxury  = "luxury"
)

// AI model options for itinerary generation.
const (
	ModelGeminiFlash = "gemini-flash-latest"
	ModelGemini25    = "gemini-2.5-flash"
)

const maxSelectedInterests = 10

// FallbackInterests is served when AI suggestion fails or returns an
// unusable response.
var FallbackInterests = []string{
	"local food",
	"culture",
	"sightseeing",
	"nature",
	"shopping",
	"photography",
	"relaxation",
	"local markets",
}

type paceConstraints struct {
	placesPerDay int
	startTime    string
}

type budgetConstraints struct {
	experienceStyle string
	comfortLevel    string
}

var paceMapping = map[string]paceConstraints{
	PaceRelaxed:  {placesPerDay: 2, startTime: "late"},
	PaceBalanced: {placesPerDay: 3, startTime: "moderate"},
	PaceFast:     {placesPerDay: 4, startTime: "early"},
}

var budgetMapping = map[string]budgetConstraints{
	BudgetBasic:   {experienceStyle: "popular & free attractions", comfortLevel: "basic"},
	BudgetPremium: {experienceStyle: "balanced", comfortLevel: "comfortable"},
	BudgetLuxury:  {experienceStyle: "curated & relaxed", comfortLevel: "high"},
}

type TripConfigServiceInterface interface {
	ConfigureTrip(req request_models.TripConfigRequest) (*response_models.TripConfigResponse, error)
	SuggestInterests(ctx context.Context, req request_models.InterestSuggestionRequest) (*response_models.InterestSuggestionResponse, error)
}

type TripConfigService struct {
	aiClient utils.GenerativeClientInterface
}

func NewTripConfigService(aiClient utils.GenerativeClientInterface) TripConfigServiceInterface {
	return &TripConfigService{
		aiClient: aiClient,
	}
}

// ConfigureTrip converts user choices into the structured intent object
// consumed by itinerary generation. Pure deterministic conversion; no
// AI involved here.
func (t *TripConfigService) ConfigureTrip(req request_models.TripConfigRequest) (*response_models.TripConfigResponse, error) {
	pace, ok := paceMapping[req.Pace]
	if !ok {
		return nil, fmt.Errorf("%w: pace must be one of relaxed, balanced, fast", utils.ErrInvalidInput)
	}

	budget, ok := budgetMapping[req.Budget]
	if !ok {
		return nil, fmt.Errorf("%w: budget must be one of basic, premium, luxury", utils.ErrInvalidInput)
	}

	if len(req.SelectedInterests) == 0 {
		return nil, fmt.Errorf("%w: at least one interest must be selected. Use /api/interests/suggest to get suggestions", utils.ErrInterestsRequired)
	}

	interests := req.SelectedInterests
	if len(interests) > maxSelectedInterests {
		interests = interests[:maxSelectedInterests]
	}

	aiModel := req.AIModel
	if aiModel == "" {
		aiModel = ModelGeminiFlash
	}
	if aiModel != ModelGeminiFlash && aiModel != ModelGemini25 {
		return nil, fmt.Errorf("%w: ai_model must be one of %s, %s", utils.ErrInvalidInput, ModelGeminiFlash, ModelGemini25)
	}

	return &response_models.TripConfigResponse{
		TripSummary: request_models.TripSummary{
			Source:      req.Source.Name,
			Destination: req.Destination.Name,
			DistanceKm:  req.DistanceKm,
			TravelMode:  req.TravelMode,
			Days:        req.Days,
		},
		Constraints: request_models.Constraints{
			Pace:            req.Pace,
			PlacesPerDay:    pace.placesPerDay,
			StartTime:       pace.startTime,
			Budget:          req.Budget,
			ExperienceStyle: budget.experienceStyle,
			ComfortLevel:    budget.comfortLevel,
		},
		Interests:           interests,
		OptionalConstraints: req.OptionalConstraints,
		AIModel:             aiModel,
	}, nil
}

// SuggestInterests asks the model for destination-aware interest
// categories. Any failure degrades to the fallback list rather than an
// error so the configuration flow never blocks.
func (t *TripConfigService) SuggestInterests(ctx context.Context, req request_models.InterestSuggestionRequest) (*response_models.InterestSuggestionResponse, error) {
	interests, err := t.suggestWithAI(ctx, req)
	if err != nil {
		log.Printf("interest suggestion fell back to defaults: %v", err)
		interests = FallbackInterests
	}

	return &response_models.InterestSuggestionResponse{
		Interests:   interests,
		Destination: req.Destination,
	}, nil
}

func (t *TripConfigService) suggestWithAI(ctx context.Context, req request_models.InterestSuggestionRequest) ([]string, error) {
	prompt := buildInterestPrompt(req)

	raw, err := t.aiClient.GenerateText(ctx, ModelGeminiFlash, prompt, 1000, 0.7)
	if err != nil {
		return nil, err
	}

	cleaned := utils.CleanJSONResponse(raw)

	var interests []string
	if err := json.Unmarshal([]byte(cleaned), &interests); err != nil {
		return nil, fmt.Errorf("parse interest suggestions: %w", err)
	}

	if len(interests) < 8 || len(interests) > 15 {
		return nil, fmt.Errorf("model returned %d interests, expected 8-15", len(interests))
	}

	return interests, nil
}

func buildInterestPrompt(req request_models.InterestSuggestionRequest) string {
	var b strings.Builder

	b.WriteString("Suggest a list of general travel interest categories for a trip.\n\n")
	b.WriteString("Trip details:\n")
	fmt.Fprintf(&b, "- Source: %s\n", req.Source)
	fmt.Fprintf(&b, "- Destination: %s\n", req.Destination)
	fmt.Fprintf(&b, "- Travel mode: %s\n", req.TravelMode)
	fmt.Fprintf(&b, "- Duration: %d days\n\n", req.Days)
	b.WriteString("Rules:\n")
	b.WriteString("- Return 8 to 12 interest categories\n")
	b.WriteString("- Each interest should be 1-3 words\n")
	b.WriteString("- Examples: beaches, local food, culture, nightlife, nature\n")
	b.WriteString("- Do NOT include place names\n")
	b.WriteString("- Do NOT include explanations\n\n")
	b.WriteString("Return ONLY a valid JSON array of strings. No markdown, no code blocks, just the array.\n")
	b.WriteString(`Example: ["beaches", "local food", "culture", "nightlife", "nature", "shopping", "photography", "heritage"]`)
	b.WriteString("\n")

	return b.String()
}
