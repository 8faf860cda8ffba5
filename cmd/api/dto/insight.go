package dto

import "dream-journal/models"

type UserPatternRequestDTO struct {
	DreamIDs []string `json:"dreamIds"`
}

// CommunityRequestDTO's dream ids are optional: empty means aggregate over
// every dream in the store.
type CommunityRequestDTO struct {
	DreamIDs []string `json:"dreamIds"`
}

type SaveInsightRequestDTO struct {
	DreamIDs []string `json:"dreamIds"`
	Summary  string   `json:"summary"`
	Scope    string   `json:"scope"`
}

// SingleInsightResponseDTO echoes the generated artifact plus the moon sign
// snapshot for display.
type SingleInsightResponseDTO struct {
	AIResult string           `json:"aiResult"`
	MoonSign *string          `json:"moonSign"`
	Insight  models.AIInsight `json:"insight"`
}

type InsightResponseDTO struct {
	AIResult string           `json:"aiResult"`
	Insight  models.AIInsight `json:"insight"`
}

type SavedInsightResponseDTO struct {
	Message string           `json:"message"`
	Insight models.AIInsight `json:"insight"`
}

type InsightListResponseDTO struct {
	Insights []models.AIInsight `json:"insights"`
}

type DeletedInsightResponseDTO struct {
	Message   string `json:"message"`
	InsightID string `json:"insightId"`
}
