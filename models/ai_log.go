package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AILog stores LLM usage records (system monitoring purpose)
// Collection: ai_logs
type AILog struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Scope           string             `bson:"scope" json:"scope"`
	Model           string             `bson:"model" json:"model"`
	PromptTokens    int64              `bson:"prompt_tokens" json:"prompt_tokens"`
	OutputTokens    int64              `bson:"output_tokens" json:"output_tokens"`
	TotalTokens     int64              `bson:"total_tokens" json:"total_tokens"`
	DurationMs      int64              `bson:"duration_ms" json:"duration_ms"`
	Success         bool               `bson:"success" json:"success"`
	ErrorMessage    *string            `bson:"error_message,omitempty" json:"error_message,omitempty"`
	PromptExcerpt   string             `bson:"prompt_excerpt" json:"prompt_excerpt"`
	ResponseExcerpt string             `bson:"response_excerpt" json:"response_excerpt"`
	RequestedAt     time.Time          `bson:"requested_at" json:"requested_at"`
	CompletedAt     time.Time          `bson:"completed_at" json:"completed_at"`
}
