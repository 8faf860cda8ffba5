package dto

import (
	"encoding/json"
	"strings"
)

// StringList accepts either a JSON array of strings or a single
// comma-separated string, normalizing to a slice. Clients send categories and
// tags in both shapes.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*l = arr
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	*l = out
	return nil
}

// DreamRequestDTO is the create/update payload for a dream. Date accepts
// RFC 3339 or a plain YYYY-MM-DD.
type DreamRequestDTO struct {
	Date       string     `json:"date"`
	Summary    string     `json:"summary"`
	Categories StringList `json:"categories"`
	Tags       StringList `json:"tags"`
	Location   string     `json:"location"`
	MoonSign   string     `json:"moonSign"`
	IsPublic   bool       `json:"isPublic"`
}

type CommentRequestDTO struct {
	Text string `json:"text"`
}
