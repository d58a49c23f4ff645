package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/warit/newsgen/pkg/domain"
)

// ResponseFormatError indicates the model produced content that cannot be
// read as the expected JSON object. Distinct from transport failures so
// callers can report "bad model output" instead of a generic upstream error.
type ResponseFormatError struct {
	Raw string
	Err error
}

func (e *ResponseFormatError) Error() string {
	return fmt.Sprintf("model response is not valid json: %v", e.Err)
}

func (e *ResponseFormatError) Unwrap() error { return e.Err }

// ParseEventData normalizes raw model output into the extraction contract.
// Models wrap JSON in markdown fences and sometimes add prose around them, so
// every fence marker is stripped globally before parsing. The result always
// carries all recognized keys, unknown ones stay null.
func ParseEventData(raw string) (*domain.EventData, error) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		return nil, &ResponseFormatError{Raw: raw, Err: err}
	}

	data := &domain.EventData{}
	for key, target := range map[string]**string{
		"date":               &data.Date,
		"time":               &data.Time,
		"event_name":         &data.EventName,
		"location":           &data.Location,
		"president_name":     &data.PresidentName,
		"president_position": &data.PresidentPosition,
		"participants":       &data.Participants,
	} {
		value, ok := fields[key]
		if !ok {
			continue
		}
		s, err := coerceString(value)
		if err != nil {
			return nil, &ResponseFormatError{Raw: raw, Err: fmt.Errorf("field %q: %w", key, err)}
		}
		*target = s
	}

	return data, nil
}

// coerceString accepts a JSON string, null, or an array of strings which some
// models emit for list-like fields such as participants
func coerceString(value json.RawMessage) (*string, error) {
	var s *string
	if err := json.Unmarshal(value, &s); err == nil {
		return s, nil
	}

	var list []string
	if err := json.Unmarshal(value, &list); err == nil {
		joined := strings.Join(list, ", ")
		return &joined, nil
	}

	return nil, fmt.Errorf("expected string, null or string array, got %s", string(value))
}
