package domain

import (
	"encoding/json"
	"time"

	"github.com/spf13/cast"
)

// AgeRange carries the age attribute of a persona. Upstream workflows send it
// either as a single string ("25-34") or as a list of range tokens, so it
// accepts both forms on the wire.
type AgeRange []string

func (a *AgeRange) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" {
			*a = nil
		} else {
			*a = AgeRange{s}
		}
		return nil
	}
	var list []interface{}
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	tokens := make(AgeRange, 0, len(list))
	for _, item := range list {
		tokens = append(tokens, cast.ToString(item))
	}
	*a = tokens
	return nil
}

// Avatar represents a target-audience persona scoped to one product.
// ProductID is a soft reference: it may be empty during transient states and
// is reconciled by the integrity repairer rather than enforced at write time.
type Avatar struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Age          AgeRange          `json:"age"`
	Gender       string            `json:"gender"`
	Personality  string            `json:"personality"`
	Interests    []string          `json:"interests"`
	Background   string            `json:"background"`
	Goals        string            `json:"goals"`
	PainPoints   []string          `json:"painPoints"`
	Objections   []string          `json:"objections"`
	DreamOutcome []string          `json:"dreamOutcome"`
	Preferences  map[string]string `json:"preferences"`
	CreatedAt    time.Time         `json:"created_at"`
	ProductID    string            `json:"productId"`
}
