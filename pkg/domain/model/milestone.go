package model

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math"
	"strconv"
)

// Milestone is a progress goal tracked against a numeric target
type Milestone struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	CurrentCount  int64    `json:"current_count"`
	TargetCount   int64    `json:"target_count"`
	Achieved      FlexBool `json:"achieved"`
	MilestoneType string   `json:"milestone_type,omitempty"`
}

// ProgressPercentage returns the progress in [0, 100].
// A milestone without a positive target is complete only when it is marked achieved.
func (m Milestone) ProgressPercentage() float64 {
	if m.TargetCount <= 0 {
		if m.Achieved {
			return 100
		}
		return 0
	}

	pct := float64(m.CurrentCount) / float64(m.TargetCount) * 100
	return math.Max(0, math.Min(100, pct))
}

// ProgressLabel returns the progress formatted with zero decimals, e.g. "75%"
func (m Milestone) ProgressLabel() string {
	return strconv.FormatFloat(m.ProgressPercentage(), 'f', 0, 64) + "%"
}

// FlexBool decodes JSON booleans as well as the 0/1 integers SQLite backends emit.
// Anything else decodes as false so one odd row does not drop the whole payload.
type FlexBool bool

// UnmarshalJSON implements json.Unmarshaler
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "true", "1", `"1"`, `"true"`:
		*b = true
		return nil
	case "false", "0", `"0"`, `"false"`, "null", `""`:
		*b = false
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		slog.Warn("Unrecognized boolean value, treating as false", "value", string(data))
		*b = false
		return nil
	}
	*b = n != 0
	return nil
}
