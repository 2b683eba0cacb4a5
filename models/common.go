package models

import "encoding/json"

// LaborAttribVal is one labor attribute value; Value is a JSON number or
// string and is stored verbatim.
type LaborAttribVal struct {
	ID    string          `json:"id"`
	Value json.RawMessage `json:"value"`
}

// TimeRange is a detected or assigned interval. EndTS is empty while open.
type TimeRange struct {
	StartTS string `json:"startTS"`
	EndTS   string `json:"endTS,omitempty"`
}

// TimeLimit is an allowed interval in seconds after midnight.
type TimeLimit struct {
	StartTime int `json:"startTime"`
	EndTime   int `json:"endTime"`
}

// TimeLimitDay lists the allowed intervals of one weekday (Mon ... Sun).
// An empty AllowedTimes means nothing is allowed that day.
type TimeLimitDay struct {
	Day          string      `json:"day"`
	AllowedTimes []TimeLimit `json:"allowedTimes"`
}
