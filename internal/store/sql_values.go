package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Triva-Elevate/triva-datapublishagent/models"
)

// Empty optional payload fields are stored as NULL.

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(p *int) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*p), Valid: true}
}

func nullFloat(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// jsonText encodes v for a JSONB (postgres) or TEXT (sqlite) column.
func jsonText(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}
	return string(b), nil
}

// stringList encodes a string list, storing a missing list as [].
func stringList(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	return jsonText(list)
}

// laborValues flattens labor attribute values into one {id: value} object.
func laborValues(vals []models.LaborAttribVal) (string, error) {
	obj := make(map[string]json.RawMessage, len(vals))
	for _, v := range vals {
		if len(v.Value) == 0 {
			obj[v.ID] = json.RawMessage("null")
			continue
		}
		obj[v.ID] = v.Value
	}
	return jsonText(obj)
}

// locationRanges flattens detection ranges into {locationID: [range...]}.
// An open range is closed at its own start.
func locationRanges(ranges []models.LocationDetectionRange) (string, error) {
	obj := make(map[string][]models.TimeRange, len(ranges))
	for _, lr := range ranges {
		out := make([]models.TimeRange, 0, len(lr.Ranges))
		for _, tr := range lr.Ranges {
			out = append(out, models.TimeRange{StartTS: tr.StartTS, EndTS: orDefault(tr.EndTS, tr.StartTS)})
		}
		obj[lr.LocationID] = out
	}
	return jsonText(obj)
}

// secondsToTime renders seconds after midnight as HH:MM:SS; 86400 is 24:00:00.
func secondsToTime(n int) string {
	return fmt.Sprintf("%02d:%02d:%02d", n/3600, (n/60)%60, n%60)
}
