package models

// Station is one entry of the stations delta (stationUpdates).
type Station struct {
	ClientID        string       `json:"clientID"`
	ProjectID       string       `json:"projectID"`
	StationID       string       `json:"stationID"`
	StationName     string       `json:"stationName,omitempty"`
	IsActive        bool         `json:"isActive,omitempty"`
	StationSensorID string       `json:"stationSensorID,omitempty"`
	AliasStationID  string       `json:"aliasStationID,omitempty"`
	MinSSI          *int         `json:"minSSI,omitempty"`
	GatewayID       string       `json:"gatewayID,omitempty"`
	Latitude        *float64     `json:"latitude,omitempty"`
	Longitude       *float64     `json:"longitude,omitempty"`
	IsOffSite       bool         `json:"isOffSite,omitempty"`
	SSIGainOffset   *int         `json:"ssiGainOffset,omitempty"`
	LoiterLimits    *LoiterLimit `json:"loiterLimits,omitempty"`
	IsOnline        bool         `json:"isOnline,omitempty"`
	Deleted         bool         `json:"deleted,omitempty"`
	Version         uint64       `json:"version"`
}

// LoiterLimit is the loiter rule of a station; TimeLimit is in seconds.
type LoiterLimit struct {
	TimeLimit *int           `json:"timeLimit,omitempty"`
	Schedule  []TimeLimitDay `json:"schedule,omitempty"`
}
