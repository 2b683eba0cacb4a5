package models

// WeatherCondition is one entry of the weather conditions delta
// (weatherConditionsUpdates), keyed by ConditionTime (RFC 3339).
type WeatherCondition struct {
	ClientID            string   `json:"clientID"`
	ProjectID           string   `json:"projectID"`
	ConditionTime       string   `json:"conditionTime"`
	ActualTime          string   `json:"actualTime,omitempty"`
	TempF               *float64 `json:"tempF,omitempty"`
	FeelsLikeF          *float64 `json:"feelsLikeF,omitempty"`
	DewPointF           *float64 `json:"dewPointF,omitempty"`
	HumidityPct         *float64 `json:"humidityPct,omitempty"`
	PrecipInches        *float64 `json:"precipInches,omitempty"`
	SnowDepthInches     *float64 `json:"snowDepthInches,omitempty"`
	PressureMilliBars   *float64 `json:"pressureMilliBars,omitempty"`
	WindDirDeg          *float64 `json:"windDirDeg,omitempty"`
	WindDir             string   `json:"windDir,omitempty"`
	WindSpeedMPH        *float64 `json:"windSpeedMPH,omitempty"`
	WindGustMPH         *float64 `json:"windGustMPH,omitempty"`
	SkyPercent          *float64 `json:"skyPercent,omitempty"`
	CloudsCoded         string   `json:"cloudsCoded,omitempty"`
	Weather             string   `json:"weather,omitempty"`
	WeatherPrimaryCoded string   `json:"weatherPrimaryCoded,omitempty"`
	Icon                string   `json:"icon,omitempty"`
	IconURL             string   `json:"iconURL,omitempty"`
	BigIconURL          string   `json:"bigIconURL,omitempty"`
	VisibilityMiles     *float64 `json:"visibilityMiles,omitempty"`
	UVIndex             *float64 `json:"uVIndex,omitempty"`
	SolarRadiationWM2   *float64 `json:"solarRadiationWM2,omitempty"`
	CeilingFt           *float64 `json:"ceilingFt,omitempty"`
	IsDay               bool     `json:"isDay,omitempty"`
	ClosestStationID    string   `json:"closestStationID,omitempty"`
	Deleted             bool     `json:"deleted,omitempty"`
	Version             uint64   `json:"version,omitempty"`
}

// WeatherAlert is one entry of the weather alerts delta
// (weatherAlertsUpdates), keyed by ID.
type WeatherAlert struct {
	ClientID       string     `json:"clientID"`
	ProjectID      string     `json:"projectID"`
	ID             string     `json:"id"`
	AreaDesc       string     `json:"areaDesc,omitempty"`
	SentTS         string     `json:"sentTS,omitempty"`
	EffectiveTS    string     `json:"effectiveTS,omitempty"`
	OnsetTS        string     `json:"onsetTS,omitempty"`
	ExpiresTS      string     `json:"expiresTS,omitempty"`
	EndsTS         string     `json:"endsTS,omitempty"`
	Severity       string     `json:"severity,omitempty"`
	Certainty      string     `json:"certainty,omitempty"`
	Urgency        string     `json:"urgency,omitempty"`
	Event          string     `json:"event,omitempty"`
	SenderName     string     `json:"senderName,omitempty"`
	Headline       string     `json:"headline,omitempty"`
	Description    string     `json:"description,omitempty"`
	Instruction    string     `json:"instruction,omitempty"`
	Response       string     `json:"response,omitempty"`
	Polygon        []GeoPoint `json:"polygon,omitempty"`
	GeocodeUGSList []string   `json:"geocodeUGSList,omitempty"`
	ReplacedBy     string     `json:"replacedBy,omitempty"`
	ReplacedTS     string     `json:"replacedTS,omitempty"`
	LastActiveTS   string     `json:"lastActiveTS,omitempty"`
	IsActive       bool       `json:"isActive,omitempty"`
	Deleted        bool       `json:"deleted,omitempty"`
	Version        uint64     `json:"version,omitempty"`
}

// GeoPoint is one vertex of an alert polygon.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
