package models

// Project is one entry of the projects delta (projectUpdates).
// LaborAttribs, BreakRules and TimeLimits replace the stored children on
// every non-deleted apply.
type Project struct {
	ClientID       string           `json:"clientID"`
	ProjectID      string           `json:"projectID"`
	ProjectName    string           `json:"projectName,omitempty"`
	Timezone       string           `json:"timezone,omitempty"`
	Address        string           `json:"address,omitempty"`
	LaborAttribs   []LaborAttribute `json:"laborAttribs,omitempty"`
	RoundToMinutes int              `json:"roundToMinutes,omitempty"`
	StartOfWeek    string           `json:"startOfWeek,omitempty"`
	OvertimeRules  []string         `json:"overtimeRules,omitempty"`
	TimeLimits     []TimeLimitDay   `json:"timeLimits,omitempty"`
	BreakRules     []BreakRule      `json:"breakRules,omitempty"`
	CurrencyUnit   string           `json:"currencyUnit,omitempty"`
	ProjectState   string           `json:"projectState,omitempty"`
	Deleted        bool             `json:"deleted,omitempty"`
	Version        uint64           `json:"version"`
}

// LaborAttribute is a labor attribute defined on a project.
type LaborAttribute struct {
	ID             string `json:"id"`
	Label          string `json:"label,omitempty"`
	Abbrev         string `json:"abbrev,omitempty"`
	Type           string `json:"type,omitempty"`
	Subtype        string `json:"subtype,omitempty"`
	IsActive       bool   `json:"isActive,omitempty"`
	ParentAttribID string `json:"parentAttribID,omitempty"`
}

// BreakRule deducts BreakHours once a day exceeds LimitHours.
type BreakRule struct {
	LimitHours float64 `json:"limitHours"`
	BreakHours float64 `json:"breakHours"`
}
