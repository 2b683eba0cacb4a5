package models

// Team is one entry of the teams delta (teamUpdates).
type Team struct {
	ClientID        string `json:"clientID"`
	ProjectID       string `json:"projectID"`
	TeamCompanyID   string `json:"teamCompanyID"`
	TeamCompanyName string `json:"teamCompanyName,omitempty"`
	TeamTrade       string `json:"teamTrade,omitempty"`
	Deleted         bool   `json:"deleted,omitempty"`
	Version         uint64 `json:"version"`
}
