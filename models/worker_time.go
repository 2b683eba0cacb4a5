package models

// WorkerDetection is one entry of the worker detections delta
// (workerDetectionUpdates), keyed by team, user and StartTS.
type WorkerDetection struct {
	ClientID       string                   `json:"clientID"`
	ProjectID      string                   `json:"projectID"`
	TeamCompanyID  string                   `json:"teamCompanyID"`
	UserID         string                   `json:"userID"`
	StartTS        string                   `json:"startTS"`
	EndTS          string                   `json:"endTS,omitempty"`
	ProjectDate    string                   `json:"projectDate,omitempty"`
	LaborValues    []LaborAttribVal         `json:"laborValues,omitempty"`
	LastLocationID string                   `json:"lastLocationID,omitempty"`
	LastLocationTS string                   `json:"lastLocationTS,omitempty"`
	Ranges         []LocationDetectionRange `json:"ranges,omitempty"`
	Deleted        bool                     `json:"deleted,omitempty"`
	Version        uint64                   `json:"version"`
}

// LocationDetectionRange lists the time ranges a worker was detected at one
// location.
type LocationDetectionRange struct {
	LocationID string      `json:"locationID"`
	Ranges     []TimeRange `json:"ranges"`
}

// WorkerLabor is one entry of the worker labor delta (workerLaborUpdates),
// keyed by team, user and StartTS.
type WorkerLabor struct {
	ClientID       string           `json:"clientID"`
	ProjectID      string           `json:"projectID"`
	TeamCompanyID  string           `json:"teamCompanyID"`
	UserID         string           `json:"userID"`
	StartTS        string           `json:"startTS"`
	EndTS          string           `json:"endTS,omitempty"`
	ClosedTS       string           `json:"closedTS,omitempty"`
	ProjectDate    string           `json:"projectDate,omitempty"`
	LaborValues    []LaborAttribVal `json:"laborValues,omitempty"`
	LastEditTS     string           `json:"lastEditTS,omitempty"`
	LastEditUserID string           `json:"lastEditUserID,omitempty"`
	LastEditNotes  string           `json:"lastEditNotes,omitempty"`
	CheckInUserID  string           `json:"checkInUserID,omitempty"`
	CheckOutUserID string           `json:"checkOutUserID,omitempty"`
	CheckInTS      string           `json:"checkInTS,omitempty"`
	CheckOutTS     string           `json:"checkOutTS,omitempty"`
	VerifiedUserID string           `json:"verifiedUserID,omitempty"`
	VerifiedTS     string           `json:"verifiedTS,omitempty"`
	CheckInStatus  string           `json:"checkInStatus,omitempty"`
	Deleted        bool             `json:"deleted,omitempty"`
	Version        uint64           `json:"version"`
}
