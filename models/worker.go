package models

// Worker is one entry of the workers delta (workerUpdates).
type Worker struct {
	ClientID     string   `json:"clientID"`
	UserID       string   `json:"userID"`
	FirstName    string   `json:"firstName,omitempty"`
	LastName     string   `json:"lastName,omitempty"`
	PhoneNumber  string   `json:"phoneNumber,omitempty"`
	Email        string   `json:"email,omitempty"`
	BirthDay     *int     `json:"birthDay,omitempty"`
	BirthMonth   *int     `json:"birthMonth,omitempty"`
	AccountID    string   `json:"accountID,omitempty"`
	AssignedTags []string `json:"assignedTags,omitempty"`
	ClientRoles  []string `json:"clientRoles,omitempty"`
	EmployeeID   string   `json:"employeeID,omitempty"`
	Notes        string   `json:"notes,omitempty"`
	Deleted      bool     `json:"deleted,omitempty"`
	Version      uint64   `json:"version"`
}

// WorkerInvite is one entry of the worker invitations delta
// (workerInviteUpdates).
type WorkerInvite struct {
	InvitationID      string `json:"invitationID"`
	ClientID          string `json:"clientID"`
	UserID            string `json:"userID"`
	InvitingUserID    string `json:"invitingUserID,omitempty"`
	SentTS            string `json:"sentTS,omitempty"`
	ExpireTS          string `json:"expireTS,omitempty"`
	InviteState       string `json:"inviteState,omitempty"`
	InviteComments    string `json:"inviteComments,omitempty"`
	FirstName         string `json:"firstName,omitempty"`
	LastName          string `json:"lastName,omitempty"`
	Email             string `json:"email,omitempty"`
	PhoneNumber       string `json:"phoneNumber,omitempty"`
	AcceptedTS        string `json:"acceptedTS,omitempty"`
	AcceptedAccountID string `json:"acceptedAccountID,omitempty"`
	RejectedTS        string `json:"rejectedTS,omitempty"`
	RejectedReason    string `json:"rejectedReason,omitempty"`
	CancelledTS       string `json:"cancelledTS,omitempty"`
	CancelledUserID   string `json:"cancelledUserID,omitempty"`
	CancelledReason   string `json:"cancelledReason,omitempty"`
	RevokedTS         string `json:"revokedTS,omitempty"`
	RevokedUserID     string `json:"revokedUserID,omitempty"`
	RevokedReason     string `json:"revokedReason,omitempty"`
	Deleted           bool   `json:"deleted,omitempty"`
	Version           uint64 `json:"version"`
}

// WorkerOnProject is one entry of the workers-on-project delta
// (workerOnProjectUpdates). AssignedTimes replaces the stored ranges.
type WorkerOnProject struct {
	ClientID      string           `json:"clientID"`
	ProjectID     string           `json:"projectID"`
	UserID        string           `json:"userID"`
	FirstName     string           `json:"firstName,omitempty"`
	LastName      string           `json:"lastName,omitempty"`
	Title         string           `json:"title,omitempty"`
	ProjectRoles  []string         `json:"projectRoles,omitempty"`
	AssignedTimes []TimeRange      `json:"assignedTimes,omitempty"`
	LaborValues   []LaborAttribVal `json:"laborValues,omitempty"`
	Deleted       bool             `json:"deleted,omitempty"`
	Version       uint64           `json:"version"`
}

// WorkerOnTeam is one entry of the workers-on-team delta
// (workerOnTeamUpdates). AssignedTimes replaces the stored ranges.
type WorkerOnTeam struct {
	ClientID      string      `json:"clientID"`
	ProjectID     string      `json:"projectID"`
	TeamCompanyID string      `json:"teamCompanyID"`
	UserID        string      `json:"userID"`
	FirstName     string      `json:"firstName,omitempty"`
	LastName      string      `json:"lastName,omitempty"`
	AssignedTimes []TimeRange `json:"assignedTimes,omitempty"`
	Deleted       bool        `json:"deleted,omitempty"`
	Version       uint64      `json:"version"`
}
