package models

import "time"

// Session is the authenticated TRIVA session owned by the token manager.
type Session struct {
	UserID       string
	IDToken      string
	RefreshToken string
	Expiry       time.Time
}

// IsZero reports whether s holds no token.
func (s Session) IsZero() bool {
	return s.IDToken == ""
}

// LoginRequest is the body of POST /Login.
type LoginRequest struct {
	UserID   string `json:"UserID"`
	Password string `json:"Password"`
}

// RefreshLoginRequest is the body of POST /RefreshLogin.
type RefreshLoginRequest struct {
	UserID       string `json:"UserID"`
	RefreshToken string `json:"RefreshToken"`
}

// LoginResponse is returned by both login endpoints. A response carrying
// ChallengeType instead of IDToken requires user action.
type LoginResponse struct {
	ChallengeType   string `json:"ChallengeType,omitempty"`
	ChallengeData   string `json:"ChallengeData,omitempty"`
	IDToken         string `json:"IDToken,omitempty"`
	AuthToken       string `json:"AuthToken,omitempty"`
	RefreshToken    string `json:"RefreshToken,omitempty"`
	ExpireTimestamp string `json:"ExpireTimestamp,omitempty"`
	UserID          string `json:"UserID,omitempty"`
}
