package models

// Client is one entry of the clients delta (clientUpdates).
type Client struct {
	ClientID   string `json:"clientID"`
	ClientName string `json:"clientName,omitempty"`
	Timezone   string `json:"timezone,omitempty"`
	Deleted    bool   `json:"deleted,omitempty"`
	Version    uint64 `json:"version"`
}
