package entities

import "time"

// DisclosureState tracks one-time display of an access credential.
type DisclosureState string

const (
	DisclosureUndisclosed  DisclosureState = "undisclosed"
	DisclosureShown        DisclosureState = "shown"
	DisclosureAcknowledged DisclosureState = "acknowledged"
)

type Credential struct {
	Endpoint string `json:"endpoint"`
	KeyID    string `json:"key_id"`
	Secret   string `json:"secret"`
}

// CredentialEntry is the disclosure record of one profile of a session.
type CredentialEntry struct {
	ProfileIndex   int             `json:"profile_index"`
	AccountID      string          `json:"account_id"`
	State          DisclosureState `json:"state"`
	ShownAt        *time.Time      `json:"shown_at,omitempty"`
	AcknowledgedAt *time.Time      `json:"acknowledged_at,omitempty"`
}
