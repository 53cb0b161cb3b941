package entities

import (
	"strings"
	"time"
)

type StepStatus string

const (
	StepCompleted  StepStatus = "completed"
	StepPending    StepStatus = "pending"
	StepNotStarted StepStatus = "not_started"
	StepFailed     StepStatus = "failed"
)

// Well-known step ids that gate credential disclosure.
const (
	StepIDAccessKeyReady = "access_key_ready"
	StepIDFinalize       = "finalize"
)

// ProvisioningStep is one entry of an entity's provisioning progress list.
type ProvisioningStep struct {
	ID          string         `json:"id"`
	Label       string         `json:"label"`
	Status      StepStatus     `json:"status"`
	Description string         `json:"description,omitempty"`
	Context     map[string]any `json:"context,omitempty"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type EntityKind string

const (
	EntityProjects      EntityKind = "projects"
	EntityTenants       EntityKind = "tenants"
	EntityUsers         EntityKind = "users"
	EntityObjectStorage EntityKind = "object-storage"
)

func ParseEntityKind(s string) (EntityKind, bool) {
	switch k := EntityKind(strings.ToLower(strings.TrimSpace(s))); k {
	case EntityProjects, EntityTenants, EntityUsers, EntityObjectStorage:
		return k, true
	}
	return "", false
}

// EntityRef identifies a tracked entity.
type EntityRef struct {
	Kind EntityKind `json:"kind"`
	ID   string     `json:"id"`
}

// Channel is the private event channel name, "<kind>.<id>".
func (r EntityRef) Channel() string {
	return string(r.Kind) + "." + r.ID
}

func (r EntityRef) Valid() bool {
	return r.Kind != "" && strings.TrimSpace(r.ID) != ""
}

// ProvisioningEvent is the "provisioning updated" message delivered on a channel.
type ProvisioningEvent struct {
	Step      *ProvisioningStep `json:"step"`
	AccountID FlexString        `json:"accountId,omitempty"`
}
