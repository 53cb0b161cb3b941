package request

import (
	"strings"
	"time"

	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"
)

type ProvisioningStepRequest struct {
	ID          string         `json:"id" binding:"required"`
	Label       string         `json:"label"`
	Status      string         `json:"status" binding:"required,oneof=completed pending not_started failed"`
	Description string         `json:"description"`
	Context     map[string]any `json:"context"`
	UpdatedAt   *time.Time     `json:"updated_at"`
}

// ProvisioningEventRequest is a "provisioning updated" message pushed by the
// platform for one entity.
type ProvisioningEventRequest struct {
	Step      ProvisioningStepRequest `json:"step"`
	AccountID string                  `json:"accountId"`
}

func (r ProvisioningEventRequest) ToEvent() entities.ProvisioningEvent {
	step := entities.ProvisioningStep{
		ID:          strings.TrimSpace(r.Step.ID),
		Label:       r.Step.Label,
		Status:      entities.StepStatus(r.Step.Status),
		Description: r.Step.Description,
		Context:     r.Step.Context,
	}
	if r.Step.UpdatedAt != nil {
		step.UpdatedAt = r.Step.UpdatedAt.UTC()
	}
	return entities.ProvisioningEvent{
		Step:      &step,
		AccountID: entities.FlexString(strings.TrimSpace(r.AccountID)),
	}
}
