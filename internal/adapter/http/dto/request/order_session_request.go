package request

import (
	"strings"

	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/usecase"
)

// CreateSessionRequest opens an order session for one context.
type CreateSessionRequest struct {
	Context        string `json:"context" binding:"required,oneof=admin tenant client"`
	Mode           string `json:"mode" binding:"omitempty,oneof=standard fast-track"`
	BillingCountry string `json:"billing_country"`
	Currency       string `json:"currency" binding:"omitempty,len=3"`
	TenantID       string `json:"tenant_id"`
	UserID         string `json:"user_id"`
}

func (r CreateSessionRequest) ToInput() usecase.CreateSessionInput {
	mode := entities.ModeStandard
	if strings.TrimSpace(r.Mode) != "" {
		mode = entities.WorkflowMode(strings.TrimSpace(r.Mode))
	}
	return usecase.CreateSessionInput{
		Context:        entities.OrderContext(strings.ToLower(strings.TrimSpace(r.Context))),
		Mode:           mode,
		BillingCountry: r.BillingCountry,
		Currency:       r.Currency,
		TenantID:       r.TenantID,
		UserID:         r.UserID,
	}
}

// UpdateSettingsRequest patches order-level fields; absent fields stay untouched.
type UpdateSettingsRequest struct {
	Mode           *string `json:"mode" binding:"omitempty,oneof=standard fast-track"`
	BillingCountry *string `json:"billing_country"`
	Currency       *string `json:"currency"`
	TenantID       *string `json:"tenant_id"`
	UserID         *string `json:"user_id"`
}

func (r UpdateSettingsRequest) ToSettings() usecase.SessionSettings {
	out := usecase.SessionSettings{
		BillingCountry: r.BillingCountry,
		Currency:       r.Currency,
		TenantID:       r.TenantID,
		UserID:         r.UserID,
	}
	if r.Mode != nil {
		mode := entities.WorkflowMode(strings.TrimSpace(*r.Mode))
		out.Mode = &mode
	}
	return out
}

// UpdateProfileRequest edits one service profile field by field.
type UpdateProfileRequest struct {
	Name              *string `json:"name"`
	Region            *string `json:"region"`
	TierKey           *string `json:"tier_key"`
	StorageGB         *int    `json:"storage_gb" binding:"omitempty,gte=0"`
	Months            *int    `json:"months" binding:"omitempty,gte=1"`
	UnitPriceOverride *string `json:"unit_price_override"`
}

func (r UpdateProfileRequest) ToPatch() usecase.ProfilePatch {
	return usecase.ProfilePatch{
		Name:              r.Name,
		Region:            r.Region,
		TierKey:           r.TierKey,
		StorageGB:         r.StorageGB,
		Months:            r.Months,
		UnitPriceOverride: r.UnitPriceOverride,
	}
}

type GoToStepRequest struct {
	Step *int `json:"step" binding:"required"`
}

type SelectGatewayRequest struct {
	Reference string `json:"reference" binding:"required"`
}
