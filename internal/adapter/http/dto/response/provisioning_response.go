package response

import "github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"

type StepsResponse struct {
	Kind     string                      `json:"kind"`
	ID       string                      `json:"id"`
	Channel  string                      `json:"channel"`
	Steps    []entities.ProvisioningStep `json:"steps"`
	Complete bool                        `json:"complete"`
}

func FromSteps(ref entities.EntityRef, steps []entities.ProvisioningStep, complete bool) StepsResponse {
	if steps == nil {
		steps = []entities.ProvisioningStep{}
	}
	return StepsResponse{
		Kind:     string(ref.Kind),
		ID:       ref.ID,
		Channel:  ref.Channel(),
		Steps:    steps,
		Complete: complete,
	}
}

// CredentialResponse is returned exactly once per profile.
type CredentialResponse struct {
	ProfileIndex int    `json:"profile_index"`
	Endpoint     string `json:"endpoint"`
	KeyID        string `json:"key_id"`
	Secret       string `json:"secret"`
}

func FromCredential(index int, c entities.Credential) CredentialResponse {
	return CredentialResponse{
		ProfileIndex: index,
		Endpoint:     c.Endpoint,
		KeyID:        c.KeyID,
		Secret:       c.Secret,
	}
}
