package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/usecase/interfaces"
)

var (
	ErrCredentialsLocked          = errors.New("credentials are locked until provisioning completes")
	ErrCredentialAlreadyDisclosed = errors.New("credential already disclosed")
	ErrCredentialNotShown         = errors.New("credential has not been shown")
	ErrCredentialNotFound         = errors.New("credential entry not found")
	ErrCredentialUnavailable      = errors.New("no storage account for this profile")
)

// CredentialVault holds the disclosure state of one session's credentials. The
// secret itself is never retained: it is fetched on reveal and handed out once.
type CredentialVault struct {
	entries []entities.CredentialEntry
}

// NewCredentialVault creates one undisclosed entry per profile, pairing profile i
// with the i-th discovered account (a single account serves every profile).
func NewCredentialVault(accountIDs []string, profileCount int) *CredentialVault {
	v := &CredentialVault{entries: make([]entities.CredentialEntry, 0, profileCount)}
	for i := 0; i < profileCount; i++ {
		entry := entities.CredentialEntry{ProfileIndex: i, State: entities.DisclosureUndisclosed}
		switch {
		case i < len(accountIDs):
			entry.AccountID = accountIDs[i]
		case len(accountIDs) == 1:
			entry.AccountID = accountIDs[0]
		}
		v.entries = append(v.entries, entry)
	}
	return v
}

func (v *CredentialVault) Entries() []entities.CredentialEntry {
	out := make([]entities.CredentialEntry, len(v.entries))
	copy(out, v.entries)
	return out
}

// Reveal moves an entry from undisclosed to shown and returns its credential.
// allComplete must reflect provisioning of every tracked account.
func (v *CredentialVault) Reveal(ctx context.Context, index int, allComplete bool, provider interfaces.ICredentialsProvider, now time.Time) (entities.Credential, error) {
	entry, err := v.entry(index)
	if err != nil {
		return entities.Credential{}, err
	}
	if !allComplete {
		return entities.Credential{}, ErrCredentialsLocked
	}
	if entry.State != entities.DisclosureUndisclosed {
		return entities.Credential{}, ErrCredentialAlreadyDisclosed
	}
	if entry.AccountID == "" || provider == nil {
		return entities.Credential{}, ErrCredentialUnavailable
	}
	cred, err := provider.FetchCredential(ctx, entry.AccountID)
	if err != nil {
		return entities.Credential{}, err
	}
	shownAt := now.UTC()
	entry.State = entities.DisclosureShown
	entry.ShownAt = &shownAt
	return cred, nil
}

// Acknowledge makes the disclosure final. Acknowledging twice is a no-op.
func (v *CredentialVault) Acknowledge(index int, now time.Time) error {
	entry, err := v.entry(index)
	if err != nil {
		return err
	}
	switch entry.State {
	case entities.DisclosureAcknowledged:
		return nil
	case entities.DisclosureShown:
		ackAt := now.UTC()
		entry.State = entities.DisclosureAcknowledged
		entry.AcknowledgedAt = &ackAt
		return nil
	default:
		return ErrCredentialNotShown
	}
}

func (v *CredentialVault) entry(index int) (*entities.CredentialEntry, error) {
	if v == nil || index < 0 || index >= len(v.entries) {
		return nil, ErrCredentialNotFound
	}
	return &v.entries[index], nil
}
