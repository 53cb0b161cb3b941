package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

type Stage string

const (
	StageWorkflow Stage = "workflow"
	StageServices Stage = "services"
	StagePayment  Stage = "payment"
	StageReview   Stage = "review"
	StageSuccess  Stage = "success"
)

var (
	fastTrackStages = []Stage{StageWorkflow, StageServices, StageReview, StageSuccess}
	standardStages  = []Stage{StageWorkflow, StageServices, StagePayment, StageReview, StageSuccess}
)

// ErrValidation is matched by every *ValidationError through errors.Is.
var ErrValidation = errors.New("validation failed")

// ValidationError is a stage-gate failure. Fields maps a field path to a user-facing
// message. It is recoverable and never leaves the workflow in a moved state.
type ValidationError struct {
	Stage  Stage
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%s stage: %s", e.Stage, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// StagesFor returns the stage sequence of a mode; unknown modes are standard.
func StagesFor(mode entities.WorkflowMode) []Stage {
	if mode == entities.ModeFastTrack {
		return fastTrackStages
	}
	return standardStages
}

// Workflow is the position of an order session in its stage sequence.
type Workflow struct {
	Mode       entities.WorkflowMode `json:"mode"`
	ActiveStep int                   `json:"active_step"`
}

func NewWorkflow(mode entities.WorkflowMode) *Workflow {
	if mode != entities.ModeFastTrack {
		mode = entities.ModeStandard
	}
	return &Workflow{Mode: mode}
}

func (w *Workflow) Stages() []Stage {
	return StagesFor(w.Mode)
}

func (w *Workflow) Current() Stage {
	stages := w.Stages()
	if w.ActiveStep < 0 || w.ActiveStep >= len(stages) {
		return stages[0]
	}
	return stages[w.ActiveStep]
}

func (w *Workflow) IndexOf(stage Stage) int {
	for i, s := range w.Stages() {
		if s == stage {
			return i
		}
	}
	return -1
}

func (w *Workflow) FastTrack() bool {
	return w.Mode == entities.ModeFastTrack
}

// SetMode switches the stage sequence. It reports whether the mode changed, in which
// case the caller must drop any order summary. An active step that no longer fits
// the new sequence is cleared, and a step past services falls back to services: the
// later stages depend on the order the switch discards.
func (w *Workflow) SetMode(mode entities.WorkflowMode) bool {
	if mode != entities.ModeFastTrack {
		mode = entities.ModeStandard
	}
	if mode == w.Mode {
		return false
	}
	w.Mode = mode
	if w.ActiveStep >= len(w.Stages()) {
		w.ActiveStep = 0
	}
	if services := w.IndexOf(StageServices); w.ActiveStep > services {
		w.ActiveStep = services
	}
	return true
}

// advanceTo moves forward to stage; gates are checked by the caller.
func (w *Workflow) advanceTo(stage Stage) {
	if idx := w.IndexOf(stage); idx > w.ActiveStep {
		w.ActiveStep = idx
	}
}

// Back moves one stage backward. discardSummary is true when the move lands on the
// workflow or services stage from a later stage.
func (w *Workflow) Back() (moved, discardSummary bool) {
	return w.GoToStep(w.ActiveStep - 1)
}

// GoToStep jumps backward (or stays) to index. Out-of-range indices and forward
// jumps, which would bypass the gates, are ignored.
func (w *Workflow) GoToStep(index int) (moved, discardSummary bool) {
	stages := w.Stages()
	if index < 0 || index >= len(stages) || index > w.ActiveStep {
		return false, false
	}
	from := w.ActiveStep
	w.ActiveStep = index
	target := stages[index]
	discard := from > index && (target == StageWorkflow || target == StageServices)
	return from != index, discard
}

// Reset returns to the first stage.
func (w *Workflow) Reset() {
	w.ActiveStep = 0
}

var gateValidator = validator.New()

type workflowGate struct {
	BillingCountry string `validate:"required"`
}

type serviceGate struct {
	Region      string  `validate:"required"`
	TierKey     string  `validate:"required"`
	Months      int     `validate:"gte=1"`
	StorageGB   float64 `validate:"gte=1,lte=100000"`
	HasTierData bool    `validate:"required"`
}

var gateFieldNames = map[string]string{
	"BillingCountry": "billing_country",
	"Region":         "region",
	"TierKey":        "tier_key",
	"Months":         "months",
	"StorageGB":      "storage_gb",
	"HasTierData":    "tier_key",
}

var gateMessages = map[string]string{
	"BillingCountry": "Select a billing country",
	"Region":         "Select a region",
	"TierKey":        "Select a storage tier",
	"Months":         "Duration must be at least 1 month",
	"StorageGB":      fmt.Sprintf("Storage size must be between %d and %d GB", entities.MinStorageGB, entities.MaxStorageGB),
	"HasTierData":    "Pricing for the selected tier is not available in this region",
}

// ValidateWorkflowStage gates workflow -> services.
func ValidateWorkflowStage(billingCountry string) *ValidationError {
	fields := collectGateErrors(workflowGate{BillingCountry: strings.TrimSpace(billingCountry)}, "")
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Stage: StageWorkflow, Fields: fields}
}

// ValidateServicesStage gates services -> payment/review: every profile needs a
// region, a tier with pricing data, at least one month and a storage size in range.
func ValidateServicesStage(resolved []entities.ResolvedProfile) *ValidationError {
	fields := map[string]string{}
	if len(resolved) < entities.MinProfiles {
		fields["profiles"] = "Add at least one storage profile"
	}
	for i, r := range resolved {
		gate := serviceGate{
			Region:      strings.TrimSpace(r.Profile.Region),
			TierKey:     strings.TrimSpace(r.Profile.TierKey),
			Months:      r.Profile.Months,
			StorageGB:   r.StorageGB.InexactFloat64(),
			HasTierData: r.HasTierData || strings.TrimSpace(r.Profile.TierKey) == "",
		}
		for k, v := range collectGateErrors(gate, fmt.Sprintf("profiles[%d].", i)) {
			fields[k] = v
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Stage: StageServices, Fields: fields}
}

func collectGateErrors(gate any, prefix string) map[string]string {
	fields := map[string]string{}
	err := gateValidator.Struct(gate)
	if err == nil {
		return fields
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields[prefix+"form"] = err.Error()
		return fields
	}
	for _, fe := range verrs {
		key := prefix + gateFieldNames[fe.StructField()]
		if _, taken := fields[key]; taken {
			continue
		}
		fields[key] = gateMessages[fe.StructField()]
	}
	return fields
}
