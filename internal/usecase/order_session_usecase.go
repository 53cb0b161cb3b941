package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/infrastructure/logging"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ProductTypeObjectStorage is the product type passed to the pricing query.
const ProductTypeObjectStorage = "object_storage"

var (
	ErrSessionNotFound      = errors.New("order session not found")
	ErrUnknownOrderContext  = errors.New("unknown order context")
	ErrProfilesLocked       = errors.New("service profiles cannot change after the services stage")
	ErrOrderSummaryNotFound = errors.New("order summary not found")
)

// Capabilities are the context-specific collaborators of an order session. One
// bundle is registered per OrderContext.
type Capabilities struct {
	Regions     interfaces.IRegionsProvider
	Countries   interfaces.ICountriesProvider
	Pricing     interfaces.IPricingProvider
	Submitter   interfaces.IOrderSubmitter
	Credentials interfaces.ICredentialsProvider
}

type CreateSessionInput struct {
	Context        entities.OrderContext
	Mode           entities.WorkflowMode
	BillingCountry string
	Currency       string
	TenantID       string
	UserID         string
}

// SessionSettings patches the order-level fields; nil fields are untouched.
type SessionSettings struct {
	Mode           *entities.WorkflowMode
	BillingCountry *string
	Currency       *string
	TenantID       *string
	UserID         *string
}

// SessionView is a consistent snapshot of a session.
type SessionView struct {
	ID                   string                     `json:"id"`
	Context              entities.OrderContext      `json:"context"`
	Mode                 entities.WorkflowMode      `json:"mode"`
	Stages               []Stage                    `json:"stages"`
	ActiveStep           int                        `json:"active_step"`
	Stage                Stage                      `json:"stage"`
	BillingCountry       string                     `json:"billing_country"`
	DisplayCurrency      string                     `json:"display_currency"`
	TenantID             string                     `json:"tenant_id,omitempty"`
	Profiles             []entities.ResolvedProfile `json:"profiles"`
	Catalog              entities.Catalog           `json:"catalog"`
	Totals               entities.SummaryTotals     `json:"totals"`
	GatewayFee           decimal.Decimal            `json:"gateway_fee"`
	GrandTotal           decimal.Decimal            `json:"grand_total"`
	Summary              *entities.OrderSummary     `json:"summary,omitempty"`
	PaymentComplete      bool                       `json:"payment_complete"`
	PaymentFailed        bool                       `json:"payment_failed"`
	ProvisioningComplete bool                       `json:"provisioning_complete"`
	Credentials          []entities.CredentialEntry `json:"credentials"`
	UpdatedAt            time.Time                  `json:"updated_at"`
}

//go:generate mockgen -source=order_session_usecase.go -destination=../adapter/http/handlers/mocks/order_session_usecase_mock.go -package=mocks

type IOrderSessionUseCase interface {
	Create(ctx context.Context, in CreateSessionInput) (SessionView, error)
	Get(ctx context.Context, id string) (SessionView, error)
	Delete(ctx context.Context, id string) error
	UpdateSettings(ctx context.Context, id string, in SessionSettings) (SessionView, error)
	AddProfile(ctx context.Context, id string) (SessionView, error)
	UpdateProfile(ctx context.Context, id, profileID string, patch ProfilePatch) (SessionView, error)
	RemoveProfile(ctx context.Context, id, profileID string) (SessionView, error)
	Next(ctx context.Context, id string) (SessionView, error)
	Back(ctx context.Context, id string) (SessionView, error)
	GoToStep(ctx context.Context, id string, index int) (SessionView, error)
	Reset(ctx context.Context, id string) (SessionView, error)
	SelectGateway(ctx context.Context, id, reference string) (SessionView, error)
	RefreshPayment(ctx context.Context, id string) (SessionView, error)
	RevealCredential(ctx context.Context, id string, index int) (entities.Credential, error)
	AcknowledgeCredential(ctx context.Context, id string, index int) (SessionView, error)
	ListSummaries(ctx context.Context, id string) ([]entities.OrderSummary, error)
	ListRegions(ctx context.Context, octx entities.OrderContext) ([]entities.Region, error)
	ListCountries(ctx context.Context, octx entities.OrderContext) ([]entities.Country, error)
}

type orderSession struct {
	mu sync.Mutex

	id             string
	octx           entities.OrderContext
	caps           Capabilities
	workflow       *Workflow
	profiles       []entities.ServiceProfile
	billingCountry string
	currency       string
	tenantID       string
	userID         string

	countries []entities.Country
	rows      map[string][]entities.PricingRow
	catalog   entities.Catalog

	summary    *entities.OrderSummary
	gatewayRef string
	vault      *CredentialVault
	updatedAt  time.Time
	lastSeen   time.Time
	expired    bool
}

// DefaultSessionIdleTTL applies when no WithSessionIdleTTL option is given.
const DefaultSessionIdleTTL = 2 * time.Hour

type OrderSessionUseCase struct {
	caps       map[entities.OrderContext]Capabilities
	repo       interfaces.IOrderSummaryRepository
	reconciler IProvisioningReconciler
	tracker    IPaymentTracker
	now        func() time.Time
	idleTTL    time.Duration

	mu       sync.RWMutex
	sessions map[string]*orderSession
}

var _ IOrderSessionUseCase = (*OrderSessionUseCase)(nil)

type SessionOption func(*OrderSessionUseCase)

// WithSessionIdleTTL sets how long an untouched session survives a sweep.
func WithSessionIdleTTL(ttl time.Duration) SessionOption {
	return func(u *OrderSessionUseCase) {
		if ttl > 0 {
			u.idleTTL = ttl
		}
	}
}

// WithSessionClock overrides the time source.
func WithSessionClock(now func() time.Time) SessionOption {
	return func(u *OrderSessionUseCase) { u.now = now }
}

func NewOrderSessionUseCase(caps map[entities.OrderContext]Capabilities, repo interfaces.IOrderSummaryRepository, reconciler IProvisioningReconciler, tracker IPaymentTracker, opts ...SessionOption) *OrderSessionUseCase {
	u := &OrderSessionUseCase{
		caps:       caps,
		repo:       repo,
		reconciler: reconciler,
		tracker:    tracker,
		now:        time.Now,
		idleTTL:    DefaultSessionIdleTTL,
		sessions:   map[string]*orderSession{},
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *OrderSessionUseCase) Create(ctx context.Context, in CreateSessionInput) (SessionView, error) {
	log := logging.L()
	caps, ok := u.caps[in.Context]
	if !ok {
		return SessionView{}, ErrUnknownOrderContext
	}
	s := &orderSession{
		id:             uuid.NewString(),
		octx:           in.Context,
		caps:           caps,
		workflow:       NewWorkflow(in.Mode),
		profiles:       []entities.ServiceProfile{entities.NewServiceProfile()},
		billingCountry: strings.ToUpper(strings.TrimSpace(in.BillingCountry)),
		currency:       strings.ToUpper(strings.TrimSpace(in.Currency)),
		tenantID:       strings.TrimSpace(in.TenantID),
		userID:         strings.TrimSpace(in.UserID),
		rows:           map[string][]entities.PricingRow{},
		updatedAt:      u.now().UTC(),
		lastSeen:       u.now(),
	}
	if caps.Countries != nil {
		countries, err := caps.Countries.ListCountries(ctx)
		if err != nil {
			log.Warn("[order][usecase] countries fetch failed", zap.String("context", string(in.Context)), zap.Error(err))
		} else {
			s.countries = countries
		}
	}
	if err := u.loadCatalog(ctx, s); err != nil {
		return SessionView{}, err
	}

	u.mu.Lock()
	u.sessions[s.id] = s
	u.mu.Unlock()
	log.Info("[order][usecase] session created", zap.String("session_id", s.id), zap.String("context", string(s.octx)), zap.String("mode", string(s.workflow.Mode)))
	return u.view(ctx, s), nil
}

func (u *OrderSessionUseCase) session(id string) (*orderSession, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	s, ok := u.sessions[strings.TrimSpace(id)]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// withSession runs fn with the session locked and returns the resulting view.
func (u *OrderSessionUseCase) withSession(ctx context.Context, id string, fn func(s *orderSession) error) (SessionView, error) {
	s, err := u.session(id)
	if err != nil {
		return SessionView{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.expired {
		return SessionView{}, ErrSessionNotFound
	}
	s.lastSeen = u.now()
	if err := fn(s); err != nil {
		return u.view(ctx, s), err
	}
	s.updatedAt = u.now().UTC()
	return u.view(ctx, s), nil
}

// SweepIdle drops sessions untouched for longer than the idle TTL, releasing their
// tracked accounts. Sessions busy in another call are left for the next sweep.
func (u *OrderSessionUseCase) SweepIdle() int {
	cutoff := u.now().Add(-u.idleTTL)
	u.mu.RLock()
	candidates := make([]*orderSession, 0)
	for _, s := range u.sessions {
		candidates = append(candidates, s)
	}
	u.mu.RUnlock()

	expired := 0
	for _, s := range candidates {
		if !s.mu.TryLock() {
			continue
		}
		if s.expired || !s.lastSeen.Before(cutoff) {
			s.mu.Unlock()
			continue
		}
		s.expired = true
		u.discardSummary(s)
		s.mu.Unlock()

		u.mu.Lock()
		delete(u.sessions, s.id)
		u.mu.Unlock()
		expired++
		logging.L().Info("[order][usecase] idle session expired", zap.String("session_id", s.id))
	}
	return expired
}

// RunSweeper calls SweepIdle every interval until ctx is done.
func (u *OrderSessionUseCase) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = u.idleTTL / 4
	}
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			u.SweepIdle()
		}
	}
}

func (u *OrderSessionUseCase) Get(ctx context.Context, id string) (SessionView, error) {
	return u.withSession(ctx, id, func(*orderSession) error { return nil })
}

func (u *OrderSessionUseCase) Delete(ctx context.Context, id string) error {
	s, err := u.session(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.expired = true
	u.discardSummary(s)
	s.mu.Unlock()

	u.mu.Lock()
	delete(u.sessions, s.id)
	u.mu.Unlock()
	logging.L().Info("[order][usecase] session deleted", zap.String("session_id", s.id))
	return nil
}

func (u *OrderSessionUseCase) UpdateSettings(ctx context.Context, id string, in SessionSettings) (SessionView, error) {
	return u.withSession(ctx, id, func(s *orderSession) error {
		if in.Mode != nil && s.workflow.SetMode(*in.Mode) {
			u.discardSummary(s)
		}
		if in.BillingCountry != nil {
			s.billingCountry = strings.ToUpper(strings.TrimSpace(*in.BillingCountry))
			if len(s.countries) == 0 && s.caps.Countries != nil {
				countries, err := s.caps.Countries.ListCountries(ctx)
				if err != nil {
					logging.L().Warn("[order][usecase] countries fetch failed", zap.String("session_id", s.id), zap.Error(err))
				} else {
					s.countries = countries
				}
			}
		}
		if in.Currency != nil {
			s.currency = strings.ToUpper(strings.TrimSpace(*in.Currency))
		}
		if in.TenantID != nil {
			s.tenantID = strings.TrimSpace(*in.TenantID)
		}
		if in.UserID != nil {
			s.userID = strings.TrimSpace(*in.UserID)
		}
		s.catalog = BuildCatalog(s.allRows(), s.displayCurrency())
		return nil
	})
}

func (u *OrderSessionUseCase) AddProfile(ctx context.Context, id string) (SessionView, error) {
	return u.withSession(ctx, id, func(s *orderSession) error {
		if err := s.profilesEditable(); err != nil {
			return err
		}
		profiles, _, err := AddProfile(s.profiles)
		if err != nil {
			return err
		}
		s.profiles = profiles
		return nil
	})
}

func (u *OrderSessionUseCase) UpdateProfile(ctx context.Context, id, profileID string, patch ProfilePatch) (SessionView, error) {
	return u.withSession(ctx, id, func(s *orderSession) error {
		if err := s.profilesEditable(); err != nil {
			return err
		}
		if err := UpdateProfile(s.profiles, profileID, patch); err != nil {
			return err
		}
		if patch.Region != nil {
			return u.loadCatalog(ctx, s)
		}
		return nil
	})
}

func (u *OrderSessionUseCase) RemoveProfile(ctx context.Context, id, profileID string) (SessionView, error) {
	return u.withSession(ctx, id, func(s *orderSession) error {
		if err := s.profilesEditable(); err != nil {
			return err
		}
		profiles, err := RemoveProfile(s.profiles, profileID)
		if err != nil {
			return err
		}
		s.profiles = profiles
		return nil
	})
}

// Next runs the gate of the current stage and advances on success. Gate failures
// are returned as *ValidationError and leave the active step unchanged.
func (u *OrderSessionUseCase) Next(ctx context.Context, id string) (SessionView, error) {
	return u.withSession(ctx, id, func(s *orderSession) error {
		w := s.workflow
		switch w.Current() {
		case StageWorkflow:
			if verr := ValidateWorkflowStage(s.billingCountry); verr != nil {
				return verr
			}
			w.advanceTo(StageServices)

		case StageServices:
			resolved := s.resolve()
			if verr := ValidateServicesStage(resolved); verr != nil {
				return verr
			}
			if w.FastTrack() {
				w.advanceTo(StageReview)
				return nil
			}
			summary, err := u.submit(ctx, s, resolved)
			if err != nil {
				return err
			}
			u.attachSummary(ctx, s, summary)
			if p := summary.Payment; p != nil && p.Required != nil && !*p.Required {
				w.advanceTo(StageReview)
				return nil
			}
			w.advanceTo(StagePayment)

		case StagePayment:
			if verr := paymentGate(StagePayment, s.summary); verr != nil {
				return verr
			}
			w.advanceTo(StageReview)

		case StageReview:
			if w.FastTrack() {
				resolved := s.resolve()
				if verr := ValidateServicesStage(resolved); verr != nil {
					return verr
				}
				summary, err := u.submit(ctx, s, resolved)
				if err != nil {
					return err
				}
				u.attachSummary(ctx, s, summary)
				w.advanceTo(StageSuccess)
				return nil
			}
			if s.summary == nil {
				return ErrNoOrderSummary
			}
			if verr := paymentGate(StageReview, s.summary); verr != nil {
				return verr
			}
			w.advanceTo(StageSuccess)
		}
		return nil
	})
}

func paymentGate(stage Stage, summary *entities.OrderSummary) *ValidationError {
	switch {
	case summary == nil:
		return &ValidationError{Stage: stage, Fields: map[string]string{"order": "No order has been created yet"}}
	case IsPaymentFailed(summary):
		return &ValidationError{Stage: stage, Fields: map[string]string{"payment": "Payment failed, choose another payment option and try again"}}
	case !IsPaymentComplete(summary):
		return &ValidationError{Stage: stage, Fields: map[string]string{"payment": "Payment has not been completed yet"}}
	}
	return nil
}

func (u *OrderSessionUseCase) Back(ctx context.Context, id string) (SessionView, error) {
	return u.withSession(ctx, id, func(s *orderSession) error {
		if _, discard := s.workflow.Back(); discard {
			u.discardSummary(s)
		}
		return nil
	})
}

func (u *OrderSessionUseCase) GoToStep(ctx context.Context, id string, index int) (SessionView, error) {
	return u.withSession(ctx, id, func(s *orderSession) error {
		if _, discard := s.workflow.GoToStep(index); discard {
			u.discardSummary(s)
		}
		return nil
	})
}

func (u *OrderSessionUseCase) Reset(ctx context.Context, id string) (SessionView, error) {
	return u.withSession(ctx, id, func(s *orderSession) error {
		u.discardSummary(s)
		s.gatewayRef = ""
		s.workflow.Reset()
		return nil
	})
}

func (u *OrderSessionUseCase) SelectGateway(ctx context.Context, id, reference string) (SessionView, error) {
	return u.withSession(ctx, id, func(s *orderSession) error {
		if err := SelectGateway(s.summary, reference); err != nil {
			return err
		}
		s.gatewayRef = s.summary.SelectedGatewayRef
		return nil
	})
}

func (u *OrderSessionUseCase) RefreshPayment(ctx context.Context, id string) (SessionView, error) {
	return u.withSession(ctx, id, func(s *orderSession) error {
		if s.summary == nil {
			return ErrNoOrderSummary
		}
		if u.tracker == nil {
			return ErrPaymentGatewayNotFound
		}
		before := paymentStatus(s.summary)
		if _, err := u.tracker.Refresh(ctx, s.summary); err != nil {
			return err
		}
		if paymentStatus(s.summary) != before {
			u.saveSummary(ctx, s.summary)
		}
		return nil
	})
}

func (u *OrderSessionUseCase) RevealCredential(ctx context.Context, id string, index int) (entities.Credential, error) {
	s, err := u.session(id)
	if err != nil {
		return entities.Credential{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.expired {
		return entities.Credential{}, ErrSessionNotFound
	}
	s.lastSeen = u.now()
	if s.summary == nil || s.vault == nil {
		return entities.Credential{}, ErrNoOrderSummary
	}
	cred, err := s.vault.Reveal(ctx, index, u.provisioningComplete(ctx, s), s.caps.Credentials, u.now())
	if err != nil {
		logging.L().Info("[credentials][usecase] reveal refused", zap.String("session_id", s.id), zap.Int("profile_index", index), zap.Error(err))
		return entities.Credential{}, err
	}
	logging.L().Info("[credentials][usecase] credential revealed", zap.String("session_id", s.id), zap.Int("profile_index", index))
	return cred, nil
}

func (u *OrderSessionUseCase) AcknowledgeCredential(ctx context.Context, id string, index int) (SessionView, error) {
	return u.withSession(ctx, id, func(s *orderSession) error {
		if s.vault == nil {
			return ErrNoOrderSummary
		}
		return s.vault.Acknowledge(index, u.now())
	})
}

func (u *OrderSessionUseCase) ListSummaries(ctx context.Context, id string) ([]entities.OrderSummary, error) {
	if u.repo == nil {
		return nil, ErrOrderSummaryNotFound
	}
	return u.repo.ListBySessionID(ctx, strings.TrimSpace(id))
}

func (u *OrderSessionUseCase) ListRegions(ctx context.Context, octx entities.OrderContext) ([]entities.Region, error) {
	caps, ok := u.caps[octx]
	if !ok || caps.Regions == nil {
		return nil, ErrUnknownOrderContext
	}
	return caps.Regions.ListRegions(ctx)
}

func (u *OrderSessionUseCase) ListCountries(ctx context.Context, octx entities.OrderContext) ([]entities.Country, error) {
	caps, ok := u.caps[octx]
	if !ok || caps.Countries == nil {
		return nil, ErrUnknownOrderContext
	}
	return caps.Countries.ListCountries(ctx)
}

func (u *OrderSessionUseCase) submit(ctx context.Context, s *orderSession, resolved []entities.ResolvedProfile) (*entities.OrderSummary, error) {
	summary, err := SubmitOrder(ctx, s.caps.Submitter, s.octx, resolved, SubmissionOptions{
		FastTrack:  s.workflow.FastTrack(),
		CountryISO: s.billingCountry,
		TenantID:   s.tenantID,
		UserID:     s.userID,
	})
	if err != nil {
		return nil, err
	}
	summary.SessionID = s.id
	return summary, nil
}

// attachSummary makes summary current, stores an audit copy and starts tracking the
// storage accounts it names as one group. The user's gateway choice carries over
// while the new options still offer it, else the default first option applies. Persistence and tracking failures are
// logged only.
func (u *OrderSessionUseCase) attachSummary(ctx context.Context, s *orderSession, summary *entities.OrderSummary) {
	u.discardSummary(s)
	if s.gatewayRef != "" {
		defaultRef := summary.SelectedGatewayRef
		summary.SelectedGatewayRef = s.gatewayRef
		SetGatewayOptions(summary, summary.GatewayOptions)
		if summary.SelectedGatewayRef == "" {
			summary.SelectedGatewayRef = defaultRef
			s.gatewayRef = ""
		}
	}

	s.summary = summary
	s.vault = NewCredentialVault(summary.AccountIDs, len(s.profiles))
	u.saveSummary(ctx, summary)

	if u.reconciler == nil {
		return
	}
	if err := u.reconciler.TrackGroup(ctx, accountRefs(summary)); err != nil {
		logging.L().Warn("[order][usecase] account tracking failed", zap.String("summary_id", summary.ID), zap.Strings("accounts", summary.AccountIDs), zap.Error(err))
	}
}

func (u *OrderSessionUseCase) saveSummary(ctx context.Context, summary *entities.OrderSummary) {
	if u.repo == nil || summary == nil {
		return
	}
	if err := u.repo.Save(ctx, *summary); err != nil {
		logging.L().Error("[order][usecase] summary save failed", zap.String("summary_id", summary.ID), zap.Error(err))
	}
}

func (u *OrderSessionUseCase) discardSummary(s *orderSession) {
	if s.summary == nil {
		return
	}
	if u.reconciler != nil {
		u.reconciler.UntrackGroup(accountRefs(s.summary))
	}
	s.summary = nil
	s.vault = nil
}

func accountRefs(summary *entities.OrderSummary) []entities.EntityRef {
	if summary == nil {
		return nil
	}
	refs := make([]entities.EntityRef, 0, len(summary.AccountIDs))
	for _, id := range summary.AccountIDs {
		refs = append(refs, entities.EntityRef{Kind: entities.EntityObjectStorage, ID: id})
	}
	return refs
}

func (u *OrderSessionUseCase) provisioningComplete(ctx context.Context, s *orderSession) bool {
	if u.reconciler == nil || s.summary == nil {
		return false
	}
	return u.reconciler.AllComplete(ctx, accountRefs(s.summary))
}

// loadCatalog fetches pricing for every profile region not fetched yet, in
// parallel, then rebuilds the catalog.
func (u *OrderSessionUseCase) loadCatalog(ctx context.Context, s *orderSession) error {
	if s.caps.Pricing == nil {
		s.catalog = BuildCatalog(s.allRows(), s.displayCurrency())
		return nil
	}
	missing := make([]string, 0)
	seen := map[string]struct{}{}
	for _, p := range s.profiles {
		region := strings.ToLower(strings.TrimSpace(p.Region))
		if _, done := s.rows[region]; done {
			continue
		}
		if _, dup := seen[region]; dup {
			continue
		}
		seen[region] = struct{}{}
		missing = append(missing, region)
	}

	results := make([][]entities.PricingRow, len(missing))
	g, gctx := errgroup.WithContext(ctx)
	for i, region := range missing {
		g.Go(func() error {
			rows, err := s.caps.Pricing.ListPricing(gctx, region, ProductTypeObjectStorage)
			if err != nil {
				return err
			}
			results[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logging.L().Error("[order][usecase] pricing fetch failed", zap.String("session_id", s.id), zap.Strings("regions", missing), zap.Error(err))
		return err
	}
	for i, region := range missing {
		s.rows[region] = results[i]
	}
	s.catalog = BuildCatalog(s.allRows(), s.displayCurrency())
	return nil
}

func (u *OrderSessionUseCase) view(ctx context.Context, s *orderSession) SessionView {
	currency := s.displayCurrency()
	resolved := s.resolve()
	var breakdown *entities.PricingBreakdown
	if s.summary != nil {
		breakdown = s.summary.PricingBreakdown
	}
	totals := Aggregate(resolved, currency, breakdown)
	v := SessionView{
		ID:              s.id,
		Context:         s.octx,
		Mode:            s.workflow.Mode,
		Stages:          s.workflow.Stages(),
		ActiveStep:      s.workflow.ActiveStep,
		Stage:           s.workflow.Current(),
		BillingCountry:  s.billingCountry,
		DisplayCurrency: currency,
		TenantID:        s.tenantID,
		Profiles:        resolved,
		Catalog:         s.catalog,
		Totals:          totals,
		GatewayFee:      GatewayFee(s.summary),
		GrandTotal:      GrandTotalWithFees(totals, s.summary),
		Summary:         s.summary,
		PaymentComplete: IsPaymentComplete(s.summary),
		PaymentFailed:   IsPaymentFailed(s.summary),
		Credentials:     []entities.CredentialEntry{},
		UpdatedAt:       s.updatedAt,
	}
	if s.vault != nil {
		v.Credentials = s.vault.Entries()
		v.ProvisioningComplete = u.provisioningComplete(ctx, s)
	}
	return v
}

func (s *orderSession) resolve() []entities.ResolvedProfile {
	return ResolveProfiles(s.profiles, s.catalog, s.displayCurrency())
}

func (s *orderSession) profilesEditable() error {
	if s.workflow.ActiveStep > s.workflow.IndexOf(StageServices) {
		return ErrProfilesLocked
	}
	return nil
}

// displayCurrency: explicit choice, then the billing country's currency, then USD.
func (s *orderSession) displayCurrency() string {
	if s.currency != "" {
		return s.currency
	}
	for _, c := range s.countries {
		if c.Code == s.billingCountry && c.CurrencyCode != "" {
			return c.CurrencyCode
		}
	}
	return defaultCurrency
}

// allRows returns the cached pricing rows in a stable region order.
func (s *orderSession) allRows() []entities.PricingRow {
	regions := make([]string, 0, len(s.rows))
	for r := range s.rows {
		regions = append(regions, r)
	}
	sort.Strings(regions)
	out := make([]entities.PricingRow, 0)
	for _, r := range regions {
		out = append(out, s.rows[r]...)
	}
	return out
}
