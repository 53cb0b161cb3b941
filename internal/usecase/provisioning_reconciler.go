package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/infrastructure/logging"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/infrastructure/metrics"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrReconcilerStopped = errors.New("provisioning reconciler stopped")
	ErrEventBusMissing   = errors.New("event bus not configured")
)

// MergeStep folds one incoming step into a step list and returns the new list.
// A step with the same id is replaced in place, otherwise the step is appended.
// Steps are never removed and the input slice is not modified. The timestamp is the
// incoming one when set, else now, so applying the same event twice is a no-op.
func MergeStep(steps []entities.ProvisioningStep, incoming entities.ProvisioningStep, now time.Time) []entities.ProvisioningStep {
	out := make([]entities.ProvisioningStep, len(steps), len(steps)+1)
	copy(out, steps)
	incoming.ID = strings.TrimSpace(incoming.ID)
	if incoming.ID == "" {
		return out
	}
	if incoming.UpdatedAt.IsZero() {
		incoming.UpdatedAt = now.UTC()
	}
	for i := range out {
		if out[i].ID == incoming.ID {
			out[i] = incoming
			return out
		}
	}
	return append(out, incoming)
}

// StepsComplete reports whether the access key and finalize steps are both completed.
func StepsComplete(steps []entities.ProvisioningStep) bool {
	var keyReady, finalized bool
	for _, s := range steps {
		if s.Status != entities.StepCompleted {
			continue
		}
		switch s.ID {
		case entities.StepIDAccessKeyReady:
			keyReady = true
		case entities.StepIDFinalize:
			finalized = true
		}
	}
	return keyReady && finalized
}

//go:generate mockgen -source=provisioning_reconciler.go -destination=../adapter/http/handlers/mocks/provisioning_reconciler_mock.go -package=mocks

// IProvisioningReconciler tracks provisioning progress of entities.
type IProvisioningReconciler interface {
	Track(ctx context.Context, ref entities.EntityRef) error
	Untrack(ref entities.EntityRef)
	TrackGroup(ctx context.Context, refs []entities.EntityRef) error
	UntrackGroup(refs []entities.EntityRef)
	Steps(ctx context.Context, ref entities.EntityRef) ([]entities.ProvisioningStep, error)
	AllComplete(ctx context.Context, refs []entities.EntityRef) bool
	Watch(ref entities.EntityRef) (<-chan []entities.ProvisioningStep, func())
}

// trackedEntity is one open channel. peers counts, per channel, how many tracked
// groups this entity shares with it; routing never leaves that set.
type trackedEntity struct {
	ref   entities.EntityRef
	sub   interfaces.ISubscription
	refs  int
	peers map[string]int
}

// reconcileMsg is either a single event from a channel or the result of a refresh.
type reconcileMsg struct {
	ref       entities.EntityRef
	event     entities.ProvisioningEvent
	refreshed []entities.ProvisioningStep
}

type watcher struct {
	ref entities.EntityRef
	ch  chan []entities.ProvisioningStep
}

// Reconciler keeps one subscription per tracked entity. Subscriptions are
// ref-counted: the channel opens on the first Track and closes on the last Untrack.
// Every merge runs on the single dispatch goroutine started by Start.
type Reconciler struct {
	bus     interfaces.IEventBus
	store   interfaces.IStepStore
	fetcher interfaces.IProvisioningFetcher
	now     func() time.Time

	mu       sync.Mutex
	tracked  map[string]*trackedEntity
	watchers map[int]watcher
	nextID   int

	inbox chan reconcileMsg
	ctx   context.Context
	stop  context.CancelFunc
	wg    sync.WaitGroup
}

var _ IProvisioningReconciler = (*Reconciler)(nil)

type ReconcilerOption func(*Reconciler)

// WithClock overrides the time source used for step timestamps.
func WithClock(now func() time.Time) ReconcilerOption {
	return func(r *Reconciler) { r.now = now }
}

func NewReconciler(bus interfaces.IEventBus, store interfaces.IStepStore, fetcher interfaces.IProvisioningFetcher, opts ...ReconcilerOption) *Reconciler {
	r := &Reconciler{
		bus:      bus,
		store:    store,
		fetcher:  fetcher,
		now:      time.Now,
		tracked:  map[string]*trackedEntity{},
		watchers: map[int]watcher{},
		inbox:    make(chan reconcileMsg, 64),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start launches the dispatch goroutine. It stops when ctx is done or Stop is called.
func (r *Reconciler) Start(ctx context.Context) {
	r.mu.Lock()
	if r.ctx != nil {
		r.mu.Unlock()
		return
	}
	r.ctx, r.stop = context.WithCancel(ctx)
	r.mu.Unlock()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.dispatch()
	}()
}

// Stop closes every subscription and waits for the goroutines to exit.
func (r *Reconciler) Stop() {
	r.mu.Lock()
	stop := r.stop
	r.mu.Unlock()
	if stop != nil {
		stop()
	}

	r.mu.Lock()
	for key, t := range r.tracked {
		if err := t.sub.Close(); err != nil {
			logging.L().Warn("[provisioning][usecase] unsubscribe failed", zap.String("channel", key), zap.Error(err))
		}
		metrics.ActiveSubscriptions.WithLabelValues(string(t.ref.Kind)).Dec()
		delete(r.tracked, key)
	}
	for id, w := range r.watchers {
		close(w.ch)
		delete(r.watchers, id)
	}
	r.mu.Unlock()
	r.wg.Wait()
}

func (r *Reconciler) running() (context.Context, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ctx == nil || r.ctx.Err() != nil {
		return nil, false
	}
	return r.ctx, true
}

// Track opens (or re-references) the channel of ref as a group of its own. An
// invalid ref is a no-op.
func (r *Reconciler) Track(ctx context.Context, ref entities.EntityRef) error {
	return r.TrackGroup(ctx, []entities.EntityRef{ref})
}

// TrackGroup tracks refs that belong together, typically the storage accounts of
// one order. Multi-account routing and refreshes stay within the group. Either every
// valid ref is tracked or none is.
func (r *Reconciler) TrackGroup(ctx context.Context, refs []entities.EntityRef) error {
	log := logging.L()
	group := validRefs(refs)
	if len(group) == 0 {
		log.Debug("[provisioning][usecase] track skipped, no entity id", zap.Int("refs", len(refs)))
		return nil
	}
	if r.bus == nil {
		return ErrEventBusMissing
	}
	runCtx, ok := r.running()
	if !ok {
		return ErrReconcilerStopped
	}

	opened := make([]entities.EntityRef, 0, len(group))
	for _, ref := range group {
		if err := r.open(ctx, runCtx, ref); err != nil {
			for _, done := range opened {
				r.release(done)
			}
			return err
		}
		opened = append(opened, ref)
	}
	r.link(group, 1)
	return nil
}

// open subscribes outside the registry lock so a slow broker never stalls other
// channels, then re-checks the registry before inserting.
func (r *Reconciler) open(ctx, runCtx context.Context, ref entities.EntityRef) error {
	log := logging.L()
	channel := ref.Channel()
	if r.retain(channel) {
		return nil
	}

	sub, err := r.bus.Subscribe(ctx, channel)
	if err != nil {
		log.Error("[provisioning][usecase] subscribe failed", zap.String("channel", channel), zap.Error(err))
		return err
	}

	r.mu.Lock()
	if runCtx.Err() != nil {
		r.mu.Unlock()
		_ = sub.Close()
		return ErrReconcilerStopped
	}
	if t, exists := r.tracked[channel]; exists {
		t.refs++
		r.mu.Unlock()
		_ = sub.Close()
		return nil
	}
	r.tracked[channel] = &trackedEntity{ref: ref, sub: sub, refs: 1, peers: map[string]int{}}
	r.wg.Add(1)
	r.mu.Unlock()

	metrics.ActiveSubscriptions.WithLabelValues(string(ref.Kind)).Inc()
	log.Info("[provisioning][usecase] channel opened", zap.String("channel", channel))
	go r.forward(runCtx, ref, sub)
	return nil
}

func (r *Reconciler) retain(channel string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tracked[channel]
	if ok {
		t.refs++
	}
	return ok
}

// link adds (delta 1) or removes (delta -1) the pairwise peer counts of a group.
func (r *Reconciler) link(group []entities.EntityRef, delta int) {
	if len(group) < 2 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range group {
		t, ok := r.tracked[a.Channel()]
		if !ok {
			continue
		}
		for _, b := range group {
			if a == b {
				continue
			}
			t.peers[b.Channel()] += delta
			if t.peers[b.Channel()] <= 0 {
				delete(t.peers, b.Channel())
			}
		}
	}
}

func validRefs(refs []entities.EntityRef) []entities.EntityRef {
	out := make([]entities.EntityRef, 0, len(refs))
	seen := map[string]struct{}{}
	for _, ref := range refs {
		if !ref.Valid() {
			continue
		}
		if _, dup := seen[ref.Channel()]; dup {
			continue
		}
		seen[ref.Channel()] = struct{}{}
		out = append(out, ref)
	}
	return out
}

// forward pumps one subscription into the shared inbox until it closes.
func (r *Reconciler) forward(ctx context.Context, ref entities.EntityRef, sub interfaces.ISubscription) {
	defer r.wg.Done()
	events := sub.Events()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			select {
			case r.inbox <- reconcileMsg{ref: ref, event: ev}:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Untrack drops one reference to ref and leaves the channel on the last one.
// Unknown or invalid refs are a no-op.
func (r *Reconciler) Untrack(ref entities.EntityRef) {
	r.UntrackGroup([]entities.EntityRef{ref})
}

// UntrackGroup undoes one TrackGroup call with the same refs.
func (r *Reconciler) UntrackGroup(refs []entities.EntityRef) {
	group := validRefs(refs)
	r.link(group, -1)
	for _, ref := range group {
		r.release(ref)
	}
}

func (r *Reconciler) release(ref entities.EntityRef) {
	channel := ref.Channel()
	r.mu.Lock()
	t, ok := r.tracked[channel]
	if !ok {
		r.mu.Unlock()
		return
	}
	t.refs--
	if t.refs > 0 {
		r.mu.Unlock()
		return
	}
	delete(r.tracked, channel)
	r.mu.Unlock()

	metrics.ActiveSubscriptions.WithLabelValues(string(ref.Kind)).Dec()
	if err := t.sub.Close(); err != nil {
		logging.L().Warn("[provisioning][usecase] unsubscribe failed", zap.String("channel", channel), zap.Error(err))
		return
	}
	logging.L().Info("[provisioning][usecase] channel closed", zap.String("channel", channel))
}

// Tracked reports whether ref currently has an open channel.
func (r *Reconciler) Tracked(ref entities.EntityRef) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.tracked[ref.Channel()]
	return ok
}

func (r *Reconciler) Steps(ctx context.Context, ref entities.EntityRef) ([]entities.ProvisioningStep, error) {
	if r.store == nil {
		return nil, nil
	}
	return r.store.Get(ctx, ref)
}

// AllComplete is true only when every ref has both the access key and finalize
// steps completed. An empty set is never complete.
func (r *Reconciler) AllComplete(ctx context.Context, refs []entities.EntityRef) bool {
	if len(refs) == 0 {
		return false
	}
	for _, ref := range refs {
		steps, err := r.Steps(ctx, ref)
		if err != nil {
			logging.L().Warn("[provisioning][usecase] load steps failed", zap.String("channel", ref.Channel()), zap.Error(err))
			return false
		}
		if !StepsComplete(steps) {
			return false
		}
	}
	return true
}

// Watch streams the merged step list of ref after every change. Lists are dropped
// for a reader whose buffer is full.
func (r *Reconciler) Watch(ref entities.EntityRef) (<-chan []entities.ProvisioningStep, func()) {
	ch := make(chan []entities.ProvisioningStep, 8)
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.watchers[id] = watcher{ref: ref, ch: ch}
	r.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			if w, ok := r.watchers[id]; ok {
				close(w.ch)
				delete(r.watchers, id)
			}
		})
	}
	return ch, cancel
}

func (r *Reconciler) dispatch() {
	for {
		select {
		case <-r.ctx.Done():
			return
		case msg := <-r.inbox:
			r.handle(r.ctx, msg)
		}
	}
}

func (r *Reconciler) handle(ctx context.Context, msg reconcileMsg) {
	kind := string(msg.ref.Kind)
	if msg.refreshed != nil {
		r.apply(ctx, msg.ref, msg.refreshed...)
		return
	}
	if msg.event.Step == nil {
		metrics.ProvisioningEventsTotal.WithLabelValues(kind, "ignored").Inc()
		return
	}

	target, refresh := r.route(msg.ref, msg.event)
	if len(refresh) > 0 {
		metrics.ProvisioningEventsTotal.WithLabelValues(kind, "refresh").Inc()
		r.refreshAccounts(ctx, refresh)
		return
	}
	r.apply(ctx, target, *msg.event.Step)
	metrics.ProvisioningEventsTotal.WithLabelValues(kind, "merged").Inc()
}

// route picks the entity an event belongs to. Only storage accounts tracked in the
// same group as the channel are candidates. An event naming a group member goes to
// it; an event naming no account refreshes the whole group; an event naming an
// account outside the group stays on its own channel.
func (r *Reconciler) route(ref entities.EntityRef, ev entities.ProvisioningEvent) (entities.EntityRef, []entities.EntityRef) {
	if ref.Kind != entities.EntityObjectStorage {
		return ref, nil
	}
	group := r.groupOf(ref)
	if len(group) <= 1 {
		return ref, nil
	}
	accountID := strings.TrimSpace(ev.AccountID.String())
	if accountID == "" {
		if r.fetcher == nil {
			return ref, nil
		}
		return ref, group
	}
	for _, acc := range group {
		if acc.ID == accountID {
			return acc, nil
		}
	}
	return ref, nil
}

// groupOf returns ref and every storage account sharing a tracked group with it.
func (r *Reconciler) groupOf(ref entities.EntityRef) []entities.EntityRef {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entities.EntityRef{ref}
	t, ok := r.tracked[ref.Channel()]
	if !ok {
		return out
	}
	for channel := range t.peers {
		if peer, ok := r.tracked[channel]; ok && peer.ref.Kind == entities.EntityObjectStorage {
			out = append(out, peer.ref)
		}
	}
	return out
}

// refreshAccounts reloads refs off the dispatch goroutine and feeds the results
// back through the inbox.
func (r *Reconciler) refreshAccounts(ctx context.Context, refs []entities.EntityRef) {
	for _, ref := range refs {
		r.wg.Add(1)
		go func(ref entities.EntityRef) {
			defer r.wg.Done()
			steps, err := r.fetcher.FetchSteps(ctx, ref)
			if err != nil {
				logging.L().Warn("[provisioning][usecase] refresh failed", zap.String("channel", ref.Channel()), zap.Error(err))
				return
			}
			if steps == nil {
				steps = []entities.ProvisioningStep{}
			}
			select {
			case r.inbox <- reconcileMsg{ref: ref, refreshed: steps}:
			case <-ctx.Done():
			}
		}(ref)
	}
}

func (r *Reconciler) apply(ctx context.Context, ref entities.EntityRef, incoming ...entities.ProvisioningStep) {
	if r.store == nil {
		return
	}
	log := logging.L()
	steps, err := r.store.Get(ctx, ref)
	if err != nil {
		log.Warn("[provisioning][usecase] load steps failed", zap.String("channel", ref.Channel()), zap.Error(err))
		metrics.ProvisioningEventsTotal.WithLabelValues(string(ref.Kind), "error").Inc()
		return
	}
	now := r.now()
	for _, step := range incoming {
		steps = MergeStep(steps, step, now)
	}
	if err := r.store.Put(ctx, ref, steps); err != nil {
		log.Warn("[provisioning][usecase] store steps failed", zap.String("channel", ref.Channel()), zap.Error(err))
		metrics.ProvisioningEventsTotal.WithLabelValues(string(ref.Kind), "error").Inc()
		return
	}
	log.Debug("[provisioning][usecase] steps merged", zap.String("channel", ref.Channel()), zap.Int("steps", len(steps)))
	r.notify(ref, steps)
}

func (r *Reconciler) notify(ref entities.EntityRef, steps []entities.ProvisioningStep) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.watchers {
		if w.ref != ref {
			continue
		}
		select {
		case w.ch <- steps:
		default:
		}
	}
}
