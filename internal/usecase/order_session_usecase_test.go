package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"
	mock_interfaces "github.com/UnicloudAfrica/uniclo-sub012/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type sessionFixture struct {
	uc          *OrderSessionUseCase
	pricing     *mock_interfaces.MockIPricingProvider
	countries   *mock_interfaces.MockICountriesProvider
	submitter   *mock_interfaces.MockIOrderSubmitter
	credentials *mock_interfaces.MockICredentialsProvider
	repo        *mock_interfaces.MockIOrderSummaryRepository
	gateway     *mock_interfaces.MockIPaymentGateway
	store       *memoryStepStore
	reconciler  *Reconciler
	caps        map[entities.OrderContext]Capabilities
}

func newSessionFixture(t *testing.T, ctrl *gomock.Controller) *sessionFixture {
	t.Helper()
	f := &sessionFixture{
		pricing:     mock_interfaces.NewMockIPricingProvider(ctrl),
		countries:   mock_interfaces.NewMockICountriesProvider(ctrl),
		submitter:   mock_interfaces.NewMockIOrderSubmitter(ctrl),
		credentials: mock_interfaces.NewMockICredentialsProvider(ctrl),
		repo:        mock_interfaces.NewMockIOrderSummaryRepository(ctrl),
		gateway:     mock_interfaces.NewMockIPaymentGateway(ctrl),
		store:       newMemoryStepStore(),
	}
	f.pricing.EXPECT().ListPricing(gomock.Any(), gomock.Any(), ProductTypeObjectStorage).Return(pricingRows(t, globalTierFixture), nil).AnyTimes()
	f.countries.EXPECT().ListCountries(gomock.Any()).Return([]entities.Country{{Code: "NG", CurrencyCode: "NGN"}}, nil).AnyTimes()
	f.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.gateway.EXPECT().Name().Return("mercadopago").AnyTimes()

	f.reconciler = NewReconciler(newFakeBus(), f.store, nil)
	f.reconciler.Start(context.Background())
	t.Cleanup(f.reconciler.Stop)

	f.caps = map[entities.OrderContext]Capabilities{
		entities.ContextAdmin: {
			Countries:   f.countries,
			Pricing:     f.pricing,
			Submitter:   f.submitter,
			Credentials: f.credentials,
		},
	}
	f.uc = NewOrderSessionUseCase(f.caps, f.repo, f.reconciler, NewPaymentTracker(f.gateway))
	return f
}

// readyAtServices creates a session with one priced profile sitting on the services stage.
func (f *sessionFixture) readyAtServices(t *testing.T, mode entities.WorkflowMode, profiles int) SessionView {
	t.Helper()
	ctx := context.Background()
	view, err := f.uc.Create(ctx, CreateSessionInput{Context: entities.ContextAdmin, Mode: mode, BillingCountry: "ng", Currency: "USD"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	for i := 1; i < profiles; i++ {
		if view, err = f.uc.AddProfile(ctx, view.ID); err != nil {
			t.Fatalf("add profile: %v", err)
		}
	}
	region, tier := "lon1", TierKey(entities.GlobalRegionKey, "9")
	for _, p := range view.Profiles {
		if view, err = f.uc.UpdateProfile(ctx, view.ID, p.Profile.ID, ProfilePatch{Region: &region, TierKey: &tier}); err != nil {
			t.Fatalf("update profile: %v", err)
		}
	}
	if view, err = f.uc.Next(ctx, view.ID); err != nil || view.Stage != StageServices {
		t.Fatalf("expected services stage, got %s %v", view.Stage, err)
	}
	return view
}

func TestOrderSession_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newSessionFixture(t, ctrl)

	t.Run("unknown context", func(t *testing.T) {
		if _, err := f.uc.Create(context.Background(), CreateSessionInput{Context: entities.ContextClient}); !errors.Is(err, ErrUnknownOrderContext) {
			t.Fatalf("expected ErrUnknownOrderContext, got %v", err)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		view, err := f.uc.Create(context.Background(), CreateSessionInput{Context: entities.ContextAdmin, BillingCountry: "ng"})
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if view.Mode != entities.ModeStandard || view.Stage != StageWorkflow || len(view.Profiles) != 1 {
			t.Fatalf("unexpected view %+v", view)
		}
		if view.DisplayCurrency != "NGN" {
			t.Fatalf("expected billing country currency, got %s", view.DisplayCurrency)
		}
	})

	t.Run("billing country gate", func(t *testing.T) {
		view, _ := f.uc.Create(context.Background(), CreateSessionInput{Context: entities.ContextAdmin})
		view, err := f.uc.Next(context.Background(), view.ID)
		var verr *ValidationError
		if !errors.As(err, &verr) || view.ActiveStep != 0 {
			t.Fatalf("expected validation error at step 0, got %v step=%d", err, view.ActiveStep)
		}
	})
}

func TestOrderSession_MissingTierBlocksServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newSessionFixture(t, ctrl)
	ctx := context.Background()

	view := f.readyAtServices(t, entities.ModeStandard, 2)
	empty := ""
	view, _ = f.uc.UpdateProfile(ctx, view.ID, view.Profiles[1].Profile.ID, ProfilePatch{TierKey: &empty})
	before := view.ActiveStep

	view, err := f.uc.Next(ctx, view.ID)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if view.ActiveStep != before || view.Summary != nil {
		t.Fatalf("active step moved to %d", view.ActiveStep)
	}
}

func TestOrderSession_StandardFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newSessionFixture(t, ctrl)
	ctx := context.Background()

	f.submitter.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.OrderPayload) (json.RawMessage, error) {
			if p.FastTrack || p.CountryISO != "NG" {
				t.Fatalf("unexpected payload %+v", p)
			}
			return json.RawMessage(`{"data": {"transaction": {"id": 1, "status": "pending"},
				"payment": {"required": true, "gateway_options": [{"id": "mp-1", "gateway": "mercadopago"}]},
				"account": {"id": "acc-1"}}}`), nil
		},
	)
	f.gateway.EXPECT().PaymentStatus(gomock.Any(), "mp-1").Return("approved", nil)

	view := f.readyAtServices(t, entities.ModeStandard, 1)
	view, err := f.uc.Next(ctx, view.ID)
	if err != nil || view.Stage != StagePayment || view.Summary == nil {
		t.Fatalf("expected payment stage with summary, got %s %v", view.Stage, err)
	}
	if !f.reconciler.Tracked(entities.EntityRef{Kind: entities.EntityObjectStorage, ID: "acc-1"}) {
		t.Fatalf("account not tracked")
	}

	if view, err = f.uc.Next(ctx, view.ID); !errors.Is(err, ErrValidation) || view.Stage != StagePayment {
		t.Fatalf("unpaid order advanced: %s %v", view.Stage, err)
	}
	if view, err = f.uc.RefreshPayment(ctx, view.ID); err != nil || !view.PaymentComplete {
		t.Fatalf("refresh: complete=%v err=%v", view.PaymentComplete, err)
	}
	if view, err = f.uc.Next(ctx, view.ID); err != nil || view.Stage != StageReview {
		t.Fatalf("expected review, got %s %v", view.Stage, err)
	}
	if view, err = f.uc.Next(ctx, view.ID); err != nil || view.Stage != StageSuccess {
		t.Fatalf("expected success, got %s %v", view.Stage, err)
	}

	t.Run("back to services discards summary", func(t *testing.T) {
		view, _ := f.uc.GoToStep(ctx, view.ID, 1)
		if view.Stage != StageServices || view.Summary != nil {
			t.Fatalf("summary kept after going back: %+v", view.Summary)
		}
		if f.reconciler.Tracked(entities.EntityRef{Kind: entities.EntityObjectStorage, ID: "acc-1"}) {
			t.Fatalf("account still tracked")
		}
	})
}

func TestOrderSession_PaymentNotRequiredSkipsToReview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newSessionFixture(t, ctrl)

	f.submitter.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).Return(json.RawMessage(`{"payment": {"required": false}}`), nil)

	view := f.readyAtServices(t, entities.ModeStandard, 1)
	view, err := f.uc.Next(context.Background(), view.ID)
	if err != nil || view.Stage != StageReview || !view.PaymentComplete {
		t.Fatalf("expected review, got %s %v", view.Stage, err)
	}
}

func TestOrderSession_SubmissionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newSessionFixture(t, ctrl)

	f.submitter.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).Return(nil, errors.New("gateway timeout"))

	view := f.readyAtServices(t, entities.ModeStandard, 1)
	view, err := f.uc.Next(context.Background(), view.ID)
	if err == nil || view.Stage != StageServices || view.Summary != nil {
		t.Fatalf("expected rollback to services without summary, got %s %v", view.Stage, err)
	}
}

func TestOrderSession_FastTrack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newSessionFixture(t, ctrl)
	ctx := context.Background()

	view := f.readyAtServices(t, entities.ModeFastTrack, 1)
	if !reflect.DeepEqual(view.Stages, []Stage{StageWorkflow, StageServices, StageReview, StageSuccess}) {
		t.Fatalf("unexpected stages %v", view.Stages)
	}
	visited := []Stage{StageWorkflow, view.Stage}

	view, err := f.uc.Next(ctx, view.ID)
	if err != nil || view.Stage != StageReview || view.Summary != nil {
		t.Fatalf("expected review without order, got %s %v", view.Stage, err)
	}
	visited = append(visited, view.Stage)

	f.submitter.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.OrderPayload) (json.RawMessage, error) {
			if !p.FastTrack {
				t.Fatalf("fast_track flag not set")
			}
			return json.RawMessage(`{"order": {"id": "o-1"}}`), nil
		},
	)
	view, err = f.uc.Next(ctx, view.ID)
	if err != nil || view.Stage != StageSuccess || view.Summary == nil {
		t.Fatalf("expected success with summary, got %s %v", view.Stage, err)
	}
	visited = append(visited, view.Stage)
	if !reflect.DeepEqual(visited, []Stage{StageWorkflow, StageServices, StageReview, StageSuccess}) {
		t.Fatalf("unexpected stage order %v", visited)
	}
}

func TestOrderSession_ModeSwitchResetsSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newSessionFixture(t, ctrl)
	ctx := context.Background()

	f.submitter.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).Return(json.RawMessage(`{"payment": {"required": true}}`), nil)
	view := f.readyAtServices(t, entities.ModeStandard, 1)
	view, _ = f.uc.Next(ctx, view.ID)
	if view.Summary == nil {
		t.Fatalf("expected summary")
	}
	mode := entities.ModeFastTrack
	view, err := f.uc.UpdateSettings(ctx, view.ID, SessionSettings{Mode: &mode})
	if err != nil || view.Summary != nil || view.Mode != entities.ModeFastTrack {
		t.Fatalf("mode switch kept summary: %+v %v", view.Summary, err)
	}
	if view.Stage != StageServices {
		t.Fatalf("expected services after switching from payment, got %s", view.Stage)
	}
}

func TestOrderSession_ModeSwitchFromReviewNeedsNewOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newSessionFixture(t, ctrl)
	ctx := context.Background()

	f.submitter.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).Return(json.RawMessage(`{"payment": {"required": false}}`), nil)
	view := f.readyAtServices(t, entities.ModeStandard, 1)
	view, err := f.uc.Next(ctx, view.ID)
	if err != nil || view.Stage != StageReview {
		t.Fatalf("expected review, got %s %v", view.Stage, err)
	}

	mode := entities.ModeFastTrack
	view, err = f.uc.UpdateSettings(ctx, view.ID, SessionSettings{Mode: &mode})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if view.Stage != StageServices || view.Summary != nil {
		t.Fatalf("expected services without order, got %s summary=%v", view.Stage, view.Summary != nil)
	}

	f.submitter.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.OrderPayload) (json.RawMessage, error) {
			if !p.FastTrack {
				t.Fatalf("fast_track flag not set")
			}
			return json.RawMessage(`{"order": {"id": "o-2"}}`), nil
		},
	)
	if view, err = f.uc.Next(ctx, view.ID); err != nil || view.Stage != StageReview {
		t.Fatalf("expected review, got %s %v", view.Stage, err)
	}
	if view, err = f.uc.Next(ctx, view.ID); err != nil || view.Stage != StageSuccess || view.Summary == nil {
		t.Fatalf("success reached without submission: %s %v", view.Stage, err)
	}
}

func TestOrderSession_GatewayChoiceSurvivesResubmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newSessionFixture(t, ctrl)
	ctx := context.Background()

	both := json.RawMessage(`{"payment": {"required": true, "gateway_options": [{"id": "mp-1", "gateway": "mercadopago"}, {"id": "mp-2", "gateway": "mercadopago"}]}}`)
	onlyFirst := json.RawMessage(`{"payment": {"required": true, "gateway_options": [{"id": "mp-1", "gateway": "mercadopago"}]}}`)
	gomock.InOrder(
		f.submitter.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).Return(both, nil),
		f.submitter.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).Return(both, nil),
		f.submitter.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).Return(onlyFirst, nil),
	)

	view := f.readyAtServices(t, entities.ModeStandard, 1)
	view, _ = f.uc.Next(ctx, view.ID)
	view, err := f.uc.SelectGateway(ctx, view.ID, "mp-2")
	if err != nil || view.Summary.SelectedGatewayRef != "mp-2" {
		t.Fatalf("select: %v", err)
	}

	t.Run("kept while offered", func(t *testing.T) {
		view, _ := f.uc.Back(ctx, view.ID)
		if view.Summary != nil {
			t.Fatalf("expected summary discarded")
		}
		view, err := f.uc.Next(ctx, view.ID)
		if err != nil || view.Summary.SelectedGatewayRef != "mp-2" {
			t.Fatalf("selection lost: %+v %v", view.Summary, err)
		}
	})

	t.Run("dropped when no longer offered", func(t *testing.T) {
		view, _ := f.uc.Back(ctx, view.ID)
		view, err := f.uc.Next(ctx, view.ID)
		if err != nil || view.Summary.SelectedGatewayRef != "mp-1" {
			t.Fatalf("stale selection kept: %+v %v", view.Summary, err)
		}
		if opt, ok := SelectedGateway(view.Summary); !ok || opt.Reference() != "mp-1" {
			t.Fatalf("expected first option, got %+v", opt)
		}
	})
}

func TestOrderSession_RefreshPersistsStatusChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newSessionFixture(t, ctrl)
	ctx := context.Background()

	repo := mock_interfaces.NewMockIOrderSummaryRepository(ctrl)
	var saved []string
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.OrderSummary) error {
		saved = append(saved, paymentStatus(&s))
		return nil
	}).Times(2)
	uc := NewOrderSessionUseCase(f.caps, repo, f.reconciler, NewPaymentTracker(f.gateway))
	f.uc = uc

	f.submitter.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).Return(json.RawMessage(
		`{"transaction": {"id": 1, "status": "pending"}, "payment": {"required": true, "gateway_options": [{"id": "mp-1", "gateway": "mercadopago"}]}}`), nil)
	gomock.InOrder(
		f.gateway.EXPECT().PaymentStatus(gomock.Any(), "mp-1").Return("pending", nil),
		f.gateway.EXPECT().PaymentStatus(gomock.Any(), "mp-1").Return("approved", nil),
	)

	view := f.readyAtServices(t, entities.ModeStandard, 1)
	view, _ = uc.Next(ctx, view.ID)
	if _, err := uc.RefreshPayment(ctx, view.ID); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if _, err := uc.RefreshPayment(ctx, view.ID); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if !reflect.DeepEqual(saved, []string{"pending", "approved"}) {
		t.Fatalf("unexpected saved statuses %v", saved)
	}
}

func TestOrderSession_SweepIdle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newSessionFixture(t, ctrl)
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	uc := NewOrderSessionUseCase(f.caps, f.repo, f.reconciler, nil, WithSessionIdleTTL(time.Hour), WithSessionClock(clock))
	f.uc = uc

	f.submitter.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).Return(json.RawMessage(`{"payment": {"required": true}, "account": {"id": "acc-9"}}`), nil)
	idle := f.readyAtServices(t, entities.ModeStandard, 1)
	if _, err := uc.Next(ctx, idle.ID); err != nil {
		t.Fatalf("next: %v", err)
	}
	acc := entities.EntityRef{Kind: entities.EntityObjectStorage, ID: "acc-9"}
	if !f.reconciler.Tracked(acc) {
		t.Fatalf("account not tracked")
	}

	now = now.Add(45 * time.Minute)
	active, err := uc.Create(ctx, CreateSessionInput{Context: entities.ContextAdmin, BillingCountry: "ng"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	now = now.Add(30 * time.Minute)
	if n := uc.SweepIdle(); n != 1 {
		t.Fatalf("expected one expired session, got %d", n)
	}
	if _, err := uc.Get(ctx, idle.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected idle session gone, got %v", err)
	}
	if f.reconciler.Tracked(acc) {
		t.Fatalf("expired session still tracks its account")
	}
	if _, err := uc.Get(ctx, active.ID); err != nil {
		t.Fatalf("active session swept: %v", err)
	}
}

func TestOrderSession_MultiAccountCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newSessionFixture(t, ctrl)
	ctx := context.Background()
	acc1 := entities.EntityRef{Kind: entities.EntityObjectStorage, ID: "acc-1"}
	acc2 := entities.EntityRef{Kind: entities.EntityObjectStorage, ID: "acc-2"}

	f.submitter.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).Return(json.RawMessage(
		`{"payment": {"required": false}, "order_items": [{"object_storage_account_id": "acc-1"}, {"object_storage_account_id": "acc-2"}]}`), nil)
	f.credentials.EXPECT().FetchCredential(gomock.Any(), "acc-1").Return(entities.Credential{KeyID: "AK1", Secret: "one"}, nil)

	view := f.readyAtServices(t, entities.ModeStandard, 2)
	view, err := f.uc.Next(ctx, view.ID)
	if err != nil || len(view.Summary.AccountIDs) != 2 {
		t.Fatalf("unexpected summary %+v %v", view.Summary, err)
	}

	if _, err := f.uc.RevealCredential(ctx, view.ID, 0); !errors.Is(err, ErrCredentialsLocked) {
		t.Fatalf("expected locked before provisioning, got %v", err)
	}
	_ = f.store.Put(ctx, acc1, completedSteps())
	if _, err := f.uc.RevealCredential(ctx, view.ID, 0); !errors.Is(err, ErrCredentialsLocked) {
		t.Fatalf("expected locked with one account pending, got %v", err)
	}
	_ = f.store.Put(ctx, acc2, completedSteps())

	cred, err := f.uc.RevealCredential(ctx, view.ID, 0)
	if err != nil || cred.Secret != "one" {
		t.Fatalf("unexpected reveal %+v %v", cred, err)
	}
	if _, err := f.uc.RevealCredential(ctx, view.ID, 0); !errors.Is(err, ErrCredentialAlreadyDisclosed) {
		t.Fatalf("expected single disclosure, got %v", err)
	}
	view, err = f.uc.AcknowledgeCredential(ctx, view.ID, 0)
	if err != nil || view.Credentials[0].State != entities.DisclosureAcknowledged || !view.ProvisioningComplete {
		t.Fatalf("unexpected credentials %+v %v", view.Credentials, err)
	}
}

func TestOrderSession_NotFound(t *testing.T) {
	uc := NewOrderSessionUseCase(nil, nil, nil, nil)
	if _, err := uc.Get(context.Background(), "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if err := uc.Delete(context.Background(), "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
