package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/UnicloudAfrica/uniclo-sub012/internal/adapter/backend"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/adapter/http/handlers/mocks"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/domain/entities"
	"github.com/UnicloudAfrica/uniclo-sub012/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func sessionRouter(h *OrderSessionHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/sessions", h.CreateSession)
	r.GET("/v1/sessions/:id", h.GetSession)
	r.DELETE("/v1/sessions/:id", h.DeleteSession)
	r.PATCH("/v1/sessions/:id/settings", h.UpdateSettings)
	r.POST("/v1/sessions/:id/profiles", h.AddProfile)
	r.PATCH("/v1/sessions/:id/profiles/:profile_id", h.UpdateProfile)
	r.POST("/v1/sessions/:id/next", h.Next)
	r.POST("/v1/sessions/:id/goto", h.GoToStep)
	r.PUT("/v1/sessions/:id/gateway", h.SelectGateway)
	r.POST("/v1/sessions/:id/credentials/:index/reveal", h.RevealCredential)
	r.GET("/v1/sessions/:id/summaries", h.ListSummaries)
	r.GET("/v1/contexts/:context/regions", h.ListRegions)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestOrderSessionHandler_CreateSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderSessionUseCase(ctrl)

		w := doJSON(sessionRouter(NewOrderSessionHandler(uc)), http.MethodPost, "/v1/sessions", `{"context":"partner"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderSessionUseCase(ctrl)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.CreateSessionInput) (usecase.SessionView, error) {
			if in.Context != entities.ContextAdmin || in.Mode != entities.ModeFastTrack {
				t.Fatalf("unexpected input: %+v", in)
			}
			return usecase.SessionView{ID: "sess-1", Context: in.Context, Mode: in.Mode, Stage: usecase.StageWorkflow}, nil
		})

		w := doJSON(sessionRouter(NewOrderSessionHandler(uc)), http.MethodPost, "/v1/sessions", `{"context":"admin","mode":"fast-track","billing_country":"NG"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["id"] != "sess-1" || body["stage"] != "workflow" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestOrderSessionHandler_ErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", usecase.ErrSessionNotFound, http.StatusNotFound, "SESSION_NOT_FOUND"},
		{"validation", &usecase.ValidationError{Stage: usecase.StageServices, Fields: map[string]string{"profiles[0].region": "required"}}, http.StatusUnprocessableEntity, "VALIDATION_FAILED"},
		{"locked", usecase.ErrProfilesLocked, http.StatusConflict, "PROFILES_LOCKED"},
		{"backend", &backend.APIError{StatusCode: 500, Path: "/admin/v1/object-storage/orders"}, http.StatusBadGateway, "BACKEND_ERROR"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIOrderSessionUseCase(ctrl)
			uc.EXPECT().Next(gomock.Any(), "sess-1").Return(usecase.SessionView{}, tc.err)

			w := doJSON(sessionRouter(NewOrderSessionHandler(uc)), http.MethodPost, "/v1/sessions/sess-1/next", "")
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if body := decodeBody(t, w); body["code"] != tc.code {
				t.Fatalf("expected code %s, got %v", tc.code, body["code"])
			}
		})
	}
}

func TestOrderSessionHandler_ValidationDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderSessionUseCase(ctrl)
	uc.EXPECT().Next(gomock.Any(), "sess-1").Return(usecase.SessionView{}, &usecase.ValidationError{
		Stage:  usecase.StageWorkflow,
		Fields: map[string]string{"billing_country": "Select a billing country"},
	})

	w := doJSON(sessionRouter(NewOrderSessionHandler(uc)), http.MethodPost, "/v1/sessions/sess-1/next", "")
	details, _ := decodeBody(t, w)["details"].(map[string]any)
	if details["billing_country"] != "Select a billing country" {
		t.Fatalf("expected field details, got %s", w.Body.String())
	}
}

func TestOrderSessionHandler_UpdateProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderSessionUseCase(ctrl)

	uc.EXPECT().UpdateProfile(gomock.Any(), "sess-1", "p-1", gomock.Any()).DoAndReturn(func(_ any, _, _ string, patch usecase.ProfilePatch) (usecase.SessionView, error) {
		if patch.StorageGB == nil || *patch.StorageGB != 20 || patch.Region != nil {
			t.Fatalf("unexpected patch: %+v", patch)
		}
		return usecase.SessionView{ID: "sess-1"}, nil
	})

	w := doJSON(sessionRouter(NewOrderSessionHandler(uc)), http.MethodPatch, "/v1/sessions/sess-1/profiles/p-1", `{"storage_gb":20}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestOrderSessionHandler_GoToStep(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderSessionUseCase(ctrl)

		w := doJSON(sessionRouter(NewOrderSessionHandler(uc)), http.MethodPost, "/v1/sessions/sess-1/goto", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("step zero is valid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderSessionUseCase(ctrl)
		uc.EXPECT().GoToStep(gomock.Any(), "sess-1", 0).Return(usecase.SessionView{ID: "sess-1"}, nil)

		w := doJSON(sessionRouter(NewOrderSessionHandler(uc)), http.MethodPost, "/v1/sessions/sess-1/goto", `{"step":0}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderSessionHandler_SelectGateway(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderSessionUseCase(ctrl)
	uc.EXPECT().SelectGateway(gomock.Any(), "sess-1", "ref-x").Return(usecase.SessionView{}, usecase.ErrGatewayOptionNotFound)

	w := doJSON(sessionRouter(NewOrderSessionHandler(uc)), http.MethodPut, "/v1/sessions/sess-1/gateway", `{"reference":"ref-x"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestOrderSessionHandler_RevealCredential(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderSessionUseCase(ctrl)

		w := doJSON(sessionRouter(NewOrderSessionHandler(uc)), http.MethodPost, "/v1/sessions/sess-1/credentials/x/reveal", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("locked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderSessionUseCase(ctrl)
		uc.EXPECT().RevealCredential(gomock.Any(), "sess-1", 0).Return(entities.Credential{}, usecase.ErrCredentialsLocked)

		w := doJSON(sessionRouter(NewOrderSessionHandler(uc)), http.MethodPost, "/v1/sessions/sess-1/credentials/0/reveal", "")
		if w.Code != http.StatusLocked {
			t.Fatalf("expected 423, got %d", w.Code)
		}
	})

	t.Run("already disclosed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderSessionUseCase(ctrl)
		uc.EXPECT().RevealCredential(gomock.Any(), "sess-1", 1).Return(entities.Credential{}, usecase.ErrCredentialAlreadyDisclosed)

		w := doJSON(sessionRouter(NewOrderSessionHandler(uc)), http.MethodPost, "/v1/sessions/sess-1/credentials/1/reveal", "")
		if w.Code != http.StatusGone {
			t.Fatalf("expected 410, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderSessionUseCase(ctrl)
		uc.EXPECT().RevealCredential(gomock.Any(), "sess-1", 0).Return(entities.Credential{Endpoint: "https://s3", KeyID: "AK", Secret: "SK"}, nil)

		w := doJSON(sessionRouter(NewOrderSessionHandler(uc)), http.MethodPost, "/v1/sessions/sess-1/credentials/0/reveal", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get("Cache-Control") != "no-store" {
			t.Fatalf("credential responses must not be cached")
		}
		if body := decodeBody(t, w); body["secret"] != "SK" || body["key_id"] != "AK" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestOrderSessionHandler_DeleteAndList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderSessionUseCase(ctrl)
	r := sessionRouter(NewOrderSessionHandler(uc))

	uc.EXPECT().Delete(gomock.Any(), "sess-1").Return(nil)
	if w := doJSON(r, http.MethodDelete, "/v1/sessions/sess-1", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	uc.EXPECT().ListSummaries(gomock.Any(), "sess-1").Return([]entities.OrderSummary{{ID: "sum-1"}}, nil)
	w := doJSON(r, http.MethodGet, "/v1/sessions/sess-1/summaries", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var items []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &items)
	if len(items) != 1 || items[0]["id"] != "sum-1" {
		t.Fatalf("unexpected summaries: %s", w.Body.String())
	}

	uc.EXPECT().ListRegions(gomock.Any(), entities.ContextTenant).Return(nil, nil)
	w = doJSON(r, http.MethodGet, "/v1/contexts/Tenant/regions", "")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("expected empty list, got %d %s", w.Code, w.Body.String())
	}
}
