package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rentora/internal/models/response_models"
	"rentora/internal/services"
	"rentora/internal/wizard"
	"rentora/pkg/middleware"
	"rentora/pkg/utils"
)

type stubWizard struct {
	opened    []uuid.UUID
	primary   response_models.WizardAction
	primaryEr error
	setErr    error
}

func (s *stubWizard) Open(_ context.Context, userID uuid.UUID) (response_models.WizardState, error) {
	s.opened = append(s.opened, userID)
	return response_models.WizardState{SessionID: "w1", Step: "category", PrimaryLabel: wizard.LabelNext}, nil
}

func (s *stubWizard) State(_ context.Context, id string, _ uuid.UUID) (response_models.WizardState, error) {
	if id != "w1" {
		return response_models.WizardState{}, utils.ErrWizardNotFound
	}
	return response_models.WizardState{SessionID: id}, nil
}

func (s *stubWizard) SetFields(_ context.Context, id string, _ uuid.UUID, _ map[string]json.RawMessage) (response_models.WizardState, error) {
	return response_models.WizardState{SessionID: id}, s.setErr
}

func (s *stubWizard) Primary(context.Context, string, uuid.UUID) (response_models.WizardAction, error) {
	return s.primary, s.primaryEr
}

func (s *stubWizard) Secondary(context.Context, string, uuid.UUID) (response_models.WizardAction, error) {
	return response_models.WizardAction{Outcome: "retreated"}, nil
}

func (s *stubWizard) Cancel(context.Context, string, uuid.UUID) error { return nil }

var tokens = utils.NewTokenIssuer("controller-test", time.Hour)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(wc *WizardController, ac *AccountController) *gin.Engine {
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())

	public := r.Group("/", middleware.OptionalAuthMiddleware(tokens))
	public.POST("/ui/rent", wc.OpenRent)
	public.GET("/accounts/me/menu", ac.Menu)

	authed := r.Group("/", middleware.JWTAuthMiddleware(tokens))
	authed.GET("/wizard/:id", wc.State)
	authed.PATCH("/wizard/:id/fields", wc.SetFields)
	authed.POST("/wizard/:id/primary", wc.Primary)
	authed.POST("/wizard/:id/secondary", wc.Secondary)
	return r
}

// newAPIRouter mounts the listing, account, reservation and media routes the
// way the server does.
func newAPIRouter(lc *ListingController, ac *AccountController, rc *ReservationController, mc *MediaController) *gin.Engine {
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	requireAuth := middleware.JWTAuthMiddleware(tokens)
	optionalAuth := middleware.OptionalAuthMiddleware(tokens)

	r.POST("/accounts/register", ac.Register)
	r.POST("/accounts/login", ac.Login)
	r.GET("/accounts/me", requireAuth, ac.Me)

	r.GET("/categories", lc.ListCategories)
	r.GET("/listings", lc.ListListings)
	r.GET("/listings/:id", optionalAuth, lc.GetListing)
	r.DELETE("/listings/:id", requireAuth, lc.DeleteListing)
	r.POST("/listings/:id/favorite", requireAuth, ac.AddFavorite)
	r.DELETE("/listings/:id/favorite", requireAuth, ac.RemoveFavorite)
	r.GET("/favorites", requireAuth, ac.ListFavorites)

	reservations := r.Group("/reservations", requireAuth)
	reservations.POST("", rc.CreateReservation)
	reservations.GET("", rc.ListReservations)
	reservations.DELETE("/:id", rc.CancelReservation)

	r.POST("/images", requireAuth, mc.UploadImage)
	r.GET("/geocode", mc.Geocode)
	return r
}

func do(t *testing.T, r http.Handler, method, path, body string, user *uuid.UUID) (int, utils.APIResponse) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if user != nil {
		token, err := tokens.CreateToken(*user, "user")
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w.Code, resp
}

func dataMap(t *testing.T, resp utils.APIResponse) map[string]any {
	t.Helper()
	m, ok := resp.Data.(map[string]any)
	require.True(t, ok, "data is %T", resp.Data)
	return m
}

func TestOpenRent_AnonymousGetsLogin(t *testing.T) {
	stub := &stubWizard{}
	r := newRouter(NewWizardController(stub), NewAccountController(nil))

	code, resp := do(t, r, http.MethodPost, "/ui/rent", "", nil)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "login", dataMap(t, resp)["modal"])
	assert.Nil(t, dataMap(t, resp)["wizard"])
	assert.Empty(t, stub.opened)
	assert.NotEmpty(t, resp.TraceID)
}

func TestOpenRent_SignedInOpensWizard(t *testing.T) {
	stub := &stubWizard{}
	r := newRouter(NewWizardController(stub), NewAccountController(nil))
	user := uuid.New()

	code, resp := do(t, r, http.MethodPost, "/ui/rent", "", &user)

	assert.Equal(t, http.StatusOK, code)
	data := dataMap(t, resp)
	assert.Equal(t, "rent", data["modal"])
	assert.Equal(t, "w1", data["wizard"].(map[string]any)["sessionId"])
	assert.Equal(t, []uuid.UUID{user}, stub.opened)
}

func TestMenu(t *testing.T) {
	r := newRouter(NewWizardController(&stubWizard{}), NewAccountController(nil))
	user := uuid.New()

	_, anon := do(t, r, http.MethodGet, "/accounts/me/menu", "", nil)
	_, signedIn := do(t, r, http.MethodGet, "/accounts/me/menu", "", &user)

	assert.Len(t, anon.Data, 2)
	assert.Len(t, signedIn.Data, 6)
}

func TestWizardRoutes_RequireToken(t *testing.T) {
	r := newRouter(NewWizardController(&stubWizard{}), NewAccountController(nil))

	code, _ := do(t, r, http.MethodGet, "/wizard/w1", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestWizardState_NotFound(t *testing.T) {
	r := newRouter(NewWizardController(&stubWizard{}), NewAccountController(nil))
	user := uuid.New()

	code, resp := do(t, r, http.MethodGet, "/wizard/other", "", &user)

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "error", resp.Status)
}

func TestSetFields_ValidationErrorCarriesFields(t *testing.T) {
	stub := &stubWizard{setErr: &services.StepValidationError{
		Step:   wizard.StepPrice,
		Fields: []response_models.FieldError{{Field: "price", Rule: "type"}},
	}}
	r := newRouter(NewWizardController(stub), NewAccountController(nil))
	user := uuid.New()

	code, resp := do(t, r, http.MethodPatch, "/wizard/w1/fields", `{"fields":{"price":"x"}}`, &user)

	assert.Equal(t, http.StatusUnprocessableEntity, code)
	fields, ok := resp.Data.([]any)
	require.True(t, ok)
	assert.Equal(t, "price", fields[0].(map[string]any)["field"])

	code, _ = do(t, r, http.MethodPatch, "/wizard/w1/fields", `not json`, &user)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestPrimary_Outcomes(t *testing.T) {
	user := uuid.New()
	cases := []struct {
		name     string
		action   response_models.WizardAction
		err      error
		wantCode int
		wantMsg  string
	}{
		{"advanced", response_models.WizardAction{Outcome: "advanced"}, nil, http.StatusOK, "Step advanced"},
		{"created", response_models.WizardAction{Outcome: "created", ListingID: "l1", Close: true}, nil, http.StatusOK, "Listing created!"},
		{"busy", response_models.WizardAction{}, utils.ErrWizardBusy, http.StatusConflict, "Listing is being created"},
		{"failed", response_models.WizardAction{Outcome: "failed", State: response_models.WizardState{Step: "price"}},
			fmt.Errorf("%w: %w", utils.ErrSubmissionFailed, wizard.ErrSubmissionFailed), http.StatusBadGateway, "Something went wrong"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubWizard{primary: tc.action, primaryEr: tc.err}
			r := newRouter(NewWizardController(stub), NewAccountController(nil))

			code, resp := do(t, r, http.MethodPost, "/wizard/w1/primary", "", &user)

			assert.Equal(t, tc.wantCode, code)
			assert.Equal(t, tc.wantMsg, resp.Message)
			if tc.name == "failed" {
				state := dataMap(t, resp)["state"].(map[string]any)
				assert.Equal(t, "price", state["step"])
			}
		})
	}
}
