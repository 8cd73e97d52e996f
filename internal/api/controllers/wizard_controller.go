package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"rentora/internal/modals"
	"rentora/internal/models/request_models"
	"rentora/internal/models/response_models"
	"rentora/internal/services"
	"rentora/pkg/middleware"
	"rentora/pkg/utils"
)

type WizardController struct {
	wizardService services.WizardServiceInterface
}

func NewWizardController(wizardService services.WizardServiceInterface) *WizardController {
	return &WizardController{wizardService: wizardService}
}

// OpenRent godoc
// @Summary Rent button
// @Description Anonymous callers get the login modal. Signed in callers get the rent modal and a fresh wizard.
// @Tags Wizard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /ui/rent [post]
func (w *WizardController) OpenRent(c *gin.Context) {
	userID, signedIn := middleware.CurrentUserID(c)

	var coordinator modals.Coordinator
	kind := coordinator.OnRent(signedIn)
	resp := response_models.RentModal{Modal: string(kind)}
	if kind == modals.KindRent {
		state, err := w.wizardService.Open(c.Request.Context(), userID)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		resp.Wizard = &state
	}

	utils.RespondSuccess(c, resp, "Modal opened")
}

// Open godoc
// @Summary Start a listing wizard
// @Tags Wizard
// @Produce json
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /wizard [post]
func (w *WizardController) Open(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrUnauthorized)
		return
	}

	state, err := w.wizardService.Open(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, state, "Wizard opened")
}

func (w *WizardController) State(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrUnauthorized)
		return
	}

	state, err := w.wizardService.State(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, state, "Wizard fetched")
}

// SetFields godoc
// @Summary Edit draft fields
// @Description Allowed on any step. Either every field is applied or none.
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Wizard session ID"
// @Param request body request_models.SetWizardFieldsRequest true "Fields"
// @Success 200 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /wizard/{id}/fields [patch]
func (w *WizardController) SetFields(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrUnauthorized)
		return
	}

	var req request_models.SetWizardFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	state, err := w.wizardService.SetFields(c.Request.Context(), c.Param("id"), userID, req.Fields)
	if err != nil {
		respondWizardError(c, err, nil)
		return
	}

	utils.RespondSuccess(c, state, "Draft updated")
}

// Primary godoc
// @Summary Next or Create
// @Description Before the price step this moves forward. On the price step it creates the listing.
// @Tags Wizard
// @Produce json
// @Param id path string true "Wizard session ID"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /wizard/{id}/primary [post]
func (w *WizardController) Primary(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrUnauthorized)
		return
	}

	action, err := w.wizardService.Primary(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondWizardError(c, err, &action)
		return
	}

	if action.Close {
		utils.RespondSuccess(c, action, "Listing created!")
		return
	}
	utils.RespondSuccess(c, action, "Step advanced")
}

func (w *WizardController) Secondary(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrUnauthorized)
		return
	}

	action, err := w.wizardService.Secondary(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, action, "Step changed")
}

func (w *WizardController) Cancel(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrUnauthorized)
		return
	}

	if err := w.wizardService.Cancel(c.Request.Context(), c.Param("id"), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Wizard closed")
}

// respondWizardError keeps the field list or the preserved draft in the
// error payload so the client can stay on the step.
func respondWizardError(c *gin.Context, err error, action *response_models.WizardAction) {
	var stepErr *services.StepValidationError
	switch {
	case errors.As(err, &stepErr):
		utils.RespondErrorData(c, http.StatusUnprocessableEntity, "Please complete this step", stepErr.Fields)
	case errors.Is(err, utils.ErrSubmissionFailed) && action != nil:
		utils.RespondErrorData(c, http.StatusBadGateway, "Something went wrong", action)
	default:
		utils.HandleServiceError(c, err)
	}
}
