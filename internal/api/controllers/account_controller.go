package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"rentora/internal/modals"
	"rentora/internal/models/request_models"
	"rentora/internal/services"
	"rentora/pkg/middleware"
	"rentora/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a new user account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /accounts/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := a.accountService.CreateAccount(req, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, user, "Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user and return a token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /accounts/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	login, err := a.accountService.Login(req, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, login, "Login successful")
}

// Me godoc
// @Summary Current user
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts/me [get]
func (a *AccountController) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrUnauthorized)
		return
	}

	user, err := a.accountService.GetSafeUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "Account fetched successfully")
}

// Menu returns the user menu entries. Works with or without a token.
func (a *AccountController) Menu(c *gin.Context) {
	_, signedIn := middleware.CurrentUserID(c)
	utils.RespondSuccess(c, modals.Menu(signedIn), "Menu fetched successfully")
}

// AddFavorite godoc
// @Summary Favorite a listing
// @Tags Favorites
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /listings/{id}/favorite [post]
func (a *AccountController) AddFavorite(c *gin.Context) {
	userID, listingID, ok := userAndPathID(c)
	if !ok {
		return
	}

	ids, err := a.accountService.AddFavorite(c.Request.Context(), userID, listingID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"favoriteIds": ids}, "Listing added to favorites")
}

func (a *AccountController) RemoveFavorite(c *gin.Context) {
	userID, listingID, ok := userAndPathID(c)
	if !ok {
		return
	}

	ids, err := a.accountService.RemoveFavorite(c.Request.Context(), userID, listingID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"favoriteIds": ids}, "Listing removed from favorites")
}

func (a *AccountController) ListFavorites(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrUnauthorized)
		return
	}

	listings, err := a.accountService.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, listings, "Favorites fetched successfully")
}
