package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"rentora/internal/models/request_models"
	"rentora/internal/services"
	"rentora/pkg/middleware"
	"rentora/pkg/utils"
)

type ListingController struct {
	listingService  services.ListingServiceInterface
	categoryService services.CategoryServiceInterface
}

func NewListingController(
	listingService services.ListingServiceInterface,
	categoryService services.CategoryServiceInterface,
) *ListingController {
	return &ListingController{
		listingService:  listingService,
		categoryService: categoryService,
	}
}

// ListCategories godoc
// @Summary Listing categories
// @Description The fixed catalog shown on the category step and the browse bar
// @Tags Listings
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /categories [get]
func (l *ListingController) ListCategories(c *gin.Context) {
	utils.RespondSuccess(c, l.categoryService.List(), "Categories fetched successfully")
}

// ListListings godoc
// @Summary Browse listings
// @Description Filter by host, category, country, minimum counts and free dates
// @Tags Listings
// @Produce json
// @Param userId query string false "Host ID"
// @Param category query string false "Category label"
// @Param locationValue query string false "Country code"
// @Param guestCount query int false "Minimum guests"
// @Param roomCount query int false "Minimum rooms"
// @Param bathroomCount query int false "Minimum bathrooms"
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Success 200 {object} utils.APIResponse
// @Router /listings [get]
func (l *ListingController) ListListings(c *gin.Context) {
	var filter request_models.ListingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}
	userID, ok := optionalUUIDQuery(c, "userId")
	if !ok {
		return
	}
	filter.UserID = userID

	listings, err := l.listingService.ListListings(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, listings, "Listings fetched successfully")
}

// GetListing godoc
// @Summary Listing detail
// @Description Listing, host, category, booked dates and favorite flag for the caller
// @Tags Listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /listings/{id} [get]
func (l *ListingController) GetListing(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var currentUser *uuid.UUID
	if userID, signedIn := middleware.CurrentUserID(c); signedIn {
		currentUser = &userID
	}

	detail, err := l.listingService.GetListingDetail(c.Request.Context(), id, currentUser)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Listing fetched successfully")
}

// DeleteListing godoc
// @Summary Delete one of my listings
// @Tags Listings
// @Param id path string true "Listing ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /listings/{id} [delete]
func (l *ListingController) DeleteListing(c *gin.Context) {
	userID, id, ok := userAndPathID(c)
	if !ok {
		return
	}

	if err := l.listingService.DeleteListing(c.Request.Context(), id, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Listing deleted successfully")
}
