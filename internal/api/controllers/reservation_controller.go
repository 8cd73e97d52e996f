package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"rentora/internal/models/request_models"
	"rentora/internal/services"
	"rentora/pkg/middleware"
	"rentora/pkg/utils"
)

type ReservationController struct {
	reservationService services.ReservationServiceInterface
}

func NewReservationController(reservationService services.ReservationServiceInterface) *ReservationController {
	return &ReservationController{reservationService: reservationService}
}

// CreateReservation godoc
// @Summary Book a listing
// @Description Total price is nights times the nightly price
// @Tags Reservations
// @Accept json
// @Produce json
// @Param request body request_models.CreateReservationRequest true "Stay"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reservations [post]
func (r *ReservationController) CreateReservation(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrUnauthorized)
		return
	}

	var req request_models.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	reservation, err := r.reservationService.CreateReservation(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, reservation, "Reservation created successfully")
}

// ListReservations godoc
// @Summary List reservations
// @Description scope=trips (default) lists my bookings, scope=properties lists bookings on my listings, listingId narrows to one listing
// @Tags Reservations
// @Produce json
// @Param scope query string false "trips or properties"
// @Param listingId query string false "Listing ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reservations [get]
func (r *ReservationController) ListReservations(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrUnauthorized)
		return
	}
	listingID, ok := optionalUUIDQuery(c, "listingId")
	if !ok {
		return
	}

	filter := request_models.ReservationFilter{ListingID: listingID}
	switch c.DefaultQuery("scope", "trips") {
	case "trips":
		filter.UserID = &userID
	case "properties":
		filter.AuthorID = &userID
	default:
		utils.RespondError(c, http.StatusBadRequest, "scope must be trips or properties")
		return
	}

	reservations, err := r.reservationService.ListReservations(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reservations, "Reservations fetched successfully")
}

func (r *ReservationController) CancelReservation(c *gin.Context) {
	userID, id, ok := userAndPathID(c)
	if !ok {
		return
	}

	if err := r.reservationService.CancelReservation(c.Request.Context(), id, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Reservation cancelled")
}
