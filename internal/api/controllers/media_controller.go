package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"rentora/internal/services"
	"rentora/pkg/middleware"
	"rentora/pkg/utils"
)

// MediaController serves the image step and the country picker.
type MediaController struct {
	imageService   services.ImageServiceInterface
	geocodeService services.GeocodeServiceInterface
	// maxUpload bounds the whole multipart body, form overhead included.
	maxUpload int64
}

func NewMediaController(
	imageService services.ImageServiceInterface,
	geocodeService services.GeocodeServiceInterface,
) *MediaController {
	return &MediaController{
		imageService:   imageService,
		geocodeService: geocodeService,
		maxUpload:      services.MaxImageBytes + 1<<20,
	}
}

// UploadImage godoc
// @Summary Upload a listing photo
// @Description Multipart field "file". Returns the URL to put in the draft's imageSrc.
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /images [post]
func (m *MediaController) UploadImage(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrUnauthorized)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, m.maxUpload)
	header, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "file is required")
		return
	}
	file, err := header.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Unable to read upload")
		return
	}
	defer file.Close()

	url, err := m.imageService.Upload(c.Request.Context(), userID, header.Filename, file, header.Size)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"imageSrc": url}, "Image uploaded successfully")
}

// Geocode godoc
// @Summary Resolve a country
// @Tags Media
// @Produce json
// @Param q query string true "Country name or code"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /geocode [get]
func (m *MediaController) Geocode(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		utils.RespondError(c, http.StatusBadRequest, "q is required")
		return
	}

	loc, err := m.geocodeService.Resolve(c.Request.Context(), q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, loc, "Location resolved")
}
