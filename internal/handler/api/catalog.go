package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	resdto "riide-backend/internal/handler/dto/response"
	"riide-backend/internal/usecase/queries"
)

// CatalogHandler serves the public, unauthenticated surface: vehicles,
// locations, extras, and marketing content.
type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary List vehicles
// @Description List available vehicles, optionally filtered by category
// @Tags catalog
// @Produce json
// @Param category query string false "Vehicle category"
// @Success 200 {array} resdto.VehicleResponse
// @Router /vehicles [get]
func (h *CatalogHandler) ListVehicles(c *gin.Context) {
	var category *string
	if v := c.Query("category"); v != "" {
		category = &v
	}

	views, err := h.catalogQueries.ListVehicles(c.Request.Context(), category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromVehicleViews(views))
}

// @Summary Get vehicle
// @Description Get a vehicle by ID
// @Tags catalog
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} resdto.VehicleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /vehicles/{id} [get]
func (h *CatalogHandler) GetVehicle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vehicle ID format",
		})
		return
	}

	view, err := h.catalogQueries.GetVehicle(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrVehicleNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vehicle not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromVehicleView(view))
}

// @Summary List locations
// @Description List pickup and dropoff locations; pass q to filter by name
// @Tags catalog
// @Produce json
// @Param q query string false "Name filter"
// @Success 200 {array} resdto.LocationResponse
// @Router /locations [get]
func (h *CatalogHandler) ListLocations(c *gin.Context) {
	var (
		views []*queries.LocationView
		err   error
	)
	if q := c.Query("q"); q != "" {
		views, err = h.catalogQueries.SearchLocations(c.Request.Context(), q)
	} else {
		views, err = h.catalogQueries.ListLocations(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromLocationViews(views))
}

// @Summary List extras
// @Description List bookable extras with prices
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.ExtraResponse
// @Router /extras [get]
func (h *CatalogHandler) ListExtras(c *gin.Context) {
	views, err := h.catalogQueries.ListExtras(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromExtraViews(views))
}

// @Summary List services
// @Tags content
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Router /content/services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	views, err := h.catalogQueries.ListServices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceViews(views))
}

// @Summary List testimonials
// @Tags content
// @Produce json
// @Success 200 {array} resdto.TestimonialResponse
// @Router /content/testimonials [get]
func (h *CatalogHandler) ListTestimonials(c *gin.Context) {
	views, err := h.catalogQueries.ListTestimonials(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTestimonialViews(views))
}

// @Summary List FAQs
// @Tags content
// @Produce json
// @Param category query string false "FAQ category"
// @Success 200 {array} resdto.FAQResponse
// @Router /content/faqs [get]
func (h *CatalogHandler) ListFAQs(c *gin.Context) {
	var category *string
	if v := c.Query("category"); v != "" {
		category = &v
	}

	views, err := h.catalogQueries.ListFAQs(c.Request.Context(), category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromFAQViews(views))
}

// @Summary List blog posts
// @Tags content
// @Produce json
// @Param limit query int false "Max posts to return"
// @Success 200 {array} resdto.BlogPostResponse
// @Router /content/blog [get]
func (h *CatalogHandler) ListBlogPosts(c *gin.Context) {
	limit := 10
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}

	views, err := h.catalogQueries.ListBlogPosts(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBlogPostViews(views))
}
