package doctor

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hospitalkit/hospital-api/internal/handler"
	"github.com/hospitalkit/hospital-api/internal/model"
	"github.com/hospitalkit/hospital-api/internal/service/doctor"
	apperrors "github.com/hospitalkit/hospital-api/pkg/errors"
)

type Handler struct {
	service *doctor.Service
}

func NewHandler(service *doctor.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	doctors := r.Group("/doctors")
	{
		doctors.GET("", h.SearchDoctors)
		doctors.GET("/:id", h.GetDoctor)
	}
}

func (h *Handler) SearchDoctors(c *gin.Context) {
	var filters model.DoctorFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		handler.RespondError(c, apperrors.InvalidInput("invalid search filters", err))
		return
	}

	doctors, err := h.service.Search(c.Request.Context(), &filters)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"count":   len(doctors),
		"doctors": doctors,
	}))
}

func (h *Handler) GetDoctor(c *gin.Context) {
	found, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(found))
}
