package patient

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hospitalkit/hospital-api/internal/handler"
	"github.com/hospitalkit/hospital-api/internal/model"
	"github.com/hospitalkit/hospital-api/internal/service/patient"
	apperrors "github.com/hospitalkit/hospital-api/pkg/errors"
)

type Handler struct {
	service *patient.Service
}

func NewHandler(service *patient.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/patients")
	{
		patients.POST("", h.RegisterPatient)
		patients.GET("/:id", h.GetPatient)
		patients.PATCH("/:id", h.UpdatePatient)
	}
}

func (h *Handler) RegisterPatient(c *gin.Context) {
	var req model.RegisterPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondError(c, apperrors.InvalidInput("invalid request body", err))
		return
	}

	created, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) GetPatient(c *gin.Context) {
	found, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(found))
}

func (h *Handler) UpdatePatient(c *gin.Context) {
	var patch model.UpdatePatientRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		handler.RespondError(c, apperrors.InvalidInput("invalid request body", err))
		return
	}

	updated, err := h.service.UpdateProfile(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}
