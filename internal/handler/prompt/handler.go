package prompt

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hospitalkit/hospital-api/internal/handler"
	"github.com/hospitalkit/hospital-api/internal/service/identity"
	"github.com/hospitalkit/hospital-api/internal/service/prompt"
	"github.com/hospitalkit/hospital-api/internal/service/scheduling"
	apperrors "github.com/hospitalkit/hospital-api/pkg/errors"
)

type Handler struct {
	service    *prompt.Service
	identity   *identity.Service
	scheduling *scheduling.Service
}

func NewHandler(service *prompt.Service, identitySvc *identity.Service, schedulingSvc *scheduling.Service) *Handler {
	return &Handler{
		service:    service,
		identity:   identitySvc,
		scheduling: schedulingSvc,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	prompts := r.Group("/prompts")
	{
		prompts.GET("/checkup-reminder", h.CheckupReminder)
		prompts.GET("/appointment-preparation", h.AppointmentPreparation)
	}

	resources := r.Group("/resources")
	{
		resources.GET("/patients/:id", h.PatientResource)
		resources.GET("/appointments/:id", h.AppointmentResource)
	}
}

func (h *Handler) CheckupReminder(c *gin.Context) {
	name := c.Query("patient_name")
	if name == "" {
		handler.RespondError(c, apperrors.InvalidInput("patient_name is required", nil))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"prompt": h.service.CheckupReminder(name),
	}))
}

func (h *Handler) AppointmentPreparation(c *gin.Context) {
	kind := c.DefaultQuery("type", prompt.PreparationGeneral)
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"type":   kind,
		"prompt": h.service.AppointmentPreparation(kind),
	}))
}

func (h *Handler) PatientResource(c *gin.Context) {
	found, err := h.identity.ResolvePatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.String(http.StatusOK, h.service.RenderPatient(found))
}

func (h *Handler) AppointmentResource(c *gin.Context) {
	found, err := h.scheduling.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.String(http.StatusOK, h.service.RenderAppointment(found))
}
