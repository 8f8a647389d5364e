package clinical

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hospitalkit/hospital-api/internal/handler"
	"github.com/hospitalkit/hospital-api/internal/service/clinical"
	apperrors "github.com/hospitalkit/hospital-api/pkg/errors"
)

type Handler struct {
	service *clinical.Service
}

func NewHandler(service *clinical.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/patients")
	{
		patients.GET("/:id/records", h.MedicalHistory)
		patients.GET("/:id/prescriptions", h.Prescriptions)
		patients.GET("/:id/lab-reports", h.LabReports)
		patients.GET("/:id/summary", h.HealthSummary)
	}
}

func (h *Handler) MedicalHistory(c *gin.Context) {
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	records, err := h.service.MedicalHistory(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"count":   len(records),
		"records": records,
	}))
}

func (h *Handler) Prescriptions(c *gin.Context) {
	activeOnly := c.DefaultQuery("active_only", "true") == "true"

	prescriptions, err := h.service.Prescriptions(c.Request.Context(), c.Param("id"), activeOnly)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"count":         len(prescriptions),
		"prescriptions": prescriptions,
	}))
}

func (h *Handler) LabReports(c *gin.Context) {
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	reports, err := h.service.LabReports(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"count":   len(reports),
		"reports": reports,
	}))
}

func (h *Handler) HealthSummary(c *gin.Context) {
	summary, err := h.service.HealthSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(summary))
}

func queryInt(c *gin.Context, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.InvalidInput(key+" must be an integer", err)
	}
	return parsed, nil
}
