package appointment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hospitalkit/hospital-api/internal/handler"
	"github.com/hospitalkit/hospital-api/internal/model"
	"github.com/hospitalkit/hospital-api/internal/service/scheduling"
	apperrors "github.com/hospitalkit/hospital-api/pkg/errors"
)

const defaultReminderDays = 7

type Handler struct {
	service *scheduling.Service
}

func NewHandler(service *scheduling.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.POST("", h.BookAppointment)
		appointments.GET("/:id", h.GetAppointment)
		appointments.PUT("/:id/reschedule", h.RescheduleAppointment)
		appointments.POST("/:id/confirm", h.ConfirmAppointment)
		appointments.POST("/:id/complete", h.CompleteAppointment)
		appointments.POST("/:id/cancel", h.CancelAppointment)
	}

	patients := r.Group("/patients")
	{
		patients.GET("/:id/appointments", h.ListAppointments)
		patients.GET("/:id/appointments/upcoming", h.UpcomingAppointments)
	}
}

func (h *Handler) BookAppointment(c *gin.Context) {
	var req model.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondError(c, apperrors.InvalidInput("invalid request body", err))
		return
	}

	booked, err := h.service.Book(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(booked))
}

func (h *Handler) GetAppointment(c *gin.Context) {
	found, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(found))
}

func (h *Handler) RescheduleAppointment(c *gin.Context) {
	var req model.RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondError(c, apperrors.InvalidInput("invalid request body", err))
		return
	}

	updated, err := h.service.Reschedule(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}

func (h *Handler) ConfirmAppointment(c *gin.Context) {
	updated, err := h.service.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}

func (h *Handler) CompleteAppointment(c *gin.Context) {
	updated, err := h.service.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}

func (h *Handler) CancelAppointment(c *gin.Context) {
	var req model.CancelAppointmentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			handler.RespondError(c, apperrors.InvalidInput("invalid request body", err))
			return
		}
	}

	confirmation, err := h.service.Cancel(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(confirmation))
}

func (h *Handler) ListAppointments(c *gin.Context) {
	status := model.AppointmentStatus(c.Query("status"))
	upcomingOnly := c.DefaultQuery("upcoming_only", "true") == "true"

	appointments, err := h.service.List(c.Request.Context(), c.Param("id"), status, upcomingOnly)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"count":        len(appointments),
		"appointments": appointments,
	}))
}

func (h *Handler) UpcomingAppointments(c *gin.Context) {
	days := defaultReminderDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			handler.RespondError(c, apperrors.InvalidInput("days must be an integer", err))
			return
		}
		days = parsed
	}

	appointments, err := h.service.UpcomingWindow(c.Request.Context(), c.Param("id"), days)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"count":        len(appointments),
		"days":         days,
		"appointments": appointments,
	}))
}
