package appointment

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wardview/wardview/internal/platform/httperr"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/appointments", h.ListAppointments)
	api.POST("/appointments", h.CreateAppointment)
	api.GET("/appointments/:id", h.GetAppointment)
	api.PATCH("/appointments/:id/status", h.UpdateStatus)
	api.GET("/patients/:id/appointments", h.ListByPatient)
}

func (h *Handler) ListAppointments(c echo.Context) error {
	appts, err := h.svc.ListAppointments(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, httperr.New("Failed to fetch appointments", err))
	}
	return c.JSON(http.StatusOK, appts)
}

// createRequest is the POST body. scheduledTime arrives as a string so
// presence can be checked before parsing.
type createRequest struct {
	PatientID       string `json:"patientId"`
	Clinic          string `json:"clinic"`
	Title           string `json:"title"`
	ScheduledTime   string `json:"scheduledTime"`
	AppointmentType Type   `json:"appointmentType"`
	DoesNotRepeat   bool   `json:"doesNotRepeat"`
}

func (h *Handler) CreateAppointment(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusInternalServerError, httperr.New(err.Error(), nil))
	}

	if req.PatientID == "" || req.Clinic == "" || req.ScheduledTime == "" {
		return c.JSON(http.StatusBadRequest, httperr.New("Missing required fields", nil))
	}

	scheduled, err := time.Parse(time.RFC3339, req.ScheduledTime)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, httperr.New(fmt.Sprintf("invalid scheduledTime %q", req.ScheduledTime), nil))
	}

	appt, err := h.svc.CreateAppointment(c.Request().Context(), CreateInput{
		PatientID:       req.PatientID,
		Clinic:          req.Clinic,
		Title:           req.Title,
		ScheduledTime:   scheduled,
		AppointmentType: req.AppointmentType,
		DoesNotRepeat:   req.DoesNotRepeat,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, httperr.New(err.Error(), nil))
	}
	return c.JSON(http.StatusCreated, appt)
}

func (h *Handler) GetAppointment(c echo.Context) error {
	appt, err := h.svc.GetAppointment(c.Request().Context(), c.Param("id"))
	if err == ErrInvalidID {
		return c.JSON(http.StatusBadRequest, httperr.New("Invalid appointment id", nil))
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, httperr.New("Failed to fetch appointment", err))
	}
	if appt == nil {
		return c.JSON(http.StatusNotFound, httperr.New("Appointment not found", nil))
	}
	return c.JSON(http.StatusOK, appt)
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	var body struct {
		Status Status `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, httperr.New(err.Error(), nil))
	}
	if body.Status == "" {
		return c.JSON(http.StatusBadRequest, httperr.New("Missing required fields", nil))
	}

	appt, err := h.svc.UpdateStatus(c.Request().Context(), c.Param("id"), body.Status)
	if err == ErrInvalidID {
		return c.JSON(http.StatusBadRequest, httperr.New("Invalid appointment id", nil))
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, httperr.New("Failed to update appointment", err))
	}
	if appt == nil {
		return c.JSON(http.StatusNotFound, httperr.New("Appointment not found", nil))
	}
	return c.JSON(http.StatusOK, appt)
}

func (h *Handler) ListByPatient(c echo.Context) error {
	appts, err := h.svc.ListAppointmentsByPatient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, httperr.New("Failed to fetch appointments", err))
	}
	return c.JSON(http.StatusOK, appts)
}
