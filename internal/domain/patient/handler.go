package patient

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
	api.GET("/patients", h.ListPatients)
	api.POST("/patients", h.CreatePatient)
	api.GET("/patients/search", h.SearchPatients)
	api.GET("/patients/:id", h.GetPatient)
}

func (h *Handler) ListPatients(c echo.Context) error {
	patients, err := h.svc.ListPatients(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, httperr.New("Failed to fetch patients", err))
	}
	return c.JSON(http.StatusOK, patients)
}

// createRequest is the POST body. dateOfBirth arrives as a string and is
// parsed before the store sees it.
type createRequest struct {
	FirstName   string `json:"firstName"`
	MiddleName  string `json:"middleName"`
	LastName    string `json:"lastName"`
	Title       string `json:"title"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      Gender `json:"gender"`
	PhoneNumber string `json:"phoneNumber"`
	IsNew       bool   `json:"isNew"`
	Picture     string `json:"picture"`
	Fingerprint string `json:"fingerprint"`
}

func (h *Handler) CreatePatient(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusInternalServerError, httperr.New("Failed to create patient", err))
	}

	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, httperr.New("Failed to create patient", err))
	}

	p, err := h.svc.CreatePatient(c.Request().Context(), CreateInput{
		FirstName:   req.FirstName,
		MiddleName:  req.MiddleName,
		LastName:    req.LastName,
		Title:       req.Title,
		DateOfBirth: dob,
		Gender:      req.Gender,
		PhoneNumber: req.PhoneNumber,
		IsNew:       req.IsNew,
		Picture:     req.Picture,
		Fingerprint: req.Fingerprint,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, httperr.New("Failed to create patient", err))
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) SearchPatients(c echo.Context) error {
	// A missing q parameter searches with the empty string, which
	// matches every record.
	query := c.QueryParam("q")

	patients, err := h.svc.SearchPatients(c.Request().Context(), query)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, httperr.New("Failed to search patients", err))
	}
	return c.JSON(http.StatusOK, patients)
}

func (h *Handler) GetPatient(c echo.Context) error {
	p, err := h.svc.GetPatient(c.Request().Context(), c.Param("id"))
	if err == ErrInvalidID {
		return c.JSON(http.StatusBadRequest, httperr.New("Invalid patient id", nil))
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, httperr.New("Failed to fetch patient", err))
	}
	if p == nil {
		return c.JSON(http.StatusNotFound, httperr.New("Patient not found", nil))
	}
	return c.JSON(http.StatusOK, p)
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid dateOfBirth %q", s)
}
