package handler

import (
	"log/slog"
	"net/http"

	"lifeline/internal/delivery/http/response"
	"lifeline/internal/usecase"

	"github.com/labstack/echo/v4"
)

// RequestHandler holds dependencies for blood request handlers.
type RequestHandler struct {
	requestUC  usecase.RequestUsecase
	matchingUC usecase.MatchingUsecase
	logger     *slog.Logger
}

// NewRequestHandler is the constructor for RequestHandler.
func NewRequestHandler(requestUC usecase.RequestUsecase, matchingUC usecase.MatchingUsecase, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{
		requestUC:  requestUC,
		matchingUC: matchingUC,
		logger:     logger,
	}
}

// CreateRequestBody is the request body for creating a blood request.
type CreateRequestBody struct {
	BloodGroup   string  `json:"blood_group" validate:"required"`
	Units        int     `json:"units" validate:"required,gt=0"`
	RequiredBy   string  `json:"required_by" validate:"required"`
	PatientName  string  `json:"patient_name"`
	HospitalName string  `json:"hospital_name" validate:"required"`
	City         string  `json:"city" validate:"required"`
	Purpose      string  `json:"purpose"`
	Latitude     float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude    float64 `json:"longitude" validate:"min=-180,max=180"`
}

// CreateRequest handles creating a new blood request.
func (h *RequestHandler) CreateRequest(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var body CreateRequestBody
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid blood request input")
	}
	if err := c.Validate(&body); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	requiredBy, err := parseDate(body.RequiredBy)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "required_by must be an RFC 3339 timestamp or YYYY-MM-DD date")
	}

	request, err := h.requestUC.CreateRequest(c.Request().Context(), userID, &usecase.CreateRequestInput{
		BloodGroup:   body.BloodGroup,
		Units:        body.Units,
		RequiredBy:   requiredBy,
		PatientName:  body.PatientName,
		HospitalName: body.HospitalName,
		City:         body.City,
		Purpose:      body.Purpose,
		Latitude:     body.Latitude,
		Longitude:    body.Longitude,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, request, "Blood request created successfully")
}

// GetRequest handles retrieving a single blood request.
func (h *RequestHandler) GetRequest(c echo.Context) error {
	requestID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	request, err := h.requestUC.GetRequest(c.Request().Context(), requestID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request, "Blood request retrieved successfully")
}

// ListMyRequests handles retrieving the caller's blood requests.
func (h *RequestHandler) ListMyRequests(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	requests, err := h.requestUC.ListMyRequests(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests, "Blood requests retrieved successfully")
}

// ListOpenRequests handles the donor-side feed of open requests the caller's
// blood can serve.
func (h *RequestHandler) ListOpenRequests(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	requests, err := h.requestUC.ListOpenRequests(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests, "Open blood requests retrieved successfully")
}

// FindCandidates handles the ranked candidate search for the caller's request.
func (h *RequestHandler) FindCandidates(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	requestID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	candidates, err := h.matchingUC.FindCandidates(c.Request().Context(), requestID, userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, candidates, "Candidates retrieved successfully")
}

// FulfillRequest handles marking the caller's request as fulfilled.
func (h *RequestHandler) FulfillRequest(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	requestID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	request, err := h.requestUC.FulfillRequest(c.Request().Context(), requestID, userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request, "Blood request fulfilled successfully")
}

// DeleteRequest handles deleting the caller's request.
func (h *RequestHandler) DeleteRequest(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	requestID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.requestUC.DeleteRequest(c.Request().Context(), requestID, userID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Blood request deleted successfully")
}
