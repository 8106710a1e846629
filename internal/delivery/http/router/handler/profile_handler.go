package handler

import (
	"log/slog"
	"net/http"

	"lifeline/internal/delivery/http/response"
	"lifeline/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProfileHandler holds dependencies for profile handlers.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(profileUC usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUC: profileUC,
		logger:    logger,
	}
}

// UpsertProfileBody is the request body for creating or updating a profile.
type UpsertProfileBody struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	BloodGroup string `json:"blood_group" validate:"required"`
	City       string `json:"city" validate:"required"`
}

// UpsertProfile handles creating or updating the caller's profile.
func (h *ProfileHandler) UpsertProfile(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var body UpsertProfileBody
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&body); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	user, err := h.profileUC.UpsertProfile(c.Request().Context(), userID, &usecase.UpsertProfileInput{
		Name:       body.Name,
		Email:      body.Email,
		BloodGroup: body.BloodGroup,
		City:       body.City,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "Profile saved successfully")
}

// GetProfile handles retrieving the caller's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

// SetAvailabilityBody is the request body for the availability toggle.
type SetAvailabilityBody struct {
	Available *bool `json:"available" validate:"required"`
}

// SetAvailability handles the donor availability toggle.
func (h *ProfileHandler) SetAvailability(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var body SetAvailabilityBody
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid availability input")
	}
	if err := c.Validate(&body); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	if err := h.profileUC.SetAvailability(c.Request().Context(), userID, *body.Available); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"available": *body.Available}, "Availability updated successfully")
}

// UpdateLocationBody is the request body for a location update.
type UpdateLocationBody struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// UpdateLocation handles recording the caller's freshly captured coordinates.
func (h *ProfileHandler) UpdateLocation(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var body UpdateLocationBody
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(&body); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	if err := h.profileUC.UpdateLocation(c.Request().Context(), userID, &usecase.UpdateLocationInput{
		Latitude:  body.Latitude,
		Longitude: body.Longitude,
	}); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Location updated successfully")
}

// RegisterDeviceBody is the request body for device registration.
type RegisterDeviceBody struct {
	FCMToken string `json:"fcm_token" validate:"required"`
}

// RegisterDevice handles recording the caller's push device token.
func (h *ProfileHandler) RegisterDevice(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var body RegisterDeviceBody
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	if err := c.Validate(&body); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	if err := h.profileUC.RegisterDevice(c.Request().Context(), userID, body.FCMToken); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Device registered successfully")
}
