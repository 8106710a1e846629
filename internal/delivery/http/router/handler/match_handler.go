package handler

import (
	"log/slog"
	"net/http"

	"lifeline/internal/delivery/http/response"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// MatchHandler holds dependencies for match lifecycle handlers.
type MatchHandler struct {
	matchUC usecase.MatchUsecase
	logger  *slog.Logger
}

// NewMatchHandler is the constructor for MatchHandler.
func NewMatchHandler(matchUC usecase.MatchUsecase, logger *slog.Logger) *MatchHandler {
	return &MatchHandler{
		matchUC: matchUC,
		logger:  logger,
	}
}

// ProposeMatchBody is the request body for proposing a match.
type ProposeMatchBody struct {
	RequestID uuid.UUID `json:"request_id" validate:"required"`
	DonorID   uuid.UUID `json:"donor_id" validate:"required"`
}

// ProposeMatch handles the receiver proposing a match to a chosen donor.
func (h *MatchHandler) ProposeMatch(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var body ProposeMatchBody
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid match input")
	}
	if err := c.Validate(&body); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	match, err := h.matchUC.ProposeMatch(c.Request().Context(), userID, &usecase.ProposeMatchInput{
		RequestID: body.RequestID,
		DonorID:   body.DonorID,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, match, "Match proposed successfully")
}

// AcceptMatchBody optionally carries the donor's coordinates captured at
// acceptance time.
type AcceptMatchBody struct {
	Latitude  *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
}

// AcceptMatch handles the donor accepting a pending match.
func (h *MatchHandler) AcceptMatch(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	matchID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var body AcceptMatchBody
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid accept input")
	}
	if err := c.Validate(&body); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	var input *usecase.AcceptMatchInput
	if body.Latitude != nil && body.Longitude != nil {
		input = &usecase.AcceptMatchInput{
			Latitude:  *body.Latitude,
			Longitude: *body.Longitude,
		}
	}

	match, err := h.matchUC.AcceptMatch(c.Request().Context(), matchID, userID, input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, match, "Match accepted successfully")
}

// RejectMatch handles the donor rejecting a pending match.
func (h *MatchHandler) RejectMatch(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	matchID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	match, err := h.matchUC.RejectMatch(c.Request().Context(), matchID, userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, match, "Match rejected successfully")
}

// CompleteMatch handles the donor marking their accepted match on a request
// as donated, which also starts the donor's cooldown.
func (h *MatchHandler) CompleteMatch(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	requestID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	match, err := h.matchUC.CompleteMatch(c.Request().Context(), requestID, userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, match, "Donation completed successfully")
}

// ListMyMatches handles retrieving the caller's matches as a donor.
func (h *MatchHandler) ListMyMatches(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	matches, err := h.matchUC.ListDonorMatches(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, matches, "Matches retrieved successfully")
}
