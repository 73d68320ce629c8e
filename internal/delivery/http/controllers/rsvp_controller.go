package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"eventrsvp/internal/delivery/http/helpers"
	"eventrsvp/internal/delivery/http/middleware"
	"eventrsvp/internal/domain"
)

type RSVPController struct {
	Logger  *slog.Logger
	Service domain.RSVPService
}

func NewRSVPController(logger *slog.Logger, svc domain.RSVPService) *RSVPController {
	return &RSVPController{Logger: logger, Service: svc}
}

// SubmitRSVPRequest is the request body for POST /rsvp.
type SubmitRSVPRequest struct {
	Attending       *bool  `json:"attending"`
	MealPreference  string `json:"meal_preference"`
	Allergies       string `json:"allergies"`
	AdditionalNotes string `json:"additional_notes"`
}

// Validate implements helpers.Validator.
func (s SubmitRSVPRequest) Validate() []string {
	var errs []string
	if s.Attending == nil {
		errs = append(errs, "attending is required")
	}
	if strings.TrimSpace(s.MealPreference) == "" {
		errs = append(errs, "meal_preference is required")
	}
	return errs
}

// Submit godoc
// @Summary Submit the caller's RSVP
// @Description Creates the authenticated user's RSVP. Only invited users may submit, and each user may submit exactly once; a repeat submission is always a conflict, even with an identical payload.
// @Tags rsvp
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.SubmitRSVPRequest true "RSVP payload"
// @Success 201 {object} helpers.APIResponse "data contains the created RSVP"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not invited)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already submitted)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /rsvp [post]
func (c *RSVPController) Submit(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	var req SubmitRSVPRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	rsvp, err := c.Service.Submit(r.Context(), claims.UserID, *req.Attending, req.MealPreference, req.Allergies, req.AdditionalNotes)
	if err != nil {
		if errors.Is(err, domain.ErrNotInvited) {
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "not invited")
			return
		}
		if errors.Is(err, domain.ErrRSVPExists) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "rsvp already submitted")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "user not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "rsvp submission failed")
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusCreated, rsvp)
}

// EditRSVPRequest is the request body for PATCH /rsvp. Omitted fields are
// left unchanged.
type EditRSVPRequest struct {
	Attending       *bool   `json:"attending"`
	MealPreference  *string `json:"meal_preference"`
	Allergies       *string `json:"allergies"`
	AdditionalNotes *string `json:"additional_notes"`
}

// Edit godoc
// @Summary Edit the caller's RSVP
// @Description Applies a partial update to the authenticated user's existing RSVP. Fields absent from the body keep their current values. Editing never creates an RSVP.
// @Tags rsvp
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body controllers.EditRSVPRequest true "Fields to change"
// @Success 200 {object} helpers.APIResponse "data contains the updated RSVP"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (no RSVP yet)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /rsvp [patch]
func (c *RSVPController) Edit(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	var req EditRSVPRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	patch := domain.RSVPPatch{
		Attending:       req.Attending,
		MealPreference:  req.MealPreference,
		Allergies:       req.Allergies,
		AdditionalNotes: req.AdditionalNotes,
	}
	rsvp, err := c.Service.Edit(r.Context(), claims.UserID, patch)
	if err != nil {
		if errors.Is(err, domain.ErrRSVPNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "no existing rsvp")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "rsvp update failed")
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, rsvp)
}

// Get godoc
// @Summary Get the caller's RSVP
// @Description Returns the authenticated user's RSVP, or 404 when none exists.
// @Tags rsvp
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the RSVP"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /rsvp [get]
func (c *RSVPController) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	rsvp, err := c.Service.Get(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrRSVPNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "no existing rsvp")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "rsvp lookup failed")
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, rsvp)
}

// GetForUser godoc
// @Summary Get another user's RSVP
// @Description Returns the RSVP owned by the user in the path. Allowed for the owner and admins only.
// @Tags rsvp
// @Produce json
// @Security BearerAuth
// @Param userID path string true "User ID"
// @Success 200 {object} helpers.APIResponse "data contains the RSVP"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/{userID}/rsvp [get]
func (c *RSVPController) GetForUser(w http.ResponseWriter, r *http.Request) {
	targetID := r.PathValue("userID")
	if targetID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing userID")
		return
	}

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	rsvp, err := c.Service.GetForUser(r.Context(), claims.UserID, targetID)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "forbidden")
			return
		}
		if errors.Is(err, domain.ErrRSVPNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "no existing rsvp")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "rsvp lookup failed")
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, rsvp)
}
