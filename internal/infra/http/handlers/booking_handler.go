package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/middleware"
)

type BookingHandler struct {
	BookingRepo  entity.BookingRepositoryInterface
	CampaignRepo entity.CampaignRepositoryInterface
}

func NewBookingHandler(bookingRepo entity.BookingRepositoryInterface, campaignRepo entity.CampaignRepositoryInterface) *BookingHandler {
	return &BookingHandler{BookingRepo: bookingRepo, CampaignRepo: campaignRepo}
}

type createBookingInput struct {
	LeadID      string    `json:"lead_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Notes       string    `json:"notes"`
}

func (h *BookingHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	campaignID := chi.URLParam(r, "campaignId")

	var input createBookingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	if _, err := h.CampaignRepo.FindByID(r.Context(), userID, campaignID); err != nil {
		writeErrorResponse(w, http.StatusNotFound, "CAMPAIGN_NOT_FOUND", "campaign not found")
		return
	}

	booking, err := entity.NewBooking(campaignID, input.LeadID, userID, input.ScheduledAt, input.Notes)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.BookingRepo.Create(r.Context(), booking); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "could not create booking")
		return
	}

	writeJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	campaignID := chi.URLParam(r, "campaignId")

	bookings, err := h.BookingRepo.ListByCampaign(r.Context(), userID, campaignID)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "could not list bookings")
		return
	}
	if bookings == nil {
		bookings = []*entity.Booking{}
	}

	writeJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	bookingID := chi.URLParam(r, "bookingId")

	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	if !entity.IsValidBookingStatus(input.Status) {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_STATUS",
			"status must be SCHEDULED, COMPLETED, CANCELLED or NO_SHOW")
		return
	}

	booking, err := h.BookingRepo.FindByID(r.Context(), userID, bookingID)
	if err != nil {
		if errors.Is(err, entity.ErrBookingNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "BOOKING_NOT_FOUND", "booking not found")
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "could not load booking")
		return
	}

	if !booking.CanTransitionTo(input.Status) {
		writeErrorResponse(w, http.StatusConflict, "INVALID_TRANSITION",
			"booking is "+booking.Status+" and cannot become "+input.Status)
		return
	}

	if err := h.BookingRepo.UpdateStatus(r.Context(), userID, bookingID, input.Status); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "could not update booking")
		return
	}

	booking.Status = input.Status
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	bookingID := chi.URLParam(r, "bookingId")

	if err := h.BookingRepo.Delete(r.Context(), userID, bookingID); err != nil {
		if errors.Is(err, entity.ErrBookingNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "BOOKING_NOT_FOUND", "booking not found")
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "could not delete booking")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
