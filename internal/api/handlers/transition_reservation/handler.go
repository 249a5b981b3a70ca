package transition_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/clubelmeta/CEM-SalonService/internal/api/handlers"
	"github.com/clubelmeta/CEM-SalonService/internal/api/middleware"
	transitionReservation "github.com/clubelmeta/CEM-SalonService/internal/usecase/transition_reservation"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidReservation  = "некорректный ID резервации"
	msgReservationNotFound = "резервация не найдена"
	msgInvalidStatus       = "неизвестный целевой статус"
	msgIllegalTransition   = "переход статуса запрещён"
	msgForbidden           = "роль сотрудника не допускает этот переход"
	msgMissingActor        = "не определён сотрудник, выполняющий операцию"
)

type Handler struct {
	useCase TransitionReservationUseCase
	logger  Logger
}

func NewHandler(useCase TransitionReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil || reservationID <= 0 {
		h.logger.Warn("PATCH /reservations/{id}/status - Invalid reservation ID: %s", vars["reservationId"])
		handlers.RespondBadRequest(w, msgInvalidReservation)
		return
	}

	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Error("PATCH /reservations/{id}/status - Actor missing from context: reservation_id=%d", reservationID)
		handlers.RespondError(w, http.StatusUnauthorized, msgMissingActor)
		return
	}

	var req TransitionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &transitionReservation.Request{
		ReservationID: reservationID,
		TargetStatus:  req.Status,
		Actor:         actor,
	})
	if err != nil {
		switch {
		case errors.Is(err, transitionReservation.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/status - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, transitionReservation.ErrInvalidStatus):
			h.logger.Warn("PATCH /reservations/{id}/status - Invalid status: reservation_id=%d, status=%s", reservationID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, transitionReservation.ErrIllegalTransition):
			h.logger.Warn("PATCH /reservations/{id}/status - Illegal transition: reservation_id=%d, status=%s", reservationID, req.Status)
			handlers.RespondError(w, http.StatusConflict, msgIllegalTransition)

		case errors.Is(err, transitionReservation.ErrForbidden):
			h.logger.Warn("PATCH /reservations/{id}/status - Forbidden: reservation_id=%d, actor=%d role=%s", reservationID, actor.ID, actor.Role)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PATCH /reservations/{id}/status - Failed to transition: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/status - Transition complete: reservation_id=%d, %s -> %s",
		reservationID, result.PreviousStatus, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
