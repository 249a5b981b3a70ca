package transition_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/clubelmeta/CEM-SalonService/internal/domain"
	reservationRepo "github.com/clubelmeta/CEM-SalonService/internal/infra/storage/reservation"
)

// UseCase use case для перехода статуса резервации
type UseCase struct {
	reservationRepo ReservationRepository
	venueRepo       VenueRepository
	notifier        Notifier
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	venueRepo VenueRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		venueRepo:       venueRepo,
		notifier:        notifier,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет переход статуса резервации.
// Переход проверяется по таблице переходов и роли сотрудника.
// При подтверждении отправляется ровно одно уведомление клиенту;
// сбой отправки логируется и не откатывает переход.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("TransitionReservation: reservation=%d, target=%s, actor=%d role=%s",
		req.ReservationID, req.TargetStatus, req.Actor.ID, req.Actor.Role)

	// 1. Валидация целевого статуса
	target := domain.ReservationStatus(req.TargetStatus)
	if !domain.IsValidStatus(target) {
		uc.logger.Warn("TransitionReservation: unknown target status=%s", req.TargetStatus)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.TargetStatus)
	}

	// 2. Проверка роли сотрудника
	if !req.Actor.CanTransition(target) {
		uc.logger.Warn("TransitionReservation: actor=%d role=%s may not set status=%s",
			req.Actor.ID, req.Actor.Role, target)
		return nil, ErrForbidden
	}

	var result *domain.Reservation
	var previous domain.ReservationStatus

	// 3. Читаем и обновляем резервацию в одной транзакции,
	// чтобы проверка перехода и запись были атомарными
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		reservation, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("TransitionReservation: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("TransitionReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		previous = reservation.Status

		// 3.1. Проверка по таблице переходов
		if !reservation.Status.CanTransitionTo(target) {
			uc.logger.Warn("TransitionReservation: illegal transition %s -> %s for reservation id=%d",
				reservation.Status, target, req.ReservationID)
			return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, reservation.Status, target)
		}

		// 3.2. Записываем новый статус
		if err := uc.reservationRepo.UpdateStatus(txCtx, req.ReservationID, target); err != nil {
			uc.logger.Error("TransitionReservation: failed to update status for reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		reservation.Status = target
		result = reservation
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("TransitionReservation: reservation id=%d moved %s -> %s", result.ID, previous, target)

	// 4. Уведомление отправляется после фиксации транзакции и только
	// при подтверждении. Переход уже совершён: ошибки отправки
	// логируются, но не возвращаются вызывающему
	if target == domain.StatusConfirmed {
		uc.dispatchConfirmation(result)
	}

	return &Response{
		ID:             result.ID,
		PreviousStatus: string(previous),
		Status:         string(result.Status),
		UpdatedAt:      result.UpdatedAt,
	}, nil
}

// dispatchConfirmation отправляет уведомление о подтверждении.
// Выполняется в фоне с собственным контекстом: отмена исходного
// запроса не должна оборвать отправку
func (uc *UseCase) dispatchConfirmation(reservation *domain.Reservation) {
	config, err := uc.venueRepo.GetConfigurationByID(context.Background(), reservation.ConfigurationID)
	if err != nil {
		uc.logger.Error("TransitionReservation: failed to load configuration=%d for notification: %v",
			reservation.ConfigurationID, err)
		config = nil
	}

	go func() {
		if err := uc.notifier.ReservationConfirmed(context.Background(), reservation, config); err != nil {
			uc.logger.Error("TransitionReservation: confirmation notification failed for reservation id=%d: %v",
				reservation.ID, err)
			return
		}
		uc.logger.Info("TransitionReservation: confirmation notification dispatched for reservation id=%d", reservation.ID)
	}()
}
