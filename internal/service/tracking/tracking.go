package tracking

import (
	"context"
	"fmt"

	"parceltrack/internal/entities"
)

// Tracking ядро учета доставок: все мутации атомарны (коммит либо полный
// откат), после коммита каждая мутация переобновляет выгрузки.
type Tracking struct {
	shipments ShipmentRepository
	accounts  AccountRepository
	exporter  Exporter
	txManager TxManager
}

func New(
	shipments ShipmentRepository,
	accounts AccountRepository,
	exporter Exporter,
	txManager TxManager,
) *Tracking {
	return &Tracking{
		shipments: shipments,
		accounts:  accounts,
		exporter:  exporter,
		txManager: txManager,
	}
}

// AddParcel вставляет посылку и доставку одной транзакцией, опционально
// вместе с уведомлением. Посылка не существует без доставки.
func (s *Tracking) AddParcel(ctx context.Context, createEntity entities.ShipmentCreate) error {
	if !isValidID(createEntity.Parcel.ID) {
		return ErrInvalidParcelID
	}
	if !isValidWeight(createEntity.Parcel.WeightKg) {
		return ErrInvalidWeight
	}
	if !isValidID(createEntity.UserID) {
		return ErrInvalidUserID
	}
	if !isValidID(createEntity.AdminID) {
		return ErrInvalidAdminID
	}
	if !isValidText(createEntity.RecipientName) {
		return ErrInvalidRecipient
	}
	if !isValidText(createEntity.Status) {
		return ErrInvalidStatus
	}
	if createEntity.Notification != nil && !isValidText(*createEntity.Notification) {
		return ErrInvalidMessage
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.shipments.CreateParcel(ctx, createEntity.Parcel); err != nil {
			return fmt.Errorf("create parcel: %w", err)
		}

		if err := s.shipments.CreateDelivery(ctx, createEntity); err != nil {
			return fmt.Errorf("create delivery: %w", err)
		}

		if createEntity.Notification != nil {
			err := s.shipments.CreateNotification(ctx, createEntity.Parcel.ID, *createEntity.Notification)
			if err != nil {
				return fmt.Errorf("create notification: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.exporter.RefreshDeliveries(ctx); err != nil {
		return fmt.Errorf("refresh deliveries export: %w", err)
	}
	return nil
}

func (s *Tracking) UpdateStatus(ctx context.Context, parcelID int64, status string) error {
	if !isValidID(parcelID) {
		return ErrInvalidParcelID
	}
	if !isValidText(status) {
		return ErrInvalidStatus
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.shipments.UpdateStatus(ctx, parcelID, status)
	})
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	if err := s.exporter.RefreshDeliveries(ctx); err != nil {
		return fmt.Errorf("refresh deliveries export: %w", err)
	}
	return nil
}

func (s *Tracking) DeleteParcel(ctx context.Context, parcelID int64) error {
	if !isValidID(parcelID) {
		return ErrInvalidParcelID
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.shipments.DeleteCascade(ctx, parcelID)
	})
	if err != nil {
		return fmt.Errorf("delete parcel: %w", err)
	}

	if err := s.exporter.RefreshDeliveries(ctx); err != nil {
		return fmt.Errorf("refresh deliveries export: %w", err)
	}
	return nil
}

// HasDependents количество доставок пользователя. Решение о каскадном
// удалении (и подтверждение) остается за вызывающим.
func (s *Tracking) HasDependents(ctx context.Context, userID int64) (int64, error) {
	if !isValidID(userID) {
		return 0, ErrInvalidUserID
	}

	count, err := s.shipments.CountByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count dependents: %w", err)
	}
	return count, nil
}

// DeleteUser удаляет пользователя вместе со всеми его доставками
// (каскад notification -> delivery -> parcel) одной транзакцией.
// Подтверждение каскада собирает вызывающий до вызова.
func (s *Tracking) DeleteUser(ctx context.Context, userID int64) error {
	if !isValidID(userID) {
		return ErrInvalidUserID
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.shipments.DeleteCascadeByUser(ctx, userID); err != nil {
			return fmt.Errorf("delete user shipments: %w", err)
		}

		if err := s.accounts.Delete(ctx, entities.RoleUser, userID); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.exporter.RefreshUsers(ctx); err != nil {
		return fmt.Errorf("refresh users export: %w", err)
	}
	if err := s.exporter.RefreshDeliveries(ctx); err != nil {
		return fmt.Errorf("refresh deliveries export: %w", err)
	}
	return nil
}

// AttachNotification прикрепляет уведомление к существующей доставке,
// не более одного на доставку.
func (s *Tracking) AttachNotification(ctx context.Context, parcelID int64, message string) error {
	if !isValidID(parcelID) {
		return ErrInvalidParcelID
	}
	if !isValidText(message) {
		return ErrInvalidMessage
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.shipments.CreateNotification(ctx, parcelID, message)
	})
	if err != nil {
		return fmt.Errorf("attach notification: %w", err)
	}

	if err := s.exporter.RefreshDeliveries(ctx); err != nil {
		return fmt.Errorf("refresh deliveries export: %w", err)
	}
	return nil
}

func (s *Tracking) FindByParcelID(ctx context.Context, parcelID int64) (*entities.ShipmentView, error) {
	if !isValidID(parcelID) {
		return nil, ErrInvalidParcelID
	}

	view, err := s.shipments.GetView(ctx, parcelID)
	if err != nil {
		return nil, fmt.Errorf("find by parcel id: %w", err)
	}
	return view, nil
}

func (s *Tracking) FindByRecipient(ctx context.Context, substring string) (*entities.ShipmentView, error) {
	if !isValidText(substring) {
		return nil, ErrInvalidSearch
	}

	view, err := s.shipments.FindViewByRecipient(ctx, substring)
	if err != nil {
		return nil, fmt.Errorf("find by recipient: %w", err)
	}
	return view, nil
}

func (s *Tracking) ListShipments(ctx context.Context) ([]entities.ShipmentView, error) {
	views, err := s.shipments.ListViews(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	return views, nil
}
