package shipment

import "time"

// ShipmentViewDB строка объединенного представления.
// Поля уведомления nullable: LEFT JOIN по notifications.
type ShipmentViewDB struct {
	ParcelID      int64
	WeightKg      float64
	Description   string
	ParcelType    string
	UserID        int64
	Sender        string
	AdminID       int64
	Admin         string
	RecipientName string
	Status        string
	CreatedAt     time.Time
	Message       *string
	SentAt        *time.Time
}
