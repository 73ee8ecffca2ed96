package entities

import "time"

// Notification не более одной на доставку, ключ - parcel_id доставки.
type Notification struct {
	ParcelID int64
	Message  string
	SentAt   time.Time
}
