package entities

import "time"

type Delivery struct {
	ParcelID      int64
	UserID        int64
	AdminID       int64
	RecipientName string
	Status        string
	CreatedAt     time.Time
}

// ShipmentCreate параметры создания посылки вместе с доставкой
// одной логической транзакцией.
type ShipmentCreate struct {
	Parcel        Parcel
	UserID        int64
	AdminID       int64
	RecipientName string
	Status        string
	CreatedAt     *time.Time // nil - время проставит хранилище
	Notification  *string    // опциональное сообщение уведомления
}

// ShipmentView строка объединенного представления
// Delivery x User x Administrator x Parcel x Notification (left join).
// Единый источник для всех форматов выгрузки.
type ShipmentView struct {
	Parcel        Parcel
	SenderID      int64
	Sender        string
	AdminID       int64
	Admin         string
	RecipientName string
	Status        string
	CreatedAt     time.Time
	Notification  *Notification // nil когда уведомления нет
}
