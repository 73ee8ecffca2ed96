package export

import (
	"strconv"
	"time"

	"parceltrack/internal/entities"
)

const timeFormat = time.RFC3339

// shipmentDocument плоский набор полей одинаков во всех форматах;
// в JSON/XML/YAML посылка и уведомление вложенные объекты,
// в CSV те же значения разворачиваются в одну строку.
type shipmentDocument struct {
	ParcelID      int64                 `json:"parcel_id" yaml:"parcel_id" xml:"parcel_id"`
	Sender        string                `json:"sender" yaml:"sender" xml:"sender"`
	Admin         string                `json:"admin" yaml:"admin" xml:"admin"`
	RecipientName string                `json:"recipient_name" yaml:"recipient_name" xml:"recipient_name"`
	Status        string                `json:"status" yaml:"status" xml:"status"`
	CreatedAt     string                `json:"created_at" yaml:"created_at" xml:"created_at"`
	Parcel        parcelDocument        `json:"parcel" yaml:"parcel" xml:"parcel"`
	Notification  *notificationDocument `json:"notification" yaml:"notification" xml:"notification"`
}

type parcelDocument struct {
	WeightKg    float64 `json:"weight_kg" yaml:"weight_kg" xml:"weight_kg"`
	Description string  `json:"description" yaml:"description" xml:"description"`
	Type        string  `json:"parcel_type" yaml:"parcel_type" xml:"parcel_type"`
}

type notificationDocument struct {
	Message string `json:"message" yaml:"message" xml:"message"`
	SentAt  string `json:"sent_at" yaml:"sent_at" xml:"sent_at"`
}

type userDocument struct {
	UserID   int64  `json:"user_id" yaml:"user_id" xml:"user_id"`
	Username string `json:"username" yaml:"username" xml:"username"`
}

var shipmentCSVHeader = []string{
	"parcel_id",
	"sender",
	"admin",
	"recipient_name",
	"status",
	"created_at",
	"weight_kg",
	"description",
	"parcel_type",
	"message",
	"sent_at",
}

var userCSVHeader = []string{
	"user_id",
	"username",
}

func toShipmentDocument(view *entities.ShipmentView) shipmentDocument {
	doc := shipmentDocument{
		ParcelID:      view.Parcel.ID,
		Sender:        view.Sender,
		Admin:         view.Admin,
		RecipientName: view.RecipientName,
		Status:        view.Status,
		CreatedAt:     view.CreatedAt.UTC().Format(timeFormat),
		Parcel: parcelDocument{
			WeightKg:    view.Parcel.WeightKg,
			Description: view.Parcel.Description,
			Type:        view.Parcel.Type,
		},
	}

	if view.Notification != nil {
		doc.Notification = &notificationDocument{
			Message: view.Notification.Message,
			SentAt:  view.Notification.SentAt.UTC().Format(timeFormat),
		}
	}

	return doc
}

func toShipmentDocuments(views []entities.ShipmentView) []shipmentDocument {
	docs := make([]shipmentDocument, len(views))
	for i := range views {
		docs[i] = toShipmentDocument(&views[i])
	}
	return docs
}

// csvRecord при отсутствующем уведомлении message/sent_at - пустые ячейки.
func (d *shipmentDocument) csvRecord() []string {
	message, sentAt := "", ""
	if d.Notification != nil {
		message = d.Notification.Message
		sentAt = d.Notification.SentAt
	}

	return []string{
		strconv.FormatInt(d.ParcelID, 10),
		d.Sender,
		d.Admin,
		d.RecipientName,
		d.Status,
		d.CreatedAt,
		strconv.FormatFloat(d.Parcel.WeightKg, 'g', -1, 64),
		d.Parcel.Description,
		d.Parcel.Type,
		message,
		sentAt,
	}
}

// пароли в выгрузку не попадают
func toUserDocuments(accounts []entities.Account) []userDocument {
	docs := make([]userDocument, len(accounts))
	for i, accountEntity := range accounts {
		docs[i] = userDocument{
			UserID:   accountEntity.ID,
			Username: accountEntity.Username,
		}
	}
	return docs
}

func (d *userDocument) csvRecord() []string {
	return []string{
		strconv.FormatInt(d.UserID, 10),
		d.Username,
	}
}
