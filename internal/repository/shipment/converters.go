package shipment

import (
	"parceltrack/internal/entities"
)

func ToDomainView(v *ShipmentViewDB) *entities.ShipmentView {
	if v == nil {
		return nil
	}

	view := &entities.ShipmentView{
		Parcel: entities.Parcel{
			ID:          v.ParcelID,
			WeightKg:    v.WeightKg,
			Description: v.Description,
			Type:        v.ParcelType,
		},
		SenderID:      v.UserID,
		Sender:        v.Sender,
		AdminID:       v.AdminID,
		Admin:         v.Admin,
		RecipientName: v.RecipientName,
		Status:        v.Status,
		CreatedAt:     v.CreatedAt,
	}

	if v.Message != nil && v.SentAt != nil {
		view.Notification = &entities.Notification{
			ParcelID: v.ParcelID,
			Message:  *v.Message,
			SentAt:   *v.SentAt,
		}
	}

	return view
}

func ToDomainViewList(viewsDB []ShipmentViewDB) []entities.ShipmentView {
	if len(viewsDB) == 0 {
		return []entities.ShipmentView{}
	}

	result := make([]entities.ShipmentView, len(viewsDB))
	for i, viewDB := range viewsDB {
		result[i] = *ToDomainView(&viewDB)
	}
	return result
}
