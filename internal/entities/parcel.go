package entities

// Parcel существует только вместе со ссылающейся на нее Delivery (1:1),
// как самостоятельная сущность не просматривается.
type Parcel struct {
	ID          int64
	WeightKg    float64
	Description string
	Type        string
}
