package tracking

import "errors"

var (
	ErrInvalidParcelID  = errors.New("invalid parcel id")
	ErrInvalidWeight    = errors.New("invalid weight")
	ErrInvalidRecipient = errors.New("invalid recipient name")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrInvalidUserID    = errors.New("invalid user id")
	ErrInvalidAdminID   = errors.New("invalid admin id")
	ErrInvalidMessage   = errors.New("invalid notification message")
	ErrInvalidSearch    = errors.New("invalid search substring")

	ErrParcelNotFound        = errors.New("parcel not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrDuplicateParcel       = errors.New("parcel already exists")
	ErrDuplicateNotification = errors.New("delivery already has a notification")
	ErrUnknownReference      = errors.New("referenced account does not exist")
)
