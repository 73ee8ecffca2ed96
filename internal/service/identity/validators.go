package identity

import (
	"strings"

	"parceltrack/internal/entities"
)

func isValidUsername(username string) bool {
	return strings.TrimSpace(username) != ""
}

func isValidPassword(password string) bool {
	return password != ""
}

func isValidRole(role entities.Role) bool {
	switch role {
	case entities.RoleUser, entities.RoleAdministrator:
		return true
	default:
		return false
	}
}
