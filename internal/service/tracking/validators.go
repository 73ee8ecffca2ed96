package tracking

import "strings"

func isValidID(id int64) bool {
	return id > 0
}

func isValidWeight(weightKg float64) bool {
	return weightKg > 0
}

func isValidText(s string) bool {
	return strings.TrimSpace(s) != ""
}
