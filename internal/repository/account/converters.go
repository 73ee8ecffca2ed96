package account

import (
	"parceltrack/internal/entities"
)

func ToDomain(a *AccountDB) *entities.Account {
	if a == nil {
		return nil
	}

	return &entities.Account{
		ID:       a.ID,
		Username: a.Username,
		Password: a.Password,
	}
}

func ToDomainList(accountsDB []AccountDB) []entities.Account {
	if len(accountsDB) == 0 {
		return []entities.Account{}
	}

	result := make([]entities.Account, len(accountsDB))
	for i, accountDB := range accountsDB {
		result[i] = *ToDomain(&accountDB)
	}
	return result
}
