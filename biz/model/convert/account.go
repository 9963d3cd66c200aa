package convert

import (
	"pokedex/server/biz/model/domain"
	"pokedex/server/biz/model/storage"
)

func AccountDomainToRecord(a *domain.Account) *storage.AccountRecord {
	if a == nil {
		return nil
	}
	return &storage.AccountRecord{
		Name: a.Name,
		Salt: a.Salt,
		Hash: a.Hash,
	}
}

func AccountRecordToDomain(m *storage.AccountRecord) *domain.Account {
	if m == nil {
		return nil
	}
	return &domain.Account{
		Name: m.Name,
		Salt: m.Salt,
		Hash: m.Hash,
	}
}

func AccountRecordsToDomain(ms []storage.AccountRecord) []domain.Account {
	accounts := make([]domain.Account, 0, len(ms))
	for i := range ms {
		accounts = append(accounts, *AccountRecordToDomain(&ms[i]))
	}
	return accounts
}
