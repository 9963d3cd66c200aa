package account

import (
	"context"

	"pokedex/server/biz/dal/repo"
	"pokedex/server/biz/db/sqldb"
	"pokedex/server/biz/model/convert"
	"pokedex/server/biz/model/domain"
	"pokedex/server/biz/model/errs"
	"pokedex/server/biz/model/storage"
	"pokedex/server/biz/util/encode"
	"pokedex/server/biz/util/random"
)

type Service struct {
	accounts repo.AccountRepository
}

func New(accounts repo.AccountRepository) *Service {
	return &Service{accounts: accounts}
}

func NewDefault() *Service {
	return New(repo.NewAccountRepositoryGorm(sqldb.GetDbConn()))
}

// GetUser fetches one account by name. Absence is reported as a
// USER_SEARCH failure; every mutating operation uses this as its
// existence probe and branches on the failure kind.
func (s *Service) GetUser(ctx context.Context, name string) (*domain.Account, errs.Error) {
	m, err := s.accounts.FindByName(ctx, name)
	if err != nil {
		return nil, errs.DBError.SetErr(err)
	}
	if m == nil {
		return nil, errs.UserSearch
	}
	return convert.AccountRecordToDomain(m), nil
}

// GetUsers returns every account in creation order. An empty table is
// a valid empty result, not a failure.
func (s *Service) GetUsers(ctx context.Context) ([]domain.Account, errs.Error) {
	ms, err := s.accounts.FindAll(ctx)
	if err != nil {
		return nil, errs.DBError.SetErr(err)
	}
	return convert.AccountRecordsToDomain(ms), nil
}

// CreateUser inserts a new account with a fresh salt and digest. The
// existence probe and the insert are not atomic: two concurrent
// identical requests can both observe "absent" and race to insert. The
// primary key constraint rejects the loser, which is then reported as
// USER_CREATION like any other duplicate.
func (s *Service) CreateUser(ctx context.Context, name, password string) (*domain.Account, errs.Error) {
	_, probeErr := s.GetUser(ctx, name)
	if probeErr == nil {
		return nil, errs.UserCreation
	}
	if probeErr.Kind() != errs.KindUserSearch {
		return nil, probeErr
	}

	salt := random.Salt()
	rec := &storage.AccountRecord{
		Name: name,
		Salt: salt,
		Hash: encode.EncodePassword(password, salt),
	}
	if err := s.accounts.Create(ctx, rec); err != nil {
		if errs.IsDuplicatedErr(err) {
			return nil, errs.UserCreation
		}
		return nil, errs.TransactionError.SetErr(err)
	}
	return convert.AccountRecordToDomain(rec), nil
}

// DeleteUser removes the named account. Deleting an absent name fails
// with USER_SEARCH from the probe, never a silent no-op.
func (s *Service) DeleteUser(ctx context.Context, name string) errs.Error {
	if _, probeErr := s.GetUser(ctx, name); probeErr != nil {
		return probeErr
	}
	if err := s.accounts.DeleteByName(ctx, name); err != nil {
		return errs.DBError.SetErr(err)
	}
	return nil
}

// VerifyUser recomputes the digest from the supplied password and the
// stored salt and compares it against the stored hash.
func (s *Service) VerifyUser(ctx context.Context, cred domain.Credential) (*domain.Account, errs.Error) {
	a, err := s.GetUser(ctx, cred.Name)
	if err != nil {
		return nil, err
	}
	if encode.EncodePassword(cred.Password, a.Salt) != a.Hash {
		return nil, errs.UserVerification
	}
	return a, nil
}

// UpdateUser replaces name, salt and hash as one row update after the
// old credential verifies. The row is matched by the old account name;
// the salt always rotates, so the digest changes even when the
// password does not.
func (s *Service) UpdateUser(ctx context.Context, oldCred, newCred domain.Credential) (*domain.Account, errs.Error) {
	if _, err := s.VerifyUser(ctx, oldCred); err != nil {
		return nil, err
	}

	salt := random.Salt()
	rec := &storage.AccountRecord{
		Name: newCred.Name,
		Salt: salt,
		Hash: encode.EncodePassword(newCred.Password, salt),
	}
	if err := s.accounts.UpdateByName(ctx, oldCred.Name, rec); err != nil {
		return nil, errs.DBError.SetErr(err)
	}
	return convert.AccountRecordToDomain(rec), nil
}
