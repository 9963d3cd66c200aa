package account

import (
	"context"
	"errors"
	"testing"

	"pokedex/server/biz/dal/repo"
	"pokedex/server/biz/model/domain"
	"pokedex/server/biz/model/errs"
	"pokedex/server/biz/model/storage"
	"pokedex/server/biz/util/encode"
	"pokedex/server/biz/util/random"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeAccountRepo struct {
	findByNameRec *storage.AccountRecord
	findByNameErr error

	findAllRecs []storage.AccountRecord
	findAllErr  error

	createErr   error
	createInput *storage.AccountRecord

	updateErr     error
	updateName    string
	updateInput   *storage.AccountRecord
	deleteErr     error
	deletedName   string
	deleteCounter int
}

func (r *fakeAccountRepo) FindByName(_ context.Context, _ string) (*storage.AccountRecord, error) {
	return r.findByNameRec, r.findByNameErr
}

func (r *fakeAccountRepo) FindAll(_ context.Context) ([]storage.AccountRecord, error) {
	return r.findAllRecs, r.findAllErr
}

func (r *fakeAccountRepo) Create(_ context.Context, rec *storage.AccountRecord) error {
	r.createInput = rec
	return r.createErr
}

func (r *fakeAccountRepo) UpdateByName(_ context.Context, name string, rec *storage.AccountRecord) error {
	r.updateName = name
	r.updateInput = rec
	return r.updateErr
}

func (r *fakeAccountRepo) DeleteByName(_ context.Context, name string) error {
	r.deletedName = name
	r.deleteCounter++
	return r.deleteErr
}

func TestService_GetUser(t *testing.T) {
	t.Run("find error", func(t *testing.T) {
		svc := New(&fakeAccountRepo{findByNameErr: errors.New("db down")})
		_, bizErr := svc.GetUser(context.Background(), "alice")
		assert.True(t, errs.ErrorEqual(errs.DBError, bizErr))
	})

	t.Run("user not exist", func(t *testing.T) {
		svc := New(&fakeAccountRepo{})
		_, bizErr := svc.GetUser(context.Background(), "alice")
		assert.True(t, errs.ErrorEqual(errs.UserSearch, bizErr))
	})

	t.Run("success", func(t *testing.T) {
		svc := New(&fakeAccountRepo{findByNameRec: &storage.AccountRecord{Name: "alice", Salt: "s", Hash: "h"}})
		a, bizErr := svc.GetUser(context.Background(), "alice")
		assert.Nil(t, bizErr)
		assert.Equal(t, &domain.Account{Name: "alice", Salt: "s", Hash: "h"}, a)
	})
}

func TestService_GetUsers(t *testing.T) {
	t.Run("find error", func(t *testing.T) {
		svc := New(&fakeAccountRepo{findAllErr: errors.New("db down")})
		_, bizErr := svc.GetUsers(context.Background())
		assert.True(t, errs.ErrorEqual(errs.DBError, bizErr))
	})

	t.Run("empty table is a valid result", func(t *testing.T) {
		svc := New(&fakeAccountRepo{})
		accounts, bizErr := svc.GetUsers(context.Background())
		assert.Nil(t, bizErr)
		assert.Empty(t, accounts)
	})

	t.Run("keeps repo order", func(t *testing.T) {
		svc := New(&fakeAccountRepo{findAllRecs: []storage.AccountRecord{
			{Name: "zed"}, {Name: "alice"},
		}})
		accounts, bizErr := svc.GetUsers(context.Background())
		assert.Nil(t, bizErr)
		assert.Equal(t, "zed", accounts[0].Name)
		assert.Equal(t, "alice", accounts[1].Name)
	})
}

func TestService_CreateUser(t *testing.T) {
	t.Run("probe db error re-raised", func(t *testing.T) {
		svc := New(&fakeAccountRepo{findByNameErr: errors.New("db down")})
		_, bizErr := svc.CreateUser(context.Background(), "alice", "pw")
		assert.True(t, errs.ErrorEqual(errs.DBError, bizErr))
	})

	t.Run("user already exists", func(t *testing.T) {
		fake := &fakeAccountRepo{findByNameRec: &storage.AccountRecord{Name: "alice"}}
		svc := New(fake)
		_, bizErr := svc.CreateUser(context.Background(), "alice", "pw")
		assert.True(t, errs.ErrorEqual(errs.UserCreation, bizErr))
		assert.Nil(t, fake.createInput)
	})

	t.Run("insert race loser reported as creation failure", func(t *testing.T) {
		svc := New(&fakeAccountRepo{createErr: gorm.ErrDuplicatedKey})
		_, bizErr := svc.CreateUser(context.Background(), "alice", "pw")
		assert.True(t, errs.ErrorEqual(errs.UserCreation, bizErr))
	})

	t.Run("transaction failure", func(t *testing.T) {
		svc := New(&fakeAccountRepo{createErr: errors.New("commit failed")})
		_, bizErr := svc.CreateUser(context.Background(), "alice", "pw")
		assert.True(t, errs.ErrorEqual(errs.TransactionError, bizErr))
	})

	t.Run("success stores salted digest, never the password", func(t *testing.T) {
		fake := &fakeAccountRepo{}
		svc := New(fake)

		a, bizErr := svc.CreateUser(context.Background(), "alice", "pw1")
		assert.Nil(t, bizErr)
		assert.Equal(t, "alice", a.Name)

		if assert.NotNil(t, fake.createInput) {
			assert.Len(t, fake.createInput.Salt, random.SaltLength)
			assert.NotEqual(t, "pw1", fake.createInput.Hash)
			assert.Equal(t, encode.EncodePassword("pw1", fake.createInput.Salt), fake.createInput.Hash)
		}
	})

	t.Run("salt is fresh per create", func(t *testing.T) {
		fake := &fakeAccountRepo{}
		svc := New(fake)

		_, _ = svc.CreateUser(context.Background(), "alice", "pw")
		salt1 := fake.createInput.Salt
		_, _ = svc.CreateUser(context.Background(), "bob", "pw")
		assert.NotEqual(t, salt1, fake.createInput.Salt)
	})
}

func TestService_DeleteUser(t *testing.T) {
	t.Run("absent name fails before deleting", func(t *testing.T) {
		fake := &fakeAccountRepo{}
		svc := New(fake)
		bizErr := svc.DeleteUser(context.Background(), "alice")
		assert.True(t, errs.ErrorEqual(errs.UserSearch, bizErr))
		assert.Zero(t, fake.deleteCounter)
	})

	t.Run("probe db error re-raised", func(t *testing.T) {
		svc := New(&fakeAccountRepo{findByNameErr: errors.New("db down")})
		bizErr := svc.DeleteUser(context.Background(), "alice")
		assert.True(t, errs.ErrorEqual(errs.DBError, bizErr))
	})

	t.Run("success", func(t *testing.T) {
		fake := &fakeAccountRepo{findByNameRec: &storage.AccountRecord{Name: "alice"}}
		svc := New(fake)
		assert.Nil(t, svc.DeleteUser(context.Background(), "alice"))
		assert.Equal(t, "alice", fake.deletedName)
	})
}

func TestService_VerifyUser(t *testing.T) {
	stored := &storage.AccountRecord{
		Name: "alice",
		Salt: "0123456789",
		Hash: encode.EncodePassword("right", "0123456789"),
	}

	t.Run("user not exist", func(t *testing.T) {
		svc := New(&fakeAccountRepo{})
		_, bizErr := svc.VerifyUser(context.Background(), domain.Credential{Name: "alice", Password: "right"})
		assert.True(t, errs.ErrorEqual(errs.UserSearch, bizErr))
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := New(&fakeAccountRepo{findByNameRec: stored})
		_, bizErr := svc.VerifyUser(context.Background(), domain.Credential{Name: "alice", Password: "wrong"})
		assert.True(t, errs.ErrorEqual(errs.UserVerification, bizErr))
	})

	t.Run("success returns stored row", func(t *testing.T) {
		svc := New(&fakeAccountRepo{findByNameRec: stored})
		a, bizErr := svc.VerifyUser(context.Background(), domain.Credential{Name: "alice", Password: "right"})
		assert.Nil(t, bizErr)
		assert.Equal(t, stored.Hash, a.Hash)
	})
}

func TestService_UpdateUser(t *testing.T) {
	stored := &storage.AccountRecord{
		Name: "alice",
		Salt: "0123456789",
		Hash: encode.EncodePassword("pw1", "0123456789"),
	}

	t.Run("verification failure aborts update", func(t *testing.T) {
		fake := &fakeAccountRepo{findByNameRec: stored}
		svc := New(fake)
		_, bizErr := svc.UpdateUser(context.Background(),
			domain.Credential{Name: "alice", Password: "wrong"},
			domain.Credential{Name: "bob", Password: "pw2"})
		assert.True(t, errs.ErrorEqual(errs.UserVerification, bizErr))
		assert.Nil(t, fake.updateInput)
	})

	t.Run("matches row by old name and rotates salt", func(t *testing.T) {
		fake := &fakeAccountRepo{findByNameRec: stored}
		svc := New(fake)

		a, bizErr := svc.UpdateUser(context.Background(),
			domain.Credential{Name: "alice", Password: "pw1"},
			domain.Credential{Name: "bob", Password: "pw2"})
		assert.Nil(t, bizErr)
		assert.Equal(t, "bob", a.Name)

		assert.Equal(t, "alice", fake.updateName)
		if assert.NotNil(t, fake.updateInput) {
			assert.Equal(t, "bob", fake.updateInput.Name)
			assert.NotEqual(t, stored.Salt, fake.updateInput.Salt)
			assert.Equal(t, encode.EncodePassword("pw2", fake.updateInput.Salt), fake.updateInput.Hash)
		}
	})

	t.Run("update db error", func(t *testing.T) {
		fake := &fakeAccountRepo{findByNameRec: stored, updateErr: errors.New("db down")}
		svc := New(fake)
		_, bizErr := svc.UpdateUser(context.Background(),
			domain.Credential{Name: "alice", Password: "pw1"},
			domain.Credential{Name: "bob", Password: "pw2"})
		assert.True(t, errs.ErrorEqual(errs.DBError, bizErr))
	})
}

func setupSQLiteService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&storage.AccountRecord{}))
	return New(repo.NewAccountRepositoryGorm(db))
}

// End-to-end over a real in-memory table: create, double-create,
// verify, rename with password change, delete.
func TestService_Scenario(t *testing.T) {
	svc := setupSQLiteService(t)
	ctx := context.Background()

	created, bizErr := svc.CreateUser(ctx, "alice", "pw1")
	assert.Nil(t, bizErr)

	a, bizErr := svc.GetUser(ctx, "alice")
	assert.Nil(t, bizErr)
	h1 := a.Hash
	assert.Equal(t, created.Hash, h1)
	assert.Equal(t, encode.EncodePassword("pw1", a.Salt), h1)

	_, bizErr = svc.CreateUser(ctx, "alice", "other")
	assert.True(t, errs.ErrorEqual(errs.UserCreation, bizErr))
	unchanged, _ := svc.GetUser(ctx, "alice")
	assert.Equal(t, h1, unchanged.Hash)

	_, bizErr = svc.UpdateUser(ctx,
		domain.Credential{Name: "alice", Password: "pw1"},
		domain.Credential{Name: "bob", Password: "pw2"})
	assert.Nil(t, bizErr)

	_, bizErr = svc.GetUser(ctx, "alice")
	assert.True(t, errs.ErrorEqual(errs.UserSearch, bizErr))

	b, bizErr := svc.GetUser(ctx, "bob")
	assert.Nil(t, bizErr)
	assert.NotEqual(t, h1, b.Hash)
	assert.NotEqual(t, a.Salt, b.Salt)

	_, bizErr = svc.VerifyUser(ctx, domain.Credential{Name: "bob", Password: "pw2"})
	assert.Nil(t, bizErr)
	_, bizErr = svc.VerifyUser(ctx, domain.Credential{Name: "bob", Password: "pw1"})
	assert.True(t, errs.ErrorEqual(errs.UserVerification, bizErr))

	assert.Nil(t, svc.DeleteUser(ctx, "bob"))
	bizErrDel := svc.DeleteUser(ctx, "bob")
	assert.True(t, errs.ErrorEqual(errs.UserSearch, bizErrDel))

	all, bizErr := svc.GetUsers(ctx)
	assert.Nil(t, bizErr)
	assert.Empty(t, all)
}
