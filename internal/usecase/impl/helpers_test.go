package impl

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"sync"

	"estate/config"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKey{
			Access:  "test_access_secret_key_very_long_for_testing",
			Refresh: "test_refresh_secret_key_very_long_for_testing",
		},
		Auth: &config.AuthConfig{
			BcryptCost:            4,
			RollbackOnMailFailure: true,
		},
	}
}

// memStore is a transactional in-memory account and seller store.
// A failing transaction restores the snapshot taken when it began.
type memStore struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*entity.Account
	sellers  map[uuid.UUID]*entity.SellerProfile

	failSellerCreate error
}

func newMemStore() *memStore {
	return &memStore{
		accounts: map[uuid.UUID]*entity.Account{},
		sellers:  map[uuid.UUID]*entity.SellerProfile{},
	}
}

func (s *memStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	s.mu.Lock()
	accounts := maps.Clone(s.accounts)
	sellers := maps.Clone(s.sellers)
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.accounts = accounts
		s.sellers = sellers
		s.mu.Unlock()

		return err
	}

	return nil
}

func (s *memStore) AccountRepo() repository.AccountRepository   { return memAccounts{s} }
func (s *memStore) SellerRepo() repository.SellerRepository     { return memSellers{s} }
func (s *memStore) PropertyRepo() repository.PropertyRepository { return nil }

func (s *memStore) accountCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.accounts)
}

func (s *memStore) sellerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sellers)
}

func (s *memStore) findByEmail(email string) *entity.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, account := range s.accounts {
		if account.Email == email {
			stored := *account

			return &stored
		}
	}

	return nil
}

type memAccounts struct{ s *memStore }

func (r memAccounts) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	account, ok := r.s.accounts[id]
	if !ok {
		return nil, domainerrors.ErrAccountNotFound
	}
	stored := *account

	return &stored, nil
}

func (r memAccounts) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	if account := r.s.findByEmail(email); account != nil {
		return account, nil
	}

	return nil, domainerrors.ErrAccountNotFound
}

func (r memAccounts) Create(_ context.Context, account *entity.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.accounts {
		if existing.Email == account.Email {
			return domainerrors.ErrAccountAlreadyExists
		}
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	stored := *account
	r.s.accounts[account.ID] = &stored

	return nil
}

func (r memAccounts) Update(_ context.Context, account *entity.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.accounts[account.ID]; !ok {
		return domainerrors.ErrAccountNotFound
	}
	stored := *account
	r.s.accounts[account.ID] = &stored

	return nil
}

func (r memAccounts) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.accounts, id)

	return nil
}

func (r memAccounts) List(_ context.Context, _ entity.AccountFilter) (*entity.Page[*entity.Account], error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	page := &entity.Page[*entity.Account]{Total: int64(len(r.s.accounts))}
	for _, account := range r.s.accounts {
		page.Items = append(page.Items, account)
	}

	return page, nil
}

type memSellers struct{ s *memStore }

func (r memSellers) Create(_ context.Context, profile *entity.SellerProfile) error {
	if r.s.failSellerCreate != nil {
		return r.s.failSellerCreate
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	stored := *profile
	r.s.sellers[profile.ID] = &stored

	return nil
}

func (r memSellers) FindByID(_ context.Context, id uuid.UUID) (*entity.SellerProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	profile, ok := r.s.sellers[id]
	if !ok {
		return nil, domainerrors.ErrSellerNotFound
	}
	stored := *profile

	return &stored, nil
}

func (r memSellers) FindByAccountID(_ context.Context, accountID uuid.UUID) (*entity.SellerProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, profile := range r.s.sellers {
		if profile.AccountID == accountID {
			stored := *profile

			return &stored, nil
		}
	}

	return nil, domainerrors.ErrSellerNotFound
}

func (r memSellers) Update(_ context.Context, profile *entity.SellerProfile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *profile
	r.s.sellers[profile.ID] = &stored

	return nil
}

func (r memSellers) UpdateStatus(_ context.Context, id uuid.UUID, status entity.VerificationStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	profile, ok := r.s.sellers[id]
	if !ok {
		return domainerrors.ErrSellerNotFound
	}
	profile.Status = status

	return nil
}

func (r memSellers) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.sellers, id)

	return nil
}

func (r memSellers) List(_ context.Context, _ entity.SellerFilter) (*entity.Page[*entity.SellerProfile], error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	page := &entity.Page[*entity.SellerProfile]{Total: int64(len(r.s.sellers))}
	for _, profile := range r.s.sellers {
		page.Items = append(page.Items, profile)
	}

	return page, nil
}
