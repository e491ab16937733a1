package impl

import (
	"context"
	"io"
	"log/slog"

	"echofinds/internal/domain/entity"
	"echofinds/internal/domain/repository"
)

// Hand-written test doubles for the repository and service contracts. Each
// field overrides one method; unset methods fail loudly via nil deref so a
// test exercising an unexpected path is caught immediately.

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type stubUserRepo struct {
	CreateFn      func(ctx context.Context, user *entity.User) error
	FindByIDFn    func(ctx context.Context, id uint) (*entity.User, error)
	FindByEmailFn func(ctx context.Context, email string) (*entity.User, error)
	UpdateFn      func(ctx context.Context, user *entity.User) error
}

func (s *stubUserRepo) Create(ctx context.Context, user *entity.User) error {
	return s.CreateFn(ctx, user)
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return s.FindByIDFn(ctx, id)
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.FindByEmailFn(ctx, email)
}

func (s *stubUserRepo) Update(ctx context.Context, user *entity.User) error {
	return s.UpdateFn(ctx, user)
}

type stubProductRepo struct {
	CreateFn      func(ctx context.Context, product *entity.Product) error
	FindByIDFn    func(ctx context.Context, id uint) (*entity.Product, error)
	SearchFn      func(ctx context.Context, filter repository.ProductFilter) ([]entity.Product, error)
	CategoriesFn  func(ctx context.Context) ([]string, error)
	FindByOwnerFn func(ctx context.Context, ownerID uint) ([]entity.Product, error)
	FindByIDsFn   func(ctx context.Context, ids []uint) ([]entity.Product, error)
	ExistingIDsFn func(ctx context.Context, ids []uint) (map[uint]struct{}, error)
	UpdateFn      func(ctx context.Context, product *entity.Product) error
	DeleteFn      func(ctx context.Context, id uint) error
}

func (s *stubProductRepo) Create(ctx context.Context, product *entity.Product) error {
	return s.CreateFn(ctx, product)
}

func (s *stubProductRepo) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	return s.FindByIDFn(ctx, id)
}

func (s *stubProductRepo) Search(ctx context.Context, filter repository.ProductFilter) ([]entity.Product, error) {
	return s.SearchFn(ctx, filter)
}

func (s *stubProductRepo) Categories(ctx context.Context) ([]string, error) {
	return s.CategoriesFn(ctx)
}

func (s *stubProductRepo) FindByOwner(ctx context.Context, ownerID uint) ([]entity.Product, error) {
	return s.FindByOwnerFn(ctx, ownerID)
}

func (s *stubProductRepo) FindByIDs(ctx context.Context, ids []uint) ([]entity.Product, error) {
	return s.FindByIDsFn(ctx, ids)
}

func (s *stubProductRepo) ExistingIDs(ctx context.Context, ids []uint) (map[uint]struct{}, error) {
	return s.ExistingIDsFn(ctx, ids)
}

func (s *stubProductRepo) Update(ctx context.Context, product *entity.Product) error {
	return s.UpdateFn(ctx, product)
}

func (s *stubProductRepo) Delete(ctx context.Context, id uint) error {
	return s.DeleteFn(ctx, id)
}

type stubOrderRepo struct {
	CreateFn       func(ctx context.Context, order *entity.Order, productIDs []uint) error
	FindByIDFn     func(ctx context.Context, id uint, userID uint) (*entity.Order, error)
	FindByUserFn   func(ctx context.Context, userID uint) ([]entity.Order, error)
	ItemProductsFn func(ctx context.Context, orderID uint) ([]entity.Product, error)
}

func (s *stubOrderRepo) Create(ctx context.Context, order *entity.Order, productIDs []uint) error {
	return s.CreateFn(ctx, order, productIDs)
}

func (s *stubOrderRepo) FindByID(ctx context.Context, id uint, userID uint) (*entity.Order, error) {
	return s.FindByIDFn(ctx, id, userID)
}

func (s *stubOrderRepo) FindByUser(ctx context.Context, userID uint) ([]entity.Order, error) {
	return s.FindByUserFn(ctx, userID)
}

func (s *stubOrderRepo) ItemProducts(ctx context.Context, orderID uint) ([]entity.Product, error) {
	return s.ItemProductsFn(ctx, orderID)
}

// stubTxManager runs the unit of work against a fixed factory without any
// real transaction.
type stubTxManager struct {
	factory repository.RepositoryFactory
	err     error
}

func (s *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if s.err != nil {
		return s.err
	}

	return fn(s.factory)
}

type stubRepoFactory struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

func (s *stubRepoFactory) OrderRepo() repository.OrderRepository     { return s.orderRepo }
func (s *stubRepoFactory) ProductRepo() repository.ProductRepository { return s.productRepo }
func (s *stubRepoFactory) UserRepo() repository.UserRepository       { return s.userRepo }

// fakeHasher makes hashes recognizable in assertions without bcrypt cost.
type fakeHasher struct {
	hashErr error
}

func (f *fakeHasher) Hash(password string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}

	return "hashed:" + password, nil
}

func (f *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// fakeImageStore records saves and removals in memory.
type fakeImageStore struct {
	saved   []string
	removed []string
	saveErr error
}

func (f *fakeImageStore) Save(_ uint, originalName string, _ io.Reader) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	stored := "stored_" + originalName
	f.saved = append(f.saved, stored)

	return stored, nil
}

func (f *fakeImageStore) Remove(storedName string) error {
	f.removed = append(f.removed, storedName)

	return nil
}
