package accounts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	userRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/users"
	"github.com/m04kA/SMC-GarageService/internal/service/accounts/models"
	"github.com/m04kA/SMC-GarageService/pkg/ptr"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	byID    map[int64]*domain.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[int64]*domain.User),
		nextID:  1,
	}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	user.ID = f.nextID
	f.nextID++
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return user, nil
}

type fakeMechanicRepo struct {
	created []*domain.Mechanic
	nextID  int64
}

func (f *fakeMechanicRepo) Create(_ context.Context, mechanic *domain.Mechanic) (*domain.Mechanic, error) {
	f.nextID++
	mechanic.ID = f.nextID
	f.created = append(f.created, mechanic)
	return mechanic, nil
}

func (f *fakeMechanicRepo) GetByID(_ context.Context, _ int64) (*domain.Mechanic, error) {
	return nil, nil
}

func (f *fakeMechanicRepo) List(_ context.Context) ([]*domain.Mechanic, error) {
	return f.created, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(users *fakeUserRepo, mechanics *fakeMechanicRepo) *Service {
	return NewService(users, mechanics, &fakeTxManager{}, nopLogger{})
}

func TestRegisterUser_HashesPasswordAndNormalizesEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestService(users, &fakeMechanicRepo{})

	resp, err := svc.RegisterUser(context.Background(), &models.RegisterUserRequest{
		Name:     "Ivan",
		Surname:  "Petrov",
		Email:    "  Ivan@Example.COM ",
		Phone:    ptr.Ptr("+79001234567"),
		Password: "supersecret",
		Role:     "client",
	})

	require.NoError(t, err)
	assert.Equal(t, "ivan@example.com", resp.Email)
	assert.Equal(t, "client", resp.Role)
	require.NotNil(t, resp.Phone)
	assert.Equal(t, "+79001234567", *resp.Phone)

	stored := users.byEmail["ivan@example.com"]
	require.NotNil(t, stored)
	// Пароль хранится только в виде bcrypt-хеша
	assert.NotEqual(t, "supersecret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("supersecret")))
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestService(users, &fakeMechanicRepo{})

	req := &models.RegisterUserRequest{
		Name:     "Ivan",
		Email:    "ivan@example.com",
		Password: "supersecret",
		Role:     "client",
	}

	_, err := svc.RegisterUser(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.RegisterUser(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterUser_Validation(t *testing.T) {
	svc := newTestService(newFakeUserRepo(), &fakeMechanicRepo{})

	tests := []struct {
		name string
		req  models.RegisterUserRequest
	}{
		{name: "unknown role", req: models.RegisterUserRequest{Name: "A", Email: "a@b.c", Password: "supersecret", Role: "admin"}},
		{name: "short password", req: models.RegisterUserRequest{Name: "A", Email: "a@b.c", Password: "short", Role: "client"}},
		{name: "bad email", req: models.RegisterUserRequest{Name: "A", Email: "nomail", Password: "supersecret", Role: "client"}},
		{name: "empty name", req: models.RegisterUserRequest{Name: "  ", Email: "a@b.c", Password: "supersecret", Role: "client"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRegisterMechanic_CreatesUserAndGarage(t *testing.T) {
	users := newFakeUserRepo()
	mechanics := &fakeMechanicRepo{}
	svc := newTestService(users, mechanics)

	resp, err := svc.RegisterMechanic(context.Background(), &models.RegisterMechanicRequest{
		Name:       "Sergey",
		Surname:    "Volkov",
		Email:      "sergey@garage.ru",
		Password:   "supersecret",
		GarageName: "Volkov Motors",
		Address:    "ул. Ленина, 1",
		City:       "Москва",
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.RoleMechanic), resp.User.Role)
	assert.Equal(t, resp.User.ID, resp.Mechanic.UserID)
	assert.Equal(t, "Volkov Motors", resp.Mechanic.Name)
	require.Len(t, mechanics.created, 1)
}

func TestCreateMechanicProfile_RejectsClientRole(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestService(users, &fakeMechanicRepo{})

	_, err := svc.RegisterUser(context.Background(), &models.RegisterUserRequest{
		Name:     "Ivan",
		Email:    "ivan@example.com",
		Password: "supersecret",
		Role:     "client",
	})
	require.NoError(t, err)

	_, err = svc.CreateMechanicProfile(context.Background(), &models.CreateMechanicProfileRequest{
		UserID: 1,
		Name:   "Garage",
	})

	assert.ErrorIs(t, err, ErrNotMechanic)
}

func TestCreateMechanicProfile_UserNotFound(t *testing.T) {
	svc := newTestService(newFakeUserRepo(), &fakeMechanicRepo{})

	_, err := svc.CreateMechanicProfile(context.Background(), &models.CreateMechanicProfileRequest{
		UserID: 99,
		Name:   "Garage",
	})

	assert.ErrorIs(t, err, ErrUserNotFound)
}
