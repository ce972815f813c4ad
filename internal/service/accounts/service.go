package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	mechanicRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/mechanics"
	userRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/users"
	"github.com/m04kA/SMC-GarageService/internal/service/accounts/models"
)

const minPasswordLength = 8

// Service сервис для работы с аккаунтами и профилями гаражей
type Service struct {
	userRepo     UserRepository
	mechanicRepo MechanicRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса аккаунтов
func NewService(
	userRepo UserRepository,
	mechanicRepo MechanicRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		userRepo:     userRepo,
		mechanicRepo: mechanicRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// RegisterUser регистрирует нового пользователя (клиента или механика)
func (s *Service) RegisterUser(ctx context.Context, req *models.RegisterUserRequest) (*models.UserResponse, error) {
	s.logger.Info("RegisterUser: registering user email=%s, role=%s", req.Email, req.Role)

	role, err := validateUserInput(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		s.logger.Warn("RegisterUser: validation failed for email=%s: %v", req.Email, err)
		return nil, err
	}

	user, err := s.createUser(ctx, &domain.User{
		Name:    strings.TrimSpace(req.Name),
		Surname: strings.TrimSpace(req.Surname),
		Email:   normalizeEmail(req.Email),
		Phone:   req.Phone,
		Role:    role,
	}, req.Password)
	if err != nil {
		return nil, err
	}

	s.logger.Info("RegisterUser: registered user id=%d, email=%s", user.ID, user.Email)
	return models.FromDomainUser(user), nil
}

// RegisterMechanic регистрирует механика вместе с профилем гаража
// Пользователь и гараж создаются в одной транзакции
func (s *Service) RegisterMechanic(ctx context.Context, req *models.RegisterMechanicRequest) (*models.RegisterMechanicResponse, error) {
	s.logger.Info("RegisterMechanic: registering mechanic email=%s, garage=%s", req.Email, req.GarageName)

	if _, err := validateUserInput(req.Name, req.Email, req.Password, string(domain.RoleMechanic)); err != nil {
		s.logger.Warn("RegisterMechanic: validation failed for email=%s: %v", req.Email, err)
		return nil, err
	}
	if strings.TrimSpace(req.GarageName) == "" {
		return nil, fmt.Errorf("%w: garage name is required", ErrInvalidInput)
	}

	var (
		user     *domain.User
		mechanic *domain.Mechanic
	)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error

		user, err = s.createUser(txCtx, &domain.User{
			Name:    strings.TrimSpace(req.Name),
			Surname: strings.TrimSpace(req.Surname),
			Email:   normalizeEmail(req.Email),
			Phone:   req.Phone,
			Role:    domain.RoleMechanic,
		}, req.Password)
		if err != nil {
			return err
		}

		mechanic, err = s.mechanicRepo.Create(txCtx, &domain.Mechanic{
			UserID:  user.ID,
			Name:    strings.TrimSpace(req.GarageName),
			Address: req.Address,
			City:    req.City,
		})
		if err != nil {
			return fmt.Errorf("%w: RegisterMechanic - create mechanic: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrEmailTaken) && !errors.Is(err, ErrInvalidInput) {
			s.logger.Error("RegisterMechanic: transaction failed for email=%s: %v", req.Email, err)
		}
		return nil, err
	}

	s.logger.Info("RegisterMechanic: registered mechanic id=%d (user id=%d)", mechanic.ID, user.ID)
	return &models.RegisterMechanicResponse{
		User:     *models.FromDomainUser(user),
		Mechanic: *models.FromDomainMechanic(mechanic),
	}, nil
}

// CreateMechanicProfile создает профиль гаража для существующего
// пользователя с ролью механика
func (s *Service) CreateMechanicProfile(ctx context.Context, req *models.CreateMechanicProfileRequest) (*models.MechanicResponse, error) {
	s.logger.Info("CreateMechanicProfile: creating profile for user=%d", req.UserID)

	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: garage name is required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("CreateMechanicProfile: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("CreateMechanicProfile: repository error for user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: CreateMechanicProfile - repository error: %v", ErrInternal, err)
	}

	if !user.IsMechanic() {
		s.logger.Warn("CreateMechanicProfile: user id=%d has role %s", user.ID, user.Role)
		return nil, ErrNotMechanic
	}

	mechanic, err := s.mechanicRepo.Create(ctx, &domain.Mechanic{
		UserID:  user.ID,
		Name:    strings.TrimSpace(req.Name),
		Address: req.Address,
		City:    req.City,
	})
	if err != nil {
		s.logger.Error("CreateMechanicProfile: failed to create profile for user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: CreateMechanicProfile - create mechanic: %v", ErrInternal, err)
	}

	s.logger.Info("CreateMechanicProfile: created mechanic id=%d for user id=%d", mechanic.ID, user.ID)
	return models.FromDomainMechanic(mechanic), nil
}

// GetMechanic получает профиль гаража по ID
func (s *Service) GetMechanic(ctx context.Context, id int64) (*models.MechanicResponse, error) {
	s.logger.Info("GetMechanic: fetching mechanic id=%d", id)

	mechanic, err := s.mechanicRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mechanicRepo.ErrMechanicNotFound) {
			s.logger.Warn("GetMechanic: mechanic id=%d not found", id)
			return nil, ErrMechanicNotFound
		}
		s.logger.Error("GetMechanic: repository error for mechanic id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetMechanic - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainMechanic(mechanic), nil
}

// ListMechanics получает все профили гаражей, отсортированные по рейтингу
func (s *Service) ListMechanics(ctx context.Context) (*models.MechanicListResponse, error) {
	s.logger.Info("ListMechanics: fetching mechanics")

	mechanics, err := s.mechanicRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListMechanics: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListMechanics - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListMechanics: fetched %d mechanics", len(mechanics))
	return models.FromDomainMechanicList(mechanics), nil
}

// createUser хеширует пароль и создает пользователя с проверкой
// уникальности email
func (s *Service) createUser(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	_, err := s.userRepo.GetByEmail(ctx, user.Email)
	if err == nil {
		s.logger.Warn("createUser: email=%s already registered", user.Email)
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		s.logger.Error("createUser: failed to check email=%s: %v", user.Email, err)
		return nil, fmt.Errorf("%w: createUser - check email: %v", ErrInternal, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("createUser: failed to hash password for email=%s: %v", user.Email, err)
		return nil, fmt.Errorf("%w: createUser - hash password: %v", ErrInternal, err)
	}
	user.PasswordHash = string(hash)

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		s.logger.Error("createUser: failed to create user email=%s: %v", user.Email, err)
		return nil, fmt.Errorf("%w: createUser - create user: %v", ErrInternal, err)
	}

	return created, nil
}

func validateUserInput(name, email, password, role string) (domain.UserRole, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return "", fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return "", fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	switch domain.UserRole(role) {
	case domain.RoleClient:
		return domain.RoleClient, nil
	case domain.RoleMechanic:
		return domain.RoleMechanic, nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
