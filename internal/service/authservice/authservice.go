package authservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/GlebRadaev/ecomarket/internal/domain"
	"github.com/GlebRadaev/ecomarket/internal/pg"
	"github.com/GlebRadaev/ecomarket/internal/service/ledgerservice"
	"github.com/GlebRadaev/ecomarket/pkg/auth"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const uniqueViolation = "23505"

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type Repo interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateCredentials(ctx context.Context, id int, passwordHash string, role domain.Role) error
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type Ledger interface {
	AwardRegistration(ctx context.Context, userID int) (int64, bool, error)
	AwardDailyLogin(ctx context.Context, userID int, now time.Time) (int64, bool, error)
}

type Service struct {
	userRepo    Repo
	ledger      Ledger
	txManager   pg.TXManager
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	tokenTTL    time.Duration
	now         func() time.Time
}

func New(repo Repo, ledger Ledger, txManager pg.TXManager, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo:    repo,
		ledger:      ledger,
		txManager:   txManager,
		hashService: hashService,
		jwtService:  jwtService,
		tokenTTL:    tokenTTL,
		now:         time.Now,
	}
}

// Register creates a regular user and credits the registration bonus in the
// same transaction.
func (s *Service) Register(ctx context.Context, user *domain.User, password string) (*domain.User, *domain.Award, error) {
	user.Username = strings.TrimSpace(user.Username)
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	existingUser, err := s.userRepo.FindByUsername(ctx, user.Username)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("username", user.Username))
		return nil, nil, ErrUsernameTaken
	}
	existingUser, err = s.userRepo.FindByEmail(ctx, user.Email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, nil, err
	}
	if existingUser != nil {
		return nil, nil, ErrEmailTaken
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, nil, err
	}
	user.PasswordHash = hashedPassword
	user.Role = domain.RoleUser

	var award *domain.Award
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		newUser, err := s.userRepo.Create(ctx, user)
		if err != nil {
			return uniqueError(err)
		}
		balance, applied, err := s.ledger.AwardRegistration(ctx, newUser.ID)
		if err != nil {
			return err
		}
		if applied {
			award = &domain.Award{Points: ledgerservice.RegistrationPoints, Balance: balance}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't register user: ", zap.String("username", user.Username), zap.Error(err))
		return nil, nil, err
	}

	zap.L().Info("user successfully registered", zap.String("username", user.Username))
	return user, award, nil
}

// Authenticate checks the password and credits the daily login bonus on the
// first successful login of the UTC day.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.User, *domain.Award, error) {
	user, err := s.userRepo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, nil, err
	}
	if user == nil || !s.hashService.ComparePassword(user.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("username", username))
		return nil, nil, ErrInvalidCredentials
	}

	balance, applied, err := s.ledger.AwardDailyLogin(ctx, user.ID, s.now())
	if err != nil {
		zap.L().Error("can't award daily login: ", zap.Int("user_id", user.ID), zap.Error(err))
		return nil, nil, err
	}

	var award *domain.Award
	if applied {
		award = &domain.Award{Points: ledgerservice.DailyLoginPoints, Balance: balance}
	}
	zap.L().Info("user successfully authenticated", zap.String("username", username))
	return user, award, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	expirationTime := s.now().Add(s.tokenTTL)

	token, err := s.jwtService.GenerateJWT(user.ID, string(user.Role), expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

// EnsureAdmin creates the bootstrap administrator, or resets its password
// and role when the account already exists.
func (s *Service) EnsureAdmin(ctx context.Context, username, email, password string) (*domain.User, error) {
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user != nil {
		if err := s.userRepo.UpdateCredentials(ctx, user.ID, hashedPassword, domain.RoleAdmin); err != nil {
			return nil, err
		}
		user.PasswordHash = hashedPassword
		user.Role = domain.RoleAdmin
		zap.L().Info("administrator credentials reset", zap.String("username", username))
		return user, nil
	}

	user, err = s.userRepo.Create(ctx, &domain.User{
		Username:     username,
		Email:        strings.ToLower(email),
		PasswordHash: hashedPassword,
		Role:         domain.RoleAdmin,
	})
	if err != nil {
		return nil, uniqueError(err)
	}
	zap.L().Info("administrator created", zap.String("username", username))
	return user, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *Service) GetUser(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateUser overwrites the profile of an existing user. The password is
// re-hashed only when a new one is given; the role never changes here.
func (s *Service) UpdateUser(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	user.FirstName = strings.TrimSpace(user.FirstName)
	user.LastName = strings.TrimSpace(user.LastName)
	user.Username = strings.TrimSpace(user.Username)
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	if _, err := s.GetUser(ctx, user.ID); err != nil {
		return nil, err
	}

	existingUser, err := s.userRepo.FindByUsername(ctx, user.Username)
	if err != nil {
		return nil, err
	}
	if existingUser != nil && existingUser.ID != user.ID {
		return nil, ErrUsernameTaken
	}
	existingUser, err = s.userRepo.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil && existingUser.ID != user.ID {
		return nil, ErrEmailTaken
	}

	user.PasswordHash = ""
	if password != "" {
		hashedPassword, err := s.hashService.HashPassword(password)
		if err != nil {
			zap.L().Error("can't hash password: ", zap.Error(err))
			return nil, err
		}
		user.PasswordHash = hashedPassword
	}

	updated, err := s.userRepo.Update(ctx, user)
	if err != nil {
		return nil, uniqueError(err)
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}
	zap.L().Info("user updated", zap.Int("user_id", updated.ID))
	return updated, nil
}

// DeleteUser removes the account together with its balance, history,
// redemptions and requests.
func (s *Service) DeleteUser(ctx context.Context, id int) error {
	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	zap.L().Info("user deleted", zap.Int("user_id", id))
	return nil
}

// uniqueError maps a unique constraint race on users to the matching sentinel.
func uniqueError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return err
	}
	if strings.Contains(pgErr.ConstraintName, "email") {
		return ErrEmailTaken
	}
	return ErrUsernameTaken
}
