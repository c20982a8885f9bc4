package usecase

import (
	"context"
	"errors"
	"sync"

	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/internal/domain/entity"
	"go-clinic-management/internal/domain/repository"
	"go-clinic-management/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidSession     = errors.New("invalid or revoked session")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*jwt.Claims, error)
	EnsureDefaultUser(ctx context.Context, username, password string) error
}

type authUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	jwtService  *jwt.JWTService

	dummyOnce sync.Once
	dummyHash []byte
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	jwtService *jwt.JWTService,
) AuthUsecase {
	return &authUsecase{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
	}
}

// Login answers ErrInvalidCredentials for an unknown username and for a wrong
// password alike. Unknown usernames still pay for a bcrypt comparison.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	// Find user by username (read-only, no transaction needed)
	user, err := u.userRepo.FindByUsername(ctx, u.db, req.Username)
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, err
	}

	if user == nil {
		_ = bcrypt.CompareHashAndPassword(u.dummyPasswordHash(), []byte(req.Password))
		return nil, ErrInvalidCredentials
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, tokenID, err := u.jwtService.GenerateSessionToken(user.ID, user.Username)
	if err != nil {
		u.log.Warnf("Failed to generate session token: %+v", err)
		return nil, err
	}

	if err := u.sessionRepo.Save(ctx, user.ID, tokenID, u.jwtService.GetSessionTTL()); err != nil {
		u.log.Warnf("Failed to store session: %+v", err)
		return nil, err
	}

	u.log.WithField("user_id", user.ID).Info("User logged in")

	return &dto.SessionResponse{
		Token:     token,
		UserID:    user.ID,
		Username:  user.Username,
		ExpiresIn: u.jwtService.GetSessionTTL(),
	}, nil
}

// Logout revokes the token when it is still valid. Invalid tokens are ignored,
// there is nothing left to revoke.
func (u *authUsecase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	claims, err := u.jwtService.ValidateToken(token)
	if err != nil {
		return nil
	}

	if err := u.sessionRepo.Delete(ctx, claims.UserID, claims.TokenID); err != nil {
		u.log.Warnf("Failed to delete session: %+v", err)
		return err
	}

	u.log.WithField("user_id", claims.UserID).Info("User logged out")
	return nil
}

// Authenticate checks the token signature and that it has not been revoked
func (u *authUsecase) Authenticate(ctx context.Context, token string) (*jwt.Claims, error) {
	claims, err := u.jwtService.ValidateToken(token)
	if err != nil {
		return nil, ErrInvalidSession
	}

	exists, err := u.sessionRepo.Exists(ctx, claims.UserID, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to check session: %+v", err)
		return nil, err
	}
	if !exists {
		return nil, ErrInvalidSession
	}

	return claims, nil
}

// EnsureDefaultUser seeds the staff account when it does not exist yet
func (u *authUsecase) EnsureDefaultUser(ctx context.Context, username, password string) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByUsername(ctx, tx, username)
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return err
	}
	if user != nil {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return err
	}

	user = &entity.User{
		Username: username,
		Password: string(hashedPassword),
	}
	if err := u.userRepo.Create(ctx, tx, user); err != nil {
		u.log.Warnf("Failed to create user: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.WithField("username", username).Info("Default user created")
	return nil
}

func (u *authUsecase) dummyPasswordHash() []byte {
	u.dummyOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
		if err == nil {
			u.dummyHash = hash
		}
	})
	return u.dummyHash
}
