package service

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"funkdesk/backend/internal/dto"
	"funkdesk/backend/internal/model"
	"funkdesk/backend/internal/repository"
)

// ── user business errors ──

var (
	ErrUserNotFound   = errors.New("Benutzer nicht gefunden.")
	ErrUserNameTaken  = errors.New("Der Benutzername ist bereits vergeben.")
	ErrRoleInvalid    = errors.New("Ungültige Rolle.")
	ErrSelfDeletion   = errors.New("Sie können Ihr eigenes Konto nicht löschen.")
	ErrNotManagement  = errors.New("Nicht autorisiert. Nur Management-Benutzer können Benutzer verwalten.")
)

// UserService administers dashboard accounts. Every operation is gated on
// the users:manage policy.
type UserService interface {
	List(ctx context.Context, principal Principal) ([]dto.UserResponse, error)
	Create(ctx context.Context, principal Principal, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	ChangeRole(ctx context.Context, principal Principal, userID, role string) (*dto.UserResponse, error)
	Delete(ctx context.Context, principal Principal, userID string) error
	// ResetPassword generates a random password, stores its hash and
	// returns the cleartext exactly once.
	ResetPassword(ctx context.Context, principal Principal, userID string) (*dto.ResetPasswordResponse, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService creates the UserService.
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *userService) List(ctx context.Context, principal Principal) ([]dto.UserResponse, error) {
	if !Allowed(OpManageUsers, principal.Role) {
		return nil, ErrNotManagement
	}

	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("listing users failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, *toUserResponse(&users[i]))
	}
	return result, nil
}

// ────────────────────── Create ──────────────────────

func (s *userService) Create(ctx context.Context, principal Principal, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !Allowed(OpManageUsers, principal.Role) {
		return nil, ErrNotManagement
	}
	if !model.ValidRole(req.Role) {
		return nil, ErrRoleInvalid
	}

	if _, err := s.repo.User.GetByName(ctx, req.Username); err == nil {
		return nil, ErrUserNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("checking username failed", zap.Error(err))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hashing password failed", zap.Error(err))
		return nil, err
	}

	user := &model.User{
		Name:         req.Username,
		PasswordHash: string(hash),
		Role:         req.Role,
	}
	user.CreatedBy = &principal.UserID
	user.UpdatedBy = &principal.UserID

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("creating user failed", zap.Error(err))
		return nil, err
	}

	return toUserResponse(user), nil
}

// ────────────────────── ChangeRole ──────────────────────

func (s *userService) ChangeRole(ctx context.Context, principal Principal, userID, role string) (*dto.UserResponse, error) {
	if !Allowed(OpManageUsers, principal.Role) {
		return nil, ErrNotManagement
	}
	if !model.ValidRole(role) {
		return nil, ErrRoleInvalid
	}

	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("looking up user failed", zap.String("id", userID), zap.Error(err))
		return nil, err
	}

	user.Role = role
	user.UpdatedBy = &principal.UserID

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("updating user role failed", zap.String("id", userID), zap.Error(err))
		return nil, err
	}

	return toUserResponse(user), nil
}

// ────────────────────── Delete ──────────────────────

func (s *userService) Delete(ctx context.Context, principal Principal, userID string) error {
	if !Allowed(OpManageUsers, principal.Role) {
		return ErrNotManagement
	}
	if userID == principal.UserID {
		return ErrSelfDeletion
	}

	if _, err := s.repo.User.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("looking up user failed", zap.String("id", userID), zap.Error(err))
		return err
	}

	if err := s.repo.User.Delete(ctx, userID, principal.UserID); err != nil {
		s.logger.Error("deleting user failed", zap.String("id", userID), zap.Error(err))
		return err
	}

	return nil
}

// ────────────────────── ResetPassword ──────────────────────

const passwordCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
const generatedPasswordLen = 16

func (s *userService) ResetPassword(ctx context.Context, principal Principal, userID string) (*dto.ResetPasswordResponse, error) {
	if !Allowed(OpManageUsers, principal.Role) {
		return nil, ErrNotManagement
	}

	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("looking up user failed", zap.String("id", userID), zap.Error(err))
		return nil, err
	}

	password, err := generatePassword(generatedPasswordLen)
	if err != nil {
		s.logger.Error("generating password failed", zap.Error(err))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hashing password failed", zap.Error(err))
		return nil, err
	}

	user.PasswordHash = string(hash)
	user.UpdatedBy = &principal.UserID

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("storing reset password failed", zap.String("id", userID), zap.Error(err))
		return nil, err
	}

	return &dto.ResetPasswordResponse{Password: password}, nil
}

// ── helpers ──

func generatePassword(n int) (string, error) {
	buf := make([]byte, n)
	max := big.NewInt(int64(len(passwordCharset)))
	for i := range buf {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = passwordCharset[idx.Int64()]
	}
	return string(buf), nil
}

func toUserResponse(u *model.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.UserID,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
