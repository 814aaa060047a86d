package service

import (
	"context"
	"time"

	"gestion-api/core/config"
	"gestion-api/core/errors"
	"gestion-api/core/logger"
	"gestion-api/core/utils"
	"gestion-api/modules/auth/dto"
	"gestion-api/modules/auth/entity"
	"gestion-api/modules/auth/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles authentication business logic
type AuthService struct {
	repo repository.UserRepositoryInterface
	cfg  *config.Config
}

// AuthServiceInterface defines the service contract
type AuthServiceInterface interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError)
	ChangePassword(ctx context.Context, userID uuid.UUID, req *dto.ChangePasswordRequest) *errors.AppError
	EnsureDefaultAdmin(ctx context.Context) error
}

// NewAuthService creates a new auth service
func NewAuthService(repo repository.UserRepositoryInterface, cfg *config.Config) AuthServiceInterface {
	return &AuthService{repo: repo, cfg: cfg}
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError) {
	if req.Username == "" || req.Password == "" {
		return nil, errors.NewAppError(errors.ErrValidation, "Identifiant et mot de passe obligatoires", nil)
	}

	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Lecture de l'utilisateur impossible", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Identifiants invalides", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Identifiants invalides", nil)
	}

	token, err := utils.GenerateToken(s.cfg, user.ID, user.Username, user.Role)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Génération du token impossible", err)
	}

	now := time.Now()
	if err := s.repo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		logger.Warn("AuthService:Login last login not recorded", "error", err)
	}
	user.DerniereConnexion = &now

	return &dto.LoginResponse{Token: token, User: *user}, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req *dto.ChangePasswordRequest) *errors.AppError {
	if len(req.NewPassword) < 8 {
		return errors.NewAppError(errors.ErrValidation, "Le nouveau mot de passe doit faire au moins 8 caractères", nil)
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Lecture de l'utilisateur impossible", err)
	}
	if user == nil {
		return errors.NewAppError(errors.ErrNotFound, "Utilisateur introuvable", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return errors.NewAppError(errors.ErrUnauthorized, "Mot de passe actuel invalide", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Hachage du mot de passe impossible", err)
	}

	if err := s.repo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Mise à jour du mot de passe impossible", err)
	}
	return nil
}

// EnsureDefaultAdmin seeds an admin/admin account on an empty users table so
// a fresh install can log in. The password must be changed afterwards.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if _, err := s.repo.Create(ctx, &entity.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         "admin",
	}); err != nil {
		return err
	}

	logger.Warn("Default admin account created, change its password")
	return nil
}
