package services

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dkarpov/hirehub/internal/apperr"
	"github.com/dkarpov/hirehub/internal/dtos"
	"github.com/dkarpov/hirehub/internal/models"
)

const bcryptCost = 10

type AccountService struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

func NewAccountService(db *gorm.DB, logger *zap.Logger) *AccountService {
	return &AccountService{DB: db, Logger: logger}
}

// Register creates the account and hashes the credential. Duplicate emails
// are not pre-checked: the unique index reports the conflict atomically, so
// two concurrent registrations for the same address cannot both win.
func (s *AccountService) Register(req *dtos.RegisterRequest) (*models.Account, error) {
	role := models.Role(req.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("%w: role must be seeker or employer", apperr.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	account := &models.Account{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.DB.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email is already registered", apperr.ErrConflict)
		}
		return nil, fmt.Errorf("creating account: %w", err)
	}

	s.Logger.Info("account registered",
		zap.Uint("account_id", account.ID),
		zap.String("role", string(role)),
	)
	return account, nil
}

// Authenticate looks the account up by email and checks the credential.
// The two failure cases stay distinct here for logging, but callers must
// render them with identical wording to resist account enumeration.
func (s *AccountService) Authenticate(email, password string) (*models.Account, error) {
	var account models.Account
	err := s.DB.Where("email = ?", email).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no account for email", apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("looking up account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, fmt.Errorf("%w: wrong password", apperr.ErrUnauthorized)
	}

	return &account, nil
}

func (s *AccountService) GetByID(id uint) (*models.Account, error) {
	var account models.Account
	err := s.DB.First(&account, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: account %d", apperr.ErrNotFound, id)
		}
		return nil, fmt.Errorf("looking up account: %w", err)
	}
	return &account, nil
}

// UpdateProfile applies a partial self-edit. Only submitted fields change,
// the role never does, and avatarPath replaces the stored reference only
// when a new file was actually uploaded.
func (s *AccountService) UpdateProfile(id uint, req *dtos.UpdateProfileRequest, avatarPath string) (*models.Account, error) {
	account, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	setIfPresent := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	setIfPresent(&account.Name, req.Name)
	setIfPresent(&account.Phone, req.Phone)
	setIfPresent(&account.Location, req.Location)
	setIfPresent(&account.Bio, req.Bio)

	switch account.Role {
	case models.RoleSeeker:
		setIfPresent(&account.Skills, req.Skills)
		setIfPresent(&account.Experience, req.Experience)
	case models.RoleEmployer:
		setIfPresent(&account.CompanyName, req.CompanyName)
		setIfPresent(&account.CompanyDescription, req.CompanyDescription)
		setIfPresent(&account.Website, req.Website)
	}

	if avatarPath != "" {
		account.Avatar = avatarPath
	}

	if err := s.DB.Save(account).Error; err != nil {
		return nil, fmt.Errorf("saving profile: %w", err)
	}
	return account, nil
}
