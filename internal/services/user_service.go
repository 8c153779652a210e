package services

import (
	"errors"
	"time"

	"github.com/adamingor/dodo-pizza-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// verificationCodeTTL bounds how long a password reset token stays usable.
const verificationCodeTTL = time.Hour

type UserService interface {
	// Register creates a password account. Duplicate emails fail with
	// models.ErrEmailExists.
	Register(name, email, password string) (*models.User, error)
	// Authenticate checks email/password credentials. Accounts without a
	// password (Google-only) fail with models.ErrNoPasswordSet.
	Authenticate(email, password string) (*models.User, error)
	// FindOrCreateGoogleUser returns the account matching a verified Google
	// identity, creating a password-less one on first sign-in.
	FindOrCreateGoogleUser(googleID, email, name string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	// EmailTaken reports whether an account with this email exists.
	EmailTaken(email string) (bool, error)
	// CreateVerificationCode issues a persisted single-use reset token for
	// the account with this email.
	CreateVerificationCode(email string) (*models.VerificationCode, error)
	// ResetPassword consumes a reset token and stores the new password hash.
	ResetPassword(token, newPassword string) error
}

type userService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) Register(name, email, password string) (*models.User, error) {
	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, models.ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &models.User{Name: name, Email: email}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserMissing
		}
		return nil, err
	}
	if user.Password == nil {
		return nil, models.ErrNoPasswordSet
	}
	if !user.CheckPassword(password) {
		return nil, models.ErrWrongPassword
	}
	return &user, nil
}

func (s *userService) FindOrCreateGoogleUser(googleID, email, name string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{Name: name, Email: email, GoogleID: &googleID}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) EmailTaken(email string) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *userService) CreateVerificationCode(email string) (*models.VerificationCode, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserMissing
		}
		return nil, err
	}

	code := &models.VerificationCode{
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().Add(verificationCodeTTL),
		UserID:    user.ID,
	}
	if err := s.db.Create(code).Error; err != nil {
		return nil, err
	}
	return code, nil
}

func (s *userService) ResetPassword(token, newPassword string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var code models.VerificationCode
		if err := tx.Where("token = ?", token).First(&code).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrBadResetToken
			}
			return err
		}
		if time.Now().After(code.ExpiresAt) {
			return models.ErrResetTokenExpired
		}

		var user models.User
		if err := tx.First(&user, code.UserID).Error; err != nil {
			return err
		}
		if err := user.SetPassword(newPassword); err != nil {
			return err
		}
		if err := tx.Model(&user).Update("password", user.Password).Error; err != nil {
			return err
		}
		// a consumed token cannot be replayed
		return tx.Delete(&code).Error
	})
}
