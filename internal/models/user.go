package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is a storefront account. Password is nil for accounts created through
// Google sign-in; GoogleID is nil for password accounts.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  *string   `json:"-"`
	GoogleID  *string   `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SetPassword hashes the plain text password with bcrypt and stores the hash.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	hashed := string(hash)
	u.Password = &hashed
	return nil
}

// CheckPassword reports whether plain matches the stored hash. It is false
// for accounts that have no password at all (Google-only accounts).
func (u *User) CheckPassword(plain string) bool {
	if u.Password == nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(*u.Password), []byte(plain)) == nil
}

// VerificationCode is a single-use password reset token with an expiry.
type VerificationCode struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Token     string    `gorm:"not null;index" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	UserID    uint      `gorm:"not null" json:"userId"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
