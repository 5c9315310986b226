package auth

import (
	"errors"

	"roost-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// LoginInput for login request body.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionUserShape is the object stored in session and returned by /me.
type SessionUserShape struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserFinder abstracts user lookup by username+password (production GORM or
// test doubles).
type UserFinder interface {
	FindByUsernameAndPassword(username, password string) (*models.User, error)
}

// GormUserFinder implements UserFinder using GORM and bcrypt.
type GormUserFinder struct{ DB *gorm.DB }

func (g *GormUserFinder) FindByUsernameAndPassword(username, password string) (*models.User, error) {
	return LoginUser(g.DB, LoginInput{Username: username, Password: password})
}

// LoginUser finds the user by username and verifies the password.
func LoginUser(db *gorm.DB, input LoginInput) (*models.User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, ErrUsernamePasswordRequired
	}
	var u models.User
	if err := db.Where("username = ?", input.Username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidUsername
		}
		return nil, err
	}
	if u.PasswordHash == "" {
		return nil, ErrInvalidUsername
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrIncorrectPassword
	}
	return &u, nil
}

// VerifyUser validates the session user and returns the shape for /me.
func VerifyUser(sessionUser interface{}) (*SessionUserShape, error) {
	if sessionUser == nil {
		return nil, ErrNotAuthenticated
	}
	m, ok := sessionUser.(map[string]interface{})
	if !ok {
		return nil, ErrNotAuthenticated
	}
	userID, _ := m["user_id"].(string)
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	return &SessionUserShape{
		UserID:   userID,
		Username: str(m["username"]),
		Email:    str(m["email"]),
	}, nil
}

func str(v interface{}) string {
	s, _ := v.(string)
	return s
}
