package service

import (
	"strings"
	"time"

	"bioanalytica/database"
	"bioanalytica/database/model"
	"bioanalytica/logger"
	"bioanalytica/util/crypto"

	"gorm.io/gorm"
)

const defaultRole = "researcher"

// Researcher is one row of the public researcher directory, a user joined
// with the number of samples they own.
type Researcher struct {
	Id          int       `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	SampleCount int       `json:"sample_count"`
}

// UserService implements registration, credential checks and the researcher
// directory over the users table.
type UserService struct{}

// Register validates and persists a new user with a bcrypt password hash.
// Reusing an existing username or email fails with ErrDuplicate.
func (s *UserService) Register(username, email, password, role string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, ErrValidation
	}
	if role == "" {
		role = defaultRole
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	err = database.GetDB().Create(user).Error
	if database.IsDuplicate(err) {
		return nil, ErrDuplicate
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

// Login finds the user by email and verifies the password. A missing account
// and a wrong password both fail with ErrAuth so the response does not reveal
// which of the two it was.
func (s *UserService) Login(email, password string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("email = ?", email).
		First(user).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrAuth
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil, err
	}

	if !crypto.CheckPasswordHash(user.PasswordHash, password) {
		return nil, ErrAuth
	}

	return user, nil
}

// ListResearchers returns every registered user together with their sample
// count, newest registration first.
func (s *UserService) ListResearchers() ([]Researcher, error) {
	researchers := make([]Researcher, 0)
	err := database.GetDB().
		Model(model.User{}).
		Select("id, username, email, role, created_at, (SELECT COUNT(*) FROM samples WHERE samples.user_id = users.id) AS sample_count").
		Order("created_at DESC").
		Scan(&researchers).
		Error
	if err != nil {
		return nil, err
	}
	return researchers, nil
}
