package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/crypto/argon2"
	"gorm.io/gorm"

	"quoteurl/config"
	"quoteurl/db"
	"quoteurl/models"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type IdentityService struct{}

func NewIdentityService() *IdentityService {
	return &IdentityService{}
}

func hashPassword(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	hash := argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, 32)
	return hex.EncodeToString(salt) + "$" + hex.EncodeToString(hash), nil
}

func verifyPassword(stored, password string) bool {
	parts := strings.Split(stored, "$")
	if len(parts) != 2 {
		return false
	}
	salt, err := hex.DecodeString(parts[0])
	if err != nil {
		return false
	}
	hash := argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, 32)
	return hex.EncodeToString(hash) == parts[1]
}

func (is *IdentityService) Register(ctx context.Context, nickname, password string) (*models.User, error) {
	if nickname == "" || password == "" {
		return nil, fmt.Errorf("nickname and password are required")
	}

	var alreadyExists int64
	err := db.GetReadOnlyDB(ctx).Model(&models.User{}).Where("nickname = ?", nickname).Count(&alreadyExists).Error
	if err != nil {
		return nil, err
	}
	if alreadyExists > 0 {
		return nil, ErrUserExists
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{Nickname: nickname, Password: passwordHash}
	if err := db.GetWriteDB(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the password and rotates the account's session token.
func (is *IdentityService) Login(ctx context.Context, nickname, password string) (string, error) {
	var user models.User
	err := db.GetReadOnlyDB(ctx).Where("nickname = ?", nickname).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if !verifyPassword(user.Password, password) {
		return "", ErrInvalidCredentials
	}

	// One active token per account, old tokens die on re-login.
	err = db.GetWriteDB(ctx).Where("user_id = ?", user.ID).Delete(&models.UserTokens{}).Error
	if err != nil {
		return "", err
	}

	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	token := hex.EncodeToString(tokenBytes)

	err = db.GetWriteDB(ctx).Create(&models.UserTokens{UserID: user.ID, Token: token}).Error
	if err != nil {
		return "", err
	}
	return token, nil
}

func (is *IdentityService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("token is empty")
	}
	return db.GetWriteDB(ctx).Where("token = ?", token).Delete(&models.UserTokens{}).Error
}

// CurrentUser resolves a session token to its account. gorm.ErrRecordNotFound
// comes back for unknown tokens, the caller treats that as anonymous.
func (is *IdentityService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	var userToken models.UserTokens
	if err := db.GetReadOnlyDB(ctx).Where("token = ?", token).First(&userToken).Error; err != nil {
		return nil, err
	}
	var user models.User
	if err := db.GetReadOnlyDB(ctx).Where("id = ?", userToken.UserID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// IsProUser reports whether the account has a paid membership. Nobody does.
func IsProUser(user *models.User) bool {
	return false
}

// BuildLoginURL builds the identity provider login URL that sends the caller
// back to continueTo after signing in.
func BuildLoginURL(continueTo string) string {
	if config.AppConfig == nil || config.AppConfig.Identity.LoginURL == "" {
		return continueTo
	}
	loginURL := config.AppConfig.Identity.LoginURL
	sep := "?"
	if strings.Contains(loginURL, "?") {
		sep = "&"
	}
	return loginURL + sep + "continue=" + url.QueryEscape(continueTo)
}
