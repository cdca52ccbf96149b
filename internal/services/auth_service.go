package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Kedza01/Test-AI/internal/models"
)

// ErrInvalidCredentials covers unknown usernames, wrong passwords and
// deactivated accounts alike, so login failures do not leak which part
// was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService handles account authentication and session bookkeeping.
type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	CreateSession(ctx context.Context, userID uint) (*models.UserSession, error)
	CloseSession(ctx context.Context, token string) error

	// SeedDefaults creates the stock accounts and system settings on
	// first run. Idempotent.
	SeedDefaults(ctx context.Context) error
}

type authService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewAuthService(db *gorm.DB) AuthService {
	return &authService{db: db, now: time.Now}
}

func (s *authService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	if err := s.db.WithContext(ctx).Model(&user).Update("last_login", now).Error; err != nil {
		return nil, err
	}
	user.LastLogin = &now
	return &user, nil
}

func (s *authService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *authService) CreateSession(ctx context.Context, userID uint) (*models.UserSession, error) {
	session := &models.UserSession{
		UserID:    userID,
		Token:     uuid.New().String(),
		LoginTime: s.now(),
	}
	if err := s.db.WithContext(ctx).Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

func (s *authService) CloseSession(ctx context.Context, token string) error {
	var session models.UserSession
	err := s.db.WithContext(ctx).Where("token = ?", token).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil // already closed or never existed; nothing to do
	}
	if err != nil {
		return err
	}

	logout := s.now()
	duration := int(logout.Sub(session.LoginTime).Minutes())
	return s.db.WithContext(ctx).Model(&session).
		Updates(map[string]any{
			"logout_time":      logout,
			"session_duration": duration,
		}).Error
}

// defaultAccounts are created when the users table has no admin yet.
// Passwords match the documented initial credentials and must be
// changed after first login.
var defaultAccounts = []struct {
	username string
	password string
	role     models.Role
	fullName string
	email    string
}{
	{"admin", "admin", models.RoleAdmin, "System Administrator", "admin@zrp.gov.zw"},
	{"analyst", "analyst", models.RoleAnalyst, "Crime Data Analyst", "analyst@zrp.gov.zw"},
	{"user", "user", models.RoleStandardUser, "Police Officer", "user@zrp.gov.zw"},
}

var defaultSettings = []models.SystemSetting{
	{SettingKey: models.SettingDailyQuota, Value: "10", Description: "Daily prediction quota for Standard Users"},
	{SettingKey: models.SettingSessionTimeout, Value: "60", Description: "Session timeout in minutes"},
	{SettingKey: models.SettingDataRetentionDays, Value: "365", Description: "Number of days to retain audit logs"},
	{SettingKey: models.SettingEmailNotifications, Value: "false", Description: "Enable email notifications"},
}

func (s *authService) SeedDefaults(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var adminCount int64
		if err := tx.Model(&models.User{}).Where("username = ?", "admin").Count(&adminCount).Error; err != nil {
			return err
		}
		if adminCount == 0 {
			for _, acc := range defaultAccounts {
				hash, err := bcrypt.GenerateFromPassword([]byte(acc.password), bcrypt.DefaultCost)
				if err != nil {
					return err
				}
				user := models.User{
					Username:     acc.username,
					PasswordHash: string(hash),
					Role:         acc.role,
					FullName:     acc.fullName,
					Email:        acc.email,
					IsActive:     true,
				}
				if err := tx.Create(&user).Error; err != nil {
					return err
				}
			}
		}

		for _, setting := range defaultSettings {
			st := setting
			err := tx.Where("setting_key = ?", st.SettingKey).FirstOrCreate(&st).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
