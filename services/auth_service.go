package services

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/entity"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/pkg/apperr"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/pkg/logger"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/pkg/mailer"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/repository"
	"github.com/ankurnanaware23/RMS-DineEase-Frontend-Backend/utils"
)

type AuthService struct {
	DB         *gorm.DB
	Repo       *repository.UserRepository
	Mail       mailer.Mailer
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func NewAuthService(db *gorm.DB, repo *repository.UserRepository, mail mailer.Mailer, secret string, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{DB: db, Repo: repo, Mail: mail, Secret: secret, AccessTTL: accessTTL, RefreshTTL: refreshTTL}
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Register creates the user and its profile in one transaction, then hands
// out a token pair. Username mirrors email.
func (s *AuthService) Register(firstName, lastName, email, password, password2 string) (*entity.User, *TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.Repo.CountByEmail(email)
	if err != nil {
		return nil, nil, err
	}
	if count > 0 {
		return nil, nil, apperr.Validation("this email is already registered")
	}
	if password != password2 {
		return nil, nil, apperr.Validation("passwords do not match")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := &entity.User{
		Email:     email,
		Username:  email,
		Password:  string(hashed),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		IsActive:  true,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, user); err != nil {
			return err
		}
		return s.Repo.CreateProfile(tx, &entity.Profile{UserID: user.ID})
	})
	if err != nil {
		return nil, nil, err
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Login checks credentials and issues a fresh pair, persisting the refresh
// token on the user record.
func (s *AuthService) Login(email, password string) (*entity.User, *TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.Repo.FindByEmail(email)
	if err != nil {
		return nil, nil, apperr.Auth("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, apperr.Auth("invalid credentials")
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh rotates the pair. An invalid refresh token is an auth error; a
// failure to persist the rotated token is logged, not surfaced.
func (s *AuthService) Refresh(refreshToken string) (*TokenPair, error) {
	claims, err := utils.ParseRefreshToken(refreshToken, s.Secret)
	if err != nil {
		return nil, apperr.Auth("invalid or expired refresh token")
	}

	user, err := s.Repo.FindByID(claims.UserID)
	if err != nil {
		return nil, apperr.Auth("invalid or expired refresh token")
	}

	access, refresh, err := utils.GenerateTokenPair(user, s.Secret, s.AccessTTL, s.RefreshTTL)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.SetRefreshToken(user.ID, refresh); err != nil {
		logger.L().Warn("failed to persist rotated refresh token",
			zap.Uint("user_id", user.ID), zap.Error(err))
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *AuthService) issuePair(user *entity.User) (*TokenPair, error) {
	access, refresh, err := utils.GenerateTokenPair(user, s.Secret, s.AccessTTL, s.RefreshTTL)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.SetRefreshToken(user.ID, refresh); err != nil {
		return nil, err
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

// ----- Password reset (OTP) -----

// RequestPasswordReset stores a fresh OTP on the user and mails it.
func (s *AuthService) RequestPasswordReset(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.Repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("no account with this email")
		}
		return err
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return err
	}
	if err := s.Repo.SetOTP(user.ID, otp); err != nil {
		return err
	}

	s.sendMail(mailer.TemplatePasswordResetOTP, user.Email, map[string]any{"otp": otp})
	return nil
}

func (s *AuthService) VerifyOTP(email, otp string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := s.Repo.FindByEmailAndOTP(email, otp); err != nil {
		return apperr.Validation("invalid email or OTP")
	}
	return nil
}

// ChangePassword finalizes the reset: new hash, OTP cleared (single-use),
// confirmation mail.
func (s *AuthService) ChangePassword(email, otp, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.Repo.FindByEmailAndOTP(email, otp)
	if err != nil {
		return apperr.Validation("invalid email or OTP")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.Repo.SetPasswordAndClearOTP(user.ID, string(hashed)); err != nil {
		return err
	}

	s.sendMail(mailer.TemplatePasswordChanged, user.Email, nil)
	return nil
}

// sendMail fires after the triggering change is committed; delivery
// failures are logged and never roll anything back.
func (s *AuthService) sendMail(template, recipient string, data map[string]any) {
	go func() {
		if err := s.Mail.Send(template, recipient, data); err != nil {
			logger.L().Error("mail delivery failed",
				zap.String("template", template),
				zap.String("recipient", recipient),
				zap.Error(err))
		}
	}()
}

// ----- Profile -----

type ProfileOut struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (s *AuthService) GetProfile(userID uint) (*ProfileOut, error) {
	user, err := s.Repo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	profile, err := s.Repo.GetOrCreateProfile(user.ID)
	if err != nil {
		return nil, err
	}

	phone := ""
	if profile.Phone != nil {
		phone = *profile.Phone
	}
	return &ProfileOut{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     phone,
	}, nil
}

func (s *AuthService) UpdateProfile(userID uint, firstName, lastName, phone *string) (*ProfileOut, error) {
	if _, err := s.Repo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	if err := s.Repo.UpdateNames(userID, firstName, lastName); err != nil {
		return nil, err
	}
	if phone != nil {
		if err := s.Repo.UpdateProfilePhone(userID, *phone); err != nil {
			return nil, err
		}
	}
	return s.GetProfile(userID)
}
