package services

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Lalo789/weddingplan/internal/logger"
	errs "github.com/Lalo789/weddingplan/internal/pkg/errors"
	"github.com/Lalo789/weddingplan/internal/repos"
	"github.com/Lalo789/weddingplan/internal/types"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 80
	fullNameMinLen = 3
	fullNameMaxLen = 150
	passwordMinLen = 6
	phoneMinLen    = 10
	phoneMaxLen    = 15
	emailMaxLen    = 120
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Phone    string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*types.User, error)
	Authenticate(ctx context.Context, username, password string) (*types.User, error)
	IssueToken(user *types.User) (string, error)
	ParseToken(tokenString string) (uuid.UUID, error)
	UsernameAvailable(ctx context.Context, username string) (bool, string, error)
	EmailAvailable(ctx context.Context, email string) (bool, string, error)
	AccessTTL() time.Duration
}

type authService struct {
	db           *gorm.DB
	log          *logger.Logger
	userRepo     repos.UserRepo
	activity     ActivityService
	jwtSecretKey string
	accessTTL    time.Duration
}

func NewAuthService(
	db *gorm.DB,
	baseLog *logger.Logger,
	userRepo repos.UserRepo,
	activity ActivityService,
	jwtSecretKey string,
	accessTTL time.Duration,
) AuthService {
	return &authService{
		db:           db,
		log:          baseLog.With("service", "AuthService"),
		userRepo:     userRepo,
		activity:     activity,
		jwtSecretKey: jwtSecretKey,
		accessTTL:    accessTTL,
	}
}

// Register creates a client account. Username is kept case-sensitive, email
// is lowercased at write time; both policies are enforced consistently here
// and in the availability checks. Uniqueness is ultimately guaranteed by the
// unique indexes, so a concurrent duplicate that slips past the pre-checks
// still comes back as the typed duplicate error.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*types.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.FullName = strings.TrimSpace(in.FullName)
	in.Phone = strings.TrimSpace(in.Phone)

	if err := validateRegistration(in); err != nil {
		return nil, err
	}

	usernameTaken, err := s.userRepo.UsernameExists(ctx, nil, in.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if usernameTaken {
		return nil, errs.ErrDuplicateUsername
	}
	emailTaken, err := s.userRepo.EmailExists(ctx, nil, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if emailTaken {
		return nil, errs.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &types.User{
		ID:           uuid.New(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         types.RoleClient,
		FullName:     in.FullName,
		Phone:        in.Phone,
		Active:       true,
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			return err
		}
		s.activity.Record(ctx, tx, user.ID, types.ActivityUserRegistered, map[string]any{
			"username": user.Username,
		})
		return nil
	}); err != nil {
		if repos.IsDuplicate(err) {
			return nil, s.classifyDuplicate(ctx, in.Username)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// classifyDuplicate decides which unique index rejected the insert. The
// username is re-checked; if it is not the one taken, the email was.
func (s *authService) classifyDuplicate(ctx context.Context, username string) error {
	taken, err := s.userRepo.UsernameExists(ctx, nil, username)
	if err == nil && taken {
		return errs.ErrDuplicateUsername
	}
	return errs.ErrDuplicateEmail
}

// Authenticate verifies the password against the stored hash. A disabled
// account fails distinctly from wrong credentials; the caller shows a
// different message for it.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*types.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, errs.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByUsername(ctx, nil, username)
	if err != nil {
		if repos.IsNotFound(err) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errs.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, errs.ErrAccountDisabled
	}
	return user, nil
}

func (s *authService) IssueToken(user *types.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"exp":     time.Now().Add(s.accessTTL).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecretKey))
}

func (s *authService) ParseToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwtSecretKey), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, errs.ErrInvalidCredentials
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errs.ErrInvalidCredentials
	}
	raw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, errs.ErrInvalidCredentials
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.ErrInvalidCredentials
	}
	return userID, nil
}

// UsernameAvailable backs the live-validation endpoint. The reason string is
// human-readable and returned alongside available=false.
func (s *authService) UsernameAvailable(ctx context.Context, username string) (bool, string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return false, "username cannot be empty", nil
	}
	if len(username) < usernameMinLen {
		return false, fmt.Sprintf("username must be at least %d characters", usernameMinLen), nil
	}
	taken, err := s.userRepo.UsernameExists(ctx, nil, username)
	if err != nil {
		return false, "", fmt.Errorf("check username: %w", err)
	}
	if taken {
		return false, "username already in use", nil
	}
	return true, "username available", nil
}

func (s *authService) EmailAvailable(ctx context.Context, email string) (bool, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false, "email cannot be empty", nil
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return false, "email address is not valid", nil
	}
	taken, err := s.userRepo.EmailExists(ctx, nil, email)
	if err != nil {
		return false, "", fmt.Errorf("check email: %w", err)
	}
	if taken {
		return false, "email already registered", nil
	}
	return true, "email available", nil
}

func (s *authService) AccessTTL() time.Duration {
	return s.accessTTL
}

func validateRegistration(in RegisterInput) error {
	if l := len(in.Username); l < usernameMinLen || l > usernameMaxLen {
		return errs.NewValidation("username", fmt.Sprintf("must be between %d and %d characters", usernameMinLen, usernameMaxLen))
	}
	if in.Email == "" || len(in.Email) > emailMaxLen {
		return errs.NewValidation("email", "must be a valid email address")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return errs.NewValidation("email", "must be a valid email address")
	}
	if len(in.Password) < passwordMinLen {
		return errs.NewValidation("password", fmt.Sprintf("must be at least %d characters", passwordMinLen))
	}
	if l := len(in.FullName); l < fullNameMinLen || l > fullNameMaxLen {
		return errs.NewValidation("full_name", fmt.Sprintf("must be between %d and %d characters", fullNameMinLen, fullNameMaxLen))
	}
	if in.Phone != "" {
		if l := len(in.Phone); l < phoneMinLen || l > phoneMaxLen {
			return errs.NewValidation("phone", fmt.Sprintf("must be between %d and %d characters", phoneMinLen, phoneMaxLen))
		}
	}
	return nil
}
