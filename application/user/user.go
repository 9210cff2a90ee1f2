package user

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/roadside-assistance/application/policy"
	"github.com/muhammadheryan/roadside-assistance/cmd/config"
	"github.com/muhammadheryan/roadside-assistance/constant"
	"github.com/muhammadheryan/roadside-assistance/model"
	redisrepo "github.com/muhammadheryan/roadside-assistance/repository/redis"
	txrepo "github.com/muhammadheryan/roadside-assistance/repository/tx"
	userrepo "github.com/muhammadheryan/roadside-assistance/repository/user"
	"github.com/muhammadheryan/roadside-assistance/utils/errors"
	"github.com/muhammadheryan/roadside-assistance/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	CreateAdmin(ctx context.Context, req *model.CreateAdminRequest) (*model.AuthResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*model.Session, error)
	Logout(ctx context.Context, tokenID string) error
	Me(ctx context.Context, caller model.Identity) (*model.User, error)
	UpdateProfile(ctx context.Context, caller model.Identity, req *model.UpdateProfileRequest) (*model.User, error)
	UpdateAvailability(ctx context.Context, caller model.Identity, req *model.AvailabilityRequest) (*model.AvailabilityResponse, error)
}

type UserAppImpl struct {
	config    *config.Config
	txRepo    txrepo.TxRepository
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
}

func NewUserApp(config *config.Config, txRepo txrepo.TxRepository, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository) UserApp {
	return &UserAppImpl{
		config:    config,
		txRepo:    txRepo,
		userRepo:  userRepo,
		redisRepo: redisRepo,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	role, ok := constant.ParseRole(req.Role)
	if !ok || role == constant.RoleAdmin {
		return nil, errors.SetCustomError(constant.ErrInvalidRole)
	}
	email := normalizeEmail(req.Email)

	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	userEntity := &model.UserEntity{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Phone:        req.Phone,
		PasswordHash: string(hashedPassword),
		Role:         role,
		IsAvailable:  true,
	}
	// mechanic-only attributes are dropped for clients
	if role == constant.RoleMechanic {
		userEntity.Specialization = req.Specialization
		userEntity.VehicleType = req.VehicleType
		userEntity.LicenseNumber = req.LicenseNumber
	}

	userEntity, err = s.userRepo.Create(ctx, userEntity)
	if err != nil {
		if stderrors.Is(err, userrepo.ErrDuplicateEmail) {
			return nil, errors.SetCustomError(constant.ErrCredentialExists)
		}
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return s.issueToken(ctx, "[Register]", userEntity)
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: normalizeEmail(req.Email)})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredential)
	}
	if user.IsBlocked {
		return nil, errors.SetCustomError(constant.ErrAccountBlocked)
	}

	// Verify password
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidCredential)
	}

	return s.issueToken(ctx, "[Login]", user)
}

// CreateAdmin bootstraps the single admin account. The admin count and the
// insert run in one transaction holding a lock on the admin rows.
func (s *UserAppImpl) CreateAdmin(ctx context.Context, req *model.CreateAdminRequest) (*model.AuthResponse, error) {
	if s.config.Auth.AdminSecretKey == "" || req.SecretKey != s.config.Auth.AdminSecretKey {
		return nil, errors.SetCustomError(constant.ErrInvalidSecretKey)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[CreateAdmin] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateAdmin] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	admins, err := s.userRepo.CountAdminsTx(ctx, tx)
	if err != nil {
		logger.Error("[CreateAdmin] err userRepo.CountAdminsTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if admins > 0 {
		return nil, errors.SetCustomError(constant.ErrAdminExists)
	}

	admin, err := s.userRepo.CreateTx(ctx, tx, &model.UserEntity{
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		Phone:        req.Phone,
		PasswordHash: string(hashedPassword),
		Role:         constant.RoleAdmin,
		IsAvailable:  true,
	})
	if err != nil {
		if stderrors.Is(err, userrepo.ErrDuplicateEmail) {
			return nil, errors.SetCustomError(constant.ErrCredentialExists)
		}
		logger.Error("[CreateAdmin] err userRepo.CreateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateAdmin] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return s.issueToken(ctx, "[CreateAdmin]", admin)
}

// ValidateToken resolves a bearer token to the caller. The user row is read on
// every call so a block takes effect on the next request.
func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || claims.ID == "" {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	// Check Redis session key
	sessionUserID, err := s.redisRepo.GetSession(ctx, claims.ID)
	if err != nil {
		if !stderrors.Is(err, redisrepo.ErrKeyNotFound) {
			logger.Error("[ValidateToken] err redisRepo.GetSession", zap.String("error", err.Error()))
		}
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if sessionUserID != userID {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[ValidateToken] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if user.IsBlocked {
		return nil, errors.SetCustomError(constant.ErrAccountBlocked)
	}

	return &model.Session{
		Identity: model.Identity{UserID: user.ID, Role: user.Role, IsBlocked: user.IsBlocked},
		TokenID:  claims.ID,
	}, nil
}

func (s *UserAppImpl) Logout(ctx context.Context, tokenID string) error {
	if err := s.redisRepo.DeleteSession(ctx, tokenID); err != nil {
		logger.Error("[Logout] err redisRepo.DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *UserAppImpl) Me(ctx context.Context, caller model.Identity) (*model.User, error) {
	return s.getUser(ctx, "[Me]", caller.UserID)
}

func (s *UserAppImpl) UpdateProfile(ctx context.Context, caller model.Identity, req *model.UpdateProfileRequest) (*model.User, error) {
	if err := policy.Authorize(caller, policy.ActionUpdateProfile).Err(); err != nil {
		return nil, err
	}

	update := &model.ProfileUpdate{Name: req.Name, Phone: req.Phone}
	if caller.Role == constant.RoleMechanic {
		update.Specialization = req.Specialization
		update.VehicleType = req.VehicleType
		update.LicenseNumber = req.LicenseNumber
	}
	if req.Location != nil {
		address := req.Location.Address
		update.Location = &model.UserLocation{
			Latitude:  req.Location.Latitude,
			Longitude: req.Location.Longitude,
			Address:   &address,
		}
	}

	if err := s.userRepo.UpdateProfile(ctx, caller.UserID, update); err != nil {
		logger.Error("[UpdateProfile] err userRepo.UpdateProfile", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return s.getUser(ctx, "[UpdateProfile]", caller.UserID)
}

func (s *UserAppImpl) UpdateAvailability(ctx context.Context, caller model.Identity, req *model.AvailabilityRequest) (*model.AvailabilityResponse, error) {
	if err := policy.Authorize(caller, policy.ActionUpdateAvailability).Err(); err != nil {
		return nil, err
	}
	if req.IsAvailable == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "is_available is required")
	}

	if err := s.userRepo.UpdateAvailability(ctx, caller.UserID, *req.IsAvailable); err != nil {
		logger.Error("[UpdateAvailability] err userRepo.UpdateAvailability", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.AvailabilityResponse{Message: "Availability updated", IsAvailable: *req.IsAvailable}, nil
}

func (s *UserAppImpl) getUser(ctx context.Context, op string, userID uint64) (*model.User, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error(op+" err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "User not found")
	}
	return user.ToUser(), nil
}

func (s *UserAppImpl) issueToken(ctx context.Context, op string, user *model.UserEntity) (*model.AuthResponse, error) {
	token, jti, err := s.generateJWT(user.ID)
	if err != nil {
		logger.Error(op+" err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Store session in Redis
	err = s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error(op+" err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.AuthResponse{Token: token, User: user.ToUser()}, nil
}

// generateJWT creates a JWT token for the user
func (s *UserAppImpl) generateJWT(userID uint64) (string, string, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return "", "", err
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}
