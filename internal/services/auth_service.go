package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"travellounge/internal/domain"
	"travellounge/internal/domain/models"
	"travellounge/internal/repositories"
	"travellounge/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Back-office roles.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

const minPasswordLen = 8

// Claims is the JWT payload issued at login.
type Claims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type LoginResult struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      models.User `json:"user"`
}

type AuthService struct {
	Users  repositories.UserRepo
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
	Deps
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s AuthService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return 24 * time.Hour
}

var errBadCredentials = domain.UnauthorizedError{Msg: "invalid email or password"}

// Login checks the password and issues an HS256 token.
func (s AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = utils.NormalizeEmail(email)
	if email == "" || password == "" {
		return LoginResult{}, errBadCredentials
	}
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if domain.IsNotFound(err) {
			return LoginResult{}, errBadCredentials
		}
		return LoginResult{}, wrap(err)
	}
	if u.Status != "" && u.Status != "active" {
		return LoginResult{}, domain.UnauthorizedError{Msg: "account disabled"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, errBadCredentials
	}
	token, exp, err := s.Issue(u)
	if err != nil {
		return LoginResult{}, domain.InternalError{Msg: "failed to sign token", Err: err}
	}
	s.log("auth", "login", "user_id=%d role=%s", u.ID, u.Role)
	return LoginResult{Token: token, ExpiresAt: exp, User: u}, nil
}

func (s AuthService) Issue(u models.User) (string, time.Time, error) {
	if len(s.Secret) == 0 {
		return "", time.Time{}, errors.New("jwt secret not configured")
	}
	now := s.now()
	exp := now.Add(s.ttl())
	claims := Claims{
		UserID: u.ID,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(u.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Parse validates a token and returns its claims.
func (s AuthService) Parse(token string) (Claims, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if token == "" {
		return Claims{}, domain.UnauthorizedError{Msg: "missing token"}
	}
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, domain.UnauthorizedError{Msg: "token expired"}
		}
		return Claims{}, domain.UnauthorizedError{Msg: "invalid token"}
	}
	if claims.UserID <= 0 {
		return Claims{}, domain.UnauthorizedError{Msg: "invalid token"}
	}
	return claims, nil
}

func (s AuthService) Me(ctx context.Context, userID int64) (models.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.User{}, domain.UnauthorizedError{Msg: "account not found"}
		}
		return models.User{}, wrap(err)
	}
	return u, nil
}

// CreateUser inserts a back-office account or resets an existing one.
func (s AuthService) CreateUser(ctx context.Context, name, email, password, role string) (models.User, error) {
	email, err := validEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if len(password) < minPasswordLen {
		return models.User{}, domain.ValidationError{Field: "password", Msg: "must be at least 8 characters"}
	}
	role = strings.ToLower(strings.TrimSpace(role))
	if role == "" {
		role = RoleAdmin
	}
	if role != RoleAdmin && role != RoleEditor {
		return models.User{}, domain.ValidationError{Field: "role", Msg: "must be admin or editor"}
	}
	name = utils.NormalizeSpace(name)
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "failed to hash password", Err: err}
	}
	u := models.User{Name: name, Email: email, PasswordHash: string(hash), Role: role, Status: "active"}
	id, err := s.Users.Upsert(ctx, u)
	if err != nil {
		return models.User{}, wrap(err)
	}
	u.ID = id
	s.log("auth", "create_user", "user_id=%d role=%s", id, role)
	return u, nil
}
