package services

import (
	"errors"
	"fmt"
	"gin-tourbooking/constants"
	"gin-tourbooking/dto"
	"gin-tourbooking/models"
	"gin-tourbooking/repositories"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Tokens are stateless: validity is signature plus expiry, with no
// server-side revocation. The role claim is frozen at issuance, so admin-set
// changes take up to tokenLifetime to reach existing sessions.
const tokenLifetime = 7 * 24 * time.Hour

type IAuthService interface {
	Register(fullName string, email string, password string) error
	Login(email string, password string) (*dto.LoginResponse, error)
	VerifyToken(tokenString string) (*models.Identity, error)
	ListUsers() (*[]dto.UserSummary, error)
}

type AuthService struct {
	repository  repositories.IAuthRepository
	secretKey   []byte
	adminEmails map[string]bool
}

func NewAuthService(repository repositories.IAuthRepository, secretKey string, adminEmails map[string]bool) IAuthService {
	return &AuthService{
		repository:  repository,
		secretKey:   []byte(secretKey),
		adminEmails: adminEmails,
	}
}

func (s *AuthService) Register(fullName string, email string, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		FullName: fullName,
		// Emails are stored lower case so admin matching and login share
		// one casing policy.
		Email:    strings.ToLower(email),
		Password: string(hashedPassword),
		IsActive: true,
	}
	return s.repository.CreateUser(user)
}

func (s *AuthService) Login(email string, password string) (*dto.LoginResponse, error) {
	foundUser, err := s.repository.FindUser(strings.ToLower(email))
	if err != nil {
		if err.Error() == "User not found" {
			return nil, errors.New(constants.ErrBadCredentials)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(password)); err != nil {
		return nil, errors.New(constants.ErrBadCredentials)
	}

	token, role, err := s.issueToken(foundUser)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		User: dto.LoginUser{
			ID:       foundUser.ID,
			FullName: foundUser.FullName,
			Email:    foundUser.Email,
			Role:     role,
		},
		Token: token,
	}, nil
}

func (s *AuthService) roleFor(email string) string {
	if s.adminEmails[strings.ToLower(email)] {
		return constants.RoleAdmin
	}
	return constants.RoleUser
}

func (s *AuthService) issueToken(user *models.User) (string, string, error) {
	role := s.roleFor(user.Email)
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  role,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenLifetime).Unix(),
	})

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", "", err
	}
	return tokenString, role, nil
}

// VerifyToken checks the signature and expiry, then returns the embedded
// claims verbatim. The user record is not consulted.
func (s *AuthService) VerifyToken(tokenString string) (*models.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	exp, ok := claims["exp"].(float64)
	if !ok || float64(time.Now().Unix()) > exp {
		return nil, jwt.ErrTokenExpired
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	email, ok := claims["email"].(string)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	role, ok := claims["role"].(string)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return &models.Identity{
		ID:    uint(sub),
		Email: email,
		Role:  role,
	}, nil
}

func (s *AuthService) ListUsers() (*[]dto.UserSummary, error) {
	users, err := s.repository.FindAllUsers()
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.UserSummary, 0, len(*users))
	for _, user := range *users {
		summaries = append(summaries, dto.UserSummary{
			ID:           user.ID,
			FullName:     user.FullName,
			Email:        user.Email,
			Role:         s.roleFor(user.Email),
			RegisteredAt: user.CreatedAt.Format(time.RFC3339),
			IsActive:     user.IsActive,
		})
	}
	return &summaries, nil
}
