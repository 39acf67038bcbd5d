package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"tradeyard/internal/domain"
	"tradeyard/internal/repos"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	Users    *repos.UserRepo
	Profiles *repos.ProfileRepo
}

type Registration struct {
	Email       string
	Password    string
	Name        string
	Role        string // BUYER | SELLER
	CompanyName string
}

// Register creates the user and its role profile. A taken email surfaces as
// ErrConflict.
func (s *AuthService) Register(reg Registration) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(reg.Email))
	if existing, err := s.Users.ByEmail(email); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  reg.Name,
		Hash:  string(hash),
		Role:  reg.Role,
	}
	if err := s.Users.Create(u); err != nil {
		return nil, err
	}

	switch reg.Role {
	case domain.RoleBuyer:
		err = s.Profiles.CreateBuyer(&domain.BuyerProfile{
			ID: uuid.NewString(), UserID: u.ID, CompanyName: reg.CompanyName, ContactName: reg.Name,
		})
	case domain.RoleSeller:
		err = s.Profiles.CreateSeller(&domain.SellerProfile{
			ID: uuid.NewString(), UserID: u.ID, CompanyName: reg.CompanyName,
		})
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Login(email, password string) (*domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	return u, nil
}

// ForgotPassword creates a one-hour reset token. Unknown emails return the
// token-less success path so the endpoint never confirms account existence.
func (s *AuthService) ForgotPassword(email string) (string, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	token := uuid.NewString()
	expires := time.Now().UTC().Add(time.Hour).Format(time.RFC3339)
	if err := s.Users.CreateReset(token, u.ID, expires); err != nil {
		return "", err
	}
	return token, nil
}

func (s *AuthService) ResetPassword(token, newPassword string) error {
	r, err := s.Users.Reset(token)
	if err != nil {
		return fmt.Errorf("%w: unknown or expired reset token", ErrInvalid)
	}
	if r.Used {
		return fmt.Errorf("%w: unknown or expired reset token", ErrInvalid)
	}
	if exp, err := time.Parse(time.RFC3339, r.ExpiresAt); err != nil || time.Now().UTC().After(exp) {
		return fmt.Errorf("%w: unknown or expired reset token", ErrInvalid)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.Users.UpdatePassword(r.UserID, string(hash)); err != nil {
		return err
	}
	return s.Users.MarkResetUsed(token)
}

func (s *AuthService) ChangePassword(userID, current, next string) error {
	u, err := s.Users.ByID(userID)
	if err != nil {
		return ErrNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(current)) != nil {
		return fmt.Errorf("%w: current password is incorrect", ErrInvalid)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.Users.UpdatePassword(userID, string(hash))
}

func (s *AuthService) UserByID(id string) (*domain.User, error) {
	u, err := s.Users.ByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return u, nil
}
