package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/job000/wedding2025-backend/internal/access"
	"github.com/job000/wedding2025-backend/internal/model"
	"github.com/job000/wedding2025-backend/internal/shared"
	"github.com/job000/wedding2025-backend/internal/storage"
)

const minPasswordLength = 6

type UserService struct {
	Storage UserStore
	Media   MediaStore
	Blobs   BlobStore
	Tokens  *TokenManager
	log     *zap.SugaredLogger
}

func NewUserService(s UserStore, media MediaStore, blobs BlobStore, tokens *TokenManager, log *zap.SugaredLogger) *UserService {
	return &UserService{Storage: s, Media: media, Blobs: blobs, Tokens: tokens, log: log}
}

// Register always creates an ordinary user; roles are granted by an admin afterwards.
func (s *UserService) Register(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, validation("Username and password are required")
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return nil, validation("Password must be at least %d characters", minPasswordLength)
	}
	return s.create(ctx, username, password, shared.RoleUser)
}

func (s *UserService) create(ctx context.Context, username, password string, role shared.Role) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &model.User{UserName: username, Password: string(hash), Role: role}
	if err := s.Storage.CreateUser(ctx, u); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, newError(ErrConflict, "User already exists")
		}
		return nil, storeErr("create user", err, "")
	}
	return u, nil
}

func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.Storage.GetUserByName(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", newError(ErrUnauthorized, "Invalid credentials")
		}
		return "", storeErr("get user", err, "")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", newError(ErrUnauthorized, "Invalid credentials")
	}
	return s.Tokens.Issue(u)
}

// Authenticate turns a bearer token into a requester. The role is read from the
// store, so a demotion takes effect before the token expires.
func (s *UserService) Authenticate(ctx context.Context, token string) (access.Requester, error) {
	claims, err := s.Tokens.Parse(token)
	if err != nil {
		return access.Anonymous(), newError(ErrUnauthorized, "Invalid token")
	}
	u, err := s.Storage.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return access.Anonymous(), newError(ErrUnauthorized, "Invalid token")
		}
		return access.Anonymous(), storeErr("get user", err, "")
	}
	return access.Requester{UserID: u.ID, Username: u.UserName, Role: u.Role}, nil
}

func (s *UserService) Me(ctx context.Context, r access.Requester) (*model.User, error) {
	u, err := s.Storage.GetUserByID(ctx, r.UserID)
	return u, storeErr("get user", err, "User")
}

func (s *UserService) ChangePassword(ctx context.Context, r access.Requester, oldPassword, newPassword string) error {
	u, err := s.Storage.GetUserByID(ctx, r.UserID)
	if err != nil {
		return storeErr("get user", err, "User")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(oldPassword)); err != nil {
		return newError(ErrUnauthorized, "Invalid credentials")
	}
	if utf8.RuneCountInString(newPassword) < minPasswordLength {
		return validation("Password must be at least %d characters", minPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return storeErr("update password", s.Storage.UpdatePassword(ctx, u.ID, string(hash)), "User")
}

func (s *UserService) ListUsers(ctx context.Context, r access.Requester) ([]model.User, error) {
	if !r.IsAdmin() {
		return nil, forbidden("Admin access required")
	}
	users, err := s.Storage.ListUsers(ctx)
	return users, storeErr("list users", err, "")
}

func (s *UserService) SetRole(ctx context.Context, r access.Requester, userID int64, roleStr string) (*model.User, error) {
	if !r.IsAdmin() {
		return nil, forbidden("Admin access required")
	}
	role, err := shared.ParseRole(roleStr)
	if err != nil {
		return nil, validation("Invalid role")
	}
	if userID == r.UserID && role != shared.RoleAdmin {
		return nil, forbidden("Admins cannot demote themselves")
	}
	if err := s.Storage.UpdateRole(ctx, userID, role); err != nil {
		return nil, storeErr("update role", err, "User")
	}
	u, err := s.Storage.GetUserByID(ctx, userID)
	return u, storeErr("get user", err, "User")
}

// DeleteUser hard-deletes an account with everything it owns. Stored files of the
// removed media are deleted afterwards; failures there are only logged.
func (s *UserService) DeleteUser(ctx context.Context, r access.Requester, userID int64) error {
	if !r.IsAdmin() {
		return forbidden("Admin access required")
	}
	if userID == r.UserID {
		return forbidden("Admins cannot delete themselves")
	}
	files, err := s.Media.MediaFileNamesByUploader(ctx, userID)
	if err != nil {
		return storeErr("list user media", err, "")
	}
	if err := s.Storage.DeleteUser(ctx, userID); err != nil {
		return storeErr("delete user", err, "User")
	}
	for _, ref := range files {
		if err := s.Blobs.Delete(ctx, ref); err != nil {
			s.log.Warnw("failed to delete stored file", "user_id", userID, "ref", ref, "error", err)
		}
	}
	return nil
}

// EnsureAdmin creates the configured admin account on first start.
func (s *UserService) EnsureAdmin(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil
	}
	_, err := s.Storage.GetUserByName(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	if _, err := s.create(ctx, username, password, shared.RoleAdmin); err != nil {
		return err
	}
	s.log.Infow("admin account created", "username", username)
	return nil
}
