package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/plateful-app/plateful-cli/internal/model"
	"github.com/plateful-app/plateful-cli/internal/storage"
)

// credential pairs an account with its bcrypt password hash. The list
// lives under its own storage key, separate from the app state blob.
type credential struct {
	User         model.User `json:"user"`
	PasswordHash string     `json:"password_hash"`
}

// dummyHash keeps login timing constant when the email is unknown,
// preventing account enumeration by response time.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("plateful-dummy"), bcrypt.DefaultCost)

func (s *Store) loadCredentials() ([]credential, error) {
	blob, ok, err := s.kv.Get(storage.CredentialsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var creds []credential
	if err := json.Unmarshal(blob, &creds); err != nil {
		return nil, fmt.Errorf("decode credential list: %w", err)
	}
	return creds, nil
}

func (s *Store) saveCredentials(creds []credential) error {
	blob, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("encode credential list: %w", err)
	}
	return s.kv.Set(storage.CredentialsKey, blob)
}

func (s *Store) Register(email, username, password string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)
	if email == "" || !strings.Contains(email, "@") {
		return model.User{}, fmt.Errorf("a valid email is required")
	}
	if username == "" {
		return model.User{}, fmt.Errorf("username is required")
	}
	if len(password) < 6 {
		return model.User{}, fmt.Errorf("password must be at least 6 characters")
	}

	creds, err := s.loadCredentials()
	if err != nil {
		return model.User{}, err
	}
	for _, c := range creds {
		if strings.EqualFold(c.User.Email, email) {
			return model.User{}, fmt.Errorf("an account already exists for %s", email)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("hash password: %w", err)
	}
	user := model.User{
		ID:        NewID(),
		Email:     email,
		Username:  username,
		CreatedAt: time.Now().UnixMilli(),
	}
	creds = append(creds, credential{User: user, PasswordHash: string(hash)})
	if err := s.saveCredentials(creds); err != nil {
		return model.User{}, err
	}

	s.state.User = &user
	s.state.IsAuthenticated = true
	return user, s.save()
}

func (s *Store) Login(email, password string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	creds, err := s.loadCredentials()
	if err != nil {
		return model.User{}, err
	}

	var match *credential
	for i := range creds {
		if strings.EqualFold(creds[i].User.Email, email) {
			match = &creds[i]
			break
		}
	}
	// Always run the compare so timing does not reveal whether the
	// email exists.
	hashToCheck := string(dummyHash)
	if match != nil {
		hashToCheck = match.PasswordHash
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(hashToCheck), []byte(password))
	if match == nil || compareErr != nil {
		return model.User{}, fmt.Errorf("invalid email or password")
	}

	s.state.User = &match.User
	s.state.IsAuthenticated = true
	return match.User, s.save()
}

// Logout clears the session flag but keeps the user record so the
// next launch can prefill the login form.
func (s *Store) Logout() error {
	s.state.IsAuthenticated = false
	return s.save()
}

func (s *Store) CurrentUser() (model.User, bool) {
	if s.state.User == nil || !s.state.IsAuthenticated {
		return model.User{}, false
	}
	return *s.state.User, true
}
