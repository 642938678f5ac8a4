package store_test

import "testing"

func TestRegisterLoginLogout(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	user, err := s.Register("sam@example.com", "sam", "hunter22")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "sam@example.com" || user.ID == "" {
		t.Fatalf("unexpected user %+v", user)
	}
	if _, ok := s.CurrentUser(); !ok {
		t.Fatal("register must start a session")
	}

	if err := s.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := s.CurrentUser(); ok {
		t.Fatal("logout must end the session")
	}

	if _, err := s.Login("SAM@example.com", "hunter22"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, ok := s.CurrentUser(); !ok {
		t.Fatal("login must start a session")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	if _, err := s.Register("pat@example.com", "pat", "secret99"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := s.Login("pat@example.com", "wrong"); err == nil {
		t.Fatal("expected wrong password to fail")
	}
	if _, err := s.Login("nobody@example.com", "secret99"); err == nil {
		t.Fatal("expected unknown email to fail")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	if _, err := s.Register("dup@example.com", "one", "secret99"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := s.Register("DUP@example.com", "two", "secret99"); err == nil {
		t.Fatal("expected duplicate email to be rejected")
	}
}
