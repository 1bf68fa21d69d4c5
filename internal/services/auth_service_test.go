package services_test

import (
	"errors"
	"testing"

	"github.com/i-ankit-here/scrap-con-backend/internal/dto"
	"github.com/i-ankit-here/scrap-con-backend/internal/services"
)

func TestRegisterUserDuplicateEmail(t *testing.T) {
	db := testDB(t)
	svc := services.NewAuthService(db, testConfig())

	req := &dto.RegisterUserRequest{
		Name: "Asha", Email: "asha@example.com", Phone: "5550003333", Password: "Passw0rd!",
	}
	if _, err := svc.RegisterUser(req); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.RegisterUser(req); !errors.Is(err, services.ErrEmailTaken) {
		t.Fatalf("want ErrEmailTaken, got %v", err)
	}
}

func TestRegisterUserRejectsShortPassword(t *testing.T) {
	db := testDB(t)
	svc := services.NewAuthService(db, testConfig())

	_, err := svc.RegisterUser(&dto.RegisterUserRequest{
		Name: "Asha", Email: "asha@example.com", Password: "short",
	})
	if err == nil {
		t.Fatal("expected error for short password")
	}
}

func TestLoginUserGenericErrorForBadCredentials(t *testing.T) {
	db := testDB(t)
	svc := services.NewAuthService(db, testConfig())
	createCustomer(t, db, "asha@example.com")

	_, wrongPass := svc.LoginUser(&dto.LoginRequest{
		Email: "asha@example.com", Password: "not-the-password",
	})
	_, unknownEmail := svc.LoginUser(&dto.LoginRequest{
		Email: "nobody@example.com", Password: "Passw0rd!",
	})

	if !errors.Is(wrongPass, services.ErrInvalidCredentials) {
		t.Fatalf("wrong password: want ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(unknownEmail, services.ErrInvalidCredentials) {
		t.Fatalf("unknown email: want ErrInvalidCredentials, got %v", unknownEmail)
	}
	if wrongPass.Error() != unknownEmail.Error() {
		t.Fatalf("error messages differ: %q vs %q", wrongPass, unknownEmail)
	}
}

func TestLoginUserSucceeds(t *testing.T) {
	db := testDB(t)
	svc := services.NewAuthService(db, testConfig())
	user := createCustomer(t, db, "asha@example.com")

	resp, err := svc.LoginUser(&dto.LoginRequest{
		Email: "asha@example.com", Password: "Passw0rd!",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("expected both tokens in login response")
	}
	if resp.Principal.ID != user.ID {
		t.Fatalf("principal id = %s, want %s", resp.Principal.ID, user.ID)
	}
}

func TestRefreshRotatesToken(t *testing.T) {
	db := testDB(t)
	svc := services.NewAuthService(db, testConfig())
	createCustomer(t, db, "asha@example.com")

	login, err := svc.LoginUser(&dto.LoginRequest{
		Email: "asha@example.com", Password: "Passw0rd!",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	refreshed, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: login.RefreshToken})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if refreshed.RefreshToken == login.RefreshToken {
		t.Fatal("refresh token was not rotated")
	}

	if _, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: login.RefreshToken}); !errors.Is(err, services.ErrInvalidToken) {
		t.Fatalf("reused token: want ErrInvalidToken, got %v", err)
	}
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	db := testDB(t)
	svc := services.NewAuthService(db, testConfig())
	createCustomer(t, db, "asha@example.com")

	login, err := svc.LoginUser(&dto.LoginRequest{
		Email: "asha@example.com", Password: "Passw0rd!",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := svc.Logout(&dto.LogoutRequest{RefreshToken: login.RefreshToken}); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: login.RefreshToken}); !errors.Is(err, services.ErrInvalidToken) {
		t.Fatalf("after logout: want ErrInvalidToken, got %v", err)
	}
}
