package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/coinkeeper/backend/internal/application/adapter"
	"github.com/coinkeeper/backend/internal/domain/entity"
	domainerror "github.com/coinkeeper/backend/internal/domain/error"
)

type fakeGoogleAuth struct {
	profile *entity.GoogleProfile
	err     error
}

func (g *fakeGoogleAuth) ValidateAccessToken(ctx context.Context, accessToken string) (*entity.GoogleProfile, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.profile, nil
}

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	created []*entity.User
	saved   []*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.byEmail[user.Email] = user
	r.created = append(r.created, user)
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, user := range r.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if user, ok := r.byEmail[email]; ok {
		return user, nil
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) { return nil, nil }

func (r *fakeUserRepo) Save(ctx context.Context, user *entity.User) error {
	r.byEmail[user.Email] = user
	r.saved = append(r.saved, user)
	return nil
}

type fakeTokenService struct {
	token string
	err   error
}

func (s *fakeTokenService) GenerateToken(user *entity.User) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.token, nil
}

func (s *fakeTokenService) ValidateToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, nil
}

func TestAuthenticateUserUseCase(t *testing.T) {
	ctx := context.Background()
	profile := &entity.GoogleProfile{
		ID:      "google-123",
		Email:   "jane@example.com",
		Name:    "Jane Doe",
		Picture: "https://example.com/avatar.png",
	}

	t.Run("creates a user on first sign-in", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewAuthenticateUserUseCase(&fakeGoogleAuth{profile: profile}, repo, &fakeTokenService{token: "session-token"})

		output, err := uc.Execute(ctx, AuthenticateUserInput{AccessToken: "google-access-token"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Token != "session-token" {
			t.Errorf("expected session token, got %q", output.Token)
		}
		if len(repo.created) != 1 {
			t.Fatalf("expected 1 created user, got %d", len(repo.created))
		}
		if output.User.Email != profile.Email || output.User.Name != profile.Name {
			t.Errorf("user not built from profile: %+v", output.User)
		}
	})

	t.Run("reuses the existing user on later sign-ins", func(t *testing.T) {
		repo := newFakeUserRepo()
		existing := entity.NewUser(profile.Name, profile.Email, profile.Picture)
		repo.byEmail[existing.Email] = existing

		uc := NewAuthenticateUserUseCase(&fakeGoogleAuth{profile: profile}, repo, &fakeTokenService{token: "t"})

		output, err := uc.Execute(ctx, AuthenticateUserInput{AccessToken: "token"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.created) != 0 {
			t.Errorf("expected no new user, got %d", len(repo.created))
		}
		if output.User.ID != existing.ID {
			t.Errorf("expected existing user %s, got %s", existing.ID, output.User.ID)
		}
	})

	t.Run("refreshes stale profile fields", func(t *testing.T) {
		repo := newFakeUserRepo()
		existing := entity.NewUser("Old Name", profile.Email, "")
		repo.byEmail[existing.Email] = existing

		uc := NewAuthenticateUserUseCase(&fakeGoogleAuth{profile: profile}, repo, &fakeTokenService{token: "t"})

		output, err := uc.Execute(ctx, AuthenticateUserInput{AccessToken: "token"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User.Name != profile.Name || output.User.Avatar != profile.Picture {
			t.Errorf("profile not refreshed: %+v", output.User)
		}
		if len(repo.saved) != 1 {
			t.Errorf("expected 1 save, got %d", len(repo.saved))
		}
	})

	t.Run("rejects an invalid Google token", func(t *testing.T) {
		uc := NewAuthenticateUserUseCase(&fakeGoogleAuth{err: errors.New("401")}, newFakeUserRepo(), &fakeTokenService{token: "t"})

		_, err := uc.Execute(ctx, AuthenticateUserInput{AccessToken: "bad"})
		if !errors.Is(err, domainerror.ErrInvalidGoogleToken) {
			t.Fatalf("expected ErrInvalidGoogleToken, got %v", err)
		}
	})

	t.Run("propagates token issuance failure", func(t *testing.T) {
		uc := NewAuthenticateUserUseCase(&fakeGoogleAuth{profile: profile}, newFakeUserRepo(), &fakeTokenService{err: errors.New("no key")})

		if _, err := uc.Execute(ctx, AuthenticateUserInput{AccessToken: "token"}); err == nil {
			t.Fatal("expected an error, got nil")
		}
	})
}
