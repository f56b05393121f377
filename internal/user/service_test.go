// AngelaMos | 2026
// service_test.go

package user

import (
	"context"
	"errors"
	"testing"

	"github.com/agrovia/farmconnect/internal/auth"
	"github.com/agrovia/farmconnect/internal/core"
)

type fakeRepository struct {
	users       map[string]*User
	deactivated []string
	updated     *User
}

func newFakeRepository(users ...*User) *fakeRepository {
	repo := &fakeRepository{users: map[string]*User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeRepository) Create(_ context.Context, user *User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return core.ErrDuplicateKey
		}
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, core.ErrNotFound
}

func (f *fakeRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeRepository) UpdateProfile(_ context.Context, user *User) error {
	if _, ok := f.users[user.ID]; !ok {
		return core.ErrNotFound
	}
	f.users[user.ID] = user
	f.updated = user
	return nil
}

func (f *fakeRepository) UpdateLastLogin(_ context.Context, userID string) error {
	if _, ok := f.users[userID]; !ok {
		return core.ErrNotFound
	}
	return nil
}

func (f *fakeRepository) Deactivate(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return core.ErrNotFound
	}
	f.deactivated = append(f.deactivated, id)
	return nil
}

func TestCreateUser(t *testing.T) {
	t.Run("stores the email exactly as supplied", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(repo)

		info, err := svc.Create(context.Background(), auth.CreateUserParams{
			Email:        "Ravi@Example.COM",
			PasswordHash: "hashed",
			Name:         "Ravi Kumar",
			UserType:     RoleFarmer,
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if info.Email != "Ravi@Example.COM" {
			t.Errorf("email = %q, want the original casing", info.Email)
		}
	})

	t.Run("empty optional fields stay null", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(repo)

		info, err := svc.Create(context.Background(), auth.CreateUserParams{
			Email:        "ravi@example.com",
			PasswordHash: "hashed",
			Name:         "Ravi Kumar",
			UserType:     RoleFarmer,
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}

		stored := repo.users[info.ID]
		if stored.Phone != nil || stored.Location != nil {
			t.Errorf("phone = %v, location = %v, want nil", stored.Phone, stored.Location)
		}
	})

	t.Run("propagates duplicate key", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(repo)

		params := auth.CreateUserParams{
			Email:        "ravi@example.com",
			PasswordHash: "hashed",
			Name:         "Ravi Kumar",
			UserType:     RoleFarmer,
		}
		if _, err := svc.Create(context.Background(), params); err != nil {
			t.Fatalf("first Create: %v", err)
		}

		_, err := svc.Create(context.Background(), params)
		if !errors.Is(err, core.ErrDuplicateKey) {
			t.Errorf("expected ErrDuplicateKey, got %v", err)
		}
	})
}

func TestGetByEmail(t *testing.T) {
	repo := newFakeRepository(&User{
		ID:    "user-1",
		Email: "meera@example.com",
	})
	svc := NewService(repo)

	t.Run("exact match", func(t *testing.T) {
		info, err := svc.GetByEmail(context.Background(), "meera@example.com")
		if err != nil {
			t.Fatalf("GetByEmail: %v", err)
		}
		if info.ID != "user-1" {
			t.Errorf("id = %q", info.ID)
		}
	})

	t.Run("lookup is case sensitive", func(t *testing.T) {
		_, err := svc.GetByEmail(context.Background(), "MEERA@example.com")
		if !errors.Is(err, core.ErrNotFound) {
			t.Errorf("expected ErrNotFound for a different casing, got %v", err)
		}
	})
}

func TestUpdateMe(t *testing.T) {
	phone := "9876543210"
	repo := newFakeRepository(&User{
		ID:    "user-1",
		Email: "meera@example.com",
		Name:  "Meera Devi",
		Phone: &phone,
	})
	svc := NewService(repo)

	t.Run("updates only the provided fields", func(t *testing.T) {
		name := "Meera D."
		user, err := svc.UpdateMe(context.Background(), "user-1", UpdateProfileRequest{
			Name: &name,
		})
		if err != nil {
			t.Fatalf("UpdateMe: %v", err)
		}
		if user.Name != "Meera D." {
			t.Errorf("name = %q", user.Name)
		}
		if user.Phone == nil || *user.Phone != phone {
			t.Error("untouched phone must survive the update")
		}
	})

	t.Run("empty user id is unauthorized", func(t *testing.T) {
		_, err := svc.UpdateMe(context.Background(), "", UpdateProfileRequest{})
		if !errors.Is(err, core.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})
}

func TestDeleteMe(t *testing.T) {
	repo := newFakeRepository(&User{ID: "user-1", Email: "meera@example.com"})
	svc := NewService(repo)

	if err := svc.DeleteMe(context.Background(), "user-1"); err != nil {
		t.Fatalf("DeleteMe: %v", err)
	}
	if len(repo.deactivated) != 1 || repo.deactivated[0] != "user-1" {
		t.Errorf("deactivated = %v", repo.deactivated)
	}

	if err := svc.DeleteMe(context.Background(), ""); !errors.Is(err, core.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}
