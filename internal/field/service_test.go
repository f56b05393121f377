// AngelaMos | 2026
// service_test.go

package field

import (
	"context"
	"errors"
	"testing"

	"github.com/agrovia/farmconnect/internal/core"
)

type fakeRepository struct {
	fields  map[string]*Field
	deleted []string
}

func newFakeRepository(fields ...*Field) *fakeRepository {
	repo := &fakeRepository{fields: map[string]*Field{}}
	for _, f := range fields {
		repo.fields[f.ID] = f
	}
	return repo
}

func (f *fakeRepository) Create(_ context.Context, field *Field) error {
	f.fields[field.ID] = field
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*Field, error) {
	if field, ok := f.fields[id]; ok {
		return field, nil
	}
	return nil, core.ErrNotFound
}

func (f *fakeRepository) ListForOwner(
	_ context.Context,
	userID string,
	_ ListFieldsParams,
) ([]Field, error) {
	var out []Field
	for _, field := range f.fields {
		if field.UserID == userID {
			out = append(out, *field)
		}
	}
	return out, nil
}

func (f *fakeRepository) SoftDelete(_ context.Context, id string) error {
	if _, ok := f.fields[id]; !ok {
		return core.ErrNotFound
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func TestCreateField(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	field, err := svc.Create(context.Background(), "farmer-1", CreateFieldRequest{
		FieldName:    "north paddock",
		Coordinates:  []Coordinate{{Latitude: 28.61, Longitude: 77.21}},
		AreaHectares: 2.5,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if field.ID == "" {
		t.Error("expected generated field id")
	}
	if field.UserID != "farmer-1" {
		t.Errorf("owner = %q", field.UserID)
	}
	if _, ok := repo.fields[field.ID]; !ok {
		t.Error("field did not reach the store")
	}
}

func TestGetOwnedField(t *testing.T) {
	svc := NewService(newFakeRepository(
		&Field{ID: "field-1", UserID: "farmer-1"},
	))

	t.Run("owner sees the field", func(t *testing.T) {
		field, err := svc.GetOwned(context.Background(), "farmer-1", "field-1")
		if err != nil {
			t.Fatalf("GetOwned: %v", err)
		}
		if field.ID != "field-1" {
			t.Errorf("field id = %q", field.ID)
		}
	})

	t.Run("non-owner gets forbidden", func(t *testing.T) {
		_, err := svc.GetOwned(context.Background(), "farmer-2", "field-1")
		if !errors.Is(err, core.ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("missing field is not found", func(t *testing.T) {
		_, err := svc.GetOwned(context.Background(), "farmer-1", "field-404")
		if !errors.Is(err, core.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestDeleteField(t *testing.T) {
	t.Run("owner can delete", func(t *testing.T) {
		repo := newFakeRepository(&Field{ID: "field-1", UserID: "farmer-1"})
		svc := NewService(repo)

		if err := svc.Delete(context.Background(), "farmer-1", "field-1"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if len(repo.deleted) != 1 || repo.deleted[0] != "field-1" {
			t.Errorf("deleted = %v", repo.deleted)
		}
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		repo := newFakeRepository(&Field{ID: "field-1", UserID: "farmer-1"})
		svc := NewService(repo)

		err := svc.Delete(context.Background(), "farmer-2", "field-1")
		if !errors.Is(err, core.ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
		if len(repo.deleted) != 0 {
			t.Error("field must not be deleted by a non-owner")
		}
	})
}

func TestListFieldsParamsNormalize(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero gets the default", 0, 50},
		{"negative gets the default", -5, 50},
		{"small values pass through", 10, 10},
		{"oversized values are capped", 1000, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ListFieldsParams{Limit: tt.limit}
			p.Normalize()
			if p.Limit != tt.want {
				t.Errorf("Limit = %d, want %d", p.Limit, tt.want)
			}
		})
	}
}

func TestCoordinatesScan(t *testing.T) {
	t.Run("round trips through driver value", func(t *testing.T) {
		coords := Coordinates{{Latitude: 28.61, Longitude: 77.21}}

		value, err := coords.Value()
		if err != nil {
			t.Fatalf("Value: %v", err)
		}

		var decoded Coordinates
		if err := decoded.Scan(value); err != nil {
			t.Fatalf("Scan: %v", err)
		}
		if len(decoded) != 1 || decoded[0].Latitude != 28.61 {
			t.Errorf("decoded = %+v", decoded)
		}
	})

	t.Run("nil scans to empty", func(t *testing.T) {
		var decoded Coordinates
		if err := decoded.Scan(nil); err != nil {
			t.Fatalf("Scan(nil): %v", err)
		}
		if decoded != nil {
			t.Errorf("expected nil, got %+v", decoded)
		}
	})
}
