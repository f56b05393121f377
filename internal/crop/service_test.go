// AngelaMos | 2026
// service_test.go

package crop

import (
	"context"
	"errors"
	"testing"

	"github.com/agrovia/farmconnect/internal/core"
	"github.com/agrovia/farmconnect/internal/field"
)

type fakeFieldProvider struct {
	ownedFields map[string]string
}

func (f *fakeFieldProvider) GetOwned(
	_ context.Context,
	userID, fieldID string,
) (*field.Field, error) {
	owner, ok := f.ownedFields[fieldID]
	if !ok {
		return nil, core.ErrNotFound
	}
	if owner != userID {
		return nil, core.ErrForbidden
	}
	return &field.Field{ID: fieldID, UserID: owner}, nil
}

type fakeRepository struct {
	Repository

	crops        map[string]*Crop
	created      *Crop
	irrigation   *IrrigationRecord
	fertilizer   *FertilizerRecord
	stage        *GrowthStage
	waterTotal   float64
	totals       NutrientTotals
}

func (f *fakeRepository) Create(_ context.Context, crop *Crop) error {
	f.created = crop
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*Crop, error) {
	if crop, ok := f.crops[id]; ok {
		return crop, nil
	}
	return nil, core.ErrNotFound
}

func (f *fakeRepository) AddIrrigation(
	_ context.Context,
	record *IrrigationRecord,
) (float64, error) {
	f.irrigation = record
	f.waterTotal += record.AmountMM
	return f.waterTotal, nil
}

func (f *fakeRepository) AddFertilizer(
	_ context.Context,
	record *FertilizerRecord,
) (*NutrientTotals, error) {
	f.fertilizer = record
	return &f.totals, nil
}

func (f *fakeRepository) AddGrowthStage(_ context.Context, stage *GrowthStage) error {
	f.stage = stage
	return nil
}

func newTestCropService(repo *fakeRepository, fields *fakeFieldProvider) *Service {
	if repo.crops == nil {
		repo.crops = map[string]*Crop{}
	}
	if fields.ownedFields == nil {
		fields.ownedFields = map[string]string{}
	}
	return NewService(repo, fields)
}

func strPtr(s string) *string { return &s }

func TestCreateCrop(t *testing.T) {
	baseReq := CreateCropRequest{
		FieldID:    "field-1",
		CropName:   "rice",
		SowingDate: "2026-06-10",
	}

	t.Run("requires field ownership", func(t *testing.T) {
		repo := &fakeRepository{}
		svc := newTestCropService(repo, &fakeFieldProvider{
			ownedFields: map[string]string{"field-1": "someone-else"},
		})

		_, err := svc.Create(context.Background(), "farmer-1", baseReq)
		if !errors.Is(err, core.ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
		if repo.created != nil {
			t.Error("crop must not be created on a foreign field")
		}
	})

	t.Run("unknown field is not found", func(t *testing.T) {
		svc := newTestCropService(&fakeRepository{}, &fakeFieldProvider{})

		_, err := svc.Create(context.Background(), "farmer-1", baseReq)
		if !errors.Is(err, core.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("defaults irrigation method to manual", func(t *testing.T) {
		repo := &fakeRepository{}
		svc := newTestCropService(repo, &fakeFieldProvider{
			ownedFields: map[string]string{"field-1": "farmer-1"},
		})

		crop, err := svc.Create(context.Background(), "farmer-1", baseReq)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if crop.IrrigationMethod != "manual" {
			t.Errorf("irrigation method = %q, want manual", crop.IrrigationMethod)
		}
		if crop.ID == "" {
			t.Error("expected generated crop id")
		}
	})

	t.Run("rejects harvest date on or before sowing", func(t *testing.T) {
		svc := newTestCropService(&fakeRepository{}, &fakeFieldProvider{
			ownedFields: map[string]string{"field-1": "farmer-1"},
		})

		req := baseReq
		req.ExpectedHarvestDate = strPtr("2026-06-10")

		_, err := svc.Create(context.Background(), "farmer-1", req)
		if !errors.Is(err, core.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("rejects malformed sowing date", func(t *testing.T) {
		svc := newTestCropService(&fakeRepository{}, &fakeFieldProvider{
			ownedFields: map[string]string{"field-1": "farmer-1"},
		})

		req := baseReq
		req.SowingDate = "10-06-2026"

		_, err := svc.Create(context.Background(), "farmer-1", req)
		if !errors.Is(err, core.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestGetOwnedCrop(t *testing.T) {
	repo := &fakeRepository{crops: map[string]*Crop{
		"crop-1": {ID: "crop-1", UserID: "farmer-1"},
	}}
	svc := newTestCropService(repo, &fakeFieldProvider{})

	t.Run("owner sees the crop", func(t *testing.T) {
		crop, err := svc.GetOwned(context.Background(), "farmer-1", "crop-1")
		if err != nil {
			t.Fatalf("GetOwned: %v", err)
		}
		if crop.ID != "crop-1" {
			t.Errorf("crop id = %q", crop.ID)
		}
	})

	t.Run("non-owner gets forbidden, not not-found", func(t *testing.T) {
		_, err := svc.GetOwned(context.Background(), "farmer-2", "crop-1")
		if !errors.Is(err, core.ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("missing crop is not found", func(t *testing.T) {
		_, err := svc.GetOwned(context.Background(), "farmer-1", "crop-404")
		if !errors.Is(err, core.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestAddIrrigationService(t *testing.T) {
	newRepo := func() *fakeRepository {
		return &fakeRepository{
			crops: map[string]*Crop{
				"crop-1": {
					ID:               "crop-1",
					UserID:           "farmer-1",
					IrrigationMethod: "drip",
				},
			},
			waterTotal: 100,
		}
	}

	t.Run("inherits the crop's irrigation method", func(t *testing.T) {
		repo := newRepo()
		svc := newTestCropService(repo, &fakeFieldProvider{})

		record, total, err := svc.AddIrrigation(
			context.Background(),
			"farmer-1", "crop-1",
			AddIrrigationRequest{IrrigationDate: "2026-07-01", AmountMM: 25},
		)
		if err != nil {
			t.Fatalf("AddIrrigation: %v", err)
		}
		if record.IrrigationMethod != "drip" {
			t.Errorf("method = %q, want drip", record.IrrigationMethod)
		}
		if total != 125 {
			t.Errorf("total = %v, want 125", total)
		}
	})

	t.Run("explicit method overrides the crop default", func(t *testing.T) {
		repo := newRepo()
		svc := newTestCropService(repo, &fakeFieldProvider{})

		record, _, err := svc.AddIrrigation(
			context.Background(),
			"farmer-1", "crop-1",
			AddIrrigationRequest{
				IrrigationDate:   "2026-07-01",
				AmountMM:         25,
				IrrigationMethod: strPtr("flood"),
			},
		)
		if err != nil {
			t.Fatalf("AddIrrigation: %v", err)
		}
		if record.IrrigationMethod != "flood" {
			t.Errorf("method = %q, want flood", record.IrrigationMethod)
		}
	})

	t.Run("ownership gate applies to appends", func(t *testing.T) {
		svc := newTestCropService(newRepo(), &fakeFieldProvider{})

		_, _, err := svc.AddIrrigation(
			context.Background(),
			"farmer-2", "crop-1",
			AddIrrigationRequest{IrrigationDate: "2026-07-01", AmountMM: 25},
		)
		if !errors.Is(err, core.ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestAddGrowthStageService(t *testing.T) {
	repo := &fakeRepository{crops: map[string]*Crop{
		"crop-1": {ID: "crop-1", UserID: "farmer-1"},
	}}
	svc := newTestCropService(repo, &fakeFieldProvider{})

	t.Run("rejects end date before start date", func(t *testing.T) {
		_, err := svc.AddGrowthStage(
			context.Background(),
			"farmer-1", "crop-1",
			AddGrowthStageRequest{
				StageName: "flowering",
				StartDate: "2026-08-01",
				EndDate:   strPtr("2026-07-01"),
			},
		)
		if !errors.Is(err, core.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("records the stage", func(t *testing.T) {
		stage, err := svc.AddGrowthStage(
			context.Background(),
			"farmer-1", "crop-1",
			AddGrowthStageRequest{
				StageName: "flowering",
				StartDate: "2026-08-01",
			},
		)
		if err != nil {
			t.Fatalf("AddGrowthStage: %v", err)
		}
		if stage.StageName != "flowering" {
			t.Errorf("stage = %q", stage.StageName)
		}
		if repo.stage == nil {
			t.Error("expected the stage to reach the store")
		}
	})
}
