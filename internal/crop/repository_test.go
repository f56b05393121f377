// AngelaMos | 2026
// repository_test.go

package crop

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/agrovia/farmconnect/internal/core"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestAddIrrigation(t *testing.T) {
	record := &IrrigationRecord{
		ID:               "rec-1",
		CropID:           "crop-1",
		IrrigationDate:   time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		AmountMM:         25.5,
		IrrigationMethod: "drip",
	}

	t.Run("inserts event and increments total in one transaction", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO irrigation_records`).
			WillReturnRows(sqlmock.NewRows([]string{"recorded_at"}).
				AddRow(time.Now()))
		mock.ExpectQuery(`UPDATE crops\s+SET total_water_used = total_water_used \+`).
			WithArgs("crop-1", 25.5).
			WillReturnRows(sqlmock.NewRows([]string{"total_water_used"}).
				AddRow(125.5))
		mock.ExpectCommit()

		total, err := repo.AddIrrigation(context.Background(), record)
		if err != nil {
			t.Fatalf("AddIrrigation: %v", err)
		}
		if total != 125.5 {
			t.Errorf("total = %v, want 125.5", total)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	t.Run("rolls back when the crop row is gone", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO irrigation_records`).
			WillReturnRows(sqlmock.NewRows([]string{"recorded_at"}).
				AddRow(time.Now()))
		mock.ExpectQuery(`UPDATE crops\s+SET total_water_used`).
			WillReturnRows(sqlmock.NewRows([]string{"total_water_used"}))
		mock.ExpectRollback()

		_, err := repo.AddIrrigation(context.Background(), record)
		if !errors.Is(err, core.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	t.Run("rolls back when the insert fails", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		insertErr := errors.New("disk full")
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO irrigation_records`).
			WillReturnError(insertErr)
		mock.ExpectRollback()

		_, err := repo.AddIrrigation(context.Background(), record)
		if !errors.Is(err, insertErr) {
			t.Errorf("expected insert error, got %v", err)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})
}

func TestAddFertilizer(t *testing.T) {
	record := &FertilizerRecord{
		ID:              "rec-2",
		CropID:          "crop-1",
		ApplicationDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		NutrientType:    NutrientNPK,
		AmountKgPerHa:   40,
	}

	t.Run("npk bumps all three totals", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO fertilizer_records`).
			WillReturnRows(sqlmock.NewRows([]string{"recorded_at"}).
				AddRow(time.Now()))
		mock.ExpectQuery(`UPDATE crops`).
			WithArgs("crop-1", 40.0).
			WillReturnRows(sqlmock.NewRows([]string{
				"total_nitrogen_applied",
				"total_phosphorus_applied",
				"total_potassium_applied",
			}).AddRow(90.0, 60.0, 55.0))
		mock.ExpectCommit()

		totals, err := repo.AddFertilizer(context.Background(), record)
		if err != nil {
			t.Fatalf("AddFertilizer: %v", err)
		}
		if totals.Nitrogen != 90 || totals.Phosphorus != 60 || totals.Potassium != 55 {
			t.Errorf("totals = %+v", totals)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	t.Run("invalid nutrient type never reaches the store", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		bad := *record
		bad.NutrientType = "calcium"

		_, err := repo.AddFertilizer(context.Background(), &bad)
		if !errors.Is(err, core.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unexpected store access: %v", err)
		}
	})
}

func TestNutrientSetClause(t *testing.T) {
	tests := []struct {
		nutrientType string
		wantColumns  []string
		wantErr      bool
	}{
		{NutrientNitrogen, []string{"total_nitrogen_applied"}, false},
		{NutrientPhosphorus, []string{"total_phosphorus_applied"}, false},
		{NutrientPotassium, []string{"total_potassium_applied"}, false},
		{NutrientNPK, []string{
			"total_nitrogen_applied",
			"total_phosphorus_applied",
			"total_potassium_applied",
		}, false},
		{"urea", nil, true},
		{"", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.nutrientType, func(t *testing.T) {
			clause, err := nutrientSetClause(tt.nutrientType)
			if tt.wantErr {
				if !errors.Is(err, core.ErrInvalidInput) {
					t.Errorf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("nutrientSetClause: %v", err)
			}
			for _, col := range tt.wantColumns {
				if !strings.Contains(clause, col) {
					t.Errorf("clause %q missing column %s", clause, col)
				}
			}
		})
	}
}
