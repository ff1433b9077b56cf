package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"constructhub/internal/domain/entities"
	mock_interfaces "constructhub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestConversionUseCase_ConvertEstimateToProject(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewConversionUseCase(nil, nil)
		_, err := uc.ConvertEstimateToProject(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewConversionUseCase(estimates, nil)

		estimates.EXPECT().GetByID(gomock.Any(), "EST-1").Return(entities.Estimate{}, nil)

		_, err := uc.ConvertEstimateToProject(context.Background(), "EST-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("already converted reports the existing project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewConversionUseCase(estimates, nil)

		estimates.EXPECT().GetByID(gomock.Any(), "EST-1").Return(entities.Estimate{
			ID:        "EST-1",
			Status:    entities.EstimateStatusConverted,
			ProjectID: "proj-9",
		}, nil)

		_, err := uc.ConvertEstimateToProject(context.Background(), "EST-1")
		var ace *AlreadyConvertedError
		if !errors.As(err, &ace) {
			t.Fatalf("expected AlreadyConvertedError, got %v", err)
		}
		if ace.ProjectID != "proj-9" {
			t.Fatalf("expected existing project id, got %q", ace.ProjectID)
		}
		if err.Error() != "estimate already converted to project proj-9" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	})

	t.Run("rejected estimates are not convertible", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewConversionUseCase(estimates, nil)

		estimates.EXPECT().GetByID(gomock.Any(), "EST-1").Return(entities.Estimate{
			ID:     "EST-1",
			Status: entities.EstimateStatusRejected,
		}, nil)

		_, err := uc.ConvertEstimateToProject(context.Background(), "EST-1")
		var nce *NotConvertibleError
		if !errors.As(err, &nce) {
			t.Fatalf("expected NotConvertibleError, got %v", err)
		}
		if err.Error() != "estimate must be in draft, pending, sent, or approved status to convert (current: rejected)" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	})

	t.Run("draft path produces an active project with the estimate budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		store := mock_interfaces.NewMockIConversionStore(ctrl)
		uc := NewConversionUseCase(estimates, store)

		est := entities.Estimate{
			ID:             "EST-1",
			Status:         entities.EstimateStatusDraft,
			EstimateAmount: 1000,
			ProjectName:    "Roof",
			CustomerName:   "Acme",
		}
		estimates.EXPECT().GetByID(gomock.Any(), "EST-1").Return(est, nil)
		store.EXPECT().Convert(gomock.Any(), "EST-1", gomock.AssignableToTypeOf(entities.Project{}), gomock.AssignableToTypeOf(time.Time{})).DoAndReturn(
			func(_ context.Context, _ string, p entities.Project, now time.Time) (bool, error) {
				if p.ID == "" {
					t.Fatalf("expected server-assigned project id")
				}
				if p.ProjectName != "Roof" || p.CustomerName != "Acme" {
					t.Fatalf("unexpected projection: %+v", p)
				}
				if p.TotalBudget != 1000 {
					t.Fatalf("expected budget 1000, got %v", p.TotalBudget)
				}
				if p.Status != entities.ProjectStatusActive {
					t.Fatalf("expected active project, got %s", p.Status)
				}
				if now.IsZero() || !p.CreatedAt.Equal(now) {
					t.Fatalf("expected project stamped with the transaction time")
				}
				return true, nil
			},
		)

		project, err := uc.ConvertEstimateToProject(context.Background(), " EST-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if project.ID == "" || project.TotalBudget != 1000 {
			t.Fatalf("unexpected project: %+v", project)
		}
	})

	t.Run("approved estimates convert directly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		store := mock_interfaces.NewMockIConversionStore(ctrl)
		uc := NewConversionUseCase(estimates, store)

		estimates.EXPECT().GetByID(gomock.Any(), "EST-2").Return(entities.Estimate{
			ID:             "EST-2",
			Status:         entities.EstimateStatusApproved,
			EstimateAmount: 50,
		}, nil)
		store.EXPECT().Convert(gomock.Any(), "EST-2", gomock.Any(), gomock.Any()).Return(true, nil)

		if _, err := uc.ConvertEstimateToProject(context.Background(), "EST-2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("transaction failure propagates as-is", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		store := mock_interfaces.NewMockIConversionStore(ctrl)
		uc := NewConversionUseCase(estimates, store)

		boom := errors.New("provisioned throughput exceeded")
		estimates.EXPECT().GetByID(gomock.Any(), "EST-1").Return(entities.Estimate{ID: "EST-1", Status: entities.EstimateStatusSent}, nil)
		store.EXPECT().Convert(gomock.Any(), "EST-1", gomock.Any(), gomock.Any()).Return(false, boom)

		_, err := uc.ConvertEstimateToProject(context.Background(), "EST-1")
		if !errors.Is(err, boom) {
			t.Fatalf("expected the store error verbatim, got %v", err)
		}
	})

	t.Run("concurrent conversion loses to the transaction condition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		store := mock_interfaces.NewMockIConversionStore(ctrl)
		uc := NewConversionUseCase(estimates, store)

		// First read still sees the unconverted row; the transaction condition
		// fails because the winner already set projectid.
		estimates.EXPECT().GetByID(gomock.Any(), "EST-1").Return(entities.Estimate{ID: "EST-1", Status: entities.EstimateStatusApproved}, nil)
		store.EXPECT().Convert(gomock.Any(), "EST-1", gomock.Any(), gomock.Any()).Return(false, nil)
		estimates.EXPECT().GetByID(gomock.Any(), "EST-1").Return(entities.Estimate{
			ID:        "EST-1",
			Status:    entities.EstimateStatusConverted,
			ProjectID: "proj-1",
		}, nil)

		_, err := uc.ConvertEstimateToProject(context.Background(), "EST-1")
		var ace *AlreadyConvertedError
		if !errors.As(err, &ace) || ace.ProjectID != "proj-1" {
			t.Fatalf("expected AlreadyConvertedError for proj-1, got %v", err)
		}
	})

	t.Run("conflict classification: row gone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		store := mock_interfaces.NewMockIConversionStore(ctrl)
		uc := NewConversionUseCase(estimates, store)

		estimates.EXPECT().GetByID(gomock.Any(), "EST-1").Return(entities.Estimate{ID: "EST-1", Status: entities.EstimateStatusDraft}, nil)
		store.EXPECT().Convert(gomock.Any(), "EST-1", gomock.Any(), gomock.Any()).Return(false, nil)
		estimates.EXPECT().GetByID(gomock.Any(), "EST-1").Return(entities.Estimate{}, nil)

		_, err := uc.ConvertEstimateToProject(context.Background(), "EST-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("conflict classification: raced into rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimates := mock_interfaces.NewMockIEstimateRepository(ctrl)
		store := mock_interfaces.NewMockIConversionStore(ctrl)
		uc := NewConversionUseCase(estimates, store)

		estimates.EXPECT().GetByID(gomock.Any(), "EST-1").Return(entities.Estimate{ID: "EST-1", Status: entities.EstimateStatusSent}, nil)
		store.EXPECT().Convert(gomock.Any(), "EST-1", gomock.Any(), gomock.Any()).Return(false, nil)
		estimates.EXPECT().GetByID(gomock.Any(), "EST-1").Return(entities.Estimate{ID: "EST-1", Status: entities.EstimateStatusRejected}, nil)

		_, err := uc.ConvertEstimateToProject(context.Background(), "EST-1")
		var nce *NotConvertibleError
		if !errors.As(err, &nce) || nce.Status != entities.EstimateStatusRejected {
			t.Fatalf("expected NotConvertibleError(rejected), got %v", err)
		}
	})
}
