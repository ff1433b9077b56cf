package usecase

import (
	"context"
	"errors"
	"testing"

	"constructhub/internal/domain/entities"
	mock_interfaces "constructhub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProjectUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewProjectUseCase(nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "proj-1").Return(entities.Project{}, nil)

		_, err := uc.GetByID(context.Background(), "proj-1")
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "proj-1").Return(entities.Project{ID: "proj-1", TotalBudget: 1000}, nil)

		res, err := uc.GetByID(context.Background(), " proj-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "proj-1" || res.TotalBudget != 1000 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestProjectUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIProjectRepository(ctrl)
	uc := NewProjectUseCase(repo)
	repo.EXPECT().List(gomock.Any()).Return([]entities.Project{{ID: "proj-1"}}, nil)

	res, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 1 || res[0].ID != "proj-1" {
		t.Fatalf("unexpected result: %+v", res)
	}
}
