package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"constructhub/internal/domain/entities"
	"constructhub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// AlreadyConvertedError is the idempotency guard: a second conversion of the
// same estimate fails and reports the project the first one created.
type AlreadyConvertedError struct {
	ProjectID string
}

func (e *AlreadyConvertedError) Error() string {
	return fmt.Sprintf("estimate already converted to project %s", e.ProjectID)
}

// NotConvertibleError reports a conversion attempt on an estimate outside
// the convertible statuses (draft, pending, sent, approved).
type NotConvertibleError struct {
	Status entities.EstimateStatus
}

func (e *NotConvertibleError) Error() string {
	return fmt.Sprintf("estimate must be in draft, pending, sent, or approved status to convert (current: %s)", e.Status)
}

//go:generate mockgen -source=conversion_usecase.go -destination=../adapter/http/handlers/mocks/conversion_usecase.go -package=mocks

// IConversionUseCase exposes the estimate-to-project conversion procedure.
type IConversionUseCase interface {
	ConvertEstimateToProject(ctx context.Context, estimateID string) (entities.Project, error)
}

// ConversionUseCase drives an estimate through approval and into converted,
// creating the linked project, in a single transactional write. Estimates in
// draft logically traverse draft -> pending -> approved -> converted inside
// that write; none of the intermediate statuses are ever observable.
type ConversionUseCase struct {
	estimates interfaces.IEstimateRepository
	store     interfaces.IConversionStore
}

var _ IConversionUseCase = (*ConversionUseCase)(nil)

func NewConversionUseCase(estimates interfaces.IEstimateRepository, store interfaces.IConversionStore) *ConversionUseCase {
	return &ConversionUseCase{estimates: estimates, store: store}
}

func (u *ConversionUseCase) ConvertEstimateToProject(ctx context.Context, estimateID string) (entities.Project, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.Project{}, ErrInvalidEstimateID
	}
	log.Printf("[convert][usecase] start estimate_id=%s", estimateID)

	est, err := u.estimates.GetByID(ctx, estimateID)
	if err != nil {
		log.Printf("[convert][usecase] failed loading estimate estimate_id=%s err=%v", estimateID, err)
		return entities.Project{}, err
	}
	if est.ID == "" {
		log.Printf("[convert][usecase] estimate not found estimate_id=%s", estimateID)
		return entities.Project{}, ErrEstimateNotFound
	}
	if est.ProjectID != "" {
		log.Printf("[convert][usecase] already converted estimate_id=%s project_id=%s", estimateID, est.ProjectID)
		return entities.Project{}, &AlreadyConvertedError{ProjectID: est.ProjectID}
	}
	if !est.Status.Convertible() {
		log.Printf("[convert][usecase] not convertible estimate_id=%s status=%s", estimateID, est.Status)
		return entities.Project{}, &NotConvertibleError{Status: est.Status}
	}

	now := time.Now().UTC()
	project := entities.NewProjectFromEstimate(est, uuid.NewString(), now)

	ok, err := u.store.Convert(ctx, est.ID, project, now)
	if err != nil {
		log.Printf("[convert][usecase] transaction failed estimate_id=%s err=%v", estimateID, err)
		return entities.Project{}, err
	}
	if !ok {
		// The transaction condition closed a race our read missed.
		// Re-read to classify which precondition now fails.
		return entities.Project{}, u.classifyConflict(ctx, estimateID)
	}

	log.Printf("[convert][usecase] success estimate_id=%s project_id=%s budget=%.2f", estimateID, project.ID, project.TotalBudget)
	return project, nil
}

func (u *ConversionUseCase) classifyConflict(ctx context.Context, estimateID string) error {
	current, err := u.estimates.GetByID(ctx, estimateID)
	if err != nil {
		return err
	}
	switch {
	case current.ID == "":
		return ErrEstimateNotFound
	case current.ProjectID != "":
		return &AlreadyConvertedError{ProjectID: current.ProjectID}
	default:
		return &NotConvertibleError{Status: current.Status}
	}
}
