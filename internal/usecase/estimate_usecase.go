package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"constructhub/internal/domain/entities"
	"constructhub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound   = errors.New("estimate not found")
	ErrInvalidEstimateID  = errors.New("invalid estimate id")
	ErrInvalidEstimateVal = errors.New("invalid estimate amount")
	ErrInvalidCustomer    = errors.New("invalid customer reference")
	ErrInvalidStatus      = errors.New("invalid estimate status")
	ErrDirectConversion   = errors.New("status converted can only be set by the conversion procedure")
)

// NewEstimateInput carries the fields a caller supplies when opening an
// estimate. Status, id and timestamps are server-assigned.
type NewEstimateInput struct {
	CustomerID         string
	CustomerName       string
	ProjectName        string
	JobDescription     string
	Description        string
	EstimateAmount     float64
	ContingencyPercent float64
	SiteAddress        string
	SiteCity           string
	SiteState          string
	SiteZip            string
}

//go:generate mockgen -source=estimate_usecase.go -destination=../adapter/http/handlers/mocks/estimate_usecase.go -package=mocks

// IEstimateUseCase exposes estimate lifecycle operations.
//
// UpdateStatus and AllowedNextStatuses together form the client-facing
// status manager: callers are only ever offered transitions along the
// status graph, and every accepted transition is re-checked by the
// repository's conditional write.
type IEstimateUseCase interface {
	CreateEstimate(ctx context.Context, in NewEstimateInput) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	List(ctx context.Context, status string) ([]entities.Estimate, error)
	AllowedNextStatuses(ctx context.Context, id string) ([]entities.EstimateStatus, error)
	UpdateStatus(ctx context.Context, id string, target string) (entities.Estimate, error)
}

type EstimateUseCase struct {
	repo interfaces.IEstimateRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository) *EstimateUseCase {
	return &EstimateUseCase{repo: repo}
}

func (u *EstimateUseCase) CreateEstimate(ctx context.Context, in NewEstimateInput) (entities.Estimate, error) {
	if strings.TrimSpace(in.CustomerID) == "" && strings.TrimSpace(in.CustomerName) == "" {
		return entities.Estimate{}, ErrInvalidCustomer
	}
	if in.EstimateAmount <= 0 {
		return entities.Estimate{}, ErrInvalidEstimateVal
	}
	if in.ContingencyPercent < 0 {
		return entities.Estimate{}, ErrInvalidEstimateVal
	}

	now := time.Now().UTC()
	e := entities.Estimate{
		ID:                 uuid.NewString(),
		CustomerID:         strings.TrimSpace(in.CustomerID),
		CustomerName:       strings.TrimSpace(in.CustomerName),
		ProjectName:        strings.TrimSpace(in.ProjectName),
		JobDescription:     strings.TrimSpace(in.JobDescription),
		Description:        strings.TrimSpace(in.Description),
		EstimateAmount:     in.EstimateAmount,
		ContingencyPercent: in.ContingencyPercent,
		ContingencyAmount:  in.EstimateAmount * in.ContingencyPercent / 100,
		SiteAddress:        strings.TrimSpace(in.SiteAddress),
		SiteCity:           strings.TrimSpace(in.SiteCity),
		SiteState:          strings.TrimSpace(in.SiteState),
		SiteZip:            strings.TrimSpace(in.SiteZip),
		Status:             entities.EstimateStatusDraft,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	return u.repo.Create(ctx, e)
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) List(ctx context.Context, status string) ([]entities.Estimate, error) {
	var filter entities.EstimateStatus
	if strings.TrimSpace(status) != "" {
		parsed, ok := entities.ParseEstimateStatus(status)
		if !ok {
			return nil, ErrInvalidStatus
		}
		filter = parsed
	}
	return u.repo.List(ctx, filter)
}

// AllowedNextStatuses returns the reduced set of statuses the estimate may
// move to from its current status.
func (u *EstimateUseCase) AllowedNextStatuses(ctx context.Context, id string) ([]entities.EstimateStatus, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return e.Status.NextStatuses(), nil
}

// UpdateStatus drives a single transition of the status graph. The target is
// allow-listed against the current status before any write, and the
// repository re-checks the same edge with a conditional update, so a racing
// writer cannot sneak an illegal transition through. converted is never a
// legal target here: it requires the conversion procedure, which must set
// projectid in the same write.
func (u *EstimateUseCase) UpdateStatus(ctx context.Context, id string, target string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	status, ok := entities.ParseEstimateStatus(target)
	if !ok {
		return entities.Estimate{}, ErrInvalidStatus
	}
	if status == entities.EstimateStatusConverted {
		return entities.Estimate{}, ErrDirectConversion
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if current.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	if !current.Status.CanTransitionTo(status) {
		return entities.Estimate{}, &entities.InvalidTransitionError{From: current.Status, To: status}
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status, time.Now().UTC())
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	log.Printf("[estimate][usecase] status updated id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}
