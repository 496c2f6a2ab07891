package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"pcg_compliance/internal/domain/entities"
	"pcg_compliance/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidRequirement   = errors.New("invalid requirement")
	ErrRequirementNotFound  = errors.New("requirement not found")
	ErrInvalidRequirementID = errors.New("invalid requirement id")
)

// IRequirementUseCase manages the per-company document requirement catalog.

type IRequirementUseCase interface {
	Create(ctx context.Context, companyID, nombre, descripcion string, esObligatorio bool) (entities.Requirement, error)
	ListByCompany(ctx context.Context, companyID string, onlyActive bool) ([]entities.Requirement, error)
	SetActive(ctx context.Context, companyID, requirementID string, active bool) (entities.Requirement, error)
}

type RequirementUseCase struct {
	repo interfaces.IRequirementRepository
}

var _ IRequirementUseCase = (*RequirementUseCase)(nil)

func NewRequirementUseCase(repo interfaces.IRequirementRepository) *RequirementUseCase {
	return &RequirementUseCase{repo: repo}
}

func (u *RequirementUseCase) Create(ctx context.Context, companyID, nombre, descripcion string, esObligatorio bool) (entities.Requirement, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return entities.Requirement{}, ErrInvalidCompanyID
	}
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return entities.Requirement{}, ErrInvalidRequirement
	}

	now := time.Now().UTC()
	r := entities.Requirement{
		ID:            uuid.NewString(),
		CompanyID:     companyID,
		Nombre:        nombre,
		Descripcion:   strings.TrimSpace(descripcion),
		Activo:        true,
		EsObligatorio: esObligatorio,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return u.repo.Create(ctx, r)
}

func (u *RequirementUseCase) ListByCompany(ctx context.Context, companyID string, onlyActive bool) ([]entities.Requirement, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}
	return u.repo.ListByCompany(ctx, companyID, onlyActive)
}

func (u *RequirementUseCase) SetActive(ctx context.Context, companyID, requirementID string, active bool) (entities.Requirement, error) {
	companyID = strings.TrimSpace(companyID)
	requirementID = strings.TrimSpace(requirementID)
	if companyID == "" {
		return entities.Requirement{}, ErrInvalidCompanyID
	}
	if requirementID == "" {
		return entities.Requirement{}, ErrInvalidRequirementID
	}

	r, err := u.repo.GetByID(ctx, requirementID)
	if err != nil {
		return entities.Requirement{}, err
	}
	if r.ID == "" || r.CompanyID != companyID {
		return entities.Requirement{}, ErrRequirementNotFound
	}

	updated, err := u.repo.SetActive(ctx, requirementID, active)
	if err != nil {
		return entities.Requirement{}, err
	}
	if updated.ID == "" {
		return entities.Requirement{}, ErrRequirementNotFound
	}
	return updated, nil
}
