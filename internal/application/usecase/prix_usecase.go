package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/application/dto"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/entity"
	"github.com/anmolvishvas/gestion-entreprise-sub000/internal/domain/repository"
)

// PrixUseCase CRUD fiches de prix (indépendant du stock).
type PrixUseCase struct {
	repo repository.PrixRepository
}

// NewPrixUseCase construit le cas d'usage.
func NewPrixUseCase(repo repository.PrixRepository) *PrixUseCase {
	return &PrixUseCase{repo: repo}
}

// Create crée une fiche de prix.
func (uc *PrixUseCase) Create(in dto.PrixRequest) (*dto.PrixResponse, error) {
	if err := validatePrix(in); err != nil {
		return nil, err
	}
	now := time.Now()
	p := &entity.Prix{
		ID:         uuid.New().String(),
		Type:       in.Type,
		NomArticle: in.NomArticle,
		Reference:  in.Reference,
		PrixCarton: in.PrixCarton,
		PrixDetail: in.PrixDetail,
		PrixAchat:  in.PrixAchat,
		PrixVente:  in.PrixVente,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toPrixResponse(p), nil
}

// GetByID renvoie une fiche par ID.
func (uc *PrixUseCase) GetByID(id string) (*dto.PrixResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toPrixResponse(p), nil
}

// Update remplace une fiche (PUT complet).
func (uc *PrixUseCase) Update(id string, in dto.PrixRequest) (*dto.PrixResponse, error) {
	if err := validatePrix(in); err != nil {
		return nil, err
	}
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	p.Type = in.Type
	p.NomArticle = in.NomArticle
	p.Reference = in.Reference
	p.PrixCarton = in.PrixCarton
	p.PrixDetail = in.PrixDetail
	p.PrixAchat = in.PrixAchat
	p.PrixVente = in.PrixVente
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toPrixResponse(p), nil
}

// List renvoie toutes les fiches.
func (uc *PrixUseCase) List() ([]dto.PrixResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PrixResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPrixResponse(p))
	}
	return out, nil
}

// Delete supprime une fiche.
func (uc *PrixUseCase) Delete(id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// validatePrix vérifie la catégorie, le nom et la positivité des montants
// renseignés.
func validatePrix(in dto.PrixRequest) error {
	if !entity.ValidPrixType(in.Type) || in.NomArticle == "" {
		return domain.ErrInvalidInput
	}
	for _, m := range []*decimal.Decimal{in.PrixCarton, in.PrixDetail, in.PrixAchat, in.PrixVente} {
		if m != nil && m.IsNegative() {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

func toPrixResponse(p *entity.Prix) *dto.PrixResponse {
	return &dto.PrixResponse{
		ID:         p.ID,
		Type:       p.Type,
		NomArticle: p.NomArticle,
		Reference:  p.Reference,
		PrixCarton: p.PrixCarton,
		PrixDetail: p.PrixDetail,
		PrixAchat:  p.PrixAchat,
		PrixVente:  p.PrixVente,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
