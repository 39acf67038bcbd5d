package services

import (
	"tradeyard/internal/domain"
	"tradeyard/internal/repos"
)

// SavedProductService maintains a buyer's product shortlist.
type SavedProductService struct {
	Saved    *repos.SavedProductRepo
	Prods    *repos.ProductRepo
	Profiles *repos.ProfileRepo
}

func NewSavedProductService(saved *repos.SavedProductRepo, prods *repos.ProductRepo, profiles *repos.ProfileRepo) *SavedProductService {
	return &SavedProductService{Saved: saved, Prods: prods, Profiles: profiles}
}

func (s *SavedProductService) List(buyerUserID string) ([]domain.SavedProduct, error) {
	bp, err := s.Profiles.BuyerByUserID(buyerUserID)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.Saved.List(bp.ID)
}

func (s *SavedProductService) Save(buyerUserID, productID string) error {
	bp, err := s.Profiles.BuyerByUserID(buyerUserID)
	if err != nil {
		return ErrNotFound
	}
	if _, err := s.Prods.Get(productID); err != nil {
		return ErrNotFound
	}
	return s.Saved.Save(bp.ID, productID)
}

func (s *SavedProductService) Unsave(buyerUserID, productID string) error {
	bp, err := s.Profiles.BuyerByUserID(buyerUserID)
	if err != nil {
		return ErrNotFound
	}
	return s.Saved.Unsave(bp.ID, productID)
}
