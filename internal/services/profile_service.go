package services

import (
	"database/sql"
	"errors"

	"tradeyard/internal/domain"
	"tradeyard/internal/repos"
)

type ProfileService struct {
	Profiles *repos.ProfileRepo
}

func NewProfileService(p *repos.ProfileRepo) *ProfileService { return &ProfileService{Profiles: p} }

func (s *ProfileService) Buyer(userID string) (*domain.BuyerProfile, error) {
	p, err := s.Profiles.BuyerByUserID(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *ProfileService) UpdateBuyer(userID string, upd domain.BuyerProfile) (*domain.BuyerProfile, error) {
	p, err := s.Profiles.BuyerByUserID(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	p.CompanyName = upd.CompanyName
	p.ContactName = upd.ContactName
	p.Phone = upd.Phone
	p.Country = upd.Country
	if err := s.Profiles.UpdateBuyer(p); err != nil {
		return nil, err
	}
	return s.Profiles.BuyerByUserID(userID)
}

func (s *ProfileService) Seller(userID string) (*domain.SellerProfile, error) {
	p, err := s.Profiles.SellerByUserID(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *ProfileService) UpdateSeller(userID string, upd domain.SellerProfile) (*domain.SellerProfile, error) {
	p, err := s.Profiles.SellerByUserID(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	p.CompanyName = upd.CompanyName
	p.Description = upd.Description
	p.Website = upd.Website
	p.Phone = upd.Phone
	p.Country = upd.Country
	if err := s.Profiles.UpdateSeller(p); err != nil {
		return nil, err
	}
	return s.Profiles.SellerByUserID(userID)
}

// PublicSeller exposes only verified sellers.
func (s *ProfileService) PublicSeller(sellerID string) (*domain.SellerProfile, error) {
	p, err := s.Profiles.SellerByID(sellerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !p.Verified {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *ProfileService) ListPublicSellers(q string, page, pageSize int) ([]domain.SellerProfile, int, error) {
	offset := (page - 1) * pageSize
	return s.Profiles.ListVerifiedSellers(q, pageSize, offset)
}
