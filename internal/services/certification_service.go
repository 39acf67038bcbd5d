package services

import (
	"fmt"

	"tradeyard/internal/domain"
	"tradeyard/internal/repos"

	"github.com/google/uuid"
)

type CertificationService struct {
	Certs    *repos.CertificationRepo
	Profiles *repos.ProfileRepo
}

func NewCertificationService(certs *repos.CertificationRepo, profiles *repos.ProfileRepo) *CertificationService {
	return &CertificationService{Certs: certs, Profiles: profiles}
}

func (s *CertificationService) Create(sellerUserID string, c domain.Certification) (domain.Certification, error) {
	sp, err := s.Profiles.SellerByUserID(sellerUserID)
	if err != nil {
		return domain.Certification{}, ErrNotFound
	}
	c.ID = uuid.NewString()
	c.SellerID = sp.ID
	if err := s.Certs.Create(&c); err != nil {
		return domain.Certification{}, err
	}
	return s.Certs.Get(c.ID)
}

func (s *CertificationService) ListMine(sellerUserID string) ([]domain.Certification, error) {
	sp, err := s.Profiles.SellerByUserID(sellerUserID)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.Certs.ListBySeller(sp.ID)
}

func (s *CertificationService) ListApproved(sellerID string) ([]domain.Certification, error) {
	return s.Certs.ListApproved(sellerID)
}

// SetStatus is the admin moderation path.
func (s *CertificationService) SetStatus(certID, status string) (domain.Certification, error) {
	if status != "APPROVED" && status != "REJECTED" {
		return domain.Certification{}, fmt.Errorf("%w: status must be APPROVED or REJECTED", ErrInvalid)
	}
	if _, err := s.Certs.Get(certID); err != nil {
		return domain.Certification{}, ErrNotFound
	}
	if err := s.Certs.UpdateStatus(certID, status); err != nil {
		return domain.Certification{}, err
	}
	return s.Certs.Get(certID)
}
