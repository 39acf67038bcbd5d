package services

import (
	"database/sql"
	"errors"
	"fmt"

	"tradeyard/internal/domain"
	"tradeyard/internal/repos"

	"github.com/google/uuid"
)

type RFQService struct {
	RFQs     *repos.RFQRepo
	Profiles *repos.ProfileRepo
}

func NewRFQService(rfqs *repos.RFQRepo, profiles *repos.ProfileRepo) *RFQService {
	return &RFQService{RFQs: rfqs, Profiles: profiles}
}

func (s *RFQService) Create(buyerUserID string, rfq domain.RFQ) (domain.RFQ, error) {
	bp, err := s.Profiles.BuyerByUserID(buyerUserID)
	if err != nil {
		return domain.RFQ{}, ErrNotFound
	}
	rfq.ID = uuid.NewString()
	rfq.BuyerID = bp.ID
	if rfq.Unit == "" {
		rfq.Unit = "unit"
	}
	if err := s.RFQs.Create(&rfq); err != nil {
		return domain.RFQ{}, err
	}
	return s.RFQs.Get(rfq.ID)
}

func (s *RFQService) Get(id string) (domain.RFQ, error) {
	q, err := s.RFQs.Get(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.RFQ{}, ErrNotFound
		}
		return domain.RFQ{}, err
	}
	return q, nil
}

func (s *RFQService) ListOpen(categoryID string, page, pageSize int) ([]domain.RFQ, int, error) {
	offset := (page - 1) * pageSize
	return s.RFQs.ListOpen(categoryID, pageSize, offset)
}

func (s *RFQService) ListMine(buyerUserID string, page, pageSize int) ([]domain.RFQ, int, error) {
	bp, err := s.Profiles.BuyerByUserID(buyerUserID)
	if err != nil {
		return nil, 0, ErrNotFound
	}
	offset := (page - 1) * pageSize
	return s.RFQs.ListByBuyer(bp.ID, pageSize, offset)
}

func (s *RFQService) owned(buyerUserID, rfqID string) (domain.RFQ, error) {
	bp, err := s.Profiles.BuyerByUserID(buyerUserID)
	if err != nil {
		return domain.RFQ{}, ErrNotFound
	}
	q, err := s.RFQs.Get(rfqID)
	if err != nil {
		return domain.RFQ{}, ErrNotFound
	}
	if q.BuyerID != bp.ID {
		return domain.RFQ{}, ErrForbidden
	}
	return q, nil
}

func (s *RFQService) Close(buyerUserID, rfqID string) (domain.RFQ, error) {
	q, err := s.owned(buyerUserID, rfqID)
	if err != nil {
		return domain.RFQ{}, err
	}
	if q.Status == domain.RFQClosed {
		return domain.RFQ{}, fmt.Errorf("%w: request is already closed", ErrConflict)
	}
	if err := s.RFQs.UpdateStatus(rfqID, domain.RFQClosed); err != nil {
		return domain.RFQ{}, err
	}
	return s.RFQs.Get(rfqID)
}

// Delete refuses once quotes exist; sellers have already priced against it.
func (s *RFQService) Delete(buyerUserID, rfqID string) error {
	if _, err := s.owned(buyerUserID, rfqID); err != nil {
		return err
	}
	n, err := s.RFQs.CountQuotes(rfqID)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: request already has quotes", ErrConflict)
	}
	return s.RFQs.Delete(rfqID)
}
