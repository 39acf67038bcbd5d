package services

import (
	"fmt"
	"time"

	"tradeyard/internal/domain"
	"tradeyard/internal/repos"

	"github.com/google/uuid"
)

type QuoteService struct {
	Quotes   *repos.QuoteRepo
	RFQs     *repos.RFQRepo
	Profiles *repos.ProfileRepo
}

func NewQuoteService(quotes *repos.QuoteRepo, rfqs *repos.RFQRepo, profiles *repos.ProfileRepo) *QuoteService {
	return &QuoteService{Quotes: quotes, RFQs: rfqs, Profiles: profiles}
}

// Create submits a seller's quote against an open request. One quote per
// seller per request.
func (s *QuoteService) Create(sellerUserID string, q domain.Quote) (domain.Quote, error) {
	sp, err := s.Profiles.SellerByUserID(sellerUserID)
	if err != nil {
		return domain.Quote{}, ErrNotFound
	}
	rfq, err := s.RFQs.Get(q.RFQID)
	if err != nil {
		return domain.Quote{}, ErrNotFound
	}
	if rfq.Status != domain.RFQOpen {
		return domain.Quote{}, fmt.Errorf("%w: request is closed", ErrConflict)
	}
	exists, err := s.Quotes.ExistsForSeller(q.RFQID, sp.ID)
	if err != nil {
		return domain.Quote{}, err
	}
	if exists {
		return domain.Quote{}, fmt.Errorf("%w: you have already quoted this request", ErrConflict)
	}

	q.ID = uuid.NewString()
	q.SellerID = sp.ID
	if q.Currency == "" {
		q.Currency = "USD"
	}
	if err := s.Quotes.Create(&q); err != nil {
		return domain.Quote{}, err
	}
	return s.Quotes.Get(q.ID)
}

func (s *QuoteService) ListMine(sellerUserID string, page, pageSize int) ([]domain.Quote, int, error) {
	sp, err := s.Profiles.SellerByUserID(sellerUserID)
	if err != nil {
		return nil, 0, ErrNotFound
	}
	offset := (page - 1) * pageSize
	return s.Quotes.ListBySeller(sp.ID, pageSize, offset)
}

// ListForRFQ is buyer-side: only the request owner sees all its quotes.
func (s *QuoteService) ListForRFQ(buyerUserID, rfqID string) ([]domain.Quote, error) {
	bp, err := s.Profiles.BuyerByUserID(buyerUserID)
	if err != nil {
		return nil, ErrNotFound
	}
	rfq, err := s.RFQs.Get(rfqID)
	if err != nil {
		return nil, ErrNotFound
	}
	if rfq.BuyerID != bp.ID {
		return nil, ErrForbidden
	}
	return s.Quotes.ListByRFQ(rfqID)
}

func (s *QuoteService) ownedPending(sellerUserID, quoteID string) (domain.Quote, error) {
	sp, err := s.Profiles.SellerByUserID(sellerUserID)
	if err != nil {
		return domain.Quote{}, ErrNotFound
	}
	q, err := s.Quotes.Get(quoteID)
	if err != nil {
		return domain.Quote{}, ErrNotFound
	}
	if q.SellerID != sp.ID {
		return domain.Quote{}, ErrForbidden
	}
	if q.Status != domain.QuotePending {
		return domain.Quote{}, fmt.Errorf("%w: quote is %s", ErrConflict, q.Status)
	}
	return q, nil
}

func (s *QuoteService) Update(sellerUserID, quoteID string, upd domain.Quote) (domain.Quote, error) {
	q, err := s.ownedPending(sellerUserID, quoteID)
	if err != nil {
		return domain.Quote{}, err
	}
	q.Price = upd.Price
	if upd.Currency != "" {
		q.Currency = upd.Currency
	}
	q.DeliveryDays = upd.DeliveryDays
	q.ValidUntil = upd.ValidUntil
	q.Notes = upd.Notes
	if err := s.Quotes.Update(&q); err != nil {
		return domain.Quote{}, err
	}
	return s.Quotes.Get(quoteID)
}

func (s *QuoteService) Withdraw(sellerUserID, quoteID string) (domain.Quote, error) {
	q, err := s.ownedPending(sellerUserID, quoteID)
	if err != nil {
		return domain.Quote{}, err
	}
	if err := s.Quotes.UpdateStatus(q.ID, domain.QuoteWithdrawn); err != nil {
		return domain.Quote{}, err
	}
	return s.Quotes.Get(quoteID)
}

// Accept is buyer-side: the request owner picks a pending, unexpired quote.
// Siblings are rejected and the request closes.
func (s *QuoteService) Accept(buyerUserID, quoteID string) (domain.Quote, error) {
	bp, err := s.Profiles.BuyerByUserID(buyerUserID)
	if err != nil {
		return domain.Quote{}, ErrNotFound
	}
	q, err := s.Quotes.Get(quoteID)
	if err != nil {
		return domain.Quote{}, ErrNotFound
	}
	rfq, err := s.RFQs.Get(q.RFQID)
	if err != nil {
		return domain.Quote{}, ErrNotFound
	}
	if rfq.BuyerID != bp.ID {
		return domain.Quote{}, ErrForbidden
	}
	if q.Status != domain.QuotePending {
		return domain.Quote{}, fmt.Errorf("%w: quote is %s", ErrConflict, q.Status)
	}
	if q.ValidUntil != "" {
		if exp, err := time.Parse(time.RFC3339, q.ValidUntil); err == nil && time.Now().UTC().After(exp) {
			return domain.Quote{}, fmt.Errorf("%w: quote validity window has passed", ErrConflict)
		}
	}
	if err := s.Quotes.Accept(q.ID, q.RFQID); err != nil {
		return domain.Quote{}, err
	}
	return s.Quotes.Get(quoteID)
}
