package services

import (
	"tradeyard/internal/domain"
	"tradeyard/internal/repos"

	"github.com/google/uuid"
)

type ReviewService struct {
	Reviews  *repos.ReviewRepo
	Profiles *repos.ProfileRepo
}

func NewReviewService(reviews *repos.ReviewRepo, profiles *repos.ProfileRepo) *ReviewService {
	return &ReviewService{Reviews: reviews, Profiles: profiles}
}

func (s *ReviewService) Create(buyerUserID string, rv domain.Review) (domain.Review, error) {
	bp, err := s.Profiles.BuyerByUserID(buyerUserID)
	if err != nil {
		return domain.Review{}, ErrNotFound
	}
	if _, err := s.Profiles.SellerByID(rv.SellerID); err != nil {
		return domain.Review{}, ErrNotFound
	}
	rv.ID = uuid.NewString()
	rv.AuthorID = bp.ID
	if err := s.Reviews.Create(&rv); err != nil {
		return domain.Review{}, err
	}
	return s.Reviews.Get(rv.ID)
}

func (s *ReviewService) ListBySeller(sellerID string, page, pageSize int) ([]domain.Review, int, domain.ReviewSummary, error) {
	offset := (page - 1) * pageSize
	reviews, total, err := s.Reviews.ListBySeller(sellerID, pageSize, offset)
	if err != nil {
		return nil, 0, domain.ReviewSummary{}, err
	}
	summary, err := s.Reviews.Summary(sellerID)
	if err != nil {
		return nil, 0, domain.ReviewSummary{}, err
	}
	return reviews, total, summary, nil
}

func (s *ReviewService) owned(buyerUserID, reviewID string) (domain.Review, error) {
	bp, err := s.Profiles.BuyerByUserID(buyerUserID)
	if err != nil {
		return domain.Review{}, ErrNotFound
	}
	rv, err := s.Reviews.Get(reviewID)
	if err != nil {
		return domain.Review{}, ErrNotFound
	}
	if rv.AuthorID != bp.ID {
		return domain.Review{}, ErrForbidden
	}
	return rv, nil
}

func (s *ReviewService) Update(buyerUserID, reviewID string, upd domain.Review) (domain.Review, error) {
	rv, err := s.owned(buyerUserID, reviewID)
	if err != nil {
		return domain.Review{}, err
	}
	rv.Rating = upd.Rating
	rv.Title = upd.Title
	rv.Body = upd.Body
	if err := s.Reviews.Update(&rv); err != nil {
		return domain.Review{}, err
	}
	return s.Reviews.Get(reviewID)
}

func (s *ReviewService) Delete(buyerUserID, reviewID string) error {
	if _, err := s.owned(buyerUserID, reviewID); err != nil {
		return err
	}
	return s.Reviews.Delete(reviewID)
}
