package services

import (
	"fmt"

	"tradeyard/internal/domain"
	"tradeyard/internal/repos"
)

type CartService struct {
	Carts    *repos.CartRepo
	Prods    *repos.ProductRepo
	Profiles *repos.ProfileRepo
}

func NewCartService(carts *repos.CartRepo, prods *repos.ProductRepo, profiles *repos.ProfileRepo) *CartService {
	return &CartService{Carts: carts, Prods: prods, Profiles: profiles}
}

func (s *CartService) buyerID(userID string) (string, error) {
	bp, err := s.Profiles.BuyerByUserID(userID)
	if err != nil {
		return "", ErrNotFound
	}
	return bp.ID, nil
}

func (s *CartService) View(userID string) (domain.CartView, error) {
	bid, err := s.buyerID(userID)
	if err != nil {
		return domain.CartView{}, err
	}
	items, err := s.Carts.Items(bid)
	if err != nil {
		return domain.CartView{}, err
	}
	total := 0.0
	for _, it := range items {
		total += it.Subtotal
	}
	return domain.CartView{Items: items, Total: total}, nil
}

func (s *CartService) Add(userID, productID string, qty int) error {
	bid, err := s.buyerID(userID)
	if err != nil {
		return err
	}
	p, err := s.Prods.Get(productID)
	if err != nil {
		return ErrNotFound
	}
	if !p.Active {
		return fmt.Errorf("%w: product is not available", ErrConflict)
	}
	if qty < p.MinOrderQty {
		return fmt.Errorf("%w: minimum order quantity is %d", ErrInvalid, p.MinOrderQty)
	}
	return s.Carts.Upsert(bid, productID, qty, p.Price)
}

func (s *CartService) SetQty(userID, productID string, qty int) error {
	bid, err := s.buyerID(userID)
	if err != nil {
		return err
	}
	ok, err := s.Carts.SetQty(bid, productID, qty)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *CartService) Remove(userID, productID string) error {
	bid, err := s.buyerID(userID)
	if err != nil {
		return err
	}
	return s.Carts.Remove(bid, productID)
}

func (s *CartService) Clear(userID string) error {
	bid, err := s.buyerID(userID)
	if err != nil {
		return err
	}
	return s.Carts.Clear(bid)
}
