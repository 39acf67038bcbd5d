package services

import (
	"database/sql"
	"errors"

	"tradeyard/internal/domain"
	"tradeyard/internal/repos"

	"github.com/google/uuid"
)

type CatalogService struct {
	Prods    *repos.ProductRepo
	Profiles *repos.ProfileRepo
}

func NewCatalogService(prods *repos.ProductRepo, profiles *repos.ProfileRepo) *CatalogService {
	return &CatalogService{Prods: prods, Profiles: profiles}
}

func (s *CatalogService) ListCategories() ([]domain.Category, error) {
	return s.Prods.ListCategories()
}

func (s *CatalogService) Get(id string) (domain.Product, error) {
	p, err := s.Prods.Get(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, ErrNotFound
		}
		return domain.Product{}, err
	}
	return p, nil
}

func (s *CatalogService) Search(f repos.ProductFilter, page, pageSize int) ([]domain.Product, int, error) {
	offset := (page - 1) * pageSize
	return s.Prods.Search(f, pageSize, offset)
}

func (s *CatalogService) ListMine(sellerUserID string, page, pageSize int) ([]domain.Product, int, error) {
	sp, err := s.Profiles.SellerByUserID(sellerUserID)
	if err != nil {
		return nil, 0, ErrNotFound
	}
	offset := (page - 1) * pageSize
	return s.Prods.ListBySeller(sp.ID, pageSize, offset)
}

func (s *CatalogService) Create(sellerUserID string, p domain.Product) (domain.Product, error) {
	sp, err := s.Profiles.SellerByUserID(sellerUserID)
	if err != nil {
		return domain.Product{}, ErrNotFound
	}
	p.ID = uuid.NewString()
	p.SellerID = sp.ID
	if p.Currency == "" {
		p.Currency = "USD"
	}
	if p.MinOrderQty < 1 {
		p.MinOrderQty = 1
	}
	if err := s.Prods.Create(&p); err != nil {
		return domain.Product{}, err
	}
	return s.Prods.Get(p.ID)
}

// Update enforces ownership at the data level; a mismatch is ErrForbidden,
// not ErrNotFound.
func (s *CatalogService) Update(sellerUserID, productID string, upd domain.Product) (domain.Product, error) {
	sp, err := s.Profiles.SellerByUserID(sellerUserID)
	if err != nil {
		return domain.Product{}, ErrNotFound
	}
	p, err := s.Prods.Get(productID)
	if err != nil {
		return domain.Product{}, ErrNotFound
	}
	if p.SellerID != sp.ID {
		return domain.Product{}, ErrForbidden
	}
	p.CategoryID = upd.CategoryID
	p.Name = upd.Name
	p.Description = upd.Description
	p.Price = upd.Price
	if upd.Currency != "" {
		p.Currency = upd.Currency
	}
	p.Stock = upd.Stock
	if upd.MinOrderQty >= 1 {
		p.MinOrderQty = upd.MinOrderQty
	}
	if err := s.Prods.Update(&p); err != nil {
		return domain.Product{}, err
	}
	return s.Prods.Get(productID)
}

func (s *CatalogService) Delete(sellerUserID, productID string) error {
	sp, err := s.Profiles.SellerByUserID(sellerUserID)
	if err != nil {
		return ErrNotFound
	}
	p, err := s.Prods.Get(productID)
	if err != nil {
		return ErrNotFound
	}
	if p.SellerID != sp.ID {
		return ErrForbidden
	}
	return s.Prods.SoftDelete(productID)
}

// Availability converts stock into IN_STOCK / LOW_STOCK / OUT_OF_STOCK.
func (s *CatalogService) Availability(productID string) (domain.Availability, error) {
	p, err := s.Get(productID)
	if err != nil {
		return domain.Availability{}, err
	}
	status := "OUT_OF_STOCK"
	switch {
	case p.Stock >= 5:
		status = "IN_STOCK"
	case p.Stock > 0:
		status = "LOW_STOCK"
	}
	return domain.Availability{Status: status, Qty: p.Stock}, nil
}
