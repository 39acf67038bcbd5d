package services

import (
	"fmt"

	"tradeyard/internal/domain"
	"tradeyard/internal/repos"

	"github.com/google/uuid"
)

type OrderService struct {
	Carts    *repos.CartRepo
	Prods    *repos.ProductRepo
	Orders   *repos.OrderRepo
	Profiles *repos.ProfileRepo
}

func NewOrderService(carts *repos.CartRepo, prods *repos.ProductRepo, orders *repos.OrderRepo, profiles *repos.ProfileRepo) *OrderService {
	return &OrderService{Carts: carts, Prods: prods, Orders: orders, Profiles: profiles}
}

// Checkout turns the buyer's cart into orders. Items are grouped by seller
// and one order is created per seller, all sharing a checkout group id.
// Stock is pre-checked across the whole cart before anything is decremented.
func (s *OrderService) Checkout(userID, shippingAddress string) ([]domain.Order, error) {
	bp, err := s.Profiles.BuyerByUserID(userID)
	if err != nil {
		return nil, ErrNotFound
	}

	items, err := s.Carts.Items(bp.ID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrInvalid)
	}

	// pre-check stock, keeping product names for the line-item snapshots
	productNames := make(map[string]string, len(items))
	for _, it := range items {
		p, err := s.Prods.Get(it.ProductID)
		if err != nil {
			return nil, ErrNotFound
		}
		if !p.Active {
			return nil, fmt.Errorf("%w: %s is no longer available", ErrConflict, p.Name)
		}
		if p.Stock < it.Qty {
			return nil, fmt.Errorf("%w: insufficient stock for %s (need %d, have %d)", ErrConflict, p.Name, it.Qty, p.Stock)
		}
		productNames[it.ProductID] = p.Name
	}

	// group by seller, preserving cart order
	groups := map[string][]domain.CartItem{}
	var sellerOrder []string
	for _, it := range items {
		if _, seen := groups[it.SellerID]; !seen {
			sellerOrder = append(sellerOrder, it.SellerID)
		}
		groups[it.SellerID] = append(groups[it.SellerID], it)
	}

	groupID := uuid.NewString()
	var created []domain.Order
	for _, sellerID := range sellerOrder {
		group := groups[sellerID]
		total := 0.0
		for _, it := range group {
			total += it.Price * float64(it.Qty)
		}

		sp, err := s.Profiles.SellerByID(sellerID)
		if err != nil {
			return nil, ErrNotFound
		}

		// party and product names are snapshotted onto the order so the
		// history outlives account or listing deletion
		o := domain.Order{
			ID:              uuid.NewString(),
			GroupID:         groupID,
			BuyerID:         bp.ID,
			SellerID:        sellerID,
			BuyerName:       bp.CompanyName,
			SellerName:      sp.CompanyName,
			Total:           total,
			Status:          domain.OrderPending,
			ShippingAddress: shippingAddress,
		}
		if err := s.Orders.Create(&o); err != nil {
			return nil, err
		}
		for _, it := range group {
			if err := s.Orders.InsertItem(o.ID, it.ProductID, productNames[it.ProductID], it.Qty, it.Price); err != nil {
				return nil, err
			}
			if err := s.Prods.DecrementStock(it.ProductID, it.Qty); err != nil {
				return nil, err
			}
		}
		if err := s.Orders.CreatePayment(o.ID, total); err != nil {
			return nil, err
		}
		full, _, err := s.Orders.Get(o.ID)
		if err != nil {
			return nil, err
		}
		created = append(created, full)
	}

	_ = s.Carts.Clear(bp.ID)
	return created, nil
}

// Get returns an order visible to its buyer, its seller or an admin.
func (s *OrderService) Get(userID, role, orderID string) (domain.Order, []domain.OrderItem, error) {
	o, items, err := s.Orders.Get(orderID)
	if err != nil {
		return domain.Order{}, nil, ErrNotFound
	}
	if role == domain.RoleAdmin {
		return o, items, nil
	}
	owner, err := s.isParty(userID, role, o)
	if err != nil {
		return domain.Order{}, nil, err
	}
	if !owner {
		return domain.Order{}, nil, ErrForbidden
	}
	return o, items, nil
}

func (s *OrderService) isParty(userID, role string, o domain.Order) (bool, error) {
	switch role {
	case domain.RoleBuyer:
		bp, err := s.Profiles.BuyerByUserID(userID)
		if err != nil {
			return false, ErrNotFound
		}
		return o.BuyerID == bp.ID, nil
	case domain.RoleSeller:
		sp, err := s.Profiles.SellerByUserID(userID)
		if err != nil {
			return false, ErrNotFound
		}
		return o.SellerID == sp.ID, nil
	}
	return false, nil
}

func (s *OrderService) List(userID, role string, page, pageSize int) ([]domain.Order, int, error) {
	offset := (page - 1) * pageSize
	switch role {
	case domain.RoleAdmin:
		return s.Orders.ListAll(pageSize, offset)
	case domain.RoleBuyer:
		bp, err := s.Profiles.BuyerByUserID(userID)
		if err != nil {
			return nil, 0, ErrNotFound
		}
		return s.Orders.ListByBuyer(bp.ID, pageSize, offset)
	case domain.RoleSeller:
		sp, err := s.Profiles.SellerByUserID(userID)
		if err != nil {
			return nil, 0, ErrNotFound
		}
		return s.Orders.ListBySeller(sp.ID, pageSize, offset)
	}
	return nil, 0, ErrForbidden
}

// UpdateStatus is the seller-side lifecycle. Only the owning seller may move
// an order forward, and SHIPPED requires a tracking number.
func (s *OrderService) UpdateStatus(sellerUserID, orderID, status, trackingNumber string) (domain.Order, error) {
	sp, err := s.Profiles.SellerByUserID(sellerUserID)
	if err != nil {
		return domain.Order{}, ErrNotFound
	}
	o, _, err := s.Orders.Get(orderID)
	if err != nil {
		return domain.Order{}, ErrNotFound
	}
	if o.SellerID != sp.ID {
		return domain.Order{}, ErrForbidden
	}
	if !domain.StatusTransitionAllowed(o.Status, status) {
		return domain.Order{}, fmt.Errorf("%w: cannot move order from %s to %s", ErrConflict, o.Status, status)
	}
	if status == domain.OrderShipped && trackingNumber == "" {
		return domain.Order{}, fmt.Errorf("%w: trackingNumber is required when shipping", ErrInvalid)
	}
	if err := s.Orders.UpdateStatus(orderID, status, trackingNumber); err != nil {
		return domain.Order{}, err
	}
	o, _, err = s.Orders.Get(orderID)
	return o, err
}

// Cancel is buyer-side and only valid while the order is still PENDING.
func (s *OrderService) Cancel(buyerUserID, orderID string) (domain.Order, error) {
	bp, err := s.Profiles.BuyerByUserID(buyerUserID)
	if err != nil {
		return domain.Order{}, ErrNotFound
	}
	o, _, err := s.Orders.Get(orderID)
	if err != nil {
		return domain.Order{}, ErrNotFound
	}
	if o.BuyerID != bp.ID {
		return domain.Order{}, ErrForbidden
	}
	if o.Status != domain.OrderPending {
		return domain.Order{}, fmt.Errorf("%w: only pending orders can be canceled", ErrConflict)
	}
	if err := s.Orders.UpdateStatus(orderID, domain.OrderCanceled, ""); err != nil {
		return domain.Order{}, err
	}
	o, _, err = s.Orders.Get(orderID)
	return o, err
}
