package services

import (
	"tradeyard/internal/domain"
	"tradeyard/internal/repos"
)

type AdminService struct {
	Users     *repos.UserRepo
	Profiles  *repos.ProfileRepo
	Orders    *repos.OrderRepo
	Payments  *repos.PaymentRepo
	Analytics *repos.AnalyticsRepo
}

func (s *AdminService) ListUsers(role string, page, pageSize int) ([]domain.User, int, error) {
	offset := (page - 1) * pageSize
	return s.Users.List(role, pageSize, offset)
}

func (s *AdminService) DeleteUser(id string) error {
	if _, err := s.Users.ByID(id); err != nil {
		return ErrNotFound
	}
	return s.Users.DeleteCascade(id)
}

func (s *AdminService) VerifySeller(sellerID string, verified bool) error {
	if err := s.Profiles.SetSellerVerified(sellerID, verified); err != nil {
		return ErrNotFound
	}
	return nil
}

func (s *AdminService) ListOrders(page, pageSize int) ([]domain.Order, int, error) {
	offset := (page - 1) * pageSize
	return s.Orders.ListAll(pageSize, offset)
}

type Analytics struct {
	Totals  repos.Totals            `json:"totals"`
	Revenue []repos.RevenueByStatus `json:"revenueByStatus"`
}

func (s *AdminService) Dashboard() (Analytics, error) {
	totals, err := s.Analytics.Totals()
	if err != nil {
		return Analytics{}, err
	}
	revenue, err := s.Analytics.RevenueByStatus()
	if err != nil {
		return Analytics{}, err
	}
	return Analytics{Totals: totals, Revenue: revenue}, nil
}

func (s *AdminService) PaymentReport(page, pageSize int) ([]repos.PaymentRow, int, error) {
	offset := (page - 1) * pageSize
	return s.Payments.Report(pageSize, offset)
}

func (s *AdminService) BackfillPaymentDescriptions() (int, error) {
	return s.Payments.BackfillDescriptions()
}
