package handlers

import (
	"tradeyard/internal/config"
	"tradeyard/internal/repos"
	"tradeyard/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	Tokens *services.TokenService

	AuthHandler          *AuthHandler
	ProfileHandler       *ProfileHandler
	ProductHandler       *ProductHandler
	CartHandler          *CartHandler
	OrderHandler         *OrderHandler
	RFQHandler           *RFQHandler
	QuoteHandler         *QuoteHandler
	ReviewHandler        *ReviewHandler
	CertificationHandler *CertificationHandler
	ContentHandler       *ContentHandler
	SearchHandler        *SearchHandler
	SavedProductHandler  *SavedProductHandler
	AdminHandler         *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	userRepo := repos.NewUserRepo(db)
	profileRepo := repos.NewProfileRepo(db)
	prodRepo := repos.NewProductRepo(db)
	cartRepo := repos.NewCartRepo(db)
	savedRepo := repos.NewSavedProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	paymentRepo := repos.NewPaymentRepo(db)
	rfqRepo := repos.NewRFQRepo(db)
	quoteRepo := repos.NewQuoteRepo(db)
	reviewRepo := repos.NewReviewRepo(db)
	certRepo := repos.NewCertificationRepo(db)
	contentRepo := repos.NewContentRepo(db)
	analyticsRepo := repos.NewAnalyticsRepo(db)

	tokens := services.NewTokenService(cfg.JWTSecret)
	authSvc := &services.AuthService{Users: userRepo, Profiles: profileRepo}
	profileSvc := services.NewProfileService(profileRepo)
	catalogSvc := services.NewCatalogService(prodRepo, profileRepo)
	cartSvc := services.NewCartService(cartRepo, prodRepo, profileRepo)
	savedSvc := services.NewSavedProductService(savedRepo, prodRepo, profileRepo)
	orderSvc := services.NewOrderService(cartRepo, prodRepo, orderRepo, profileRepo)
	rfqSvc := services.NewRFQService(rfqRepo, profileRepo)
	quoteSvc := services.NewQuoteService(quoteRepo, rfqRepo, profileRepo)
	reviewSvc := services.NewReviewService(reviewRepo, profileRepo)
	certSvc := services.NewCertificationService(certRepo, profileRepo)
	contentSvc := services.NewContentService(contentRepo)
	adminSvc := &services.AdminService{
		Users: userRepo, Profiles: profileRepo, Orders: orderRepo,
		Payments: paymentRepo, Analytics: analyticsRepo,
	}

	return &Deps{
		Tokens: tokens,

		AuthHandler:          &AuthHandler{Auth: authSvc, Tokens: tokens, TestCompatMode: cfg.TestCompatMode},
		ProfileHandler:       &ProfileHandler{Profiles: profileSvc, Reviews: reviewSvc, Certs: certSvc},
		ProductHandler:       &ProductHandler{Catalog: catalogSvc},
		CartHandler:          &CartHandler{Cart: cartSvc},
		OrderHandler:         &OrderHandler{Orders: orderSvc},
		RFQHandler:           &RFQHandler{RFQs: rfqSvc, Quotes: quoteSvc},
		QuoteHandler:         &QuoteHandler{Quotes: quoteSvc},
		ReviewHandler:        &ReviewHandler{Reviews: reviewSvc},
		CertificationHandler: &CertificationHandler{Certs: certSvc},
		ContentHandler:       &ContentHandler{Content: contentSvc},
		SearchHandler:        &SearchHandler{Catalog: catalogSvc, Profiles: profileSvc},
		SavedProductHandler:  &SavedProductHandler{Saved: savedSvc},
		AdminHandler:         &AdminHandler{Admin: adminSvc},
	}
}
