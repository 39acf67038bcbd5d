package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// sqlite permits one writer; a single pooled conn also keeps
	// in-memory databases from splitting across connections.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline data if DB is empty (categories/content)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	// Ensure demo accounts and listings exist (idempotent; safe to run every start)
	if err := seedAccounts(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Users & password resets
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('BUYER','SELLER','ADMIN')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS password_resets(
  token TEXT PRIMARY KEY,
  user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  expires_at TEXT NOT NULL,
  used INTEGER NOT NULL DEFAULT 0
);

-- Profiles
CREATE TABLE IF NOT EXISTS buyer_profiles(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
  company_name TEXT NOT NULL,
  contact_name TEXT NOT NULL DEFAULT '',
  phone TEXT NOT NULL DEFAULT '',
  country TEXT NOT NULL DEFAULT '',
  verified INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);

CREATE TABLE IF NOT EXISTS seller_profiles(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
  company_name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  website TEXT NOT NULL DEFAULT '',
  phone TEXT NOT NULL DEFAULT '',
  country TEXT NOT NULL DEFAULT '',
  verified INTEGER NOT NULL DEFAULT 0,
  premium INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);

-- Catalog
CREATE TABLE IF NOT EXISTS categories(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name_nocase ON categories(LOWER(name));

CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  seller_id TEXT NOT NULL REFERENCES seller_profiles(id) ON DELETE CASCADE,
  category_id TEXT NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  price NUMERIC NOT NULL CHECK (price >= 0),
  currency TEXT NOT NULL DEFAULT 'USD',
  stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
  min_order_qty INTEGER NOT NULL DEFAULT 1 CHECK (min_order_qty >= 1),
  active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_seller   ON products(seller_id);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id);
CREATE INDEX IF NOT EXISTS idx_products_name     ON products(LOWER(name));

-- Cart & saved products (buyer-keyed)
CREATE TABLE IF NOT EXISTS cart_items(
  buyer_id   TEXT NOT NULL REFERENCES buyer_profiles(id) ON DELETE CASCADE,
  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  qty INTEGER NOT NULL CHECK (qty >= 1),
  price_at_add NUMERIC NOT NULL,
  updated_at TEXT,
  PRIMARY KEY (buyer_id, product_id)
);

CREATE TABLE IF NOT EXISTS saved_products(
  buyer_id   TEXT NOT NULL REFERENCES buyer_profiles(id) ON DELETE CASCADE,
  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY (buyer_id, product_id)
);

-- Orders (one row per seller within a checkout group). Party names are
-- copied onto the row at checkout so order history survives account
-- deletion; buyer_id/seller_id deliberately carry no FK.
CREATE TABLE IF NOT EXISTS orders(
  id TEXT PRIMARY KEY,
  group_id TEXT NOT NULL,
  buyer_id TEXT NOT NULL,
  seller_id TEXT NOT NULL,
  buyer_name TEXT NOT NULL DEFAULT '',
  seller_name TEXT NOT NULL DEFAULT '',
  total NUMERIC NOT NULL,
  status TEXT NOT NULL DEFAULT 'PENDING',
  shipping_address TEXT NOT NULL DEFAULT '',
  tracking_number TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_orders_buyer  ON orders(buyer_id);
CREATE INDEX IF NOT EXISTS idx_orders_seller ON orders(seller_id);
CREATE INDEX IF NOT EXISTS idx_orders_group  ON orders(group_id);

-- Line items snapshot the product name so history survives product deletion.
CREATE TABLE IF NOT EXISTS order_items(
  order_id  TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
  product_id TEXT NOT NULL,
  name TEXT NOT NULL DEFAULT '',
  qty INTEGER NOT NULL,
  unit_price NUMERIC NOT NULL,
  PRIMARY KEY (order_id, product_id)
);

CREATE TABLE IF NOT EXISTS payments(
  order_id TEXT PRIMARY KEY REFERENCES orders(id) ON DELETE CASCADE,
  amount NUMERIC NOT NULL,
  method TEXT NOT NULL DEFAULT 'INVOICE',
  description TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

-- RFQs & quotes
CREATE TABLE IF NOT EXISTS rfqs(
  id TEXT PRIMARY KEY,
  buyer_id TEXT NOT NULL REFERENCES buyer_profiles(id) ON DELETE CASCADE,
  category_id TEXT NOT NULL DEFAULT '',
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  quantity INTEGER NOT NULL CHECK (quantity >= 1),
  unit TEXT NOT NULL DEFAULT 'unit',
  delivery_deadline TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL DEFAULT 'OPEN' CHECK (status IN ('OPEN','CLOSED')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_rfqs_buyer  ON rfqs(buyer_id);
CREATE INDEX IF NOT EXISTS idx_rfqs_status ON rfqs(status);

CREATE TABLE IF NOT EXISTS quotes(
  id TEXT PRIMARY KEY,
  rfq_id TEXT NOT NULL REFERENCES rfqs(id) ON DELETE CASCADE,
  seller_id TEXT NOT NULL REFERENCES seller_profiles(id) ON DELETE CASCADE,
  price NUMERIC NOT NULL CHECK (price >= 0),
  currency TEXT NOT NULL DEFAULT 'USD',
  delivery_days INTEGER NOT NULL DEFAULT 0,
  valid_until TEXT NOT NULL DEFAULT '',
  notes TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL DEFAULT 'PENDING' CHECK (status IN ('PENDING','ACCEPTED','REJECTED','WITHDRAWN')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  UNIQUE (rfq_id, seller_id)
);
CREATE INDEX IF NOT EXISTS idx_quotes_rfq    ON quotes(rfq_id);
CREATE INDEX IF NOT EXISTS idx_quotes_seller ON quotes(seller_id);

-- Reviews
CREATE TABLE IF NOT EXISTS reviews(
  id TEXT PRIMARY KEY,
  author_id TEXT NOT NULL REFERENCES buyer_profiles(id) ON DELETE CASCADE,
  seller_id TEXT NOT NULL REFERENCES seller_profiles(id) ON DELETE CASCADE,
  product_id TEXT NOT NULL DEFAULT '',
  rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
  title TEXT NOT NULL DEFAULT '',
  body TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_reviews_seller ON reviews(seller_id);

-- Certifications
CREATE TABLE IF NOT EXISTS certifications(
  id TEXT PRIMARY KEY,
  seller_id TEXT NOT NULL REFERENCES seller_profiles(id) ON DELETE CASCADE,
  name TEXT NOT NULL,
  issuer TEXT NOT NULL DEFAULT '',
  document_url TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL DEFAULT 'PENDING' CHECK (status IN ('PENDING','APPROVED','REJECTED')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_certifications_seller ON certifications(seller_id);

-- Content
CREATE TABLE IF NOT EXISTS content_categories(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  slug TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS content_tags(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  slug TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS content_items(
  id TEXT PRIMARY KEY,
  category_id TEXT NOT NULL REFERENCES content_categories(id) ON DELETE RESTRICT,
  title TEXT NOT NULL,
  slug TEXT NOT NULL UNIQUE,
  body TEXT NOT NULL DEFAULT '',
  published INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);

CREATE TABLE IF NOT EXISTS content_item_tags(
  item_id TEXT NOT NULL REFERENCES content_items(id) ON DELETE CASCADE,
  tag_id  TEXT NOT NULL REFERENCES content_tags(id) ON DELETE CASCADE,
  PRIMARY KEY (item_id, tag_id)
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM categories`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting baseline categories/content")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO categories(id,name) VALUES
	  ('industrial-equipment','Industrial Equipment'),
	  ('raw-materials','Raw Materials'),
	  ('packaging','Packaging & Printing'),
	  ('electronics','Electronic Components')`)

	tx.MustExec(`INSERT INTO content_categories(id,name,slug) VALUES
	  ('cc-guides','Buyer Guides','buyer-guides'),
	  ('cc-news','Marketplace News','news')`)

	tx.MustExec(`INSERT INTO content_tags(id,name,slug) VALUES
	  ('ct-sourcing','Sourcing','sourcing'),
	  ('ct-logistics','Logistics','logistics')`)

	return tx.Commit()
}

// Fixed ids for seeded rows. Path parameters are validated as UUIDs, so the
// seeds use stable UUIDs rather than slugs.
const (
	SeedAdminID     = "1c9a7b42-6d3e-4f8a-9b21-0e5d4c3b2a10"
	SeedBuyerUserID = "2d8b6c53-7e4f-4a9b-8c32-1f6e5d4c3b21"
	SeedSellerUser  = "3e7c5d64-8f5a-4b1c-9d43-2a7f6e5d4c32"
	SeedBuyerID     = "4f6d4e75-9a6b-4c2d-8e54-3b8a7f6e5d43"
	SeedSellerID    = "5a5e3f86-ab7c-4d3e-9f65-4c9b8a7f6e54"
	SeedProductVise = "6b4f2a97-bc8d-4e4f-8a76-5dac9b8a7f65"
	SeedProductAlu  = "7c3a1b08-cd9e-4f5a-9b87-6ebdac9b8a76"
)

// seedAccounts ensures one admin, one buyer and one seller exist, with
// profiles and a couple of listings for the seller (idempotent).
func seedAccounts(db *sqlx.DB) error {
	type u struct {
		ID, Email, Name, Role, Hash string
	}
	mk := func(id, email, name, role, raw string) u {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return u{ID: id, Email: email, Name: name, Role: role, Hash: string(h)}
	}

	users := []u{
		mk(SeedAdminID, "admin@tradeyard.test", "Admin", "ADMIN", "Passw0rd!"),
		mk(SeedBuyerUserID, "buyer@tradeyard.test", "Blake Buyer", "BUYER", "Passw0rd!"),
		mk(SeedSellerUser, "seller@tradeyard.test", "Sam Seller", "SELLER", "Passw0rd!"),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		if _, err := tx.Exec(`
			INSERT INTO users(id,email,name,password_hash,role)
			VALUES(?,?,?,?,?)
			ON CONFLICT(email) DO NOTHING
		`, x.ID, x.Email, x.Name, x.Hash, x.Role); err != nil {
			return err
		}
	}

	_, _ = tx.Exec(`
		INSERT INTO buyer_profiles(id,user_id,company_name,contact_name,country,verified)
		SELECT ?,?,'Acme Procurement','Blake Buyer','US',1
		WHERE NOT EXISTS (SELECT 1 FROM buyer_profiles WHERE user_id=?)
	`, SeedBuyerID, SeedBuyerUserID, SeedBuyerUserID)
	_, _ = tx.Exec(`
		INSERT INTO seller_profiles(id,user_id,company_name,description,country,verified)
		SELECT ?,?,'Vulcan Industrial Supply','Machining and fabrication supplier','DE',1
		WHERE NOT EXISTS (SELECT 1 FROM seller_profiles WHERE user_id=?)
	`, SeedSellerID, SeedSellerUser, SeedSellerUser)

	_, _ = tx.Exec(`
		INSERT INTO products(id,seller_id,category_id,name,description,price,currency,stock,min_order_qty)
		SELECT ?,?,'industrial-equipment',
		       'CNC Machine Vise 150mm','Precision-ground machine vise for CNC milling.',
		       219.00,'USD',40,1
		WHERE NOT EXISTS (SELECT 1 FROM products WHERE id=?)
	`, SeedProductVise, SeedSellerID, SeedProductVise)
	_, _ = tx.Exec(`
		INSERT INTO products(id,seller_id,category_id,name,description,price,currency,stock,min_order_qty)
		SELECT ?,?,'raw-materials',
		       'Aluminium Sheet 5083 2mm','Marine-grade aluminium sheet, 1250x2500mm.',
		       86.50,'USD',500,10
		WHERE NOT EXISTS (SELECT 1 FROM products WHERE id=?)
	`, SeedProductAlu, SeedSellerID, SeedProductAlu)

	return tx.Commit()
}
