package services

import (
	"database/sql"
	"errors"
	"strings"

	"tradeyard/internal/domain"
	"tradeyard/internal/repos"

	"github.com/google/uuid"
)

type ContentService struct {
	Content *repos.ContentRepo
}

func NewContentService(content *repos.ContentRepo) *ContentService {
	return &ContentService{Content: content}
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z', '0' <= r && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// ---------- items ----------

func (s *ContentService) CreateItem(it domain.ContentItem, tagIDs []string) (domain.ContentItem, error) {
	it.ID = uuid.NewString()
	if it.Slug == "" {
		it.Slug = slugify(it.Title)
	}
	if err := s.Content.CreateItem(&it, tagIDs); err != nil {
		return domain.ContentItem{}, err
	}
	return s.Content.ItemByID(it.ID)
}

func (s *ContentService) UpdateItem(id string, upd domain.ContentItem, tagIDs []string) (domain.ContentItem, error) {
	it, err := s.Content.ItemByID(id)
	if err != nil {
		return domain.ContentItem{}, ErrNotFound
	}
	it.CategoryID = upd.CategoryID
	it.Title = upd.Title
	if upd.Slug != "" {
		it.Slug = upd.Slug
	}
	it.Body = upd.Body
	it.Published = upd.Published
	if err := s.Content.UpdateItem(&it, tagIDs); err != nil {
		return domain.ContentItem{}, err
	}
	return s.Content.ItemByID(id)
}

func (s *ContentService) DeleteItem(id string) error {
	if _, err := s.Content.ItemByID(id); err != nil {
		return ErrNotFound
	}
	return s.Content.DeleteItem(id)
}

func (s *ContentService) PublishedBySlug(slug string) (domain.ContentItem, error) {
	it, err := s.Content.ItemBySlug(slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ContentItem{}, ErrNotFound
		}
		return domain.ContentItem{}, err
	}
	return it, nil
}

func (s *ContentService) ListPublished(categoryID, tag string, page, pageSize int) ([]domain.ContentItem, int, error) {
	offset := (page - 1) * pageSize
	return s.Content.ListPublished(categoryID, tag, pageSize, offset)
}

// ---------- categories & tags ----------

func (s *ContentService) ListCategories() ([]domain.ContentCategory, error) {
	return s.Content.ListCategories()
}

func (s *ContentService) CreateCategory(name string) (domain.ContentCategory, error) {
	c := domain.ContentCategory{ID: uuid.NewString(), Name: name, Slug: slugify(name)}
	if err := s.Content.CreateCategory(&c); err != nil {
		return domain.ContentCategory{}, err
	}
	return c, nil
}

func (s *ContentService) DeleteCategory(id string) error {
	return s.Content.DeleteCategory(id)
}

func (s *ContentService) ListTags() ([]domain.ContentTag, error) {
	return s.Content.ListTags()
}

func (s *ContentService) CreateTag(name string) (domain.ContentTag, error) {
	t := domain.ContentTag{ID: uuid.NewString(), Name: name, Slug: slugify(name)}
	if err := s.Content.CreateTag(&t); err != nil {
		return domain.ContentTag{}, err
	}
	return t, nil
}

func (s *ContentService) DeleteTag(id string) error {
	return s.Content.DeleteTag(id)
}
