package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"charter-backend/models"
	"charter-backend/utils"

	"gorm.io/gorm"
)

var (
	ErrArticleNotFound  = errors.New("article_not_found")
	ErrArticleRequired  = errors.New("article_title_and_content_required")
	ErrInvalidCategory  = errors.New("invalid_article_category")
	ErrInvalidArtStatus = errors.New("invalid_article_status")
)

// ArticleService wraps *gorm.DB for CMS content operations.
type ArticleService struct {
	DB *gorm.DB
}

func NewArticleService(db *gorm.DB) *ArticleService {
	return &ArticleService{DB: db}
}

// ListPublished returns published articles newest first, optionally
// narrowed to one category ("all"/empty passes through).
func (s *ArticleService) ListPublished(category string) ([]models.Article, error) {
	q := s.DB.Where("status = ?", models.ArticleStatusPublished).
		Order("published_at DESC")
	if category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}
	var articles []models.Article
	if err := q.Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("failed to list published articles: %w", err)
	}
	return articles, nil
}

// ListAll returns every article for the admin editor, drafts included.
func (s *ArticleService) ListAll() ([]models.Article, error) {
	var articles []models.Article
	if err := s.DB.Order("created_at DESC").Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return articles, nil
}

// GetPublishedBySlug resolves a public article. Drafts behave as not found.
func (s *ArticleService) GetPublishedBySlug(slug string) (*models.Article, error) {
	article, err := s.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if article.Status != models.ArticleStatusPublished {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

func (s *ArticleService) GetBySlug(slug string) (*models.Article, error) {
	var article models.Article
	if err := s.DB.Where("slug = ?", slug).First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to load article %q: %w", slug, err)
	}
	return &article, nil
}

func (s *ArticleService) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	if err := s.DB.First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to load article %d: %w", id, err)
	}
	return &article, nil
}

func (s *ArticleService) Create(article *models.Article) error {
	if err := validateArticle(article); err != nil {
		return err
	}
	if article.Status == "" {
		article.Status = models.ArticleStatusDraft
	}
	slug, err := s.uniqueSlug(article.Title, 0)
	if err != nil {
		return err
	}
	article.Slug = slug
	if article.Status == models.ArticleStatusPublished && article.PublishedAt == nil {
		now := time.Now().UTC()
		article.PublishedAt = &now
	}
	if err := s.DB.Create(article).Error; err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}
	return nil
}

func (s *ArticleService) Update(id uint, draft *models.Article) (*models.Article, error) {
	if err := validateArticle(draft); err != nil {
		return nil, err
	}
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	draft.ID = existing.ID
	draft.CreatedAt = existing.CreatedAt
	draft.Slug = existing.Slug
	if draft.Title != existing.Title {
		slug, err := s.uniqueSlug(draft.Title, existing.ID)
		if err != nil {
			return nil, err
		}
		draft.Slug = slug
	}

	if draft.Status == "" {
		draft.Status = existing.Status
	}
	if !validArticleStatus(draft.Status) {
		return nil, ErrInvalidArtStatus
	}

	// publishing transition stamps published_at once
	draft.PublishedAt = existing.PublishedAt
	if draft.Status == models.ArticleStatusPublished && existing.Status != models.ArticleStatusPublished {
		now := time.Now().UTC()
		draft.PublishedAt = &now
	}

	if err := s.DB.Save(draft).Error; err != nil {
		return nil, fmt.Errorf("failed to update article %d: %w", id, err)
	}
	return draft, nil
}

func (s *ArticleService) Delete(id uint) error {
	res := s.DB.Delete(&models.Article{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete article %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrArticleNotFound
	}
	return nil
}

func validateArticle(a *models.Article) error {
	if strings.TrimSpace(a.Title) == "" || strings.TrimSpace(a.Content) == "" {
		return ErrArticleRequired
	}
	if a.Category != "" && !models.ValidArticleCategory(a.Category) {
		return ErrInvalidCategory
	}
	if a.Status != "" && !validArticleStatus(a.Status) {
		return ErrInvalidArtStatus
	}
	return nil
}

func validArticleStatus(s string) bool {
	return s == models.ArticleStatusDraft || s == models.ArticleStatusPublished
}

func (s *ArticleService) uniqueSlug(title string, excludeID uint) (string, error) {
	base := utils.Slugify(title)
	if base == "" {
		return "", ErrArticleRequired
	}
	return nextAvailableSlug(base, func(slug string) (bool, error) {
		var count int64
		q := s.DB.Model(&models.Article{}).Where("slug = ?", slug)
		if excludeID != 0 {
			q = q.Where("id <> ?", excludeID)
		}
		if err := q.Count(&count).Error; err != nil {
			return false, fmt.Errorf("failed to check slug %q: %w", slug, err)
		}
		return count > 0, nil
	})
}
