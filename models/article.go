package models

import (
	"time"

	"gorm.io/gorm"
)

// Article categories.
const (
	ArticleCategoryBlog      = "blog"
	ArticleCategoryEscursion = "escursioni"
	ArticleCategoryNews      = "news"
	ArticleCategoryInfo      = "info"
)

// Article statuses.
const (
	ArticleStatusDraft     = "draft"
	ArticleStatusPublished = "published"
)

// Article is a CMS entry: blog post, excursion description, news or info
// page. Content is Markdown.
type Article struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Slug      string `gorm:"uniqueIndex;size:160" json:"slug"`
	Title     string `gorm:"size:255" json:"title"`
	TitleEn   string `gorm:"size:255" json:"title_en,omitempty"`
	Excerpt   string `gorm:"type:text" json:"excerpt"`
	ExcerptEn string `gorm:"type:text" json:"excerpt_en,omitempty"`
	Content   string `gorm:"type:text" json:"content"`
	ContentEn string `gorm:"type:text" json:"content_en,omitempty"`

	Category string `gorm:"size:30;index" json:"category"`
	Status   string `gorm:"size:20;default:draft;index" json:"status"`

	CoverImage  string     `gorm:"size:500" json:"cover_image,omitempty"`
	Author      string     `gorm:"size:255" json:"author,omitempty"`
	PublishedAt *time.Time `gorm:"column:published_at" json:"published_at,omitempty"`
}

// ValidArticleCategory reports whether c is a known category.
func ValidArticleCategory(c string) bool {
	switch c {
	case ArticleCategoryBlog, ArticleCategoryEscursion, ArticleCategoryNews, ArticleCategoryInfo:
		return true
	}
	return false
}

// Localized returns a copy with bilingual fields resolved for lang.
func (a Article) Localized(lang string) Article {
	a.Title = PickLocalized(a.Title, a.TitleEn, lang)
	a.Excerpt = PickLocalized(a.Excerpt, a.ExcerptEn, lang)
	a.Content = PickLocalized(a.Content, a.ContentEn, lang)
	a.TitleEn = ""
	a.ExcerptEn = ""
	a.ContentEn = ""
	return a
}
