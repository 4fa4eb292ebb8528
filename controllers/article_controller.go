package controllers

import (
	"errors"
	"net/http"

	"charter-backend/models"
	"charter-backend/services"

	"github.com/gin-gonic/gin"
)

type ArticleController struct {
	ArticleSvc *services.ArticleService
}

func NewArticleController(svc *services.ArticleService) *ArticleController {
	return &ArticleController{ArticleSvc: svc}
}

// ListArticles is the public blog/excursions feed: published only,
// ?category= filter, localized by ?lang=.
func (ctrl *ArticleController) ListArticles(c *gin.Context) {
	lang := models.NormalizeLang(c.Query("lang"))

	articles, err := ctrl.ArticleSvc.ListPublished(c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		out = append(out, a.Localized(lang))
	}
	c.JSON(http.StatusOK, gin.H{"articles": out})
}

func (ctrl *ArticleController) GetArticleBySlug(c *gin.Context) {
	lang := models.NormalizeLang(c.Query("lang"))

	article, err := ctrl.ArticleSvc.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article.Localized(lang)})
}

// ListArticlesAdmin includes drafts and both languages.
func (ctrl *ArticleController) ListArticlesAdmin(c *gin.Context) {
	articles, err := ctrl.ArticleSvc.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

func (ctrl *ArticleController) CreateArticle(c *gin.Context) {
	var draft models.Article
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}
	if err := ctrl.ArticleSvc.Create(&draft); err != nil {
		respondArticleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"article": draft})
}

func (ctrl *ArticleController) UpdateArticle(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}
	var draft models.Article
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}
	article, err := ctrl.ArticleSvc.Update(id, &draft)
	if err != nil {
		respondArticleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

func (ctrl *ArticleController) DeleteArticle(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}
	if err := ctrl.ArticleSvc.Delete(id); err != nil {
		respondArticleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func respondArticleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrArticleNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
	case errors.Is(err, services.ErrArticleRequired),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrInvalidArtStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case isDuplicateErr(err):
		c.JSON(http.StatusConflict, gin.H{"error": "slug already in use"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
