package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"charter-backend/controllers"
	"charter-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the public catalog, the admin back office and the chat
// relay onto one gin engine.
func SetupRouter(
	boatCtrl *controllers.BoatController,
	bookingCtrl *controllers.BookingController,
	customerCtrl *controllers.CustomerController,
	articleCtrl *controllers.ArticleController,
	catalogCtrl *controllers.CatalogController,
	chatCtrl *controllers.ChatController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Public catalog reads
		boats := api.Group("/boats")
		{
			// /featured must come before /:slug
			boats.GET("", boatCtrl.ListBoats)
			boats.GET("/featured", boatCtrl.ListFeaturedBoats)
			boats.GET("/:slug", boatCtrl.GetBoatBySlug)
		}

		servicesRoutes := api.Group("/services")
		{
			servicesRoutes.GET("", catalogCtrl.ListServices)
			servicesRoutes.GET("/:slug", catalogCtrl.GetServiceBySlug)
		}

		articles := api.Group("/articles")
		{
			articles.GET("", articleCtrl.ListArticles)
			articles.GET("/:slug", articleCtrl.GetArticleBySlug)
		}

		settings := api.Group("/settings")
		{
			settings.GET("", controllers.GetSiteSettings)
			settings.GET("/:key", controllers.GetSiteSetting)
		}

		// Public booking request form and chat widget
		api.POST("/booking-requests", bookingCtrl.CreateBookingRequest)
		api.POST("/chat", chatCtrl.RelayMessage)

		auth := api.Group("/auth")
		{
			auth.POST("/login", controllers.Login)
			auth.POST("/logout", controllers.Logout)
			auth.GET("/me", middleware.RequireAdmin(), controllers.Me)
		}

		// Admin back office
		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin())
		{
			adminBoats := admin.Group("/boats")
			{
				adminBoats.GET("", boatCtrl.ListBoatsAdmin)
				adminBoats.POST("", boatCtrl.CreateBoat)
				adminBoats.PUT("/:id", boatCtrl.UpdateBoat)
				adminBoats.DELETE("/:id", boatCtrl.DeleteBoat)
			}

			bookings := admin.Group("/bookings")
			{
				bookings.GET("", bookingCtrl.ListBookings)
				bookings.POST("", bookingCtrl.CreateBooking)
				bookings.GET("/:id", bookingCtrl.GetBooking)
				bookings.PUT("/:id", bookingCtrl.UpdateBooking)
				bookings.PATCH("/:id/status", bookingCtrl.UpdateBookingStatus)
				bookings.DELETE("/:id", bookingCtrl.DeleteBooking)
			}

			admin.GET("/calendar", bookingCtrl.MonthCalendar)

			customers := admin.Group("/customers")
			{
				customers.GET("", customerCtrl.ListCustomers)
				customers.POST("", customerCtrl.CreateCustomer)
				customers.GET("/:id", customerCtrl.GetCustomer)
				customers.GET("/:id/bookings", customerCtrl.GetCustomerBookings)
				customers.POST("/:id/recalculate", customerCtrl.RecalculateCustomer)
				customers.PUT("/:id", customerCtrl.UpdateCustomer)
				customers.DELETE("/:id", customerCtrl.DeleteCustomer)
			}

			adminArticles := admin.Group("/articles")
			{
				adminArticles.GET("", articleCtrl.ListArticlesAdmin)
				adminArticles.POST("", articleCtrl.CreateArticle)
				adminArticles.PUT("/:id", articleCtrl.UpdateArticle)
				adminArticles.DELETE("/:id", articleCtrl.DeleteArticle)
			}

			adminServices := admin.Group("/services")
			{
				adminServices.GET("", catalogCtrl.ListServicesAdmin)
				adminServices.POST("", catalogCtrl.CreateService)
				adminServices.PUT("/:id", catalogCtrl.UpdateService)
				adminServices.PATCH("/:id/active", catalogCtrl.ToggleService)
				adminServices.DELETE("/:id", catalogCtrl.DeleteService)
			}

			admin.PUT("/settings/:key", controllers.UpdateSiteSetting)
			admin.POST("/upload", controllers.UploadImage)
		}
	}

	return r
}
