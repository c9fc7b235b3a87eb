package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/atlasmedia/newsdesk/internal/app/controllers"
	"github.com/atlasmedia/newsdesk/internal/app/models/dto"
	"github.com/atlasmedia/newsdesk/internal/config"
	"github.com/atlasmedia/newsdesk/internal/middleware"
	"github.com/atlasmedia/newsdesk/internal/pkg/auth"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrl *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
	uploadMiddleware *middleware.UploadMiddleware,
	cfg *config.Config,
) {
	image := func(required bool) middleware.UploadField {
		return middleware.UploadField{
			Name:     "image",
			Required: required,
			Kind:     middleware.UploadKindImage,
			MaxSize:  cfg.Upload.MaxImageSize,
		}
	}
	media := func(required bool) middleware.UploadField {
		return middleware.UploadField{
			Name:     "media",
			Required: required,
			Kind:     middleware.UploadKindMedia,
			MaxSize:  cfg.Upload.MaxDocumentSize,
		}
	}
	pdf := func(required bool) middleware.UploadField {
		return middleware.UploadField{
			Name:     "pdf",
			Required: required,
			Kind:     middleware.UploadKindPDF,
			MaxSize:  cfg.Upload.MaxDocumentSize,
		}
	}

	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/user/login", ctrl.AuthController.LoginUser)
		authRoutes.POST("/admin/login", ctrl.AuthController.LoginAdmin)
	}

	// Authenticated group, any role
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	// Admin-only group for content management
	admin := v1.Group("")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.RequireRole(auth.RoleAdmin))

	// --- Categories ---
	categories := v1.Group("/categories")
	{
		categories.GET("", ctrl.CategoryController.ListCategories)
		categories.GET("/all", ctrl.CategoryController.GetAllCategories)
		categories.GET("/:id", ctrl.CategoryController.GetCategoryByID)
	}
	categoriesAdmin := admin.Group("/categories")
	{
		categoriesAdmin.POST("", uploadMiddleware.Files(image(true)), ctrl.CategoryController.CreateCategory)
		categoriesAdmin.PATCH("/:id", uploadMiddleware.Files(image(false)), ctrl.CategoryController.UpdateCategory)
		categoriesAdmin.DELETE("/:id", ctrl.CategoryController.DeleteCategory)
	}

	// --- News ---
	news := v1.Group("/news")
	{
		news.GET("", ctrl.NewsController.ListNews)
		news.GET("/all", ctrl.NewsController.GetAllNews)
		news.GET("/:id", ctrl.NewsController.GetNewsByID)
	}
	newsAdmin := admin.Group("/news")
	{
		newsAdmin.POST("", uploadMiddleware.Files(image(true)), ctrl.NewsController.CreateNews)
		newsAdmin.PATCH("/:id", uploadMiddleware.Files(image(false)), ctrl.NewsController.UpdateNews)
		newsAdmin.DELETE("/:id", ctrl.NewsController.DeleteNews)
	}

	// --- Blogs ---
	blogs := v1.Group("/blogs")
	{
		blogs.GET("", ctrl.BlogController.ListBlogs)
		blogs.GET("/all", ctrl.BlogController.GetAllBlogs)
		blogs.GET("/:id", ctrl.BlogController.GetBlogByID)
	}
	blogsAdmin := admin.Group("/blogs")
	{
		blogsAdmin.POST("", uploadMiddleware.Files(image(true)), ctrl.BlogController.CreateBlog)
		blogsAdmin.PATCH("/:id", uploadMiddleware.Files(image(false)), ctrl.BlogController.UpdateBlog)
		blogsAdmin.DELETE("/:id", ctrl.BlogController.DeleteBlog)
	}

	// --- Banner ads ---
	ads := v1.Group("/ads")
	{
		ads.GET("", ctrl.AdController.ListAds)
		ads.GET("/all", ctrl.AdController.GetAllAds)
		ads.GET("/:id", ctrl.AdController.GetAdByID)
	}
	adsAdmin := admin.Group("/ads")
	{
		adsAdmin.POST("", uploadMiddleware.Files(media(true)), ctrl.AdController.CreateAd)
		adsAdmin.PATCH("/:id", uploadMiddleware.Files(media(false)), ctrl.AdController.UpdateAd)
		adsAdmin.DELETE("/:id", ctrl.AdController.DeleteAd)
	}

	// --- Live news streams ---
	liveNews := v1.Group("/live-news")
	{
		liveNews.GET("", ctrl.LiveNewsController.ListLiveNews)
		liveNews.GET("/all", ctrl.LiveNewsController.GetAllLiveNews)
		liveNews.GET("/:id", ctrl.LiveNewsController.GetLiveNewsByID)
	}
	liveNewsAdmin := admin.Group("/live-news")
	{
		liveNewsAdmin.POST("", ctrl.LiveNewsController.CreateLiveNews)
		liveNewsAdmin.PATCH("/:id", ctrl.LiveNewsController.UpdateLiveNews)
		liveNewsAdmin.DELETE("/:id", ctrl.LiveNewsController.DeleteLiveNews)
	}

	// --- RSS feeds ---
	rssFeeds := v1.Group("/rss-feeds")
	{
		rssFeeds.GET("", ctrl.RSSFeedController.ListRSSFeeds)
		rssFeeds.GET("/all", ctrl.RSSFeedController.GetAllRSSFeeds)
		rssFeeds.GET("/:id", ctrl.RSSFeedController.GetRSSFeedByID)
	}
	rssFeedsAdmin := admin.Group("/rss-feeds")
	{
		rssFeedsAdmin.POST("", uploadMiddleware.Files(image(true)), ctrl.RSSFeedController.CreateRSSFeed)
		rssFeedsAdmin.PATCH("/:id", uploadMiddleware.Files(image(false)), ctrl.RSSFeedController.UpdateRSSFeed)
		rssFeedsAdmin.DELETE("/:id", ctrl.RSSFeedController.DeleteRSSFeed)
	}

	// --- CMS pages ---
	cmsPages := v1.Group("/cms-pages")
	{
		cmsPages.GET("", ctrl.CMSPageController.ListCMSPages)
		cmsPages.GET("/all", ctrl.CMSPageController.GetAllCMSPages)
		cmsPages.GET("/:id", ctrl.CMSPageController.GetCMSPageByID)
	}
	cmsPagesAdmin := admin.Group("/cms-pages")
	{
		cmsPagesAdmin.POST("", uploadMiddleware.Files(media(true)), ctrl.CMSPageController.CreateCMSPage)
		cmsPagesAdmin.PATCH("/:id", uploadMiddleware.Files(media(false)), ctrl.CMSPageController.UpdateCMSPage)
		cmsPagesAdmin.DELETE("/:id", ctrl.CMSPageController.DeleteCMSPage)
	}

	// --- E-paper editions ---
	epapers := v1.Group("/epapers")
	{
		epapers.GET("", ctrl.EPaperController.ListEPapers)
		epapers.GET("/all", ctrl.EPaperController.GetAllEPapers)
		epapers.GET("/:id", ctrl.EPaperController.GetEPaperByID)
	}
	epapersAdmin := admin.Group("/epapers")
	{
		epapersAdmin.POST("", uploadMiddleware.Files(media(true), pdf(true)), ctrl.EPaperController.CreateEPaper)
		epapersAdmin.PATCH("/:id", uploadMiddleware.Files(media(false), pdf(false)), ctrl.EPaperController.UpdateEPaper)
		epapersAdmin.DELETE("/:id", ctrl.EPaperController.DeleteEPaper)
	}

	// --- Classified advertisements ---
	advertisements := v1.Group("/advertisements")
	{
		advertisements.GET("", ctrl.AdvertisementController.ListAdvertisements)
		advertisements.GET("/all", ctrl.AdvertisementController.GetAllAdvertisements)
		advertisements.GET("/:id", ctrl.AdvertisementController.GetAdvertisementByID)
	}
	advertisementsUser := authenticated.Group("/advertisements")
	{
		advertisementsUser.POST("", uploadMiddleware.Files(image(false)), ctrl.AdvertisementController.CreateAdvertisement)
	}
	advertisementsAdmin := admin.Group("/advertisements")
	{
		advertisementsAdmin.PATCH("/:id", uploadMiddleware.Files(image(false)), ctrl.AdvertisementController.UpdateAdvertisement)
		advertisementsAdmin.DELETE("/:id", ctrl.AdvertisementController.DeleteAdvertisement)
	}

	// --- Posts ---
	posts := v1.Group("/posts")
	{
		posts.GET("", ctrl.PostController.ListPosts)
		posts.GET("/:id", ctrl.PostController.GetPostByID)
	}
	postsUser := authenticated.Group("/posts")
	{
		postsUser.POST("", uploadMiddleware.Files(image(false)), ctrl.PostController.CreatePost)
		postsUser.POST("/:id/view", ctrl.PostController.AddView)
		postsUser.POST("/:id/reaction", ctrl.PostController.ToggleReaction)
	}
	postsAdmin := admin.Group("/posts")
	{
		postsAdmin.PATCH("/:id", uploadMiddleware.Files(image(false)), ctrl.PostController.UpdatePost)
		postsAdmin.PATCH("/:id/status", ctrl.PostController.UpdatePostStatus)
		postsAdmin.DELETE("/:id", ctrl.PostController.DeletePost)
	}

	// --- Citizen reporters ---
	reportersUser := authenticated.Group("/reporters")
	{
		reportersUser.POST("", uploadMiddleware.Files(image(false)), ctrl.ReporterController.CreateReporter)
		reportersUser.GET("/:id", ctrl.ReporterController.GetReporterByID)
	}
	reportersAdmin := admin.Group("/reporters")
	{
		reportersAdmin.GET("", ctrl.ReporterController.ListReporters)
		reportersAdmin.PATCH("/:id", uploadMiddleware.Files(image(false)), ctrl.ReporterController.UpdateReporter)
		reportersAdmin.DELETE("/:id", ctrl.ReporterController.DeleteReporter)
	}

	// --- Users ---
	usersSelf := authenticated.Group("/users")
	{
		usersSelf.GET("/me", ctrl.UserController.GetProfile)
		usersSelf.PATCH("/me", uploadMiddleware.Files(image(false)), ctrl.UserController.UpdateProfile)
	}
	usersAdmin := admin.Group("/users")
	{
		usersAdmin.GET("", ctrl.UserController.ListUsers)
		usersAdmin.GET("/:id", ctrl.UserController.GetUserByID)
		usersAdmin.DELETE("/:id", ctrl.UserController.DeleteUser)
	}

	// --- Search logs ---
	searchLogs := v1.Group("/search-logs")
	{
		searchLogs.POST("", ctrl.SearchLogController.RecordSearch)
	}
	searchLogsAdmin := admin.Group("/search-logs")
	{
		searchLogsAdmin.GET("", ctrl.SearchLogController.ListSearchLogs)
		searchLogsAdmin.GET("/:id", ctrl.SearchLogController.GetSearchLogByID)
		searchLogsAdmin.PATCH("/:id", ctrl.SearchLogController.UpdateSearchLog)
		searchLogsAdmin.DELETE("/:id", ctrl.SearchLogController.DeleteSearchLog)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Status:  200,
			Success: true,
			Message: "ok",
		})
	})
}
