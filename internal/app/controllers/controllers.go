package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/atlasmedia/newsdesk/internal/app/services"
	"github.com/atlasmedia/newsdesk/internal/pkg/filestorage"
)

var errInvalidID = errors.New("invalid id parameter")

// parseIDParam parses a positive integer ID parameter from the request path
func parseIDParam(ctx *gin.Context, paramName string) (int64, error) {
	idStr := ctx.Param(paramName)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// Controllers holds all the controller instances
type Controllers struct {
	AuthController          *AuthController
	CategoryController      *CategoryController
	NewsController          *NewsController
	BlogController          *BlogController
	AdController            *AdController
	LiveNewsController      *LiveNewsController
	RSSFeedController       *RSSFeedController
	CMSPageController       *CMSPageController
	EPaperController        *EPaperController
	AdvertisementController *AdvertisementController
	PostController          *PostController
	ReporterController      *ReporterController
	UserController          *UserController
	SearchLogController     *SearchLogController
}

// NewControllers initializes all controllers
func NewControllers(svcs *services.Services, storage filestorage.FileStorage) *Controllers {
	return &Controllers{
		AuthController:          NewAuthController(svcs.AuthService),
		CategoryController:      NewCategoryController(svcs.CategoryService, storage),
		NewsController:          NewNewsController(svcs.NewsService, storage),
		BlogController:          NewBlogController(svcs.BlogService, storage),
		AdController:            NewAdController(svcs.AdService, storage),
		LiveNewsController:      NewLiveNewsController(svcs.LiveNewsService),
		RSSFeedController:       NewRSSFeedController(svcs.RSSFeedService, storage),
		CMSPageController:       NewCMSPageController(svcs.CMSPageService, storage),
		EPaperController:        NewEPaperController(svcs.EPaperService, storage),
		AdvertisementController: NewAdvertisementController(svcs.AdvertisementService, storage),
		PostController:          NewPostController(svcs.PostService, storage),
		ReporterController:      NewReporterController(svcs.ReporterService, storage),
		UserController:          NewUserController(svcs.UserService, storage),
		SearchLogController:     NewSearchLogController(svcs.SearchLogService),
	}
}
