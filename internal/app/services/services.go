package services

import (
	"github.com/atlasmedia/newsdesk/internal/app/repositories"
	"github.com/atlasmedia/newsdesk/internal/pkg/auth"
	"github.com/atlasmedia/newsdesk/internal/pkg/filestorage"
	"github.com/atlasmedia/newsdesk/internal/pkg/keylock"
)

// Services holds all the service instances
type Services struct {
	AuthService          AuthService
	CategoryService      CategoryService
	NewsService          NewsService
	BlogService          BlogService
	AdService            AdService
	LiveNewsService      LiveNewsService
	RSSFeedService       RSSFeedService
	CMSPageService       CMSPageService
	EPaperService        EPaperService
	AdvertisementService AdvertisementService
	PostService          PostService
	ReporterService      ReporterService
	UserService          UserService
	SearchLogService     SearchLogService
}

// NewServices wires every service against the shared repositories, file
// storage and the per-record lock table.
func NewServices(repos *repositories.Repositories, storage filestorage.FileStorage, jwtService *auth.JWTService) *Services {
	locks := keylock.New()

	return &Services{
		AuthService:          NewAuthService(repos.UserRepository, repos.AdminRepository, jwtService),
		CategoryService:      NewCategoryService(repos.CategoryRepository, storage, locks),
		NewsService:          NewNewsService(repos.NewsRepository, storage, locks),
		BlogService:          NewBlogService(repos.BlogRepository, storage, locks),
		AdService:            NewAdService(repos.AdRepository, storage, locks),
		LiveNewsService:      NewLiveNewsService(repos.LiveNewsRepository),
		RSSFeedService:       NewRSSFeedService(repos.RSSFeedRepository, storage, locks),
		CMSPageService:       NewCMSPageService(repos.CMSPageRepository, storage, locks),
		EPaperService:        NewEPaperService(repos.EPaperRepository, storage, locks),
		AdvertisementService: NewAdvertisementService(repos.AdvertisementRepository, storage, locks),
		PostService:          NewPostService(repos.PostRepository, repos.UserRepository, storage, locks),
		ReporterService:      NewReporterService(repos.ReporterRepository, repos.UserRepository, storage, locks),
		UserService:          NewUserService(repos.UserRepository, repos.PostRepository, repos.ReporterRepository, storage, locks),
		SearchLogService:     NewSearchLogService(repos.SearchLogRepository),
	}
}
