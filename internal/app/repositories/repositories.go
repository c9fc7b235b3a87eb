package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	CategoryRepository      *CategoryRepository
	NewsRepository          *NewsRepository
	BlogRepository          *BlogRepository
	AdRepository            *AdRepository
	LiveNewsRepository      *LiveNewsRepository
	RSSFeedRepository       *RSSFeedRepository
	CMSPageRepository       *CMSPageRepository
	EPaperRepository        *EPaperRepository
	AdvertisementRepository *AdvertisementRepository
	PostRepository          *PostRepository
	ReporterRepository      *ReporterRepository
	UserRepository          *UserRepository
	AdminRepository         *AdminRepository
	SearchLogRepository     *SearchLogRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CategoryRepository:      NewCategoryRepository(db),
		NewsRepository:          NewNewsRepository(db),
		BlogRepository:          NewBlogRepository(db),
		AdRepository:            NewAdRepository(db),
		LiveNewsRepository:      NewLiveNewsRepository(db),
		RSSFeedRepository:       NewRSSFeedRepository(db),
		CMSPageRepository:       NewCMSPageRepository(db),
		EPaperRepository:        NewEPaperRepository(db),
		AdvertisementRepository: NewAdvertisementRepository(db),
		PostRepository:          NewPostRepository(db),
		ReporterRepository:      NewReporterRepository(db),
		UserRepository:          NewUserRepository(db),
		AdminRepository:         NewAdminRepository(db),
		SearchLogRepository:     NewSearchLogRepository(db),
	}
}
