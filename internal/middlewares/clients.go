package middlewares

import (
	"context"

	"curiona-admin/internal/models"
)

//go:generate mockgen -source=clients.go -destination=../mocks/clients.go -package=mocks

type AuthClient interface {
	LoginEmailPassword(ctx context.Context, credentials models.Credentials) (*models.AuthOutput, error)
	LoginOAuth(ctx context.Context, oauthToken string) (*models.AuthOutput, error)
	Refresh(ctx context.Context, refreshToken string) (*models.AuthRefreshOutput, error)
	Logout(ctx context.Context, refreshToken string) error
}

type AdminGateway interface {
	GetStatistics(ctx context.Context, token string) (*models.Statistics, error)
	ListUsers(ctx context.Context, token string, filters models.Filters) (*models.FilteredList[models.Account], error)
	GetUser(ctx context.Context, token string, id int64, filters models.Filters) (*models.Account, error)
	SuspendUser(ctx context.Context, token string, id int64) error
	UnsuspendUser(ctx context.Context, token string, id int64) error
	DeleteUser(ctx context.Context, token string, id int64) error
	ListRoadmaps(ctx context.Context, token string, filters models.Filters) (*models.FilteredList[models.RoadmapSummary], error)
	GetRoadmap(ctx context.Context, token string, id int64) (*models.Roadmap, error)
	DeleteRoadmap(ctx context.Context, token string, id int64) error
	ListRoadmapRatings(ctx context.Context, token string, id int64, filters models.Filters) (*models.FilteredList[models.Rating], error)
}
