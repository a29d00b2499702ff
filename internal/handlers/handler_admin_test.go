package handlers

import (
	"net/http"
	"testing"

	"curiona-admin/internal/apierror"
	"curiona-admin/internal/models"
	"curiona-admin/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGETStatisticsHandler_ShouldWrapInEnvelope(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/admin/statistics")
	defer tc.Finish()
	tc.WithSession(testutil.TestSession(1, "t1"))

	stats := &models.Statistics{}
	stats.User.UsersRegisteredCount = 42
	stats.Roadmap.RoadmapsGeneratedCount = 7
	tc.MockAdmin.EXPECT().GetStatistics(gomock.Any(), "t1").Return(stats, nil)

	tc.CallHandler(GETStatisticsHandler)

	tc.AssertStatus(t, http.StatusOK)
	var response models.APIResponse[models.Statistics]
	tc.DecodeJSONResponse(t, &response)
	assert.Equal(t, 42, response.Data.User.UsersRegisteredCount)
	assert.Equal(t, 7, response.Data.Roadmap.RoadmapsGeneratedCount)
}

func TestGETUsersHandler_ShouldForwardFilters(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/admin/users?page=2&limit=500&search=%20ana%20")
	defer tc.Finish()
	tc.WithSession(testutil.TestSession(1, "t1"))

	expected := models.Filters{Page: 2, Limit: models.MaxLimit, Search: "ana"}
	tc.MockAdmin.EXPECT().ListUsers(gomock.Any(), "t1", expected).Return(&models.FilteredList[models.Account]{
		Items:       []models.Account{{ID: 5, Email: "ana@curiona.test"}},
		Total:       1,
		TotalPages:  1,
		CurrentPage: 2,
	}, nil)

	tc.CallHandler(GETUsersHandler)

	tc.AssertStatus(t, http.StatusOK)
	var response models.APIResponse[models.FilteredList[models.Account]]
	tc.DecodeJSONResponse(t, &response)
	require.Len(t, response.Data.Items, 1)
	assert.Equal(t, int64(5), response.Data.Items[0].ID)
}

func TestGETUsersHandler_ShouldPassThroughAuthErrors(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/admin/users")
	defer tc.Finish()
	tc.WithSession(testutil.TestSession(1, "t1"))

	tc.MockAdmin.EXPECT().ListUsers(gomock.Any(), "t1", gomock.Any()).
		Return(nil, &apierror.AuthError{Status: http.StatusUnauthorized, Code: "token_expired", Message: "Token expired"})

	tc.CallHandler(GETUsersHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertJSONField(t, "code", "token_expired")
	tc.AssertJSONField(t, "error", "Token expired")
}

func TestGETUserHandler(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		setup          func(tc *testutil.TestContext)
		expectedStatus int
	}{
		{
			name:           "non numeric id",
			id:             "abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "zero id",
			id:             "0",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "found",
			id:   "12",
			setup: func(tc *testutil.TestContext) {
				tc.MockAdmin.EXPECT().GetUser(gomock.Any(), "t1", int64(12), gomock.Any()).
					Return(&models.Account{ID: 12, Name: "Budi"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			id:   "13",
			setup: func(tc *testutil.TestContext) {
				tc.MockAdmin.EXPECT().GetUser(gomock.Any(), "t1", int64(13), gomock.Any()).
					Return(nil, &apierror.APIError{Status: http.StatusNotFound, Code: "not_found", Message: "User not found"})
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := testutil.NewTestContextWithURL(t, "GET", "/api/admin/users/"+tt.id)
			defer tc.Finish()
			tc.WithSession(testutil.TestSession(1, "t1"))
			tc.WithURLParam("id", tt.id)

			if tt.setup != nil {
				tt.setup(tc)
			}

			tc.CallHandler(GETUserHandler)

			tc.AssertStatus(t, tt.expectedStatus)
		})
	}
}

func TestUserMutationHandlers(t *testing.T) {
	tests := []struct {
		name    string
		handler func(tc *testutil.TestContext)
		expect  func(tc *testutil.TestContext)
		message string
	}{
		{
			name:    "suspend",
			handler: func(tc *testutil.TestContext) { tc.CallHandler(PATCHSuspendUserHandler) },
			expect: func(tc *testutil.TestContext) {
				tc.MockAdmin.EXPECT().SuspendUser(gomock.Any(), "t1", int64(7)).Return(nil)
			},
			message: "User suspended",
		},
		{
			name:    "unsuspend",
			handler: func(tc *testutil.TestContext) { tc.CallHandler(PATCHUnsuspendUserHandler) },
			expect: func(tc *testutil.TestContext) {
				tc.MockAdmin.EXPECT().UnsuspendUser(gomock.Any(), "t1", int64(7)).Return(nil)
			},
			message: "User unsuspended",
		},
		{
			name:    "delete",
			handler: func(tc *testutil.TestContext) { tc.CallHandler(DELETEUserHandler) },
			expect: func(tc *testutil.TestContext) {
				tc.MockAdmin.EXPECT().DeleteUser(gomock.Any(), "t1", int64(7)).Return(nil)
			},
			message: "User deleted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := testutil.NewTestContextWithURL(t, "PATCH", "/api/admin/users/7")
			defer tc.Finish()
			tc.WithSession(testutil.TestSession(1, "t1"))
			tc.WithURLParam("id", "7")

			tt.expect(tc)
			tt.handler(tc)

			tc.AssertStatus(t, http.StatusOK)
			tc.AssertJSONField(t, "message", tt.message)
		})
	}
}

func TestDELETEUserHandler_ShouldRefuseSelfDeletion(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "DELETE", "/api/admin/users/1")
	defer tc.Finish()
	tc.WithSession(testutil.TestSession(1, "t1"))
	tc.WithURLParam("id", "1")

	tc.CallHandler(DELETEUserHandler)

	tc.AssertStatus(t, http.StatusBadRequest)
	tc.AssertJSONField(t, "error", "You cannot delete your own account")
}

func TestGETRoadmapHandler_ShouldReturnTopics(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/admin/roadmaps/3")
	defer tc.Finish()
	tc.WithSession(testutil.TestSession(1, "t1"))
	tc.WithURLParam("id", "3")

	roadmap := &models.Roadmap{
		RoadmapSummary: models.RoadmapSummary{ID: 3, Title: "Go"},
		Topics: []models.Topic{
			{ID: 1, Title: "Basics", Subtopics: []models.Topic{{ID: 2, Title: "Types"}}},
		},
	}
	tc.MockAdmin.EXPECT().GetRoadmap(gomock.Any(), "t1", int64(3)).Return(roadmap, nil)

	tc.CallHandler(GETRoadmapHandler)

	tc.AssertStatus(t, http.StatusOK)
	var response models.APIResponse[models.Roadmap]
	tc.DecodeJSONResponse(t, &response)
	assert.Equal(t, "Go", response.Data.Title)
	assert.Equal(t, 2, models.CountTopics(response.Data.Topics))
}

func TestRoadmapListHandlers(t *testing.T) {
	t.Run("roadmaps", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, "GET", "/api/admin/roadmaps?search=go")
		defer tc.Finish()
		tc.WithSession(testutil.TestSession(1, "t1"))

		tc.MockAdmin.EXPECT().ListRoadmaps(gomock.Any(), "t1", models.Filters{Page: 1, Limit: 10, Search: "go"}).
			Return(&models.FilteredList[models.RoadmapSummary]{Items: []models.RoadmapSummary{}}, nil)

		tc.CallHandler(GETRoadmapsHandler)

		tc.AssertStatus(t, http.StatusOK)
	})

	t.Run("ratings", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, "GET", "/api/admin/roadmaps/3/ratings")
		defer tc.Finish()
		tc.WithSession(testutil.TestSession(1, "t1"))
		tc.WithURLParam("id", "3")

		tc.MockAdmin.EXPECT().ListRoadmapRatings(gomock.Any(), "t1", int64(3), models.Filters{Page: 1, Limit: 10}).
			Return(&models.FilteredList[models.Rating]{Items: []models.Rating{{Rating: 5}}, Total: 1}, nil)

		tc.CallHandler(GETRoadmapRatingsHandler)

		tc.AssertStatus(t, http.StatusOK)
	})

	t.Run("delete roadmap upstream failure", func(t *testing.T) {
		tc := testutil.NewTestContextWithURL(t, "DELETE", "/api/admin/roadmaps/3")
		defer tc.Finish()
		tc.WithSession(testutil.TestSession(1, "t1"))
		tc.WithURLParam("id", "3")

		tc.MockAdmin.EXPECT().DeleteRoadmap(gomock.Any(), "t1", int64(3)).
			Return(&apierror.NetworkError{Op: "delete roadmap", Timeout: true})

		tc.CallHandler(DELETERoadmapHandler)

		tc.AssertStatus(t, http.StatusGatewayTimeout)
		tc.AssertJSONField(t, "code", "network_error")
	})
}

func TestRedactEmail(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"admin@curiona.test", "a***n@curiona.test"},
		{"ab@curiona.test", "**@curiona.test"},
		{"not-an-email", ""},
		{"a@b@c", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, RedactEmail(tt.input))
		})
	}
}
