package handlers

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"curiona-admin/internal/apierror"
	"curiona-admin/internal/models"
	"curiona-admin/internal/testutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPOSTRefreshHandler_ShouldRotateSession(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/auth/refresh")
	defer tc.Finish()

	out := authOutput("t2")
	out.RefreshToken = "r2"

	tc.MockSession.EXPECT().RefreshToken(tc.Request).Return("r1-rotate")
	tc.MockAuthClient.EXPECT().Refresh(gomock.Any(), "r1-rotate").Return(out, nil)
	tc.MockSession.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return("encrypted", nil)
	tc.MockSession.EXPECT().SetRefreshToken(gomock.Any(), "r2")

	tc.CallHandler(POSTRefreshHandler)

	tc.AssertStatus(t, http.StatusOK)
	var response SessionResponse
	tc.DecodeJSONResponse(t, &response)
	assert.Equal(t, "t2", response.Session.Tokens.AccessToken)
}

func TestPOSTRefreshHandler_ShouldKeepUserWhenRefreshOmitsAccount(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/auth/refresh")
	defer tc.Finish()

	tc.WithSession(testutil.TestSession(9, "expired-token"))

	out := &models.AuthRefreshOutput{AccessToken: "t3", AccessTokenExpiresAt: time.Now().Add(time.Hour)}

	tc.MockSession.EXPECT().RefreshToken(tc.Request).Return("r1-account")
	tc.MockAuthClient.EXPECT().Refresh(gomock.Any(), "r1-account").Return(out, nil)
	tc.MockSession.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ http.ResponseWriter, s *models.Session) (string, error) {
			assert.Equal(t, int64(9), s.User.ID)
			assert.Equal(t, "t3", s.Tokens.AccessToken)
			return "encrypted", nil
		})

	tc.CallHandler(POSTRefreshHandler)

	tc.AssertStatus(t, http.StatusOK)
}

func TestPOSTRefreshHandler_ShouldRejectMissingRefreshToken(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/auth/refresh")
	defer tc.Finish()

	tc.MockSession.EXPECT().RefreshToken(tc.Request).Return("")
	tc.MockSession.EXPECT().DestroySession(gomock.Any())
	tc.MockSession.EXPECT().ClearRefreshToken(gomock.Any())

	tc.CallHandler(POSTRefreshHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertJSONField(t, "code", "session_expired")
}

func TestPOSTRefreshHandler_ShouldClearCookiesWhenRefreshTokenRejected(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/auth/refresh")
	defer tc.Finish()

	tc.MockSession.EXPECT().RefreshToken(tc.Request).Return("r1-revoked")
	tc.MockAuthClient.EXPECT().Refresh(gomock.Any(), "r1-revoked").
		Return(nil, &apierror.AuthError{Status: http.StatusUnauthorized, Message: "Refresh token revoked"})
	tc.MockSession.EXPECT().DestroySession(gomock.Any())
	tc.MockSession.EXPECT().ClearRefreshToken(gomock.Any())

	tc.CallHandler(POSTRefreshHandler)

	tc.AssertStatus(t, http.StatusUnauthorized)
	tc.AssertJSONField(t, "error", "Refresh token revoked")
}

func TestPOSTRefreshHandler_ShouldKeepCookiesOnNetworkError(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/auth/refresh")
	defer tc.Finish()

	tc.MockSession.EXPECT().RefreshToken(tc.Request).Return("r1-offline")
	tc.MockAuthClient.EXPECT().Refresh(gomock.Any(), "r1-offline").
		Return(nil, &apierror.NetworkError{Op: "refresh", Err: context.Canceled})

	tc.CallHandler(POSTRefreshHandler)

	tc.AssertStatus(t, http.StatusBadGateway)
}

func TestPOSTRefreshHandler_ShouldCoalesceConcurrentRefreshes(t *testing.T) {
	first := testutil.NewTestContextWithURL(t, "POST", "/api/auth/refresh")
	second := testutil.NewTestContextWithURL(t, "POST", "/api/auth/refresh")
	defer first.Finish()
	defer second.Finish()

	second.AppContext.AuthClient = first.MockAuthClient

	started := make(chan struct{})
	release := make(chan struct{})
	first.MockAuthClient.EXPECT().Refresh(gomock.Any(), "r1-shared").
		DoAndReturn(func(context.Context, string) (*models.AuthRefreshOutput, error) {
			close(started)
			<-release
			return authOutput("t-shared"), nil
		}).Times(1)

	for _, tc := range []*testutil.TestContext{first, second} {
		tc.MockSession.EXPECT().RefreshToken(tc.Request).Return("r1-shared")
		tc.MockSession.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return("encrypted", nil)
		tc.MockSession.EXPECT().SetRefreshToken(gomock.Any(), "r1")
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		first.CallHandler(POSTRefreshHandler)
	}()

	<-started
	go func() {
		defer wg.Done()
		second.CallHandler(POSTRefreshHandler)
	}()

	// Give the second request time to join the in-flight call.
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	first.AssertStatus(t, http.StatusOK)
	second.AssertStatus(t, http.StatusOK)
}
