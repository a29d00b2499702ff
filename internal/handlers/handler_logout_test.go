package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"curiona-admin/internal/testutil"

	"go.uber.org/mock/gomock"
)

func TestLogoutHandler_ShouldDestroySession(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/auth/logout")
	defer tc.Finish()

	tc.WithSession(testutil.TestSession(1, "t1"))

	tc.MockSession.EXPECT().RefreshToken(tc.Request).Return("r1")
	tc.MockAuthClient.EXPECT().Logout(gomock.Any(), "r1").Return(nil)
	tc.MockSession.EXPECT().DestroySession(gomock.Any())
	tc.MockSession.EXPECT().ClearRefreshToken(gomock.Any())

	tc.CallHandler(POSTLogoutHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONField(t, "status", "OK")
	tc.AssertLogContains(t, slog.LevelInfo, "User logged out")
}

func TestLogoutHandler_ShouldSignOutEvenWhenRemoteLogoutFails(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/auth/logout")
	defer tc.Finish()

	tc.MockSession.EXPECT().RefreshToken(tc.Request).Return("r1")
	tc.MockAuthClient.EXPECT().Logout(gomock.Any(), "r1").Return(errors.New("connection refused"))
	tc.MockSession.EXPECT().DestroySession(gomock.Any())
	tc.MockSession.EXPECT().ClearRefreshToken(gomock.Any())

	tc.CallHandler(POSTLogoutHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertLogContains(t, slog.LevelWarn, "remote logout failed")
}

func TestLogoutHandler_ShouldSkipRemoteLogoutWithoutRefreshToken(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "POST", "/api/auth/logout")
	defer tc.Finish()

	tc.MockSession.EXPECT().RefreshToken(tc.Request).Return("")
	tc.MockSession.EXPECT().DestroySession(gomock.Any())
	tc.MockSession.EXPECT().ClearRefreshToken(gomock.Any())

	tc.CallHandler(POSTLogoutHandler)

	tc.AssertStatus(t, http.StatusOK)
}
