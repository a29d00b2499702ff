package handlers

import (
	"net/http"

	"curiona-admin/internal/middlewares"
	"curiona-admin/internal/models"
)

func GETStatisticsHandler(ctx *middlewares.AppContext) {
	stats, err := ctx.Admin.GetStatistics(ctx, ctx.AccessToken())
	if err != nil {
		ctx.SetAPIError(err)
		return
	}

	writeData(ctx, stats)
}

func GETUsersHandler(ctx *middlewares.AppContext) {
	users, err := ctx.Admin.ListUsers(ctx, ctx.AccessToken(), models.FiltersFromQuery(ctx.Request.URL.Query()))
	if err != nil {
		ctx.SetAPIError(err)
		return
	}

	writeData(ctx, users)
}

func GETUserHandler(ctx *middlewares.AppContext) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	user, err := ctx.Admin.GetUser(ctx, ctx.AccessToken(), id, models.FiltersFromQuery(ctx.Request.URL.Query()))
	if err != nil {
		ctx.SetAPIError(err)
		return
	}

	writeData(ctx, user)
}

func PATCHSuspendUserHandler(ctx *middlewares.AppContext) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := ctx.Admin.SuspendUser(ctx, ctx.AccessToken(), id); err != nil {
		ctx.SetAPIError(err)
		return
	}

	ctx.Logger.Info("user suspended", "user_id", id, "by", ctx.Session.User.ID)
	writeMessage(ctx, "User suspended")
}

func PATCHUnsuspendUserHandler(ctx *middlewares.AppContext) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := ctx.Admin.UnsuspendUser(ctx, ctx.AccessToken(), id); err != nil {
		ctx.SetAPIError(err)
		return
	}

	ctx.Logger.Info("user unsuspended", "user_id", id, "by", ctx.Session.User.ID)
	writeMessage(ctx, "User unsuspended")
}

func DELETEUserHandler(ctx *middlewares.AppContext) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if ctx.Session.User.ID == id {
		ctx.SetJSONError(http.StatusBadRequest, "You cannot delete your own account")
		return
	}

	if err := ctx.Admin.DeleteUser(ctx, ctx.AccessToken(), id); err != nil {
		ctx.SetAPIError(err)
		return
	}

	ctx.Logger.Info("user deleted", "user_id", id, "by", ctx.Session.User.ID)
	writeMessage(ctx, "User deleted")
}

func GETRoadmapsHandler(ctx *middlewares.AppContext) {
	roadmaps, err := ctx.Admin.ListRoadmaps(ctx, ctx.AccessToken(), models.FiltersFromQuery(ctx.Request.URL.Query()))
	if err != nil {
		ctx.SetAPIError(err)
		return
	}

	writeData(ctx, roadmaps)
}

func GETRoadmapHandler(ctx *middlewares.AppContext) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	roadmap, err := ctx.Admin.GetRoadmap(ctx, ctx.AccessToken(), id)
	if err != nil {
		ctx.SetAPIError(err)
		return
	}

	writeData(ctx, roadmap)
}

func DELETERoadmapHandler(ctx *middlewares.AppContext) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := ctx.Admin.DeleteRoadmap(ctx, ctx.AccessToken(), id); err != nil {
		ctx.SetAPIError(err)
		return
	}

	ctx.Logger.Info("roadmap deleted", "roadmap_id", id, "by", ctx.Session.User.ID)
	writeMessage(ctx, "Roadmap deleted")
}

func GETRoadmapRatingsHandler(ctx *middlewares.AppContext) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	ratings, err := ctx.Admin.ListRoadmapRatings(ctx, ctx.AccessToken(), id, models.FiltersFromQuery(ctx.Request.URL.Query()))
	if err != nil {
		ctx.SetAPIError(err)
		return
	}

	writeData(ctx, ratings)
}
