package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Armvda11/Epic7-sub000/internal/constants"
	"github.com/Armvda11/Epic7-sub000/internal/logging"
	"github.com/Armvda11/Epic7-sub000/internal/service"
	"github.com/Armvda11/Epic7-sub000/internal/storage"
	"github.com/Armvda11/Epic7-sub000/internal/ws"
)

// Handler carries the dependencies of the HTTP endpoints.
type Handler struct {
	battles *service.Battles
	repo    storage.Repository
}

func NewHandler(battles *service.Battles, repo storage.Repository) *Handler {
	return &Handler{battles: battles, repo: repo}
}

// NewRouter wires every route: the REST facade under /api, the
// websocket endpoint and the liveness probe.
func NewRouter(h *Handler, wsHandler *ws.Handler, sessionSecret string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET(constants.RouteHealth, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET(constants.RouteWebSocket, wsHandler.Serve)

	apiGroup := router.Group(constants.RouteAPIPrefix)
	apiGroup.GET(constants.RouteHeroes, h.ListHeroes)
	apiGroup.GET(constants.RouteBosses, h.ListBosses)

	authed := apiGroup.Group("", AuthRequired(sessionSecret))
	authed.POST(constants.RouteDuels, h.StartDuel)
	authed.GET(constants.RouteDuelByID, h.GetDuel)
	authed.POST(constants.RouteDuelAction, h.DuelAction)
	authed.POST(constants.RouteDuelAuto, h.DuelAuto)
	authed.GET(constants.RouteProfile, h.GetProfile)

	return router
}

// respondServiceError maps service errors onto HTTP statuses. Unknown
// errors are logged and surface as a plain 500.
func respondServiceError(c *gin.Context, err error) {
	var cooldown *service.CooldownError
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
	case errors.Is(err, service.ErrHeroNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: err.Error()})
	case errors.As(err, &cooldown):
		c.JSON(http.StatusConflict, gin.H{
			constants.JSONKeyError: err.Error(),
			"remaining_turns":      cooldown.Remaining,
		})
	case errors.Is(err, service.ErrNotYourTurn), errors.Is(err, service.ErrQueueConflict):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: err.Error()})
	case errors.Is(err, service.ErrBadTeam),
		errors.Is(err, service.ErrSkillNotOwned),
		errors.Is(err, service.ErrSkillNotActive),
		errors.Is(err, service.ErrInvalidTarget):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
	default:
		logging.Error("unhandled service error", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedApplyAction})
	}
}
