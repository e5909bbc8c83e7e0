package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Armvda11/Epic7-sub000/internal/constants"
	"github.com/Armvda11/Epic7-sub000/internal/logging"
)

// ListHeroes returns every playable hero with stats and skills.
func (h *Handler) ListHeroes(c *gin.Context) {
	heroes, err := h.repo.GetHeroes()
	if err != nil {
		logging.Error("failed to list heroes", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchHeroes})
		return
	}
	c.JSON(http.StatusOK, heroes)
}

// ListBosses returns every scripted encounter template.
func (h *Handler) ListBosses(c *gin.Context) {
	bosses, err := h.repo.GetBosses()
	if err != nil {
		logging.Error("failed to list bosses", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchHeroes})
		return
	}
	c.JSON(http.StatusOK, bosses)
}

// GetProfile returns the caller's aggregate battle stats.
func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.repo.GetProfile(currentUserID(c))
	if err != nil {
		logging.Error("failed to load profile", err, logging.Fields{constants.LogFieldUserID: currentUserID(c)})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	c.JSON(http.StatusOK, profile)
}
