package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Armvda11/Epic7-sub000/internal/constants"
)

type startDuelRequest struct {
	HeroIDs []uint `json:"hero_ids" binding:"required"`
	BossID  uint   `json:"boss_id" binding:"required"`
}

type actionRequest struct {
	SkillID  uint `json:"skill_id" binding:"required"`
	TargetID uint `json:"target_id"`
}

// StartDuel creates a player-versus-boss battle and returns its first
// snapshot, with any boss turns already resolved.
func (h *Handler) StartDuel(c *gin.Context) {
	var req startDuelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	snap, err := h.battles.StartDuel(currentUserID(c), req.HeroIDs, req.BossID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, snap)
}

// GetDuel returns the current snapshot of a battle.
func (h *Handler) GetDuel(c *gin.Context) {
	snap, err := h.battles.Snapshot(c.Param("battleID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// DuelAction casts one skill on behalf of the authenticated user.
func (h *Handler) DuelAction(c *gin.Context) {
	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	snap, err := h.battles.UseSkill(c.Param("battleID"), currentUserID(c), req.SkillID, req.TargetID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// DuelAuto plays the rest of a duel out automatically.
func (h *Handler) DuelAuto(c *gin.Context) {
	snap, err := h.battles.AutoResolveDuel(c.Param("battleID"), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
