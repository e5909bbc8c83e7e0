package ws

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Armvda11/Epic7-sub000/internal/constants"
	"github.com/Armvda11/Epic7-sub000/internal/logging"
	"github.com/Armvda11/Epic7-sub000/internal/matchmaking"
	"github.com/Armvda11/Epic7-sub000/internal/service"
)

// VerifyFunc checks a session token and returns the user id it carries.
type VerifyFunc func(token string) (string, error)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The browser client connects cross-origin during development.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Handler upgrades authenticated connections and routes client messages
// to the battle service.
type Handler struct {
	hub     *Hub
	battles *service.Battles
	verify  VerifyFunc
}

func NewHandler(hub *Hub, battles *service.Battles, verify VerifyFunc) *Handler {
	return &Handler{hub: hub, battles: battles, verify: verify}
}

// Serve is the gin handler for the websocket route. The token comes
// from the Authorization header or, for browser clients, the token
// query parameter.
func (h *Handler) Serve(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader(constants.HeaderAuthorization), constants.BearerPrefix)
	if token == "" {
		token = c.Query("token")
	}
	userID, err := h.verify(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrInvalidSession})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.Error("websocket upgrade failed", err, logging.Fields{constants.LogFieldAddr: c.ClientIP()})
		return
	}

	client := newClient(h.hub, conn, userID)
	h.hub.register(client)
	go client.writePump()
	go client.readPump(h.dispatch)
}

func (h *Handler) dispatch(c *Client, msg ClientMessage) {
	switch msg.Type {
	case constants.MsgTypeJoin:
		h.handleJoin(c, msg)
	case constants.MsgTypeAction:
		h.handleAction(c, msg)
	case constants.MsgTypeLeave:
		h.handleLeave(c, msg)
	default:
		h.sendError(c, "", "bad_message", "unknown message type")
	}
}

// handleJoin either re-attaches the user to a running battle or queues
// them for the arena.
func (h *Handler) handleJoin(c *Client, msg ClientMessage) {
	if msg.BattleID != "" {
		snap, err := h.battles.Snapshot(msg.BattleID)
		if err != nil {
			h.sendError(c, msg.BattleID, "not_found", constants.ErrBattleNotFound)
			return
		}
		h.hub.Subscribe(msg.BattleID, c.userID)
		h.hub.SendToUser(c.userID, Envelope{Channel: constants.ChannelState, BattleID: msg.BattleID, Data: snap})
		return
	}

	join, err := h.battles.JoinArena(c.userID, msg.HeroIDs)
	if err != nil {
		h.sendError(c, "", serviceErrorCode(err), err.Error())
		return
	}
	if join.Waiting {
		h.hub.SendToUser(c.userID, Envelope{
			Channel: constants.ChannelMatch,
			Data:    MatchPayload{Status: constants.MatchWaiting},
		})
		return
	}

	for _, userID := range []string{join.Player1ID, join.Player2ID} {
		h.hub.Subscribe(join.BattleID, userID)
		h.hub.SendToUser(userID, Envelope{
			Channel: constants.ChannelMatch,
			Data:    MatchPayload{Status: "matched", BattleID: join.BattleID},
		})
	}
	h.broadcastProgress(join.BattleID, join.Snapshot)
}

func (h *Handler) handleAction(c *Client, msg ClientMessage) {
	if msg.BattleID == "" {
		h.sendError(c, "", "bad_message", constants.ErrInvalidBattleID)
		return
	}
	snap, err := h.battles.UseSkill(msg.BattleID, c.userID, msg.SkillID, msg.TargetID)
	if err != nil {
		h.sendError(c, msg.BattleID, serviceErrorCode(err), err.Error())
		return
	}
	h.broadcastProgress(msg.BattleID, snap)
}

func (h *Handler) handleLeave(c *Client, msg ClientMessage) {
	if msg.BattleID == "" {
		h.battles.LeaveQueue(c.userID)
		h.hub.SendToUser(c.userID, Envelope{
			Channel: constants.ChannelMatch,
			Data:    MatchPayload{Status: "left"},
		})
		return
	}
	snap, err := h.battles.Forfeit(msg.BattleID, c.userID)
	if err != nil {
		h.sendError(c, msg.BattleID, serviceErrorCode(err), err.Error())
		return
	}
	h.broadcastProgress(msg.BattleID, snap)
}

// broadcastProgress publishes the new state and either the next turn or
// the end of the battle.
func (h *Handler) broadcastProgress(battleID string, snap *service.Snapshot) {
	h.hub.BroadcastBattle(battleID, Envelope{Channel: constants.ChannelState, BattleID: battleID, Data: snap})
	if snap.Finished {
		h.hub.BroadcastBattle(battleID, Envelope{
			Channel:  constants.ChannelEnd,
			BattleID: battleID,
			Data:     snap,
		})
		h.hub.CleanupBattle(battleID)
		return
	}
	turn := TurnPayload{ParticipantID: snap.CurrentParticipantID, UserID: snap.CurrentUserID}
	if snap.TurnDeadline != nil {
		turn.Deadline = snap.TurnDeadline.Format(time.RFC3339)
	}
	h.hub.BroadcastBattle(battleID, Envelope{Channel: constants.ChannelTurn, BattleID: battleID, Data: turn})
}

// PublishTurnEvents broadcasts sweeper outcomes; called from the
// timeout loop in main.
func (h *Handler) PublishTurnEvents(events []service.TurnEvent) {
	for _, ev := range events {
		h.broadcastProgress(ev.BattleID, ev.Snapshot)
	}
}

// NotifyQueueExpired tells users their matchmaking entry timed out.
func (h *Handler) NotifyQueueExpired(entries []matchmaking.Entry) {
	for _, e := range entries {
		h.hub.SendToUser(e.UserID, Envelope{
			Channel: constants.ChannelMatch,
			Data:    MatchPayload{Status: "expired"},
		})
	}
}

func (h *Handler) sendError(c *Client, battleID, code, message string) {
	h.hub.SendToUser(c.userID, Envelope{
		Channel:  constants.ChannelError,
		BattleID: battleID,
		Data:     ErrorPayload{Code: code, Message: message},
	})
}

// serviceErrorCode maps service errors onto stable client-facing codes.
func serviceErrorCode(err error) string {
	var cooldown *service.CooldownError
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return "not_found"
	case errors.Is(err, service.ErrNotYourTurn):
		return "not_your_turn"
	case errors.Is(err, service.ErrSkillNotOwned), errors.Is(err, service.ErrSkillNotActive):
		return "bad_skill"
	case errors.As(err, &cooldown):
		return "on_cooldown"
	case errors.Is(err, service.ErrInvalidTarget):
		return "bad_target"
	case errors.Is(err, service.ErrQueueConflict):
		return "queue_conflict"
	case errors.Is(err, service.ErrHeroNotFound), errors.Is(err, service.ErrBadTeam):
		return "bad_team"
	default:
		return "internal"
	}
}
