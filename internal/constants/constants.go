package constants

// Centralized constants for env keys, routes, channels and messages.
const (
	// Environment variable keys
	EnvSessionSecret = "SESSION_SECRET"
	EnvConfigPath    = "ARENA_CONFIG"
	EnvDBPath        = "ARENA_DB"
	EnvSessionStore  = "ARENA_SESSION_STORE"

	// Defaults used when env vars are absent
	DefaultConfigPath = "./arena_config.json"
	DefaultDBPath     = "./data/arena.db"

	// HTTP headers
	HeaderAuthorization = "Authorization"
	BearerPrefix        = "Bearer "
)

// Routes used by the backend router
const (
	RouteAPIPrefix  = "/api"
	RouteHeroes     = "/heroes"
	RouteBosses     = "/bosses"
	RouteDuels      = "/duels"
	RouteDuelByID   = "/duels/:battleID"
	RouteDuelAction = "/duels/:battleID/action"
	RouteDuelAuto   = "/duels/:battleID/auto"
	RouteProfile    = "/profile"
	RouteWebSocket  = "/ws"
	RouteHealth     = "/health"
)

// Real-time channel names carried in server envelopes.
const (
	ChannelMatch = "match"
	ChannelState = "state"
	ChannelTurn  = "turn"
	ChannelEnd   = "end"
	ChannelError = "error"
)

// Client message types on the websocket.
const (
	MsgTypeJoin   = "join"
	MsgTypeAction = "action"
	MsgTypeLeave  = "leave"
)

// Matchmaking reply when no opponent is available yet.
const MatchWaiting = "waiting"

// JSON key for error payloads
const JSONKeyError = "error"

// Common error messages used across API handlers
const (
	ErrInvalidRequest    = "Invalid request"
	ErrInvalidBattleID   = "Invalid battle ID"
	ErrBattleNotFound    = "Battle not found"
	ErrFailedFetchHeroes = "Failed to fetch heroes"
	ErrFailedApplyAction = "Failed to apply action"
	ErrAuthRequired      = "Authentication required"
	ErrInvalidSession    = "Invalid session"
)

// Logging field names
const (
	LogFieldBattleID = "battle_id"
	LogFieldUserID   = "user_id"
	LogFieldAddr     = "addr"
)
