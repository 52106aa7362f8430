package protocol

const (
	// Protocol/transport validation.
	ErrProtoBadRequest = "E_PROTO_BAD_REQUEST"

	// Mission start.
	ErrServerWarmingUp     = "E_SERVER_WARMING_UP"
	ErrInsufficientClients = "E_INSUFFICIENT_CLIENTS"
	ErrServerNotFound      = "E_SERVER_NOT_FOUND"
	ErrBadMission          = "E_BAD_MISSION"
	ErrMissionRunning      = "E_MISSION_RUNNING"

	ErrInternal = "E_INTERNAL"
)

var knownCodes = map[string]struct{}{
	ErrProtoBadRequest:     {},
	ErrServerWarmingUp:     {},
	ErrInsufficientClients: {},
	ErrServerNotFound:      {},
	ErrBadMission:          {},
	ErrMissionRunning:      {},
	ErrInternal:            {},
}

func IsKnownCode(code string) bool {
	if code == "" {
		return true
	}
	_, ok := knownCodes[code]
	return ok
}
