package server

import (
	"Anonboard/handler"
)

type Handlers struct {
	Board    *handler.BoardHandler
	Reaction *handler.ReactionHandler
	Updates  *handler.UpdatesHandler
	WS       *handler.WSHandler
}
