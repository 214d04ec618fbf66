package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(BoardService), "*"),
	wire.Bind(new(IBoardService), new(*BoardService)),

	wire.Struct(new(ReactionService), "*"),
	wire.Bind(new(IReactionService), new(*ReactionService)),

	wire.Struct(new(UpdatesService), "*"),
	wire.Bind(new(IUpdatesService), new(*UpdatesService)),
)
