//go:build wireinject
// +build wireinject

package main

import (
	"Anonboard/config"
	"Anonboard/dao"
	"Anonboard/handler"
	"Anonboard/pkg/client"
	"Anonboard/pkg/database"
	"Anonboard/pkg/server"
	"Anonboard/service"
	"Anonboard/socket"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		database.NewDB,
		newBridge,
		socket.NewHub,
		server.NewGinEngine,

		wire.Struct(new(handler.BoardHandler), "*"),
		wire.Struct(new(handler.ReactionHandler), "*"),
		wire.Struct(new(handler.UpdatesHandler), "*"),
		wire.Struct(new(handler.WSHandler), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil
}
