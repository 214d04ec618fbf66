package main

import (
	"Anonboard/config"
	"Anonboard/pkg/server"
	"Anonboard/socket"

	"github.com/redis/go-redis/v9"
)

// newBridge redis 未配置时为 nil，广播退化为单实例
func newBridge(cfg *config.Config, rdb *redis.Client) *socket.Bridge {
	return socket.NewBridge(rdb, cfg.Board.BroadcastChan, server.GetServerId())
}
