// Package main runs the ledger calculation API.
package main

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/go-petr/pet-books/cmd/httpserver"
	"github.com/go-petr/pet-books/internal/middleware"
	"github.com/go-petr/pet-books/pkg/cachepkg"
	"github.com/go-petr/pet-books/pkg/configpkg"
	"github.com/go-petr/pet-books/pkg/dbpkg"

	_ "github.com/lib/pq"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to database")
	}

	var rdb redis.Cmdable

	if config.RedisAddress != "" {
		client, err := cachepkg.Setup(context.Background(), config.RedisAddress)
		if err != nil {
			logger.Warn().Err(err).Msg("rate cache disabled")
		} else {
			rdb = client
		}
	}

	server, err := httpserver.New(db, rdb, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().Str("address", config.ServerAddress).Msg("BOOKS API SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
