package redis_client

import (
	"context"
	"strconv"

	"github.com/farebox/farebox/pkg/util"
	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

const defaultConnectionAddress = "localhost:6379"
const defaultConnectionPassword = ""
const defaultDatabase = 0

func Connect() error {
	address := util.EnvOr("FAREBOX_REDIS_ADDRESS", defaultConnectionAddress)
	password := util.EnvOr("FAREBOX_REDIS_PASSWORD", defaultConnectionPassword)
	database := defaultDatabase

	if value := util.EnvOr("FAREBOX_REDIS_DATABASE", ""); value != "" {
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		database = n
	}

	Client = redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})

	return Client.Ping(context.Background()).Err()
}
