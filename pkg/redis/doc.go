// Package redis connects to Redis with retries and exposes a ping based
// health check. The client backs the Redis user directory.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	dir := user.NewRedisDirectory(client, "user:")
package redis
