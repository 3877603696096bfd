package main

import (
	"context"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/palaver-chat/palaver/discord"
	"github.com/palaver-chat/palaver/state"
)

// Reads TOKEN and CHANNEL_ID from the environment (or a .env file), sends a
// message to the channel and prints what the channel looks like locally.
func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	_ = godotenv.Load()

	token := os.Getenv("TOKEN")
	if token == "" {
		logger.Fatal().Msg("TOKEN is not set")
	}

	registry := prometheus.NewRegistry()

	restInterface := discord.NewInstrumentedInterface(discord.NewBaseInterface(), registry)
	session := discord.NewSession(context.Background(), "Bot "+token, restInterface)

	st := state.NewState()
	session.WithIdentity(st)

	go func() {
		http.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

		if err := http.ListenAndServe("127.0.0.1:9090", nil); err != nil {
			logger.Error().Err(err).Msg("Failed to serve metrics")
		}
	}()

	rawChannelID, err := strconv.ParseInt(os.Getenv("CHANNEL_ID"), 10, 64)
	if err != nil {
		logger.Fatal().Err(err).Msg("CHANNEL_ID is not a valid snowflake")
	}

	channelID := discord.ChannelID(rawChannelID)

	message, err := channelID.Say(session, "Hello from palaver")
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to send message")
	}

	logger.Info().
		Int64("message_id", int64(message.ID)).
		Msg("Sent message")

	payload, err := channelID.Messages(session, discord.GetMessagesParams{
		Limit: 5,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to fetch messages")
	}

	for _, msg := range payload {
		logger.Info().
			Str("author", msg.Author.DisplayName()).
			Str("content", msg.Content).
			Msg("Recent message")
	}
}
