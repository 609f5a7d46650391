// quest-play is the terminal reference UI for the quest engine. It talks
// to the engine only through the event bus and the session's input
// surface, renders the generated level with tcell, and can mirror the
// event stream to remote viewers through the websocket relay.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/codequest/quest-engine/engine"
	"github.com/codequest/quest-engine/events"
	"github.com/codequest/quest-engine/quest"
	"github.com/codequest/quest-engine/relay"
)

func main() {
	storeURL := flag.String("store", "", "Quest store base URL (empty = built-in demo quest)")
	questID := flag.String("quest", "q-demo", "Quest id to play")
	relayAddr := flag.String("relay", "", "Listen address for the websocket event relay (empty = off)")
	sound := flag.Bool("sound", false, "Enable sound cues")
	logPath := flag.String("log", "", "Debug log file (empty = off)")
	flag.Parse()

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	log := zerolog.New(logOut).With().Timestamp().Logger()

	var fetcher quest.Fetcher
	if *storeURL != "" {
		fetcher = quest.NewHTTPFetcher(*storeURL)
	} else {
		fetcher = quest.FetcherFunc(demoQuest)
	}

	bus := events.NewBus()
	session := engine.NewSession(bus, quest.NewLoader(fetcher))
	defer session.Close()

	if *relayAddr != "" {
		rel := relay.New(bus, log)
		defer rel.Close()
		go func() {
			log.Info().Str("addr", *relayAddr).Msg("event relay listening")
			if err := http.ListenAndServe(*relayAddr, rel); err != nil {
				log.Error().Err(err).Msg("relay server failed")
			}
		}()
	}

	if *sound {
		stopSound, err := startSound(bus)
		if err != nil {
			log.Warn().Err(err).Msg("sound unavailable, continuing without it")
		} else {
			defer stopSound()
		}
	}

	if err := session.Start(context.Background(), *questID); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start quest %s: %v\n", *questID, err)
		os.Exit(1)
	}
	log.Info().Str("quest", *questID).Str("attempt", session.AttemptID().String()).Msg("attempt started")

	game := newGame(session, bus, log)
	if err := game.run(); err != nil {
		fmt.Fprintf(os.Stderr, "Game error: %v\n", err)
		os.Exit(1)
	}
}

// demoQuest serves a built-in quest so the player works without a store
func demoQuest(_ context.Context, id string) (*quest.Quest, error) {
	return &quest.Quest{
		ID:          id,
		Name:        "The Request Lifecycle",
		Description: "Follow one request from the browser all the way to the database.",
		Difficulty:  "beginner",
		Layers: []quest.Layer{
			{Type: quest.LayerBrowser, Order: 0, Challenge: &quest.Challenge{
				Kind:   quest.ChallengePlatformer,
				Config: map[string]any{"obstacles": 4, "theme": "http"},
			}},
			{Type: quest.LayerNetwork, Order: 1, Challenge: &quest.Challenge{
				Kind:   quest.ChallengePlatformer,
				Config: map[string]any{"obstacles": 6, "theme": "tcp"},
			}},
			{Type: quest.LayerAPI, Order: 2, Challenge: &quest.Challenge{
				Kind: quest.ChallengeCRUD,
			}},
			{Type: quest.LayerDatabase, Order: 3, Challenge: &quest.Challenge{
				Kind:   quest.ChallengePlatformer,
				Config: map[string]any{"obstacles": 8, "theme": "auth"},
			}},
		},
	}, nil
}
