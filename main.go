package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lguibr/duopong/audio"
	"github.com/lguibr/duopong/bollywood"
	"github.com/lguibr/duopong/desktop"
	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/server"
	"github.com/lguibr/duopong/store"
	"github.com/lguibr/duopong/terminal"
	"github.com/lguibr/duopong/utils"
)

const shutdownTimeout = 5 * time.Second

func main() {
	mode := flag.String("mode", "server", "host to run: server, terminal or desktop")
	configPath := flag.String("config", "", "optional JSON config file")
	flag.Parse()

	cfg, err := utils.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	switch *mode {
	case "server":
		err = runServer(cfg)
	case "terminal":
		err = runLocal(cfg, func(g *game.Game, cues *audio.CuePlayer) error {
			// The terminal is the display; keep log lines off it.
			log.SetOutput(io.Discard)
			return terminal.Run(g, cues)
		})
	case "desktop":
		err = runLocal(cfg, func(g *game.Game, cues *audio.CuePlayer) error {
			return desktop.Run(g, cues)
		})
	default:
		log.Fatalf("Unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// runLocal plays one session on this machine with sound when available.
func runLocal(cfg utils.Config, host func(*game.Game, *audio.CuePlayer) error) error {
	g, err := game.NewGame(cfg)
	if err != nil {
		return err
	}

	cues := audio.NewCuePlayer()
	if err := cues.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("[AUDIO] WARN: audio initialization failed: %v", err)
	}
	defer cues.Cleanup()

	return host(g, cues)
}

func runServer(cfg utils.Config) error {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := bollywood.NewEngine()
	defer engine.Shutdown(shutdownTimeout)

	var recorder game.PointRecorder
	var history server.HistoryReader
	if cfg.RedisURL != "" {
		rdb, err := store.Connect(cfg.RedisURL)
		if err != nil {
			log.Printf("[STORE] WARN: redis unavailable, point history disabled: %v", err)
		} else {
			defer rdb.Close()
			scores := store.NewScoreStore(rdb, cfg.HistoryLength)
			recorder, history = scores, scores
			log.Printf("[STORE] recording points to redis")
		}
	}

	broadcasterPID := engine.Spawn(bollywood.NewProps(game.NewBroadcasterProducer()))
	producer, err := game.NewGameActorProducer(engine, cfg, game.GameActorOptions{
		Broadcaster: broadcasterPID,
		Recorder:    recorder,
	})
	if err != nil {
		return err
	}
	gamePID := engine.Spawn(bollywood.NewProps(producer))
	if gamePID == nil {
		return errors.New("failed to spawn game actor")
	}

	srv := server.New(engine, gamePID, cfg, history)
	httpServer := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: srv.Router(),
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("[SERVER] listening on %s", cfg.ServerAddr)
		serveErr <- httpServer.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-quit:
		log.Printf("[SERVER] received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(ctx)
}
