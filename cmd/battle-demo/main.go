// Command battle-demo runs a scripted turn against the live battle engine
// and, optionally, serves that battle over the websocket transport so a
// real client can observe or continue it.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"battlesim/pkg/battle"
	"battlesim/pkg/config"
	"battlesim/pkg/data"
	"battlesim/pkg/server"

	"github.com/sirupsen/logrus"
)

// Config holds the command-line configuration for the demo.
type Config struct {
	Serve bool
	Port  int
}

func parseFlags() *Config {
	serve := flag.Bool("serve", false, "after running the scripted turn, serve the battle over HTTP/websocket")
	port := flag.Int("port", 0, "port to serve on (0 uses the configured default)")
	flag.Parse()
	return &Config{Serve: *serve, Port: *port}
}

// buildDemoBattle wires a fresh two-side single battle: Bulbasaur (player
// 1) against Charmander (player 2), each knowing only Tackle.
func buildDemoBattle(seed int64) (*battle.Battle, battle.Handle, battle.Handle) {
	store := data.DefaultStore()
	field := battle.NewSingleBattleField()
	b := battle.NewBattle(field, store, seed)

	nature, err := store.Nature("hardy")
	if err != nil {
		logrus.WithError(err).Fatal("loading hardy nature")
	}
	sp1, err := store.Species("bulbasaur")
	if err != nil {
		logrus.WithError(err).Fatal("loading bulbasaur species")
	}
	sp2, err := store.Species("charmander")
	if err != nil {
		logrus.WithError(err).Fatal("loading charmander species")
	}

	m1 := battle.NewMon("bulbasaur", 50, nature, data.StatTable{}, data.StatTable{}, sp1)
	m1.CurrentMoves = []battle.MoveSlot{{MoveID: "tackle", PP: 35, MaxPP: 35}}
	m2 := battle.NewMon("charmander", 50, nature, data.StatTable{}, data.StatTable{}, sp2)
	m2.CurrentMoves = []battle.MoveSlot{{MoveID: "tackle", PP: 35, MaxPP: 35}}

	h1 := battle.PlaceMon(field, 0, 0, m1)
	h2 := battle.PlaceMon(field, 1, 0, m2)
	return b, h1, h2
}

// runScriptedTurn submits one Tackle from each side, runs the turn, and
// prints the resulting log entries.
func runScriptedTurn(b *battle.Battle, h1, h2 battle.Handle) {
	b.BeginTurn([]battle.Choice{
		{Kind: battle.ActionMove, User: h1, MoveID: "tackle", TargetSlot: h2},
		{Kind: battle.ActionMove, User: h2, MoveID: "tackle", TargetSlot: h1},
	})
	b.RunTurn()

	fmt.Printf("=== Turn %d log ===\n", b.Field.Turn)
	for _, entry := range b.Log.Turn(b.Field.Turn) {
		fmt.Printf("%s", entry.Kind)
		for _, f := range entry.Fields {
			fmt.Printf(" %s=%s", f.Name, f.Value)
		}
		fmt.Println()
	}

	m1 := b.Mon(h1)
	m2 := b.Mon(h2)
	fmt.Printf("\nbulbasaur hp:  %d/%d\n", m1.HP, m1.MaxHP)
	fmt.Printf("charmander hp: %d/%d\n", m2.HP, m2.MaxHP)
}

// serveBattle starts an HTTP server exposing the battle over /ws,
// /metrics, and /healthz, blocking until a shutdown signal arrives.
func serveBattle(b *battle.Battle, cfg *Config) error {
	appCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading server configuration: %w", err)
	}
	if cfg.Port != 0 {
		appCfg.ServerPort = cfg.Port
	}

	metrics := server.NewMetrics()
	var rateLimiter *server.RateLimiter
	if appCfg.RateLimitEnabled {
		rateLimiter = server.NewRateLimiter(appCfg)
	}

	srv := server.NewServer(b, 2, metrics, rateLimiter)
	router := srv.NewRouter()

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", appCfg.ServerPort))
	if err != nil {
		return fmt.Errorf("starting listener: %w", err)
	}

	httpServer := &http.Server{Handler: router}

	errChan := make(chan error, 1)
	go func() {
		logrus.WithField("address", listener.Addr()).Info("battle-demo listening")
		if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logrus.WithField("signal", sig).Info("received shutdown signal")
	case err := <-errChan:
		logrus.WithError(err).Error("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), appCfg.ShutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

func run(cfg *Config) error {
	if cfg == nil {
		cfg = parseFlags()
	}

	b, h1, h2 := buildDemoBattle(1)
	runScriptedTurn(b, h1, h2)

	if !cfg.Serve {
		return nil
	}

	fmt.Println("\nserving battle over HTTP/websocket, press ctrl-c to stop")
	return serveBattle(b, cfg)
}

func main() {
	if err := run(nil); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
