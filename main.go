package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/eights/config"
	"github.com/ratel-online/eights/game"
	"github.com/ratel-online/eights/msg"
	"github.com/ratel-online/eights/network"
	"github.com/ratel-online/eights/player"
	"github.com/ratel-online/eights/rule"
	"github.com/ratel-online/eights/ui"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	if err := run(os.Args[1:]); err != nil && !errors.Is(err, flag.ErrHelp) {
		log.Error(err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}
	cfg, err := config.Load(args, os.Stderr)
	if err != nil {
		return err
	}

	players, err := player.CreatePlayers(cfg.Players, cfg.Human)
	if err != nil {
		return err
	}
	rules, err := rule.New(cfg.GameType)
	if err != nil {
		return err
	}
	gameConfig := game.DefaultConfig()
	gameConfig.CardsToDeal = cfg.CardsToDeal
	gameConfig.MaxRecycles = cfg.MaxRecycles
	gameConfig.Rand = game.NewRandomizer(cfg.Seed)
	g, err := game.New(players, rules, gameConfig)
	if err != nil {
		return err
	}

	g.Events().AddListener(ui.NewConsole(cfg.Delay, cfg.Human))
	if cfg.Human != "" {
		g.SetInput(ui.NewPrompter(os.Stdin, color.Output))
	}
	if cfg.WsAddr != "" {
		hub := network.NewWebsocketServer(cfg.WsAddr)
		g.Events().AddListener(hub)
		async.Async(func() {
			log.Error(hub.Serve())
		})
	}

	fmt.Fprint(color.Output, msg.Message.Welcome(rules.Name()))
	g.Setup()
	return g.Run()
}
