package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/ratel-online/eights/consts"
)

const envPrefix = "EIGHTS_"

type Config struct {
	GameType    int
	Players     int
	Human       string
	CardsToDeal int
	MaxRecycles int
	Seed        int64
	Delay       time.Duration
	WsAddr      string
}

func Default() Config {
	return Config{
		GameType:    consts.DefaultGameType,
		Players:     consts.DefaultPlayers,
		CardsToDeal: consts.DefaultCardsToDeal,
		MaxRecycles: consts.MaxTimesRecyclingDiscardPile,
		Delay:       consts.DefaultDelay,
	}
}

// LoadEnv reads files (".env" when none are given) into the environment.
// Missing files are not an error.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// Load parses command line args. Every flag defaults to its EIGHTS_*
// environment variable, then to the built-in default.
func Load(args []string, output io.Writer) (Config, error) {
	cfg := Default()
	env, err := fromEnv(cfg)
	if err != nil {
		return cfg, err
	}

	gameName := consts.GameTypes[env.GameType]
	fs := flag.NewFlagSet("eights", flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	fs.StringVar(&gameName, "game", gameName, "game to play: basic or eights")
	fs.IntVar(&cfg.Players, "players", env.Players, "number of players")
	fs.StringVar(&cfg.Human, "human", env.Human, "name of the manual player, empty for bots only")
	fs.IntVar(&cfg.CardsToDeal, "cards", env.CardsToDeal, "cards dealt to each player")
	fs.IntVar(&cfg.MaxRecycles, "recycles", env.MaxRecycles, "times the discard pile may be recycled into the deck")
	fs.Int64Var(&cfg.Seed, "seed", env.Seed, "random seed, 0 for time based")
	fs.DurationVar(&cfg.Delay, "delay", env.Delay, "pause after each console message")
	fs.StringVar(&cfg.WsAddr, "ws", env.WsAddr, "address for the websocket spectator server, empty to disable")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	gameType, ok := consts.GameTypeByName(gameName)
	if !ok {
		return cfg, fmt.Errorf("%wunknown game '%s'", consts.ErrorsGameTypeInvalid, gameName)
	}
	cfg.GameType = gameType
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Players < consts.MinPlayers || c.Players > consts.MaxPlayers {
		return fmt.Errorf("%wneed %d to %d players, got %d", consts.ErrorsPlayersInvalid, consts.MinPlayers, consts.MaxPlayers, c.Players)
	}
	if c.CardsToDeal < 1 || c.CardsToDeal*c.Players+1 > 52 {
		return fmt.Errorf("%wcannot deal %d cards to %d players", consts.ErrorsNotEnoughCards, c.CardsToDeal, c.Players)
	}
	if c.MaxRecycles < 0 {
		return fmt.Errorf("%wrecycles must not be negative", consts.ErrorsInputInvalid)
	}
	if _, ok := consts.GameTypes[c.GameType]; !ok {
		return consts.ErrorsGameTypeInvalid
	}
	return nil
}

func fromEnv(cfg Config) (Config, error) {
	var err error
	if v, ok := lookup("GAME"); ok {
		gameType, found := consts.GameTypeByName(v)
		if !found {
			return cfg, fmt.Errorf("%wunknown game '%s'", consts.ErrorsGameTypeInvalid, v)
		}
		cfg.GameType = gameType
	}
	if cfg.Players, err = lookupInt("PLAYERS", cfg.Players); err != nil {
		return cfg, err
	}
	if cfg.CardsToDeal, err = lookupInt("CARDS", cfg.CardsToDeal); err != nil {
		return cfg, err
	}
	if cfg.MaxRecycles, err = lookupInt("RECYCLES", cfg.MaxRecycles); err != nil {
		return cfg, err
	}
	if v, ok := lookup("SEED"); ok {
		if cfg.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return cfg, fmt.Errorf("%w%sSEED: %v", consts.ErrorsInputInvalid, envPrefix, err)
		}
	}
	if v, ok := lookup("DELAY"); ok {
		if cfg.Delay, err = time.ParseDuration(v); err != nil {
			return cfg, fmt.Errorf("%w%sDELAY: %v", consts.ErrorsInputInvalid, envPrefix, err)
		}
	}
	if v, ok := lookup("HUMAN"); ok {
		cfg.Human = v
	}
	if v, ok := lookup("WS"); ok {
		cfg.WsAddr = v
	}
	return cfg, nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func lookupInt(key string, fallback int) (int, error) {
	v, ok := lookup(key)
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback, fmt.Errorf("%w%s%s: %v", consts.ErrorsInputInvalid, envPrefix, key, err)
	}
	return n, nil
}
