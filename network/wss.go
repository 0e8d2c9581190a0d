package network

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/eights/event"
)

const writeWait = 3 * time.Second

var spectatorIds int64 = 0
var spectators = hashmap.New()

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Frame is one message pushed to spectators. Card faces drawn by players are
// never sent.
type Frame struct {
	Type   string       `json:"type"`
	Player string       `json:"player,omitempty"`
	Card   string       `json:"card,omitempty"`
	Suit   string       `json:"suit,omitempty"`
	Times  int          `json:"times,omitempty"`
	Turns  int          `json:"turns,omitempty"`
	Game   string       `json:"game,omitempty"`
	Table  *event.Table `json:"table,omitempty"`
}

type spectator struct {
	sync.Mutex
	id   int64
	hub  *Websocket
	conn *websocket.Conn
}

func (s *spectator) write(data []byte) error {
	s.Lock()
	defer s.Unlock()
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

// Websocket streams game events to read-only spectators. It implements every
// event listener, so it can be added to a game's bus as is.
type Websocket struct {
	addr string
}

func NewWebsocketServer(addr string) *Websocket {
	return &Websocket{addr: addr}
}

func (w *Websocket) Serve() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", w.ServeHTTP)
	log.Infof("Websocket server listening on %s\n", w.addr)
	return http.ListenAndServe(w.addr, mux)
}

func (w *Websocket) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(rw, r, nil)
	if err != nil {
		log.Error(err)
		return
	}
	s := &spectator{id: atomic.AddInt64(&spectatorIds, 1), hub: w, conn: conn}
	spectators.Set(s.id, s)
	log.Infof("spectator %d connected from %s\n", s.id, conn.RemoteAddr())
	async.Async(func() {
		defer w.drop(s)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}

func (w *Websocket) drop(s *spectator) {
	if _, ok := spectators.Get(s.id); !ok {
		return
	}
	spectators.Del(s.id)
	_ = s.conn.Close()
	log.Infof("spectator %d disconnected\n", s.id)
}

func (w *Websocket) list() []*spectator {
	list := make([]*spectator, 0)
	spectators.Foreach(func(e *hashmap.Entry) {
		if s := e.Value().(*spectator); s.hub == w {
			list = append(list, s)
		}
	})
	return list
}

// Size is the number of spectators connected to this server.
func (w *Websocket) Size() int {
	return len(w.list())
}

func (w *Websocket) Broadcast(frame Frame) {
	data := json.Marshal(frame)
	for _, s := range w.list() {
		if err := s.write(data); err != nil {
			log.Errorf("write to spectator %d: %v\n", s.id, err)
			w.drop(s)
		}
	}
}

func (w *Websocket) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	w.Broadcast(Frame{Type: "first_card_played", Card: payload.Card.Label()})
}

func (w *Websocket) OnCardDrawn(payload event.CardDrawnPayload) {
	w.Broadcast(Frame{Type: "card_drawn", Player: payload.PlayerName})
}

func (w *Websocket) OnCardPlayed(payload event.CardPlayedPayload) {
	w.Broadcast(Frame{Type: "card_played", Player: payload.PlayerName, Card: payload.Card.Label()})
}

func (w *Websocket) OnSuitPicked(payload event.SuitPickedPayload) {
	w.Broadcast(Frame{Type: "suit_picked", Player: payload.PlayerName, Suit: payload.Suit.Name()})
}

func (w *Websocket) OnPlayerPassed(payload event.PlayerPassedPayload) {
	w.Broadcast(Frame{Type: "player_passed", Player: payload.PlayerName})
}

func (w *Websocket) OnPileRecycled(payload event.PileRecycledPayload) {
	w.Broadcast(Frame{Type: "pile_recycled", Times: payload.Times})
}

func (w *Websocket) OnDeckExhausted(payload event.DeckExhaustedPayload) {
	w.Broadcast(Frame{Type: "deck_exhausted", Times: payload.Recycles})
}

func (w *Websocket) OnWinnerFound(payload event.WinnerFoundPayload) {
	w.Broadcast(Frame{Type: "winner_found", Player: payload.PlayerName})
}

func (w *Websocket) OnTurnEnded(payload event.TurnEndedPayload) {
	table := payload.Table
	w.Broadcast(Frame{Type: "turn_ended", Table: &table})
}

func (w *Websocket) OnGameOver(payload event.GameOverPayload) {
	w.Broadcast(Frame{Type: "game_over", Game: payload.GameName, Player: payload.Winner, Turns: payload.Turns})
}
