// Package game is the rules engine for one Monopoly session. It owns all
// game state, enforces every rule, and talks to the outside world only
// through an injected Notifier and random Source. Commands are processed one
// at a time per session; the engine does no locking of its own.
package game

import (
	"fmt"
	"strings"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/board"
	"github.com/DedS3t/monopoly-engine/platform/dice"
)

// PlayerSeed names one participant at game creation, in seating order.
type PlayerSeed struct {
	UserID int64
	Name   string
}

// Game is the single mutable resource of a session.
type Game struct {
	chatID     int64
	players    map[int64]*models.Player
	ids        []int // active local ids in rotation order
	turn       int   // always one of ids
	dice       *dice.Dice
	src        dice.Source // card draws
	hasDoubles bool
	lastRoll   []int // nil until the active player has rolled
	payments   []models.PendingPayment
	trade      *models.PendingTrade
	available  []models.Deed
	board      models.Board
	notifier   Notifier
}

// New creates a game for the given chat with everyone at Go holding the
// starting money. The first seed gets the first turn.
func New(chatID int64, seeds []PlayerSeed, d *dice.Dice, src dice.Source, n Notifier) *Game {
	g := &Game{
		chatID:   chatID,
		players:  make(map[int64]*models.Player, len(seeds)),
		dice:     d,
		src:      src,
		board:    board.New(),
		notifier: n,
	}
	g.available = board.Deeds(g.board)
	for i, seed := range seeds {
		g.notifyf("(%d) %s has been added to the game.", i, seed.Name)
		g.players[seed.UserID] = models.NewPlayer(seed.UserID, i, seed.Name, board.StartingMoney)
		g.ids = append(g.ids, i)
	}
	g.notify("The game of Monopoly has begun!")
	return g
}

func (g *Game) notify(text string) {
	g.notifier.Send(text)
}

func (g *Game) notifyf(format string, args ...interface{}) {
	g.notifier.Send(fmt.Sprintf(format, args...))
}

// ChatID identifies the chat session this game belongs to.
func (g *Game) ChatID() int64 { return g.chatID }

// Players is the live player map keyed by chat identity.
func (g *Game) Players() map[int64]*models.Player { return g.players }

// Board exposes the full 40-cell board.
func (g *Game) Board() models.Board { return g.board }

// Trade is the pending trade, nil when none is open.
func (g *Game) Trade() *models.PendingTrade { return g.trade }

// PendingPayments is the unresolved debt ledger.
func (g *Game) PendingPayments() []models.PendingPayment { return g.payments }

// Available reports how many deeds remain in the bank's pool.
func (g *Game) Available() []models.Deed { return g.available }

// ActivePlayer is the player whose turn it is.
func (g *Game) ActivePlayer() *models.Player { return g.playerByLocalID(g.turn) }

// Over is true once only one active player remains.
func (g *Game) Over() bool { return len(g.ids) <= 1 }

// Winner is the last active player, nil while the game is still running.
func (g *Game) Winner() *models.Player {
	if !g.Over() {
		return nil
	}
	return g.playerByLocalID(g.ids[0])
}

func (g *Game) player(userID int64) *models.Player {
	return g.players[userID]
}

func (g *Game) playerByLocalID(id int) *models.Player {
	for _, p := range g.players {
		if p.ID() == id {
			return p
		}
	}
	return nil
}

func (g *Game) playerByName(name string) *models.Player {
	for _, p := range g.players {
		if strings.EqualFold(p.Name(), name) {
			return p
		}
	}
	return nil
}

// checkTurn rejects unknown actors and anyone acting out of turn.
func (g *Game) checkTurn(p *models.Player) error {
	if p == nil {
		return g.reject(Authorization, "You don't seem to exist!")
	}
	if p.ID() != g.turn {
		return g.reject(Authorization, "It is not currently your turn!")
	}
	return nil
}

// checkPassGo grants the $200 bonus exactly once per full traversal, using
// the cumulative travelled distance so that card-induced jumps count too.
func (g *Game) checkPassGo(p *models.Player, lastTotalRoll int) {
	if p.Position() == board.GoPosition && p.TotalRoll() > 0 {
		g.notifyf("You landed on Go and collected $%d!", board.PassGoBonus)
		p.AddMoney(board.PassGoBonus)
		return
	}
	if lastTotalRoll/len(g.board) < p.TotalRoll()/len(g.board) {
		g.notifyf("You passed Go and collected $%d!", board.PassGoBonus)
		p.AddMoney(board.PassGoBonus)
	}
}

// advanceTurn moves the pointer to the next id in the active rotation.
func (g *Game) advanceTurn() {
	for i, id := range g.ids {
		if id == g.turn {
			g.turn = g.ids[(i+1)%len(g.ids)]
			return
		}
	}
}

// EndTurn completes the active player's turn. It is rejected before the
// roll and while any pending payment exists; doubles retain the turn.
// An unresolved trade is cancelled either way.
func (g *Game) EndTurn(userID int64) error {
	p := g.player(userID)
	if err := g.checkTurn(p); err != nil {
		return err
	}
	if g.lastRoll == nil {
		return g.reject(State, "You must roll the dice before ending your turn!")
	}
	if len(g.payments) > 0 {
		g.notify("You cannot end the turn! There are still pending payments to be made!")
		for _, pay := range g.payments {
			payee := "the bank"
			if pay.Payee != nil {
				payee = pay.Payee.Name()
			}
			g.notifyf("%s owes %s $%d!", pay.Payer.Name(), payee, pay.Amount)
		}
		return &RuleError{Kind: State, Message: "there are still pending payments to be made"}
	}

	g.trade = nil
	if !g.hasDoubles {
		g.advanceTurn()
	}
	g.lastRoll = nil
	g.hasDoubles = false

	g.notifyf("%s has ended their turn. The current player's turn is: %s",
		p.Name(), g.ActivePlayer().Name())
	return nil
}
