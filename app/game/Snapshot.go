package game

import (
	"fmt"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/board"
	"github.com/DedS3t/monopoly-engine/platform/dice"
)

// Snapshot is the engine state as a plain serializable record. Deeds are
// referenced by board position, players by chat identity, so the graph has
// no cycles and restores against a fresh board.
type Snapshot struct {
	ChatID     int64          `json:"chat_id"`
	Turn       int            `json:"turn"`
	IDs        []int          `json:"ids"`
	HasDoubles bool           `json:"has_doubles"`
	LastRoll   []int          `json:"last_roll,omitempty"`
	Players    []PlayerState  `json:"players"`
	Payments   []PaymentState `json:"payments,omitempty"`
	Trade      *TradeSnapshot `json:"trade,omitempty"`
}

type PlayerState struct {
	UserID    int64       `json:"user_id"`
	ID        int         `json:"id"`
	Name      string      `json:"name"`
	Money     int         `json:"money"`
	JailCards int         `json:"jail_cards"`
	JailTurns int         `json:"jail_turns"`
	Position  int         `json:"position"`
	TotalRoll int         `json:"total_roll"`
	Deeds     []DeedState `json:"deeds,omitempty"`
}

type DeedState struct {
	Pos       int  `json:"pos"`
	Houses    int  `json:"houses,omitempty"`
	Hotels    int  `json:"hotels,omitempty"`
	Mortgaged bool `json:"mortgaged,omitempty"`
}

type PaymentState struct {
	Payer  int64 `json:"payer"`
	Payee  int64 `json:"payee,omitempty"`
	ToBank bool  `json:"to_bank,omitempty"`
	Amount int   `json:"amount"`
}

type TradeSnapshot struct {
	State int               `json:"state"`
	Sides [2]TradeSideState `json:"sides"`
}

type TradeSideState struct {
	UserID int64 `json:"user_id"`
	Money  int   `json:"money"`
	Cards  int   `json:"cards"`
	Agreed bool  `json:"agreed"`
	Deeds  []int `json:"deeds,omitempty"`
}

// Snapshot captures the entire mutable state for external persistence.
func (g *Game) Snapshot() *Snapshot {
	s := &Snapshot{
		ChatID:     g.chatID,
		Turn:       g.turn,
		IDs:        append([]int(nil), g.ids...),
		HasDoubles: g.hasDoubles,
		LastRoll:   append([]int(nil), g.lastRoll...),
	}
	for _, id := range g.ids {
		p := g.playerByLocalID(id)
		ps := PlayerState{
			UserID:    p.UserID(),
			ID:        p.ID(),
			Name:      p.Name(),
			Money:     p.Money(),
			JailCards: p.JailCards(),
			JailTurns: p.JailTurns(),
			Position:  p.Position(),
			TotalRoll: p.TotalRoll(),
		}
		for _, d := range p.Deeds() {
			ds := DeedState{Pos: board.Position(g.board, d), Mortgaged: d.Mortgaged()}
			if prop, ok := d.(*models.Property); ok {
				ds.Houses = prop.Houses()
				ds.Hotels = prop.Hotels()
			}
			ps.Deeds = append(ps.Deeds, ds)
		}
		s.Players = append(s.Players, ps)
	}
	for _, pay := range g.payments {
		pst := PaymentState{Payer: pay.Payer.UserID(), Amount: pay.Amount, ToBank: pay.Payee == nil}
		if pay.Payee != nil {
			pst.Payee = pay.Payee.UserID()
		}
		s.Payments = append(s.Payments, pst)
	}
	if g.trade != nil {
		ts := &TradeSnapshot{State: int(g.trade.State)}
		for i, side := range g.trade.Sides {
			tss := TradeSideState{
				UserID: side.Player.UserID(),
				Money:  side.Money,
				Cards:  side.Cards,
				Agreed: side.Agreed,
			}
			for _, d := range side.Deeds {
				tss.Deeds = append(tss.Deeds, board.Position(g.board, d))
			}
			ts.Sides[i] = tss
		}
		s.Trade = ts
	}
	return s
}

// Restore rebuilds a fully wired game from a snapshot: fresh board, owners
// re-linked, available pool derived from what nobody holds.
func Restore(s *Snapshot, d *dice.Dice, src dice.Source, n Notifier) (*Game, error) {
	g := &Game{
		chatID:     s.ChatID,
		players:    make(map[int64]*models.Player, len(s.Players)),
		ids:        append([]int(nil), s.IDs...),
		turn:       s.Turn,
		dice:       d,
		src:        src,
		hasDoubles: s.HasDoubles,
		board:      board.New(),
		notifier:   n,
	}
	if len(s.LastRoll) > 0 {
		g.lastRoll = append([]int(nil), s.LastRoll...)
	}

	for _, ps := range s.Players {
		p := models.NewPlayer(ps.UserID, ps.ID, ps.Name, ps.Money)
		p.SetJailCards(ps.JailCards)
		p.SetJailTurns(ps.JailTurns)
		p.SetPosition(ps.Position)
		p.SetTotalRoll(ps.TotalRoll)
		for _, ds := range ps.Deeds {
			deed := board.DeedAt(g.board, ds.Pos)
			if deed == nil {
				return nil, fmt.Errorf("restore: no deed at position %d", ds.Pos)
			}
			if prop, ok := deed.(*models.Property); ok {
				prop.SetBuildings(ds.Houses, ds.Hotels)
			}
			deed.SetMortgaged(ds.Mortgaged)
			deed.SetOwner(p)
			p.AddDeed(deed)
		}
		p.SortDeeds()
		g.players[ps.UserID] = p
	}

	for _, deed := range board.Deeds(g.board) {
		if deed.Owner() == nil {
			g.available = append(g.available, deed)
		}
	}

	for _, pst := range s.Payments {
		payer := g.players[pst.Payer]
		if payer == nil {
			return nil, fmt.Errorf("restore: unknown payer %d", pst.Payer)
		}
		var payee *models.Player
		if !pst.ToBank {
			payee = g.players[pst.Payee]
			if payee == nil {
				return nil, fmt.Errorf("restore: unknown payee %d", pst.Payee)
			}
		}
		g.payments = append(g.payments, models.PendingPayment{Payer: payer, Payee: payee, Amount: pst.Amount})
	}

	if s.Trade != nil {
		a := g.players[s.Trade.Sides[0].UserID]
		b := g.players[s.Trade.Sides[1].UserID]
		if a == nil || b == nil {
			return nil, fmt.Errorf("restore: unknown trade party")
		}
		trade := models.NewPendingTrade(a, b)
		trade.State = models.TradeState(s.Trade.State)
		for i, tss := range s.Trade.Sides {
			side := trade.Sides[i]
			side.Money = tss.Money
			side.Cards = tss.Cards
			side.Agreed = tss.Agreed
			for _, pos := range tss.Deeds {
				deed := board.DeedAt(g.board, pos)
				if deed == nil {
					return nil, fmt.Errorf("restore: no deed at position %d", pos)
				}
				side.Deeds = append(side.Deeds, deed)
			}
		}
		g.trade = trade
	}
	return g, nil
}
