package models

// TradeState is the negotiation lifecycle of a pending trade.
type TradeState int

const (
	TradeProposed TradeState = iota
	TradeAmending
	TradeAgreed
	TradeCommitted
	TradeCancelled
)

func (s TradeState) String() string {
	switch s {
	case TradeProposed:
		return "proposed"
	case TradeAmending:
		return "amending"
	case TradeAgreed:
		return "agreed"
	case TradeCommitted:
		return "committed"
	case TradeCancelled:
		return "cancelled"
	}
	return "unknown"
}

// TradeSide is everything one party has put on the table.
type TradeSide struct {
	Player *Player
	Money  int
	Deeds  []Deed
	Cards  int
	Agreed bool
}

func (s *TradeSide) HasDeed(d Deed) bool {
	for _, held := range s.Deeds {
		if held == d {
			return true
		}
	}
	return false
}

func (s *TradeSide) RemoveDeed(d Deed) {
	for i, held := range s.Deeds {
		if held == d {
			s.Deeds = append(s.Deeds[:i], s.Deeds[i+1:]...)
			return
		}
	}
}

// PendingTrade is the bilateral negotiation between two players.
type PendingTrade struct {
	State TradeState
	Sides [2]*TradeSide
}

func NewPendingTrade(a, b *Player) *PendingTrade {
	return &PendingTrade{
		State: TradeProposed,
		Sides: [2]*TradeSide{{Player: a}, {Player: b}},
	}
}

// SideOf returns the side belonging to p, or nil if p is not a party.
func (t *PendingTrade) SideOf(p *Player) *TradeSide {
	for _, side := range t.Sides {
		if side.Player == p {
			return side
		}
	}
	return nil
}

// OtherSide returns the counterpart's side, or nil if p is not a party.
func (t *PendingTrade) OtherSide(p *Player) *TradeSide {
	switch p {
	case t.Sides[0].Player:
		return t.Sides[1]
	case t.Sides[1].Player:
		return t.Sides[0]
	}
	return nil
}

// Amendable reports whether terms may still change: only before anyone has
// agreed, and only while the trade is being proposed or amended.
func (t *PendingTrade) Amendable() bool {
	if t.State != TradeProposed && t.State != TradeAmending {
		return false
	}
	return !t.Sides[0].Agreed && !t.Sides[1].Agreed
}

func (t *PendingTrade) BothAgreed() bool {
	return t.Sides[0].Agreed && t.Sides[1].Agreed
}
