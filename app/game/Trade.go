package game

import (
	"fmt"
	"strings"

	"github.com/DedS3t/monopoly-engine/app/models"
)

// SetupTrade opens a negotiation between the active player and another.
// Only one trade can be pending at a time.
func (g *Game) SetupTrade(userID int64, counterpartID int) error {
	p1 := g.player(userID)
	if err := g.checkTurn(p1); err != nil {
		return err
	}
	p2 := g.playerByLocalID(counterpartID)
	if p2 == nil {
		return g.reject(State, "The second trader doesn't seem to exist!")
	}
	if p2 == p1 {
		return g.reject(Structural, "You cannot trade with yourself!")
	}
	if g.trade != nil {
		return g.reject(State, "A trade is already pending! Cancel it first with /canceltrade.")
	}

	g.trade = models.NewPendingTrade(p1, p2)
	g.notifyf("A trade is now pending between %s and %s!", p1.Name(), p2.Name())
	return nil
}

// tradeParty resolves the caller to their side of the pending trade.
func (g *Game) tradeParty(userID int64, action string) (*models.TradeSide, error) {
	if g.trade == nil {
		return nil, g.reject(State, "There is no pending trade!")
	}
	p := g.player(userID)
	if p == nil {
		return nil, g.reject(Authorization, "You don't seem to exist!")
	}
	side := g.trade.SideOf(p)
	if side == nil {
		return nil, g.reject(Authorization, "You are not in this trade and therefore cannot "+action+".")
	}
	return side, nil
}

// AddToTrade puts money, a property (propIdx >= 0) and jail-free cards on
// the caller's side of the table. Terms are frozen once anyone has agreed.
func (g *Game) AddToTrade(userID int64, propIdx, money, cards int) error {
	side, err := g.tradeParty(userID, "change its terms")
	if err != nil {
		return err
	}
	if !g.trade.Amendable() {
		return g.reject(State, "At least one person has agreed to the current trade. You cannot change its terms.")
	}
	if money < 0 {
		return g.reject(Structural, "You cannot trade negative money.")
	}
	if cards < 0 {
		return g.reject(Structural, "You cannot trade negative quantities of cards.")
	}

	p := side.Player
	if money+side.Money > p.Money() {
		return g.reject(Insufficiency, "You cannot trade more money than you have!")
	}
	if propIdx >= len(p.Deeds()) {
		return g.reject(State, "That is not a property you own.")
	}

	var deed models.Deed
	if propIdx >= 0 {
		deed = p.DeedAt(propIdx)
		if side.HasDeed(deed) {
			return g.reject(State, "That property is already in the trade!")
		}
		if prop, ok := deed.(*models.Property); ok {
			if prop.Houses() > 0 || prop.Hotels() > 0 {
				return g.reject(Structural, "You cannot trade a property with houses or hotels on it.")
			}
			if g.ownsFullGroup(p, prop.Color()) && g.groupBuildings(p, prop.Color()) > 0 {
				return g.reject(Structural, "You cannot trade a property in a monopoly "+
					"if any other properties in the monopoly have houses or hotels!")
			}
		}
	}
	if cards+side.Cards > p.JailCards() {
		return g.reject(Insufficiency, "You do not have that many Get Out of Jail Free cards to trade!")
	}

	side.Money += money
	side.Cards += cards
	if deed != nil {
		side.Deeds = append(side.Deeds, deed)
	}
	g.trade.State = models.TradeAmending

	g.notify(g.tradeSummary())
	return nil
}

// RemoveFromTrade takes terms back off the table; money and cards floor at
// zero, a named property must actually be in the offer.
func (g *Game) RemoveFromTrade(userID int64, propIdx, money, cards int) error {
	side, err := g.tradeParty(userID, "change its terms")
	if err != nil {
		return err
	}
	if !g.trade.Amendable() {
		return g.reject(State, "At least one person has agreed to the current trade. You cannot change its terms.")
	}

	p := side.Player
	if propIdx >= len(p.Deeds()) {
		return g.reject(State, "That is not a property you own.")
	}
	var deed models.Deed
	if propIdx >= 0 {
		deed = p.DeedAt(propIdx)
		if !side.HasDeed(deed) {
			return g.reject(State, "That property is not in the trade!")
		}
	}

	side.Money -= money
	if side.Money < 0 {
		side.Money = 0
	}
	side.Cards -= cards
	if side.Cards < 0 {
		side.Cards = 0
	}
	if deed != nil {
		side.RemoveDeed(deed)
	}
	g.trade.State = models.TradeAmending

	g.notify(g.tradeSummary())
	return nil
}

// AgreeTrade sets the caller's agreement flag; when both are set the trade
// is ready to commit.
func (g *Game) AgreeTrade(userID int64) error {
	side, err := g.tradeParty(userID, "agree to it")
	if err != nil {
		return err
	}
	side.Agreed = true
	if g.trade.BothAgreed() {
		g.trade.State = models.TradeAgreed
	}
	g.notifyf("%s has agreed to the trade!", side.Player.Name())
	return nil
}

// DisagreeTrade clears the caller's agreement flag, reopening amendment.
func (g *Game) DisagreeTrade(userID int64) error {
	side, err := g.tradeParty(userID, "disagree to it")
	if err != nil {
		return err
	}
	side.Agreed = false
	g.trade.State = models.TradeAmending
	g.notifyf("%s has disagreed to the trade!", side.Player.Name())
	return nil
}

// CancelTrade clears the pending trade; either party may do so at any time.
func (g *Game) CancelTrade(userID int64) error {
	_, err := g.tradeParty(userID, "cancel it")
	if err != nil {
		return err
	}
	g.trade.State = models.TradeCancelled
	g.trade = nil
	g.notify("The pending trade has been cancelled.")
	return nil
}

// CommitTrade performs the agreed swap. Holdings are revalidated at commit
// time, and all four legs (money, properties and cards, both directions)
// apply atomically: every check happens before the first mutation.
func (g *Game) CommitTrade(userID int64) error {
	caller, err := g.tradeParty(userID, "commit it")
	if err != nil {
		return err
	}
	if !g.trade.BothAgreed() {
		return g.reject(State, "At least one of the players has not consented to this trade.")
	}

	a, b := caller, g.trade.OtherSide(caller.Player)
	for _, side := range []*models.TradeSide{a, b} {
		if side.Money > side.Player.Money() {
			return g.reject(Insufficiency, "You cannot trade more money than you have!")
		}
		for _, d := range side.Deeds {
			if !side.Player.Owns(d) {
				return g.reject(State, "You cannot trade properties you do not have!")
			}
		}
		if side.Cards > side.Player.JailCards() {
			return g.reject(Insufficiency, "You cannot trade more Get Out of Jail Free cards than you have!")
		}
	}

	g.swapLegs(a, b)
	g.swapLegs(b, a)
	a.Player.SortDeeds()
	b.Player.SortDeeds()

	g.trade.State = models.TradeCommitted
	g.trade = nil
	g.notify("The trade has completed!")
	return nil
}

// swapLegs moves one side's offer to the other player.
func (g *Game) swapLegs(from, to *models.TradeSide) {
	from.Player.AddMoney(-from.Money)
	to.Player.AddMoney(from.Money)
	g.notifyf("%s has traded $%d to %s!", from.Player.Name(), from.Money, to.Player.Name())

	for _, d := range from.Deeds {
		from.Player.RemoveDeed(d)
		d.SetOwner(to.Player)
		to.Player.AddDeed(d)
		g.notifyf("%s has traded %s to %s!", from.Player.Name(), d.Name(), to.Player.Name())
	}

	from.Player.SetJailCards(from.Player.JailCards() - from.Cards)
	to.Player.SetJailCards(to.Player.JailCards() + from.Cards)
	g.notifyf("%s has traded %d cards to %s!", from.Player.Name(), from.Cards, to.Player.Name())
}

// groupBuildings totals houses and hotels across a player's properties of
// one color.
func (g *Game) groupBuildings(p *models.Player, color string) int {
	total := 0
	for _, d := range p.Deeds() {
		if prop, ok := d.(*models.Property); ok && prop.Color() == color {
			total += prop.Houses() + prop.Hotels()
		}
	}
	return total
}

func (g *Game) tradeSummary() string {
	var b strings.Builder
	b.WriteString("The following is now in the trade.\n")
	for _, side := range g.trade.Sides {
		fmt.Fprintf(&b, "\nFrom %s:\n\nMoney: $%d\nGet Out of Jail Free cards: %d\nProperties:\n",
			side.Player.Name(), side.Money, side.Cards)
		for _, d := range side.Deeds {
			mortgaged := ""
			if d.Mortgaged() {
				mortgaged = " [[Mortgaged]]"
			}
			fmt.Fprintf(&b, "%s : %s [Mortgage Value: %d]%s\n", d.Name(), d.Group(), d.MortgageValue(), mortgaged)
		}
	}
	return b.String()
}
