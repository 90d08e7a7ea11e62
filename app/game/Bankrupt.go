package game

import (
	"strconv"

	"github.com/DedS3t/monopoly-engine/app/models"
)

// Bankrupt surrenders everything the debtor has to the named creditor, or to
// the bank ("bank"). It is refused while the debtor still owes anyone else,
// so a debt cannot be dodged by bankrupting to a third party. The debtor
// leaves the rotation; one remaining player ends the game.
func (g *Game) Bankrupt(userID int64, target string) error {
	debtor := g.player(userID)
	if debtor == nil {
		return g.reject(Authorization, "You don't seem to exist!")
	}

	var creditor *models.Player
	if target != "bank" {
		id, err := strconv.Atoi(target)
		if err != nil {
			return g.reject(State, "The other player does not seem to exist!")
		}
		creditor = g.playerByLocalID(id)
		if creditor == nil {
			return g.reject(State, "The other player does not seem to exist!")
		}
		if creditor == debtor {
			return g.reject(Structural, "You cannot bankrupt to yourself!")
		}
	}

	for _, pending := range g.payments {
		if pending.Payer == debtor && pending.Payee != creditor {
			return g.reject(State, "You still have a payment pending to someone else! You must resolve it first.")
		}
	}

	money := debtor.Money()
	cards := debtor.JailCards()
	deeds := append([]models.Deed(nil), debtor.Deeds()...)

	if creditor == nil {
		// Deeds return to the pool with mortgage and building state
		// intact; money and cards are discarded.
		for _, d := range deeds {
			debtor.RemoveDeed(d)
			d.SetOwner(nil)
			g.available = append(g.available, d)
		}
		g.notifyf("%s has bankrupted to the bank!", debtor.Name())
	} else {
		creditor.AddMoney(money)
		for _, d := range deeds {
			debtor.RemoveDeed(d)
			d.SetOwner(creditor)
			creditor.AddDeed(d)
			g.notifyf("%s has received %s!", creditor.Name(), d.Name())
		}
		creditor.SetJailCards(creditor.JailCards() + cards)
		creditor.SortDeeds()
		g.notifyf("%s has bankrupted to %s!", debtor.Name(), creditor.Name())
	}
	debtor.SetMoney(0)
	debtor.SetJailCards(0)

	// Debts involving the departed player cease to exist; everyone
	// else's stay on the ledger.
	kept := g.payments[:0]
	for _, pending := range g.payments {
		if pending.Payer != debtor && pending.Payee != debtor {
			kept = append(kept, pending)
		}
	}
	g.payments = kept

	g.removeFromRotation(debtor)
	g.trade = nil
	g.hasDoubles = false
	g.lastRoll = nil

	if g.Over() {
		g.notifyf("%s has won the game!", g.Winner().Name())
		return nil
	}
	g.notifyf("The current player's turn is: %s", g.ActivePlayer().Name())
	return nil
}

// removeFromRotation drops the player from the active id cycle, remapping
// the turn pointer with the normal advancement rule when it referenced the
// removed id.
func (g *Game) removeFromRotation(p *models.Player) {
	id := p.ID()
	next := g.turn
	for i, active := range g.ids {
		if active == id {
			next = g.ids[(i+1)%len(g.ids)]
			g.ids = append(g.ids[:i], g.ids[i+1:]...)
			break
		}
	}
	delete(g.players, p.UserID())
	if g.turn == id {
		g.turn = next
	}
}
