package game

import (
	"strconv"

	"github.com/DedS3t/monopoly-engine/app/models"
)

// resolvePayee maps the payee argument to a player; "bank" or the empty
// string mean the bank (nil). Digits look up a local id, anything else a
// display name.
func (g *Game) resolvePayee(payee string) *models.Player {
	if payee == "" || payee == "bank" {
		return nil
	}
	if id, err := strconv.Atoi(payee); err == nil {
		return g.playerByLocalID(id)
	}
	return g.playerByName(payee)
}

// Pay settles one pending payment. The (payer, payee, amount) triple must
// match an entry exactly. A payer short on cash but covered by total assets
// is told to liquidate first; one short on total assets is told bankruptcy
// is the way out. No partial settlement, no automatic liquidation.
func (g *Game) Pay(userID int64, payee string, amount int) error {
	payer := g.player(userID)
	if payer == nil {
		return g.reject(Authorization, "You don't seem to exist!")
	}
	to := g.resolvePayee(payee)

	idx := -1
	for i, pending := range g.payments {
		if pending.Payer == payer && pending.Payee == to && pending.Amount == amount {
			idx = i
			break
		}
	}
	if idx == -1 {
		return g.reject(State, "That transaction is not a pending payment!")
	}

	name := "the bank"
	if to != nil {
		name = to.Name()
	}

	if payer.Money() < amount {
		if payer.TotalAssets() < amount {
			g.notifyf("You do not have enough total assets to pay %s!", name)
			msg := "You can either go bankrupt or convince someone else to trade for what you need!"
			return g.reject(Insufficiency, msg)
		}
		msg := "You have enough total assets to pay " + name +
			", but need to sell some houses or mortgage properties."
		return g.reject(Insufficiency, msg)
	}

	payer.AddMoney(-amount)
	if to != nil {
		to.AddMoney(amount)
	}
	g.payments = append(g.payments[:idx], g.payments[idx+1:]...)
	g.notifyf("You paid %s $%d!", name, amount)
	return nil
}
