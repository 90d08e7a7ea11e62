package game

import (
	"fmt"
	"strings"

	"github.com/DedS3t/monopoly-engine/app/models"
)

// HoldingsText lists a player's deeds with the indices commands address them
// by, so it must reflect the same sorted order DeedAt uses.
func HoldingsText(p *models.Player) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s properties:\n\n", p.Name())
	for i, d := range p.Deeds() {
		mortgaged := ""
		if d.Mortgaged() {
			mortgaged = "[[Mortgaged]]"
		}
		if prop, ok := d.(*models.Property); ok {
			fmt.Fprintf(&b, "(%d) %s : %s (%d houses, %d hotels) [Mortgage Value: %d] %s\n",
				i, prop.Name(), prop.Color(), prop.Houses(), prop.Hotels(), prop.MortgageValue(), mortgaged)
			continue
		}
		fmt.Fprintf(&b, "(%d) %s : %s [Mortgage Value: %d] %s\n",
			i, d.Name(), d.Group(), d.MortgageValue(), mortgaged)
	}
	return b.String()
}

// AssetsText is the full financial summary a player gets on /assets.
func AssetsText(p *models.Player) string {
	return fmt.Sprintf("%s\n\n%s money: $%d\n\n%s cards: %d\n\n%s total assets: $%d\n-----\n\n",
		HoldingsText(p), p.Name(), p.Money(), p.Name(), p.JailCards(), p.Name(), p.TotalAssets())
}

// MoneyText reports just the liquid funds.
func MoneyText(p *models.Player) string {
	return fmt.Sprintf("%s's current funds: $%d", p.Name(), p.Money())
}

// Blame names who the table is waiting on: the first pending payer if any
// debts are outstanding, otherwise the active player.
func (g *Game) Blame() *models.Player {
	if len(g.payments) > 0 {
		return g.payments[0].Payer
	}
	return g.ActivePlayer()
}

// TradeText reprints the pending trade terms on demand.
func (g *Game) TradeText() (string, error) {
	if g.trade == nil {
		return "", g.reject(State, "There is no pending trade!")
	}
	return g.tradeSummary(), nil
}
