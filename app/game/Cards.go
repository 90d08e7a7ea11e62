package game

import (
	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/board"
)

// The decks are static tables; a draw is a uniform index into one of them.
var (
	ChanceDeck = board.ChanceDeck
	ChestDeck  = board.ChestDeck
)

func (g *Game) drawCard(p *models.Player, deck func() []models.Card, prefix string) {
	cards := deck()
	card := cards[g.src.Intn(len(cards))]
	g.applyCard(p, card, prefix)
}

// applyCard enacts one effect descriptor. Movement effects run the pass-Go
// check and landing resolution at the destination; the jail effect only sets
// jail state.
func (g *Game) applyCard(p *models.Player, card models.Card, prefix string) {
	g.notifyf("%s: %s", prefix, card.Text)

	switch card.Effect {
	case models.CardAdvanceTo:
		lastTotal := p.TotalRoll()
		p.AddToTotalRoll(card.Pos - p.Position())
		p.SetPosition(card.Pos)
		g.checkPassGo(p, lastTotal)
		g.enactLanding(p)
	case models.CardMoveBack:
		p.SetPosition((p.Position() - card.Amount + len(g.board)) % len(g.board))
		p.AddToTotalRoll(-card.Amount)
		g.enactLanding(p)
	case models.CardCollect:
		p.AddMoney(card.Amount)
	case models.CardPayBank:
		g.payments = append(g.payments, models.PendingPayment{Payer: p, Amount: card.Amount})
	case models.CardJailFree:
		p.AddJailCard()
	case models.CardGoToJail:
		g.sendToJail(p)
	case models.CardPayEachPlayer:
		for _, id := range g.ids {
			if other := g.playerByLocalID(id); other != nil && other != p {
				g.payments = append(g.payments, models.PendingPayment{Payer: p, Payee: other, Amount: card.Amount})
			}
		}
	case models.CardCollectFromEach:
		for _, id := range g.ids {
			if other := g.playerByLocalID(id); other != nil && other != p {
				g.payments = append(g.payments, models.PendingPayment{Payer: other, Payee: p, Amount: card.Amount})
			}
		}
	case models.CardRepairs:
		owed := 0
		for _, d := range p.Deeds() {
			if prop, ok := d.(*models.Property); ok {
				owed += prop.Houses()*card.HouseRate + prop.Hotels()*card.HotelRate
			}
		}
		g.notifyf("You owe $%d in total.", owed)
		if owed > 0 {
			g.payments = append(g.payments, models.PendingPayment{Payer: p, Amount: owed})
		}
	}
}
