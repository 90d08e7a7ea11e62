package game

import (
	"fmt"
	"strings"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/board"
	"github.com/DedS3t/monopoly-engine/platform/dice"
)

// RollDice rolls for the active player. In jail, doubles escape and leave
// the roll open for a fresh movement roll; otherwise a jail turn is used up
// and the player stays. Out of jail the player moves, collects the pass-Go
// bonus when due, and the destination space is resolved.
func (g *Game) RollDice(userID int64) error {
	p := g.player(userID)
	if err := g.checkTurn(p); err != nil {
		return err
	}
	if g.lastRoll != nil {
		return g.reject(State, "You already rolled this turn!")
	}

	roll := g.dice.Roll()
	g.hasDoubles = g.dice.CheckDoubles(roll)

	faces := make([]string, len(roll))
	for i, n := range roll {
		faces[i] = fmt.Sprintf("%d", n)
	}
	g.notifyf("You rolled a [%s]!", strings.Join(faces, ","))
	if g.hasDoubles {
		g.notify("You rolled doubles! You'll get an extra turn after this.")
	}

	switch {
	case p.JailTurns() > 0 && g.hasDoubles:
		p.SetJailTurns(-1)
		g.lastRoll = nil
		g.notify("You escaped jail!")
	case p.JailTurns() > 0:
		p.SetJailTurns(p.JailTurns() - 1)
		g.lastRoll = roll
		g.notify("You did not escape jail! You can wait, pay $50 bail, or use a Get Out of Jail Free card.")
	default:
		p.SetJailTurns(-1)
		lastTotal := p.TotalRoll()
		g.lastRoll = roll
		p.SetPosition((p.Position() + dice.Sum(roll)) % len(g.board))
		p.AddToTotalRoll(dice.Sum(roll))
		g.checkPassGo(p, lastTotal)
		g.enactLanding(p)
	}
	return nil
}

// sendToJail relocates the player to the jail cell with three turns left,
// keeping the cumulative roll consistent so no Go bonus leaks.
func (g *Game) sendToJail(p *models.Player) {
	p.AddToTotalRoll(board.JailPosition - p.Position())
	p.SetPosition(board.JailPosition)
	p.SetJailTurns(3)
}

// enactLanding dispatches on the variant of the destination space.
func (g *Game) enactLanding(p *models.Player) {
	space := g.board[p.Position()]
	switch space.Kind {
	case models.SpaceGo:
		// Bonus already granted by the pass-Go check.
	case models.SpaceGoToJail:
		g.notify("You landed on Go To Jail! As you might expect, you're going to jail. " +
			"You can pay your $50 bail now using /bail if you wish.")
		g.sendToJail(p)
	case models.SpaceFreeParking:
		g.notify("You landed on Free Parking!")
	case models.SpaceJail:
		if p.JailTurns() != -1 {
			g.notify("You are currently in jail! Escape by rolling doubles, a Get Out of Jail Free card, or paying your $50 bail.")
		} else {
			g.notify("You are currently visiting jail.")
		}
	case models.SpaceChance:
		g.drawCard(p, ChanceDeck, "Chance Card")
	case models.SpaceCommunityChest:
		g.drawCard(p, ChestDeck, "Community Chest Card")
	case models.SpaceTax:
		g.notifyf("You landed on %s! Pay $%d.", space.Name, space.Tax)
		g.payments = append(g.payments, models.PendingPayment{Payer: p, Amount: space.Tax})
	case models.SpaceProperty:
		g.landOnProperty(p, space.Prop)
	case models.SpaceOtherProperty:
		g.landOnOtherProperty(p, space.Other)
	}
}

func (g *Game) landOnProperty(p *models.Player, prop *models.Property) {
	g.notifyf("You landed on %s!", prop.Name())

	if g.isAvailable(prop) {
		g.notifyf("This property is available! You can buy %s (%s) for $%d.",
			prop.Name(), prop.Color(), prop.Cost())
		return
	}
	if p.Owns(prop) {
		g.notify("You own this property!")
		return
	}
	if prop.Mortgaged() {
		g.notify("This property is mortgaged!")
		return
	}
	owner := prop.Owner()
	rent := prop.Rent()
	g.notifyf("You owe %s $%d.", owner.Name(), rent)
	g.payments = append(g.payments, models.PendingPayment{Payer: p, Payee: owner, Amount: rent})
}

func (g *Game) landOnOtherProperty(p *models.Player, other *models.OtherProperty) {
	g.notifyf("You landed on %s!", other.Name())

	if g.isAvailable(other) {
		g.notifyf("This property is available! You can buy %s for $%d.", other.Name(), other.Cost())
		return
	}
	if p.Owns(other) {
		g.notify("You own this property!")
		return
	}
	if other.Mortgaged() {
		g.notify("This property is mortgaged!")
		return
	}

	owner := other.Owner()
	var rent int
	switch other.Kind() {
	case models.Railroad:
		// Exponential with count owned: base * 2^(n-1).
		rent = other.Rent()
		for i := 1; i < owner.CountKind(models.Railroad); i++ {
			rent *= 2
		}
	case models.Utility:
		if owner.CountKind(models.Utility) == 2 {
			rent = 10 * dice.Sum(g.lastRoll)
		} else {
			rent = 4 * dice.Sum(g.lastRoll)
		}
	}
	g.notifyf("You owe %s $%d.", owner.Name(), rent)
	g.payments = append(g.payments, models.PendingPayment{Payer: p, Payee: owner, Amount: rent})
}

func (g *Game) isAvailable(d models.Deed) bool {
	for _, a := range g.available {
		if a == d {
			return true
		}
	}
	return false
}

func (g *Game) removeFromAvailable(d models.Deed) {
	for i, a := range g.available {
		if a == d {
			g.available = append(g.available[:i], g.available[i+1:]...)
			return
		}
	}
}

// PayBail frees the active player from jail for $50, immediately and
// regardless of doubles.
func (g *Game) PayBail(userID int64) error {
	p := g.player(userID)
	if err := g.checkTurn(p); err != nil {
		return err
	}
	if p.JailTurns() == -1 {
		return g.reject(State, "You are not currently in jail!")
	}
	if p.Money() < board.BailAmount {
		return g.reject(Insufficiency, "You don't have enough in money to pay your $50 bail!")
	}
	p.SetJailTurns(-1)
	p.AddMoney(-board.BailAmount)
	g.notify("You have paid your $50 bail and escaped jail!")
	return nil
}

// UseJailCard consumes a Get Out of Jail Free card to end the sentence.
func (g *Game) UseJailCard(userID int64) error {
	p := g.player(userID)
	if err := g.checkTurn(p); err != nil {
		return err
	}
	if p.JailTurns() == -1 {
		return g.reject(State, "You are not currently in jail!")
	}
	if p.JailCards() <= 0 {
		return g.reject(State, "You don't have any Get Out of Jail Free cards!")
	}
	p.SetJailTurns(-1)
	p.RemoveJailCard()
	g.notify("You have used a Get Out of Jail Free card to escape jail!")
	return nil
}
