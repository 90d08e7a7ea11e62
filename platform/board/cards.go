package board

import (
	"github.com/DedS3t/monopoly-engine/app/models"
)

// ChanceDeck is the fixed chance table. A draw picks a uniform index; the
// "advance to the nearest" cards of the physical game are not included.
func ChanceDeck() []models.Card {
	return []models.Card{
		{Text: "Advance to Go! Collect $200!", Effect: models.CardAdvanceTo, Pos: 0},
		{Text: "Advance to Illinois Avenue!", Effect: models.CardAdvanceTo, Pos: 24},
		{Text: "Advance to St. Charles Place!", Effect: models.CardAdvanceTo, Pos: 11},
		{Text: "Bank pays you dividend of $50.", Effect: models.CardCollect, Amount: 50},
		{Text: "You got a Get Out of Jail Free card!", Effect: models.CardJailFree},
		{Text: "Go back three spaces!", Effect: models.CardMoveBack, Amount: 3},
		{Text: "Go directly to jail!", Effect: models.CardGoToJail},
		{Text: "Make general repairs on all your property! For each house pay $25, for each hotel pay $100!", Effect: models.CardRepairs, HouseRate: 25, HotelRate: 100},
		{Text: "Pay poor tax of $15.", Effect: models.CardPayBank, Amount: 15},
		{Text: "Take a trip to Reading Railroad!", Effect: models.CardAdvanceTo, Pos: 5},
		{Text: "Take a walk on the Boardwalk!", Effect: models.CardAdvanceTo, Pos: 39},
		{Text: "You've been elected chairman of the board! Pay each player $50.", Effect: models.CardPayEachPlayer, Amount: 50},
		{Text: "Your building loan matures! Receive $150.", Effect: models.CardCollect, Amount: 150},
	}
}

// ChestDeck is the fixed community chest table.
func ChestDeck() []models.Card {
	return []models.Card{
		{Text: "Advance to Go! Collect $200!", Effect: models.CardAdvanceTo, Pos: 0},
		{Text: "Bank error in your favor! Collect $200!", Effect: models.CardCollect, Amount: 200},
		{Text: "Doctor's fees! Pay $50.", Effect: models.CardPayBank, Amount: 50},
		{Text: "From stock sale you get $50!", Effect: models.CardCollect, Amount: 50},
		{Text: "You got a Get Out of Jail Free card!", Effect: models.CardJailFree},
		{Text: "Go directly to jail!", Effect: models.CardGoToJail},
		{Text: "Holiday fund matures. Collect $100!", Effect: models.CardCollect, Amount: 100},
		{Text: "Income tax refund. Collect $20!", Effect: models.CardCollect, Amount: 20},
		{Text: "It's your birthday! Collect $10 from each player.", Effect: models.CardCollectFromEach, Amount: 10},
		{Text: "Life insurance matures. Collect $100!", Effect: models.CardCollect, Amount: 100},
		{Text: "School fees! Pay $50.", Effect: models.CardPayBank, Amount: 50},
		{Text: "Receive $25 consultancy fee!", Effect: models.CardCollect, Amount: 25},
		{Text: "You are assessed for street repairs: Pay $40 per house and $115 per hotel you own.", Effect: models.CardRepairs, HouseRate: 40, HotelRate: 115},
		{Text: "You won second place in a beauty contest. Receive $10!", Effect: models.CardCollect, Amount: 10},
		{Text: "You inherit $100!", Effect: models.CardCollect, Amount: 100},
	}
}
