package models

// CardEffect tags what drawing a card does.
type CardEffect int

const (
	// CardAdvanceTo moves to an absolute position, with the pass-Go check
	// and landing resolution at the destination.
	CardAdvanceTo CardEffect = iota
	// CardMoveBack moves backwards by Amount spaces, no pass-Go check,
	// landing resolution at the destination.
	CardMoveBack
	// CardCollect credits Amount from the bank immediately.
	CardCollect
	// CardPayBank enqueues a pending payment of Amount to the bank.
	CardPayBank
	// CardJailFree grants a Get Out of Jail Free card.
	CardJailFree
	// CardGoToJail sends the player to jail without landing resolution.
	CardGoToJail
	// CardPayEachPlayer enqueues a pending payment of Amount to every
	// other active player.
	CardPayEachPlayer
	// CardCollectFromEach enqueues a pending payment of Amount from every
	// other active player to the drawer.
	CardCollectFromEach
	// CardRepairs enqueues a payment of HouseRate per house and HotelRate
	// per hotel the drawer owns.
	CardRepairs
)

// Card is a static effect descriptor in a deck table; the draw index picks
// the card and one generic applier enacts it.
type Card struct {
	Text      string
	Effect    CardEffect
	Pos       int
	Amount    int
	HouseRate int
	HotelRate int
}
