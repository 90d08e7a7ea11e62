package game

import (
	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/board"
)

// PurchaseProperty buys the deed at the buyer's current position out of the
// available pool. Declining is simply not issuing the command; there is no
// auction.
func (g *Game) PurchaseProperty(userID int64) error {
	p := g.player(userID)
	if err := g.checkTurn(p); err != nil {
		return err
	}

	deed := board.DeedAt(g.board, p.Position())
	if deed == nil || !g.isAvailable(deed) {
		return g.reject(State, "You cannot buy a property that is already owned or isn't a property!")
	}
	if p.Money() < deed.Cost() {
		return g.reject(Insufficiency, "You do not have enough money to buy this property!")
	}

	p.AddMoney(-deed.Cost())
	deed.SetOwner(p)
	g.removeFromAvailable(deed)
	p.AddDeed(deed)
	p.SortDeeds()

	g.notifyf("You have purchased %s for $%d!", deed.Name(), deed.Cost())
	return nil
}

// ownsFullGroup reports whether p holds every board property of the color.
// The group size comes from the board itself: 2 for the two-member groups,
// 3 for the rest.
func (g *Game) ownsFullGroup(p *models.Player, color string) bool {
	owned := 0
	for _, d := range p.Deeds() {
		if prop, ok := d.(*models.Property); ok && prop.Color() == color {
			owned++
		}
	}
	return owned >= board.GroupSize(g.board, color)
}

// deedForBuilding resolves a holdings index to a color property, rejecting
// railroads and utilities.
func (g *Game) deedForBuilding(p *models.Player, propIdx int, verb string) (*models.Property, error) {
	deed := p.DeedAt(propIdx)
	if deed == nil {
		return nil, g.reject(State, "That is not a property you own.")
	}
	prop, ok := deed.(*models.Property)
	if !ok {
		return nil, g.reject(Structural, "You cannot "+verb+" on a Railroad or Utility!")
	}
	return prop, nil
}

// PurchaseHouse adds one house to a property of a fully owned color group.
func (g *Game) PurchaseHouse(userID int64, propIdx int) error {
	p := g.player(userID)
	if err := g.checkTurn(p); err != nil {
		return err
	}
	prop, err := g.deedForBuilding(p, propIdx, "buy houses")
	if err != nil {
		return err
	}
	if prop.Houses() == 4 || prop.Hotels() == 1 {
		return g.reject(Structural, "That property has the maximum number of houses already!")
	}
	if !g.ownsFullGroup(p, prop.Color()) {
		return g.reject(Structural, "You do not own the full set of this color property!")
	}
	if p.Money() < prop.HouseCost() {
		return g.reject(Insufficiency, "You do not have enough money to afford a house on that property!")
	}

	p.AddMoney(-prop.HouseCost())
	prop.AddHouse()
	g.notifyf("You have added a house to %s!", prop.Name())
	return nil
}

// PurchaseHotel converts four houses into the hotel.
func (g *Game) PurchaseHotel(userID int64, propIdx int) error {
	p := g.player(userID)
	if err := g.checkTurn(p); err != nil {
		return err
	}
	prop, err := g.deedForBuilding(p, propIdx, "buy hotels")
	if err != nil {
		return err
	}
	if prop.Houses() < 4 || prop.Hotels() == 1 {
		return g.reject(Structural, "That property has too few houses or already has a hotel!")
	}
	if p.Money() < prop.HotelCost() {
		return g.reject(Insufficiency, "You do not have enough money to afford a hotel on that property!")
	}

	p.AddMoney(-prop.HotelCost())
	prop.AddHotel()
	g.notifyf("You have added a hotel to %s!", prop.Name())
	return nil
}

// SellHouse removes one house, crediting the full build cost back.
func (g *Game) SellHouse(userID int64, propIdx int) error {
	p := g.player(userID)
	if err := g.checkTurn(p); err != nil {
		return err
	}
	prop, err := g.deedForBuilding(p, propIdx, "sell houses")
	if err != nil {
		return err
	}
	if prop.Houses() == 0 {
		return g.reject(Structural, "That property has no houses!")
	}
	if !g.ownsFullGroup(p, prop.Color()) {
		return g.reject(Structural, "You do not own the full set of this color property!")
	}

	p.AddMoney(prop.HouseCost())
	prop.RemoveHouse()
	g.notifyf("You have removed a house from %s!", prop.Name())
	return nil
}

// SellHotel removes the hotel, restoring its four houses and crediting the
// hotel cost back.
func (g *Game) SellHotel(userID int64, propIdx int) error {
	p := g.player(userID)
	if err := g.checkTurn(p); err != nil {
		return err
	}
	prop, err := g.deedForBuilding(p, propIdx, "sell hotels")
	if err != nil {
		return err
	}
	if prop.Hotels() == 0 {
		return g.reject(Structural, "That property does not have a hotel!")
	}

	p.AddMoney(prop.HotelCost())
	prop.RemoveHotel()
	g.notifyf("You have removed a hotel from %s!", prop.Name())
	return nil
}

// Mortgage liquidates any buildings at full build cost, pays out the
// mortgage value on top, and flags the deed. Rent stops until unmortgaged.
func (g *Game) Mortgage(userID int64, propIdx int) error {
	p := g.player(userID)
	if err := g.checkTurn(p); err != nil {
		return err
	}
	deed := p.DeedAt(propIdx)
	if deed == nil {
		return g.reject(State, "You cannot mortgage a property that isn't yours!")
	}
	if deed.Mortgaged() {
		return g.reject(State, "You cannot mortgage a property that's already mortgaged!")
	}

	payout := deed.MortgageValue()
	if prop, ok := deed.(*models.Property); ok {
		payout += prop.Houses() * prop.HouseCost()
		payout += prop.Hotels()*prop.HotelCost() + prop.Hotels()*prop.HouseCost()*4
		prop.SetBuildings(0, 0)
	}

	p.AddMoney(payout)
	deed.SetMortgaged(true)
	g.notifyf("You have mortgaged %s for $%d!", deed.Name(), payout)
	return nil
}

// Unmortgage repays exactly the mortgage value and restores rent collection.
func (g *Game) Unmortgage(userID int64, propIdx int) error {
	p := g.player(userID)
	if err := g.checkTurn(p); err != nil {
		return err
	}
	deed := p.DeedAt(propIdx)
	if deed == nil {
		return g.reject(State, "You cannot unmortgage a property that isn't yours!")
	}
	if !deed.Mortgaged() {
		return g.reject(State, "You cannot unmortgage a property that isn't mortgaged!")
	}
	cost := deed.MortgageValue()
	if p.Money() < cost {
		return g.reject(Insufficiency, "You don't have enough in money to unmortgage that property!")
	}

	p.AddMoney(-cost)
	deed.SetMortgaged(false)
	g.notifyf("You have unmortgaged %s for $%d!", deed.Name(), cost)
	return nil
}
