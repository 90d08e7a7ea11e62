package models

// DeedKind distinguishes the non-color properties.
type DeedKind string

const (
	Railroad DeedKind = "Railroad"
	Utility  DeedKind = "Utility"
)

// Deed is the common surface of Property and OtherProperty: anything that can
// be owned, priced, mortgaged and traded. A player's holdings, the available
// pool and trade legs are all []Deed.
type Deed interface {
	Name() string
	Cost() int
	MortgageValue() int
	Mortgaged() bool
	SetMortgaged(v bool)
	Owner() *Player
	SetOwner(p *Player)
	// Group returns the color for a Property and the kind for an
	// OtherProperty. Used for sorting and display.
	Group() string
}

// Property is a color-group street. Rents is indexed by houses + 5*hotels,
// so the hotel rent sits in the last slot. Houses and a hotel are mutually
// exclusive; building the hotel consumes all 4 houses.
type Property struct {
	name          string
	color         string
	cost          int
	rents         [6]int
	houses        int
	hotels        int
	houseCost     int
	hotelCost     int
	mortgageValue int
	mortgaged     bool
	owner         *Player
}

func NewProperty(name, color string, cost int, rents [6]int, mortgageValue, houseCost, hotelCost int) *Property {
	return &Property{
		name:          name,
		color:         color,
		cost:          cost,
		rents:         rents,
		mortgageValue: mortgageValue,
		houseCost:     houseCost,
		hotelCost:     hotelCost,
	}
}

func (p *Property) Name() string        { return p.name }
func (p *Property) Color() string       { return p.color }
func (p *Property) Group() string       { return p.color }
func (p *Property) Cost() int           { return p.cost }
func (p *Property) Houses() int         { return p.houses }
func (p *Property) Hotels() int         { return p.hotels }
func (p *Property) HouseCost() int      { return p.houseCost }
func (p *Property) HotelCost() int      { return p.hotelCost }
func (p *Property) MortgageValue() int  { return p.mortgageValue }
func (p *Property) Mortgaged() bool     { return p.mortgaged }
func (p *Property) SetMortgaged(v bool) { p.mortgaged = v }
func (p *Property) Owner() *Player      { return p.owner }
func (p *Property) SetOwner(pl *Player) { p.owner = pl }

// Rent is the current rent owed by a visitor.
func (p *Property) Rent() int { return p.rents[p.houses+5*p.hotels] }

func (p *Property) AddHouse() {
	if p.houses < 4 && p.hotels == 0 {
		p.houses++
	}
}

func (p *Property) RemoveHouse() {
	if p.houses > 0 {
		p.houses--
	}
}

func (p *Property) AddHotel() {
	if p.houses == 4 {
		p.houses = 0
		p.hotels = 1
	}
}

func (p *Property) RemoveHotel() {
	if p.hotels > 0 {
		p.hotels = 0
		p.houses = 4
	}
}

// SetBuildings overwrites the building state directly. Used when mortgaging
// liquidates everything and when restoring a snapshot.
func (p *Property) SetBuildings(houses, hotels int) {
	p.houses = houses
	p.hotels = hotels
}

// OtherProperty is a railroad or utility. Rent depends on how many deeds of
// the same kind the owner holds, not on the base rent alone.
type OtherProperty struct {
	name          string
	cost          int
	rent          int
	mortgageValue int
	kind          DeedKind
	mortgaged     bool
	owner         *Player
}

func NewOtherProperty(name string, cost, rent, mortgageValue int, kind DeedKind) *OtherProperty {
	return &OtherProperty{
		name:          name,
		cost:          cost,
		rent:          rent,
		mortgageValue: mortgageValue,
		kind:          kind,
	}
}

func (o *OtherProperty) Name() string        { return o.name }
func (o *OtherProperty) Cost() int           { return o.cost }
func (o *OtherProperty) Rent() int           { return o.rent }
func (o *OtherProperty) MortgageValue() int  { return o.mortgageValue }
func (o *OtherProperty) Kind() DeedKind      { return o.kind }
func (o *OtherProperty) Group() string       { return string(o.kind) }
func (o *OtherProperty) Mortgaged() bool     { return o.mortgaged }
func (o *OtherProperty) SetMortgaged(v bool) { o.mortgaged = v }
func (o *OtherProperty) Owner() *Player      { return o.owner }
func (o *OtherProperty) SetOwner(p *Player)  { o.owner = p }
