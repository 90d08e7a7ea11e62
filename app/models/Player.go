package models

import "sort"

// Player is one participant in a game. The deeds list is mixed (properties,
// railroads, utilities) and kept sorted by group, because commands address
// deeds by their index in this list.
type Player struct {
	userID    int64
	id        int
	name      string
	money     int
	deeds     []Deed
	jailCards int
	jailTurns int // -1 means not in jail, 0-3 turns remaining
	position  int
	totalRoll int
}

func NewPlayer(userID int64, id int, name string, money int) *Player {
	return &Player{
		userID:    userID,
		id:        id,
		name:      name,
		money:     money,
		jailTurns: -1,
	}
}

func (p *Player) UserID() int64 { return p.userID }
func (p *Player) ID() int       { return p.id }
func (p *Player) Name() string  { return p.name }

func (p *Player) Money() int         { return p.money }
func (p *Player) AddMoney(delta int) { p.money += delta }
func (p *Player) SetMoney(money int) { p.money = money }

func (p *Player) JailCards() int         { return p.jailCards }
func (p *Player) AddJailCard()           { p.jailCards++ }
func (p *Player) RemoveJailCard()        { p.jailCards-- }
func (p *Player) SetJailCards(cards int) { p.jailCards = cards }
func (p *Player) JailTurns() int         { return p.jailTurns }
func (p *Player) SetJailTurns(turns int) { p.jailTurns = turns }
func (p *Player) Position() int          { return p.position }
func (p *Player) SetPosition(pos int)    { p.position = pos }
func (p *Player) TotalRoll() int         { return p.totalRoll }
func (p *Player) AddToTotalRoll(sum int) { p.totalRoll += sum }
func (p *Player) SetTotalRoll(total int) { p.totalRoll = total }

func (p *Player) Deeds() []Deed { return p.deeds }

// DeedAt returns the deed at index i of the sorted holdings, or nil.
func (p *Player) DeedAt(i int) Deed {
	if i < 0 || i >= len(p.deeds) {
		return nil
	}
	return p.deeds[i]
}

func (p *Player) AddDeed(d Deed) { p.deeds = append(p.deeds, d) }

func (p *Player) RemoveDeed(d Deed) {
	for i, held := range p.deeds {
		if held == d {
			p.deeds = append(p.deeds[:i], p.deeds[i+1:]...)
			return
		}
	}
}

func (p *Player) Owns(d Deed) bool {
	for _, held := range p.deeds {
		if held == d {
			return true
		}
	}
	return false
}

func (p *Player) SortDeeds() {
	sort.SliceStable(p.deeds, func(i, j int) bool {
		return p.deeds[i].Group() < p.deeds[j].Group()
	})
}

// CountKind reports how many railroads or utilities the player holds.
func (p *Player) CountKind(kind DeedKind) int {
	count := 0
	for _, d := range p.deeds {
		if o, ok := d.(*OtherProperty); ok && o.Kind() == kind {
			count++
		}
	}
	return count
}

// TotalAssets is liquid money plus everything that could be raised by
// mortgaging all deeds and selling every building at build cost.
func (p *Player) TotalAssets() int {
	total := p.money
	for _, d := range p.deeds {
		switch v := d.(type) {
		case *Property:
			total += v.MortgageValue() + v.HouseCost()*v.Houses() + v.HotelCost()*v.Hotels()
		case *OtherProperty:
			total += v.MortgageValue()
		}
	}
	return total
}
