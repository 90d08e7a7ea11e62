package models

// SpaceKind tags the board cell variants.
type SpaceKind int

const (
	SpaceGo SpaceKind = iota
	SpaceCommunityChest
	SpaceChance
	SpaceTax
	SpaceJail
	SpaceFreeParking
	SpaceGoToJail
	SpaceProperty
	SpaceOtherProperty
)

// Space is one board cell. Exactly one payload is set, matching Kind: Name
// and Tax for tax spaces, Prop for SpaceProperty, Other for SpaceOtherProperty.
type Space struct {
	Kind  SpaceKind
	Name  string
	Tax   int
	Prop  *Property
	Other *OtherProperty
}

func GoSpace() Space             { return Space{Kind: SpaceGo} }
func CommunityChestSpace() Space { return Space{Kind: SpaceCommunityChest} }
func ChanceSpace() Space         { return Space{Kind: SpaceChance} }
func JailSpace() Space           { return Space{Kind: SpaceJail} }
func FreeParkingSpace() Space    { return Space{Kind: SpaceFreeParking} }
func GoToJailSpace() Space       { return Space{Kind: SpaceGoToJail} }

func TaxSpace(name string, amount int) Space {
	return Space{Kind: SpaceTax, Name: name, Tax: amount}
}

func PropertySpace(p *Property) Space {
	return Space{Kind: SpaceProperty, Prop: p}
}

func OtherPropertySpace(o *OtherProperty) Space {
	return Space{Kind: SpaceOtherProperty, Other: o}
}

// Deed returns the ownable entity on this space, or nil for generic spaces.
func (s Space) Deed() Deed {
	switch s.Kind {
	case SpaceProperty:
		return s.Prop
	case SpaceOtherProperty:
		return s.Other
	}
	return nil
}

// DisplayName labels the cell for board listings: the deed's name for
// ownable spaces, the tax name for tax spaces, a fixed label otherwise.
func (s Space) DisplayName() string {
	switch s.Kind {
	case SpaceGo:
		return "Go"
	case SpaceCommunityChest:
		return "Community Chest"
	case SpaceChance:
		return "Chance"
	case SpaceTax:
		return s.Name
	case SpaceJail:
		return "Jail"
	case SpaceFreeParking:
		return "Free Parking"
	case SpaceGoToJail:
		return "Go to Jail"
	}
	if d := s.Deed(); d != nil {
		return d.Name()
	}
	return ""
}

// Board is the fixed ordered sequence of 40 spaces. Position arithmetic is
// modulo len(board).
type Board []Space
