// Package board holds the fixed game data: the 40-cell US board and the two
// card decks. Every game gets fresh entity instances so sessions never share
// mutable state.
package board

import (
	"github.com/DedS3t/monopoly-engine/app/models"
)

const (
	// GoPosition is where everyone starts and collects the lap bonus.
	GoPosition = 0
	// JailPosition is the cell players are moved to when incarcerated.
	JailPosition = 10
	// PassGoBonus is paid once per full traversal of the board.
	PassGoBonus = 200
	// BailAmount frees a jailed player immediately.
	BailAmount = 50
	// StartingMoney is each player's opening balance.
	StartingMoney = 1500
)

// New builds a fresh board. Index arithmetic is modulo len(board) == 40.
func New() models.Board {
	return models.Board{
		models.GoSpace(),
		models.PropertySpace(models.NewProperty("Mediterranean Avenue", "Brown", 60, [6]int{2, 10, 30, 90, 160, 250}, 30, 50, 50)),
		models.CommunityChestSpace(),
		models.PropertySpace(models.NewProperty("Baltic Avenue", "Brown", 60, [6]int{4, 20, 60, 180, 320, 450}, 30, 50, 50)),
		models.TaxSpace("Income Tax", 200),
		models.OtherPropertySpace(models.NewOtherProperty("Reading Railroad", 200, 25, 100, models.Railroad)),
		models.PropertySpace(models.NewProperty("Oriental Avenue", "Light Blue", 100, [6]int{6, 30, 90, 270, 400, 550}, 50, 50, 50)),
		models.ChanceSpace(),
		models.PropertySpace(models.NewProperty("Vermont Avenue", "Light Blue", 100, [6]int{6, 30, 90, 270, 400, 550}, 50, 50, 50)),
		models.PropertySpace(models.NewProperty("Connecticut Avenue", "Light Blue", 120, [6]int{8, 40, 100, 300, 450, 600}, 60, 50, 50)),
		models.JailSpace(),
		models.PropertySpace(models.NewProperty("St. Charles Place", "Pink", 140, [6]int{10, 50, 150, 450, 625, 750}, 70, 100, 100)),
		models.OtherPropertySpace(models.NewOtherProperty("Electric Company", 150, 1, 75, models.Utility)),
		models.PropertySpace(models.NewProperty("States Avenue", "Pink", 140, [6]int{10, 50, 150, 450, 625, 750}, 70, 100, 100)),
		models.PropertySpace(models.NewProperty("Virginia Avenue", "Pink", 160, [6]int{12, 60, 180, 500, 700, 900}, 80, 100, 100)),
		models.OtherPropertySpace(models.NewOtherProperty("Pennsylvania Railroad", 200, 25, 100, models.Railroad)),
		models.PropertySpace(models.NewProperty("St. James Place", "Orange", 180, [6]int{14, 70, 200, 550, 750, 950}, 90, 100, 100)),
		models.CommunityChestSpace(),
		models.PropertySpace(models.NewProperty("Tennessee Avenue", "Orange", 180, [6]int{14, 70, 200, 550, 750, 950}, 90, 100, 100)),
		models.PropertySpace(models.NewProperty("New York Avenue", "Orange", 200, [6]int{16, 80, 220, 600, 800, 1000}, 100, 100, 100)),
		models.FreeParkingSpace(),
		models.PropertySpace(models.NewProperty("Kentucky Avenue", "Red", 220, [6]int{18, 90, 250, 700, 875, 1050}, 110, 150, 150)),
		models.ChanceSpace(),
		models.PropertySpace(models.NewProperty("Indiana Avenue", "Red", 220, [6]int{18, 90, 250, 700, 875, 1050}, 110, 150, 150)),
		models.PropertySpace(models.NewProperty("Illinois Avenue", "Red", 240, [6]int{20, 100, 300, 750, 925, 1100}, 120, 150, 150)),
		models.OtherPropertySpace(models.NewOtherProperty("B. & O. Railroad", 200, 25, 100, models.Railroad)),
		models.PropertySpace(models.NewProperty("Atlantic Avenue", "Yellow", 260, [6]int{22, 110, 330, 800, 975, 1150}, 130, 150, 150)),
		models.PropertySpace(models.NewProperty("Ventnor Avenue", "Yellow", 260, [6]int{22, 110, 330, 800, 975, 1150}, 130, 150, 150)),
		models.OtherPropertySpace(models.NewOtherProperty("Water Works", 150, 1, 75, models.Utility)),
		models.PropertySpace(models.NewProperty("Marvin Gardens", "Yellow", 280, [6]int{24, 120, 360, 850, 1025, 1200}, 140, 150, 150)),
		models.GoToJailSpace(),
		models.PropertySpace(models.NewProperty("Pacific Avenue", "Green", 300, [6]int{26, 130, 390, 900, 1100, 1275}, 150, 200, 200)),
		models.PropertySpace(models.NewProperty("North Carolina Avenue", "Green", 300, [6]int{26, 130, 390, 900, 1100, 1275}, 150, 200, 200)),
		models.CommunityChestSpace(),
		models.PropertySpace(models.NewProperty("Pennsylvania Avenue", "Green", 320, [6]int{28, 150, 450, 1000, 1200, 1400}, 160, 200, 200)),
		models.OtherPropertySpace(models.NewOtherProperty("Short Line", 200, 25, 100, models.Railroad)),
		models.ChanceSpace(),
		models.PropertySpace(models.NewProperty("Park Place", "Blue", 350, [6]int{35, 175, 500, 1100, 1300, 1500}, 175, 200, 200)),
		models.TaxSpace("Luxury Tax", 100),
		models.PropertySpace(models.NewProperty("Boardwalk", "Blue", 400, [6]int{50, 200, 600, 1400, 1700, 2000}, 200, 200, 200)),
	}
}

// Deeds returns every ownable entity on the board in board order.
func Deeds(b models.Board) []models.Deed {
	var deeds []models.Deed
	for _, s := range b {
		if d := s.Deed(); d != nil {
			deeds = append(deeds, d)
		}
	}
	return deeds
}

// DeedAt returns the ownable entity at pos, or nil. O(1).
func DeedAt(b models.Board, pos int) models.Deed {
	if pos < 0 || pos >= len(b) {
		return nil
	}
	return b[pos].Deed()
}

// Position finds the board index of a deed. O(N), fine at board scale.
func Position(b models.Board, d models.Deed) int {
	for i, s := range b {
		if s.Deed() == d {
			return i
		}
	}
	return -1
}

// GroupSize counts the board properties sharing a color. Monopoly checks
// derive the full-group size from the board instead of hard-coding which
// colors have two members.
func GroupSize(b models.Board, color string) int {
	count := 0
	for _, s := range b {
		if s.Kind == models.SpaceProperty && s.Prop.Color() == color {
			count++
		}
	}
	return count
}
