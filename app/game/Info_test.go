package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoldingsTextListsIndexedDeeds(t *testing.T) {
	g, _, _ := newTestGame(t, "Alice", "Bob")
	alice := g.Players()[u(0)]
	giveDeed(t, g, alice, 3)
	d := giveDeed(t, g, alice, 5)
	d.SetMortgaged(true)

	text := HoldingsText(alice)
	assert.Contains(t, text, "Alice properties:")
	assert.Contains(t, text, "(0) Baltic Avenue : Brown (0 houses, 0 hotels) [Mortgage Value: 30]")
	assert.Contains(t, text, "(1) Reading Railroad : Railroad [Mortgage Value: 100] [[Mortgaged]]")
}

func TestAssetsText(t *testing.T) {
	g, _, _ := newTestGame(t, "Alice", "Bob")
	alice := g.Players()[u(0)]
	giveDeed(t, g, alice, 3)
	alice.SetJailCards(1)

	text := AssetsText(alice)
	assert.Contains(t, text, "Alice money: $1500")
	assert.Contains(t, text, "Alice cards: 1")
	assert.Contains(t, text, "Alice total assets: $1530")
}

func TestMoneyText(t *testing.T) {
	g, _, _ := newTestGame(t, "Alice", "Bob")
	assert.Equal(t, "Alice's current funds: $1500", MoneyText(g.Players()[u(0)]))
}

func TestTradeText(t *testing.T) {
	g, _, _ := newTestGame(t, "Alice", "Bob")

	_, err := g.TradeText()
	requireKind(t, err, State)

	require.NoError(t, g.SetupTrade(u(0), 1))
	require.NoError(t, g.AddToTrade(u(0), -1, 75, 0))

	text, err := g.TradeText()
	require.NoError(t, err)
	assert.Contains(t, text, "From Alice:")
	assert.Contains(t, text, "Money: $75")
	assert.Contains(t, text, "From Bob:")
}

func TestTotalAssetsValuation(t *testing.T) {
	g, _, _ := newTestGame(t, "Alice", "Bob")
	alice := g.Players()[u(0)]
	giveDeed(t, g, alice, 3)  // mortgage value 30
	giveDeed(t, g, alice, 5)  // mortgage value 100
	propAt(t, g, 3).SetBuildings(2, 0)

	// 1500 + 30 + 2 houses at 50 + 100
	assert.Equal(t, 1730, alice.TotalAssets())
}
