package game

import (
	"testing"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTrade(t *testing.T) {
	g, _, n := newTestGame(t, "Alice", "Bob")

	require.NoError(t, g.SetupTrade(u(0), 1))

	require.NotNil(t, g.Trade())
	assert.Equal(t, models.TradeProposed, g.Trade().State)
	assert.True(t, n.contains("A trade is now pending between Alice and Bob!"))
}

func TestSetupTradeGuards(t *testing.T) {
	g, _, _ := newTestGame(t, "Alice", "Bob")

	requireKind(t, g.SetupTrade(u(1), 0), Authorization) // not your turn
	requireKind(t, g.SetupTrade(u(0), 7), State)         // no such player
	requireKind(t, g.SetupTrade(u(0), 0), Structural)    // self

	require.NoError(t, g.SetupTrade(u(0), 1))
	requireKind(t, g.SetupTrade(u(0), 1), State) // one trade at a time
}

func TestTradeLifecycle(t *testing.T) {
	g, _, n := newTestGame(t, "Alice", "Bob")
	alice, bob := g.Players()[u(0)], g.Players()[u(1)]
	d := giveDeed(t, g, alice, 3)

	require.NoError(t, g.SetupTrade(u(0), 1))
	require.NoError(t, g.AddToTrade(u(0), deedIndex(t, alice, d), 100, 0))
	require.NoError(t, g.AddToTrade(u(1), -1, 50, 0))
	require.NoError(t, g.AgreeTrade(u(0)))
	require.NoError(t, g.AgreeTrade(u(1)))
	require.NoError(t, g.CommitTrade(u(0)))

	assert.Nil(t, g.Trade())
	assert.Equal(t, 1450, alice.Money())
	assert.Equal(t, 1550, bob.Money())
	assert.True(t, bob.Owns(d))
	assert.False(t, alice.Owns(d))
	assert.Equal(t, bob, d.Owner())
	assert.True(t, n.contains("The trade has completed!"))
}

func TestTradeJailCards(t *testing.T) {
	g, _, _ := newTestGame(t, "Alice", "Bob")
	alice, bob := g.Players()[u(0)], g.Players()[u(1)]
	alice.SetJailCards(2)

	require.NoError(t, g.SetupTrade(u(0), 1))
	require.NoError(t, g.AddToTrade(u(0), -1, 0, 2))
	require.NoError(t, g.AgreeTrade(u(0)))
	require.NoError(t, g.AgreeTrade(u(1)))
	require.NoError(t, g.CommitTrade(u(1)))

	assert.Equal(t, 0, alice.JailCards())
	assert.Equal(t, 2, bob.JailCards())
}

func TestTradeCommitByCounterpart(t *testing.T) {
	g, _, _ := newTestGame(t, "Alice", "Bob")
	alice, bob := g.Players()[u(0)], g.Players()[u(1)]
	d := giveDeed(t, g, alice, 3)

	require.NoError(t, g.SetupTrade(u(0), 1))
	require.NoError(t, g.AddToTrade(u(0), deedIndex(t, alice, d), 0, 0))
	require.NoError(t, g.AddToTrade(u(1), -1, 50, 0))
	require.NoError(t, g.AgreeTrade(u(0)))
	require.NoError(t, g.AgreeTrade(u(1)))
	require.NoError(t, g.CommitTrade(u(1)))

	assert.Equal(t, 1550, alice.Money())
	assert.Equal(t, 1450, bob.Money())
	assert.True(t, bob.Owns(d))
	assert.Nil(t, g.Trade())
}

func TestTradeTermsFrozenAfterAgree(t *testing.T) {
	g, _, _ := newTestGame(t, "Alice", "Bob")

	require.NoError(t, g.SetupTrade(u(0), 1))
	require.NoError(t, g.AddToTrade(u(0), -1, 100, 0))
	require.NoError(t, g.AgreeTrade(u(1)))

	requireKind(t, g.AddToTrade(u(0), -1, 50, 0), State)
	requireKind(t, g.RemoveFromTrade(u(0), -1, 50, 0), State)

	// Disagreeing reopens amendment.
	require.NoError(t, g.DisagreeTrade(u(1)))
	require.NoError(t, g.AddToTrade(u(0), -1, 50, 0))
}

func TestTradeCommitNeedsBothAgreed(t *testing.T) {
	g, _, _ := newTestGame(t, "Alice", "Bob")

	require.NoError(t, g.SetupTrade(u(0), 1))
	require.NoError(t, g.AgreeTrade(u(0)))

	requireKind(t, g.CommitTrade(u(0)), State)
}

func TestTradeCommitRevalidatesAtomically(t *testing.T) {
	g, _, _ := newTestGame(t, "Alice", "Bob")
	alice, bob := g.Players()[u(0)], g.Players()[u(1)]

	require.NoError(t, g.SetupTrade(u(0), 1))
	require.NoError(t, g.AddToTrade(u(0), -1, 100, 0))
	require.NoError(t, g.AgreeTrade(u(0)))
	require.NoError(t, g.AgreeTrade(u(1)))

	alice.SetMoney(50) // holdings changed since the terms were set

	requireKind(t, g.CommitTrade(u(0)), Insufficiency)

	// No leg applied.
	assert.Equal(t, 50, alice.Money())
	assert.Equal(t, 1500, bob.Money())
	require.NotNil(t, g.Trade())
}

func TestTradeOnlyPartiesMayAct(t *testing.T) {
	g, _, _ := newTestGame(t, "Alice", "Bob", "Carol")

	require.NoError(t, g.SetupTrade(u(0), 1))

	requireKind(t, g.AgreeTrade(u(2)), Authorization)
	requireKind(t, g.AddToTrade(u(2), -1, 10, 0), Authorization)
	requireKind(t, g.CancelTrade(u(2)), Authorization)
}

func TestTradeCancelByCounterpart(t *testing.T) {
	g, _, n := newTestGame(t, "Alice", "Bob")

	require.NoError(t, g.SetupTrade(u(0), 1))
	require.NoError(t, g.CancelTrade(u(1)))

	assert.Nil(t, g.Trade())
	assert.True(t, n.contains("The pending trade has been cancelled."))
}

func TestTradeRejectsOverOffer(t *testing.T) {
	g, _, _ := newTestGame(t, "Alice", "Bob")
	g.Players()[u(0)].SetMoney(80)

	require.NoError(t, g.SetupTrade(u(0), 1))

	requireKind(t, g.AddToTrade(u(0), -1, 100, 0), Insufficiency)
	requireKind(t, g.AddToTrade(u(0), -1, 0, 1), Insufficiency) // no cards held
	requireKind(t, g.AddToTrade(u(0), -1, -5, 0), Structural)
	requireKind(t, g.AddToTrade(u(0), -1, 0, -1), Structural)
	requireKind(t, g.AddToTrade(u(0), 4, 0, 0), State) // no such holding
}

func TestTradeRejectsBuiltUpProperty(t *testing.T) {
	g, _, _ := newTestGame(t, "Alice", "Bob")
	alice := g.Players()[u(0)]
	giveDeed(t, g, alice, 1)
	d := giveDeed(t, g, alice, 3)
	propAt(t, g, 3).SetBuildings(1, 0)

	require.NoError(t, g.SetupTrade(u(0), 1))
	requireKind(t, g.AddToTrade(u(0), deedIndex(t, alice, d), 0, 0), Structural)
}

func TestTradeRejectsStrippingBuiltMonopoly(t *testing.T) {
	g, _, _ := newTestGame(t, "Alice", "Bob")
	alice := g.Players()[u(0)]
	med := giveDeed(t, g, alice, 1)
	giveDeed(t, g, alice, 3)
	propAt(t, g, 3).SetBuildings(2, 0)

	require.NoError(t, g.SetupTrade(u(0), 1))
	// Mediterranean is bare, but Baltic in the same monopoly has houses.
	requireKind(t, g.AddToTrade(u(0), deedIndex(t, alice, med), 0, 0), Structural)
}

func TestRemoveFromTrade(t *testing.T) {
	g, _, _ := newTestGame(t, "Alice", "Bob")
	alice := g.Players()[u(0)]
	d := giveDeed(t, g, alice, 3)

	require.NoError(t, g.SetupTrade(u(0), 1))
	require.NoError(t, g.AddToTrade(u(0), deedIndex(t, alice, d), 100, 0))
	require.NoError(t, g.RemoveFromTrade(u(0), deedIndex(t, alice, d), 60, 0))

	side := g.Trade().SideOf(alice)
	assert.Equal(t, 40, side.Money)
	assert.Empty(t, side.Deeds)

	// Floors at zero rather than going negative.
	require.NoError(t, g.RemoveFromTrade(u(0), -1, 500, 5))
	assert.Equal(t, 0, side.Money)
	assert.Equal(t, 0, side.Cards)
}

func TestEndTurnClearsTrade(t *testing.T) {
	g, src, _ := newTestGame(t, "Alice", "Bob")

	require.NoError(t, g.SetupTrade(u(0), 1))
	src.push(0, 1)
	require.NoError(t, g.RollDice(u(0)))
	require.NoError(t, g.EndTurn(u(0)))

	assert.Nil(t, g.Trade())
}
