package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameSeatsPlayersInOrder(t *testing.T) {
	g, _, _ := newTestGame(t, "Alice", "Bob", "Carol")

	require.Len(t, g.Players(), 3)
	assert.Equal(t, 0, g.Players()[u(0)].ID())
	assert.Equal(t, 2, g.Players()[u(2)].ID())
	assert.Equal(t, "Alice", g.ActivePlayer().Name())
	for _, p := range g.Players() {
		assert.Equal(t, 1500, p.Money())
		assert.Equal(t, 0, p.Position())
		assert.Equal(t, -1, p.JailTurns())
	}
	// All 28 deeds start in the bank.
	assert.Len(t, g.Available(), 28)
}

func TestEndTurnBeforeRoll(t *testing.T) {
	g, _, _ := newTestGame(t, "Alice", "Bob")

	requireKind(t, g.EndTurn(u(0)), State)
}

func TestTurnRotation(t *testing.T) {
	g, src, n := newTestGame(t, "Alice", "Bob", "Carol")

	for _, expected := range []string{"Bob", "Carol", "Alice"} {
		src.push(0, 1)
		require.NoError(t, g.RollDice(g.ActivePlayer().UserID()))
		require.NoError(t, g.EndTurn(g.ActivePlayer().UserID()))
		assert.Equal(t, expected, g.ActivePlayer().Name())
	}
	assert.True(t, n.contains("The current player's turn is: Bob"))
}

func TestEndTurnOutOfTurn(t *testing.T) {
	g, src, _ := newTestGame(t, "Alice", "Bob")
	src.push(0, 1)
	require.NoError(t, g.RollDice(u(0)))

	requireKind(t, g.EndTurn(u(1)), Authorization)
}

func TestEndTurnBlockedByPayments(t *testing.T) {
	g, src, n := newTestGame(t, "Alice", "Bob")
	src.push(0, 2) // Income Tax
	require.NoError(t, g.RollDice(u(0)))

	requireKind(t, g.EndTurn(u(0)), State)
	assert.True(t, n.contains("You cannot end the turn! There are still pending payments to be made!"))
	assert.True(t, n.contains("Alice owes the bank $200!"))
	assert.Equal(t, "Alice", g.ActivePlayer().Name())
}

func TestBlamePointsAtDebtor(t *testing.T) {
	g, src, _ := newTestGame(t, "Alice", "Bob")
	bob := g.Players()[u(1)]
	giveDeed(t, g, bob, 3)

	assert.Equal(t, "Alice", g.Blame().Name())

	src.push(0, 1) // Alice lands on Bob's Baltic
	require.NoError(t, g.RollDice(u(0)))
	assert.Equal(t, "Alice", g.Blame().Name())

	require.NoError(t, g.Pay(u(0), "1", 4))
	require.NoError(t, g.EndTurn(u(0)))
	assert.Equal(t, "Bob", g.Blame().Name())
}
