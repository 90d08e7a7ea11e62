package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollMovesAndOffersProperty(t *testing.T) {
	g, src, n := newTestGame(t, "Alice", "Bob")
	src.push(0, 1) // faces 1,2

	require.NoError(t, g.RollDice(u(0)))

	p := g.Players()[u(0)]
	assert.Equal(t, 3, p.Position())
	assert.True(t, n.contains("You rolled a [1,2]!"))
	assert.True(t, n.contains("You landed on Baltic Avenue!"))
	assert.True(t, n.contains("This property is available!"))
}

func TestRollTwiceRejected(t *testing.T) {
	g, src, _ := newTestGame(t, "Alice", "Bob")
	src.push(0, 1)
	require.NoError(t, g.RollDice(u(0)))

	requireKind(t, g.RollDice(u(0)), State)
}

func TestRollOutOfTurn(t *testing.T) {
	g, _, _ := newTestGame(t, "Alice", "Bob")

	requireKind(t, g.RollDice(u(1)), Authorization)
	requireKind(t, g.RollDice(999), Authorization)
}

func TestDoublesGrantExtraTurn(t *testing.T) {
	g, src, _ := newTestGame(t, "Alice", "Bob")
	src.push(2, 2) // faces 3,3

	require.NoError(t, g.RollDice(u(0)))
	require.NoError(t, g.EndTurn(u(0)))

	assert.Equal(t, "Alice", g.ActivePlayer().Name())

	src.push(0, 1)
	require.NoError(t, g.RollDice(u(0)))
}

func TestLandOnGoCollectsBonus(t *testing.T) {
	g, src, n := newTestGame(t, "Alice", "Bob")
	p := g.Players()[u(0)]
	p.SetPosition(38)
	p.SetTotalRoll(38)

	src.push(0, 0) // faces 1,1
	require.NoError(t, g.RollDice(u(0)))

	assert.Equal(t, 0, p.Position())
	assert.Equal(t, 1700, p.Money())
	assert.True(t, n.contains("You landed on Go and collected $200!"))
}

func TestPassGoCollectsBonus(t *testing.T) {
	g, src, n := newTestGame(t, "Alice", "Bob")
	p := g.Players()[u(0)]
	p.SetPosition(38)
	p.SetTotalRoll(38)

	src.push(0, 1) // faces 1,2
	require.NoError(t, g.RollDice(u(0)))

	assert.Equal(t, 1, p.Position())
	assert.Equal(t, 1700, p.Money())
	assert.True(t, n.contains("You passed Go and collected $200!"))
}

func TestFirstLapGrantsNoBonus(t *testing.T) {
	g, src, _ := newTestGame(t, "Alice", "Bob")
	src.push(0, 1)
	require.NoError(t, g.RollDice(u(0)))

	assert.Equal(t, 1500, g.Players()[u(0)].Money())
}

func TestGoToJailSpace(t *testing.T) {
	g, src, n := newTestGame(t, "Alice", "Bob")
	p := g.Players()[u(0)]
	p.SetPosition(27)
	p.SetTotalRoll(27)

	src.push(0, 1) // faces 1,2
	require.NoError(t, g.RollDice(u(0)))

	assert.Equal(t, 10, p.Position())
	assert.Equal(t, 3, p.JailTurns())
	assert.True(t, n.contains("You landed on Go To Jail!"))
}

func TestJailRollWithoutDoublesUsesTurn(t *testing.T) {
	g, src, n := newTestGame(t, "Alice", "Bob")
	p := g.Players()[u(0)]
	p.SetPosition(10)
	p.SetJailTurns(3)

	src.push(0, 1)
	require.NoError(t, g.RollDice(u(0)))

	assert.Equal(t, 10, p.Position())
	assert.Equal(t, 2, p.JailTurns())
	assert.True(t, n.contains("You did not escape jail!"))

	// The turn can end normally afterwards.
	require.NoError(t, g.EndTurn(u(0)))
	assert.Equal(t, "Bob", g.ActivePlayer().Name())
}

func TestJailDoublesEscapeAndReopenRoll(t *testing.T) {
	g, src, n := newTestGame(t, "Alice", "Bob")
	p := g.Players()[u(0)]
	p.SetPosition(10)
	p.SetJailTurns(3)

	src.push(3, 3) // faces 4,4
	require.NoError(t, g.RollDice(u(0)))

	assert.Equal(t, -1, p.JailTurns())
	assert.Equal(t, 10, p.Position())
	assert.True(t, n.contains("You escaped jail!"))

	// Escape leaves the movement roll open.
	src.push(0, 1)
	require.NoError(t, g.RollDice(u(0)))
	assert.Equal(t, 13, p.Position())
}

func TestPayBail(t *testing.T) {
	g, _, n := newTestGame(t, "Alice", "Bob")
	p := g.Players()[u(0)]

	requireKind(t, g.PayBail(u(0)), State) // not in jail

	p.SetPosition(10)
	p.SetJailTurns(2)
	p.SetMoney(30)
	requireKind(t, g.PayBail(u(0)), Insufficiency)

	p.SetMoney(100)
	require.NoError(t, g.PayBail(u(0)))
	assert.Equal(t, -1, p.JailTurns())
	assert.Equal(t, 50, p.Money())
	assert.True(t, n.contains("You have paid your $50 bail and escaped jail!"))
}

func TestUseJailCard(t *testing.T) {
	g, _, _ := newTestGame(t, "Alice", "Bob")
	p := g.Players()[u(0)]

	requireKind(t, g.UseJailCard(u(0)), State) // not in jail

	p.SetPosition(10)
	p.SetJailTurns(2)
	requireKind(t, g.UseJailCard(u(0)), State) // no card

	p.AddJailCard()
	require.NoError(t, g.UseJailCard(u(0)))
	assert.Equal(t, -1, p.JailTurns())
	assert.Equal(t, 0, p.JailCards())
}

func TestTaxCreatesPendingPayment(t *testing.T) {
	g, src, _ := newTestGame(t, "Alice", "Bob")
	src.push(0, 2) // faces 1,3 -> Income Tax

	require.NoError(t, g.RollDice(u(0)))

	require.Len(t, g.PendingPayments(), 1)
	pay := g.PendingPayments()[0]
	assert.Equal(t, "Alice", pay.Payer.Name())
	assert.Nil(t, pay.Payee)
	assert.Equal(t, 200, pay.Amount)

	// The turn is blocked until the debt is settled.
	requireKind(t, g.EndTurn(u(0)), State)
	require.NoError(t, g.Pay(u(0), "bank", 200))
	assert.Equal(t, 1300, g.Players()[u(0)].Money())
	require.NoError(t, g.EndTurn(u(0)))
}
