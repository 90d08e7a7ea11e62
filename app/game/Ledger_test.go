package game

import (
	"testing"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func owe(g *Game, payer, payee *models.Player, amount int) {
	g.payments = append(g.payments, models.PendingPayment{Payer: payer, Payee: payee, Amount: amount})
}

func TestPaySettlesExactMatch(t *testing.T) {
	g, _, n := newTestGame(t, "Alice", "Bob")
	alice, bob := g.Players()[u(0)], g.Players()[u(1)]
	owe(g, alice, bob, 90)

	require.NoError(t, g.Pay(u(0), "1", 90))

	assert.Equal(t, 1410, alice.Money())
	assert.Equal(t, 1590, bob.Money())
	assert.Empty(t, g.PendingPayments())
	assert.True(t, n.contains("You paid Bob $90!"))
}

func TestPayByName(t *testing.T) {
	g, _, _ := newTestGame(t, "Alice", "Bob")
	owe(g, g.Players()[u(0)], g.Players()[u(1)], 90)

	require.NoError(t, g.Pay(u(0), "bob", 90))
	assert.Empty(t, g.PendingPayments())
}

func TestPayToBank(t *testing.T) {
	g, _, n := newTestGame(t, "Alice", "Bob")
	alice := g.Players()[u(0)]
	owe(g, alice, nil, 200)

	require.NoError(t, g.Pay(u(0), "bank", 200))

	assert.Equal(t, 1300, alice.Money())
	assert.Empty(t, g.PendingPayments())
	assert.True(t, n.contains("You paid the bank $200!"))
}

func TestPayWrongTripleRejected(t *testing.T) {
	g, _, _ := newTestGame(t, "Alice", "Bob")
	alice, bob := g.Players()[u(0)], g.Players()[u(1)]
	owe(g, alice, bob, 90)

	requireKind(t, g.Pay(u(0), "1", 50), State)    // wrong amount
	requireKind(t, g.Pay(u(0), "bank", 90), State) // wrong payee
	requireKind(t, g.Pay(u(1), "0", 90), State)    // wrong payer
	require.Len(t, g.PendingPayments(), 1)
}

func TestPayNeedsLiquidation(t *testing.T) {
	g, _, n := newTestGame(t, "Alice", "Bob")
	alice, bob := g.Players()[u(0)], g.Players()[u(1)]
	giveDeed(t, g, alice, 39) // Boardwalk, mortgage value 200
	alice.SetMoney(50)
	owe(g, alice, bob, 100)

	requireKind(t, g.Pay(u(0), "1", 100), Insufficiency)

	// Nothing moved; the debt stands.
	assert.Equal(t, 50, alice.Money())
	require.Len(t, g.PendingPayments(), 1)
	assert.True(t, n.contains("need to sell some houses or mortgage properties"))
}

func TestPaySuggestsBankruptcy(t *testing.T) {
	g, _, n := newTestGame(t, "Alice", "Bob")
	alice, bob := g.Players()[u(0)], g.Players()[u(1)]
	alice.SetMoney(50)
	owe(g, alice, bob, 1000)

	requireKind(t, g.Pay(u(0), "1", 1000), Insufficiency)
	assert.True(t, n.contains("You do not have enough total assets to pay Bob!"))
	assert.True(t, n.contains("go bankrupt"))
}

func TestPayLeavesOtherDebts(t *testing.T) {
	g, _, _ := newTestGame(t, "Alice", "Bob", "Carol")
	alice, bob, carol := g.Players()[u(0)], g.Players()[u(1)], g.Players()[u(2)]
	owe(g, alice, bob, 90)
	owe(g, alice, carol, 40)

	require.NoError(t, g.Pay(u(0), "1", 90))

	require.Len(t, g.PendingPayments(), 1)
	assert.Equal(t, carol, g.PendingPayments()[0].Payee)
}
