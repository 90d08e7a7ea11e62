package models

// PendingPayment is an unsettled debt blocking turn completion. A nil Payee
// means the bank. Payments are settled whole or not at all.
type PendingPayment struct {
	Payer  *Player
	Payee  *Player
	Amount int
}
