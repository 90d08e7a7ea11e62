package game

// Notifier delivers the engine's ordered, human-readable notifications to
// whatever transport hosts the game. The engine performs no other I/O.
type Notifier interface {
	Send(text string)
}

// MultiNotifier fans a notification out to several transports in order.
type MultiNotifier []Notifier

func (m MultiNotifier) Send(text string) {
	for _, n := range m {
		n.Send(text)
	}
}
