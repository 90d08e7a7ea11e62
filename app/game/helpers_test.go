package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/board"
	"github.com/DedS3t/monopoly-engine/platform/dice"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays a fixed sequence. A die face f is scripted as f-1
// because rolls are Intn(sides)+1.
type scriptedSource struct {
	vals []int
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[0]
	s.vals = s.vals[1:]
	return v % n
}

func (s *scriptedSource) push(vals ...int) {
	s.vals = append(s.vals, vals...)
}

type recordingNotifier struct {
	msgs []string
}

func (n *recordingNotifier) Send(text string) {
	n.msgs = append(n.msgs, text)
}

func (n *recordingNotifier) contains(sub string) bool {
	for _, m := range n.msgs {
		if strings.Contains(m, sub) {
			return true
		}
	}
	return false
}

func (n *recordingNotifier) reset() {
	n.msgs = nil
}

// u maps seat index to the chat identity used in tests.
func u(i int) int64 {
	return int64(100 + i)
}

func newTestGame(t *testing.T, names ...string) (*Game, *scriptedSource, *recordingNotifier) {
	t.Helper()
	src := &scriptedSource{}
	n := &recordingNotifier{}
	seeds := make([]PlayerSeed, len(names))
	for i, name := range names {
		seeds[i] = PlayerSeed{UserID: u(i), Name: name}
	}
	g := New(42, seeds, dice.New(2, 6, src), src, n)
	n.reset()
	return g, src, n
}

// giveDeed hands the deed at pos to p, bypassing purchase.
func giveDeed(t *testing.T, g *Game, p *models.Player, pos int) models.Deed {
	t.Helper()
	d := board.DeedAt(g.board, pos)
	require.NotNil(t, d)
	g.removeFromAvailable(d)
	d.SetOwner(p)
	p.AddDeed(d)
	p.SortDeeds()
	return d
}

func propAt(t *testing.T, g *Game, pos int) *models.Property {
	t.Helper()
	prop, ok := board.DeedAt(g.board, pos).(*models.Property)
	require.True(t, ok)
	return prop
}

// deedIndex finds where the deed sits in p's sorted holdings.
func deedIndex(t *testing.T, p *models.Player, d models.Deed) int {
	t.Helper()
	for i, held := range p.Deeds() {
		if held == d {
			return i
		}
	}
	t.Fatalf("player %s does not hold %s", p.Name(), d.Name())
	return -1
}

func requireKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	require.Error(t, err)
	var ruleErr *RuleError
	require.True(t, errors.As(err, &ruleErr), "expected a rule error, got %v", err)
	require.Equal(t, kind, ruleErr.Kind, "unexpected error kind for %q", ruleErr.Message)
}
