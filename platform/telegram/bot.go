// Package telegram drives games over chat. Each chat holds at most one lobby
// or one running game; the engine does the rules, this package only parses
// commands and relays messages.
package telegram

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DedS3t/monopoly-engine/app/game"
	"github.com/DedS3t/monopoly-engine/platform/board"
	"github.com/DedS3t/monopoly-engine/platform/cache"
	"github.com/DedS3t/monopoly-engine/platform/dice"
	"github.com/DedS3t/monopoly-engine/platform/queries"
	socket "github.com/DedS3t/monopoly-engine/platform/sockets"
	"github.com/go-pg/pg/v10"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gomodule/redigo/redis"
	socketio "github.com/googollee/go-socket.io"
	log "github.com/sirupsen/logrus"
)

const minPlayers = 2

// aliases maps every accepted spelling to its canonical command, including
// the traditional typo covers for fast fingers.
var aliases = map[string]string{
	"start": "start", "rules": "rules", "help": "help",
	"feedback": "feedback",
	"newgame":  "newgame",
	"join":     "join",
	"leave":    "leave", "unjoin": "leave",
	"listplayers": "listplayers", "list": "listplayers",
	"startgame": "startgame",
	"endgame":   "endgame",
	"roll":      "roll", "r": "roll", "rol": "roll", "oll": "roll",
	"bankrupt":      "bankrupt",
	"purchasehouse": "buyhouse", "buyhouse": "buyhouse", "bh": "buyhouse", "ph": "buyhouse",
	"purchasehotel": "buyhotel", "buyhotel": "buyhotel", "bhh": "buyhotel", "phh": "buyhotel",
	"purchaseproperty": "buyproperty", "buyproperty": "buyproperty", "buyprop": "buyproperty",
	"purchaseprop": "buyproperty", "bp": "buyproperty",
	"end": "endturn", "endturn": "endturn", "endme": "endturn", "ednme": "endturn", "edna": "endturn",
	"pay": "pay", "p": "pay",
	"out": "freeme", "freeme": "freeme", "usecard": "freeme", "goofg": "freeme",
	"bail": "bail", "paybail": "bail",
	"showmethemoney": "money", "money": "money", "funds": "money",
	"mortgage": "mortgage", "m": "mortgage",
	"unmortgage": "unmortgage", "um": "unmortgage",
	"canceltrade": "canceltrade", "ct": "canceltrade",
	"addtrade": "addtrade", "at": "addtrade",
	"removetrade": "removetrade", "rt": "removetrade",
	"agree": "agree", "yes": "agree",
	"disagree": "disagree", "no": "disagree",
	"trade":      "trade",
	"setuptrade": "setuptrade", "st": "setuptrade",
	"showtrade":  "showtrade", "viewtrade": "showtrade",
	"assets": "assets", "mystuff": "assets",
	"blame": "blame", "blam": "blame",
	"sellhouse": "sellhouse", "sh": "sellhouse",
	"sellhotel": "sellhotel", "shh": "sellhotel",
	"allassets": "allassets", "aa": "allassets",
	"board": "board", "gameboard": "board", "monopolyboard": "board",
	"whatdoesitlooklikeagain": "board",
}

// lobby is the pre-game roster for one chat, in join order.
type lobby struct {
	seeds []game.PlayerSeed
}

func (l *lobby) has(userID int64) bool {
	for _, s := range l.seeds {
		if s.UserID == userID {
			return true
		}
	}
	return false
}

func (l *lobby) remove(userID int64) {
	for i, s := range l.seeds {
		if s.UserID == userID {
			l.seeds = append(l.seeds[:i], l.seeds[i+1:]...)
			return
		}
	}
}

// ChatNotifier delivers engine messages to the chat.
type ChatNotifier struct {
	API    *tgbotapi.BotAPI
	ChatID int64
}

func (n ChatNotifier) Send(text string) {
	if _, err := n.API.Send(tgbotapi.NewMessage(n.ChatID, text)); err != nil {
		log.WithError(err).WithField("chat", n.ChatID).Warn("send failed")
	}
}

// Bot routes chat commands to per-chat lobbies and games. All updates are
// handled on the single polling goroutine, so the maps need no locking.
type Bot struct {
	api     *tgbotapi.BotAPI
	pool    *redis.Pool
	db      *pg.DB
	sockets *socketio.Server
	lobbies map[int64]*lobby
	games   map[int64]*game.Game
}

func NewBot(api *tgbotapi.BotAPI, pool *redis.Pool, db *pg.DB, sockets *socketio.Server) *Bot {
	return &Bot{
		api:     api,
		pool:    pool,
		db:      db,
		sockets: sockets,
		lobbies: make(map[int64]*lobby),
		games:   make(map[int64]*game.Game),
	}
}

// Run polls for updates until the channel closes.
func (b *Bot) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil || !update.Message.IsCommand() {
			continue
		}
		b.handleCommand(update.Message)
	}
}

func (b *Bot) send(chatID int64, text string) {
	ChatNotifier{API: b.api, ChatID: chatID}.Send(text)
}

func (b *Bot) sendStatic(chatID int64, key string) {
	text, ok := StaticResponses[key]
	if !ok {
		log.WithField("key", key).Warn("no static response")
		text = StaticResponses["unexpected_error"]
	}
	b.send(chatID, text)
}

// notifier fans engine messages out to the chat and its spectator room.
func (b *Bot) notifier(chatID int64) game.Notifier {
	n := game.MultiNotifier{ChatNotifier{API: b.api, ChatID: chatID}}
	if b.sockets != nil {
		n = append(n, socket.RoomNotifier{Server: b.sockets, ChatID: chatID})
	}
	return n
}

// gameFor returns the chat's running game, restoring it from redis if this
// process hasn't seen it yet. Nil means no game.
func (b *Bot) gameFor(chatID int64) *game.Game {
	if g, ok := b.games[chatID]; ok {
		return g
	}
	conn := b.pool.Get()
	defer conn.Close()

	snap, err := cache.LoadGame(chatID, &conn)
	if err != nil || snap == nil {
		if err != nil {
			log.WithError(err).WithField("chat", chatID).Error("snapshot load failed")
		}
		return nil
	}
	src := dice.NewSource()
	g, err := game.Restore(snap, dice.New(2, 6, src), src, b.notifier(chatID))
	if err != nil {
		log.WithError(err).WithField("chat", chatID).Error("snapshot restore failed")
		return nil
	}
	b.games[chatID] = g
	return g
}

// persist saves the game after a successful command, or retires it once won.
func (b *Bot) persist(g *game.Game) {
	conn := b.pool.Get()
	defer conn.Close()

	if g.Over() {
		winner := ""
		if g.Winner() != nil {
			winner = g.Winner().Name()
		}
		if err := queries.FinishSession(g.ChatID(), winner, b.db); err != nil {
			log.WithError(err).Error("session finish failed")
		}
		if err := cache.DeleteGame(g.ChatID(), &conn); err != nil {
			log.WithError(err).Error("snapshot delete failed")
		}
		delete(b.games, g.ChatID())
		return
	}
	if err := cache.SaveGame(g.Snapshot(), &conn); err != nil {
		log.WithError(err).WithField("chat", g.ChatID()).Error("snapshot save failed")
	}
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	command, ok := aliases[msg.Command()]
	if !ok {
		return
	}
	chatID := msg.Chat.ID
	userID := msg.From.ID
	args := strings.Fields(msg.CommandArguments())

	log.WithFields(log.Fields{"user": userID, "chat": chatID, "command": command}).Info("command")

	switch command {
	case "start", "rules", "help":
		b.sendStatic(chatID, command)
	case "feedback":
		b.feedback(chatID, msg, args)
	case "newgame":
		b.newGame(chatID)
	case "join":
		b.join(chatID, msg, args)
	case "leave":
		b.leave(chatID, userID)
	case "listplayers":
		b.listPlayers(chatID)
	case "startgame":
		b.startGame(chatID, userID)
	case "endgame":
		b.endGame(chatID, userID)
	case "board":
		b.board(chatID)
	default:
		b.gameCommand(chatID, userID, command, args)
	}
}

func (b *Bot) feedback(chatID int64, msg *tgbotapi.Message, args []string) {
	if len(args) == 0 {
		b.send(chatID, "Format: /feedback [feedback]")
		return
	}
	if err := queries.SaveFeedback(msg.From.ID, msg.From.FirstName, strings.Join(args, " "), b.db); err != nil {
		log.WithError(err).Error("feedback save failed")
		b.sendStatic(chatID, "unexpected_error")
		return
	}
	b.send(chatID, "Thanks for the feedback!")
}

func (b *Bot) newGame(chatID int64) {
	if b.gameFor(chatID) != nil {
		b.sendStatic(chatID, "game_ongoing")
		return
	}
	if _, pending := b.lobbies[chatID]; pending {
		b.sendStatic(chatID, "game_pending")
		return
	}
	b.lobbies[chatID] = &lobby{}
	b.sendStatic(chatID, "new_game")
}

func (b *Bot) join(chatID int64, msg *tgbotapi.Message, args []string) {
	l, pending := b.lobbies[chatID]
	if !pending {
		b.sendStatic(chatID, "join_game_not_pending")
		return
	}
	nickname := msg.From.FirstName
	if len(args) > 0 {
		nickname = strings.Join(args, " ")
	}
	if len(nickname) < 1 || len(nickname) > 15 {
		b.sendStatic(chatID, "invalid_nickname")
		return
	}
	if l.has(msg.From.ID) {
		l.remove(msg.From.ID)
	}
	l.seeds = append(l.seeds, game.PlayerSeed{UserID: msg.From.ID, Name: nickname})
	b.send(chatID, fmt.Sprintf("Joined with nickname %s!", nickname))
	b.send(chatID, fmt.Sprintf("Current player count: %d", len(l.seeds)))
}

func (b *Bot) leave(chatID, userID int64) {
	l, pending := b.lobbies[chatID]
	if !pending {
		b.sendStatic(chatID, "leave_game_not_pending_failure")
		return
	}
	if !l.has(userID) {
		b.sendStatic(chatID, "leave_id_missing_failure")
		return
	}
	l.remove(userID)
	b.sendStatic(chatID, "leave_game")
}

func (b *Bot) listPlayers(chatID int64) {
	if l, pending := b.lobbies[chatID]; pending {
		text := "List of players: \n"
		for _, s := range l.seeds {
			text += s.Name + "\n"
		}
		b.send(chatID, text)
		return
	}
	if g := b.gameFor(chatID); g != nil {
		text := "List of players: \n"
		for _, p := range g.Players() {
			text += fmt.Sprintf("(%d) %s\n", p.ID(), p.Name())
		}
		b.send(chatID, text)
		return
	}
	b.sendStatic(chatID, "listplayers_failure")
}

func (b *Bot) startGame(chatID, userID int64) {
	l, pending := b.lobbies[chatID]
	if !pending {
		b.sendStatic(chatID, "start_game_not_pending")
		return
	}
	if !l.has(userID) {
		b.sendStatic(chatID, "start_game_id_missing_failure")
		return
	}
	if len(l.seeds) < minPlayers {
		b.sendStatic(chatID, "start_game_min_threshold")
		return
	}

	existing, err := queries.SessionByChat(chatID, b.db)
	if err != nil {
		log.WithError(err).Error("session lookup failed")
	}
	if existing == nil {
		if _, err := queries.CreateSession(chatID, b.db); err != nil {
			log.WithError(err).Error("session create failed")
		}
	}

	src := dice.NewSource()
	g := game.New(chatID, l.seeds, dice.New(2, 6, src), src, b.notifier(chatID))
	delete(b.lobbies, chatID)
	b.games[chatID] = g
	b.persist(g)

	// Everyone gets their opening position privately.
	for _, s := range l.seeds {
		if p := g.Players()[s.UserID]; p != nil {
			b.send(s.UserID, game.AssetsText(p))
		}
	}
}

func (b *Bot) endGame(chatID, userID int64) {
	if _, pending := b.lobbies[chatID]; pending {
		delete(b.lobbies, chatID)
		b.sendStatic(chatID, "end_game")
		return
	}
	g := b.gameFor(chatID)
	if g == nil {
		b.sendStatic(chatID, "game_dne_failure")
		return
	}
	if g.Players()[userID] == nil {
		b.sendStatic(chatID, "end_game_id_missing_failure")
		return
	}

	conn := b.pool.Get()
	defer conn.Close()
	if err := queries.FinishSession(chatID, "", b.db); err != nil {
		log.WithError(err).Error("session finish failed")
	}
	if err := cache.DeleteGame(chatID, &conn); err != nil {
		log.WithError(err).Error("snapshot delete failed")
	}
	delete(b.games, chatID)
	b.sendStatic(chatID, "end_game")
}

func (b *Bot) board(chatID int64) {
	var sb strings.Builder
	for i, space := range board.New() {
		fmt.Fprintf(&sb, "(%d) %s\n", i, space.DisplayName())
	}
	b.send(chatID, sb.String())
}

// gameCommand handles everything that needs a running game. Engine
// rejections already notify the chat, so errors are only logged.
func (b *Bot) gameCommand(chatID, userID int64, command string, args []string) {
	g := b.gameFor(chatID)
	if g == nil {
		b.sendStatic(chatID, "game_dne_failure")
		return
	}

	var err error
	switch command {
	case "roll":
		err = g.RollDice(userID)
	case "bankrupt":
		if len(args) != 1 {
			b.send(chatID, "Usage: /bankrupt player_id")
			return
		}
		err = g.Bankrupt(userID, args[0])
	case "buyproperty":
		err = g.PurchaseProperty(userID)
	case "buyhouse", "buyhotel", "sellhouse", "sellhotel", "mortgage", "unmortgage":
		var idx int
		idx, err = propArg(args)
		if err != nil {
			b.send(chatID, "Usage: /"+command+" property_id")
			return
		}
		switch command {
		case "buyhouse":
			err = g.PurchaseHouse(userID, idx)
		case "buyhotel":
			err = g.PurchaseHotel(userID, idx)
		case "sellhouse":
			err = g.SellHouse(userID, idx)
		case "sellhotel":
			err = g.SellHotel(userID, idx)
		case "mortgage":
			err = g.Mortgage(userID, idx)
		case "unmortgage":
			err = g.Unmortgage(userID, idx)
		}
	case "endturn":
		if err = g.EndTurn(userID); err == nil {
			b.blame(chatID, g)
		}
	case "pay":
		if len(args) != 2 {
			b.send(chatID, "Usage: /pay to_person_id amount")
			return
		}
		amount, convErr := strconv.Atoi(args[1])
		if convErr != nil {
			b.send(chatID, "Usage: /pay to_person_id amount")
			return
		}
		err = g.Pay(userID, args[0], amount)
	case "freeme":
		err = g.UseJailCard(userID)
	case "bail":
		err = g.PayBail(userID)
	case "money":
		p := g.Players()[userID]
		if p == nil {
			b.sendStatic(chatID, "leave_id_missing_failure")
			return
		}
		b.send(chatID, game.MoneyText(p))
		return
	case "setuptrade":
		if len(args) != 1 {
			b.send(chatID, "Usage: /setuptrade player_id")
			return
		}
		other, convErr := strconv.Atoi(args[0])
		if convErr != nil {
			b.send(chatID, "Usage: /setuptrade player_id")
			return
		}
		err = g.SetupTrade(userID, other)
	case "addtrade", "removetrade":
		idx, money, cards, convErr := tradeArgs(args)
		if convErr != nil {
			b.send(chatID, "Usage: /"+command+" {property_id or -1} money num_get_out_free_cards")
			return
		}
		if command == "addtrade" {
			err = g.AddToTrade(userID, idx, money, cards)
		} else {
			err = g.RemoveFromTrade(userID, idx, money, cards)
		}
	case "agree":
		err = g.AgreeTrade(userID)
	case "disagree":
		err = g.DisagreeTrade(userID)
	case "trade":
		err = g.CommitTrade(userID)
	case "canceltrade":
		err = g.CancelTrade(userID)
	case "showtrade":
		if text, terr := g.TradeText(); terr == nil {
			b.send(chatID, text)
		}
		return
	case "assets":
		p := g.Players()[userID]
		if p == nil {
			b.sendStatic(chatID, "leave_id_missing_failure")
			return
		}
		b.send(userID, game.AssetsText(p))
		return
	case "allassets":
		for _, p := range g.Players() {
			b.send(chatID, game.AssetsText(p))
		}
		return
	case "blame":
		b.blame(chatID, g)
		return
	default:
		return
	}

	if err != nil {
		log.WithFields(log.Fields{"user": userID, "command": command}).WithError(err).Debug("rejected")
		return
	}
	b.persist(g)
}

// blame mentions whoever the table is waiting on.
func (b *Bot) blame(chatID int64, g *game.Game) {
	p := g.Blame()
	if p == nil {
		return
	}
	mention := tgbotapi.NewMessage(chatID, fmt.Sprintf("[%s](tg://user?id=%d)", p.Name(), p.UserID()))
	mention.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(mention); err != nil {
		log.WithError(err).Warn("mention failed")
	}
}

func propArg(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected one argument")
	}
	return strconv.Atoi(args[0])
}

func tradeArgs(args []string) (idx, money, cards int, err error) {
	if len(args) != 3 {
		return 0, 0, 0, fmt.Errorf("expected three arguments")
	}
	if idx, err = strconv.Atoi(args[0]); err != nil {
		return
	}
	if money, err = strconv.Atoi(args[1]); err != nil {
		return
	}
	cards, err = strconv.Atoi(args[2])
	return
}
