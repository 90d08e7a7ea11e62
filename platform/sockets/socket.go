package socket

import (
	"fmt"
	"net/http"
	"os"

	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

// CreateSocketIOServer builds the spectator server. Clients join a room named
// after the chat id and receive every game message mirrored into that room.
func CreateSocketIOServer() (*socketio.Server, error) {
	server, err := socketio.NewServer(nil)
	if err != nil {
		return nil, err
	}

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		return nil
	})

	server.OnEvent("/", "watch-game", func(s socketio.Conn, chatID string) {
		s.Join(chatID)
		watchers := server.RoomLen("/", chatID)
		s.Emit("watching", chatID)
		server.BroadcastToRoom("/", chatID, "watcher-count", watchers)
		log.WithFields(log.Fields{"conn": s.ID(), "room": chatID}).Info("spectator joined")
	})

	server.OnEvent("/", "unwatch-game", func(s socketio.Conn, chatID string) {
		s.Leave(chatID)
		server.BroadcastToRoom("/", chatID, "watcher-count", server.RoomLen("/", chatID))
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		log.WithError(e).Warn("socket error")
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		s.LeaveAll()
	})

	return server, nil
}

// RoomNotifier mirrors engine messages into the chat's spectator room. It is
// meant to be combined with the primary chat notifier via a MultiNotifier.
type RoomNotifier struct {
	Server *socketio.Server
	ChatID int64
}

func (n RoomNotifier) Send(text string) {
	n.Server.BroadcastToRoom("/", fmt.Sprintf("%d", n.ChatID), "game-message", text)
}

// Serve runs the socket server behind a CORS handler until the listener
// fails. Call it on its own goroutine.
func Serve(server *socketio.Server) error {
	go server.Serve()
	defer server.Close()

	addr := os.Getenv("SOCKET_ADDR")
	if addr == "" {
		addr = ":8000"
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{os.Getenv("SOCKET_ORIGIN")},
		AllowCredentials: true,
	})

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", server)
	log.WithField("addr", addr).Info("socket server listening")
	return http.ListenAndServe(addr, c.Handler(mux))
}
