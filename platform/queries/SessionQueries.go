package queries

import (
	"time"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/go-pg/pg/v10"
	uuid "github.com/satori/go.uuid"
)

// CreateSession records a newly started game for its chat.
func CreateSession(chatID int64, db *pg.DB) (*models.Session, error) {
	session := &models.Session{
		Id:      uuid.NewV4().String(),
		ChatId:  chatID,
		Status:  "in progress",
		Started: time.Now(),
	}
	_, err := db.Model(session).Insert()
	if err != nil {
		return nil, err
	}
	return session, nil
}

// SessionByChat finds the chat's session still in progress, nil when none.
func SessionByChat(chatID int64, db *pg.DB) (*models.Session, error) {
	session := new(models.Session)
	err := db.Model(session).Where("chat_id = ? AND status = ?", chatID, "in progress").Select()
	if err == pg.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// FinishSession closes the chat's running session, recording the winner.
// An empty winner means the game was abandoned.
func FinishSession(chatID int64, winner string, db *pg.DB) error {
	session := new(models.Session)
	_, err := db.Model(session).
		Where("chat_id = ? AND status = ?", chatID, "in progress").
		Set("status = ?", "finished").
		Set("winner = ?", winner).
		Update()
	return err
}

// ActiveSessions lists every game currently in progress.
func ActiveSessions(db *pg.DB) ([]models.Session, error) {
	var sessions []models.Session
	err := db.Model(&sessions).Where("status = ?", "in progress").Select()
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
