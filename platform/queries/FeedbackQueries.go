package queries

import (
	"time"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/go-pg/pg/v10"
)

// SaveFeedback stores a /feedback submission with the sender's identity so
// they can be contacted if the suggestion ships.
func SaveFeedback(userID int64, name, text string, db *pg.DB) error {
	feedback := &models.Feedback{
		UserId:  userID,
		Name:    name,
		Text:    text,
		Created: time.Now(),
	}
	_, err := db.Model(feedback).Insert()
	return err
}
