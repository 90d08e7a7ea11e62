package cache

import (
	"encoding/json"
	"fmt"

	"github.com/DedS3t/monopoly-engine/app/game"
	"github.com/gomodule/redigo/redis"
)

func gameKey(chatID int64) string {
	return fmt.Sprintf("game.%d", chatID)
}

// SaveGame persists a snapshot as JSON under the chat's key.
func SaveGame(snap *game.Snapshot, conn *redis.Conn) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return Set(gameKey(snap.ChatID), data, conn)
}

// LoadGame fetches the chat's snapshot; a missing key returns (nil, nil).
func LoadGame(chatID int64, conn *redis.Conn) (*game.Snapshot, error) {
	data, err := Get(gameKey(chatID), conn)
	if err == redis.ErrNil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	snap := new(game.Snapshot)
	if err := json.Unmarshal([]byte(data), snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// DeleteGame removes the chat's snapshot.
func DeleteGame(chatID int64, conn *redis.Conn) error {
	return Del(gameKey(chatID), conn)
}
