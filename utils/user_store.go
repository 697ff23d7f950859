package utils

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/supanugit/Blog-Frontend/models"
)

// The "user" entry mirrors what the original browser client kept in local
// storage: the JSON-serialized login response, keyed by the session
// credential. Prefer Redis; fall back to process memory when unreachable.

const userProfileTTL = 7 * 24 * time.Hour

type userEntry struct {
	payload   []byte
	expiresAt time.Time
}

var (
	userStore   = map[string]userEntry{}
	userStoreMu sync.Mutex
)

func userKey(sessionID string) string {
	return "user:" + sessionID
}

// SaveUserProfile persists the login payload for the given session.
func SaveUserProfile(ctx context.Context, sessionID string, profile *models.UserProfile) error {
	if sessionID == "" || profile == nil {
		return nil
	}
	payload, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	if rc := GetRedis(); rc != nil {
		cctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := rc.Set(cctx, userKey(sessionID), payload, userProfileTTL).Err(); err == nil {
			return nil
		}
	}
	userStoreMu.Lock()
	userStore[sessionID] = userEntry{payload: payload, expiresAt: time.Now().Add(userProfileTTL)}
	userStoreMu.Unlock()
	return nil
}

// LoadUserProfile returns the persisted login payload for the session, or
// nil when none is stored.
func LoadUserProfile(ctx context.Context, sessionID string) *models.UserProfile {
	if sessionID == "" {
		return nil
	}
	if rc := GetRedis(); rc != nil {
		cctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if payload, err := rc.Get(cctx, userKey(sessionID)).Bytes(); err == nil {
			var profile models.UserProfile
			if json.Unmarshal(payload, &profile) == nil {
				return &profile
			}
		}
	}
	userStoreMu.Lock()
	defer userStoreMu.Unlock()
	entry, ok := userStore[sessionID]
	if !ok {
		return nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(userStore, sessionID)
		return nil
	}
	var profile models.UserProfile
	if json.Unmarshal(entry.payload, &profile) != nil {
		return nil
	}
	return &profile
}

// DropUserProfile removes the persisted payload, e.g. when the session ends.
func DropUserProfile(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	if rc := GetRedis(); rc != nil {
		cctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		_ = rc.Del(cctx, userKey(sessionID)).Err()
	}
	userStoreMu.Lock()
	delete(userStore, sessionID)
	userStoreMu.Unlock()
}
