package infra_redis_preferences

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis"
	json "github.com/goccy/go-json"
	"github.com/humanbelnik/moviepick/internal/model"
)

type Driver struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// New stores every record under "<prefix>:<session>:<key>".
// A zero ttl keeps records until they are deleted.
func New(
	client *redis.Client,
	prefix string,
	ttl time.Duration,
) *Driver {
	return &Driver{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (d *Driver) Get(ctx context.Context, session model.SessionID, key string) (model.Preferences, bool, error) {
	raw, err := d.client.WithContext(ctx).Get(d.getFullKey(session, key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return model.Preferences{}, false, nil
		}
		return model.Preferences{}, false, err
	}

	var p model.Preferences
	if err := json.Unmarshal(raw, &p); err != nil {
		return model.Preferences{}, false, fmt.Errorf("failed to decode preferences: %w", err)
	}

	return p, true, nil
}

func (d *Driver) Put(ctx context.Context, session model.SessionID, key string, p model.Preferences) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	if err := d.client.WithContext(ctx).Set(d.getFullKey(session, key), raw, d.ttl).Err(); err != nil {
		return err
	}

	return nil
}

func (d *Driver) getFullKey(session model.SessionID, key string) string {
	if d.prefix != "" {
		return d.prefix + ":" + string(session) + ":" + key
	}
	return string(session) + ":" + key
}
