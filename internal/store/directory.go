package store

import (
	"context"
	"time"

	"log/slog"
)

// Directory issues and validates room ids for the HTTP API. Postgres is
// authoritative; the cache, when configured, keeps repeat checks off the
// database. The relay itself never consults the directory — possession of
// a token is the only credential at signaling time.
type Directory struct {
	db    *Postgres
	cache *RoomCache // optional
	ttl   time.Duration
	log   *slog.Logger
}

// NewDirectory builds a directory over the store and an optional cache.
func NewDirectory(db *Postgres, cache *RoomCache, ttl time.Duration, log *slog.Logger) *Directory {
	return &Directory{db: db, cache: cache, ttl: ttl, log: log}
}

// Create mints a fresh unique room id.
func (d *Directory) Create(ctx context.Context) (string, error) {
	id, err := d.db.CreateRoom(ctx, d.ttl)
	if err != nil {
		return "", err
	}
	d.cacheAdd(ctx, id)
	return id, nil
}

// Exists reports whether id names a live room token.
func (d *Directory) Exists(ctx context.Context, id string) (bool, error) {
	if d.cache != nil {
		ok, err := d.cache.Has(ctx, id)
		if err != nil {
			d.log.Warn("directory.cache_check", "err", err)
		} else if ok {
			return true, nil
		}
	}

	ok, err := d.db.RoomExists(ctx, id)
	if err != nil || !ok {
		return ok, err
	}
	d.cacheAdd(ctx, id)
	return true, nil
}

// cacheAdd is best-effort; a cache failure never fails the request.
func (d *Directory) cacheAdd(ctx context.Context, id string) {
	if d.cache == nil {
		return
	}
	if err := d.cache.Add(ctx, id); err != nil {
		d.log.Warn("directory.cache_add", "err", err)
	}
}
