package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	tokenBytes    = 8
	createRetries = 5

	// Postgres unique_violation
	pgUniqueViolation = "23505"
)

// ErrTokenExhausted means repeated collisions while minting a room id,
// which in practice only happens if the random source is broken.
var ErrTokenExhausted = errors.New("could not generate a unique room id")

// NewRoomToken returns a fresh random room token (hex of 8 random bytes).
func NewRoomToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// CreateRoom mints and persists a new room id. Rows older than ttl are
// swept first so dead tokens never pile up; a token colliding with a live
// row is discarded and minted again.
func (p *Postgres) CreateRoom(ctx context.Context, ttl time.Duration) (string, error) {
	if _, err := p.pool.Exec(ctx, `
		DELETE FROM rooms WHERE created_at < NOW() - make_interval(secs => $1)
	`, ttl.Seconds()); err != nil {
		return "", fmt.Errorf("expire rooms: %w", err)
	}

	for i := 0; i < createRetries; i++ {
		token, err := NewRoomToken()
		if err != nil {
			return "", err
		}

		_, err = p.pool.Exec(ctx, `INSERT INTO rooms (room_id) VALUES ($1)`, token)
		if err == nil {
			p.log.Info("room.created", "room", token)
			return token, nil
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			continue // collision, mint another
		}
		return "", fmt.Errorf("insert room: %w", err)
	}
	return "", ErrTokenExhausted
}

// RoomExists reports whether id was minted and has not been swept.
func (p *Postgres) RoomExists(ctx context.Context, id string) (bool, error) {
	var one int
	err := p.pool.QueryRow(ctx, `SELECT 1 FROM rooms WHERE room_id = $1`, id).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("room exists: %w", err)
	}
	return true, nil
}
