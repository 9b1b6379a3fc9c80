package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/shieldsms/smishing-filter/internal/core"
)

// SQLiteCache is a SQLite implementation of the CacheRepository interface.
// Entries are keyed by a digest of the message text so arbitrarily long
// messages index cleanly.
type SQLiteCache struct {
	db          *sql.DB
	logger      *zap.Logger
	cleanupFreq time.Duration
	stopCh      chan struct{}
}

// NewSQLiteCache creates a new SQLite cache
func NewSQLiteCache(dbPath string, logger *zap.Logger, cleanupFreq time.Duration) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS classification_cache (
			text_hash TEXT PRIMARY KEY,
			text TEXT,
			label TEXT,
			score REAL,
			reasons TEXT,
			model_used TEXT,
			last_seen TIMESTAMP,
			expires_at TIMESTAMP
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	_, err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_expires_at ON classification_cache(expires_at)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	cache := &SQLiteCache{
		db:          db,
		logger:      logger,
		cleanupFreq: cleanupFreq,
		stopCh:      make(chan struct{}),
	}

	go cache.startCleanupTask()

	return cache, nil
}

func textKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Get retrieves a cached entry for a message text
func (c *SQLiteCache) Get(ctx context.Context, text string) (*core.CacheEntry, error) {
	var label, reasonsJSON, modelUsed string
	var score float64
	var lastSeen, expiresAt time.Time

	err := c.db.QueryRowContext(ctx, `
		SELECT label, score, reasons, model_used, last_seen, expires_at
		FROM classification_cache
		WHERE text_hash = ?
	`, textKey(text)).Scan(&label, &score, &reasonsJSON, &modelUsed, &lastSeen, &expiresAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query cache: %w", err)
	}

	if time.Now().After(expiresAt) {
		return nil, ErrExpired
	}

	var reasons []string
	if err := json.Unmarshal([]byte(reasonsJSON), &reasons); err != nil {
		reasons = []string{}
	}

	return &core.CacheEntry{
		Text:      text,
		Label:     label,
		Score:     score,
		Reasons:   reasons,
		ModelUsed: modelUsed,
		LastSeen:  lastSeen,
		ExpiresAt: expiresAt,
	}, nil
}

// Set stores a cache entry
func (c *SQLiteCache) Set(ctx context.Context, entry *core.CacheEntry) error {
	reasonsJSON, err := json.Marshal(entry.Reasons)
	if err != nil {
		return fmt.Errorf("failed to encode reasons: %w", err)
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO classification_cache
			(text_hash, text, label, score, reasons, model_used, last_seen, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, textKey(entry.Text), entry.Text, entry.Label, entry.Score,
		string(reasonsJSON), entry.ModelUsed, entry.LastSeen, entry.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to store cache entry: %w", err)
	}
	return nil
}

// Delete removes a cache entry
func (c *SQLiteCache) Delete(ctx context.Context, text string) error {
	_, err := c.db.ExecContext(ctx, `
		DELETE FROM classification_cache WHERE text_hash = ?
	`, textKey(text))
	if err != nil {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return nil
}

// Cleanup removes expired entries
func (c *SQLiteCache) Cleanup(ctx context.Context) error {
	result, err := c.db.ExecContext(ctx, `
		DELETE FROM classification_cache WHERE expires_at < ?
	`, time.Now())
	if err != nil {
		return fmt.Errorf("failed to clean up cache: %w", err)
	}

	if affected, err := result.RowsAffected(); err == nil {
		c.logger.Debug("Cleaned up expired cache entries", zap.Int64("expired_count", affected))
	}
	return nil
}

// startCleanupTask starts a background task to clean up expired entries
func (c *SQLiteCache) startCleanupTask() {
	ticker := time.NewTicker(c.cleanupFreq)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := c.Cleanup(context.Background()); err != nil {
				c.logger.Error("Failed to clean up cache", zap.Error(err))
			}
		case <-c.stopCh:
			return
		}
	}
}

// Stop stops the background cleanup task and closes the database
func (c *SQLiteCache) Stop() {
	close(c.stopCh)
	if err := c.db.Close(); err != nil {
		c.logger.Error("Failed to close SQLite database", zap.Error(err))
	}
}
