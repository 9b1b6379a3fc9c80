package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/shieldsms/smishing-filter/internal/core"
)

// MySQLCache is a MySQL implementation of the CacheRepository interface
type MySQLCache struct {
	db          *sql.DB
	logger      *zap.Logger
	cleanupFreq time.Duration
	stopCh      chan struct{}
}

// NewMySQLCache creates a new MySQL cache
func NewMySQLCache(dsn string, logger *zap.Logger, cleanupFreq time.Duration) (*MySQLCache, error) {
	db, err := sql.Open("mysql", dsn+"?parseTime=true")
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping MySQL: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS classification_cache (
			text_hash CHAR(64) PRIMARY KEY,
			text TEXT,
			label VARCHAR(16),
			score DOUBLE,
			reasons TEXT,
			model_used VARCHAR(64),
			last_seen TIMESTAMP,
			expires_at TIMESTAMP,
			INDEX idx_expires_at (expires_at)
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	cache := &MySQLCache{
		db:          db,
		logger:      logger,
		cleanupFreq: cleanupFreq,
		stopCh:      make(chan struct{}),
	}

	go cache.startCleanupTask()

	return cache, nil
}

// Get retrieves a cached entry for a message text
func (c *MySQLCache) Get(ctx context.Context, text string) (*core.CacheEntry, error) {
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
func (c *MySQLCache) Set(ctx context.Context, entry *core.CacheEntry) error {
	reasonsJSON, err := json.Marshal(entry.Reasons)
	if err != nil {
		return fmt.Errorf("failed to encode reasons: %w", err)
	}

	_, err = c.db.ExecContext(ctx, `
		REPLACE INTO classification_cache
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
func (c *MySQLCache) Delete(ctx context.Context, text string) error {
	_, err := c.db.ExecContext(ctx, `
		DELETE FROM classification_cache WHERE text_hash = ?
	`, textKey(text))
	if err != nil {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return nil
}

// Cleanup removes expired entries
func (c *MySQLCache) Cleanup(ctx context.Context) error {
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
func (c *MySQLCache) startCleanupTask() {
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
func (c *MySQLCache) Stop() {
	close(c.stopCh)
	if err := c.db.Close(); err != nil {
		c.logger.Error("Failed to close MySQL connection", zap.Error(err))
	}
}
