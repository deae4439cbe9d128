// Package storage keeps the history of finished rounds in SQLite, through
// the pure-Go modernc.org/sqlite driver.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/quiz-breakout/internal/breakout"
	"github.com/vovakirdan/quiz-breakout/internal/config"
)

// LocalPlayer names the player of the local terminal and desktop frontends.
const LocalPlayer = "local"

// Store manages the SQLite database connection for round history.
type Store struct {
	db *sql.DB
}

// RoundRecord is one finished round.
type RoundRecord struct {
	ID         int64
	Player     string
	Catalog    string
	TopicID    string
	Answer     string
	Outcome    string // "cleared", "missed" or "lost"
	Chosen     string // Empty when the game ended without a quiz
	Correct    bool
	BlocksLeft int
	Ticks      int
	CreatedAt  time.Time
}

// TopicStat aggregates the quiz answers given for one topic.
type TopicStat struct {
	Catalog    string
	TopicID    string
	Answer     string
	Attempts   int
	Correct    int
	LastPlayed time.Time
}

// Accuracy returns the share of correct answers in [0, 1].
func (s TopicStat) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts)
}

// Totals summarizes all recorded rounds of a catalog.
type Totals struct {
	Rounds    int
	Answered  int
	Correct   int
	GameOvers int
}

// migrations are applied in order; PRAGMA user_version records how many
// have run. Append new steps, never edit old ones.
var migrations = []string{
	`CREATE TABLE rounds (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player TEXT NOT NULL,
		catalog TEXT NOT NULL,
		topic_id TEXT NOT NULL,
		answer TEXT NOT NULL,
		outcome TEXT NOT NULL,
		chosen TEXT NOT NULL DEFAULT '',
		correct INTEGER NOT NULL DEFAULT 0,
		blocks_left INTEGER NOT NULL DEFAULT 0,
		ticks INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX idx_rounds_topic ON rounds(catalog, topic_id)`,
}

// Open opens the history database at dbPath, creating it and its parent
// directory when missing. A leading ~ is expanded.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", dbPath, err)
	}
	// One connection keeps SQLite writes serialized across SSH sessions.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migrate %s: %w", dbPath, err)
	}
	return store, nil
}

// migrate runs the migrations the database has not seen yet.
func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return err
	}
	for i := version; i < len(migrations); i++ {
		tx, err := s.db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(migrations[i]); err != nil {
			tx.Rollback()
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		// PRAGMA does not take bind parameters.
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", i+1)); err != nil {
			tx.Rollback()
			return err
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}
	return nil
}

// SchemaVersion returns the number of migrations applied.
func (s *Store) SchemaVersion() (int, error) {
	var v int
	err := s.db.QueryRow("PRAGMA user_version").Scan(&v)
	return v, err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished round and returns its ID.
func (s *Store) SaveRound(r RoundRecord) (int64, error) {
	if r.Player == "" {
		r.Player = LocalPlayer
	}
	result, err := s.db.Exec(
		`INSERT INTO rounds
		 (player, catalog, topic_id, answer, outcome, chosen, correct, blocks_left, ticks)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Player, r.Catalog, r.TopicID, r.Answer, r.Outcome, r.Chosen, r.Correct, r.BlocksLeft, r.Ticks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecordRound implements breakout.Recorder.
func (s *Store) RecordRound(player string, sum breakout.RoundSummary) error {
	_, err := s.SaveRound(RoundRecord{
		Player:     player,
		Catalog:    sum.Catalog,
		TopicID:    sum.TopicID,
		Answer:     sum.Answer,
		Outcome:    string(sum.Outcome),
		Chosen:     sum.Chosen,
		Correct:    sum.Correct,
		BlocksLeft: sum.BlocksLeft,
		Ticks:      sum.Ticks,
	})
	return err
}

var _ breakout.Recorder = (*Store)(nil)

// RecentRounds retrieves the most recent rounds, newest first.
// An empty catalog selects all catalogs.
func (s *Store) RecentRounds(catalog string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, player, catalog, topic_id, answer, outcome, chosen, correct, blocks_left, ticks, created_at
		 FROM rounds
		 WHERE ? = '' OR catalog = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		catalog, catalog, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: query rounds: %w", err)
	}
	defer rows.Close()

	var records []RoundRecord
	for rows.Next() {
		r, err := scanRound(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: scan round: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: read rounds: %w", err)
	}
	return records, nil
}

func scanRound(rows *sql.Rows) (RoundRecord, error) {
	var r RoundRecord
	var createdAt any
	err := rows.Scan(
		&r.ID, &r.Player, &r.Catalog, &r.TopicID, &r.Answer, &r.Outcome,
		&r.Chosen, &r.Correct, &r.BlocksLeft, &r.Ticks, &createdAt,
	)
	r.CreatedAt = parseTime(createdAt)
	return r, err
}

// TopicStats aggregates answered rounds per topic, weakest topics first.
// An empty catalog selects all catalogs.
func (s *Store) TopicStats(catalog string) ([]TopicStat, error) {
	rows, err := s.db.Query(
		`SELECT catalog, topic_id, MAX(answer), COUNT(*), COALESCE(SUM(correct), 0), MAX(created_at)
		 FROM rounds
		 WHERE chosen != '' AND (? = '' OR catalog = ?)
		 GROUP BY catalog, topic_id
		 ORDER BY CAST(SUM(correct) AS REAL) / COUNT(*) ASC, catalog, topic_id`,
		catalog, catalog,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: query topic stats: %w", err)
	}
	defer rows.Close()

	var stats []TopicStat
	for rows.Next() {
		var st TopicStat
		var lastPlayed any
		if err := rows.Scan(&st.Catalog, &st.TopicID, &st.Answer, &st.Attempts, &st.Correct, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: scan topic stats: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: read topic stats: %w", err)
	}
	return stats, nil
}

// Totals counts the recorded rounds of a catalog, or of all catalogs.
func (s *Store) Totals(catalog string) (Totals, error) {
	var t Totals
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN chosen != '' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(correct), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'lost' THEN 1 ELSE 0 END), 0)
		 FROM rounds
		 WHERE ? = '' OR catalog = ?`,
		catalog, catalog,
	).Scan(&t.Rounds, &t.Answered, &t.Correct, &t.GameOvers)
	if err != nil {
		return Totals{}, fmt.Errorf("storage: cannot count rounds: %w", err)
	}
	return t, nil
}

// LastRound returns the most recent round, or nil when none exist.
func (s *Store) LastRound() (*RoundRecord, error) {
	recs, err := s.RecentRounds("", 1)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return &recs[0], nil
}

// ClearHistory deletes the rounds of a catalog, or all rounds.
func (s *Store) ClearHistory(catalog string) error {
	_, err := s.db.Exec("DELETE FROM rounds WHERE ? = '' OR catalog = ?", catalog, catalog)
	if err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes returned by the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
