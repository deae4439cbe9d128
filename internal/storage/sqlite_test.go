package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/quiz-breakout/internal/breakout"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsHistory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveRound(RoundRecord{Catalog: "aws", TopicID: "s3", Answer: "Amazon S3", Outcome: "cleared", Chosen: "Amazon S3", Correct: true}); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if v, err := store.SchemaVersion(); err != nil || v != len(migrations) {
		t.Errorf("schema version after reopen = %d, %v; expected %d", v, err, len(migrations))
	}

	last, err := store.LastRound()
	if err != nil {
		t.Fatal(err)
	}
	if last == nil || last.TopicID != "s3" || !last.Correct || last.Player != LocalPlayer {
		t.Errorf("last round = %+v", last)
	}
}

func TestRecordRound(t *testing.T) {
	store := openTestStore(t)

	sum := breakout.RoundSummary{
		Catalog:    "aws",
		TopicID:    "lambda",
		Answer:     "AWS Lambda",
		Outcome:    breakout.OutcomeMissed,
		Chosen:     "Amazon EC2",
		Correct:    false,
		BlocksLeft: 12,
		Ticks:      900,
	}
	if err := store.RecordRound("alice", sum); err != nil {
		t.Fatalf("RecordRound() failed: %v", err)
	}

	recs, err := store.RecentRounds("", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 round, got %d", len(recs))
	}
	r := recs[0]
	if r.Player != "alice" || r.Outcome != "missed" || r.Chosen != "Amazon EC2" || r.Correct || r.BlocksLeft != 12 || r.Ticks != 900 {
		t.Errorf("record = %+v", r)
	}
}

func TestRecentRoundsOrderAndFilter(t *testing.T) {
	store := openTestStore(t)

	for _, rec := range []RoundRecord{
		{Catalog: "aws", TopicID: "s3", Outcome: "cleared"},
		{Catalog: "gcp", TopicID: "gke", Outcome: "missed"},
		{Catalog: "aws", TopicID: "ec2", Outcome: "lost"},
	} {
		if _, err := store.SaveRound(rec); err != nil {
			t.Fatal(err)
		}
	}

	all, err := store.RecentRounds("", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 || all[0].TopicID != "ec2" || all[2].TopicID != "s3" {
		t.Errorf("expected newest first, got %+v", all)
	}

	aws, err := store.RecentRounds("aws", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(aws) != 2 {
		t.Errorf("expected 2 aws rounds, got %d", len(aws))
	}

	limited, err := store.RecentRounds("", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 1 {
		t.Errorf("limit ignored: got %d rounds", len(limited))
	}
}

func TestTopicStats(t *testing.T) {
	store := openTestStore(t)

	rounds := []RoundRecord{
		{Catalog: "aws", TopicID: "s3", Answer: "Amazon S3", Outcome: "cleared", Chosen: "Amazon S3", Correct: true},
		{Catalog: "aws", TopicID: "s3", Answer: "Amazon S3", Outcome: "missed", Chosen: "Amazon EC2"},
		{Catalog: "aws", TopicID: "ec2", Answer: "Amazon EC2", Outcome: "cleared", Chosen: "Amazon S3"},
		{Catalog: "aws", TopicID: "rds", Answer: "Amazon RDS", Outcome: "cleared", Chosen: "Amazon RDS", Correct: true},
		// Game over without an answer does not count as an attempt.
		{Catalog: "aws", TopicID: "rds", Answer: "Amazon RDS", Outcome: "lost"},
		{Catalog: "gcp", TopicID: "gke", Answer: "Google Kubernetes Engine", Outcome: "cleared", Chosen: "Cloud Run"},
	}
	for _, r := range rounds {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := store.TopicStats("aws")
	if err != nil {
		t.Fatalf("TopicStats() failed: %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("expected 3 topics, got %d: %+v", len(stats), stats)
	}

	want := []struct {
		topic             string
		attempts, correct int
	}{
		{"ec2", 1, 0},
		{"s3", 2, 1},
		{"rds", 1, 1},
	}
	for i, w := range want {
		st := stats[i]
		if st.TopicID != w.topic || st.Attempts != w.attempts || st.Correct != w.correct {
			t.Errorf("stats[%d] = %+v, expected %s %d/%d", i, st, w.topic, w.correct, w.attempts)
		}
	}
	if acc := stats[1].Accuracy(); acc != 0.5 {
		t.Errorf("s3 accuracy = %v, expected 0.5", acc)
	}
	if (TopicStat{}).Accuracy() != 0 {
		t.Error("zero attempts should have zero accuracy")
	}

	totals, err := store.Totals("aws")
	if err != nil {
		t.Fatal(err)
	}
	if totals != (Totals{Rounds: 5, Answered: 4, Correct: 2, GameOvers: 1}) {
		t.Errorf("totals = %+v", totals)
	}
}

func TestClearHistory(t *testing.T) {
	store := openTestStore(t)

	for _, c := range []string{"aws", "gcp"} {
		if _, err := store.SaveRound(RoundRecord{Catalog: c, TopicID: "x", Outcome: "cleared"}); err != nil {
			t.Fatal(err)
		}
	}

	if err := store.ClearHistory("aws"); err != nil {
		t.Fatalf("ClearHistory() failed: %v", err)
	}
	recs, _ := store.RecentRounds("", 10)
	if len(recs) != 1 || recs[0].Catalog != "gcp" {
		t.Errorf("expected only gcp left, got %+v", recs)
	}

	if err := store.ClearHistory(""); err != nil {
		t.Fatal(err)
	}
	if last, _ := store.LastRound(); last != nil {
		t.Errorf("expected empty history, got %+v", last)
	}
}
