// Package sqlitestore is the SQLite implementation of stores.ReviewStore,
// used for local development and hermetic tests.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/domino14/cardvault/internal/srs"
	"github.com/domino14/cardvault/internal/stores"
)

const reviewColumns = `r.id, r.user_id, r.flashcard_id, r.ease_factor, r.interval_minutes,
	r.due_at, r.status, r.learning_step, r.review_count, r.lapse_count,
	r.last_reviewed_at, r.created_at, r.updated_at,
	f.id AS f_id, f.collection_id, f.question, f.answer, f.type`

const (
	checkAccessQuery = `
SELECT EXISTS (
    SELECT 1 FROM collections c
    WHERE c.id = ? AND (
        c.owner_id = ? OR EXISTS (
            SELECT 1 FROM collection_collaborators cc
            WHERE cc.collection_id = c.id AND cc.user_id = ?)))`

	missingFlashcardsQuery = `
SELECT f.id FROM flashcards f
WHERE f.collection_id = ? AND NOT EXISTS (
    SELECT 1 FROM flashcard_reviews r
    WHERE r.flashcard_id = f.id AND r.user_id = ?)
ORDER BY f.created_at, f.id`

	listDueQuery = `
SELECT ` + reviewColumns + `
FROM flashcard_reviews r
JOIN flashcards f ON f.id = r.flashcard_id
WHERE r.user_id = ? AND f.collection_id = ? AND r.due_at <= ?
ORDER BY r.due_at, r.created_at, r.id
LIMIT ?`

	listReviewsQuery = `
SELECT ` + reviewColumns + `
FROM flashcard_reviews r
JOIN flashcards f ON f.id = r.flashcard_id
WHERE r.user_id = ? AND f.collection_id = ?
ORDER BY r.created_at, r.id`

	getReviewQuery = `
SELECT ` + reviewColumns + `
FROM flashcard_reviews r
JOIN flashcards f ON f.id = r.flashcard_id
WHERE r.user_id = ? AND r.flashcard_id = ?`

	insertReviewQuery = `
INSERT INTO flashcard_reviews (id, user_id, flashcard_id, ease_factor, interval_minutes,
    due_at, status, learning_step, review_count, lapse_count, last_reviewed_at,
    created_at, updated_at)
VALUES (:id, :user_id, :flashcard_id, :ease_factor, :interval_minutes, :due_at, :status,
    :learning_step, :review_count, :lapse_count, :last_reviewed_at, :created_at, :updated_at)
ON CONFLICT (user_id, flashcard_id) DO NOTHING`

	updateReviewQuery = `
UPDATE flashcard_reviews SET
    ease_factor = ?, interval_minutes = ?, due_at = ?, status = ?,
    learning_step = ?, review_count = ?, lapse_count = ?,
    last_reviewed_at = ?, updated_at = ?
WHERE id = ? AND updated_at = ?`

	deleteReviewsQuery = `
DELETE FROM flashcard_reviews
WHERE user_id = ? AND flashcard_id IN (
    SELECT id FROM flashcards WHERE collection_id = ?)`
)

type Store struct {
	db *sqlx.DB
}

// Open opens the database at path and applies migrations. Use ":memory:"
// for a private in-memory database.
func Open(path string) (*Store, error) {
	db, err := sqlx.Connect("sqlite3", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	// SQLite has one writer; a single connection also serializes the
	// read-modify-write of ApplyReview.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := migrateUp(db.DB); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return &Store{db: db}, nil
}

func dsn(path string) string {
	opts := "_foreign_keys=on&_txlock=immediate&_busy_timeout=5000"
	if path == ":memory:" {
		return "file:" + uuid.NewString() + "?mode=memory&cache=shared&" + opts
	}
	return "file:" + path + "?" + opts
}

func (s *Store) Close() error {
	return s.db.Close()
}

type reviewRow struct {
	ID             string        `db:"id"`
	UserID         string        `db:"user_id"`
	FlashcardID    string        `db:"flashcard_id"`
	EaseFactor     float64       `db:"ease_factor"`
	Interval       int           `db:"interval_minutes"`
	DueAt          int64         `db:"due_at"`
	Status         srs.Status    `db:"status"`
	LearningStep   int           `db:"learning_step"`
	ReviewCount    int           `db:"review_count"`
	LapseCount     int           `db:"lapse_count"`
	LastReviewedAt sql.NullInt64 `db:"last_reviewed_at"`
	CreatedAt      int64         `db:"created_at"`
	UpdatedAt      int64         `db:"updated_at"`

	FlashcardRowID string `db:"f_id"`
	CollectionID   string `db:"collection_id"`
	Question       string `db:"question"`
	Answer         string `db:"answer"`
	Type           string `db:"type"`
}

func toRow(r srs.ReviewRecord) reviewRow {
	row := reviewRow{
		ID:           r.ID.String(),
		UserID:       r.UserID,
		FlashcardID:  r.FlashcardID.String(),
		EaseFactor:   r.EaseFactor,
		Interval:     r.Interval,
		DueAt:        r.DueAt.UnixNano(),
		Status:       r.Status,
		LearningStep: r.LearningStep,
		ReviewCount:  r.ReviewCount,
		LapseCount:   r.LapseCount,
		CreatedAt:    r.CreatedAt.UnixNano(),
		UpdatedAt:    r.UpdatedAt.UnixNano(),
	}
	if r.LastReviewedAt != nil {
		row.LastReviewedAt = sql.NullInt64{Int64: r.LastReviewedAt.UnixNano(), Valid: true}
	}
	return row
}

func (row reviewRow) record() (srs.ReviewRecord, error) {
	var err error
	r := srs.ReviewRecord{
		UserID:       row.UserID,
		EaseFactor:   row.EaseFactor,
		Interval:     row.Interval,
		DueAt:        fromNanos(row.DueAt),
		Status:       row.Status,
		LearningStep: row.LearningStep,
		ReviewCount:  row.ReviewCount,
		LapseCount:   row.LapseCount,
		CreatedAt:    fromNanos(row.CreatedAt),
		UpdatedAt:    fromNanos(row.UpdatedAt),
	}
	if row.LastReviewedAt.Valid {
		t := fromNanos(row.LastReviewedAt.Int64)
		r.LastReviewedAt = &t
	}
	if r.ID, err = uuid.Parse(row.ID); err != nil {
		return r, err
	}
	if r.FlashcardID, err = uuid.Parse(row.FlashcardID); err != nil {
		return r, err
	}
	f := &srs.Flashcard{Question: row.Question, Answer: row.Answer, Type: row.Type}
	if f.ID, err = uuid.Parse(row.FlashcardRowID); err != nil {
		return r, err
	}
	if f.CollectionID, err = uuid.Parse(row.CollectionID); err != nil {
		return r, err
	}
	r.Flashcard = f
	return r, nil
}

func fromNanos(ns int64) time.Time {
	return time.Unix(0, ns).UTC()
}

func toRecords(rows []reviewRow) ([]srs.ReviewRecord, error) {
	out := make([]srs.ReviewRecord, len(rows))
	for i := range rows {
		r, err := rows[i].record()
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

func (s *Store) CheckCollectionAccess(ctx context.Context, userID string, collectionID uuid.UUID) error {
	var ok bool
	id := collectionID.String()
	if err := s.db.GetContext(ctx, &ok, checkAccessQuery, id, userID, userID); err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("collection %s: %w", collectionID, stores.ErrNotFound)
	}
	return nil
}

func (s *Store) FlashcardCollection(ctx context.Context, flashcardID uuid.UUID) (uuid.UUID, error) {
	var id string
	err := s.db.GetContext(ctx, &id, `SELECT collection_id FROM flashcards WHERE id = ?`,
		flashcardID.String())
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, fmt.Errorf("flashcard %s: %w", flashcardID, stores.ErrNotFound)
	}
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(id)
}

func (s *Store) EnsureReviews(ctx context.Context, p srs.Policy, userID string,
	collectionID uuid.UUID, now time.Time) (int, error) {

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var missing []string
	err = tx.SelectContext(ctx, &missing, missingFlashcardsQuery, collectionID.String(), userID)
	if err != nil {
		return 0, err
	}
	created := 0
	for _, id := range missing {
		fid, err := uuid.Parse(id)
		if err != nil {
			return 0, err
		}
		res, err := tx.NamedExecContext(ctx, insertReviewQuery, toRow(srs.NewRecord(p, userID, fid, now)))
		if err != nil {
			return 0, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		created += int(n)
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return created, nil
}

func (s *Store) ListDue(ctx context.Context, userID string, collectionID uuid.UUID,
	now time.Time, limit int) ([]srs.ReviewRecord, error) {

	if limit <= 0 {
		limit = -1
	}
	var rows []reviewRow
	err := s.db.SelectContext(ctx, &rows, listDueQuery, userID, collectionID.String(),
		now.UnixNano(), limit)
	if err != nil {
		return nil, err
	}
	return toRecords(rows)
}

func (s *Store) ListReviews(ctx context.Context, userID string, collectionID uuid.UUID) ([]srs.ReviewRecord, error) {
	var rows []reviewRow
	err := s.db.SelectContext(ctx, &rows, listReviewsQuery, userID, collectionID.String())
	if err != nil {
		return nil, err
	}
	return toRecords(rows)
}

func (s *Store) GetReview(ctx context.Context, userID string, flashcardID uuid.UUID) (srs.ReviewRecord, error) {
	var row reviewRow
	err := s.db.GetContext(ctx, &row, getReviewQuery, userID, flashcardID.String())
	if errors.Is(err, sql.ErrNoRows) {
		return srs.ReviewRecord{}, fmt.Errorf("review of %s: %w", flashcardID, stores.ErrNotFound)
	}
	if err != nil {
		return srs.ReviewRecord{}, err
	}
	return row.record()
}

func (s *Store) ApplyReview(ctx context.Context, p srs.Policy, userID string, flashcardID uuid.UUID,
	now time.Time, fn stores.ApplyFunc) (srs.ReviewRecord, error) {

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return srs.ReviewRecord{}, err
	}
	defer tx.Rollback()

	var row reviewRow
	err = tx.GetContext(ctx, &row, getReviewQuery, userID, flashcardID.String())
	if errors.Is(err, sql.ErrNoRows) {
		fresh := srs.NewRecord(p, userID, flashcardID, now)
		if _, err := tx.NamedExecContext(ctx, insertReviewQuery, toRow(fresh)); err != nil {
			return srs.ReviewRecord{}, err
		}
		err = tx.GetContext(ctx, &row, getReviewQuery, userID, flashcardID.String())
	}
	if err != nil {
		return srs.ReviewRecord{}, err
	}
	cur, err := row.record()
	if err != nil {
		return srs.ReviewRecord{}, err
	}

	next, err := fn(cur)
	if err != nil {
		return srs.ReviewRecord{}, err
	}
	nr := toRow(next)
	res, err := tx.ExecContext(ctx, updateReviewQuery,
		nr.EaseFactor, nr.Interval, nr.DueAt, nr.Status, nr.LearningStep,
		nr.ReviewCount, nr.LapseCount, nr.LastReviewedAt, nr.UpdatedAt,
		row.ID, row.UpdatedAt)
	if err != nil {
		return srs.ReviewRecord{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return srs.ReviewRecord{}, err
	}
	if n != 1 {
		return srs.ReviewRecord{}, stores.ErrConflict
	}
	if err := tx.Commit(); err != nil {
		return srs.ReviewRecord{}, err
	}
	return next, nil
}

func (s *Store) DeleteReviews(ctx context.Context, userID string, collectionID uuid.UUID) (int64, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()
	res, err := tx.ExecContext(ctx, deleteReviewsQuery, userID, collectionID.String())
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Store) CreateCollection(ctx context.Context, ownerID, name string, now time.Time) (stores.Collection, error) {
	return createCollection(ctx, s.db, ownerID, name, now)
}

func (s *Store) AddCollaborator(ctx context.Context, collectionID uuid.UUID, userID string, now time.Time) error {
	return addCollaborator(ctx, s.db, collectionID, userID, now)
}

func (s *Store) AddFlashcards(ctx context.Context, collectionID uuid.UUID, cards []stores.NewFlashcard,
	now time.Time) ([]srs.Flashcard, error) {

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()
	out, err := addFlashcards(ctx, tx, collectionID, cards, now)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) ImportCollection(ctx context.Context, seed stores.CollectionSeed,
	now time.Time) (stores.Collection, []srs.Flashcard, error) {

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return stores.Collection{}, nil, err
	}
	defer tx.Rollback()

	c, err := createCollection(ctx, tx, seed.OwnerID, seed.Name, now)
	if err != nil {
		return stores.Collection{}, nil, err
	}
	cards, err := addFlashcards(ctx, tx, c.ID, seed.Cards, now)
	if err != nil {
		return stores.Collection{}, nil, err
	}
	for _, u := range seed.Collaborators {
		if err := addCollaborator(ctx, tx, c.ID, u, now); err != nil {
			return stores.Collection{}, nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return stores.Collection{}, nil, err
	}
	return c, cards, nil
}

func createCollection(ctx context.Context, db sqlx.ExecerContext, ownerID, name string,
	now time.Time) (stores.Collection, error) {

	c := stores.Collection{ID: srs.NewID(), OwnerID: ownerID, Name: name, CreatedAt: now}
	_, err := db.ExecContext(ctx,
		`INSERT INTO collections (id, owner_id, name, created_at) VALUES (?, ?, ?, ?)`,
		c.ID.String(), ownerID, name, now.UnixNano())
	return c, err
}

func addCollaborator(ctx context.Context, db sqlx.ExecerContext, collectionID uuid.UUID, userID string,
	now time.Time) error {

	_, err := db.ExecContext(ctx, `
INSERT INTO collection_collaborators (collection_id, user_id, created_at) VALUES (?, ?, ?)
ON CONFLICT DO NOTHING`, collectionID.String(), userID, now.UnixNano())
	return err
}

func addFlashcards(ctx context.Context, db sqlx.ExecerContext, collectionID uuid.UUID,
	cards []stores.NewFlashcard, now time.Time) ([]srs.Flashcard, error) {

	out := make([]srs.Flashcard, len(cards))
	for i, c := range cards {
		out[i] = srs.Flashcard{
			ID:           srs.NewID(),
			CollectionID: collectionID,
			Question:     c.Question,
			Answer:       c.Answer,
			Type:         c.CardType(),
		}
		_, err := db.ExecContext(ctx, `
INSERT INTO flashcards (id, collection_id, question, answer, type, created_at)
VALUES (?, ?, ?, ?, ?, ?)`,
			out[i].ID.String(), collectionID.String(), c.Question, c.Answer, out[i].Type, now.UnixNano())
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
