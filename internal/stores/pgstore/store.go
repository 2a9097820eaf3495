// Package pgstore is the PostgreSQL implementation of stores.ReviewStore.
package pgstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/domino14/cardvault/internal/srs"
	"github.com/domino14/cardvault/internal/stores"
)

const reviewColumns = `r.id, r.user_id, r.flashcard_id, r.ease_factor, r.interval_minutes,
	r.due_at, r.status, r.learning_step, r.review_count, r.lapse_count,
	r.last_reviewed_at, r.created_at, r.updated_at,
	f.id, f.collection_id, f.question, f.answer, f.type`

const (
	checkAccessQuery = `
SELECT EXISTS (
    SELECT 1 FROM collections c
    WHERE c.id = $1 AND (
        c.owner_id = $2 OR EXISTS (
            SELECT 1 FROM collection_collaborators cc
            WHERE cc.collection_id = c.id AND cc.user_id = $2)))`

	flashcardCollectionQuery = `SELECT collection_id FROM flashcards WHERE id = $1`

	ensureReviewsQuery = `
INSERT INTO flashcard_reviews (id, user_id, flashcard_id, ease_factor, interval_minutes,
    due_at, status, learning_step, review_count, lapse_count, created_at, updated_at)
SELECT ids.id, $1::text, ids.flashcard_id, $3::float8, 0, $4::timestamptz, 'new', 0, 0, 0,
    $4::timestamptz, $4::timestamptz
FROM unnest($5::uuid[], $6::uuid[]) AS ids(id, flashcard_id)
JOIN flashcards f ON f.id = ids.flashcard_id AND f.collection_id = $2
ON CONFLICT (user_id, flashcard_id) DO NOTHING`

	missingFlashcardsQuery = `
SELECT f.id FROM flashcards f
WHERE f.collection_id = $2 AND NOT EXISTS (
    SELECT 1 FROM flashcard_reviews r
    WHERE r.flashcard_id = f.id AND r.user_id = $1)
ORDER BY f.created_at, f.id`

	listDueQuery = `
SELECT ` + reviewColumns + `
FROM flashcard_reviews r
JOIN flashcards f ON f.id = r.flashcard_id
WHERE r.user_id = $1 AND f.collection_id = $2 AND r.due_at <= $3
ORDER BY r.due_at, r.created_at, r.id
LIMIT $4`

	listReviewsQuery = `
SELECT ` + reviewColumns + `
FROM flashcard_reviews r
JOIN flashcards f ON f.id = r.flashcard_id
WHERE r.user_id = $1 AND f.collection_id = $2
ORDER BY r.created_at, r.id`

	getReviewQuery = `
SELECT ` + reviewColumns + `
FROM flashcard_reviews r
JOIN flashcards f ON f.id = r.flashcard_id
WHERE r.user_id = $1 AND r.flashcard_id = $2`

	insertReviewQuery = `
INSERT INTO flashcard_reviews (id, user_id, flashcard_id, ease_factor, interval_minutes,
    due_at, status, learning_step, review_count, lapse_count, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (user_id, flashcard_id) DO NOTHING`

	updateReviewQuery = `
UPDATE flashcard_reviews SET
    ease_factor = $1, interval_minutes = $2, due_at = $3, status = $4,
    learning_step = $5, review_count = $6, lapse_count = $7,
    last_reviewed_at = $8, updated_at = $9
WHERE id = $10 AND updated_at = $11`

	deleteReviewsQuery = `
DELETE FROM flashcard_reviews r
USING flashcards f
WHERE f.id = r.flashcard_id AND r.user_id = $1 AND f.collection_id = $2`
)

type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Open connects a pool and pings the database.
func Open(ctx context.Context, dbURI string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dbURI)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return New(pool), nil
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

func (s *Store) CheckCollectionAccess(ctx context.Context, userID string, collectionID uuid.UUID) error {
	var ok bool
	if err := s.pool.QueryRow(ctx, checkAccessQuery, collectionID, userID).Scan(&ok); err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("collection %s: %w", collectionID, stores.ErrNotFound)
	}
	return nil
}

func (s *Store) FlashcardCollection(ctx context.Context, flashcardID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.pool.QueryRow(ctx, flashcardCollectionQuery, flashcardID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, fmt.Errorf("flashcard %s: %w", flashcardID, stores.ErrNotFound)
	}
	return id, err
}

func (s *Store) EnsureReviews(ctx context.Context, p srs.Policy, userID string,
	collectionID uuid.UUID, now time.Time) (int, error) {

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, missingFlashcardsQuery, userID, collectionID)
	if err != nil {
		return 0, err
	}
	flashcardIDs, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return 0, err
	}
	if len(flashcardIDs) == 0 {
		return 0, nil
	}
	ids := make([]uuid.UUID, len(flashcardIDs))
	for i := range ids {
		ids[i] = srs.NewID()
	}
	tag, err := tx.Exec(ctx, ensureReviewsQuery, userID, collectionID, p.StartingEase, now,
		ids, flashcardIDs)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (s *Store) ListDue(ctx context.Context, userID string, collectionID uuid.UUID,
	now time.Time, limit int) ([]srs.ReviewRecord, error) {

	var lim *int
	if limit > 0 {
		lim = &limit
	}
	rows, err := s.pool.Query(ctx, listDueQuery, userID, collectionID, now, lim)
	if err != nil {
		return nil, err
	}
	return collectReviews(rows)
}

func (s *Store) ListReviews(ctx context.Context, userID string, collectionID uuid.UUID) ([]srs.ReviewRecord, error) {
	rows, err := s.pool.Query(ctx, listReviewsQuery, userID, collectionID)
	if err != nil {
		return nil, err
	}
	return collectReviews(rows)
}

func (s *Store) GetReview(ctx context.Context, userID string, flashcardID uuid.UUID) (srs.ReviewRecord, error) {
	r, err := scanReview(s.pool.QueryRow(ctx, getReviewQuery, userID, flashcardID))
	if errors.Is(err, pgx.ErrNoRows) {
		return r, fmt.Errorf("review of %s: %w", flashcardID, stores.ErrNotFound)
	}
	return r, err
}

func (s *Store) ApplyReview(ctx context.Context, p srs.Policy, userID string, flashcardID uuid.UUID,
	now time.Time, fn stores.ApplyFunc) (srs.ReviewRecord, error) {

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return srs.ReviewRecord{}, err
	}
	defer tx.Rollback(ctx)

	lockQuery := getReviewQuery + " FOR UPDATE OF r"
	cur, err := scanReview(tx.QueryRow(ctx, lockQuery, userID, flashcardID))
	if errors.Is(err, pgx.ErrNoRows) {
		fresh := srs.NewRecord(p, userID, flashcardID, now)
		if _, err := tx.Exec(ctx, insertReviewQuery, reviewArgs(fresh)...); err != nil {
			return srs.ReviewRecord{}, err
		}
		// Another transaction may have won the insert; either way the row
		// exists now.
		cur, err = scanReview(tx.QueryRow(ctx, lockQuery, userID, flashcardID))
	}
	if err != nil {
		return srs.ReviewRecord{}, err
	}

	next, err := fn(cur)
	if err != nil {
		return srs.ReviewRecord{}, err
	}
	tag, err := tx.Exec(ctx, updateReviewQuery,
		next.EaseFactor, next.Interval, next.DueAt, next.Status.String(),
		next.LearningStep, next.ReviewCount, next.LapseCount,
		toPGTimestamp(next.LastReviewedAt), next.UpdatedAt,
		cur.ID, cur.UpdatedAt)
	if err != nil {
		return srs.ReviewRecord{}, err
	}
	if tag.RowsAffected() != 1 {
		return srs.ReviewRecord{}, stores.ErrConflict
	}
	if err := tx.Commit(ctx); err != nil {
		return srs.ReviewRecord{}, err
	}
	return next, nil
}

func (s *Store) DeleteReviews(ctx context.Context, userID string, collectionID uuid.UUID) (int64, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)
	tag, err := tx.Exec(ctx, deleteReviewsQuery, userID, collectionID)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// dbtx is the part of a pool or a transaction the write helpers need.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	CopyFrom(ctx context.Context, table pgx.Identifier, columns []string, src pgx.CopyFromSource) (int64, error)
}

func (s *Store) CreateCollection(ctx context.Context, ownerID, name string, now time.Time) (stores.Collection, error) {
	return createCollection(ctx, s.pool, ownerID, name, now)
}

func (s *Store) AddCollaborator(ctx context.Context, collectionID uuid.UUID, userID string, now time.Time) error {
	return addCollaborator(ctx, s.pool, collectionID, userID, now)
}

func (s *Store) AddFlashcards(ctx context.Context, collectionID uuid.UUID, cards []stores.NewFlashcard,
	now time.Time) ([]srs.Flashcard, error) {

	return addFlashcards(ctx, s.pool, collectionID, cards, now)
}

func (s *Store) ImportCollection(ctx context.Context, seed stores.CollectionSeed,
	now time.Time) (stores.Collection, []srs.Flashcard, error) {

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return stores.Collection{}, nil, err
	}
	defer tx.Rollback(ctx)

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
	if err := tx.Commit(ctx); err != nil {
		return stores.Collection{}, nil, err
	}
	return c, cards, nil
}

func createCollection(ctx context.Context, db dbtx, ownerID, name string, now time.Time) (stores.Collection, error) {
	c := stores.Collection{ID: srs.NewID(), OwnerID: ownerID, Name: name, CreatedAt: now}
	_, err := db.Exec(ctx,
		`INSERT INTO collections (id, owner_id, name, created_at) VALUES ($1, $2, $3, $4)`,
		c.ID, c.OwnerID, c.Name, c.CreatedAt)
	return c, err
}

func addCollaborator(ctx context.Context, db dbtx, collectionID uuid.UUID, userID string, now time.Time) error {
	_, err := db.Exec(ctx, `
INSERT INTO collection_collaborators (collection_id, user_id, created_at) VALUES ($1, $2, $3)
ON CONFLICT DO NOTHING`, collectionID, userID, now)
	return err
}

func addFlashcards(ctx context.Context, db dbtx, collectionID uuid.UUID, cards []stores.NewFlashcard,
	now time.Time) ([]srs.Flashcard, error) {

	out := make([]srs.Flashcard, len(cards))
	rows := make([][]any, len(cards))
	for i, c := range cards {
		out[i] = srs.Flashcard{
			ID:           srs.NewID(),
			CollectionID: collectionID,
			Question:     c.Question,
			Answer:       c.Answer,
			Type:         c.CardType(),
		}
		rows[i] = []any{out[i].ID, collectionID, c.Question, c.Answer, out[i].Type, now}
	}
	_, err := db.CopyFrom(ctx, pgx.Identifier{"flashcards"},
		[]string{"id", "collection_id", "question", "answer", "type", "created_at"},
		pgx.CopyFromRows(rows))
	if err != nil {
		return nil, err
	}
	return out, nil
}

func reviewArgs(r srs.ReviewRecord) []any {
	return []any{r.ID, r.UserID, r.FlashcardID, r.EaseFactor, r.Interval, r.DueAt,
		r.Status.String(), r.LearningStep, r.ReviewCount, r.LapseCount, r.CreatedAt, r.UpdatedAt}
}

func collectReviews(rows pgx.Rows) ([]srs.ReviewRecord, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (srs.ReviewRecord, error) {
		return scanReview(row)
	})
}

func scanReview(row pgx.Row) (srs.ReviewRecord, error) {
	var r srs.ReviewRecord
	var f srs.Flashcard
	var status string
	var lastReviewed pgtype.Timestamptz
	err := row.Scan(&r.ID, &r.UserID, &r.FlashcardID, &r.EaseFactor, &r.Interval,
		&r.DueAt, &status, &r.LearningStep, &r.ReviewCount, &r.LapseCount,
		&lastReviewed, &r.CreatedAt, &r.UpdatedAt,
		&f.ID, &f.CollectionID, &f.Question, &f.Answer, &f.Type)
	if err != nil {
		return srs.ReviewRecord{}, err
	}
	if r.Status, err = srs.ParseStatus(status); err != nil {
		return srs.ReviewRecord{}, err
	}
	r.LastReviewedAt = fromPGTimestamp(lastReviewed)
	r.DueAt = r.DueAt.UTC()
	r.CreatedAt = r.CreatedAt.UTC()
	r.UpdatedAt = r.UpdatedAt.UTC()
	r.Flashcard = &f
	return r, nil
}
