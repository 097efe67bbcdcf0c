package persist

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lumen3d/engine/internal/core/ecs"
	"go.uber.org/zap"
)

// SnapshotRepo saves and restores whole-world snapshots. Entity order
// is preserved; only components with a registered codec are stored.
type SnapshotRepo struct {
	db     *DB
	codecs *CodecRegistry
}

func NewSnapshotRepo(db *DB, codecs *CodecRegistry) *SnapshotRepo {
	return &SnapshotRepo{db: db, codecs: codecs}
}

// Save writes one snapshot of the world in a single transaction and
// returns its id. The world snapshot is taken entity by entity; a
// concurrent mutation lands either in this snapshot or the next one.
func (r *SnapshotRepo) Save(ctx context.Context, w *ecs.World) (int64, error) {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("snapshot begin: %w", err)
	}
	defer tx.Rollback(ctx)

	var snapID int64
	if err := tx.QueryRow(ctx,
		`INSERT INTO snapshots DEFAULT VALUES RETURNING id`,
	).Scan(&snapID); err != nil {
		return 0, fmt.Errorf("snapshot insert: %w", err)
	}

	for ord, e := range w.Entities() {
		if _, err := tx.Exec(ctx,
			`INSERT INTO snapshot_entities (snapshot_id, entity_id, ord) VALUES ($1, $2, $3)`,
			snapID, e.ID(), ord,
		); err != nil {
			return 0, fmt.Errorf("snapshot entity %s: %w", e.ID(), err)
		}
		for _, category := range e.Categories() {
			for i, c := range e.Components(category) {
				payload, ok := r.codecs.encode(category, c)
				if !ok {
					continue
				}
				if _, err := tx.Exec(ctx,
					`INSERT INTO snapshot_components (snapshot_id, entity_ord, category, ord, payload)
					 VALUES ($1, $2, $3, $4, $5)`,
					snapID, ord, category, i, payload,
				); err != nil {
					return 0, fmt.Errorf("snapshot component %s/%s: %w", e.ID(), category, err)
				}
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("snapshot commit: %w", err)
	}
	r.db.log.Info("world snapshot saved", zap.Int64("snapshot_id", snapID))
	return snapID, nil
}

// LoadLatest restores the most recent snapshot into w, creating one
// entity per stored row. Returns the number of restored entities;
// (0, nil) when no snapshot exists.
func (r *SnapshotRepo) LoadLatest(ctx context.Context, w *ecs.World) (int, error) {
	var snapID int64
	err := r.db.Pool.QueryRow(ctx,
		`SELECT id FROM snapshots ORDER BY id DESC LIMIT 1`,
	).Scan(&snapID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("latest snapshot: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx,
		`SELECT entity_id, ord FROM snapshot_entities WHERE snapshot_id = $1 ORDER BY ord`,
		snapID,
	)
	if err != nil {
		return 0, fmt.Errorf("load entities: %w", err)
	}
	defer rows.Close()

	entities := make(map[int]*ecs.Entity)
	order := make([]int, 0, 64)
	for rows.Next() {
		var id string
		var ord int
		if err := rows.Scan(&id, &ord); err != nil {
			return 0, fmt.Errorf("scan entity: %w", err)
		}
		entities[ord] = w.CreateDefault(id)
		order = append(order, ord)
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("load entities: %w", err)
	}

	crows, err := r.db.Pool.Query(ctx,
		`SELECT entity_ord, category, payload FROM snapshot_components
		 WHERE snapshot_id = $1 ORDER BY entity_ord, category, ord`,
		snapID,
	)
	if err != nil {
		return 0, fmt.Errorf("load components: %w", err)
	}
	defer crows.Close()

	for crows.Next() {
		var entityOrd int
		var category string
		var payload []byte
		if err := crows.Scan(&entityOrd, &category, &payload); err != nil {
			return 0, fmt.Errorf("scan component: %w", err)
		}
		e, ok := entities[entityOrd]
		if !ok {
			continue
		}
		c, err := r.codecs.decode(category, payload)
		if err != nil {
			return 0, fmt.Errorf("decode %s component: %w", category, err)
		}
		e.AddComponent(category, c)
	}
	if err := crows.Err(); err != nil {
		return 0, fmt.Errorf("load components: %w", err)
	}

	r.db.log.Info("world snapshot restored",
		zap.Int64("snapshot_id", snapID),
		zap.Int("entities", len(order)))
	return len(order), nil
}
