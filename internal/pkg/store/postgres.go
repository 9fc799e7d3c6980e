// Package store persists the current offer snapshot. Only the latest snapshot
// is kept; historical series are out of scope.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/wltan/sgfi-compare/internal/pkg/model"
	"go.uber.org/zap"
)

type Postgres struct {
	conn   *pgx.Conn
	logger *zap.Logger
}

func NewPostgres(conn *pgx.Conn, logger *zap.Logger) *Postgres {
	return &Postgres{conn: conn, logger: logger}
}

const insertOfferSQL = `
	INSERT INTO offers (
		tenure_months, rate, deposit_lower, deposit_upper,
		required_multiples, provider, product, fetched_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// ReplaceSnapshot swaps the stored snapshot for the given offers in one
// transaction, so readers never see a half-written table.
func (s *Postgres) ReplaceSnapshot(ctx context.Context, offers []model.Offer) error {
	tx, err := s.conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM offers`); err != nil {
		return fmt.Errorf("failed to clear previous snapshot: %w", err)
	}

	fetchedAt := time.Now().UTC()
	for _, o := range offers {
		var multiples interface{}
		if o.RequiredMultiples.Valid {
			multiples = o.RequiredMultiples.Decimal.String()
		}
		_, err := tx.Exec(ctx, insertOfferSQL,
			o.Tenure, o.Rate,
			o.DepositLowerBound.String(), o.DepositUpperBound.String(),
			multiples, string(o.Provider), o.Product, fetchedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert offer %s/%s: %w", o.Provider, o.Product, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	s.logger.Info("stored offer snapshot", zap.Int("offers", len(offers)))
	return nil
}
