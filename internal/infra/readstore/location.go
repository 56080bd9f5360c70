package readstore

import (
	"context"

	"riide-backend/internal/infra"
	"riide-backend/internal/infra/db"
	"riide-backend/internal/usecase/queries"
)

type LocationReadStore struct {
	db db.DBTX
}

func NewLocationReadStore(dbtx db.DBTX) *LocationReadStore {
	return &LocationReadStore{db: dbtx}
}

func (r *LocationReadStore) List(ctx context.Context) ([]*queries.LocationView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, address, type, popular FROM locations ORDER BY popular DESC, name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list locations", err)
	}
	defer rows.Close()

	views := make([]*queries.LocationView, 0)
	for rows.Next() {
		var v queries.LocationView
		if err := rows.Scan(&v.ID, &v.Name, &v.Address, &v.Type, &v.Popular); err != nil {
			return nil, infra.WrapRepoErr("failed to scan location", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate locations", err)
	}
	return views, nil
}
