package collection

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/takatrack/waste-monitoring/model"
)

type SQL struct {
	conn *sqlx.DB
}

type CollectionRepository interface {
	Create(ctx context.Context, req *model.CollectionEntity) (*model.CollectionEntity, error)
	ListByCollector(ctx context.Context, collectorID uint64) ([]model.CollectionEntity, error)
	List(ctx context.Context, filter *model.CollectionFilter) ([]model.CollectionEntity, error)
}

func NewCollectionRepository(conn *sqlx.DB) CollectionRepository {
	return &SQL{conn: conn}
}

const (
	insertCollectionQuery = `INSERT INTO collections
		(collector_id, site_name, waste_type, collection_date, total_volume, waste_separated,
		 organic_volume, inorganic_volume, collection_count, latitude, longitude, comments, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`
	listCollectionBase = `SELECT id, collector_id, site_name, waste_type, collection_date, total_volume,
		waste_separated, organic_volume, inorganic_volume, collection_count, latitude, longitude,
		comments, created_at, updated_at FROM collections WHERE true`
)

func (s *SQL) Create(ctx context.Context, data *model.CollectionEntity) (*model.CollectionEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertCollectionQuery,
		data.CollectorID, data.SiteName, data.WasteType, data.CollectionDate.Format("2006-01-02"),
		data.TotalVolume, data.WasteSeparated, data.OrganicVolume, data.InorganicVolume,
		data.CollectionCount, data.Latitude, data.Longitude, data.Comments)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) ListByCollector(ctx context.Context, collectorID uint64) ([]model.CollectionEntity, error) {
	query := listCollectionBase + " AND collector_id = ? ORDER BY collection_date DESC, id DESC"

	records := make([]model.CollectionEntity, 0)
	if err := s.conn.SelectContext(ctx, &records, query, collectorID); err != nil {
		return nil, err
	}
	return records, nil
}

// List applies the filter criteria conjunctively. A nil or empty filter
// returns every record. Decimal bounds are compared against the DECIMAL
// columns, so comparison is numeric rather than lexical.
func (s *SQL) List(ctx context.Context, filter *model.CollectionFilter) ([]model.CollectionEntity, error) {
	query, args := buildListQuery(filter)

	records := make([]model.CollectionEntity, 0)
	if err := s.conn.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, err
	}
	return records, nil
}

func buildListQuery(filter *model.CollectionFilter) (string, []any) {
	query := listCollectionBase
	args := make([]any, 0, 9)

	if filter != nil {
		if filter.SiteName != "" {
			query += ` AND site_name LIKE ? ESCAPE '\\'`
			args = append(args, "%"+escapeLike(filter.SiteName)+"%")
		}
		if filter.WasteType != "" {
			query += " AND waste_type = ?"
			args = append(args, filter.WasteType)
		}
		if filter.StartDate != nil {
			query += " AND collection_date >= ?"
			args = append(args, filter.StartDate.Format("2006-01-02"))
		}
		if filter.EndDate != nil {
			query += " AND collection_date <= ?"
			args = append(args, filter.EndDate.Format("2006-01-02"))
		}
		if filter.MinVolume != nil {
			query += " AND total_volume >= ?"
			args = append(args, *filter.MinVolume)
		}
		if filter.MaxVolume != nil {
			query += " AND total_volume <= ?"
			args = append(args, *filter.MaxVolume)
		}
		if filter.WasteSeparated != nil {
			query += " AND waste_separated = ?"
			args = append(args, *filter.WasteSeparated)
		}
		if filter.MinCollections != nil {
			query += " AND collection_count >= ?"
			args = append(args, *filter.MinCollections)
		}
		if filter.MinOrganicVolume != nil {
			query += " AND organic_volume >= ?"
			args = append(args, *filter.MinOrganicVolume)
		}
	}

	query += " ORDER BY collection_date DESC, id DESC"
	return query, args
}

// escapeLike neutralizes LIKE metacharacters in user input so a substring
// criterion cannot smuggle wildcard patterns into the query.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
