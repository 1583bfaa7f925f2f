package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"civic-notify/internal/broadcast/repository"
	"civic-notify/internal/model"
	"civic-notify/pkg/paginator"
)

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Broadcast, error) {
	b := opts.Broadcast
	if b.CreatedAt.IsZero() {
		b.CreatedAt = r.clock()
	}

	ids, err := json.Marshal(b.RecipientIDs)
	if err != nil {
		r.l.Errorf(ctx, "internal.broadcast.repository.sqlite.Create.Marshal: %v", err)
		return model.Broadcast{}, err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO broadcasts(id, title, body, zone, category, priority, created_at, recipient_count, recipient_ids)
		 VALUES(?,?,?,?,?,?,?,?,?)`,
		b.ID, b.Title, b.Body, string(b.Zone), string(b.Category), string(b.Priority),
		b.CreatedAt.Format(time.RFC3339Nano), b.RecipientCount, string(ids),
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.broadcast.repository.sqlite.Create.Insert: %v", err)
		return model.Broadcast{}, err
	}

	return b, nil
}

func (r *implRepository) Get(ctx context.Context, opts repository.GetOptions) ([]model.Broadcast, paginator.Paginator, error) {
	where := ""
	args := []any{}
	if opts.Filter.Zone != "" && !opts.Filter.Zone.IsWildcard() {
		where = " WHERE zone = ?"
		args = append(args, string(opts.Filter.Zone))
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM broadcasts"+where, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "internal.broadcast.repository.sqlite.Get.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	opts.PaginateQuery.Adjust()
	query := "SELECT id, title, body, zone, category, priority, created_at, recipient_count, recipient_ids FROM broadcasts" +
		where + " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, opts.PaginateQuery.Limit, opts.PaginateQuery.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.broadcast.repository.sqlite.Get.Query: %v", err)
		return nil, paginator.Paginator{}, err
	}
	defer rows.Close()

	var res []model.Broadcast
	for rows.Next() {
		b, err := scanBroadcast(rows)
		if err != nil {
			r.l.Errorf(ctx, "internal.broadcast.repository.sqlite.Get.scan: %v", err)
			return nil, paginator.Paginator{}, err
		}
		res = append(res, b)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.broadcast.repository.sqlite.Get.rows: %v", err)
		return nil, paginator.Paginator{}, err
	}

	pag := paginator.Paginator{
		Total:       total,
		Count:       int64(len(res)),
		PerPage:     opts.PaginateQuery.Limit,
		CurrentPage: opts.PaginateQuery.Page,
	}

	return res, pag, nil
}

func (r *implRepository) Detail(ctx context.Context, id string) (model.Broadcast, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, body, zone, category, priority, created_at, recipient_count, recipient_ids
		 FROM broadcasts WHERE id = ?`, id)

	b, err := scanBroadcast(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Broadcast{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.broadcast.repository.sqlite.Detail.scan: %v", err)
		return model.Broadcast{}, err
	}

	return b, nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM broadcasts WHERE id = ?", id)
	if err != nil {
		r.l.Errorf(ctx, "internal.broadcast.repository.sqlite.Delete.Exec: %v", err)
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.broadcast.repository.sqlite.Delete.RowsAffected: %v", err)
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBroadcast(row rowScanner) (model.Broadcast, error) {
	var (
		b         model.Broadcast
		zone      string
		category  string
		priority  string
		createdAt string
		ids       string
	)
	if err := row.Scan(&b.ID, &b.Title, &b.Body, &zone, &category, &priority, &createdAt, &b.RecipientCount, &ids); err != nil {
		return model.Broadcast{}, err
	}

	b.Zone = model.Zone(zone)
	b.Category = model.Category(category)
	b.Priority = model.Priority(priority)

	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return model.Broadcast{}, err
	}
	b.CreatedAt = ts

	if err := json.Unmarshal([]byte(ids), &b.RecipientIDs); err != nil {
		return model.Broadcast{}, err
	}

	return b, nil
}
