package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/teamsched/scheduler-backend/internal/db"
)

// Repository is the booking store. Every read returns bookings annotated with
// the resource display name and the project name and color, whatever the backend.
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, error)
	Update(ctx context.Context, b *Booking) error
	Delete(ctx context.Context, id string) error

	// ListOverlapping returns the resource's bookings sharing at least one day
	// with [start, end]. excludeID, when set, is left out.
	ListOverlapping(ctx context.Context, resourceID string, start, end time.Time, excludeID string) ([]*Booking, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func selectBookings() squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select(
		"b.id", "b.resource_id", "b.project_id", "b.start_date", "b.end_date",
		"b.hours_per_day", "b.booking_type", "b.leave_type", "b.notes",
		"b.created_at", "b.updated_at",
		"r.first_name || ' ' || r.last_name", "p.name", "p.color",
	).
		From("public.bookings b").
		Join("public.resources r ON b.resource_id = r.id").
		LeftJoin("public.projects p ON b.project_id = p.id")
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var (
		b         Booking
		typ       string
		leaveType *string
	)
	err := row.Scan(
		&b.ID, &b.ResourceID, &b.ProjectID, &b.StartDate, &b.EndDate,
		&b.HoursPerDay, &typ, &leaveType, &b.Notes,
		&b.CreatedAt, &b.UpdatedAt,
		&b.ResourceName, &b.ProjectName, &b.ProjectColor,
	)
	if err != nil {
		return nil, err
	}
	b.Type = Type(typ)
	if leaveType != nil {
		lt := LeaveType(*leaveType)
		b.LeaveType = &lt
	}
	return &b, nil
}

func collect(rows pgx.Rows) ([]*Booking, error) {
	defer rows.Close()

	var result []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		result = append(result, b)
	}
	return result, rows.Err()
}

func leaveTypeArg(lt *LeaveType) *string {
	if lt == nil {
		return nil
	}
	s := string(*lt)
	return &s
}

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		switch pgErr.ConstraintName {
		case "bookings_resource_id_fkey":
			return ErrResourceNotFound
		case "bookings_project_id_fkey":
			return ErrProjectNotFound
		}
	}
	return nil
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("resource_id", "project_id", "start_date", "end_date", "hours_per_day", "booking_type", "leave_type", "notes").
		Values(b.ResourceID, b.ProjectID, b.StartDate, b.EndDate, b.HoursPerDay, string(b.Type), leaveTypeArg(b.LeaveType), b.Notes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := db.Conn(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query, args, err := selectBookings().Where(squirrel.Eq{"b.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(db.Conn(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, error) {
	queryBuilder := selectBookings()

	if filter.ResourceID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"b.resource_id": filter.ResourceID})
	}
	if filter.ProjectID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"b.project_id": filter.ProjectID})
	}
	if filter.Type != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"b.booking_type": string(filter.Type)})
	}
	// Overlap: existing.start <= window.end AND existing.end >= window.start
	if filter.End != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"b.start_date": *filter.End})
	}
	if filter.Start != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"b.end_date": *filter.Start})
	}

	query, args, err := queryBuilder.OrderBy("b.start_date ASC", "b.created_at ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := db.Conn(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	return collect(rows)
}

func (r *pgxRepository) ListOverlapping(ctx context.Context, resourceID string, start, end time.Time, excludeID string) ([]*Booking, error) {
	queryBuilder := selectBookings().
		Where(squirrel.Eq{"b.resource_id": resourceID}).
		Where(squirrel.LtOrEq{"b.start_date": end}).
		Where(squirrel.GtOrEq{"b.end_date": start})

	if excludeID != "" {
		queryBuilder = queryBuilder.Where(squirrel.NotEq{"b.id": excludeID})
	}

	query, args, err := queryBuilder.OrderBy("b.start_date ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build overlapping bookings query failed: %w", err)
	}

	rows, err := db.Conn(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list overlapping bookings failed: %w", err)
	}
	return collect(rows)
}

func (r *pgxRepository) Update(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("resource_id", b.ResourceID).
		Set("project_id", b.ProjectID).
		Set("start_date", b.StartDate).
		Set("end_date", b.EndDate).
		Set("hours_per_day", b.HoursPerDay).
		Set("booking_type", string(b.Type)).
		Set("leave_type", leaveTypeArg(b.LeaveType)).
		Set("notes", b.Notes).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": b.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query failed: %w", err)
	}

	if err := db.Conn(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&b.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("update booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete booking query failed: %w", err)
	}

	ct, err := db.Conn(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
