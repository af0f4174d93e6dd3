// repository/car/carRepository.go
package car

import (
	"context"
	"fmt"
	"strings"

	"github.com/Fahadd2/GearUp/model"
	"github.com/Fahadd2/GearUp/util/database"
)

// UpdateFields carries the partial PUT /cars/{id} payload; nil means untouched.
type UpdateFields struct {
	Brand        *string
	Model        *string
	Year         *int
	Category     *string
	Transmission *string
	PricePerDay  *float64
	Status       *string
}

func (f UpdateFields) Empty() bool {
	return f.Brand == nil && f.Model == nil && f.Year == nil &&
		f.Category == nil && f.Transmission == nil && f.PricePerDay == nil && f.Status == nil
}

type Repo interface {
	List(ctx context.Context, f model.CarFilter) ([]model.Car, error)
	Exists(ctx context.Context, carID string) (bool, error)
	Update(ctx context.Context, carID string, f UpdateFields) error
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db: db} }

func (r *repo) List(ctx context.Context, f model.CarFilter) ([]model.Car, error) {
	q := `
		SELECT car_id, plate_no, brand, model, year, category, fuel_type, color,
		       seats, transmission, price_per_day, status, COALESCE(photo_url,''), created_at
		FROM cars
		WHERE 1=1`
	var args []any

	if f.Category != "" {
		args = append(args, f.Category)
		q += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if f.Seats > 0 {
		args = append(args, f.Seats)
		q += fmt.Sprintf(" AND seats >= $%d", len(args))
	}
	if f.Transmission != "" {
		args = append(args, f.Transmission)
		q += fmt.Sprintf(" AND transmission = $%d", len(args))
	}
	if f.MinPrice != nil {
		args = append(args, *f.MinPrice)
		q += fmt.Sprintf(" AND price_per_day >= $%d", len(args))
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		q += fmt.Sprintf(" AND price_per_day <= $%d", len(args))
	}
	q += " ORDER BY price_per_day, brand, model"

	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Car
	for rows.Next() {
		var c model.Car
		if err := rows.Scan(
			&c.ID, &c.PlateNo, &c.Brand, &c.Model, &c.Year, &c.Category, &c.FuelType,
			&c.Color, &c.Seats, &c.Transmission, &c.PricePerDay, &c.Status, &c.PhotoURL, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *repo) Exists(ctx context.Context, carID string) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM cars WHERE car_id = $1)`, carID,
	).Scan(&exists)
	return exists, err
}

func (r *repo) Update(ctx context.Context, carID string, f UpdateFields) error {
	var sets []string
	args := []any{carID}

	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if f.Brand != nil {
		add("brand", *f.Brand)
	}
	if f.Model != nil {
		add("model", *f.Model)
	}
	if f.Year != nil {
		add("year", *f.Year)
	}
	if f.Category != nil {
		add("category", *f.Category)
	}
	if f.Transmission != nil {
		add("transmission", *f.Transmission)
	}
	if f.PricePerDay != nil {
		add("price_per_day", *f.PricePerDay)
	}
	if f.Status != nil {
		add("status", *f.Status)
	}

	q := fmt.Sprintf("UPDATE cars SET %s WHERE car_id = $1", strings.Join(sets, ", "))
	_, err := r.db.Pool.Exec(ctx, q, args...)
	return err
}
