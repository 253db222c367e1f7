package repositories

import (
	"context"
	"fmt"
	"strings"

	intconfig "bookingplan/internal/config"
	intdb "bookingplan/internal/db"
	"bookingplan/internal/domain"
	"bookingplan/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

type AgencyRepo struct {
	DB *sqlx.DB
}

func (r AgencyRepo) db() *sqlx.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r AgencyRepo) Create(ctx context.Context, a models.Agency) (int64, error) {
	res, err := r.db().ExecContext(ctx, `
		INSERT INTO agencies (name, image, description, receptionist_user_id)
		VALUES (?, ?, ?, ?)
	`, a.Name, a.Image, a.Description, a.ReceptionistUserID)
	if err != nil {
		return 0, fmt.Errorf("insert agency: %w", err)
	}
	return res.LastInsertId()
}

func (r AgencyRepo) GetByID(ctx context.Context, id int64) (models.Agency, error) {
	var a models.Agency
	err := r.db().GetContext(ctx, &a,
		`SELECT id, name, image, description, receptionist_user_id FROM agencies WHERE id = ? LIMIT 1`, id)
	if err != nil {
		return models.Agency{}, fmt.Errorf("get agency %d: %w", id, err)
	}
	return a, nil
}

func (r AgencyRepo) List(ctx context.Context, page domain.Pagination) ([]models.Agency, error) {
	out := []models.Agency{}
	err := r.db().SelectContext(ctx, &out,
		`SELECT id, name, image, description, receptionist_user_id FROM agencies ORDER BY name ASC, id ASC LIMIT ? OFFSET ?`,
		page.Limit(), page.Offset(),
	)
	if err != nil {
		return nil, fmt.Errorf("list agencies: %w", err)
	}
	return out, nil
}

const accommodationColumns = `id, name, town, location, COALESCE(image, '') AS image,
	price_per_night, phone_number, type, COALESCE(room_type, '') AS room_type`

type AccommodationRepo struct {
	DB *sqlx.DB
}

func (r AccommodationRepo) db() *sqlx.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r AccommodationRepo) Create(ctx context.Context, a models.Accommodation) (int64, error) {
	res, err := r.db().ExecContext(ctx, `
		INSERT INTO accommodations (name, town, location, image, price_per_night, phone_number, type, room_type)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		a.Name,
		a.Town,
		a.Location,
		intdb.NullIfEmpty(a.Image),
		a.PricePerNight,
		a.PhoneNumber,
		a.Type,
		intdb.NullIfEmpty(a.RoomType),
	)
	if err != nil {
		return 0, fmt.Errorf("insert accommodation: %w", err)
	}
	return res.LastInsertId()
}

func (r AccommodationRepo) GetByID(ctx context.Context, id int64) (models.Accommodation, error) {
	var a models.Accommodation
	err := r.db().GetContext(ctx, &a, `SELECT `+accommodationColumns+` FROM accommodations WHERE id = ? LIMIT 1`, id)
	if err != nil {
		return models.Accommodation{}, fmt.Errorf("get accommodation %d: %w", id, err)
	}
	return a, nil
}

func (r AccommodationRepo) List(ctx context.Context, f models.AccommodationFilter) ([]models.Accommodation, error) {
	where := []string{"1=1"}
	args := []any{}
	if s := strings.TrimSpace(f.Type); s != "" {
		where = append(where, "type = ?")
		args = append(args, strings.ToLower(s))
	}
	if s := strings.TrimSpace(f.Town); s != "" {
		where = append(where, "town LIKE ?")
		args = append(args, "%"+s+"%")
	}
	args = append(args, f.Limit(), f.Offset())

	out := []models.Accommodation{}
	query := `SELECT ` + accommodationColumns + ` FROM accommodations WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY name ASC, id ASC LIMIT ? OFFSET ?`
	if err := r.db().SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("list accommodations: %w", err)
	}
	return out, nil
}

const destinationColumns = `id, name, description, city, COALESCE(popular_attractions, '') AS popular_attractions, image`

type DestinationRepo struct {
	DB *sqlx.DB
}

func (r DestinationRepo) db() *sqlx.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r DestinationRepo) Create(ctx context.Context, d models.Destination) (int64, error) {
	res, err := r.db().ExecContext(ctx, `
		INSERT INTO destinations (name, description, city, popular_attractions, image)
		VALUES (?, ?, ?, ?, ?)
	`, d.Name, d.Description, d.City, intdb.NullIfEmpty(d.PopularAttractions), d.Image)
	if err != nil {
		return 0, fmt.Errorf("insert destination: %w", err)
	}
	return res.LastInsertId()
}

func (r DestinationRepo) GetByID(ctx context.Context, id int64) (models.Destination, error) {
	var d models.Destination
	err := r.db().GetContext(ctx, &d, `SELECT `+destinationColumns+` FROM destinations WHERE id = ? LIMIT 1`, id)
	if err != nil {
		return models.Destination{}, fmt.Errorf("get destination %d: %w", id, err)
	}
	return d, nil
}

func (r DestinationRepo) List(ctx context.Context, page domain.Pagination) ([]models.Destination, error) {
	out := []models.Destination{}
	err := r.db().SelectContext(ctx, &out,
		`SELECT `+destinationColumns+` FROM destinations ORDER BY city ASC, id ASC LIMIT ? OFFSET ?`,
		page.Limit(), page.Offset(),
	)
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	return out, nil
}
