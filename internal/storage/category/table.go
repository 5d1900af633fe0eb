package category

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gofrs/uuid/v5"
)

// CategoriesTable provides access to the categories table.
type CategoriesTable struct {
	db *sql.DB
}

var _ ICategoryTable = (*CategoriesTable)(nil)

// NewCategoriesTable creates a CategoriesTable for the given database.
func NewCategoriesTable(db *sql.DB) *CategoriesTable {
	return &CategoriesTable{db: db}
}

const categoryColumns = `id, name, type, icon, color, description`

// FindByID retrieves a category by primary key. Returns nil when absent.
func (t *CategoriesTable) FindByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	row := t.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = ?`, id.String())
	return scanCategory(row)
}

// FindByName retrieves a category by its unique name. Returns nil when absent.
func (t *CategoriesTable) FindByName(ctx context.Context, name string) (*Category, error) {
	row := t.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE name = ?`, name)
	return scanCategory(row)
}

// Insert creates a new category and returns its generated ID.
func (t *CategoriesTable) Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	_, err = t.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, type, icon, color, description)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id.String(), create.Name, string(create.Type), create.Icon, create.Color, create.Description)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// List returns all categories ordered by name.
func (t *CategoriesTable) List(ctx context.Context) ([]*Category, error) {
	rows, err := t.db.QueryContext(ctx,
		`SELECT `+categoryColumns+` FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

// Update rewrites name and type. Returns nil when the category is absent.
func (t *CategoriesTable) Update(ctx context.Context, id uuid.UUID, update *CategoryUpdate) (*Category, error) {
	res, err := t.db.ExecContext(ctx,
		`UPDATE categories SET name = ?, type = ? WHERE id = ?`,
		update.Name, string(update.Type), id.String())
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}
	return t.FindByID(ctx, id)
}

// Delete removes a category and returns the removed record, nil when absent.
func (t *CategoriesTable) Delete(ctx context.Context, id uuid.UUID) (*Category, error) {
	existing, err := t.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}
	if _, err := t.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id.String()); err != nil {
		return nil, err
	}
	return existing, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(row rowScanner) (*Category, error) {
	var (
		idStr, typeStr string
		c              Category
	)
	err := row.Scan(&idStr, &c.Name, &typeStr, &c.Icon, &c.Color, &c.Description)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.ID, err = uuid.FromString(idStr)
	if err != nil {
		return nil, fmt.Errorf("parse category id: %w", err)
	}
	c.Type = CategoryType(typeStr)
	return &c, nil
}
