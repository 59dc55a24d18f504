package repository

import (
	"context"
	"fmt"

	"spam_detector/internal/model"

	"github.com/jackc/pgx/v5"
)

// ContactRepository defines operations for contact book data
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
	CreateAll(ctx context.Context, contacts []*model.Contact) error
	FindByOwner(ctx context.Context, ownerID int) ([]model.Contact, error)
	FindUnregisteredByNameContains(ctx context.Context, query string) ([]model.Contact, error)
	FindByPhone(ctx context.Context, phone string) ([]model.Contact, error)
	ExistsForOwnerAndPhone(ctx context.Context, ownerID int, phone string) (bool, error)
}

type contactRepository struct {
	db DB
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db DB) ContactRepository {
	return &contactRepository{db: db}
}

const insertContactSQL = `INSERT INTO contacts (user_id, name, phone_number, created_at)
            VALUES ($1, $2, $3, $4) RETURNING id`

// Create inserts a single contact
func (r *contactRepository) Create(ctx context.Context, c *model.Contact) error {
	err := r.db.QueryRow(ctx, insertContactSQL, c.UserID, c.Name, c.PhoneNumber, c.CreatedAt).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("contact %s for user %d: %w", c.PhoneNumber, c.UserID, ErrDuplicate)
		}
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

// CreateAll inserts all contacts in one transaction; either every entry is
// persisted or none is.
func (r *contactRepository) CreateAll(ctx context.Context, contacts []*model.Contact) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, c := range contacts {
		if err := tx.QueryRow(ctx, insertContactSQL, c.UserID, c.Name, c.PhoneNumber, c.CreatedAt).Scan(&c.ID); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("contact %s for user %d: %w", c.PhoneNumber, c.UserID, ErrDuplicate)
			}
			return fmt.Errorf("failed to create contact in batch: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit contact batch: %w", err)
	}
	return nil
}

// FindByOwner retrieves all contacts saved by one user
func (r *contactRepository) FindByOwner(ctx context.Context, ownerID int) ([]model.Contact, error) {
	sql := `SELECT id, user_id, name, phone_number, created_at FROM contacts
            WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, sql, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts by owner: %w", err)
	}
	defer rows.Close()
	return scanContacts(rows)
}

// FindUnregisteredByNameContains retrieves contacts whose name contains the
// query, case-insensitively, skipping any phone number that belongs to a
// registered user. Registered records take precedence in search results.
func (r *contactRepository) FindUnregisteredByNameContains(ctx context.Context, query string) ([]model.Contact, error) {
	sql := `SELECT id, user_id, name, phone_number, created_at FROM contacts
            WHERE name ILIKE '%' || $1 || '%' ESCAPE '\'
              AND phone_number NOT IN (SELECT phone_number FROM users)`
	rows, err := r.db.Query(ctx, sql, escapeLike(query))
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts by name: %w", err)
	}
	defer rows.Close()
	return scanContacts(rows)
}

// FindByPhone retrieves every contact entry for a phone number, across all
// owners, in id order.
func (r *contactRepository) FindByPhone(ctx context.Context, phone string) ([]model.Contact, error) {
	sql := `SELECT id, user_id, name, phone_number, created_at FROM contacts
            WHERE phone_number = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, sql, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts by phone: %w", err)
	}
	defer rows.Close()
	return scanContacts(rows)
}

// ExistsForOwnerAndPhone reports whether ownerID has saved phone as a
// contact. Used for the mutual-contact email disclosure check.
func (r *contactRepository) ExistsForOwnerAndPhone(ctx context.Context, ownerID int, phone string) (bool, error) {
	var exists bool
	sql := `SELECT EXISTS (SELECT 1 FROM contacts WHERE user_id = $1 AND phone_number = $2)`
	if err := r.db.QueryRow(ctx, sql, ownerID, phone).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check contact existence: %w", err)
	}
	return exists, nil
}

func scanContacts(rows pgx.Rows) ([]model.Contact, error) {
	var contacts []model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.PhoneNumber, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact rows: %w", err)
	}
	return contacts, nil
}
