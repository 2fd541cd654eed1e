package store

import (
	"database/sql"
	"fmt"

	"github.com/thinktide/timeaccount/internal/model"
)

// CreateCustomer validates and inserts a customer, assigning a ULID
// when the id is empty.
func (s *Store) CreateCustomer(c model.Customer) (*model.Customer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.ID == "" {
		c.ID = model.NewULID()
	}

	_, err := s.db.Exec(
		`INSERT INTO customers (id, name, email, phone, billing_contact, billing_email, billing_phone)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Email, c.Phone, c.BillingContact, c.BillingEmail, c.BillingPhone,
	)
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return &c, nil
}

// GetCustomer returns the customer with the given id, or nil when it
// does not exist.
func (s *Store) GetCustomer(id string) (*model.Customer, error) {
	row := s.db.QueryRow(
		`SELECT id, name, email, phone, billing_contact, billing_email, billing_phone
		 FROM customers WHERE id = ?`, id)
	c, err := scanCustomer(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get customer %s: %w", id, err)
	}
	return c, nil
}

// GetCustomerByName looks a customer up by display name, the key
// reports group on.
func (s *Store) GetCustomerByName(name string) (*model.Customer, error) {
	row := s.db.QueryRow(
		`SELECT id, name, email, phone, billing_contact, billing_email, billing_phone
		 FROM customers WHERE name = ?`, name)
	c, err := scanCustomer(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get customer %q: %w", name, err)
	}
	return c, nil
}

// UpdateCustomer rewrites the stored customer identified by c.ID.
func (s *Store) UpdateCustomer(c model.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	res, err := s.db.Exec(
		`UPDATE customers SET name = ?, email = ?, phone = ?, billing_contact = ?, billing_email = ?, billing_phone = ?
		 WHERE id = ?`,
		c.Name, c.Email, c.Phone, c.BillingContact, c.BillingEmail, c.BillingPhone, c.ID,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("customer %s not found", c.ID)
	}
	return nil
}

// DeleteCustomer removes a customer record. Entries referencing the
// customer keep their display name; they are not rewritten.
func (s *Store) DeleteCustomer(id string) error {
	res, err := s.db.Exec(`DELETE FROM customers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("customer %s not found", id)
	}
	return nil
}

// ListCustomers returns all customers in insertion order.
func (s *Store) ListCustomers() ([]model.Customer, error) {
	rows, err := s.db.Query(
		`SELECT id, name, email, phone, billing_contact, billing_email, billing_phone
		 FROM customers ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []model.Customer
	for rows.Next() {
		c, err := scanCustomer(rows.Scan)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *c)
	}
	return customers, rows.Err()
}

func scanCustomer(scan func(...any) error) (*model.Customer, error) {
	var c model.Customer
	if err := scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.BillingContact, &c.BillingEmail, &c.BillingPhone); err != nil {
		return nil, err
	}
	return &c, nil
}
