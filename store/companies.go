package store

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"attarshop/domain"
)

// CompanyStore owns the supplier name register. Companies are labels
// only: oils copy the name as a string, so removing a company leaves
// existing oils untouched.
type CompanyStore struct {
	mu        sync.RWMutex
	companies []domain.Company
}

// NewCompanyStore constructs an empty CompanyStore.
func NewCompanyStore() *CompanyStore {
	return &CompanyStore{}
}

// Add registers a new company name and returns the created record.
func (s *CompanyStore) Add(ctx context.Context, name string) (domain.Company, error) {
	if err := ctx.Err(); err != nil {
		return domain.Company{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Company{}, errors.New("company name cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := domain.Company{ID: uuid.NewString(), Name: name}
	s.companies = append(s.companies, c)
	return c, nil
}

// Remove deletes the company with the given ID. Removing an absent ID
// is a no-op, matching the register's confirm-then-remove UI.
func (s *CompanyStore) Remove(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.companies {
		if c.ID == id {
			s.companies = append(s.companies[:i], s.companies[i+1:]...)
			return nil
		}
	}
	return nil
}

// List returns all companies in insertion order.
func (s *CompanyStore) List(ctx context.Context) ([]domain.Company, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Company, len(s.companies))
	copy(out, s.companies)
	return out, nil
}

// Replace swaps the whole collection, used when loading a snapshot.
func (s *CompanyStore) Replace(companies []domain.Company) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.companies = make([]domain.Company, len(companies))
	copy(s.companies, companies)
}
