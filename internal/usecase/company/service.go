package company

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	"job-portal/internal/access"
	"job-portal/internal/domain/company"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

type RegisterInput struct {
	Name        string
	Description string
	Website     string
	Location    string
	LogoURL     string
}

type UpdateInput struct {
	Name        *string
	Description *string
	Website     *string
	Location    *string
	LogoURL     *string
}

type Service struct {
	companies company.Repository
	logger    *log.Logger
}

func NewService(companies company.Repository, logger *log.Logger) *Service {
	return &Service{companies: companies, logger: logger}
}

func (s *Service) Register(ctx context.Context, sess *access.Session, in RegisterInput) (company.Company, error) {
	d := access.Authorize(sess, access.ActionCreateCompany, access.Resource{})
	if !d.Allowed {
		access.LogDenial(s.logger, sess, access.ActionCreateCompany, d)
		return company.Company{}, d.Err()
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return company.Company{}, ErrInvalidInput
	}

	c := company.Company{
		ID:          uuid.New(),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Website:     strings.TrimSpace(in.Website),
		Location:    strings.TrimSpace(in.Location),
		LogoURL:     strings.TrimSpace(in.LogoURL),
		OwnerID:     sess.UserID,
	}

	if err := s.companies.Create(ctx, c); err != nil {
		if errors.Is(err, company.ErrDuplicate) {
			return company.Company{}, company.ErrDuplicate
		}
		return company.Company{}, ErrInternal
	}

	return c, nil
}

func (s *Service) ListOwn(ctx context.Context, sess *access.Session) ([]company.Company, error) {
	d := access.Authorize(sess, access.ActionReadCompany, access.Resource{})
	if !d.Allowed {
		access.LogDenial(s.logger, sess, access.ActionReadCompany, d)
		return nil, d.Err()
	}

	out, err := s.companies.ListByOwner(ctx, sess.UserID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, sess *access.Session, id uuid.UUID) (company.Company, error) {
	c, err := s.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return company.Company{}, company.ErrNotFound
		}
		return company.Company{}, ErrInternal
	}

	d := access.Authorize(sess, access.ActionReadCompany, access.Resource{OwnerID: c.OwnerID, Owned: true})
	if !d.Allowed {
		access.LogDenial(s.logger, sess, access.ActionReadCompany, d)
		return company.Company{}, d.Err()
	}

	return c, nil
}

func (s *Service) Update(ctx context.Context, sess *access.Session, id uuid.UUID, in UpdateInput) (company.Company, error) {
	c, err := s.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return company.Company{}, company.ErrNotFound
		}
		return company.Company{}, ErrInternal
	}

	d := access.Authorize(sess, access.ActionUpdateCompany, access.Resource{OwnerID: c.OwnerID, Owned: true})
	if !d.Allowed {
		access.LogDenial(s.logger, sess, access.ActionUpdateCompany, d)
		return company.Company{}, d.Err()
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return company.Company{}, ErrInvalidInput
		}
		c.Name = name
	}
	if in.Description != nil {
		c.Description = strings.TrimSpace(*in.Description)
	}
	if in.Website != nil {
		c.Website = strings.TrimSpace(*in.Website)
	}
	if in.Location != nil {
		c.Location = strings.TrimSpace(*in.Location)
	}
	if in.LogoURL != nil {
		c.LogoURL = strings.TrimSpace(*in.LogoURL)
	}

	if err := s.companies.Update(ctx, c); err != nil {
		if errors.Is(err, company.ErrDuplicate) {
			return company.Company{}, company.ErrDuplicate
		}
		return company.Company{}, ErrInternal
	}

	return c, nil
}
