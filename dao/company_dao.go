// dao/company_dao.go
package dao

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/kada-connect/api/audit"
	kada_errors "github.com/kada-connect/api/errors"
	logger "github.com/kada-connect/api/logging"
	"github.com/kada-connect/api/model"
)

type CompanyDAO struct {
	Pool         *pgxpool.Pool
	AuditService audit.Service
}

func NewCompanyDAO(pool *pgxpool.Pool, auditService audit.Service) *CompanyDAO {
	dao := &CompanyDAO{Pool: pool, AuditService: auditService}
	ctx := context.Background()
	if err := dao.EnsureSchema(ctx); err != nil {
		logger.Fatal("Failed to ensure companies schema", zap.Error(err))
	}
	return dao
}

func (dao *CompanyDAO) EnsureSchema(ctx context.Context) error {
	_, err := dao.Pool.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS companies (
            id          UUID PRIMARY KEY,
            name        TEXT NOT NULL,
            industry    TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            location    TEXT NOT NULL DEFAULT '',
            website     TEXT NOT NULL DEFAULT '',
            logo_url    TEXT NOT NULL DEFAULT '',
            owner_id    TEXT NOT NULL DEFAULT '',
            created_at  TIMESTAMPTZ NOT NULL,
            updated_at  TIMESTAMPTZ NOT NULL
        )`)
	if err != nil {
		logger.Error("Failed to ensure companies table", zap.Error(err))
		return err
	}
	return nil
}

func (dao *CompanyDAO) CreateCompany(ctx context.Context, company model.Company) (string, error) {
	start := time.Now()
	logger.Info("Creating new company", zap.String("name", company.Name))

	if company.ID == "" {
		company.ID = uuid.New().String()
	}

	_, err := dao.Pool.Exec(ctx, `
        INSERT INTO companies (id, name, industry, description, location, website, logo_url, owner_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		company.ID, company.Name, company.Industry, company.Description, company.Location,
		company.Website, company.LogoURL, company.OwnerID, company.CreatedAt, company.UpdatedAt)

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create company",
			zap.Error(err),
			zap.String("name", company.Name),
			zap.Duration("duration", duration))
		return "", kada_errors.ErrDatabaseOperation
	}

	logger.Info("Company created successfully",
		zap.String("companyID", company.ID),
		zap.Duration("duration", duration))

	dao.logAudit(ctx, company.OwnerID, "create", company.ID, company)
	return company.ID, nil
}

func (dao *CompanyDAO) UpdateCompany(ctx context.Context, company model.Company) (*model.Company, error) {
	start := time.Now()
	logger.Info("Updating company", zap.String("companyID", company.ID))

	tag, err := dao.Pool.Exec(ctx, `
        UPDATE companies
        SET name = $2, industry = $3, description = $4, location = $5,
            website = $6, logo_url = $7, updated_at = $8
        WHERE id = $1`,
		company.ID, company.Name, company.Industry, company.Description,
		company.Location, company.Website, company.LogoURL, company.UpdatedAt)

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to update company",
			zap.Error(err),
			zap.String("companyID", company.ID),
			zap.Duration("duration", duration))
		return nil, kada_errors.ErrDatabaseOperation
	}
	if tag.RowsAffected() == 0 {
		return nil, kada_errors.ErrCompanyNotFound
	}

	updated, err := dao.GetCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}

	logger.Info("Company updated successfully",
		zap.String("companyID", company.ID),
		zap.Duration("duration", duration))

	dao.logAudit(ctx, company.OwnerID, "update", company.ID, updated)
	return updated, nil
}

func (dao *CompanyDAO) DeleteCompany(ctx context.Context, companyID string) error {
	tag, err := dao.Pool.Exec(ctx, `DELETE FROM companies WHERE id = $1`, companyID)
	if err != nil {
		logger.Error("Failed to delete company", zap.Error(err), zap.String("companyID", companyID))
		return kada_errors.ErrDatabaseOperation
	}
	if tag.RowsAffected() == 0 {
		return kada_errors.ErrCompanyNotFound
	}

	logger.Info("Company deleted successfully", zap.String("companyID", companyID))
	dao.logAudit(ctx, "", "delete", companyID, nil)
	return nil
}

func (dao *CompanyDAO) GetCompany(ctx context.Context, companyID string) (*model.Company, error) {
	row := dao.Pool.QueryRow(ctx, `
        SELECT id, name, industry, description, location, website, logo_url, owner_id, created_at, updated_at
        FROM companies WHERE id = $1`, companyID)

	var company model.Company
	err := row.Scan(&company.ID, &company.Name, &company.Industry, &company.Description,
		&company.Location, &company.Website, &company.LogoURL, &company.OwnerID,
		&company.CreatedAt, &company.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, kada_errors.ErrCompanyNotFound
	}
	if err != nil {
		logger.Error("Failed to get company", zap.Error(err), zap.String("companyID", companyID))
		return nil, kada_errors.ErrDatabaseOperation
	}

	return &company, nil
}

func (dao *CompanyDAO) ListCompanies(ctx context.Context, limit, offset int) ([]*model.Company, error) {
	rows, err := dao.Pool.Query(ctx, `
        SELECT id, name, industry, description, location, website, logo_url, owner_id, created_at, updated_at
        FROM companies ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		logger.Error("Failed to list companies", zap.Error(err))
		return nil, kada_errors.ErrDatabaseOperation
	}
	defer rows.Close()

	return scanCompanies(rows)
}

// ListAllCompanies returns the entire collection; used by popularity ranking
// which counts industry references across all profiles.
func (dao *CompanyDAO) ListAllCompanies(ctx context.Context) ([]model.Company, error) {
	rows, err := dao.Pool.Query(ctx, `
        SELECT id, name, industry, description, location, website, logo_url, owner_id, created_at, updated_at
        FROM companies ORDER BY created_at`)
	if err != nil {
		logger.Error("Failed to list all companies", zap.Error(err))
		return nil, kada_errors.ErrDatabaseOperation
	}
	defer rows.Close()

	companies, err := scanCompanies(rows)
	if err != nil {
		return nil, err
	}
	out := make([]model.Company, len(companies))
	for i, c := range companies {
		out[i] = *c
	}
	return out, nil
}

func (dao *CompanyDAO) SearchCompanies(ctx context.Context, query string, limit, offset int) ([]*model.Company, error) {
	pattern := "%" + query + "%"
	rows, err := dao.Pool.Query(ctx, `
        SELECT id, name, industry, description, location, website, logo_url, owner_id, created_at, updated_at
        FROM companies
        WHERE name ILIKE $1 OR industry ILIKE $1 OR location ILIKE $1
        ORDER BY created_at DESC LIMIT $2 OFFSET $3`, pattern, limit, offset)
	if err != nil {
		logger.Error("Failed to search companies", zap.Error(err), zap.String("query", query))
		return nil, kada_errors.ErrDatabaseOperation
	}
	defer rows.Close()

	return scanCompanies(rows)
}

func scanCompanies(rows pgx.Rows) ([]*model.Company, error) {
	var companies []*model.Company
	for rows.Next() {
		var company model.Company
		if err := rows.Scan(&company.ID, &company.Name, &company.Industry, &company.Description,
			&company.Location, &company.Website, &company.LogoURL, &company.OwnerID,
			&company.CreatedAt, &company.UpdatedAt); err != nil {
			return nil, kada_errors.ErrDatabaseOperation
		}
		companies = append(companies, &company)
	}
	if err := rows.Err(); err != nil {
		return nil, kada_errors.ErrDatabaseOperation
	}
	return companies, nil
}

func (dao *CompanyDAO) logAudit(ctx context.Context, actorID, action, companyID string, payload interface{}) {
	if dao.AuditService == nil {
		return
	}
	var details json.RawMessage
	if payload != nil {
		details, _ = json.Marshal(payload)
	}
	auditLog := audit.AuditLog{
		Timestamp:  time.Now(),
		ActorID:    actorID,
		Action:     action,
		Resource:   "company",
		ResourceID: companyID,
		Success:    true,
		Details:    details,
	}
	if err := dao.AuditService.LogAction(ctx, auditLog); err != nil {
		logger.Warn("Failed to write audit log", zap.Error(err), zap.String("companyID", companyID))
	}
}
