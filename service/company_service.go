// service/company_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kada-connect/api/dao"
	kada_errors "github.com/kada-connect/api/errors"
	logger "github.com/kada-connect/api/logging"
	"github.com/kada-connect/api/model"
	"github.com/kada-connect/api/rbac"
	"github.com/kada-connect/api/util"
)

// ICompanyService defines the interface for company operations
type ICompanyService interface {
	CreateCompany(ctx context.Context, company model.Company, creatorID, creatorRole string) (*model.Company, error)
	UpdateCompany(ctx context.Context, company model.Company, updaterID, updaterRole string) (*model.Company, error)
	DeleteCompany(ctx context.Context, companyID, deleterID, deleterRole string) error
	GetCompany(ctx context.Context, companyID string) (*model.Company, error)
	ListCompanies(ctx context.Context, limit, offset int) ([]*model.Company, error)
	SearchCompanies(ctx context.Context, query string, limit, offset int) ([]*model.Company, error)
}

// CompanyService handles business logic for company operations
type CompanyService struct {
	companyDAO      *dao.CompanyDAO
	validationUtil  *util.ValidationUtil
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ ICompanyService = &CompanyService{}

// NewCompanyService creates a new instance of CompanyService
func NewCompanyService(companyDAO *dao.CompanyDAO, validationUtil *util.ValidationUtil, cacheService *util.CacheService, notificationSvc *util.NotificationService, eventBus *util.EventBus) *CompanyService {
	service := &CompanyService{
		companyDAO:      companyDAO,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	// Set up event subscriptions
	eventBus.Subscribe("company.created", service.handleCompanyCreated)
	eventBus.Subscribe("company.updated", service.handleCompanyUpdated)
	eventBus.Subscribe("company.deleted", service.handleCompanyDeleted)

	return service
}

func (s *CompanyService) handleCompanyCreated(ctx context.Context, event util.Event) error {
	company := event.Payload.(model.Company)
	logger.Info("Company created event received", zap.String("companyID", company.ID))

	if err := s.notificationSvc.NotifyCompanyChange(ctx, "created", company); err != nil {
		logger.Warn("Failed to send company creation notification", zap.Error(err), zap.String("companyID", company.ID))
	}
	return nil
}

func (s *CompanyService) handleCompanyUpdated(ctx context.Context, event util.Event) error {
	company := event.Payload.(model.Company)
	logger.Info("Company updated event received", zap.String("companyID", company.ID))

	if err := s.notificationSvc.NotifyCompanyChange(ctx, "updated", company); err != nil {
		logger.Warn("Failed to send company update notification", zap.Error(err), zap.String("companyID", company.ID))
	}
	return nil
}

func (s *CompanyService) handleCompanyDeleted(ctx context.Context, event util.Event) error {
	companyID := event.Payload.(string)
	logger.Info("Company deleted event received", zap.String("companyID", companyID))

	if err := s.notificationSvc.NotifyCompanyChange(ctx, "deleted", model.Company{ID: companyID}); err != nil {
		logger.Warn("Failed to send company deletion notification", zap.Error(err), zap.String("companyID", companyID))
	}
	return nil
}

// CreateCompany handles the creation of a new company
func (s *CompanyService) CreateCompany(ctx context.Context, company model.Company, creatorID, creatorRole string) (*model.Company, error) {
	if !rbac.HasPermission(creatorRole, rbac.ResourceCompany, rbac.ActionCreate, rbac.Context{UserID: creatorID}) {
		return nil, kada_errors.ErrForbidden
	}
	if err := s.validationUtil.ValidateCompany(company); err != nil {
		return nil, fmt.Errorf("%w: %v", kada_errors.ErrInvalidCompanyData, err)
	}

	company.OwnerID = creatorID
	company.CreatedAt = time.Now()
	company.UpdatedAt = time.Now()

	companyID, err := s.companyDAO.CreateCompany(ctx, company)
	if err != nil {
		logger.Error("Error creating company", zap.Error(err), zap.String("creatorID", creatorID))
		return nil, err
	}

	company.ID = companyID

	// Update cache
	if err := s.cacheService.SetCompany(ctx, company); err != nil {
		logger.Warn("Failed to cache company", zap.Error(err), zap.String("companyID", companyID))
	}

	// Publish event for asynchronous processing
	s.eventBus.Publish(ctx, "company.created", company)

	logger.Info("Company created successfully", zap.String("companyID", companyID), zap.String("creatorID", creatorID))
	return &company, nil
}

// UpdateCompany handles updates to an existing company
func (s *CompanyService) UpdateCompany(ctx context.Context, company model.Company, updaterID, updaterRole string) (*model.Company, error) {
	existing, err := s.companyDAO.GetCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}
	if !rbac.HasPermission(updaterRole, rbac.ResourceCompany, rbac.ActionUpdate, rbac.Context{UserID: updaterID, OwnerID: existing.OwnerID}) {
		return nil, kada_errors.ErrForbidden
	}
	if err := s.validationUtil.ValidateCompany(company); err != nil {
		return nil, fmt.Errorf("%w: %v", kada_errors.ErrInvalidCompanyData, err)
	}

	company.OwnerID = existing.OwnerID
	company.UpdatedAt = time.Now()

	updatedCompany, err := s.companyDAO.UpdateCompany(ctx, company)
	if err != nil {
		logger.Error("Error updating company", zap.Error(err), zap.String("companyID", company.ID), zap.String("updaterID", updaterID))
		return nil, err
	}

	// Update cache
	if err := s.cacheService.SetCompany(ctx, *updatedCompany); err != nil {
		logger.Warn("Failed to update company in cache", zap.Error(err), zap.String("companyID", company.ID))
	}

	// Publish event for asynchronous processing
	s.eventBus.Publish(ctx, "company.updated", *updatedCompany)

	logger.Info("Company updated successfully", zap.String("companyID", company.ID), zap.String("updaterID", updaterID))
	return updatedCompany, nil
}

// DeleteCompany handles the deletion of a company
func (s *CompanyService) DeleteCompany(ctx context.Context, companyID, deleterID, deleterRole string) error {
	existing, err := s.companyDAO.GetCompany(ctx, companyID)
	if err != nil {
		return err
	}
	if !rbac.HasPermission(deleterRole, rbac.ResourceCompany, rbac.ActionDelete, rbac.Context{UserID: deleterID, OwnerID: existing.OwnerID}) {
		return kada_errors.ErrForbidden
	}

	if err := s.companyDAO.DeleteCompany(ctx, companyID); err != nil {
		logger.Error("Error deleting company", zap.Error(err), zap.String("companyID", companyID), zap.String("deleterID", deleterID))
		return err
	}

	// Remove from cache
	if err := s.cacheService.DeleteCompany(ctx, companyID); err != nil {
		logger.Warn("Failed to delete company from cache", zap.Error(err), zap.String("companyID", companyID))
	}

	// Publish event for asynchronous processing
	s.eventBus.Publish(ctx, "company.deleted", companyID)

	logger.Info("Company deleted successfully", zap.String("companyID", companyID), zap.String("deleterID", deleterID))
	return nil
}

// GetCompany retrieves a company by its ID
func (s *CompanyService) GetCompany(ctx context.Context, companyID string) (*model.Company, error) {
	// Try to get from cache first
	cachedCompany, err := s.cacheService.GetCompany(ctx, companyID)
	if err == nil && cachedCompany != nil {
		return cachedCompany, nil
	}

	company, err := s.companyDAO.GetCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, kada_errors.ErrCompanyNotFound) {
			return nil, kada_errors.ErrCompanyNotFound
		}
		logger.Error("Error retrieving company", zap.Error(err), zap.String("companyID", companyID))
		return nil, kada_errors.ErrInternalServer
	}

	// Update cache
	if err := s.cacheService.SetCompany(ctx, *company); err != nil {
		logger.Warn("Failed to cache company", zap.Error(err), zap.String("companyID", companyID))
	}

	return company, nil
}

// ListCompanies retrieves companies with pagination
func (s *CompanyService) ListCompanies(ctx context.Context, limit, offset int) ([]*model.Company, error) {
	companies, err := s.companyDAO.ListCompanies(ctx, limit, offset)
	if err != nil {
		logger.Error("Error listing companies", zap.Error(err), zap.Int("limit", limit), zap.Int("offset", offset))
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	return companies, nil
}

// SearchCompanies searches for companies based on a query string
func (s *CompanyService) SearchCompanies(ctx context.Context, query string, limit, offset int) ([]*model.Company, error) {
	trimmed, err := s.validationUtil.ValidateSearchQuery(query)
	if err != nil {
		return nil, kada_errors.ErrInvalidSearchQuery
	}

	companies, err := s.companyDAO.SearchCompanies(ctx, trimmed, limit, offset)
	if err != nil {
		logger.Error("Error searching companies", zap.Error(err), zap.String("query", trimmed))
		return nil, fmt.Errorf("failed to search companies: %w", err)
	}

	return companies, nil
}
