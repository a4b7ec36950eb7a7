// util/cache_service.go

package util

import (
	"context"

	"github.com/kada-connect/api/db"
	"github.com/kada-connect/api/model"
)

// CacheService is the redis-backed cache-aside layer for profile records.
type CacheService struct{}

func NewCacheService() *CacheService {
	return &CacheService{}
}

func (c *CacheService) GetCompany(ctx context.Context, companyID string) (*model.Company, error) {
	return db.GetCachedCompany(ctx, companyID)
}

func (c *CacheService) SetCompany(ctx context.Context, company model.Company) error {
	return db.CacheCompany(ctx, &company)
}

func (c *CacheService) DeleteCompany(ctx context.Context, companyID string) error {
	return db.DeleteCachedCompany(ctx, companyID)
}

func (c *CacheService) GetStudent(ctx context.Context, studentID string) (*model.Student, error) {
	return db.GetCachedStudent(ctx, studentID)
}

func (c *CacheService) SetStudent(ctx context.Context, student model.Student) error {
	return db.CacheStudent(ctx, &student)
}

func (c *CacheService) DeleteStudent(ctx context.Context, studentID string) error {
	return db.DeleteCachedStudent(ctx, studentID)
}
