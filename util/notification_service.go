// util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/kada-connect/api/logging"
	"github.com/kada-connect/api/model"
)

type NotificationService struct {
	// Placeholder for a message queue client once one is introduced
}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (n *NotificationService) NotifyCompanyChange(ctx context.Context, changeType string, company model.Company) error {
	switch changeType {
	case "created", "updated", "deleted":
		logger.Info("NOTIFICATION: Company "+changeType,
			zap.String("companyID", company.ID),
			zap.String("companyName", company.Name))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}
	return nil
}

func (n *NotificationService) NotifyStudentChange(ctx context.Context, changeType string, student model.Student) error {
	switch changeType {
	case "created", "updated", "deleted":
		logger.Info("NOTIFICATION: Student "+changeType,
			zap.String("studentID", student.ID),
			zap.String("studentName", student.Name))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}
	return nil
}

// NotifyAdmins records an administrative broadcast, e.g. a cache clear.
func (n *NotificationService) NotifyAdmins(ctx context.Context, message string) error {
	logger.Info("Notifying admins", zap.String("message", message))
	return nil
}
