package services

import (
	"fmt"

	"costbook/internal/models"
	"costbook/internal/repositories"

	"github.com/google/uuid"
)

// AuditService records domain events for traceability
type AuditService struct {
	auditRepo repositories.AuditLogRepositoryInterface
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repositories.AuditLogRepositoryInterface) AuditServiceInterface {
	return &AuditService{auditRepo: auditRepo}
}

// CreateAuditLog persists an audit log entry
func (s *AuditService) CreateAuditLog(log *models.AuditLog) error {
	if err := s.auditRepo.Create(log); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

// LogLogin records a successful login
func (s *AuditService) LogLogin(userID uuid.UUID, ipAddress, userAgent string) error {
	return s.CreateAuditLog(&models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionLogin,
		Resource:   "user",
		ResourceID: userID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	})
}

// LogSignup records a new account registration
func (s *AuditService) LogSignup(userID uuid.UUID, ipAddress, userAgent string) error {
	return s.CreateAuditLog(&models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionRegister,
		Resource:   "user",
		ResourceID: userID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	})
}

// LogProjectCreated records project creation
func (s *AuditService) LogProjectCreated(userID, projectID uuid.UUID, ipAddress string) error {
	return s.CreateAuditLog(&models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionProjectCreated,
		Resource:   "project",
		ResourceID: projectID.String(),
		IPAddress:  ipAddress,
	})
}

// LogProposalUpload records a proposal spreadsheet upload
func (s *AuditService) LogProposalUpload(userID uuid.UUID, fileName string, rows int, ipAddress string) error {
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionProposalUpload,
		Resource:   "proposal",
		ResourceID: fileName,
		IPAddress:  ipAddress,
	}
	log.SetMetadata("rows", rows)
	return s.CreateAuditLog(log)
}

// LogMasterUpload records a master rate table upload
func (s *AuditService) LogMasterUpload(userID uuid.UUID, fileName string, entries int, ipAddress string) error {
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionMasterUpload,
		Resource:   "master_rates",
		ResourceID: fileName,
		IPAddress:  ipAddress,
	}
	log.SetMetadata("entries", entries)
	return s.CreateAuditLog(log)
}

// LogPopulate records a reconciliation run against the master rate table
func (s *AuditService) LogPopulate(userID uuid.UUID, fileName string, matched, unmatched int, ipAddress string) error {
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionPopulate,
		Resource:   "proposal",
		ResourceID: fileName,
		IPAddress:  ipAddress,
	}
	log.SetMetadata("matched", matched)
	log.SetMetadata("unmatched", unmatched)
	return s.CreateAuditLog(log)
}

// LogLineItemUpdated records a manual price edit
func (s *AuditService) LogLineItemUpdated(userID, lineItemID uuid.UUID, newPrice string, ipAddress string) error {
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionLineItemUpdated,
		Resource:   "line_item",
		ResourceID: lineItemID.String(),
		IPAddress:  ipAddress,
	}
	log.SetMetadata("new_price", newPrice)
	return s.CreateAuditLog(log)
}

// LogExport records a file export
func (s *AuditService) LogExport(userID uuid.UUID, fileName, format, ipAddress string) error {
	action := models.AuditActionExportCSV
	if format == "pdf" {
		action = models.AuditActionExportPDF
	}
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     action,
		Resource:   "proposal",
		ResourceID: fileName,
		IPAddress:  ipAddress,
	}
	log.SetMetadata("format", format)
	return s.CreateAuditLog(log)
}
