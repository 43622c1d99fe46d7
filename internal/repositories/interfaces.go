package repositories

import (
	"time"

	"costbook/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Update(user *models.User) error
	UpdateLastLogin(userID uuid.UUID) error
	UpdatePasswordHash(userID uuid.UUID, passwordHash string) error
	Delete(userID uuid.UUID) error
}

// ProjectRepositoryInterface defines the contract for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetByName(name string) (*models.Project, error)
	List(offset, limit int) ([]models.Project, int64, error)
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
}

// LineItemRepositoryInterface defines the contract for proposal line item operations
type LineItemRepositoryInterface interface {
	CreateBatch(items []models.LineItem) error
	GetByID(id uuid.UUID) (*models.LineItem, error)
	GetByProposal(proposal string) ([]models.LineItem, error)
	ListProposals(projectID uuid.UUID) ([]string, error)
	ProposalExists(proposal string) (bool, error)
	UpdatePrice(id uuid.UUID, price, totalPrice decimal.Decimal) error
	ReplaceProposal(proposal string, items []models.LineItem) error
	DeleteByProposal(proposal string) error
}

// RateRepositoryInterface defines the contract for master rate table operations
type RateRepositoryInterface interface {
	ReplaceAll(entries []models.RateEntry) error
	GetAll() ([]models.RateEntry, error)
	Count() (int64, error)
}

// VersionRepositoryInterface defines the contract for master file version operations
type VersionRepositoryInterface interface {
	Create(version *models.MasterFileVersion) error
	GetByID(id uuid.UUID) (*models.MasterFileVersion, error)
	List() ([]models.MasterFileVersion, error)
	Latest() (*models.MasterFileVersion, error)
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	GetByUserID(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByAction(action string, offset, limit int) ([]*models.AuditLog, int64, error)
	DeleteOlderThan(duration time.Duration) (int64, error)
}

type RefreshTokenRepositoryInterface interface {
	Create(token *models.RefreshToken) error
	GetByTokenHash(tokenHash string) (*models.RefreshToken, error)
	Revoke(tokenID uuid.UUID) error
	RevokeAllForUser(userID uuid.UUID) error
	DeleteExpired() (int64, error)
}

// BlacklistedTokenRepositoryInterface defines the contract for blacklisted token repository operations
type BlacklistedTokenRepositoryInterface interface {
	Create(token *models.BlacklistedToken) error
	GetByJTI(jti string) (*models.BlacklistedToken, error)
	DeleteExpired() (int64, error)
}
