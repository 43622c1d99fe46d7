package services

import (
	"time"

	"costbook/internal/dto"
	"costbook/internal/models"

	"github.com/google/uuid"
)

type AuthServiceInterface interface {
	Signup(req *dto.SignupRequest, ipAddress, userAgent string) (*models.User, error)
	Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error)
	RefreshTokens(refreshToken, ipAddress, userAgent string) (*dto.TokenResponse, error)
	Logout(accessToken, ipAddress, userAgent string) error
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ValidateRefreshToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetJTI(tokenString string) (string, error)
	GetTokenExpiry(tokenString string) (time.Time, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// ProjectServiceInterface defines the contract for project operations
type ProjectServiceInterface interface {
	CreateProject(req *dto.CreateProjectRequest, userID uuid.UUID, ipAddress string) (*models.Project, error)
	GetProject(id uuid.UUID) (*models.Project, error)
	ListProjects(offset, limit int) ([]models.Project, int64, error)
}

// ProposalServiceInterface defines the contract for proposal upload and retrieval
type ProposalServiceInterface interface {
	UploadProposal(projectID uuid.UUID, fileName string, content []byte, userID uuid.UUID, ipAddress string) (int, error)
	ListFiles(projectID uuid.UUID) ([]string, error)
	GetContents(fileName string) ([]models.LineItem, error)
}

// PopulateServiceInterface reconciles a proposal against the master rate table
type PopulateServiceInterface interface {
	Populate(fileName string, userID uuid.UUID, ipAddress string) ([]models.LineItem, int, int, error)
}

// MasterRatesServiceInterface defines the contract for master rate table management
type MasterRatesServiceInterface interface {
	UploadMasterRates(fileName string, content []byte, userID uuid.UUID, ipAddress string) (int, error)
	ListVersions() ([]models.MasterFileVersion, error)
	GetVersionContent(id uuid.UUID) (*models.MasterFileVersion, error)
}

// WorksheetServiceInterface drives the per-user working copy of an open
// proposal file: loading, price edits, sorting, aggregation and export
type WorksheetServiceInterface interface {
	Open(userID uuid.UUID, fileName string) ([]models.LineItem, error)
	Rows(userID uuid.UUID) ([]dto.LineItemResponse, error)
	EditPrice(userID uuid.UUID, req *dto.UpdateLineItemRequest, ipAddress string) (*dto.UpdateLineItemResponse, error)
	SortByCategory(userID uuid.UUID) ([]dto.LineItemResponse, error)
	SortByLine(userID uuid.UUID) ([]dto.LineItemResponse, error)
	TotalCost(userID uuid.UUID) (string, error)
	Chart(userID uuid.UUID, fileName string) (*dto.ChartResponse, error)
	ExportCSV(userID uuid.UUID, fileName string, requestedBy uuid.UUID, ipAddress string) ([]byte, error)
	ExportPDF(userID uuid.UUID, fileName string, requestedBy uuid.UUID, ipAddress string) ([]byte, error)
}

// AuditServiceInterface defines the contract for audit logging operations
type AuditServiceInterface interface {
	CreateAuditLog(log *models.AuditLog) error
	LogLogin(userID uuid.UUID, ipAddress, userAgent string) error
	LogSignup(userID uuid.UUID, ipAddress, userAgent string) error
	LogProjectCreated(userID, projectID uuid.UUID, ipAddress string) error
	LogProposalUpload(userID uuid.UUID, fileName string, rows int, ipAddress string) error
	LogMasterUpload(userID uuid.UUID, fileName string, entries int, ipAddress string) error
	LogPopulate(userID uuid.UUID, fileName string, matched, unmatched int, ipAddress string) error
	LogLineItemUpdated(userID, lineItemID uuid.UUID, newPrice string, ipAddress string) error
	LogExport(userID uuid.UUID, fileName, format, ipAddress string) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
