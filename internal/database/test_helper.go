package database

import (
	"fmt"
	"testing"

	"costbook/internal/config"
	"costbook/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestUser(t *testing.T, db *DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		PasswordHash: "hashed_password",
		Role:         models.RoleEstimator,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestProject(t *testing.T, db *DB, name string) *models.Project {
	t.Helper()

	project := &models.Project{
		Name:        name,
		Description: "test project",
	}

	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to create test project: %v", err)
	}

	return project
}

func CreateTestLineItem(t *testing.T, db *DB, project *models.Project, proposal, item string, quantity, price decimal.Decimal) *models.LineItem {
	t.Helper()

	lineItem := &models.LineItem{
		Item:      item,
		Quantity:  quantity,
		Price:     price,
		Proposal:  proposal,
		ProjectID: project.ID,
	}

	if err := db.Create(lineItem).Error; err != nil {
		t.Fatalf("failed to create test line item: %v", err)
	}

	return lineItem
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"proposal_line_items",
		"projects",
		"master_rate_entries",
		"master_file_versions",
		"audit_logs",
		"blacklisted_tokens",
		"refresh_tokens",
		"users",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
