package repositories

import (
	"testing"

	"costbook/internal/database"
	"costbook/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestRateRepository(t *testing.T) {
	suite.Run(t, new(RateRepositorySuite))
}

type RateRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo RateRepositoryInterface
}

func (s *RateRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewRateRepository(s.db.DB)
}

func (s *RateRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *RateRepositorySuite) TestRateRepository_ReplaceAll() {
	first := []models.RateEntry{
		{ItemCode: "202-00090", Rate: decimal.RequireFromString("1500"), Category: "Removals"},
		{ItemCode: "203-00010", Rate: decimal.RequireFromString("22.5"), Category: "Earthwork"},
	}
	s.NoError(s.repo.ReplaceAll(first))

	count, err := s.repo.Count()
	s.NoError(err)
	s.EqualValues(2, count)

	// Re-upload fully supersedes the previous table
	second := []models.RateEntry{
		{ItemCode: "208-00002", Rate: decimal.RequireFromString("9.75"), Category: "Erosion Control"},
	}
	s.NoError(s.repo.ReplaceAll(second))

	entries, err := s.repo.GetAll()
	s.NoError(err)
	s.Len(entries, 1)
	s.Equal("208-00002", entries[0].ItemCode)
}

func (s *RateRepositorySuite) TestRateRepository_GetAll_Empty() {
	_, err := s.repo.GetAll()
	s.Equal(ErrNoMasterRates, err)
}

func (s *RateRepositorySuite) TestRateRepository_ReplaceAll_Empty() {
	err := s.repo.ReplaceAll(nil)
	s.Error(err)
}
