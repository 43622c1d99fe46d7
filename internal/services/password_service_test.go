package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// PasswordServiceTestSuite defines the test suite for PasswordService
type PasswordServiceTestSuite struct {
	suite.Suite
	service PasswordServiceInterface
}

func (s *PasswordServiceTestSuite) SetupTest() {
	s.service = NewPasswordService()
}

func TestPasswordServiceSuite(t *testing.T) {
	suite.Run(t, new(PasswordServiceTestSuite))
}

func (s *PasswordServiceTestSuite) TestValidatePassword_Valid() {
	err := s.service.ValidatePassword("SecurePass123!x")
	s.NoError(err)
}

func (s *PasswordServiceTestSuite) TestValidatePassword_TooShort() {
	err := s.service.ValidatePassword("Short1!")
	s.Error(err)
}

func (s *PasswordServiceTestSuite) TestValidatePassword_TooLong() {
	long := make([]byte, 80)
	for i := range long {
		long[i] = 'a'
	}
	err := s.service.ValidatePassword("Aa1!" + string(long))
	s.Error(err)
}

func (s *PasswordServiceTestSuite) TestValidatePassword_MissingClasses() {
	cases := map[string]string{
		"no uppercase": "securepass123!xx",
		"no lowercase": "SECUREPASS123!XX",
		"no number":    "SecurePassword!!",
		"no special":   "SecurePass12345x",
	}
	for name, password := range cases {
		err := s.service.ValidatePassword(password)
		s.Error(err, name)
	}
}

func (s *PasswordServiceTestSuite) TestHashPassword() {
	hash, err := s.service.HashPassword("SecurePass123!x")
	s.NoError(err)
	s.NotEmpty(hash)
	s.NotEqual("SecurePass123!x", hash)
}

func (s *PasswordServiceTestSuite) TestHashPassword_UniqueSalts() {
	hash1, err := s.service.HashPassword("SecurePass123!x")
	s.Require().NoError(err)
	hash2, err := s.service.HashPassword("SecurePass123!x")
	s.Require().NoError(err)
	s.NotEqual(hash1, hash2)
}

func (s *PasswordServiceTestSuite) TestComparePassword() {
	hash, err := s.service.HashPassword("SecurePass123!x")
	s.Require().NoError(err)

	s.True(s.service.ComparePassword("SecurePass123!x", hash))
	s.False(s.service.ComparePassword("WrongPassword1!", hash))
	s.False(s.service.ComparePassword("", hash))
}
