package auth_test

import (
	"testing"

	"duty-roster-backend/internal/auth"
	"duty-roster-backend/internal/database/models"
	apperrors "duty-roster-backend/internal/errors"
	"duty-roster-backend/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type AuthServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	soldierRepo *mocks.MockSoldierRepositoryInterface
	service     *auth.AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.soldierRepo = mocks.NewMockSoldierRepositoryInterface(s.ctrl)
	s.service = auth.NewAuthService(s.soldierRepo, "test-secret")
}

func (s *AuthServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthServiceTestSuite) TestLoginIssuesValidToken() {
	soldier := &models.Soldier{
		BaseModel: models.BaseModel{ID: uuid.New()},
		FullName:  "Alice Cohen",
		PhoneE164: "+972501234567",
	}
	s.soldierRepo.EXPECT().GetByPhone("+972501234567").Return(soldier, nil)

	token, claims, err := s.service.Login("+972 50-123-4567")

	s.Require().NoError(err)
	s.NotEmpty(token)
	s.Equal(soldier.ID, claims.SoldierID)
	s.Equal("Alice Cohen", claims.FullName)

	parsed, err := s.service.ValidateToken(token)
	s.Require().NoError(err)
	s.Equal(soldier.ID, parsed.SoldierID)
	s.Equal("Alice Cohen", parsed.FullName)
	s.Equal("+972501234567", parsed.Phone)
}

func (s *AuthServiceTestSuite) TestLoginUnknownPhone() {
	s.soldierRepo.EXPECT().GetByPhone("+972500000000").Return(nil, gorm.ErrRecordNotFound)

	_, _, err := s.service.Login("+972500000000")

	s.ErrorIs(err, apperrors.ErrSoldierNotFound)
}

func (s *AuthServiceTestSuite) TestLoginEmptyPhone() {
	_, _, err := s.service.Login("  - ")

	s.Error(err)
	s.True(apperrors.IsAuthentication(err))
}

func (s *AuthServiceTestSuite) TestValidateTokenRejectsGarbage() {
	_, err := s.service.ValidateToken("not-a-token")
	s.Error(err)
}

func (s *AuthServiceTestSuite) TestValidateTokenRejectsWrongSecret() {
	soldier := &models.Soldier{
		BaseModel: models.BaseModel{ID: uuid.New()},
		FullName:  "Alice Cohen",
		PhoneE164: "+972501234567",
	}
	s.soldierRepo.EXPECT().GetByPhone("+972501234567").Return(soldier, nil)

	token, _, err := s.service.Login("+972501234567")
	s.Require().NoError(err)

	other := auth.NewAuthService(s.soldierRepo, "other-secret")
	_, err = other.ValidateToken(token)
	s.Error(err)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func TestNormalizePhone(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Already normalized", input: "+972501234567", expected: "+972501234567"},
		{name: "Spaces and dashes", input: "+972 50-123-4567", expected: "+972501234567"},
		{name: "Parentheses", input: "(050) 123 4567", expected: "0501234567"},
		{name: "Empty", input: "", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := auth.NormalizePhone(tc.input); got != tc.expected {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}
