package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dice-delve/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestBuildListsFieldsInReportOrder() {
	err := errors.NewValidationBuilder().
		RequiredField("log_file").
		Field("log_level", "is invalid").
		Fieldf("delves", "must be at least %d", 1).
		Field("log_file", "must be writable").
		Build()
	s.Require().Error(err)

	s.Assert().Equal(
		"validation failed: log_file: is required, must be writable; log_level: is invalid; delves: must be at least 1",
		errors.GetMessage(err))
	s.Assert().Equal(errors.CodeInvalidArgument, errors.GetCode(err))

	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Equal([]string{"is required", "must be writable"}, validationErrors["log_file"])
	s.Assert().Len(validationErrors, 3)
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("hero", "is required").
		Fieldf("max_level", "must be between %d and %d", 1, 20).
		RequiredField("roller").
		InvalidField("log_level", "not a slog level")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "test", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  test  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("max_level", 25, 1, 20, vb)
	errors.ValidateRange("dragon_threshold", 3, 1, 7, vb)
	errors.ValidateRange("delves", 0, 1, 10, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["max_level"][0], "must be between 1 and 20")
	s.Assert().Contains(validationErrors["delves"][0], "must be between 1 and 10")
	s.Assert().NotContains(validationErrors, "dragon_threshold")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowedLevels := []string{"debug", "info", "warn", "error"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("log_level", "verbose", allowedLevels, vb)
	errors.ValidateEnum("file_level", "debug", allowedLevels, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["log_level"][0], "must be one of: debug, info, warn, error")
	s.Assert().NotContains(validationErrors, "file_level")
}

func (s *ValidationTestSuite) TestValidatePositive() {
	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("party_dice", 0, vb)
	errors.ValidatePositive("dungeon_dice", 7, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["party_dice"][0], "must be at least 1, got 0")
	s.Assert().NotContains(validationErrors, "dungeon_dice")
}

func (s *ValidationTestSuite) TestRulesValidation() {
	type rules struct {
		PartyDice int
		MaxLevel  int
		Hero      string
	}

	input := rules{PartyDice: 0, MaxLevel: 40, Hero: "necromancer"}

	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("party_dice", input.PartyDice, vb)
	errors.ValidateRange("max_level", input.MaxLevel, 1, 20, vb)
	errors.ValidateEnum("hero", input.Hero, []string{"minstrel", "alchemist", "knight"}, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors, "party_dice")
	s.Assert().Contains(validationErrors, "max_level")
	s.Assert().Contains(validationErrors, "hero")
}
