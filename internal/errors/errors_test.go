package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dice-delve/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "failed precondition",
			code:     errors.CodeFailedPrecondition,
			message:  "the dragon's lair is empty",
			expected: "FAILED_PRECONDITION: the dragon's lair is empty",
		},
		{
			name:     "out of range",
			code:     errors.CodeOutOfRange,
			message:  "no such die",
			expected: "OUT_OF_RANGE: no such die",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.OutOfRange("no such die").
		WithMeta("index", 9).
		WithMeta("pool", "party")

	s.Assert().Equal(9, err.Meta["index"])
	s.Assert().Equal("party", err.Meta["pool"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("roller broke")
	wrapped := errors.Wrap(baseErr, "failed to roll party")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to roll party", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.ResourceExhausted("treasure supply is empty")
	wrapped := errors.Wrap(baseErr, "failed to open chest")

	s.Assert().Equal(errors.CodeResourceExhausted, wrapped.Code)
	s.Assert().Equal("failed to open chest", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.NotFound("no such treasure").WithMeta("index", 4)
	wrapped := errors.WrapWithCode(baseErr, errors.CodeInternal, "inventory out of sync")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal(4, wrapped.Meta["index"])
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestConstructorFunctions() {
	testCases := []struct {
		name        string
		constructor func() *errors.Error
		code        errors.Code
	}{
		{"NotFound", func() *errors.Error { return errors.NotFound("test") }, errors.CodeNotFound},
		{"InvalidArgument", func() *errors.Error { return errors.InvalidArgument("test") }, errors.CodeInvalidArgument},
		{"Internal", func() *errors.Error { return errors.Internal("test") }, errors.CodeInternal},
		{"ResourceExhausted", func() *errors.Error { return errors.ResourceExhausted("test") }, errors.CodeResourceExhausted},
		{"FailedPrecondition", func() *errors.Error { return errors.FailedPrecondition("test") }, errors.CodeFailedPrecondition},
		{"OutOfRange", func() *errors.Error { return errors.OutOfRange("test") }, errors.CodeOutOfRange},
		{"Canceled", func() *errors.Error { return errors.Canceled("test") }, errors.CodeCanceled},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.constructor()
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal("test", err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestFormattedConstructors() {
	err := errors.OutOfRangef("die %d is not in the party", 8)
	s.Assert().Equal(errors.CodeOutOfRange, err.Code)
	s.Assert().Equal("die 8 is not in the party", err.Message)

	err2 := errors.FailedPreconditionf("%s has no ultimate left", "Minstrel")
	s.Assert().Equal(errors.CodeFailedPrecondition, err2.Code)
	s.Assert().Equal("Minstrel has no ultimate left", err2.Message)
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.NotFound("test")
	err2 := errors.NotFound("other")
	err3 := errors.InvalidArgument("test")

	s.Assert().True(err1.Is(err2))
	s.Assert().False(err1.Is(err3))
	s.Assert().True(errors.Is(errors.Wrap(err1, "wrapped"), err2))
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	exhausted := errors.ResourceExhausted("test")
	precondition := errors.FailedPrecondition("test")
	wrapped := errors.Wrap(exhausted, "wrapped")

	s.Assert().True(errors.IsResourceExhausted(exhausted))
	s.Assert().True(errors.IsResourceExhausted(wrapped))
	s.Assert().False(errors.IsResourceExhausted(precondition))

	s.Assert().True(errors.IsFailedPrecondition(precondition))
	s.Assert().False(errors.IsFailedPrecondition(exhausted))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.NotFound("test")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(err))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	err := errors.NotFound("no such treasure")
	wrapped := errors.Wrap(err, "failed to use treasure")
	stdErr := fmt.Errorf("standard error")

	s.Assert().Equal("no such treasure", errors.GetMessage(err))
	s.Assert().Equal("failed to use treasure", errors.GetMessage(wrapped))
	s.Assert().Equal("standard error", errors.GetMessage(stdErr))
	s.Assert().Nil(errors.GetMeta(stdErr))
}

func (s *ErrorsTestSuite) TestRecoverable() {
	testCases := []struct {
		err      error
		expected bool
	}{
		{errors.InvalidArgument("bad key"), true},
		{errors.NotFound("no such treasure"), true},
		{errors.FailedPrecondition("lair is empty"), true},
		{errors.OutOfRange("no such die"), true},
		{errors.Wrap(errors.OutOfRange("no such die"), "reroll"), true},
		{errors.Internal("broken"), false},
		{errors.ResourceExhausted("supply empty"), false},
		{errors.Canceled("quit"), false},
		{fmt.Errorf("plain"), false},
		{nil, false},
	}

	for _, tc := range testCases {
		s.Run(errors.GetCode(tc.err).String(), func() {
			s.Assert().Equal(tc.expected, errors.IsRecoverable(tc.err))
		})
	}
}
