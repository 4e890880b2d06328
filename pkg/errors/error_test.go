package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (suite *ErrorTestSuite) TestNewError() {
	err := New(ErrCodeInvalidTimeSpec, "invalid time spec")
	suite.NotNil(err)
	suite.Equal(ErrCodeInvalidTimeSpec, err.Code)
	suite.Equal("invalid time spec", err.Message)
	suite.Nil(err.Cause)
}

func (suite *ErrorTestSuite) TestNewfError() {
	err := Newf(ErrCodeInvalidTimeToken, "invalid time token %q", "9:3am")
	suite.Equal(ErrCodeInvalidTimeToken, err.Code)
	suite.Equal(`invalid time token "9:3am"`, err.Message)
}

func (suite *ErrorTestSuite) TestWrapError() {
	cause := errors.New("connection reset")
	err := Wrap(ErrCodeRemoteRequestFailed, "failed to get account", cause)
	suite.Equal(ErrCodeRemoteRequestFailed, err.Code)
	suite.Equal(cause, err.Cause)
	suite.Equal(cause, err.Unwrap())
}

func (suite *ErrorTestSuite) TestWrapfError() {
	cause := errors.New("422 unprocessable")
	err := Wrapf(ErrCodeOrderFailed, cause, "failed to place order for %s", "AAPL")
	suite.Equal("failed to place order for AAPL", err.Message)
	suite.Equal("[505] failed to place order for AAPL: 422 unprocessable", err.Error())
}

func (suite *ErrorTestSuite) TestErrorString() {
	err := New(ErrCodeInvalidParameter, "invalid parameter")
	suite.Equal("[100] invalid parameter", err.Error())
}

func (suite *ErrorTestSuite) TestGetCodeFromWrapped() {
	inner := New(ErrCodePaginationExhausted, "too many pages")
	wrapped := fmt.Errorf("fetching quotes: %w", inner)
	suite.Equal(ErrCodePaginationExhausted, GetCode(wrapped))
	suite.True(HasCode(wrapped, ErrCodePaginationExhausted))
}

func (suite *ErrorTestSuite) TestGetCodeFromPlainError() {
	suite.Equal(ErrCodeUnknown, GetCode(errors.New("plain")))
}

func (suite *ErrorTestSuite) TestCategories() {
	tests := []struct {
		name     string
		err      error
		expected Category
	}{
		{name: "parse", err: New(ErrCodeInvalidTimeToken, "x"), expected: CategoryParse},
		{name: "remote", err: New(ErrCodeRemoteRateLimited, "x"), expected: CategoryRemote},
		{name: "protocol", err: New(ErrCodeCursorRepeated, "x"), expected: CategoryProtocol},
		{name: "handler", err: New(ErrCodeHandlerPanicked, "x"), expected: CategoryHandler},
		{name: "plain error", err: errors.New("x"), expected: CategoryUnknown},
		{name: "nil error", err: nil, expected: CategoryUnknown},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.Equal(tc.expected, CategoryOf(tc.err))
		})
	}

	suite.True(IsParseError(New(ErrCodeUnknownHandler, "x")))
	suite.True(IsRemoteError(New(ErrCodePositionCloseFailed, "x")))
	suite.True(IsProtocolError(New(ErrCodeStreamNotConfigured, "x")))
	suite.True(IsHandlerError(New(ErrCodeHandlerFailed, "x")))
	suite.False(IsRemoteError(New(ErrCodeHandlerFailed, "x")))
}

func (suite *ErrorTestSuite) TestToInfo() {
	suite.Nil(ToInfo(nil))

	info := ToInfo(Wrap(ErrCodeRemoteUnauthorized, "unauthorized", errors.New("401")))
	suite.Require().NotNil(info)
	suite.Equal(ErrCodeRemoteUnauthorized, info.Code)
	suite.Equal(CategoryRemote, info.Category)
	suite.Equal("[501] unauthorized: 401", info.Message)

	plain := ToInfo(errors.New("boom"))
	suite.Equal(ErrCodeUnknown, plain.Code)
	suite.Equal(CategoryUnknown, plain.Category)
}
