package schedule

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rxtech-lab/argo-market-strategy/internal/trading"
	"github.com/rxtech-lab/argo-market-strategy/internal/version"
	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
	"github.com/rxtech-lab/argo-market-strategy/pkg/strategy"
	"github.com/stretchr/testify/suite"
)

type FileTestSuite struct {
	suite.Suite
	registry *strategy.Registry
}

func TestFileSuite(t *testing.T) {
	suite.Run(t, new(FileTestSuite))
}

func (suite *FileTestSuite) SetupTest() {
	noop := strategy.HandlerFunc(func(context.Context, trading.Gateway) error { return nil })

	suite.registry = strategy.NewRegistry()
	suite.registry.MustRegister("log-account", noop)
	suite.registry.MustRegister("close-all-positions", noop)
}

func (suite *FileTestSuite) TestParseAppliesDefaults() {
	file, err := Parse([]byte(`
schedule:
  - time: 9:30am
    handler: log-account
  - time: 9:30am-4:00pm
    handler: close-all-positions
`), suite.registry)
	suite.Require().NoError(err)

	suite.Equal(GateAdvisory, file.Gate)
	suite.Equal(DefaultTickTimeout, file.TickTimeout)
	suite.Equal(trading.DefaultGatewayConfig(), file.Gateway)

	entries := file.Entries()
	suite.Require().Len(entries, 2)
	suite.Equal("9:30am", entries[0].Time)
	suite.Equal("log-account", entries[0].Name)
	suite.NotNil(entries[0].Handler)
	suite.Equal("9:30am-4:00pm", entries[1].Time)
	suite.Equal("close-all-positions", entries[1].Name)
}

func (suite *FileTestSuite) TestParseOverrides() {
	file, err := Parse([]byte(`
gate: enforce
verbose: true
tick_timeout: 45s
gateway:
  concurrency: 4
  data_delay: 0s
  request_timeout: 10s
schedule:
  - time: 3:59pm
    handler: close-all-positions
`), suite.registry)
	suite.Require().NoError(err)

	suite.Equal(GateEnforce, file.Gate)
	suite.True(file.Verbose)
	suite.Equal(45*time.Second, file.TickTimeout)
	suite.Equal(4, file.Gateway.Concurrency)
	suite.Equal(time.Duration(0), file.Gateway.DataDelay)
	suite.Equal(10*time.Second, file.Gateway.RequestTimeout)
	suite.Equal(trading.DefaultGatewayConfig().MaxChunk, file.Gateway.MaxChunk)
}

func (suite *FileTestSuite) TestParseErrors() {
	testCases := []struct {
		name string
		yaml string
		code errors.ErrorCode
	}{
		{
			name: "empty schedule",
			yaml: "schedule: []\n",
			code: errors.ErrCodeInvalidConfiguration,
		},
		{
			name: "unknown field",
			yaml: "cron: '* * * * *'\nschedule:\n  - time: 9:30am\n    handler: log-account\n",
			code: errors.ErrCodeInvalidConfiguration,
		},
		{
			name: "bad time token",
			yaml: "schedule:\n  - time: '09:30'\n    handler: log-account\n",
			code: errors.ErrCodeInvalidConfiguration,
		},
		{
			name: "reversed range",
			yaml: "schedule:\n  - time: 4:00pm-9:30am\n    handler: log-account\n",
			code: errors.ErrCodeInvalidConfiguration,
		},
		{
			name: "missing handler name",
			yaml: "schedule:\n  - time: 9:30am\n",
			code: errors.ErrCodeInvalidConfiguration,
		},
		{
			name: "unknown gate",
			yaml: "gate: strict\nschedule:\n  - time: 9:30am\n    handler: log-account\n",
			code: errors.ErrCodeInvalidConfiguration,
		},
		{
			name: "gateway out of range",
			yaml: "gateway:\n  max_chunk: 5000\nschedule:\n  - time: 9:30am\n    handler: log-account\n",
			code: errors.ErrCodeInvalidConfiguration,
		},
		{
			name: "unsatisfied version",
			yaml: "version: '>= 99.0.0'\nschedule:\n  - time: 9:30am\n    handler: log-account\n",
			code: errors.ErrCodeInvalidVersion,
		},
		{
			name: "unknown handler",
			yaml: "schedule:\n  - time: 9:30am\n    handler: buy-the-dip\n",
			code: errors.ErrCodeUnknownHandler,
		},
		{
			name: "not yaml",
			yaml: "schedule: [",
			code: errors.ErrCodeInvalidConfiguration,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := Parse([]byte(tc.yaml), suite.registry)
			suite.Require().Error(err)
			suite.Equal(tc.code, errors.GetCode(err))
		})
	}
}

func (suite *FileTestSuite) TestParseAcceptsSatisfiedVersion() {
	previous := version.Version
	version.Version = "v1.4.2"

	defer func() { version.Version = previous }()

	_, err := Parse([]byte("version: '^1.2.0'\nschedule:\n  - time: 9:30am\n    handler: log-account\n"), suite.registry)
	suite.NoError(err)
}

func (suite *FileTestSuite) TestLoadFile() {
	path := filepath.Join(suite.T().TempDir(), "schedule.yaml")
	suite.Require().NoError(os.WriteFile(path, []byte("schedule:\n  - time: 3:50pm-4:00pm\n    handler: close-all-positions\n"), 0o600))

	file, err := LoadFile(path, suite.registry)
	suite.Require().NoError(err)
	suite.Len(file.Entries(), 1)

	_, err = LoadFile(filepath.Join(suite.T().TempDir(), "missing.yaml"), suite.registry)
	suite.Equal(errors.ErrCodeInvalidConfiguration, errors.GetCode(err))
}

func (suite *FileTestSuite) TestSchemaDescribesScheduleFile() {
	schema, err := strategy.ToJSONSchema(File{})
	suite.Require().NoError(err)

	suite.Contains(schema, "tick_timeout")
	suite.Contains(schema, "max_chunk")
	suite.Contains(schema, "Registered handler name")
}
