package strategy

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
)

type JsonSchemaTestSuite struct {
	suite.Suite
}

func TestJsonSchemaTestSuite(t *testing.T) {
	suite.Run(t, new(JsonSchemaTestSuite))
}

type testEntryConfig struct {
	Time    string `yaml:"time" json:"time" jsonschema:"title=Time,description=Single h:mma token or h:mma-h:mma range,example=9:30am"`
	Handler string `yaml:"handler" json:"handler" jsonschema:"title=Handler,description=Registered handler name"`
}

func (suite *JsonSchemaTestSuite) TestToJSONSchema() {
	schema, err := ToJSONSchema(testEntryConfig{})
	suite.NoError(err)
	suite.NotEmpty(schema)
	suite.NotContains(schema, "\n")

	var decoded map[string]any
	suite.Require().NoError(json.Unmarshal([]byte(schema), &decoded))
	suite.Contains(decoded, "properties")
	suite.NotContains(decoded, "$defs")
}

func (suite *JsonSchemaTestSuite) TestToIndentedJSONSchema() {
	schema, err := ToIndentedJSONSchema(testEntryConfig{})
	suite.NoError(err)
	suite.Contains(schema, "\n  ")
	suite.Contains(schema, "Registered handler name")
}
