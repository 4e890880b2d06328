package schedule

import (
	"bytes"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-market-strategy/internal/trading"
	"github.com/rxtech-lab/argo-market-strategy/internal/version"
	"github.com/rxtech-lab/argo-market-strategy/pkg/errors"
	"github.com/rxtech-lab/argo-market-strategy/pkg/strategy"
	"gopkg.in/yaml.v3"
)

const (
	GateAdvisory = "advisory"
	GateEnforce  = "enforce"

	// DefaultTickTimeout keeps a tick inside its own minute.
	DefaultTickTimeout = 50 * time.Second
)

// EntryConfig is one schedule entry as written in the schedule file.
type EntryConfig struct {
	Time    string `json:"time" yaml:"time" jsonschema:"title=Time,description=Single time (9:30am) or range (9:30am-4:00pm) in New York time" validate:"required,timespec"`
	Handler string `json:"handler" yaml:"handler" jsonschema:"title=Handler,description=Registered handler name" validate:"required"`
}

// File is a decoded schedule file.
type File struct {
	Version     string                `json:"version,omitempty" yaml:"version,omitempty" jsonschema:"title=Version,description=Semver constraint on the binary version"`
	Gate        string                `json:"gate,omitempty" yaml:"gate,omitempty" jsonschema:"title=Gate,description=Market-open gate policy,enum=advisory,enum=enforce,default=advisory" validate:"omitempty,oneof=advisory enforce"`
	Verbose     bool                  `json:"verbose,omitempty" yaml:"verbose,omitempty" jsonschema:"title=Verbose,description=Log successful gateway calls"`
	TickTimeout time.Duration         `json:"tick_timeout,omitempty" yaml:"tick_timeout,omitempty" jsonschema:"title=Tick Timeout,description=Deadline of one dispatch tick" validate:"gte=0"`
	Gateway     trading.GatewayConfig `json:"gateway" yaml:"gateway" jsonschema:"title=Gateway"`
	Schedule    []EntryConfig         `json:"schedule" yaml:"schedule" jsonschema:"title=Schedule,description=Entries evaluated in order; the first match wins" validate:"required,min=1,dive"`

	entries []Entry
}

// Entries returns the entries with their handlers resolved, in file order.
func (f *File) Entries() []Entry {
	entries := make([]Entry, len(f.entries))
	copy(entries, f.entries)

	return entries
}

// LoadFile reads and parses a schedule file.
func LoadFile(path string, registry *strategy.Registry) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to read schedule file %s", path)
	}

	return Parse(data, registry)
}

// Parse decodes a schedule file, validates it and resolves every handler name
// against registry. Unset fields take their defaults.
func Parse(data []byte, registry *strategy.Registry) (*File, error) {
	file := &File{
		Version:     "",
		Gate:        GateAdvisory,
		Verbose:     false,
		TickTimeout: DefaultTickTimeout,
		Gateway:     trading.DefaultGatewayConfig(),
		Schedule:    nil,
		entries:     nil,
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse schedule file", err)
	}

	if err := file.Validate(); err != nil {
		return nil, err
	}

	entries := make([]Entry, len(file.Schedule))

	for i, cfg := range file.Schedule {
		handler, err := registry.Get(cfg.Handler)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeUnknownHandler, err, "schedule entry %d (%s)", i, cfg.Time)
		}

		entries[i] = Entry{Time: cfg.Time, Name: cfg.Handler, Handler: handler}
	}

	file.entries = entries

	return file, nil
}

// Validate validates the File struct and its version constraint.
func (f *File) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("timespec", validateTimeSpec); err != nil {
		return errors.Wrap(errors.ErrCodeUnknown, "failed to register time spec validation", err)
	}

	if err := validate.Struct(f); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid schedule file", err)
	}

	if err := f.Gateway.Validate(); err != nil {
		return err
	}

	return version.CheckCompatibility(f.Version, version.GetVersion())
}

func validateTimeSpec(fl validator.FieldLevel) bool {
	return checkTimeSpec(fl.Field().String()) == nil
}
