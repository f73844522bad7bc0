package advanced

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

const (
	// Jitter offsets are this fraction of the domain's largest side.
	DefaultJitterScale = 1e-7
	// Safety net for the jitter loop. A single pass separates duplicates in
	// practice; only degenerate domains come near this.
	DefaultMaxJitterPasses = 1000
)

// Options configure a Field. Start from DefaultOptions; the zero value is not
// valid.
type Options struct {
	// Clamp points, diagram vertices and centroids into the domain.
	Constrain bool `yaml:"constrain"`
	// Maximum jitter offset per axis, relative to the domain's largest side
	// (or 1, whichever is larger).
	JitterScale     float64 `yaml:"jitter_scale" validate:"gt=0,lt=1"`
	MaxJitterPasses int     `yaml:"max_jitter_passes" validate:"min=1"`
	// Seed for jitter. Zero picks a seed from the clock.
	Seed int64 `yaml:"seed"`
	// Margin of the horizon box for unconstrained fields, see FortuneBuilder.
	// Ignored when Builder is set.
	HorizonScale float64 `yaml:"horizon_scale" validate:"gt=1"`

	// Defaults to a FortuneBuilder.
	Builder DiagramBuilder `yaml:"-" validate:"-"`
	// Defaults to a logger that discards everything.
	Logger *log.Logger `yaml:"-" validate:"-"`
}

func DefaultOptions() Options {
	return Options{
		Constrain:       true,
		JitterScale:     DefaultJitterScale,
		MaxJitterPasses: DefaultMaxJitterPasses,
		HorizonScale:    DefaultHorizonScale,
	}
}

func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return errors.Wrapf(ErrInvalidInput, "options: %v", err)
	}
	return nil
}

// ParseOptions reads YAML on top of DefaultOptions, so a document only needs
// the keys it changes.
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, errors.Wrapf(ErrInvalidInput, "options: %v", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func (o Options) builder() DiagramBuilder {
	if o.Builder != nil {
		return o.Builder
	}
	return FortuneBuilder{HorizonScale: o.HorizonScale}
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

func (o Options) seed() int64 {
	if o.Seed != 0 {
		return o.Seed
	}
	return time.Now().UnixNano()
}
