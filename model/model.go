package model

import (
	"github.com/rs/zerolog"

	"modelbind/schema"
)

// DataSource is an opaque connector handle. Models and instances only store
// and return it.
type DataSource any

// Model is a model type: a definition plus the collaborators shared by all
// of its instances.
type Model struct {
	def        *schema.Definition
	catalog    *Catalog
	hooks      Hookable
	validator  Validatable
	dataSource DataSource
	logger     zerolog.Logger
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithHooks sets the lifecycle notification target.
func WithHooks(h Hookable) ModelOption {
	return func(m *Model) { m.hooks = h }
}

// WithValidator sets the validator used by Instance.IsValid.
func WithValidator(v Validatable) ModelOption {
	return func(m *Model) { m.validator = v }
}

// WithDefaultDataSource sets the connector handle of the model type.
func WithDefaultDataSource(ds DataSource) ModelOption {
	return func(m *Model) { m.dataSource = ds }
}

// WithLogger sets the logger. Models log nothing unless one is given; the
// model name is added to every entry.
func WithLogger(l zerolog.Logger) ModelOption {
	return func(m *Model) { m.logger = l }
}

// NewModel creates a model type from its definition.
func NewModel(def *schema.Definition, opts ...ModelOption) *Model {
	m := &Model{
		def:    def,
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.logger = m.logger.With().Str("model", def.Name).Logger()

	return m
}

// Name returns the model name.
func (m *Model) Name() string {
	return m.def.Name
}

// Definition returns the definition the model was built from.
func (m *Model) Definition() *schema.Definition {
	return m.def
}

// DataSource returns the connector handle of the model type.
func (m *Model) DataSource() DataSource {
	return m.dataSource
}

// New creates an instance from raw data. It fails with an
// UnknownPropertyError only when the resolved strict mode is "throw" and
// data holds a key that is neither a property nor a relation.
func (m *Model) New(data map[string]any, opts ...Option) (*Instance, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	inst := &Instance{
		model:      m,
		own:        newOwnProps(),
		dataSource: o.dataSource,
	}

	if err := initialize(inst, m.def, data, o); err != nil {
		return nil, err
	}

	return inst, nil
}

// PropertyType returns the type name of a declared property: a base name
// such as "String", "Object", "Array" or the name of a structured type.
// Undeclared properties yield "" and no error.
func (m *Model) PropertyType(name string) (string, error) {
	p, ok := m.def.Property(name)
	if !ok {
		return "", nil
	}

	if p.Type.IsZero() {
		return "", &MissingTypeError{Model: m.def.Name, Property: name}
	}

	return p.Type.TypeName(), nil
}

// Option configures a single Model.New call.
type Option func(*options)

type options struct {
	skipSetters bool
	strict      schema.StrictMode
	dataSource  DataSource
}

// WithoutSetters stores input values without running property setters.
func WithoutSetters() Option {
	return func(o *options) { o.skipSetters = true }
}

// WithStrict overrides the strict setting of the definition for one instance.
func WithStrict(mode schema.StrictMode) Option {
	return func(o *options) { o.strict = mode }
}

// WithDataSource overrides the connector handle for one instance.
func WithDataSource(ds DataSource) Option {
	return func(o *options) { o.dataSource = ds }
}
