package graphson

// Options configures a Translator. The zero value of each field means "use
// the default"; unknown non-empty values fail validation.
type Options struct {
	// IntWidth tags integer scalars in the output (default int64).
	IntWidth IntWidth `mapstructure:"int_width" yaml:"int_width"`

	// FloatWidth tags floating-point scalars in the output (default double).
	FloatWidth FloatWidth `mapstructure:"float_width" yaml:"float_width"`

	// DefaultLabel, when non-empty, substitutes for a missing or empty label
	// on vertices and edges instead of failing the decode.
	DefaultLabel string `mapstructure:"default_label" yaml:"default_label"`

	// CollapseSingleProperties emits single-value vertex property lists as a
	// single tagged object instead of a one-element list.
	CollapseSingleProperties bool `mapstructure:"collapse_single_properties" yaml:"collapse_single_properties"`

	// Extensions selects the handling of vendor-specific fields outside the
	// standard element shapes (default preserve).
	Extensions ExtensionPolicy `mapstructure:"extensions" yaml:"extensions"`
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		IntWidth:   IntWidthInt64,
		FloatWidth: FloatWidthDouble,
		Extensions: ExtensionPreserve,
	}
}

// withDefaults returns a copy with empty fields replaced by their defaults.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.IntWidth == "" {
		o.IntWidth = def.IntWidth
	}
	if o.FloatWidth == "" {
		o.FloatWidth = def.FloatWidth
	}
	if o.Extensions == "" {
		o.Extensions = def.Extensions
	}
	return o
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if err := o.encodeOptions().Validate(); err != nil {
		return err
	}
	return o.decodeOptions().Validate()
}

func (o Options) decodeOptions() DecodeOptions {
	return DecodeOptions{
		DefaultLabel: o.DefaultLabel,
		Extensions:   o.Extensions,
	}
}

func (o Options) encodeOptions() EncodeOptions {
	return EncodeOptions{
		IntWidth:                 o.IntWidth,
		FloatWidth:               o.FloatWidth,
		CollapseSingleProperties: o.CollapseSingleProperties,
	}
}

// Translator converts documents from the untyped graph-exchange encoding to
// the typed encoding. It holds only its options: it is stateless between
// calls and safe for concurrent use, and a given input always produces
// byte-identical output.
type Translator struct {
	opts Options
}

// NewTranslator creates a Translator, filling unset options with defaults
// and validating the result.
func NewTranslator(opts Options) (*Translator, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Translator{opts: opts}, nil
}

// Options returns the translator's effective options.
func (t *Translator) Options() Options {
	return t.opts
}

// Translate decodes an untyped document and re-encodes it as a typed one.
// Failures are returned as a TranslationError wrapping the underlying
// DecodeError or EncodeError; no partial output is produced.
func (t *Translator) Translate(input []byte) ([]byte, error) {
	value, err := DecodeLegacy(input, t.opts.decodeOptions())
	if err != nil {
		return nil, NewTranslationError(StageDecode, err).
			WithContext("input_bytes", len(input))
	}
	return t.TranslateValue(value)
}

// TranslateValue encodes an already-decoded Value tree as a typed document.
// Useful when a caller applies its own structural fixups between decode and
// encode.
func (t *Translator) TranslateValue(value Value) ([]byte, error) {
	out, err := EncodeTyped(value, t.opts.encodeOptions())
	if err != nil {
		return nil, NewTranslationError(StageEncode, err)
	}
	return out, nil
}

// Translate is a convenience wrapper for one-off calls; it builds a
// Translator from opts and runs a single translation.
func Translate(input []byte, opts Options) ([]byte, error) {
	t, err := NewTranslator(opts)
	if err != nil {
		return nil, err
	}
	return t.Translate(input)
}
