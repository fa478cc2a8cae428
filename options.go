package fontatlas

// Option configures atlas generation.
//
// Example:
//
//	cs, _ := fontatlas.LookupCharset("windows-1252")
//	atlas, err := fontatlas.GenerateFromFile("font.ttf", spec,
//	    fontatlas.WithCharset(cs),
//	    fontatlas.WithBackend("gotext"),
//	)
type Option func(*options)

// options holds optional configuration for sampling and generation.
type options struct {
	charset Charset
	backend string
}

// defaultOptions returns the default generation options.
func defaultOptions() options {
	return options{
		charset: Latin1,
		backend: "", // rasterizer.DefaultBackend
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithCharset selects the code page that maps slot code points to runes.
// The default is Latin1.
func WithCharset(cs Charset) Option {
	return func(o *options) {
		o.charset = cs
	}
}

// WithBackend selects the rasterizer backend used by GenerateFromFile.
// It has no effect on Generate, which receives a rasterizer directly.
func WithBackend(name string) Option {
	return func(o *options) {
		o.backend = name
	}
}
