package internal

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config  *Config
	version string
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithVersion sets the build version reported in exports.
func WithVersion(v string) Option {
	return func(a *application) {
		a.version = v
	}
}
