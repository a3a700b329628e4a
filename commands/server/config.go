package server

import (
	stderrors "errors"
	"flag"
	"strings"
	"time"

	"github.com/iov-one/cattery/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	// ConfigName is the name of the optional configuration file that is
	// looked up in the home directory, without the extension.
	ConfigName = "catteryd"
	// EnvPrefix is prepended to every environment variable name, for
	// example CATTERY_NATS_URL.
	EnvPrefix = "CATTERY"
)

const (
	flagBind     = "bind"
	flagDebug    = "debug"
	flagLogLevel = "log_level"
	flagNATSURL  = "nats_url"
	flagSubject  = "nats_subject"
)

// Config is the daemon configuration. Values are read from the command line,
// the environment and the catteryd.toml file in the home directory, in that
// order of precedence.
type Config struct {
	Home     string     `mapstructure:"home"`
	Bind     string     `mapstructure:"bind"`
	Debug    bool       `mapstructure:"debug"`
	LogLevel string     `mapstructure:"log_level"`
	NATS     NATSConfig `mapstructure:"nats"`
}

// NATSConfig configures the event publisher. Publishing is disabled when the
// URL is empty.
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	Subject        string        `mapstructure:"subject"`
	ConnectionName string        `mapstructure:"connection_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
}

// Validate returns an error if the configuration cannot be used to start
// the daemon.
func (c *Config) Validate() error {
	var errs error
	if c.Bind == "" {
		errs = errors.Append(errs, errors.Wrap(errors.ErrEmpty, "bind address"))
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = errors.Append(errs, errors.Wrapf(errors.ErrInput, "log level %q", c.LogLevel))
	}
	if c.NATS.URL != "" && c.NATS.Subject == "" {
		errs = errors.Append(errs, errors.Wrap(errors.ErrEmpty, "nats subject"))
	}
	if c.NATS.MaxReconnects < -1 {
		errs = errors.Append(errs, errors.Wrap(errors.ErrInput, "nats max reconnects"))
	}
	return errs
}

func newViper(home string) *viper.Viper {
	v := viper.New()
	v.SetConfigName(ConfigName)
	v.SetConfigType("toml")
	v.AddConfigPath(home)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Every key must have a default, otherwise environment values are not
	// seen by Unmarshal.
	v.SetDefault("home", home)
	v.SetDefault("bind", "tcp://localhost:26658")
	v.SetDefault("debug", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("nats.url", "")
	v.SetDefault("nats.subject", "cattery")
	v.SetDefault("nats.connection_name", "catteryd")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	return v
}

// LoadConfig reads the configuration for given home directory. Command line
// arguments are parsed with the start flags and take precedence over any
// other source.
func LoadConfig(home string, args []string) (*Config, error) {
	v := newViper(home)

	fs := flag.NewFlagSet("start", flag.ContinueOnError)
	fs.String(flagBind, v.GetString("bind"), "address server listens on")
	fs.Bool(flagDebug, false, "call stack returned on error")
	fs.String(flagLogLevel, v.GetString("log_level"), "one of debug, info, warn, error")
	fs.String(flagNATSURL, "", "NATS server receiving block events, disabled if empty")
	fs.String(flagSubject, v.GetString("nats.subject"), "NATS subject prefix of published events")
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) {
			return nil, errors.Wrapf(errors.ErrInput, "cannot read config: %s", err)
		}
	}

	// Only the flags given explicitly override the other sources.
	fs.Visit(func(f *flag.Flag) {
		key := f.Name
		switch key {
		case flagNATSURL:
			key = "nats.url"
		case flagSubject:
			key = "nats.subject"
		}
		v.Set(key, f.Value.(flag.Getter).Get())
	})

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "cannot unmarshal config: %s", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &cfg, nil
}
