package options

import (
	"errors"
	"os"
	"time"

	"github.com/akamensky/argparse"
)

type Options struct {
	LogFile        *string
	CertFile       *string
	KeyFile        *string
	Mode           *string
	Port           *int
	RequestTimeout *int
	parser         *argparse.Parser
}

func NewOptions() (*Options, error) {
	return parse(os.Args)
}

func parse(args []string) (*Options, error) {
	option := &Options{}

	parser := argparse.NewParser("readings-api-server", "Argument Parser for readings api-server configurations")
	option.parser = parser

	option.LogFile = parser.String("l", "log-file", &argparse.Options{
		Help:    "log-file name",
		Default: "/var/log/app.log",
	})
	option.CertFile = parser.String("", "tls-cert-file", &argparse.Options{
		Help: "CertFile containing the defaultx509 Certificate for HTTPS. (CA cert)",
	})
	option.KeyFile = parser.String("", "tls-private-key-file", &argparse.Options{
		Help: "Private key file containing the default x509 private key matching --tls-cert-file",
	})
	option.Port = parser.Int("p", "port", &argparse.Options{
		Help:    "The port used by api-server",
		Default: 8000,
	})
	option.Mode = parser.Selector("m", "mode", []string{"release", "development", "debug"}, &argparse.Options{
		Help:    "Choose release/development mode (default debug mode)",
		Default: "debug",
	})
	option.RequestTimeout = parser.Int("t", "request-timeout", &argparse.Options{
		Help:    "Seconds a request may spend on the database, 0 disables the limit",
		Default: 10,
	})

	if err := parser.Parse(args); err != nil {
		return option, err
	}

	if err := option.Validate(); err != nil {
		return option, err
	}
	return option, nil
}

func (o *Options) Validate() error {
	if (*o.CertFile == "") != (*o.KeyFile == "") {
		return errors.New("certificate/private key both must be present or neither must be present")
	}

	if *o.Port <= 0 || *o.Port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	if *o.RequestTimeout < 0 {
		return errors.New("request timeout must not be negative")
	}
	return nil
}

func (o *Options) Timeout() time.Duration {
	return time.Duration(*o.RequestTimeout) * time.Second
}

func (o *Options) Usage(err error) string {
	return o.parser.Usage(err)
}
