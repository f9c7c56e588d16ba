// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/tls-version-checker/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/tls-version-checker/src/internal/report"
	tlsprobe "github.com/H0llyW00dzZ/tls-version-checker/src/internal/tls/probe"
	tlsversion "github.com/H0llyW00dzZ/tls-version-checker/src/internal/tls/version"
	"github.com/H0llyW00dzZ/tls-version-checker/src/logger"
)

// ErrorPrefix starts every reported connection or handshake failure.
const ErrorPrefix = "Error establishing SSL/TLS connection:"

// ErrTargetHostRequired is returned when --target-host is given an empty value.
var ErrTargetHostRequired = errors.New("cli: target host is required")

// Prober runs a single handshake probe.
type Prober interface {
	Probe(ctx context.Context, req tlsprobe.Request) (*tlsprobe.Report, error)
}

// options holds the parsed flag values for one invocation.
type options struct {
	targetHost   string
	tlsVersion   string
	certPath     string
	certPassword string
	table        bool
	verbose      bool
}

// Execute runs the root command against os.Args.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewCommand(version, log, nil).ExecuteContext(ctx)
}

// NewCommand builds the root command. Reports are written through log.
// When prober is nil a [tlsprobe.Prober] with default settings is used.
func NewCommand(version string, log logger.Logger, prober Prober) *cobra.Command {
	opts := &options{}
	exeName := posix.GetExecutableName()

	cmd := &cobra.Command{
		Use:     exeName + " --target-host HOST [FLAGS]",
		Short:   "Report the TLS parameters negotiated with a remote host",
		Version: version,
		Args:    cobra.NoArgs,
		Example: examples(exeName),
		RunE: func(cmd *cobra.Command, args []string) error {
			if prober == nil {
				debug := logger.NewDebug(cmd.ErrOrStderr(), opts.verbose)
				prober = tlsprobe.New(tlsprobe.Config{Debug: &debug})
			}
			return run(cmd.Context(), opts, log, prober)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.targetHost, "target-host", "t", "", "the host to connect with")
	flags.StringVarP(&opts.tlsVersion, "use-tls-version", "u", tlsversion.DefaultToken,
		"force the use of a specific TLS version ("+tlsversion.TokenList()+")")
	flags.StringVarP(&opts.certPath, "cert-path", "c", "", "path to client certificate to be used in connection")
	flags.StringVarP(&opts.certPassword, "cert-pwd", "p", "", "certificate password")
	flags.BoolVar(&opts.table, "table", false, "display the negotiated values as a markdown table")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "trace the connection attempt on stderr")
	_ = cmd.MarkFlagRequired("target-host")

	return cmd
}

// run resolves the connection request and probes the target once.
func run(ctx context.Context, opts *options, log logger.Logger, prober Prober) error {
	if strings.TrimSpace(opts.targetHost) == "" {
		return ErrTargetHostRequired
	}

	v := tlsversion.Parse(opts.tlsVersion)
	if v == tlsversion.Unrecognized {
		log.Printf("Invalid TLS version. Use one of the following: %s", tlsversion.TokenList())
		return nil
	}

	req := tlsprobe.Request{
		TargetHost:        opts.targetHost,
		Version:           v,
		ClientCertificate: tlsprobe.NewClientCertificate(opts.certPath, opts.certPassword),
	}

	r, err := prober.Probe(ctx, req)
	if err != nil {
		log.Printf("%s\n %v", ErrorPrefix, err)
		return nil
	}

	if opts.table {
		log.Printf("%s", report.Table(r))
	} else {
		log.Printf("%s", report.Text(r))
	}
	return nil
}

func examples(exeName string) string {
	return fmt.Sprintf(`  # Connect to host using default system TLS config
  %[1]s --target-host example.com

  # Connect to host using TLS 1.2
  %[1]s --target-host example.com --use-tls-version tls12

  # Connect to host using a client certificate
  %[1]s --target-host example.com --cert-path C:/cert.pfx --cert-pwd 123456`, exeName)
}
