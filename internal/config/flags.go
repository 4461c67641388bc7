// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args and returns the resulting
// config together with the positional arguments that follow the flags.
//
// Flags:
//
//	-a listen address in format [host]:port
//	-log-format access log format (tiny, short, common, combined, dev)
//	-skip-code-threshold do not log responses with a lower status code
//	-request-timeout request timeout (e.g. "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
//	-app-version version reported by the server
//	-server server address used by the client
//	-client-timeout client request timeout
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, []string, error) {
	var listenAddress NetAddress
	var logFormat string
	var skipCodeThreshold int
	var requestTimeout, shutdownTimeout time.Duration
	var appVersion string
	var serverAddress string
	var clientTimeout time.Duration
	var jsonConfigPath string

	fs := flag.NewFlagSet("employee-registry", flag.ContinueOnError)
	fs.Var(&listenAddress, "a", "Listen address [host]:port")
	fs.StringVar(&logFormat, "log-format", "", "Access log format (tiny, short, common, combined, dev)")
	fs.IntVar(&skipCodeThreshold, "skip-code-threshold", 0, "Do not log responses with a lower status code")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.StringVar(&appVersion, "app-version", "", "Application version")
	fs.StringVar(&serverAddress, "server", "", "Server address used by the client")
	fs.DurationVar(&clientTimeout, "client-timeout", 0, "Client request timeout (e.g., 5s)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	// an explicit -skip-code-threshold=0 must survive merging
	var skipBelowStatus *int
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "skip-code-threshold" {
			skipBelowStatus = &skipCodeThreshold
		}
	})

	cfg := &StructuredConfig{
		App: App{
			Version: appVersion,
		},
		Server: Server{
			Host:               listenAddress.Host,
			Port:               listenAddress.Port,
			LogFormat:          logFormat,
			LogSkipBelowStatus: skipBelowStatus,
			RequestTimeout:     requestTimeout,
			ShutdownTimeout:    shutdownTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: clientTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}

	return cfg, fs.Args(), nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host means all interfaces. It validates the port
// range and checks IP correctness unless host is "localhost".
func (a *NetAddress) Set(s string) error {
	host, portString, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `[host]:port`")
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return err
	}

	if port < 1 || port > maxPort {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
