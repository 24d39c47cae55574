// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (usually os.Args[1:]).
// Unknown flags are an error.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-api-url GraphQL API endpoint
//	-graphql-timeout GraphQL request timeout (e.g., "15s")
//	-adapter-address BFF base URL used by the terminal client
//	-adapter-timeout BFF request timeout
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-images-dir image bucket directory
//	-images-folder default image folder
//	-image-url public base URL of stored images
//	-notification-timeout toast auto-close timeout
//	-log-file terminal client log file
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("nekmart-admin", flag.ContinueOnError)

	var serverAddress NetAddress
	var apiURL, adapterAddress string
	var graphqlTimeout, adapterTimeout, requestTimeout, notificationTimeout time.Duration
	var imagesDir, imagesFolder, imageURL string
	var logFile string
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&apiURL, "api-url", "", "GraphQL API endpoint")
	fs.DurationVar(&graphqlTimeout, "graphql-timeout", 0, "GraphQL request timeout (e.g., 15s)")
	fs.StringVar(&adapterAddress, "adapter-address", "", "BFF base URL")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "BFF request timeout")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&imagesDir, "images-dir", "", "Image bucket directory")
	fs.StringVar(&imagesFolder, "images-folder", "", "Default image folder")
	fs.StringVar(&imageURL, "image-url", "", "Public base URL of stored images")
	fs.DurationVar(&notificationTimeout, "notification-timeout", 0, "Toast auto-close timeout")
	fs.StringVar(&logFile, "log-file", "", "Terminal client log file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			ImageURL: imageURL,
			LogFile:  logFile,
		},
		GraphQL: GraphQL{
			APIURL:         apiURL,
			RequestTimeout: graphqlTimeout,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
		},
		Storage: Storage{
			Images: Images{
				Dir:           imagesDir,
				DefaultFolder: imagesFolder,
			},
		},
		Notifications: Notifications{
			Timeout: notificationTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
