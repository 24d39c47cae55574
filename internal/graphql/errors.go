// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package graphql

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrNoData is returned by Result.Decode when the result has no data.
	ErrNoData = errors.New("graphql result has no data")
	// ErrNoExchange is the network error of an operation that fell through
	// every exchange without being handled.
	ErrNoExchange = errors.New("no exchange handled the operation")
	// ErrInvalidResponse is returned when the API answered with a body that
	// is neither a GraphQL response nor a mapped HTTP error.
	ErrInvalidResponse = errors.New("invalid graphql response")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

// GraphQLError is one entry of the "errors" member of a GraphQL response.
type GraphQLError struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// CombinedError merges a transport failure and the GraphQL errors of a
// response into one error value.
//
// Message starts out as "[Network] ..." or one "[GraphQL] ..." line per
// GraphQL error. The error exchange rewrites it before results leave the
// client; NetworkError and GraphQLErrors are never modified.
type CombinedError struct {
	NetworkError  error
	GraphQLErrors []GraphQLError
	Message       string
}

// NewCombinedError builds a CombinedError and its tagged message.
func NewCombinedError(networkErr error, graphQLErrors []GraphQLError) *CombinedError {
	return &CombinedError{
		NetworkError:  networkErr,
		GraphQLErrors: graphQLErrors,
		Message:       combinedErrorMessage(networkErr, graphQLErrors),
	}
}

func (e *CombinedError) Error() string {
	return e.Message
}

// Unwrap exposes the network error so that errors.Is matches the transport
// sentinels (ErrUnauthorized and friends).
func (e *CombinedError) Unwrap() error {
	return e.NetworkError
}

func combinedErrorMessage(networkErr error, graphQLErrors []GraphQLError) string {
	if networkErr != nil {
		return "[Network] " + networkErr.Error()
	}

	lines := make([]string, 0, len(graphQLErrors))
	for _, gqlErr := range graphQLErrors {
		lines = append(lines, "[GraphQL] "+gqlErr.Message)
	}
	return strings.Join(lines, "\n")
}

// bracketPrefixRe matches a bracketed tag without nested brackets at the very
// start of the message, plus any whitespace after it.
var bracketPrefixRe = regexp.MustCompile(`^\[[^\[\]]*\]\s*`)

// NormalizeErrorMessage strips a leading "[tag] " prefix from raw. Messages
// without such a prefix are returned unchanged. Only the first tag is
// stripped: a multi-error message keeps the tags of its later lines.
//
//	NormalizeErrorMessage("[graphql] Invalid input") // "Invalid input"
func NormalizeErrorMessage(raw string) string {
	return bracketPrefixRe.ReplaceAllString(raw, "")
}
