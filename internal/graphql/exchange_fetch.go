// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package graphql

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/nekmart-admin/internal/logger"
	"github.com/MKhiriev/nekmart-admin/internal/metrics"
	"github.com/MKhiriev/nekmart-admin/internal/utils"
	"github.com/go-resty/resty/v2"
)

const acceptHeader = "application/graphql-response+json, application/json"

type fetchRequest struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
	OperationName string         `json:"operationName,omitempty"`
}

type fetchResponse struct {
	Data       json.RawMessage `json:"data"`
	Errors     []GraphQLError  `json:"errors"`
	Extensions map[string]any  `json:"extensions"`
}

// fetchExchange is the terminal stage: it posts the operation to url and never
// calls forward. With CredentialsInclude the cookies of the inbound request
// (see utils.WithIncomingCookies) are attached in addition to whatever the
// client's own cookie jar holds.
func fetchExchange(client *utils.HTTPClient, url string, opts FetchOptions, logger *logger.Logger) Exchange {
	return func(_ ExchangeIO) ExchangeIO {
		return func(ctx context.Context, op Operation) Result {
			req := client.R().
				SetContext(ctx).
				SetHeader("Content-Type", "application/json").
				SetHeader("Accept", acceptHeader).
				SetBody(fetchRequest{
					Query:         op.Query,
					Variables:     op.Variables,
					OperationName: op.OperationName,
				})

			if opts.Credentials == CredentialsInclude {
				if cookies, ok := utils.GetIncomingCookiesFromContext(ctx); ok && len(cookies) > 0 {
					req.SetCookies(cookies)
				}
			}

			start := time.Now()
			resp, err := req.Post(url)
			metrics.FetchDuration.Observe(time.Since(start).Seconds())

			if err != nil {
				logger.Err(err).Str("operation", op.OperationName).Msg("graphql request failed")
				return networkErrorResult(op, fmt.Errorf("graphql request: %w", err))
			}

			return parseFetchResponse(op, resp)
		}
	}
}

func parseFetchResponse(op Operation, resp *resty.Response) Result {
	var payload fetchResponse
	decodeErr := json.Unmarshal(resp.Body(), &payload)
	isGraphQLBody := decodeErr == nil && (hasJSONValue(payload.Data) || len(payload.Errors) > 0)

	// A GraphQL body wins over the status code: servers following the
	// graphql-response+json media type answer 4xx with errors in the body.
	if !isGraphQLBody {
		if err := mapHTTPError(resp); err != nil {
			return networkErrorResult(op, err)
		}
		if decodeErr != nil {
			return networkErrorResult(op, fmt.Errorf("%w: %v", ErrInvalidResponse, decodeErr))
		}
		return networkErrorResult(op, fmt.Errorf("%w: no data or errors", ErrInvalidResponse))
	}

	res := Result{
		Operation:  op,
		Extensions: payload.Extensions,
		Source:     SourceNetwork,
	}
	if hasJSONValue(payload.Data) {
		res.Data = payload.Data
	}
	if len(payload.Errors) > 0 {
		res.Error = NewCombinedError(nil, payload.Errors)
	}
	return res
}

func networkErrorResult(op Operation, err error) Result {
	return Result{
		Operation: op,
		Error:     NewCombinedError(err, nil),
		Source:    SourceNetwork,
	}
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
