// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package graphql

import (
	"context"

	"github.com/MKhiriev/nekmart-admin/internal/metrics"
)

// ErrorExchange calls onError for every result that carries a CombinedError.
//
// onError receives a copy of the error and may rewrite its Message; the copy
// is what the caller sees. Results held by later stages (cache, SSR) keep the
// original error, so the rewrite happens exactly once per delivered result.
func ErrorExchange(onError func(err *CombinedError, op Operation)) Exchange {
	return func(forward ExchangeIO) ExchangeIO {
		return func(ctx context.Context, op Operation) Result {
			res := forward(ctx, op)
			if res.Error == nil {
				return res
			}

			metrics.OperationErrorsTotal.WithLabelValues(errorClass(res.Error)).Inc()

			combined := *res.Error
			if onError != nil {
				onError(&combined, op)
			}
			res.Error = &combined

			return res
		}
	}
}

func errorClass(err *CombinedError) string {
	if err.NetworkError != nil {
		return "network"
	}
	return "graphql"
}
