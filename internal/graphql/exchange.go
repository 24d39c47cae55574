// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package graphql

import "context"

// ExchangeIO runs an operation through the rest of the pipeline.
type ExchangeIO func(ctx context.Context, op Operation) Result

// Exchange is one pipeline stage. It receives the next stage as forward and
// returns its own ExchangeIO; it may answer an operation itself or call
// forward and post-process the result.
type Exchange func(forward ExchangeIO) ExchangeIO

// Pipeline stage names, in execution order.
const (
	StageError = "error"
	StageCache = "cache"
	StageSSR   = "ssr"
	StageFetch = "fetch"
)

type stage struct {
	name     string
	exchange Exchange
}

// composeExchanges chains stages so that stages[0] sees the operation first
// and the last stage forwards to sink.
func composeExchanges(stages []stage, sink ExchangeIO) ExchangeIO {
	next := sink
	for i := len(stages) - 1; i >= 0; i-- {
		next = stages[i].exchange(next)
	}
	return next
}

// dropExchange terminates the pipeline. Operations only reach it when no
// stage produced a result.
func dropExchange(_ context.Context, op Operation) Result {
	return Result{
		Operation: op,
		Error:     NewCombinedError(ErrNoExchange, nil),
	}
}
