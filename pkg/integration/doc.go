// Package integration combines circuit breaker and retry patterns for
// comprehensive fault tolerance across the engine's external dependencies:
// snapshot persistence, the battle-log transport broadcast, and data store
// loading.
//
// This package provides ResilientExecutor which layers retry logic on top of
// circuit breaker protection, giving operations the benefits of both mechanisms:
// automatic retries for transient failures and fast-fail for persistent outages.
//
// # Execution Flow
//
// When executing an operation:
//
//  1. The retrier makes an attempt, which passes through the circuit breaker
//  2. If the circuit is open, the attempt fails with ErrCircuitBreakerOpen
//     without running the operation
//  3. Otherwise the operation runs and the circuit breaker records its
//     success or failure for state management
//  4. A failed attempt (an open circuit included) is retried with
//     exponential backoff until one succeeds, MaxAttempts is reached, or
//     the context is cancelled
//
// # Creating Executors
//
// Create a custom executor with specific configuration:
//
//	cbConfig := resilience.CircuitBreakerConfig{
//	    MaxFailures: 5,
//	    Timeout:     30 * time.Second,
//	}
//	retryConfig := retry.RetryConfig{
//	    MaxAttempts:  3,
//	    InitialDelay: 100 * time.Millisecond,
//	}
//	executor := integration.CreateCustomExecutor("my-service", cbConfig, retryConfig)
//
// # Executing Operations
//
// Wrap operations with combined protection:
//
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return fileStore.Save("battle-42.yaml", snap)
//	})
//
// # Pre-configured Executors
//
// Global executors for common operation types:
//
//	// Snapshot persistence writes
//	err := integration.ExecuteSnapshotOperation(ctx, operation)
//
//	// Battle-log transport broadcast
//	err := integration.ExecuteTransportOperation(ctx, operation)
//
//	// Data store loading
//	err := integration.ExecuteStoreLoaderOperation(ctx, operation)
//
// # Ad-hoc Execution
//
// For one-off operations with custom options:
//
//	err := integration.ExecuteResilient(ctx, operation,
//	    integration.ConfigureRetry(retryConfig),
//	    integration.ConfigureCircuitBreaker(cbConfig),
//	)
//
// # Disabling Mechanisms
//
// Run with only one protection mechanism:
//
//	// Circuit breaker only, no retry
//	err := integration.WithRetryDisabled(cbConfig).Execute(ctx, operation)
//
//	// Retry only, no circuit breaker
//	err := integration.WithCircuitBreakerDisabled(retryConfig).Execute(ctx, operation)
//
// # Statistics
//
// Query the executor's circuit breaker statistics:
//
//	stats := executor.GetStats()
//	// Contains circuit breaker state and counters; no retry metrics
//
// # Testing
//
// Reset global executors between tests:
//
//	integration.ResetExecutorsForTesting()
package integration
