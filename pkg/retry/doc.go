// Package retry provides configurable retry mechanisms with exponential backoff.
//
// This package handles transient failures in the engine's external dependencies
// (snapshot writes, the battle-log transport, store loading) by automatically
// retrying operations with configurable delays, backoff strategies, and jitter
// to prevent thundering herd problems.
//
// # Configuration
//
// Create a Retrier with custom retry policy:
//
//	config := retry.RetryConfig{
//	    MaxAttempts:       5,
//	    InitialDelay:      100 * time.Millisecond,
//	    MaxDelay:          30 * time.Second,
//	    BackoffMultiplier: 2.0,
//	    JitterMaxPercent:  25,
//	}
//	retrier := retry.NewRetrier(config)
//
// # Executing with Retry
//
// Wrap operations with automatic retry on failure:
//
//	err := retrier.Execute(ctx, func(ctx context.Context) error {
//	    return fileStore.Save("battle-42.yaml", snap)
//	})
//
// ExecuteWithResult takes an operation that returns a value as well as an
// error; the value is discarded and only the error is returned:
//
//	err := retrier.ExecuteWithResult(ctx, func(ctx context.Context) (any, error) {
//	    return nil, memStore.LoadDirectory(dir)
//	})
//
// # Backoff Strategy
//
// Delays increase exponentially between retries:
//
//	Attempt 1: InitialDelay (100ms)
//	Attempt 2: InitialDelay * BackoffMultiplier (200ms)
//	Attempt 3: Previous * BackoffMultiplier (400ms)
//	...up to MaxDelay
//
// Jitter is applied to prevent synchronized retries across clients.
//
// # Pre-configured Retriers
//
// Global retriers with common configurations:
//
//	// Default: 3 attempts, 100ms initial delay
//	err := retry.Execute(ctx, operation)
//
//	// Transport broadcast: 5 attempts, 200ms initial, 60s max
//	err := retry.ExecuteTransport(ctx, operation)
//
//	// Snapshot persistence: 3 attempts, 50ms initial, 5s max
//	err := retry.ExecuteSnapshot(ctx, operation)
//
// # Retryable Errors
//
// Every non-nil error triggers a retry. RetryableErrors can list errors to
// retry, but an error missing from the list is retried as well:
//
//	config.RetryableErrors = []error{
//	    syscall.ECONNREFUSED,
//	    io.ErrUnexpectedEOF,
//	}
//
// # Context Support
//
// Retries respect context cancellation and deadlines:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
//	defer cancel()
//	err := retrier.Execute(ctx, operation)
//
// # Logging
//
// Retry attempts are logged with structured context including attempt number,
// delay duration, and error details for debugging transient failures.
package retry
