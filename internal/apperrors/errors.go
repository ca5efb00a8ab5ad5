package apperrors

import "errors"

// Snapshot construction errors represent failures of the ingestion pass.
// A missing mandatory document is fatal to the whole pass; history
// documents are optional and degrade to empty sequences instead.
var (
	// ErrPositionsUnavailable indicates the positions document could not be fetched.
	ErrPositionsUnavailable = errors.New("positions document unavailable")

	// ErrSummaryUnavailable indicates the summary document could not be fetched.
	ErrSummaryUnavailable = errors.New("summary document unavailable")

	// ErrSnapshotNotReady indicates no ingestion pass has succeeded yet.
	ErrSnapshotNotReady = errors.New("portfolio snapshot not ready")
)

// Request validation errors represent bad query parameters on the view
// endpoints.
var (
	// ErrInvalidAccount indicates an account selector outside {All, Trading, ISA}.
	ErrInvalidAccount = errors.New("invalid account selector")

	// ErrInvalidDirection indicates a sort direction other than asc/desc.
	ErrInvalidDirection = errors.New("invalid sort direction")

	// ErrInvalidSide indicates a history side other than buy/sell.
	ErrInvalidSide = errors.New("invalid history side")
)

// Operation failure errors represent system-level failures serving derived
// data.
var (
	// ErrFailedToRefreshSnapshot indicates an on-demand ingestion pass failed.
	ErrFailedToRefreshSnapshot = errors.New("failed to refresh portfolio snapshot")
)
