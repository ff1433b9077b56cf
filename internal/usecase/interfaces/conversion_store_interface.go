package interfaces

import (
	"context"
	"time"

	"constructhub/internal/domain/entities"
)

//go:generate mockgen -source=conversion_store_interface.go -destination=mocks/conversion_store_interface.go -package=mock_interfaces

// IConversionStore performs the estimate-to-project conversion as one
// atomic write spanning both tables: the estimate flips to converted and
// gains its projectid in the same transaction that creates the project row.
//
// Convert returns ok=false (with nil error) when the transaction was
// cancelled by its conditions: the estimate disappeared, was already
// converted, or left the convertible set since the caller's read. The
// caller re-reads to classify. Any other failure is returned as-is and
// leaves both tables untouched.
type IConversionStore interface {
	Convert(ctx context.Context, estimateID string, p entities.Project, now time.Time) (ok bool, err error)
}
