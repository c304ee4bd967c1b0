// Package registry issues client identifiers and persists assessment
// snapshots. Two backends are provided: SQLite for single-node deployments
// and PostgreSQL for shared ones.
package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/corezen-health/screening-server/internal/domain"
)

// Issuer hands out sequential client identifiers. Identifiers are
// zero-padded decimal strings; every call returns a new one, even across
// restarts.
type Issuer interface {
	NextClientID(ctx context.Context) (string, error)
}

// Snapshot is one stored assessment record for a client.
type Snapshot struct {
	ID        int64                    `json:"id"`
	ClientID  string                   `json:"client_id"`
	Record    *domain.AssessmentRecord `json:"record"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt time.Time                `json:"updated_at"`
}

// Store persists client identifiers and assessment snapshots.
type Store interface {
	Issuer

	// SaveSnapshot inserts or replaces the snapshot for a client.
	SaveSnapshot(ctx context.Context, snap *Snapshot) error

	// GetSnapshot returns the stored snapshot for a client, or nil when
	// none exists.
	GetSnapshot(ctx context.Context, clientID string) (*Snapshot, error)

	// ListSnapshots returns snapshots newest first.
	ListSnapshots(ctx context.Context, limit, offset int) ([]*Snapshot, error)

	// Count returns the number of stored snapshots.
	Count(ctx context.Context) (int64, error)

	// DeleteSnapshot removes a snapshot by client id.
	DeleteSnapshot(ctx context.Context, clientID string) error

	Close() error
}

// defaultIDWidth matches the four digit identifiers printed on report
// paperwork.
const defaultIDWidth = 4

// formatClientID renders a counter value as a zero-padded identifier. Values
// that outgrow the width keep all their digits.
func formatClientID(n int64, width int) string {
	if width <= 0 {
		width = defaultIDWidth
	}
	return fmt.Sprintf("%0*d", width, n)
}
