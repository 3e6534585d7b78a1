package staff

import "context"

// StaffRepository defines read access to the clinic staff roster.
type StaffRepository interface {
	// GetByID retrieves a staff member by ID
	GetByID(ctx context.Context, id string) (Staff, error)

	// List retrieves the full roster ordered by username
	List(ctx context.Context) ([]Staff, error)
}
