package membership

import "context"

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=membership_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Get(ctx context.Context, userID string) (*Membership, error)
	Save(ctx context.Context, m *Membership) error
}
