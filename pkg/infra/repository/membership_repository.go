package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/NeuralTrust/RiskGate/pkg/domain"
	"github.com/NeuralTrust/RiskGate/pkg/domain/membership"
	"gorm.io/gorm"
)

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) membership.Repository {
	return &MembershipRepository{
		db: db,
	}
}

func (r *MembershipRepository) Get(ctx context.Context, userID string) (*membership.Membership, error) {
	entity := new(membership.Membership)
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NewNotFoundError("membership", userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return entity, nil
}

func (r *MembershipRepository) Save(ctx context.Context, m *membership.Membership) error {
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return fmt.Errorf("failed to save membership: %w", err)
	}
	return nil
}
