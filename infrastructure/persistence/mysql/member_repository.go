package mysql

import (
	"context"
	"errors"

	"shopapi/domain/member"
	"shopapi/infrastructure/persistence"
	"shopapi/infrastructure/persistence/mysql/po"

	"gorm.io/gorm"
)

// MemberRepository MySQL implementation of member.Repository.
type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// getDB joins the ambient unit-of-work transaction when one is in the
// context.
func (r *MemberRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Save inserts or updates the member and returns its id.
func (r *MemberRepository) Save(ctx context.Context, m *member.Member) (int64, error) {
	memberPO := po.FromMemberDomain(m)
	if err := r.getDB(ctx).Save(memberPO).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, member.ErrDuplicateName
		}
		return 0, err
	}
	return memberPO.ID, nil
}

func (r *MemberRepository) FindByID(ctx context.Context, id int64) (*member.Member, error) {
	var memberPO po.MemberPO
	if err := r.getDB(ctx).First(&memberPO, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, member.ErrMemberNotFound
		}
		return nil, err
	}
	return memberPO.ToDomain(), nil
}

func (r *MemberRepository) FindByName(ctx context.Context, name string) (*member.Member, error) {
	var memberPO po.MemberPO
	if err := r.getDB(ctx).First(&memberPO, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, member.ErrMemberNotFound
		}
		return nil, err
	}
	return memberPO.ToDomain(), nil
}

func (r *MemberRepository) FindAll(ctx context.Context) ([]*member.Member, error) {
	var memberPOs []po.MemberPO
	if err := r.getDB(ctx).Order("id").Find(&memberPOs).Error; err != nil {
		return nil, err
	}
	members := make([]*member.Member, len(memberPOs))
	for i := range memberPOs {
		members[i] = memberPOs[i].ToDomain()
	}
	return members, nil
}

var _ member.Repository = (*MemberRepository)(nil)
