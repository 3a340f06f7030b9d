package models

import (
	"context"
	"errors"
	"time"

	"github.com/CoderDeepakJoura/BankingSolution-sub003/config"
	"github.com/CoderDeepakJoura/BankingSolution-sub003/utils"
)

type Member struct {
	ID           int       `gorm:"primary_key" json:"id"`
	BranchId     int       `gorm:"index;not null;uniqueIndex:idx_branch_member_no" json:"branch_id"`
	MemberNo     int64     `gorm:"not null;uniqueIndex:idx_branch_member_no" json:"member_no"`
	Name         string    `gorm:"size:100;not null" json:"name" binding:"required"`
	RelativeName string    `gorm:"size:100" json:"relative_name"`
	CasteId      int       `gorm:"index" json:"caste_id"`
	Caste        *Caste    `json:"caste,omitempty"`
	CategoryId   int       `gorm:"index" json:"category_id"`
	Category     *Category `json:"category,omitempty"`
	VillageId    int       `gorm:"index;not null" json:"village_id"`
	Village      *Village  `json:"village,omitempty"`
	Phone        string    `gorm:"size:20" json:"phone"`
	Address      string    `gorm:"size:255" json:"address"`
	JoinDate     time.Time `json:"join_date"`
	IsActive     *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewMember struct {
	Name         string     `json:"name" binding:"required"`
	RelativeName string     `json:"relative_name"`
	CasteId      int        `json:"caste_id"`
	CategoryId   int        `json:"category_id"`
	VillageId    int        `json:"village_id" binding:"required"`
	Phone        string     `json:"phone"`
	Address      string     `json:"address"`
	JoinDate     *time.Time `json:"join_date"`
}

func (input *NewMember) validate(ctx context.Context, branchId int, id int) error {
	if err := utils.ValidateResourceId[Village](ctx, branchId, input.VillageId); err != nil {
		return errors.New("invalid village id")
	}
	if input.CasteId > 0 {
		if err := utils.ValidateResourceId[Caste](ctx, branchId, input.CasteId); err != nil {
			return errors.New("invalid caste id")
		}
	}
	if input.CategoryId > 0 {
		if err := utils.ValidateResourceId[Category](ctx, branchId, input.CategoryId); err != nil {
			return errors.New("invalid category id")
		}
	}
	if len(input.Phone) > 0 {
		if err := utils.ValidatePhoneNumber(input.Phone, utils.CountryCode); err != nil {
			return err
		}
	}
	return nil
}

func CreateMember(ctx context.Context, input *NewMember) (*Member, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}

	if err := input.validate(ctx, branchId, 0); err != nil {
		return nil, err
	}

	memberNo, err := utils.GetSequence[Member](ctx, branchId, "member_no")
	if err != nil {
		return nil, err
	}

	joinDate := time.Now().UTC()
	if input.JoinDate != nil {
		joinDate = *input.JoinDate
	}

	db := config.GetDB()
	member := Member{
		BranchId:     branchId,
		MemberNo:     memberNo,
		Name:         input.Name,
		RelativeName: input.RelativeName,
		CasteId:      input.CasteId,
		CategoryId:   input.CategoryId,
		VillageId:    input.VillageId,
		Phone:        input.Phone,
		Address:      input.Address,
		JoinDate:     utils.StartOfDay(joinDate),
		IsActive:     utils.NewTrue(),
	}
	if err := db.WithContext(ctx).Create(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func UpdateMember(ctx context.Context, id int, input *NewMember) (*Member, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}

	db := config.GetDB()
	member, err := utils.FetchModel[Member](ctx, branchId, id)
	if err != nil {
		return nil, err
	}
	if err := input.validate(ctx, branchId, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"Name":         input.Name,
		"RelativeName": input.RelativeName,
		"CasteId":      input.CasteId,
		"CategoryId":   input.CategoryId,
		"VillageId":    input.VillageId,
		"Phone":        input.Phone,
		"Address":      input.Address,
	}
	if input.JoinDate != nil {
		updates["JoinDate"] = utils.StartOfDay(*input.JoinDate)
	}
	if err := db.WithContext(ctx).Model(&member).Updates(updates).Error; err != nil {
		return nil, err
	}
	return member, nil
}

func DeleteMember(ctx context.Context, id int) (*Member, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}

	db := config.GetDB()
	member, err := utils.FetchModel[Member](ctx, branchId, id)
	if err != nil {
		return nil, err
	}
	count, err := utils.ResourceCountWhere[SavingAccount](ctx, branchId, "member_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("member has saving accounts")
	}
	if err = db.WithContext(ctx).Delete(&member).Error; err != nil {
		return nil, err
	}
	return member, nil
}

func GetMember(ctx context.Context, id int) (*Member, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}
	return utils.FetchModel[Member](ctx, branchId, id, "Caste", "Category", "Village")
}

func GetMembers(ctx context.Context, name *string, villageId *int) ([]*Member, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}

	db := config.GetDB()
	var results []*Member
	dbCtx := db.WithContext(ctx).Where("branch_id = ?", branchId).
		Preload("Caste").Preload("Category").Preload("Village")
	if name != nil && len(*name) > 0 {
		dbCtx = dbCtx.Where("name LIKE ?", "%"+*name+"%")
	}
	if villageId != nil && *villageId > 0 {
		dbCtx = dbCtx.Where("village_id = ?", *villageId)
	}
	if err := dbCtx.Order("member_no").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
