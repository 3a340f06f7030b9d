package models

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/CoderDeepakJoura/BankingSolution-sub003/config"
	"github.com/CoderDeepakJoura/BankingSolution-sub003/utils"
)

type User struct {
	ID        int       `gorm:"primary_key" json:"id"`
	Username  string    `gorm:"size:100;not null;uniqueIndex" json:"username" binding:"required"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Name      string    `gorm:"size:100" json:"name"`
	Role      UserRole  `gorm:"type:enum('A','O','C');not null;default:'O'" json:"role"`
	BranchId  int       `gorm:"index" json:"branch_id"`
	Branch    *Branch   `json:"branch,omitempty"`
	IsActive  *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewUser struct {
	Username string   `json:"username" binding:"required"`
	Password string   `json:"password" binding:"required,min=8"`
	Name     string   `json:"name"`
	Role     UserRole `json:"role"`
	BranchId int      `json:"branch_id"`
}

func (input *NewUser) validate(ctx context.Context, id int) error {
	if err := utils.ValidateUnique[User](ctx, 0, "username", input.Username, id); err != nil {
		return err
	}
	if !input.Role.IsValid() {
		return errors.New("invalid user role")
	}
	if input.Role != UserRoleAdmin {
		if err := utils.ValidateResourceId[Branch](ctx, 0, input.BranchId); err != nil {
			return errors.New("invalid branch id")
		}
	}
	return nil
}

func CreateUser(ctx context.Context, input *NewUser) (*User, error) {
	if isAdmin, _ := utils.GetIsAdminFromContext(ctx); !isAdmin {
		return nil, errors.New("only admin can create users")
	}
	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	user := User{
		Username: input.Username,
		Password: string(hashed),
		Name:     input.Name,
		Role:     input.Role,
		BranchId: input.BranchId,
		IsActive: utils.NewTrue(),
	}
	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Login checks the credentials and issues a JWT. The token is registered in
// redis so sessions can be revoked server side before the JWT expires.
func Login(ctx context.Context, username string, password string) (string, *User, error) {
	db := config.GetDB()
	var user User
	if err := db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return "", nil, errors.New("invalid username or password")
	}
	if user.IsActive != nil && !*user.IsActive {
		return "", nil, errors.New("user is disabled")
	}
	if err := utils.ComparePassword(user.Password, password); err != nil {
		return "", nil, errors.New("invalid username or password")
	}

	token, err := utils.JwtGenerate(user.ID, user.BranchId, string(user.Role))
	if err != nil {
		return "", nil, err
	}

	lifespan := 24
	if v, err := strconv.Atoi(os.Getenv("TOKEN_HOUR_LIFESPAN")); err == nil && v > 0 {
		lifespan = v
	}
	if err := config.SetRedisValue("Token:"+token, user.Username, time.Duration(lifespan)*time.Hour); err != nil {
		return "", nil, err
	}
	_ = config.AddRedisSet("UserTokens:"+strconv.Itoa(user.ID), token)

	return token, &user, nil
}

// Logout revokes the current session token.
func Logout(ctx context.Context) error {
	token, ok := utils.GetTokenFromContext(ctx)
	if !ok || token == "" {
		return errors.New("no active session")
	}
	if err := config.RemoveRedisKey("Token:" + token); err != nil {
		return err
	}
	if userId, ok := utils.GetUserIdFromContext(ctx); ok {
		_ = config.RemoveRedisSetMember("UserTokens:"+strconv.Itoa(userId), token)
	}
	return nil
}

// ClearCache flushes the redis cache. Sequences and cached flags are
// rebuilt from the database on next use.
func ClearCache(ctx context.Context) error {
	if isAdmin, _ := utils.GetIsAdminFromContext(ctx); !isAdmin {
		return errors.New("only admin can clear the cache")
	}
	return config.ClearRedis(ctx)
}

// LogoutAll revokes every session token issued to the current user.
func LogoutAll(ctx context.Context) error {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId <= 0 {
		return errors.New("no active session")
	}
	setKey := "UserTokens:" + strconv.Itoa(userId)
	tokens, err := config.GetRedisSetMembers(setKey)
	if err != nil {
		return err
	}
	for _, t := range tokens {
		if err := config.RemoveRedisKey("Token:" + t); err != nil {
			return err
		}
	}
	return config.RemoveRedisKey(setKey)
}

func GetUser(ctx context.Context, id int) (*User, error) {
	return utils.FetchModel[User](ctx, 0, id, "Branch")
}

func GetUsers(ctx context.Context, branchId *int) ([]*User, error) {
	if isAdmin, _ := utils.GetIsAdminFromContext(ctx); !isAdmin {
		return nil, errors.New("only admin can list users")
	}
	db := config.GetDB()
	var results []*User
	dbCtx := db.WithContext(ctx).Preload("Branch")
	if branchId != nil && *branchId > 0 {
		dbCtx = dbCtx.Where("branch_id = ?", *branchId)
	}
	if err := dbCtx.Order("username").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
