package utils

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/CoderDeepakJoura/BankingSolution-sub003/config"
)

var mutex sync.Mutex

func GetCacheLifespan() time.Duration {
	lifespan, err := strconv.Atoi(os.Getenv("CACHE_LIFESPAN"))
	if err != nil {
		lifespan = 1
	}
	return time.Duration(lifespan) * time.Hour
}

/* generic functions */

func GetTypeName[T any]() string {
	var v T
	typeOfT := reflect.TypeOf(v)
	return typeOfT.Name()
}

/* Redis */

// store instance, obj should be a pointer
func StoreRedis[T any](obj any, id int) error {
	key := GetTypeName[T]() + ":" + fmt.Sprint(id)
	return config.SetRedisObject(key, &obj, GetCacheLifespan())
}

// listCacheKey is shared by store, retrieve and remove so invalidation
// always hits the key the list was cached under (branchId 0 = global list).
func listCacheKey[T any](branchId int) string {
	if branchId == 0 {
		return GetTypeName[T]() + "List"
	}
	return GetTypeName[T]() + "List:" + fmt.Sprint(branchId)
}

// store list per branch (branchId 0 = global list)
func StoreRedisList[T any](obj any, branchId int) error {
	return config.SetRedisObject(listCacheKey[T](branchId), &obj, GetCacheLifespan())
}

// get from redis
// returns nil if does not exist
func RetrieveRedis[T any](id int) (*T, error) {
	var result *T
	key := GetTypeName[T]() + ":" + fmt.Sprint(id)
	exists, err := config.GetRedisObject(key, &result)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}
	return result, nil
}

func RetrieveRedisList[T any](branchId int) ([]*T, error) {
	var result []*T
	exists, err := config.GetRedisObject(listCacheKey[T](branchId), &result)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}
	return result, nil
}

// clear list, TypeList:$branch_id
func RemoveRedisList[T any](branchId int) error {
	return config.RemoveRedisKey(listCacheKey[T](branchId))
}

// remove an instance, Type:$id
func RemoveRedisItem[T any](id int) error {
	key := GetTypeName[T]() + ":" + fmt.Sprint(id)
	return config.RemoveRedisKey(key)
}

// GetSequence hands out the next value of a per-branch numbering column
// (member_no, account_no). The redis counter is a cache over max($column);
// uniqueness is re-checked against the database before the number is used.
func GetSequence[T any](ctx context.Context, branchId int, column string) (int64, error) {
	var model T
	mutex.Lock()
	defer mutex.Unlock()
	cacheKey := fmt.Sprint(branchId) + "-" + strings.ToLower(GetTypeName[T]()) + "_" + column
	var seqNo int64
	var err error
	db := config.GetDB()

	for {
		seqNo, err = config.GetRedisCounter(ctx, cacheKey)
		if err != nil {
			return 0, err
		}
		// if not found in redis, get from db
		if seqNo <= 1 {
			var dbSeq *int64
			if err := db.WithContext(ctx).Model(&model).Select("max(" + column + ")").
				Where("branch_id = ?", branchId).
				Scan(&dbSeq).Error; err != nil {
				return 0, err
			}
			if dbSeq == nil {
				seqNo = 0
			} else {
				seqNo = *dbSeq
			}
			seqNo++
			if err := config.SetRedisObject(cacheKey, &seqNo, 0); err != nil {
				return 0, err
			}
		}
		// check if sequence number exists in db
		err = ValidateUnique[T](ctx, branchId, column, seqNo, 0)
		if err == nil {
			break
		}
	}
	return seqNo, nil
}
