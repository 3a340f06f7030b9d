package models

import (
	"context"
	"fmt"

	"github.com/CoderDeepakJoura/BankingSolution-sub003/config"
)

func itoa(i int) string {
	return fmt.Sprint(i)
}

// getVoucherPrefix returns the display prefix configured for the given
// voucher module on the branch's number series. Missing mapping is not an
// error; the voucher number is rendered bare.
func getVoucherPrefix(ctx context.Context, branchId int, moduleName string) (string, error) {
	voucherPrefixes := make(map[string]string, 0) // moduleName => prefix
	redisKey := "vnsPrefixMap:" + fmt.Sprint(branchId)
	exists, err := config.GetRedisObject(redisKey, &voucherPrefixes)
	if err != nil {
		return "", err
	}
	if !exists {

		// retrieves moduleName:prefix map of the branch from db
		db := config.GetDB()
		var vnsId int
		if err := db.WithContext(ctx).Model(&Branch{}).
			Where("id = ?", branchId).Select("voucher_number_series_id").Scan(&vnsId).Error; err != nil {
			return "", err
		}
		var vnsModules []*VoucherNumberSeriesModule
		if err := db.WithContext(ctx).Model(&VoucherNumberSeriesModule{}).
			Where("series_id = ?", vnsId).Find(&vnsModules).Error; err != nil {
			return "", err
		}

		for _, modulePrefix := range vnsModules {
			voucherPrefixes[modulePrefix.ModuleName] = modulePrefix.Prefix
		}
		if err := config.SetRedisObject(redisKey, &voucherPrefixes, 0); err != nil {
			return "", err
		}
	}

	prefix, ok := voucherPrefixes[moduleName]
	if !ok || prefix == "" {
		return "", nil
	}
	return prefix, nil
}
