package models

import (
	"log"

	"github.com/CoderDeepakJoura/BankingSolution-sub003/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&Branch{}, &VoucherNumberSeries{}, &VoucherNumberSeriesModule{},
		&Zone{}, &Tehsil{}, &Village{},
		&Caste{}, &Category{},
		&AccountHead{}, &SavingProduct{},
		&Member{}, &SavingAccount{},
		&Voucher{}, &VoucherCreditDebitDetail{}, &VoucherSavingDetail{},
		&User{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
