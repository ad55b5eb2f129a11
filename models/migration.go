package models

import (
	"bitbucket.org/candorwt/fieldforce_backend/config"
	"bitbucket.org/candorwt/fieldforce_backend/utils"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&User{},
		&Invoice{}, &InvoiceLineItem{},
		&AttendanceRecord{},
		&SalesOrder{},
		&Product{},
		&Activity{},
		&LeadComment{},
	)
	utils.ErrorPanic(err)
}
