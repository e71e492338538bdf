// Package usage turns a usage profile into a month-by-month storage requirement.
// Usage is decoupled from provider catalogs to enable scenario modeling.
package usage

import (
	"github.com/shopspring/decimal"

	"storage-cost/core/types"
)

// Project returns the storage level required at the end of every month.
// Deletions are applied before uploads and never take storage below zero.
func Project(in types.UserInput) types.MonthlyStorage {
	if in.Months <= 0 {
		return types.MonthlyStorage{}
	}

	storage := make(types.MonthlyStorage, 0, in.Months)
	current := in.InitialUpload
	for i := 0; i < in.Months; i++ {
		current = decimal.Max(current.Sub(in.DeletePerMonth), decimal.Zero)
		current = current.Add(in.UploadPerMonth)
		storage = append(storage, current)
	}
	return storage
}
