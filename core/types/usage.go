// Package types - Usage profile types
package types

import "github.com/shopspring/decimal"

// UserInput is a usage profile over a horizon of whole months.
// Storage and transfer quantities are in GB. Values are validated by
// the caller; the core trusts them as given.
type UserInput struct {
	// Months is the horizon length
	Months int `json:"months" yaml:"months"`

	// Currency is the user's preferred currency. No conversion is applied.
	Currency Currency `json:"currency" yaml:"currency"`

	// InitialUpload is the storage present before the first month
	InitialUpload decimal.Decimal `json:"initial_upload" yaml:"initial_upload"`

	// UploadPerMonth is added to storage every month
	UploadPerMonth decimal.Decimal `json:"upload_mo" yaml:"upload_mo"`

	// DeletePerMonth is removed from storage every month before the upload
	DeletePerMonth decimal.Decimal `json:"delete_mo" yaml:"delete_mo"`

	// DownloadPerMonth is the monthly egress volume
	DownloadPerMonth decimal.Decimal `json:"download_mo" yaml:"download_mo"`

	// Enterprise selects the enterprise catalog of every provider
	Enterprise bool `json:"enterprise" yaml:"enterprise"`
}

// MonthlyStorage holds the required storage level for each month
type MonthlyStorage []decimal.Decimal

// Peak returns the highest monthly level, zero for an empty sequence
func (s MonthlyStorage) Peak() decimal.Decimal {
	peak := decimal.Zero
	for _, v := range s {
		if v.GreaterThan(peak) {
			peak = v
		}
	}
	return peak
}
