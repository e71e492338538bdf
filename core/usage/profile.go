// Package usage - Usage profile files and boundary validation
package usage

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"storage-cost/core/types"
	"storage-cost/internal/errors"
)

// DefaultProfile returns the profile used when nothing is specified
func DefaultProfile() types.UserInput {
	return types.UserInput{
		Months:           12,
		Currency:         types.CurrencyEUR,
		InitialUpload:    decimal.NewFromInt(1000),
		UploadPerMonth:   decimal.NewFromInt(100),
		DeletePerMonth:   decimal.Zero,
		DownloadPerMonth: decimal.Zero,
	}
}

// LoadProfile reads a YAML (or JSON) usage profile. Fields missing from
// the file keep their DefaultProfile values.
func LoadProfile(path string) (types.UserInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.UserInput{}, errors.Wrapf(errors.TypeInput, err, "read usage profile %s", path)
	}

	in := DefaultProfile()
	if err := yaml.Unmarshal(data, &in); err != nil {
		return types.UserInput{}, errors.Parsing(fmt.Sprintf("parse usage profile %s", path), err)
	}
	return in, nil
}

// ValidateInput rejects profiles the optimizer cannot give a meaningful
// answer for. The core never calls this; input collection does.
func ValidateInput(in types.UserInput) error {
	if in.Months < 0 {
		return errors.Newf(errors.TypeInput, "months must not be negative, got %d", in.Months)
	}
	if in.Currency != "" && !in.Currency.IsValid() {
		return errors.Newf(errors.TypeInput, "unsupported currency %q", in.Currency)
	}

	rates := []struct {
		name  string
		value decimal.Decimal
	}{
		{"initial_upload", in.InitialUpload},
		{"upload_mo", in.UploadPerMonth},
		{"delete_mo", in.DeletePerMonth},
		{"download_mo", in.DownloadPerMonth},
	}
	for _, r := range rates {
		if r.value.IsNegative() {
			return errors.Newf(errors.TypeInput, "%s must not be negative, got %s", r.name, r.value)
		}
	}
	return nil
}
