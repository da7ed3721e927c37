package validation

import (
	"fmt"
	"strings"

	"github.com/teddybear-cooking/spend-tracker/internal/model"
	"github.com/teddybear-cooking/spend-tracker/internal/utils"
)

// The validators below take the raw string a prompt field holds, so they can
// be handed directly to huh's Validate.

func ValidateDate(s string) error {
	_, err := model.ParseDate(s)
	return err
}

func ValidateAmount(s string) error {
	_, err := utils.ParseAmount(s)
	return err
}

func ValidateCategory(s string) error {
	return model.ValidateCategoryName(s)
}

// NewCategoryValidator rejects names that are already offered, compared after
// trimming surrounding whitespace.
func NewCategoryValidator(existing []string) func(string) error {
	return func(s string) error {
		name := strings.TrimSpace(s)
		if err := model.ValidateCategoryName(name); err != nil {
			return err
		}
		for _, c := range existing {
			if c == name {
				return fmt.Errorf("category '%s' already exists", name)
			}
		}
		return nil
	}
}
