package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/teddybear-cooking/spend-tracker/internal/validation"
)

// PromptNewCategory asks for a category name that is not in existing.
func PromptNewCategory(existing []string) (string, error) {
	var name string

	err := huh.NewInput().
		Title("New category name:").
		Value(&name).
		Validate(validation.NewCategoryValidator(existing)).
		Run()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(name), nil
}
