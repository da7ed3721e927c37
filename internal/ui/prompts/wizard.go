package prompts

import (
	"github.com/charmbracelet/huh"
	"github.com/teddybear-cooking/spend-tracker/internal/model"
)

func PromptInitCurrency(currDefault string) (string, error) {
	selection := currDefault

	var opts []huh.Option[string]
	for _, c := range model.SupportedCurrencies {
		opts = append(opts, huh.NewOption(c.String(), c.String()))
	}

	err := huh.NewSelect[string]().
		Title("Welcome to spend! This is the first run, please set the default currency:").
		Description("New transactions use this currency unless you pick another one.").
		Options(opts...).
		Value(&selection).
		Run()

	if err != nil {
		return "", err
	}

	return selection, nil
}
