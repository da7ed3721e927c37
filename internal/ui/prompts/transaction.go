package prompts

import (
	"github.com/charmbracelet/huh"
	"github.com/teddybear-cooking/spend-tracker/internal/constants"
	"github.com/teddybear-cooking/spend-tracker/internal/model"
	"github.com/teddybear-cooking/spend-tracker/internal/utils"
	"github.com/teddybear-cooking/spend-tracker/internal/validation"
)

// NewCategoryOption is the picker entry that asks for a new category instead
// of choosing an existing one.
const NewCategoryOption = "+ New category..."

// TransactionForm holds the raw field values of the add and edit forms.
type TransactionForm struct {
	Date        string
	Amount      string
	Currency    string
	Category    string
	Description string
}

// FormFromTransaction prefills the form for editing.
func FormFromTransaction(t model.Transaction) TransactionForm {
	return TransactionForm{
		Date:        t.Date,
		Amount:      t.Amount.String(),
		Currency:    t.Currency.OrDefault().String(),
		Category:    t.Category,
		Description: t.Description,
	}
}

// Input converts the form into a validated transaction input.
func (f TransactionForm) Input() (model.TransactionInput, error) {
	amount, err := utils.ParseAmount(f.Amount)
	if err != nil {
		return model.TransactionInput{}, err
	}
	currency, err := model.ParseCurrency(f.Currency)
	if err != nil {
		return model.TransactionInput{}, err
	}

	in := model.TransactionInput{
		Date:        f.Date,
		Amount:      amount,
		Currency:    currency,
		Category:    f.Category,
		Description: f.Description,
	}
	return in, in.Validate()
}

// PromptTransaction runs the transaction form, starting from the values
// already in form. When allowNew is set the category picker offers
// NewCategoryOption.
func PromptTransaction(title string, form *TransactionForm, categories []string, allowNew bool) error {
	categoryOpts := make([]huh.Option[string], 0, len(categories)+1)
	for _, c := range Unique(categories) {
		categoryOpts = append(categoryOpts, huh.NewOption(c, c))
	}
	if form.Category != "" && !containsOption(categories, form.Category) {
		categoryOpts = append(categoryOpts, huh.NewOption(form.Category, form.Category))
	}
	if allowNew {
		categoryOpts = append(categoryOpts, huh.NewOption(NewCategoryOption, NewCategoryOption))
	}

	currencyOpts := make([]huh.Option[string], 0, len(model.SupportedCurrencies))
	for _, c := range model.SupportedCurrencies {
		currencyOpts = append(currencyOpts, huh.NewOption(c.String(), c.String()))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date (" + constants.DateLayoutHint + "):").
				Value(&form.Date).
				Validate(validation.ValidateDate),
			huh.NewInput().
				Title("Amount:").
				Description("No currency symbol needed (e.g. 150 or 150.50)").
				Value(&form.Amount).
				Validate(validation.ValidateAmount),
			huh.NewSelect[string]().
				Title("Currency:").
				Options(currencyOpts...).
				Value(&form.Currency),
		).Title(title),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category:").
				Options(categoryOpts...).
				Value(&form.Category).
				Height(12).
				Validate(validation.ValidateCategory),
			huh.NewInput().
				Title("Description (optional):").
				Value(&form.Description),
		),
	).Run()
}

func containsOption(options []string, s string) bool {
	for _, o := range options {
		if o == s {
			return true
		}
	}
	return false
}
