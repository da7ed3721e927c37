package service

import (
	"fmt"
	"strings"

	"github.com/teddybear-cooking/spend-tracker/internal/config"
	"github.com/teddybear-cooking/spend-tracker/internal/model"
)

type CategoryService struct {
	ledger Ledger
	config *config.Config
}

func NewCategoryService(ledger Ledger, cfg *config.Config) *CategoryService {
	return &CategoryService{ledger: ledger, config: cfg}
}

// Defaults returns the configured default categories.
func (cs *CategoryService) Defaults() []string {
	return append([]string{}, cs.config.Defaults.Categories...)
}

func (cs *CategoryService) Custom() []string {
	return cs.ledger.GetCustomCategories()
}

// Categories returns the defaults followed by the custom categories. A name
// present in both lists appears twice.
func (cs *CategoryService) Categories() []string {
	return append(cs.Defaults(), cs.Custom()...)
}

// AddCategory trims name and saves it as a custom category unless a category
// with that name is already offered.
func (cs *CategoryService) AddCategory(name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if err := model.ValidateCategoryName(name); err != nil {
		return nil, err
	}

	for _, c := range cs.Categories() {
		if c == name {
			return nil, fmt.Errorf("category '%s' already exists", name)
		}
	}

	cats := cs.ledger.SaveCustomCategory(name)
	if !contains(cats, name) {
		return nil, ErrSaveFailed
	}
	return cats, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
