/*
Copyright © 2026 teddybear-cooking

*/
package category

import (
	"github.com/spf13/cobra"
	"github.com/teddybear-cooking/spend-tracker/internal/service"
)

func NewCategoryCmd(svc *service.Service) *cobra.Command {
	categoryCmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"cat"},
		Short:   "List categories or add a custom one",
		Long: `List the categories offered when recording an expense, or add a custom
category. Custom categories cannot be renamed or removed.`,
	}

	categoryCmd.AddCommand(NewListCmd(svc))
	categoryCmd.AddCommand(NewAddCmd(svc))

	return categoryCmd
}
