/*
Copyright © 2026 teddybear-cooking

*/
package category

import (
	"github.com/spf13/cobra"
	"github.com/teddybear-cooking/spend-tracker/internal/service"
	"github.com/teddybear-cooking/spend-tracker/internal/ui/views"
)

func NewListCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List default and custom categories",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return views.RenderCategoryList(svc.Category.Defaults(), svc.Category.Custom())
		},
	}
}
