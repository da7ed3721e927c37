package category

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teddybear-cooking/spend-tracker/internal/service"
	"github.com/teddybear-cooking/spend-tracker/internal/ui/prompts"
)

type addRunner struct {
	svc *service.Service
}

func NewAddCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "add [name]",
		Short: "Add a custom category",
		Long:  `Add a custom category. Without a name argument you are prompted for one.`,
		Example: `  spend category add Coffee
  spend category add "Pet Supplies"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{svc: svc}
			return runner.Run(args)
		},
	}
}

func (r *addRunner) Run(args []string) error {
	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		var err error
		name, err = prompts.PromptNewCategory(r.svc.Category.Categories())
		if err != nil {
			return err
		}
	}

	cats, err := r.svc.Category.AddCategory(name)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Category '%s' added (%d custom categories)\n", strings.TrimSpace(name), len(cats))
	return nil
}
