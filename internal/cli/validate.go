package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/pizzadough/internal/usecase"
)

func validateCmd() *cobra.Command {
	var params paramFlags
	var workspace string
	var profile string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Check parameters (and an optional profile) without computing a plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrides, err := params.overrides(cmd.Flags())
			if err != nil {
				return err
			}

			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			profilePath := ws.resolveProfile(profile)
			if profilePath == "" {
				profilePath = ws.defaultProfile()
			}

			uc := usecase.NewValidateParams(ws.profiles)
			if _, err := uc.Execute(cmd.Context(), profilePath, overrides); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}

	params.register(c.Flags())
	c.Flags().StringVarP(&workspace, "workspace", "W", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&profile, "profile", "p", "", "Profile name or path to validate")
	return c
}
