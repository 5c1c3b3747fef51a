package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/pizzadough/internal/app/render"
	"github.com/aalvaropc/pizzadough/internal/domain"
	"github.com/aalvaropc/pizzadough/internal/infra/logger"
	"github.com/aalvaropc/pizzadough/internal/usecase"
)

func profileCmd() *cobra.Command {
	c := &cobra.Command{
		Use:     "profile",
		Aliases: []string{"profiles"},
		Short:   "Manage saved dough profiles",
	}

	c.AddCommand(profileListCmd(), profileShowCmd(), profileSaveCmd())
	return c
}

func profileListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			refs, err := ws.profiles.ListProfiles(ws.root)
			if err != nil && !domain.IsKind(err, domain.KindNotFound) {
				return err
			}

			out := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(out, "(no profiles found)")
				return nil
			}

			fmt.Fprintf(out, "Workspace: %s\n", ws.root)
			if ws.cfg.Defaults.Profile != "" {
				fmt.Fprintf(out, "Default:   %s\n", ws.cfg.Defaults.Profile)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, render.New().ProfilesTable(refs, ws.root))
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "W", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func profileShowCmd() *cobra.Command {
	var workspace string
	var format string

	cmd := &cobra.Command{
		Use:   "show <name|path>",
		Short: "Show the effective parameters of a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outFmt, err := render.ParseFormat(format)
			if err != nil {
				return err
			}

			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			path := ws.resolveProfile(args[0])
			p, err := ws.profiles.LoadProfile(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outFmt == render.FormatJSON {
				b, err := json.MarshalIndent(p, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(b))
				return nil
			}

			fmt.Fprintf(out, "Profile: %s (%s)\n", profileName(path), path)
			fmt.Fprintln(out, render.New().ParamsTable(p))
			if err := p.Validate(); err != nil {
				fmt.Fprintln(out)
				printError(out, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "W", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVar(&format, "format", string(render.FormatPretty), "Output format: pretty|json")
	return cmd
}

func profileSaveCmd() *cobra.Command {
	var params paramFlags
	var workspace string
	var from string

	cmd := &cobra.Command{
		Use:   "save <name|path>",
		Short: "Save parameters as a profile (validated first)",
		Example: `  pizzadough profile save party --balls 8 --ball-weight 250
  pizzadough profile save weekend --from neapolitan --fridge-hours 40 --total-hours 48`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := params.overrides(cmd.Flags())
			if err != nil {
				return err
			}

			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			p, err := usecase.NewValidateParams(ws.profiles).Execute(cmd.Context(), ws.resolveProfile(from), overrides)
			if err != nil {
				return err
			}

			path := ws.resolveProfile(args[0])
			if err := ws.profiles.SaveProfile(path, p); err != nil {
				return err
			}
			logger.Named("cli").Info("profile.saved", "path", path)

			fmt.Fprintf(cmd.OutOrStdout(), "Profile saved to %s\n", path)
			return nil
		},
	}

	params.register(cmd.Flags())
	cmd.Flags().StringVarP(&workspace, "workspace", "W", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVar(&from, "from", "", "Start from this profile instead of the defaults")
	return cmd
}
