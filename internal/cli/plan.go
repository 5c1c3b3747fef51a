package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/pizzadough/internal/app/render"
	"github.com/aalvaropc/pizzadough/internal/infra/logger"
	"github.com/aalvaropc/pizzadough/internal/usecase"
	"github.com/aalvaropc/pizzadough/internal/usecase/extract"
)

func planCmd() *cobra.Command {
	var params paramFlags
	var workspace string
	var profile string
	var saveProfile string
	var savePlan bool
	var name string
	var format string
	var fields []string

	c := &cobra.Command{
		Use:   "plan",
		Short: "Compute ingredients and a fermentation timeline",
		Example: `  pizzadough plan --balls 4 --ball-weight 260
  pizzadough plan --total-hours 48 --fridge-hours 40 --warmup-hours 3 --start 18:30
  pizzadough plan --profile neapolitan --temp 28 --format json
  pizzadough plan --field '$.ingredients.flour_g'`,
		Args: cobra.NoArgs,
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

			if !cmd.Flags().Changed("format") && ws.cfg.Defaults.Format != "" {
				format = ws.cfg.Defaults.Format
			}
			outFmt, err := render.ParseFormat(format)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("save-plan") {
				savePlan = ws.cfg.Plans.Save
			}

			uc := usecase.NewPlanDough(ws.profiles,
				usecase.WithPlanStore(ws.plans),
				usecase.WithLogger(logger.Named("usecase")),
			)

			saveProfilePath := ws.resolveProfile(saveProfile)
			plan, id, err := uc.Execute(cmd.Context(), usecase.PlanRequest{
				Name:            name,
				ProfilePath:     profilePath,
				Overrides:       overrides,
				SaveProfilePath: saveProfilePath,
				SavePlan:        savePlan,
			})
			if err != nil {
				return err
			}

			stdout := cmd.OutOrStdout()
			stderr := cmd.ErrOrStderr()

			if saveProfilePath != "" {
				fmt.Fprintf(stderr, "Profile saved to %s\n", saveProfilePath)
			}

			if len(fields) > 0 {
				doc, err := render.MarshalPlan(plan)
				if err != nil {
					return err
				}
				values, err := extract.Fields(doc, fields)
				if err != nil {
					return err
				}
				for _, v := range values {
					fmt.Fprintln(stdout, v)
				}
				if id != "" {
					fmt.Fprintf(stderr, "Plan saved: %s\n", id)
				}
				return nil
			}

			if outFmt == render.FormatJSON && id != "" {
				fmt.Fprintf(stderr, "Plan saved: %s\n", id)
				id = ""
			}
			return render.New().Write(stdout, plan, id, outFmt)
		},
	}

	params.register(c.Flags())
	c.Flags().StringVarP(&workspace, "workspace", "W", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&profile, "profile", "p", "", "Profile name or path to load (flags override its values)")
	c.Flags().StringVar(&saveProfile, "save-profile", "", "Save the effective parameters as a profile (name or path)")
	c.Flags().BoolVar(&savePlan, "save-plan", false, "Save the computed plan under plans/")
	c.Flags().StringVar(&name, "name", "", "Name for the saved plan")
	c.Flags().StringVar(&format, "format", string(render.FormatPretty), "Output format: pretty|json")
	c.Flags().StringArrayVar(&fields, "field", nil, "Print only the value at this JSONPath of the JSON plan (repeatable)")

	return c
}
