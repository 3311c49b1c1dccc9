package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/talgya/fauna/internal/catalog"
)

var speciesCmd = &cobra.Command{
	Use:   "species",
	Short: "Inspect the species catalog",
}

var speciesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List species profiles in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := catalog.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		all, err := db.List()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tBREEDING (YRS)\tTOLERANCE (°C)\tFOOD\tWATER\tGESTATION\tMAX AGE")
		for _, sp := range all {
			fmt.Fprintf(w, "%s\t%d–%d\t%g–%g\t%d\t%d\t%d mo\t%d yrs\n",
				sp.Name,
				sp.MinBreedingAge, sp.MaxBreedingAge,
				sp.MinTolerance, sp.MaxTolerance,
				sp.RequiredFood, sp.RequiredWater,
				sp.GestationPeriod, sp.MaxAge,
			)
		}
		return w.Flush()
	},
}

var speciesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one species profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := catalog.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		sp, err := db.Get(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s\n", sp.Name)
		fmt.Printf("  breeding age:   %d–%d years (%d–%d months)\n",
			sp.MinBreedingAge, sp.MaxBreedingAge, sp.MinBreedingMonths(), sp.MaxBreedingMonths())
		fmt.Printf("  tolerance:      %g to %g °C\n", sp.MinTolerance, sp.MaxTolerance)
		fmt.Printf("  rations/tick:   %d food, %d water\n", sp.RequiredFood, sp.RequiredWater)
		fmt.Printf("  gestation:      %d months\n", sp.GestationPeriod)
		fmt.Printf("  max age:        %d years (%d months)\n", sp.MaxAge, sp.MaxAgeMonths())
		return nil
	},
}

func init() {
	speciesCmd.AddCommand(speciesListCmd)
	speciesCmd.AddCommand(speciesShowCmd)
}
