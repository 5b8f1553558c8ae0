package main

import (
	"fmt"
	"os"

	"touchp-go/internal/app"
	"touchp-go/internal/touch"

	"github.com/spf13/cobra"
)

// Set via ldflags at build time.
var (
	version    = "dev"
	buildDate  = "unknown"
	commitHash = "N/A"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "touchp: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "touchp FILE...",
	Short: "Touch files, then paste clipboard content into them",
	Long: `touchp creates the named files or updates their access and modification
times like touch, then opens a terminal editor pre-filled with the current
clipboard content. Saving writes that text into every touched file;
cancelling leaves the files with their new timestamps and old content.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		accessOnly, _ := cmd.Flags().GetBool("access")
		modifyOnly, _ := cmd.Flags().GetBool("modify")
		noCreate, _ := cmd.Flags().GetBool("no-create")
		reference, _ := cmd.Flags().GetString("reference")
		date, _ := cmd.Flags().GetString("date")
		stamp, _ := cmd.Flags().GetString("stamp")

		a := app.New(touch.Options{
			Paths:      args,
			AccessOnly: accessOnly,
			ModifyOnly: modifyOnly,
			NoCreate:   noCreate,
			Reference:  reference,
			Date:       date,
			Stamp:      stamp,
		})
		defer a.Close()

		return a.Run()
	},
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (built %s, commit %s)", version, buildDate, commitHash)

	rootCmd.Flags().BoolP("access", "a", false, "change only the access time")
	rootCmd.Flags().BoolP("modify", "m", false, "change only the modification time")
	rootCmd.Flags().BoolP("no-create", "c", false, "do not create any files")
	rootCmd.Flags().StringP("reference", "r", "", "use this file's times instead of the current time")
	rootCmd.Flags().StringP("date", "d", "", "parse the date string and use it instead of the current time")
	rootCmd.Flags().StringP("stamp", "t", "", "use [[CC]YY]MMDDhhmm[.ss] instead of the current time")

	rootCmd.MarkFlagsMutuallyExclusive("reference", "date", "stamp")
}
