package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joseantonio2001/Running-Fit-Tech/pkg/config"
	"github.com/joseantonio2001/Running-Fit-Tech/pkg/profile"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initWithSample bool

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration file",
	Long: `Create a default configuration file at $HOME/.running-fit-tech/config.json
(or at --config if given). Optionally writes the built-in sample profile
next to it as a starting point.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initWithSample, "with-sample-profile", false, "Also write the sample profile to the configured profile location")
}

func runInit(cmd *cobra.Command, args []string) (err error) {
	err = config.InitConfig(getConfigFile())
	if err != nil {
		return err
	}

	fmt.Println("Config created. Set google_api_key (or GOOGLE_API_KEY) before generating plans.")

	if initWithSample {
		var cfg config.Config
		cfg, err = config.Load(getConfigFile())
		if err != nil {
			return err
		}

		p := profile.NewSample()
		err = p.Save(cfg.ProfileLocation)
		if err != nil {
			return err
		}

		fmt.Printf("Sample profile written to %s\n", cfg.ProfileLocation)
	}

	return err
}
