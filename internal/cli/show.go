package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twistyworks/twisty"
	"github.com/twistyworks/twisty/internal/scheme"
)

var (
	showSchemePath string
	showBlank      bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render the cube as an unfolded net",
	Long: `Build a cube, paint it with a color scheme, and print it as an
unfolded net. Use --scheme to load a scheme from a YAML file, or
--blank to skip painting and show the uninitialized cube.`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&showSchemePath, "scheme", "", "Color scheme YAML file (default: classic)")
	showCmd.Flags().BoolVar(&showBlank, "blank", false, "Show the cube without painting it")
	rootCmd.AddCommand(showCmd)
}

// buildCube constructs a cube per the show flags.
func buildCube() (*twisty.Cube, error) {
	c := twisty.New()
	if showBlank {
		return c, nil
	}

	s := scheme.Classic()
	if showSchemePath != "" {
		loaded, err := scheme.Load(showSchemePath)
		if err != nil {
			return nil, err
		}
		s = loaded
		logger.Debug().Str("path", showSchemePath).Msg("loaded color scheme")
	}

	scheme.Apply(c, s)
	return c, nil
}

func runShow(cmd *cobra.Command, args []string) error {
	c, err := buildCube()
	if err != nil {
		return err
	}

	fmt.Print(renderCube(c))
	return nil
}
