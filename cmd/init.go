package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/commtower/commtower/internal/assets"
	"github.com/commtower/commtower/internal/config"
	"github.com/commtower/commtower/internal/templates"
	"github.com/commtower/commtower/internal/ui"
	"github.com/spf13/cobra"
)

type initOptions struct {
	rows   int
	cols   int
	towers int
	yes    bool
}

var initOpts initOptions

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init [project-name]",
	Short: "Initialize a new commtower project directory",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := initOpts
		if !opts.yes {
			opts = promptInitOptions(cmd, opts)
		}
		if err := runInit(args[0], opts); err != nil {
			fmt.Printf("Error initializing project: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	initCmd.Flags().IntVar(&initOpts.rows, "rows", 10, "Plot rows")
	initCmd.Flags().IntVar(&initOpts.cols, "cols", 10, "Plot columns")
	initCmd.Flags().IntVar(&initOpts.towers, "towers", 0, "Towers per run; 0 fills the plot")
	initCmd.Flags().BoolVarP(&initOpts.yes, "yes", "y", false, "Accept flag values without prompting")
	rootCmd.AddCommand(initCmd)
}

// promptInitOptions asks for every setting not given on the command line.
func promptInitOptions(cmd *cobra.Command, opts initOptions) initOptions {
	ask := func(flag, label string, v *int) {
		if cmd.Flags().Changed(flag) {
			return
		}
		answer := ui.Prompt(label, strconv.Itoa(*v))
		if n, err := strconv.Atoi(answer); err == nil {
			*v = n
		} else {
			ui.PrintWarning(label, fmt.Sprintf("%q is not a number, keeping %d", answer, *v))
		}
	}
	ask("rows", "Plot rows", &opts.rows)
	ask("cols", "Plot columns", &opts.cols)
	ask("towers", "Towers per run (0 = fill)", &opts.towers)
	return opts
}

// runInit scaffolds a new project directory with the specified name.
// It writes commtower.yaml, a .gitignore and a masks/ directory of sample
// mask files for the trim command.
//
// Parameters:
//   - projectName: The name of the project (and directory) to create.
//   - opts: Plot settings written into commtower.yaml.
//
// Returns:
//   - error: An error if the settings are invalid, the directory already
//     exists or file creation fails.
func runInit(projectName string, opts initOptions) error {
	cfg := config.Config{
		Plot:       config.PlotConfig{Rows: opts.rows, Cols: opts.cols},
		Simulation: config.SimulationConfig{Towers: opts.towers},
	}
	if err := config.Validate(&cfg); err != nil {
		return err
	}

	fmt.Printf("Initializing project %s...\n", projectName)

	if _, err := os.Stat(projectName); !os.IsNotExist(err) {
		return fmt.Errorf("directory %s already exists", projectName)
	}

	if err := os.Mkdir(projectName, 0755); err != nil {
		return err
	}

	// 1. Create commtower.yaml
	data := struct {
		ProjectName string
		Rows        int
		Cols        int
		Towers      int
	}{projectName, opts.rows, opts.cols, opts.towers}
	if err := generateFileFromTemplate("commtower.yaml.tmpl", filepath.Join(projectName, config.DefaultFile), data); err != nil {
		return err
	}

	// 2. Create .gitignore
	if err := generateFileFromTemplate("gitignore.tmpl", filepath.Join(projectName, ".gitignore"), nil); err != nil {
		return err
	}

	// 3. Sample masks
	maskDir := filepath.Join(projectName, "masks")
	if err := os.MkdirAll(maskDir, 0755); err != nil {
		return err
	}
	for name, content := range assets.MasksMap {
		if err := os.WriteFile(filepath.Join(maskDir, name), []byte(content), 0644); err != nil {
			return err
		}
	}

	fmt.Printf("Project %s initialized successfully!\n", projectName)
	fmt.Println("Next steps:")
	fmt.Printf("  cd %s\n", projectName)
	fmt.Println("  commtower run                     # (Fill the plot with towers)")
	fmt.Println("  commtower trim masks/l_shape.yaml # (Trim a sample mask)")

	return nil
}

// generateFileFromTemplate creates a file at destPath using the specified template and data.
//
// Parameters:
//   - tmplName: The name of the template file to use.
//   - destPath: The path where the generated file should be written.
//   - data: The data object to pass to the template.
//
// Returns:
//   - error: An error if the template cannot be read or executed.
func generateFileFromTemplate(tmplName, destPath string, data interface{}) error {
	f, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return templates.Execute(f, tmplName, data)
}
