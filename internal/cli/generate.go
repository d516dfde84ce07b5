package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/buildforge/scaffold/internal/config"
	"github.com/buildforge/scaffold/internal/issue"
	"github.com/buildforge/scaffold/internal/scaffold"
	"github.com/buildforge/scaffold/internal/ui"
	"github.com/buildforge/scaffold/internal/wizard"
)

var (
	flagOutput         string
	flagPreview        bool
	flagNoColor        bool
	flagNonInteractive bool
)

// ErrInteractiveUnavailable is returned when no metadata file is given and
// no terminal is attached to run the wizard.
var ErrInteractiveUnavailable = errors.New("cli: no metadata file and no terminal for the wizard")

var generateCmd = &cobra.Command{
	Use:   "generate [project-name] [metadata-file]",
	Short: "Generate a project skeleton",
	Long: `Generate a framework-specific CRUD project skeleton.

With a metadata file, the project configuration is extracted from its
issue_body field. Without one, an interactive wizard collects the
configuration; a project name given as argument overrides the wizard's.`,
	Args: cobra.RangeArgs(0, 2),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&flagOutput, "output", "o", "generated-projects", "output directory for generated projects")
	generateCmd.Flags().BoolVar(&flagPreview, "preview", false, "render the generated README in the terminal")
	generateCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "disable styled output")
	generateCmd.Flags().BoolVar(&flagNonInteractive, "non-interactive", false, "never start the wizard, even on a terminal")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	theme := ui.NewTheme(ui.ThemeConfig{NoColor: flagNoColor})
	headless := ui.NewHeadlessManager()
	if flagNonInteractive {
		headless.ForceHeadless(true)
	}
	printer := ui.NewPrinter(theme)

	projectName, cfg, err := resolveConfig(args, headless)
	if err != nil {
		printer.Error("%v", err)
		return err
	}

	// Echo the resolved configuration so runs are auditable.
	encoded, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	printer.Title("Configuration")
	fmt.Fprintln(cmd.OutOrStdout(), string(encoded))

	progress := ui.NewProgress(theme, headless)
	spin := progress.Spinner(fmt.Sprintf("Rendering %s project %q", cfg.Framework, projectName))

	files, err := scaffold.NewGenerator().Generate(projectName, cfg)
	spin.Stop()
	if err != nil {
		printer.Error("%v", err)
		return err
	}

	bar := progress.Start("Writing files", len(files))
	assembler := scaffold.NewAssembler(flagOutput)
	assembler.OnFile(func(path string) {
		bar.SetTitle(path)
		bar.Increment(1)
	})

	projectRoot, err := assembler.Write(projectName, files)
	bar.Done()
	if err != nil {
		printer.Error("%v", err)
		return err
	}

	printer.Summary(projectRoot, files)

	if flagPreview {
		if readme, ok := findFile(files, "README.md"); ok {
			previewer := ui.NewPreviewer(theme, headless)
			if err := previewer.Preview(readme.Content); err != nil {
				return fmt.Errorf("preview: %w", err)
			}
		}
	}

	return nil
}

// resolveConfig produces the project name and configuration from the
// command arguments: a metadata file when given, the wizard otherwise.
func resolveConfig(args []string, headless *ui.HeadlessManager) (string, config.Project, error) {
	if len(args) == 2 {
		meta, err := issue.LoadMetadata(args[1])
		if err != nil {
			return "", config.Project{}, err
		}
		return args[0], issue.Parse(meta.IssueBody), nil
	}

	if headless.IsHeadless() {
		return "", config.Project{}, ErrInteractiveUnavailable
	}

	result, err := wizard.Run()
	if err != nil {
		return "", config.Project{}, err
	}

	name := result.ProjectName
	if len(args) == 1 {
		name = args[0]
	}
	return name, result.Config, nil
}

func findFile(files []scaffold.File, path string) (scaffold.File, bool) {
	for _, f := range files {
		if f.Path == path {
			return f, true
		}
	}
	return scaffold.File{}, false
}
