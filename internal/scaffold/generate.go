package scaffold

import (
	"strings"

	"github.com/buildforge/scaffold/internal/config"
)

// Generator renders the full scaffolding file set for one project. It is
// stateless apart from its template renderer and safe to reuse across runs.
type Generator struct {
	r Renderer
}

// NewGenerator creates a Generator backed by the embedded templates.
func NewGenerator() *Generator {
	return &Generator{r: NewRenderer(builtinTemplates())}
}

// NewGeneratorWithRenderer creates a Generator with a custom renderer
// (used in tests with a fstest.MapFS).
func NewGeneratorWithRenderer(r Renderer) *Generator {
	return &Generator{r: r}
}

// Generate dispatches on the configured framework and returns the rendered
// file set for the project. Unrecognized frameworks return
// config.ErrUnknownFramework; there is no silent fallback.
func (g *Generator) Generate(projectName string, cfg config.Project) ([]File, error) {
	kind, err := cfg.Kind()
	if err != nil {
		return nil, err
	}

	switch kind {
	case config.KindDjango:
		return g.django(projectName, cfg)
	case config.KindFlask:
		return g.flask(projectName, cfg)
	default:
		return g.fastapi(projectName, cfg)
	}
}

// renderEntityBlocks renders the named per-entity template for each entity
// and joins the blocks with a single newline. Blocks begin and end with a
// newline of their own, so joined output keeps one blank line between them.
func (g *Generator) renderEntityBlocks(templateName string, entities []EntityContext) (string, error) {
	blocks := make([]string, len(entities))
	for i, e := range entities {
		b, err := g.r.Render(templateName, e)
		if err != nil {
			return "", err
		}
		blocks[i] = string(b)
	}
	return strings.Join(blocks, "\n"), nil
}

// concatEntityBlocks renders the named per-entity template for each entity
// and concatenates the blocks without a separator (used for blocks that
// already end in a blank line).
func (g *Generator) concatEntityBlocks(templateName string, entities []EntityContext) (string, error) {
	var sb strings.Builder
	for _, e := range entities {
		b, err := g.r.Render(templateName, e)
		if err != nil {
			return "", err
		}
		sb.Write(b)
	}
	return sb.String(), nil
}

// classList joins entity class names for import statements: "User, Order".
func classList(entities []EntityContext) string {
	names := make([]string, len(entities))
	for i, e := range entities {
		names[i] = e.Class
	}
	return strings.Join(names, ", ")
}

// featureBullets formats the extracted feature tags as markdown bullets.
func featureBullets(features []string) string {
	lines := make([]string, len(features))
	for i, f := range features {
		lines[i] = "- " + f
	}
	return strings.Join(lines, "\n")
}
