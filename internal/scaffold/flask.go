package scaffold

import (
	"fmt"
	"strings"

	"github.com/buildforge/scaffold/internal/config"
)

func flaskRequirements(cfg config.Project) string {
	reqs := []string{
		"Flask==3.0.0",
		"Flask-RESTful==0.3.10",
		"python-decouple==3.8",
	}

	switch cfg.Database {
	case config.DatabasePostgreSQL:
		reqs = append(reqs, "psycopg2-binary==2.9.9", "Flask-SQLAlchemy==3.1.1")
	case config.DatabaseMongoDB:
		reqs = append(reqs, "Flask-PyMongo==2.3.0", "pymongo==4.6.0")
	}

	if cfg.HasFeature(config.FeatureAuth) {
		reqs = append(reqs, "Flask-JWT-Extended==4.5.3")
	}

	return strings.Join(reqs, "\n")
}

// flaskAppContext is the render data for app.py.
type flaskAppContext struct {
	ProjectName    string
	ResourceBlocks string
	EndpointsList  string
	Registrations  string
}

// flask renders the single-file Flask application: one List and one Detail
// Resource class per entity plus their api.add_resource registrations.
func (g *Generator) flask(projectName string, cfg config.Project) ([]File, error) {
	entities := EntityContexts(cfg.Entities)

	bullets := make([]string, len(entities))
	for i, e := range entities {
		bullets[i] = fmt.Sprintf("- **%s** - REST API at /api/%s", e.Class, e.Plural)
	}

	readme, err := g.r.Render("flask/readme.md.tmpl", readmeContext{
		ProjectName:    projectName,
		Description:    cfg.Description,
		Database:       cfg.Database,
		EntityBullets:  strings.Join(bullets, "\n"),
		FeatureBullets: featureBullets(cfg.Features),
	})
	if err != nil {
		return nil, err
	}

	resourceBlocks, err := g.renderEntityBlocks("flask/resource.py.tmpl", entities)
	if err != nil {
		return nil, err
	}

	var registrations []string
	var endpoints []string
	for _, e := range entities {
		registrations = append(registrations,
			fmt.Sprintf("api.add_resource(%sList, '/api/%s')", e.Class, e.Plural),
			fmt.Sprintf("api.add_resource(%sDetail, '/api/%s/<int:%s_id>')", e.Class, e.Plural, e.Name),
		)
		endpoints = append(endpoints,
			fmt.Sprintf("'/api/%s'", e.Plural),
			fmt.Sprintf("'/api/%s/<int:%s_id>'", e.Plural, e.Name),
		)
	}

	app, err := g.r.Render("flask/app.py.tmpl", flaskAppContext{
		ProjectName:    projectName,
		ResourceBlocks: resourceBlocks,
		EndpointsList:  strings.Join(endpoints, ", "),
		Registrations:  strings.Join(registrations, "\n"),
	})
	if err != nil {
		return nil, err
	}

	env, err := g.r.Static("flask/env")
	if err != nil {
		return nil, err
	}
	gitignore, err := g.r.Static("flask/gitignore")
	if err != nil {
		return nil, err
	}

	return []File{
		{Path: "requirements.txt", Content: flaskRequirements(cfg)},
		{Path: "README.md", Content: string(readme)},
		{Path: "app.py", Content: string(app)},
		{Path: ".env", Content: string(env)},
		{Path: ".gitignore", Content: string(gitignore)},
	}, nil
}
