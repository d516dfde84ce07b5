package scaffold

import (
	"fmt"
	"strings"

	"github.com/buildforge/scaffold/internal/config"
)

// fastapiInitPaths is the layered directory skeleton of the enterprise
// template; each path receives an empty __init__.py.
var fastapiInitPaths = []string{
	"app/__init__.py",
	"app/api/__init__.py",
	"app/api/routes/__init__.py",
	"app/core/__init__.py",
	"app/models/__init__.py",
	"app/models/domain/__init__.py",
	"app/models/schemas/__init__.py",
	"app/services/__init__.py",
	"app/repositories/__init__.py",
	"app/db/__init__.py",
	"tests/__init__.py",
	"tests/unit/__init__.py",
	"tests/integration/__init__.py",
}

func fastapiRequirements(cfg config.Project) string {
	reqs := []string{
		"fastapi==0.104.0",
		"uvicorn[standard]==0.24.0",
		"pydantic==2.5.0",
		"python-decouple==3.8",
	}

	switch cfg.Database {
	case config.DatabasePostgreSQL:
		reqs = append(reqs, "sqlalchemy==2.0.23", "psycopg2-binary==2.9.9")
	case config.DatabaseMongoDB:
		reqs = append(reqs, "motor==3.3.2", "pymongo==4.6.0")
	}

	if cfg.HasFeature(config.FeatureAuth) {
		reqs = append(reqs, "python-jose[cryptography]==3.3.0", "passlib[bcrypt]==1.7.4")
	}

	return strings.Join(reqs, "\n")
}

// fastapiMainContext is the render data for main.py.
type fastapiMainContext struct {
	ProjectName   string
	Description   string
	EntityBlocks  string
	EntitiesList  string
	EndpointsList string
}

// fastapiReadmeContext extends the shared README fields with the
// per-entity endpoint documentation block.
type fastapiReadmeContext struct {
	readmeContext
	EndpointDocs string
}

// fastapi renders the FastAPI project: the layered app skeleton, a main.py
// carrying per-entity Pydantic models and CRUD routes over a seeded
// in-memory store, and SQLAlchemy stubs for SQL databases.
func (g *Generator) fastapi(projectName string, cfg config.Project) ([]File, error) {
	entities := EntityContexts(cfg.Entities)

	bullets := make([]string, len(entities))
	endpointDocs := make([]string, len(entities))
	entityNames := make([]string, len(entities))
	endpoints := make([]string, len(entities))
	for i, e := range entities {
		bullets[i] = fmt.Sprintf("- **%s** - CRUD endpoints at /api/%s", e.Class, e.Plural)
		endpointDocs[i] = fmt.Sprintf(
			"- GET /api/%[1]s - List all %[1]s\n"+
				"- GET /api/%[1]s/{id} - Get single %[2]s\n"+
				"- POST /api/%[1]s - Create new %[2]s\n"+
				"- PUT /api/%[1]s/{id} - Update %[2]s\n"+
				"- DELETE /api/%[1]s/{id} - Delete %[2]s",
			e.Plural, e.Name)
		entityNames[i] = "'" + e.Name + "'"
		endpoints[i] = fmt.Sprintf("%q", "/api/"+e.Plural)
	}

	features := featureBullets(cfg.Features)
	if features == "" {
		features = "- RESTful API"
	}

	readme, err := g.r.Render("fastapi/readme.md.tmpl", fastapiReadmeContext{
		readmeContext: readmeContext{
			ProjectName:    projectName,
			Description:    cfg.Description,
			Database:       cfg.Database,
			EntityBullets:  strings.Join(bullets, "\n"),
			FeatureBullets: features,
		},
		EndpointDocs: strings.Join(endpointDocs, "\n"),
	})
	if err != nil {
		return nil, err
	}

	entityBlocks, err := g.renderEntityBlocks("fastapi/entity.py.tmpl", entities)
	if err != nil {
		return nil, err
	}

	main, err := g.r.Render("fastapi/main.py.tmpl", fastapiMainContext{
		ProjectName:   projectName,
		Description:   cfg.Description,
		EntityBlocks:  entityBlocks,
		EntitiesList:  "[" + strings.Join(entityNames, ", ") + "]",
		EndpointsList: strings.Join(endpoints, ", "),
	})
	if err != nil {
		return nil, err
	}

	env, err := g.r.Static("fastapi/env")
	if err != nil {
		return nil, err
	}
	gitignore, err := g.r.Static("fastapi/gitignore")
	if err != nil {
		return nil, err
	}

	files := make([]File, 0, len(fastapiInitPaths)+7)
	for _, p := range fastapiInitPaths {
		files = append(files, File{Path: p, Content: ""})
	}
	files = append(files,
		File{Path: "requirements.txt", Content: fastapiRequirements(cfg)},
		File{Path: "README.md", Content: string(readme)},
		File{Path: "main.py", Content: string(main)},
		File{Path: ".env", Content: string(env)},
		File{Path: ".gitignore", Content: string(gitignore)},
	)

	// SQLAlchemy stubs only make sense for SQL backends.
	switch cfg.Database {
	case config.DatabaseSQLite, config.DatabasePostgreSQL, config.DatabaseMySQL:
		models, err := g.r.Static("fastapi/models.py")
		if err != nil {
			return nil, err
		}
		database, err := g.r.Static("fastapi/database.py")
		if err != nil {
			return nil, err
		}
		files = append(files,
			File{Path: "models.py", Content: string(models)},
			File{Path: "database.py", Content: string(database)},
		)
	}

	return files, nil
}
