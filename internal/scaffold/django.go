package scaffold

import (
	"fmt"
	"strings"

	"github.com/buildforge/scaffold/internal/config"
)

// djangoDatabaseBlocks holds the settings.py DATABASES stanza per database.
// Databases without a stanza (MongoDB) fall back to SQLite, matching the
// generated project's out-of-the-box behavior.
var djangoDatabaseBlocks = map[string]string{
	config.DatabaseSQLite: `DATABASES = {
    'default': {
        'ENGINE': 'django.db.backends.sqlite3',
        'NAME': BASE_DIR / 'db.sqlite3',
    }
}`,
	config.DatabasePostgreSQL: `DATABASES = {
    'default': {
        'ENGINE': 'django.db.backends.postgresql',
        'NAME': config('DB_NAME', default='mydb'),
        'USER': config('DB_USER', default='postgres'),
        'PASSWORD': config('DB_PASSWORD', default='password'),
        'HOST': config('DB_HOST', default='localhost'),
        'PORT': config('DB_PORT', default='5432'),
    }
}`,
	config.DatabaseMySQL: `DATABASES = {
    'default': {
        'ENGINE': 'django.db.backends.mysql',
        'NAME': config('DB_NAME', default='mydb'),
        'USER': config('DB_USER', default='root'),
        'PASSWORD': config('DB_PASSWORD', default='password'),
        'HOST': config('DB_HOST', default='localhost'),
        'PORT': config('DB_PORT', default='3306'),
    }
}`,
}

func djangoDatabaseBlock(database string) string {
	if block, ok := djangoDatabaseBlocks[database]; ok {
		return block
	}
	return djangoDatabaseBlocks[config.DatabaseSQLite]
}

func djangoRequirements(cfg config.Project) string {
	reqs := []string{
		"Django==4.2.0",
		"djangorestframework==3.14.0",
		"python-decouple==3.8",
	}

	switch cfg.Database {
	case config.DatabaseMongoDB:
		reqs = append(reqs, "djongo==1.3.6", "pymongo==3.12")
	case config.DatabasePostgreSQL:
		reqs = append(reqs, "psycopg2-binary==2.9.9")
	case config.DatabaseMySQL:
		reqs = append(reqs, "mysqlclient==2.2.0")
	}

	if cfg.HasFeature(config.FeatureAuth) {
		reqs = append(reqs, "django-allauth==0.57.0", "dj-rest-auth==5.0.0")
	}
	if cfg.HasFeature(config.FeatureGraphQL) {
		reqs = append(reqs, "graphene-django==3.1.5")
	}
	if cfg.HasFeature(config.FeatureCelery) {
		reqs = append(reqs, "celery==5.3.4", "redis==5.0.1")
	}
	if cfg.HasFeature(config.FeatureDocker) {
		reqs = append(reqs, "gunicorn==21.2.0")
	}

	return strings.Join(reqs, "\n")
}

// readmeContext is the render data shared by the Django and Flask READMEs.
type readmeContext struct {
	ProjectName    string
	Description    string
	Database       string
	EntityBullets  string
	FeatureBullets string
}

// djangoTestsContext is the render data for api/tests.py; the test case is
// generated for the first entity only.
type djangoTestsContext struct {
	Classes string
	Entity  EntityContext
}

// django renders the full Django project layout: a config package, an api
// app with per-entity models, serializers, viewsets, router registrations,
// admin, and a first-entity test case.
func (g *Generator) django(projectName string, cfg config.Project) ([]File, error) {
	entities := EntityContexts(cfg.Entities)

	bullets := make([]string, len(entities))
	for i, e := range entities {
		bullets[i] = fmt.Sprintf("- **%s** - Django model with REST API at /api/%s/", e.Class, e.Plural)
	}

	readme, err := g.r.Render("django/readme.md.tmpl", readmeContext{
		ProjectName:    projectName,
		Description:    cfg.Description,
		Database:       cfg.Database,
		EntityBullets:  strings.Join(bullets, "\n"),
		FeatureBullets: featureBullets(cfg.Features),
	})
	if err != nil {
		return nil, err
	}

	settings, err := g.r.Render("django/settings.py.tmpl", map[string]string{
		"DatabaseBlock": djangoDatabaseBlock(cfg.Database),
	})
	if err != nil {
		return nil, err
	}

	modelBlocks, err := g.renderEntityBlocks("django/model.py.tmpl", entities)
	if err != nil {
		return nil, err
	}
	serializerBlocks, err := g.concatEntityBlocks("django/serializer.py.tmpl", entities)
	if err != nil {
		return nil, err
	}
	viewBlocks, err := g.concatEntityBlocks("django/viewset.py.tmpl", entities)
	if err != nil {
		return nil, err
	}
	adminBlocks, err := g.concatEntityBlocks("django/admin.py.tmpl", entities)
	if err != nil {
		return nil, err
	}

	classes := classList(entities)

	serializerNames := make([]string, len(entities))
	viewSetNames := make([]string, len(entities))
	registrations := make([]string, len(entities))
	for i, e := range entities {
		serializerNames[i] = e.Class + "Serializer"
		viewSetNames[i] = e.Class + "ViewSet"
		registrations[i] = fmt.Sprintf("router.register(r'%s', %sViewSet)", e.Plural, e.Class)
	}

	urlsPy := "from django.urls import path, include\n" +
		"from rest_framework.routers import DefaultRouter\n" +
		"from .views import " + strings.Join(viewSetNames, ", ") + "\n\n" +
		"router = DefaultRouter()\n" +
		strings.Join(registrations, "\n") + "\n" +
		"\nurlpatterns = [\n    path('', include(router.urls)),\n]\n"

	tests, err := g.r.Render("django/tests.py.tmpl", djangoTestsContext{
		Classes: classes,
		Entity:  entities[0],
	})
	if err != nil {
		return nil, err
	}

	managePy, err := g.r.Static("django/manage.py")
	if err != nil {
		return nil, err
	}
	configUrls, err := g.r.Static("django/urls.py")
	if err != nil {
		return nil, err
	}
	wsgi, err := g.r.Static("django/wsgi.py")
	if err != nil {
		return nil, err
	}
	apps, err := g.r.Static("django/apps.py")
	if err != nil {
		return nil, err
	}
	gitignore, err := g.r.Static("django/gitignore")
	if err != nil {
		return nil, err
	}

	files := []File{
		{Path: "requirements.txt", Content: djangoRequirements(cfg)},
		{Path: "README.md", Content: string(readme)},
		{Path: "manage.py", Content: string(managePy)},
		{Path: "config/__init__.py", Content: ""},
		{Path: "config/settings.py", Content: string(settings)},
		{Path: "config/urls.py", Content: string(configUrls)},
		{Path: "config/wsgi.py", Content: string(wsgi)},
		{Path: "api/__init__.py", Content: ""},
		{Path: "api/apps.py", Content: string(apps)},
		{Path: "api/models.py", Content: "from django.db import models\n" + modelBlocks},
		{Path: "api/serializers.py", Content: "from rest_framework import serializers\nfrom .models import " + classes + "\n\n" + serializerBlocks},
		{Path: "api/views.py", Content: "from rest_framework import viewsets\nfrom .models import " + classes + "\nfrom .serializers import " + strings.Join(serializerNames, ", ") + "\n\n" + viewBlocks},
		{Path: "api/urls.py", Content: urlsPy},
		{Path: "api/admin.py", Content: "from django.contrib import admin\nfrom .models import " + classes + "\n\n" + adminBlocks},
		{Path: "api/tests.py", Content: string(tests)},
		{Path: ".gitignore", Content: string(gitignore)},
	}

	if cfg.HasFeature(config.FeatureDocker) {
		dockerfile, err := g.r.Static("django/dockerfile")
		if err != nil {
			return nil, err
		}
		compose, err := g.r.Static("django/docker-compose.yml")
		if err != nil {
			return nil, err
		}
		files = append(files,
			File{Path: "Dockerfile", Content: string(dockerfile)},
			File{Path: "docker-compose.yml", Content: string(compose)},
		)
	}

	return files, nil
}
