package docgen

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/blackcoderx/postdoc/pkg/collection"
	"github.com/blackcoderx/postdoc/pkg/environment"
	"github.com/blackcoderx/postdoc/pkg/storage"
	"github.com/oklog/ulid/v2"
)

// DefaultOutputDir is used when Options.OutputDir is empty.
const DefaultOutputDir = "output"

// Renderer produces the final page for a bundle and supplies the static
// assets the page links to.
type Renderer interface {
	Render(b *Bundle) ([]byte, error)
	Assets() fs.FS
}

// Options describes one generation run.
type Options struct {
	CollectionPath  string
	EnvironmentPath string
	OutputDir       string
	// Download copies the source files next to the page and links them.
	Download bool
	// Title overrides the collection name as the page title.
	Title string
}

// Result summarizes a completed run.
type Result struct {
	RunID     string
	OutputDir string
	Requests  int
	Examples  int
}

// Generator runs the full pipeline: validate, load environment, build,
// render and write.
type Generator struct {
	renderer Renderer
	markdown TextFilter
	sanitize TextFilter
	logger   *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithMarkdown sets the filter that renders description markup to HTML.
func WithMarkdown(f TextFilter) Option {
	return func(g *Generator) { g.markdown = f }
}

// WithSanitizer sets the filter applied to rendered description HTML.
func WithSanitizer(f TextFilter) Option {
	return func(g *Generator) { g.sanitize = f }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a Generator that renders pages with r.
func New(r Renderer, opts ...Option) *Generator {
	g := &Generator{
		renderer: r,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Prepare loads and validates the inputs and builds the bundle without
// touching the output directory.
func (g *Generator) Prepare(opts Options) (*Bundle, error) {
	return g.prepare(g.logger, opts)
}

func (g *Generator) prepare(log *slog.Logger, opts Options) (*Bundle, error) {
	c, err := collection.Load(opts.CollectionPath)
	if err != nil {
		return nil, err
	}
	log.Debug("collection loaded", "name", c.Info.Name, "items", len(c.Item))

	var env *environment.Environment
	if opts.EnvironmentPath != "" {
		env, err = environment.Load(opts.EnvironmentPath)
		if err != nil {
			return nil, err
		}
		log.Debug("environment loaded", "name", env.Name, "values", len(env.Values))
	}

	b := &Builder{Env: env, Markdown: g.markdown, Sanitize: g.sanitize}
	bundle, err := b.Assemble(c, Source{
		CollectionFile:  opts.CollectionPath,
		EnvironmentFile: opts.EnvironmentPath,
	})
	if err != nil {
		return nil, err
	}
	if opts.Title != "" {
		bundle.Title = opts.Title
	}
	bundle.Download = opts.Download

	log.Debug("bundle built", "requests", len(bundle.Requests), "examples", bundle.ExampleCount())
	return bundle, nil
}

// Generate runs the pipeline and writes the site. Nothing is written unless
// the whole model was built and rendered.
func (g *Generator) Generate(opts Options) (*Result, error) {
	runID := ulid.Make().String()
	log := g.logger.With("run", runID)

	bundle, page, err := g.render(log, opts)
	if err != nil {
		return nil, err
	}

	outDir := outputDir(opts)
	var extras []string
	if opts.Download {
		extras = append(extras, opts.CollectionPath)
		if opts.EnvironmentPath != "" {
			extras = append(extras, opts.EnvironmentPath)
		}
	}

	log.Debug("writing site", "dir", outDir, "extras", len(extras))
	site := storage.Site{
		Dir:    outDir,
		Page:   page,
		Assets: g.renderer.Assets(),
		Extras: extras,
	}
	if err := site.Write(); err != nil {
		return nil, err
	}
	log.Info("documentation written", "dir", outDir, "page", site.PagePath())

	return &Result{
		RunID:     runID,
		OutputDir: outDir,
		Requests:  len(bundle.Requests),
		Examples:  bundle.ExampleCount(),
	}, nil
}

// Check renders the page in memory and returns a unified diff against the
// page currently in the output directory. An empty diff means up to date.
func (g *Generator) Check(opts Options) (string, error) {
	log := g.logger.With("run", ulid.Make().String())

	_, page, err := g.render(log, opts)
	if err != nil {
		return "", err
	}
	return storage.Diff(filepath.Join(outputDir(opts), storage.PageFile), page)
}

func (g *Generator) render(log *slog.Logger, opts Options) (*Bundle, []byte, error) {
	bundle, err := g.prepare(log, opts)
	if err != nil {
		return nil, nil, err
	}
	page, err := g.renderer.Render(bundle)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to render page: %w", err)
	}
	return bundle, page, nil
}

func outputDir(opts Options) string {
	if opts.OutputDir == "" {
		return DefaultOutputDir
	}
	return opts.OutputDir
}
