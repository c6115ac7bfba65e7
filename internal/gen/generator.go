package gen

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/google/uuid"

	"pinout-generator/internal/plan"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// ToolName is named in the generated header comment.
	ToolName string
	// EnumPrefix qualifies pin ids in generated C++ ("Gpio::").
	EnumPrefix string
	// SourceRoot makes source paths in header comments relative; "" keeps them as is.
	SourceRoot string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		ToolName:   "pinout-generator",
		EnumPrefix: "Gpio::",
	}
}

// Generator renders the artifacts of a resolved pinout.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// ArtifactKind selects the sink writer a generated file goes to.
type ArtifactKind int

const (
	ArtifactBoardNames ArtifactKind = iota
	ArtifactOutputs
	ArtifactDefinitions
)

// String returns a human-readable artifact name.
func (k ArtifactKind) String() string {
	switch k {
	case ArtifactBoardNames:
		return "board names"
	case ArtifactOutputs:
		return "outputs"
	case ArtifactDefinitions:
		return "definitions"
	default:
		return fmt.Sprintf("ArtifactKind(%d)", int(k))
	}
}

// GeneratedFile is one rendered artifact.
type GeneratedFile struct {
	Kind    ArtifactKind
	Content []byte
}

// Generate renders every artifact of p. A pinout without sources yields
// no files. The definitions artifact is always rendered, header only when
// no pin type has names, so it replaces the output of an earlier run.
func (g *Generator) Generate(p *plan.ResolvedPinout) ([]GeneratedFile, error) {
	if !p.HasSources() {
		return nil, nil
	}

	header := headerData{Tool: g.config.ToolName, Sources: g.sourceNames(p.Sources)}

	var files []GeneratedFile

	names, err := render(boardNamesTemplate, boardNamesData{
		Header:     header,
		Entries:    ProjectNameLookup(p.Registry),
		EnumPrefix: g.config.EnumPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", ArtifactBoardNames, err)
	}

	files = append(files, GeneratedFile{Kind: ArtifactBoardNames, Content: names})

	outputs, err := render(outputsTemplate, outputsData{
		Header:  header,
		Outputs: ProjectOutputGroups(p.Registry, g.config.EnumPrefix),
	})
	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", ArtifactOutputs, err)
	}

	files = append(files, GeneratedFile{Kind: ArtifactOutputs, Content: outputs})

	defs := g.Definitions(p)

	content, err := render(definitionsTemplate, definitionsData{
		Header:      header,
		Definitions: defs.Sorted(),
	})
	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", ArtifactDefinitions, err)
	}

	return append(files, GeneratedFile{Kind: ArtifactDefinitions, Content: content}), nil
}

// Fingerprint identifies the rendered format: the artifact templates and the
// settings that change their text. Output of a generator with another
// fingerprint is never reused.
func (g *Generator) Fingerprint() string {
	parts := append([]string{g.config.ToolName, g.config.EnumPrefix}, templateSources...)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(strings.Join(parts, "\x00"))).String()
}

// Definitions projects every pin type of p into the definitions set.
func (g *Generator) Definitions(p *plan.ResolvedPinout) *Definitions {
	defs := NewDefinitions()

	for _, c := range p.Categories {
		pair := ProjectCategory(c.PinType.NothingName, c.Category, c.Names)
		defs.AddPair(c.PinType.OutputEnumName, pair)
	}

	return defs
}

func (g *Generator) sourceNames(sources []string) []string {
	res := make([]string, 0, len(sources))

	for _, s := range sources {
		if g.config.SourceRoot != "" {
			if rel, err := filepath.Rel(g.config.SourceRoot, s); err == nil {
				s = rel
			}
		}

		res = append(res, filepath.ToSlash(s))
	}

	return res
}

func render(t *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return buf.Bytes(), nil
}
