package plan

import (
	"fmt"
	"log/slog"

	"pinout-generator/internal/board"
	"pinout-generator/internal/declaration"
	"pinout-generator/internal/diagnostic"
	"pinout-generator/internal/enums"
	"pinout-generator/internal/meta"
	"pinout-generator/internal/pintype"
	"pinout-generator/internal/registry"
)

// ResolutionConfig holds configuration for the resolution process.
type ResolutionConfig struct {
	// PinTypes maps classes to enum categories.
	PinTypes *pintype.Table
	// Logger receives progress messages; nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() ResolutionConfig {
	return ResolutionConfig{
		PinTypes: pintype.DefaultTable(),
	}
}

// Resolver performs the resolution pipeline for one board.
type Resolver struct {
	inputs board.Inputs
	index  *enums.Index
	config ResolutionConfig
	log    *slog.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(inputs board.Inputs, index *enums.Index, config ResolutionConfig) *Resolver {
	if config.PinTypes == nil {
		config.PinTypes = pintype.DefaultTable()
	}

	log := config.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Resolver{
		inputs: inputs,
		index:  index,
		config: config,
		log:    log.With("board", inputs.Name()),
	}
}

// Resolve runs the full resolution pipeline. Every error is fatal for the
// board; a board without declaration files resolves to an empty pinout.
func (r *Resolver) Resolve() (*ResolvedPinout, error) {
	p := &ResolvedPinout{
		Board:    r.inputs.Name(),
		Registry: registry.New(),
	}

	keys, err := r.inputs.YAMLKeys()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Board, err)
	}

	if len(keys) == 0 {
		r.log.Info("no declaration files, nothing to generate")
		return p, nil
	}

	for _, key := range keys {
		if err := r.readFile(p, key); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}

		p.Sources = append(p.Sources, key)
	}

	r.log.Info("read declarations", "files", len(keys), "ids", p.Registry.Len())

	categories, err := r.registerPins(p.Registry)
	if err != nil {
		return nil, err
	}

	p.Categories = categories

	return p, nil
}

func (r *Resolver) readFile(p *ResolvedPinout, key string) error {
	rc, err := r.inputs.Reader(key)
	if err != nil {
		return err
	}

	f, err := declaration.Read(rc)

	closeErr := rc.Close()
	if err != nil {
		return err
	}

	if closeErr != nil {
		return fmt.Errorf("closing: %w", closeErr)
	}

	header, err := metaHeader(f)
	if err != nil {
		return err
	}

	mapping, err := meta.BuildMapping(header, r.inputs)
	if err != nil {
		return err
	}

	if len(f.Pins) == 0 {
		r.log.Debug("no pins declared", "file", key)
		return nil
	}

	parser := declaration.NewParser(key, mapping, &p.Diagnostics)
	skipped := len(p.Diagnostics.Infos)

	err = parser.Parse(f, func(rec declaration.PinRecord) error {
		return p.Registry.Add(rec)
	})
	if err != nil {
		return err
	}

	for _, d := range p.Diagnostics.Infos[skipped:] {
		r.log.Debug("skipping incomplete declaration", "file", key, "subject", d.Subject)
	}

	r.log.Debug("read declaration file", "file", key, "pins", len(f.Pins), "meta", header, "aliases", mapping.Len())

	return nil
}

func metaHeader(f *declaration.File) (string, error) {
	switch {
	case f.Meta.IsAbsent():
		return "", nil
	case f.Meta.IsString():
		return f.Meta.Text, nil
	default:
		return "", diagnostic.Malformed("meta", "expected header name, got %s", f.Meta.Kind)
	}
}

// registerPins validates every record against its enum category and
// collects display names by enum index, one list per pin type.
func (r *Resolver) registerPins(reg *registry.Registry) ([]CategoryNames, error) {
	table := r.config.PinTypes
	names := make(map[pintype.Class]*IndexedNames)
	boardName := r.inputs.Name()

	for _, rec := range reg.Records() {
		pt, ok := table.Find(rec.Class)
		if !ok {
			return nil, diagnostic.Malformed(rec.ID, "class not found: %s", rec.Class)
		}

		category, err := r.index.Category(pt.Category)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", boardName, err)
		}

		index, ok := category.Lookup(rec.ID)
		if !ok {
			return nil, &diagnostic.UnresolvedReferenceError{Board: boardName, ID: rec.ID, Class: rec.Class}
		}

		list, ok := names[pt.Class]
		if !ok {
			list = &IndexedNames{}
			names[pt.Class] = list
		}

		list.Put(index, rec.DisplayName)
	}

	res := make([]CategoryNames, 0, len(table.All()))

	for _, pt := range table.All() {
		cn := CategoryNames{PinType: pt}

		if list, ok := names[pt.Class]; ok {
			cn.Names = *list
			// looked up above, cannot fail
			cn.Category, _ = r.index.Category(pt.Category)
		}

		res = append(res, cn)
	}

	return res, nil
}
