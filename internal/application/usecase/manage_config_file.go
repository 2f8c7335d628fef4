package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/bridgecfg/internal/application/port"
	"github.com/bnema/bridgecfg/internal/domain/entity"
	"github.com/bnema/bridgecfg/internal/logging"
)

// ManageConfigFileUseCase errors.
var (
	ErrUnknownConfigFile = errors.New("unknown config file")
	ErrNoFileSelected    = errors.New("no config file selected")
	ErrNotLoaded         = errors.New("config file was not loaded, refusing to overwrite it")
)

// ManageConfigFileUseCase owns the selected configuration file and its
// in-memory document.
type ManageConfigFileUseCase struct {
	store port.DocumentStore

	mu      sync.Mutex
	files   []entity.ConfigFile
	current *entity.ConfigFile
	doc     *entity.Document
	dirty   bool
}

// NewManageConfigFileUseCase creates a new ManageConfigFileUseCase.
func NewManageConfigFileUseCase(store port.DocumentStore) *ManageConfigFileUseCase {
	return &ManageConfigFileUseCase{
		store: store,
		doc:   entity.EmptyDocument(),
	}
}

// SetFiles replaces the selectable files, typically after discovery.
func (uc *ManageConfigFileUseCase) SetFiles(files []entity.ConfigFile) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.files = append([]entity.ConfigFile(nil), files...)
}

// Files returns the selectable files in display order.
func (uc *ManageConfigFileUseCase) Files() []entity.ConfigFile {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return append([]entity.ConfigFile(nil), uc.files...)
}

// Current returns the selected file.
func (uc *ManageConfigFileUseCase) Current() (entity.ConfigFile, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.current == nil {
		return entity.ConfigFile{}, false
	}
	return *uc.current, true
}

// Document returns the working document. It is never nil.
func (uc *ManageConfigFileUseCase) Document() *entity.Document {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.doc
}

// Dirty reports unsaved edits.
func (uc *ManageConfigFileUseCase) Dirty() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.dirty
}

// MarkDirty records an edit of the working document.
func (uc *ManageConfigFileUseCase) MarkDirty() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.dirty = true
}

// Select makes the file with the given base name current and loads it.
func (uc *ManageConfigFileUseCase) Select(ctx context.Context, name string) (*entity.Document, error) {
	uc.mu.Lock()
	var file *entity.ConfigFile
	for i := range uc.files {
		if uc.files[i].Name == name {
			f := uc.files[i]
			file = &f
			break
		}
	}
	uc.mu.Unlock()

	if file == nil {
		return uc.Document(), fmt.Errorf("%w: %s", ErrUnknownConfigFile, name)
	}
	return uc.load(ctx, *file)
}

// Open makes an arbitrary path current and loads it.
func (uc *ManageConfigFileUseCase) Open(ctx context.Context, path string) (*entity.Document, error) {
	return uc.load(ctx, entity.ConfigFile{Name: entity.BaseName(path), Path: path})
}

// Reload discards unsaved edits and reads the current file again.
func (uc *ManageConfigFileUseCase) Reload(ctx context.Context) (*entity.Document, error) {
	file, ok := uc.Current()
	if !ok {
		return uc.Document(), ErrNoFileSelected
	}
	return uc.load(ctx, file)
}

// load reads file. A failed load leaves an empty document in place so the
// editor stays usable; the error is returned for display.
func (uc *ManageConfigFileUseCase) load(ctx context.Context, file entity.ConfigFile) (*entity.Document, error) {
	log := logging.FromContext(logging.WithFile(ctx, file.Path))

	doc, err := uc.store.Load(ctx, file.Path)
	if err != nil {
		log.Error().Err(err).Msg("couldn't open config file for editing")
		doc = entity.EmptyDocument()
	} else {
		log.Debug().Int("leaves", doc.LeafCount()).Msg("config file loaded")
	}

	uc.mu.Lock()
	uc.current = &file
	uc.doc = doc
	uc.dirty = false
	uc.mu.Unlock()

	if err != nil {
		return doc, fmt.Errorf("load %s: %w", file.Name, err)
	}
	return doc, nil
}

// Save writes the working document back to the current file. A file whose
// load failed is never written. A failure is logged and returned; the
// document and dirty flag are left untouched.
func (uc *ManageConfigFileUseCase) Save(ctx context.Context) error {
	uc.mu.Lock()
	current := uc.current
	doc := uc.doc
	uc.mu.Unlock()

	if current == nil {
		return ErrNoFileSelected
	}

	log := logging.FromContext(logging.WithFile(ctx, current.Path))
	if !doc.Loaded() {
		log.Warn().Msg("not saving a config file that failed to load")
		return fmt.Errorf("save %s: %w", current.Name, ErrNotLoaded)
	}
	if err := uc.store.Save(ctx, doc, current.Path); err != nil {
		log.Error().Err(err).Msg("failed to save config file")
		return fmt.Errorf("save %s: %w", current.Name, err)
	}

	uc.mu.Lock()
	if uc.doc == doc {
		uc.dirty = false
	}
	uc.mu.Unlock()

	log.Info().Msg("config file saved")
	return nil
}
