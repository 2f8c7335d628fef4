package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/bridgecfg/internal/application/port"
	"github.com/bnema/bridgecfg/internal/domain/entity"
)

// GetConfigSchemaUseCase retrieves configuration schema information.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

// NewGetConfigSchemaUseCase creates a new GetConfigSchemaUseCase.
func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{
		provider: provider,
	}
}

// GetConfigSchemaInput filters the listing. An empty Section returns all keys.
type GetConfigSchemaInput struct {
	Section string
}

// GetConfigSchemaOutput contains the schema information.
type GetConfigSchemaOutput struct {
	Keys []entity.ConfigKeyInfo
	// Sections lists section names in first-seen order.
	Sections []string
}

// Execute retrieves configuration keys with their metadata.
func (uc *GetConfigSchemaUseCase) Execute(_ context.Context, input GetConfigSchemaInput) (*GetConfigSchemaOutput, error) {
	all := uc.provider.GetSchema()

	out := &GetConfigSchemaOutput{Keys: make([]entity.ConfigKeyInfo, 0, len(all))}
	seen := make(map[string]bool)
	for _, k := range all {
		if !seen[k.Section] {
			seen[k.Section] = true
			out.Sections = append(out.Sections, k.Section)
		}
		if input.Section == "" || strings.EqualFold(k.Section, input.Section) {
			out.Keys = append(out.Keys, k)
		}
	}

	if input.Section != "" && len(out.Keys) == 0 {
		return nil, fmt.Errorf("unknown config section %q (have %s)", input.Section, strings.Join(out.Sections, ", "))
	}
	return out, nil
}

// JSONSchema returns the JSON Schema of the configuration file.
func (uc *GetConfigSchemaUseCase) JSONSchema(_ context.Context) ([]byte, error) {
	data, err := uc.provider.JSONSchema()
	if err != nil {
		return nil, fmt.Errorf("generate config schema: %w", err)
	}
	return data, nil
}
