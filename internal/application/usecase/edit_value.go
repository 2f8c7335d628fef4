package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/bridgecfg/internal/application/port"
	"github.com/bnema/bridgecfg/internal/domain/entity"
	"github.com/bnema/bridgecfg/internal/domain/repository"
	"github.com/bnema/bridgecfg/internal/logging"
)

// Parameter push errors.
var (
	ErrMalformedParameterPath = errors.New("path does not address a node parameter")
	ErrParameterRejected      = errors.New("parameter rejected by bridge")
	ErrNoParameterNamespace   = errors.New("document has no parameter namespace")
	ErrNotEditable            = errors.New("only scalar values can be edited")
)

// DefaultParameterNamespace is the key that holds a node's parameters in a
// ROS 2 params file: <node>: ros__parameters: <name...>.
const DefaultParameterNamespace = "ros__parameters"

// minParameterPathLen covers node, namespace and at least one name segment.
const minParameterPathLen = 3

// ParameterName returns the runtime parameter addressed by a document path.
func ParameterName(path entity.Path, namespace string) (string, error) {
	if namespace == "" {
		namespace = DefaultParameterNamespace
	}
	if len(path) < minParameterPathLen || path[1] != namespace {
		return "", fmt.Errorf("%w: %q", ErrMalformedParameterPath, path.String())
	}
	return strings.Join(path[2:], entity.PathSeparator), nil
}

// EditValueUseCase applies a text edit to a document leaf and optionally
// pushes it to the bridge as a typed parameter.
type EditValueUseCase struct {
	journal   repository.PushJournalRepository
	namespace string
	now       func() time.Time
}

// NewEditValueUseCase creates a new EditValueUseCase. journal may be nil.
func NewEditValueUseCase(journal repository.PushJournalRepository, namespace string) *EditValueUseCase {
	if namespace == "" {
		namespace = DefaultParameterNamespace
	}
	return &EditValueUseCase{
		journal:   journal,
		namespace: namespace,
		now:       time.Now,
	}
}

// EditValueInput contains the parameters for an edit.
type EditValueInput struct {
	Document *entity.Document
	Path     entity.Path
	Raw      string
	LivePush bool

	// Client, Plugin and File are only used when LivePush is set.
	Client port.ParameterClient
	Plugin entity.PluginInfo
	File   string
}

// EditValueOutput describes the applied edit.
type EditValueOutput struct {
	Value  entity.ParameterValue
	Pushed bool
	Result *entity.ParameterResult
}

// Execute coerces Raw, stores it at Path and, with LivePush, sends it to the
// bridge. The document edit is kept even when the push fails.
func (uc *EditValueUseCase) Execute(ctx context.Context, input EditValueInput) (*EditValueOutput, error) {
	log := logging.FromContext(ctx)

	if input.Document == nil {
		return nil, ErrNoFileSelected
	}

	existing, err := input.Document.Get(input.Path)
	if err != nil {
		return nil, err
	}
	if !existing.IsScalar() {
		return nil, fmt.Errorf("%w: %s is a %s", ErrNotEditable, input.Path, existing.Kind())
	}

	value := entity.Coerce(input.Raw)
	if err := input.Document.Set(input.Path, entity.NewScalarNode(value.Scalar())); err != nil {
		return nil, err
	}
	log.Debug().Str("path", input.Path.String()).Str("kind", string(value.Kind)).Msg("value edited")

	out := &EditValueOutput{Value: value}
	if !input.LivePush {
		return out, nil
	}

	name, err := ParameterName(input.Path, uc.namespace)
	if err != nil {
		log.Warn().Err(err).Msg("skipping live push")
		return out, err
	}
	if input.Client == nil {
		return out, ErrNotConnected
	}

	param := entity.Parameter{Name: name, Value: value}
	result, err := input.Client.SetParameter(ctx, param)
	if err != nil {
		log.Error().Err(err).Str("parameter", name).Msg("failed to push parameter")
		return out, fmt.Errorf("push %s: %w", name, err)
	}
	if result.Name == "" {
		result.Name = name
	}
	out.Pushed = true
	out.Result = &result

	info := input.Plugin
	if info.NodeName == "" {
		info.NodeName = input.Client.Node()
	}
	recordPushes(ctx, uc.journal, entity.NewPushRecord(entity.PushModeSingle, info, input.File, param, result, uc.now()))

	if !result.Successful {
		log.Warn().Str("parameter", name).Str("reason", result.Reason).Msg("bridge rejected parameter")
		return out, fmt.Errorf("%w: %s: %s", ErrParameterRejected, name, result.Reason)
	}
	log.Info().Str("parameter", name).Str("value", value.String()).Msg("parameter pushed")
	return out, nil
}

// recordPushes stores records in the journal. Journal failures never fail a push.
func recordPushes(ctx context.Context, journal repository.PushJournalRepository, records ...*entity.PushRecord) {
	if journal == nil {
		return
	}
	log := logging.FromContext(ctx)
	for _, r := range records {
		if err := journal.Save(ctx, r); err != nil {
			log.Warn().Err(err).Str("parameter", r.Parameter).Msg("failed to record push")
		}
	}
}
