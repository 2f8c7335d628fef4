package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bnema/bridgecfg/internal/application/port"
	"github.com/bnema/bridgecfg/internal/domain/entity"
	"github.com/bnema/bridgecfg/internal/domain/repository"
	"github.com/bnema/bridgecfg/internal/logging"
)

// PushParametersUseCase sends every parameter of a document to the bridge
// in one request.
type PushParametersUseCase struct {
	journal   repository.PushJournalRepository
	namespace string
	now       func() time.Time
}

// NewPushParametersUseCase creates a new PushParametersUseCase. journal may be nil.
func NewPushParametersUseCase(journal repository.PushJournalRepository, namespace string) *PushParametersUseCase {
	if namespace == "" {
		namespace = DefaultParameterNamespace
	}
	return &PushParametersUseCase{
		journal:   journal,
		namespace: namespace,
		now:       time.Now,
	}
}

// PushParametersInput contains the parameters for a bulk push.
type PushParametersInput struct {
	Document *entity.Document
	Client   port.ParameterClient
	Plugin   entity.PluginInfo
	File     string
}

// PushParametersOutput reports what was sent and how the bridge answered.
type PushParametersOutput struct {
	Parameters []entity.Parameter
	Results    []entity.ParameterResult
	// Skipped lists values with no parameter representation (sequences).
	Skipped  []string
	Rejected int
}

// CollectParameters flattens the namespace mapping of every top-level node
// into parameters sorted by name. When several nodes define the same name
// the later node wins.
func CollectParameters(doc *entity.Document, namespace string) ([]entity.Parameter, []string, error) {
	if namespace == "" {
		namespace = DefaultParameterNamespace
	}

	found := false
	values := make(map[string]entity.ParameterValue)
	var skipped []string

	for _, e := range doc.Root().Entries() {
		ns, ok := e.Value.Lookup(namespace)
		if !ok || !ns.IsMapping() {
			continue
		}
		found = true
		for name, n := range entity.Flatten(ns, "") {
			v, ok := entity.ParameterFromNode(n)
			if !ok {
				skipped = append(skipped, e.Key+entity.PathSeparator+namespace+entity.PathSeparator+name)
				continue
			}
			values[name] = v
		}
	}
	if !found {
		return nil, nil, fmt.Errorf("%w: no %q mapping", ErrNoParameterNamespace, namespace)
	}

	params := make([]entity.Parameter, 0, len(values))
	for name, v := range values {
		params = append(params, entity.Parameter{Name: name, Value: v})
	}
	sort.Slice(params, func(i, j int) bool { return params[i].Name < params[j].Name })
	sort.Strings(skipped)
	return params, skipped, nil
}

// Execute pushes all parameters of the document. Rejected parameters are
// counted and reported as ErrParameterRejected after the whole batch has
// been journaled.
func (uc *PushParametersUseCase) Execute(ctx context.Context, input PushParametersInput) (*PushParametersOutput, error) {
	log := logging.FromContext(ctx)

	if input.Document == nil {
		return nil, ErrNoFileSelected
	}
	if input.Client == nil {
		return nil, ErrNotConnected
	}

	params, skipped, err := CollectParameters(input.Document, uc.namespace)
	if err != nil {
		return nil, err
	}
	for _, s := range skipped {
		log.Debug().Str("path", s).Msg("skipping value without parameter type")
	}

	out := &PushParametersOutput{Parameters: params, Skipped: skipped}
	if len(params) == 0 {
		return out, nil
	}

	results, err := input.Client.SetParameters(ctx, params)
	if err != nil {
		log.Error().Err(err).Int("count", len(params)).Msg("bulk parameter push failed")
		return out, fmt.Errorf("push parameters: %w", err)
	}

	info := input.Plugin
	if info.NodeName == "" {
		info.NodeName = input.Client.Node()
	}
	at := uc.now()

	out.Results = make([]entity.ParameterResult, len(params))
	records := make([]*entity.PushRecord, len(params))
	for i, p := range params {
		res := entity.ParameterResult{Name: p.Name, Reason: "no result returned"}
		if i < len(results) {
			res = results[i]
			if res.Name == "" {
				res.Name = p.Name
			}
		}
		if !res.Successful {
			out.Rejected++
		}
		out.Results[i] = res
		records[i] = entity.NewPushRecord(entity.PushModeBulk, info, input.File, p, res, at)
	}
	recordPushes(ctx, uc.journal, records...)

	if out.Rejected > 0 {
		log.Warn().Int("rejected", out.Rejected).Int("count", len(params)).Msg("bridge rejected parameters")
		return out, fmt.Errorf("%w: %d of %d", ErrParameterRejected, out.Rejected, len(params))
	}
	log.Info().Int("count", len(params)).Msg("parameters pushed")
	return out, nil
}
