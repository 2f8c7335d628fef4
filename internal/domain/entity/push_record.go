package entity

import (
	"errors"
	"time"
)

// ErrInvalidPushRecord is returned when a push record is missing required fields.
var ErrInvalidPushRecord = errors.New("invalid push record")

// PushMode distinguishes single-value pushes from bulk pushes.
type PushMode string

const (
	PushModeSingle PushMode = "single"
	PushModeBulk   PushMode = "bulk"
)

// PushRecord is one parameter update sent to the bridge.
type PushRecord struct {
	ID         int64
	Mode       PushMode
	Plugin     string
	Node       string
	File       string
	Parameter  string
	Kind       ParameterKind
	Value      string
	Successful bool
	Reason     string
	PushedAt   time.Time
}

func (r *PushRecord) Validate() error {
	if r == nil {
		return ErrInvalidPushRecord
	}
	if r.Parameter == "" || r.Node == "" {
		return ErrInvalidPushRecord
	}
	if r.Mode != PushModeSingle && r.Mode != PushModeBulk {
		return ErrInvalidPushRecord
	}
	if r.PushedAt.IsZero() {
		return ErrInvalidPushRecord
	}
	return nil
}

// NewPushRecord builds a record from a parameter and the bridge's verdict.
func NewPushRecord(mode PushMode, info PluginInfo, file string, p Parameter, result ParameterResult, at time.Time) *PushRecord {
	return &PushRecord{
		Mode:       mode,
		Plugin:     info.PluginName,
		Node:       info.NodeName,
		File:       file,
		Parameter:  p.Name,
		Kind:       p.Value.Kind,
		Value:      p.Value.String(),
		Successful: result.Successful,
		Reason:     result.Reason,
		PushedAt:   at.UTC(),
	}
}
