// Package cgm is the public facade over internal/cgm: an Options/New/Decoder
// wrapper around the internal decode and clear-text emission pipeline.
package cgm

import (
	"bytes"
	"errors"
	"io"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cgmkit/cgm/internal/cgm"
)

// VdcMode selects how an Integer VDC TYPE is rendered on emit. See
// internal/cgm.VdcMode.
type VdcMode int

const (
	ForceRealVdcOnEmit VdcMode = iota
	PreserveVdcType
)

// Options configures a Decoder.
type Options struct {
	// SrcData is the binary metafile to decode.
	SrcData []byte
	// VdcMode controls the VDC-type clear-text compatibility override.
	VdcMode VdcMode
	// WrapColumn is the clear-text emitter's soft line-wrap column; 0 uses
	// the package default of 80.
	WrapColumn uint16
	// EmitUnknownAsComment renders unrecognized commands as "%" comments in
	// clear-text output instead of silently dropping them.
	EmitUnknownAsComment bool
	// Logger receives structured per-run diagnostic events. A nil Logger
	// disables logging.
	Logger *logrus.Logger
}

func (o Options) toSettings() cgm.Settings {
	settings := cgm.DefaultSettings()
	if o.VdcMode == PreserveVdcType {
		settings.VdcMode = cgm.PreserveVdcType
	}
	if o.WrapColumn > 0 {
		settings.WrapColumn = o.WrapColumn
	}
	settings.EmitUnknownAsComment = o.EmitUnknownAsComment
	return settings
}

// Decoder manages one decode/emit run over a single metafile byte stream.
type Decoder struct {
	opts     Options
	settings cgm.Settings
	runID    uuid.UUID
	commands []cgm.Command
	diags    []cgm.Diagnostic
}

// New creates a Decoder for opts.SrcData. It performs no work until
// DecodeAll is called.
func New(opts Options) (*Decoder, error) {
	if len(opts.SrcData) == 0 {
		return nil, errors.New("cgm: empty source data")
	}
	return &Decoder{opts: opts, settings: opts.toSettings(), runID: uuid.New()}, nil
}

// RunID identifies this decode/emit run for log correlation.
func (d *Decoder) RunID() string { return d.runID.String() }

// DecodeAll parses the full command list, logging a structured summary if a
// Logger was configured.
func (d *Decoder) DecodeAll() error {
	d.commands, d.diags = cgm.Decode(d.opts.SrcData, d.settings)
	if d.opts.Logger != nil {
		entry := d.opts.Logger.WithField("run_id", d.runID.String())
		entry.WithFields(logrus.Fields{
			"commands":    len(d.commands),
			"diagnostics": len(d.diags),
		}).Info("cgm: decode complete")
		for _, diag := range d.diags {
			logDiagnostic(entry, diag)
		}
	}
	return nil
}

func logDiagnostic(entry *logrus.Entry, diag cgm.Diagnostic) {
	fields := logrus.Fields{
		"class":       diag.Class.String(),
		"id":          diag.ID,
		"byte_offset": diag.ByteOffset,
	}
	switch diag.Severity {
	case cgm.SeverityFatal:
		entry.WithFields(fields).Error(diag.Message)
	case cgm.SeverityUnsupported, cgm.SeverityUnimplemented:
		entry.WithFields(fields).Warn(diag.Message)
	default:
		entry.WithFields(fields).Debug(diag.Message)
	}
}

// CommandCount returns the number of commands decoded by DecodeAll.
func (d *Decoder) CommandCount() int { return len(d.commands) }

// Diagnostics returns the diagnostics accumulated by DecodeAll and
// EmitClearText.
func (d *Decoder) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(d.diags))
	for i, diag := range d.diags {
		out[i] = Diagnostic{
			Severity:   diag.Severity.String(),
			Class:      diag.Class.String(),
			ID:         diag.ID,
			ByteOffset: diag.ByteOffset,
			Message:    diag.Message,
		}
	}
	return out
}

// EmitClearText writes DecodeAll's command list to w as ISO/IEC 8632-4
// clear text.
func (d *Decoder) EmitClearText(w io.Writer) error {
	emitDiags := cgm.EmitClearText(d.commands, w, d.settings)
	d.diags = append(d.diags, emitDiags...)
	return nil
}

// ClearText is a convenience wrapper returning the emitted text as a string.
func (d *Decoder) ClearText() (string, error) {
	var buf bytes.Buffer
	if err := d.EmitClearText(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Diagnostic is the JSON- and log-friendly rendering of an internal
// Diagnostic, exported so callers outside this module never import
// internal/cgm directly.
type Diagnostic struct {
	Severity   string `json:"severity"`
	Class      string `json:"class"`
	ID         uint16 `json:"id"`
	ByteOffset int64  `json:"byte_offset"`
	Message    string `json:"message"`
}

// MarshalDiagnostics renders a run's diagnostics as JSON, using goccy/go-json
// for its drop-in encoding/json-compatible but lower-allocation encoder.
func MarshalDiagnostics(diags []Diagnostic) ([]byte, error) {
	return json.Marshal(diags)
}

// Convert decodes data and writes its clear-text rendering to w in one call.
func Convert(data []byte, w io.Writer, opts Options) ([]Diagnostic, error) {
	d, err := New(Options{
		SrcData:              data,
		VdcMode:              opts.VdcMode,
		WrapColumn:           opts.WrapColumn,
		EmitUnknownAsComment: opts.EmitUnknownAsComment,
		Logger:               opts.Logger,
	})
	if err != nil {
		return nil, err
	}
	if err := d.DecodeAll(); err != nil {
		return nil, err
	}
	if err := d.EmitClearText(w); err != nil {
		return nil, err
	}
	return d.Diagnostics(), nil
}
