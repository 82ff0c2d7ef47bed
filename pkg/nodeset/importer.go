package nodeset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Andy3189/async-opcua/pkg/graph"
	"github.com/Andy3189/async-opcua/pkg/logging"
	"github.com/Andy3189/async-opcua/pkg/metrics"
	"github.com/Andy3189/async-opcua/pkg/space"
	"github.com/Andy3189/async-opcua/pkg/ua"
	"github.com/Andy3189/async-opcua/pkg/validation"
)

var (
	// ErrSessionClosed is returned when importing after Finalize.
	ErrSessionClosed = errors.New("import session already finalized")
	// ErrDuplicateNode aborts an import under the error duplicate policy.
	ErrDuplicateNode = errors.New("duplicate node in document")
)

// ImportError wraps a fatal import failure with its document and stage.
type ImportError struct {
	File  string
	Stage Stage
	Cause error
}

// Error implements the error interface.
func (e *ImportError) Error() string {
	return fmt.Sprintf("import %s, stage %s: %v", e.File, e.Stage, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *ImportError) Unwrap() error {
	return e.Cause
}

// Importer loads UANodeSet documents into an address space. One
// importer is one session: documents may reference nodes from files
// imported earlier or later, so references are inserted deferred and
// checked once by Finalize. An importer is not safe for concurrent
// use.
type Importer struct {
	space  *space.AddressSpace
	opts   Options
	logger logging.Logger
	m      *metrics.Registry

	stage   Stage
	files   int
	reports []*Report
}

// NewImporter creates an import session over the given space.
func NewImporter(s *space.AddressSpace, opts Options) (*Importer, error) {
	if err := validation.ValidateConfig(opts); err != nil {
		return nil, err
	}
	return &Importer{
		space:  s,
		opts:   opts,
		logger: logging.DefaultLogger().With(logging.Component("nodeset")),
		stage:  StageIdle,
	}, nil
}

// SetLogger replaces the session logger.
func (im *Importer) SetLogger(l logging.Logger) {
	im.logger = l.With(logging.Component("nodeset"))
}

// SetMetrics attaches a metrics registry to the session.
func (im *Importer) SetMetrics(m *metrics.Registry) {
	im.m = m
}

// Stage returns the current pipeline stage.
func (im *Importer) Stage() Stage {
	return im.stage
}

// Reports returns the reports of all documents imported so far.
func (im *Importer) Reports() []*Report {
	return im.reports
}

// ImportFile imports one UANodeSet XML file.
func (im *Importer) ImportFile(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ImportError{File: path, Stage: StageParseNamespaces, Cause: err}
	}
	defer f.Close()
	return im.ImportReader(f, filepath.Base(path))
}

// ImportBytes imports one document held in memory.
func (im *Importer) ImportBytes(data []byte, name string) (*Report, error) {
	return im.ImportReader(bytes.NewReader(data), name)
}

// ImportReader imports one document from r. The name is used for
// logging and reporting only.
func (im *Importer) ImportReader(r io.Reader, name string) (*Report, error) {
	if im.stage == StageDone || im.stage == StageFailed {
		return nil, &ImportError{File: name, Stage: im.stage, Cause: ErrSessionClosed}
	}
	start := time.Now()

	doc, err := ParseDocument(r)
	if err != nil {
		return nil, im.fail(name, StageParseNamespaces, err)
	}

	report := &Report{File: name}
	if len(doc.Models) > 0 {
		report.ModelURI = doc.Models[0].ModelURI
	}
	ctx := &docContext{
		nsMap:   map[uint16]uint16{0: 0},
		aliases: ua.NewAliasTable(),
		report:  report,
	}

	im.runStage(StageParseNamespaces, func() {
		im.parseNamespaces(doc, ctx)
	})
	im.runStage(StageParseAliases, func() {
		im.parseAliases(doc, ctx)
	})
	if err := im.runStageErr(StageCreateNodes, func() error {
		return im.createNodes(doc, ctx)
	}); err != nil {
		return report, im.fail(name, StageCreateNodes, err)
	}
	im.runStage(StageCreateReferences, func() {
		im.createReferences(doc, ctx)
	})

	report.Duration = time.Since(start)
	im.stage = StageIdle
	im.files++
	im.reports = append(im.reports, report)
	if im.m != nil {
		im.m.RecordImportFile("success")
	}
	im.logger.Info("document imported",
		logging.Path(name),
		logging.Int("nodes_created", report.NodesCreated),
		logging.Int("nodes_skipped", report.NodesSkipped),
		logging.Int("references_created", report.RefsCreated),
		logging.Int("diagnostics", len(report.Diagnostics)),
		logging.Latency(report.Duration),
	)
	return report, nil
}

// Finalize closes the session and validates the assembled space. Any
// structural errors mark the session failed; importing further
// documents afterwards is rejected either way.
func (im *Importer) Finalize() ([]space.StructuralError, error) {
	if im.stage == StageDone || im.stage == StageFailed {
		return nil, ErrSessionClosed
	}
	im.stage = StageFinalize
	errs := im.space.Finalize()
	if len(errs) > 0 {
		im.stage = StageFailed
		return errs, nil
	}
	im.stage = StageDone
	return nil, nil
}

func (im *Importer) fail(name string, stage Stage, err error) error {
	im.stage = StageFailed
	if im.m != nil {
		im.m.RecordImportFile("failed")
	}
	im.logger.Error("import failed",
		logging.Path(name),
		logging.Stage(stage.String()),
		logging.Error(err),
	)
	return &ImportError{File: name, Stage: stage, Cause: err}
}

func (im *Importer) runStage(stage Stage, fn func()) {
	_ = im.runStageErr(stage, func() error {
		fn()
		return nil
	})
}

func (im *Importer) runStageErr(stage Stage, fn func() error) error {
	im.stage = stage
	start := time.Now()
	err := fn()
	if im.m != nil {
		im.m.RecordImportStage(stage.String(), time.Since(start))
	}
	return err
}

func (im *Importer) parseNamespaces(doc *Document, ctx *docContext) {
	// Document index 0 is always the standard namespace and is never
	// listed; declared URIs start at document index 1.
	for i, uri := range doc.NamespaceURIs {
		docIndex := uint16(i + 1)
		spaceIndex := im.space.ResolveNamespace(uri)
		ctx.nsMap[docIndex] = spaceIndex
		if spaceIndex != docIndex {
			im.logger.Debug("namespace remapped",
				logging.NamespaceURI(uri),
				logging.Int("document_index", int(docIndex)),
				logging.Int("space_index", int(spaceIndex)),
			)
		}
		ctx.report.NamespacesAdded = append(ctx.report.NamespacesAdded, uri)
	}
}

func (im *Importer) parseAliases(doc *Document, ctx *docContext) {
	for _, a := range doc.Aliases {
		raw := strings.TrimSpace(a.NodeID)
		id, err := ua.ParseNodeID(raw)
		if err != nil {
			im.diagnostic(ctx, Diagnostic{
				Severity: SeverityWarning,
				Stage:    StageParseAliases,
				Message:  fmt.Sprintf("alias %q: unparseable node id %q", a.Alias, raw),
			})
			continue
		}
		ctx.aliases.Intern(a.Alias, ctx.remap(id))
	}
}

func (im *Importer) createNodes(doc *Document, ctx *docContext) error {
	for _, x := range doc.Nodes {
		n, err := ctx.buildNode(x, im.opts.IgnoreValues)
		if err != nil {
			im.diagnostic(ctx, Diagnostic{
				Severity: SeverityWarning,
				Stage:    StageCreateNodes,
				NodeID:   x.NodeID,
				Message:  err.Error(),
			})
			continue
		}

		if err := im.space.InsertNode(n); err != nil {
			if !space.IsDuplicate(err) {
				return err
			}
			if im.opts.DuplicatePolicy == DuplicateError {
				return fmt.Errorf("%w: %s", ErrDuplicateNode, n.NodeID())
			}
			ctx.report.NodesSkipped++
			if im.m != nil {
				im.m.ImportNodesSkipped.Inc()
			}
			im.logger.Debug("node already present, skipped",
				logging.NodeID(n.NodeID()),
				logging.BrowseName(n.BrowseName()),
				logging.Path(ctx.report.File),
			)
			continue
		}

		ctx.report.NodesCreated++
		if im.m != nil {
			im.m.RecordNodeCreated(n.NodeClass().String())
		}
	}
	return nil
}

func (im *Importer) createReferences(doc *Document, ctx *docContext) {
	for _, x := range doc.Nodes {
		sourceID, err := ctx.resolveID(x.NodeID)
		if err != nil {
			// Already reported during node creation.
			continue
		}
		if !im.space.ContainsNode(sourceID) {
			// The declaring node was skipped; its references would be
			// guaranteed dangling sources.
			ctx.report.RefsSkipped += len(x.References)
			continue
		}
		for _, r := range x.References {
			typeID, terr := ctx.resolveID(r.ReferenceType)
			if terr != nil {
				ctx.report.RefsSkipped++
				im.diagnostic(ctx, Diagnostic{
					Severity: SeverityWarning,
					Stage:    StageCreateReferences,
					NodeID:   x.NodeID,
					Message:  fmt.Sprintf("reference type %q: %v", r.ReferenceType, terr),
				})
				continue
			}
			targetID, terr := ctx.resolveID(r.Target)
			if terr != nil {
				ctx.report.RefsSkipped++
				im.diagnostic(ctx, Diagnostic{
					Severity: SeverityWarning,
					Stage:    StageCreateReferences,
					NodeID:   x.NodeID,
					Message:  fmt.Sprintf("reference target %q: %v", strings.TrimSpace(r.Target), terr),
				})
				continue
			}

			ref := graph.Reference{
				Source:    sourceID,
				Target:    targetID,
				Type:      typeID,
				IsForward: parseIsForward(r.IsForward),
			}
			if !im.space.ContainsNode(targetID) {
				ctx.report.Deferred++
			}
			if err := im.space.InsertReference(ref, space.RefDeferred); err != nil {
				ctx.report.RefsSkipped++
				continue
			}
			ctx.report.RefsCreated++
			if im.m != nil {
				im.m.ImportReferencesCreated.Inc()
			}
		}
	}
	if im.m != nil {
		im.m.ImportDeferredReferences.Set(float64(ctx.report.Deferred))
	}
}

func (im *Importer) diagnostic(ctx *docContext, d Diagnostic) {
	ctx.report.addDiagnostic(im.opts.MaxDiagnostics, d)
	if im.m != nil {
		im.m.RecordDiagnostic(string(d.Severity))
	}
	im.logger.Warn(d.Message,
		logging.Stage(d.Stage.String()),
		logging.String("source_node", d.NodeID),
		logging.Path(ctx.report.File),
	)
}

func parseIsForward(s string) bool {
	return !strings.EqualFold(strings.TrimSpace(s), "false")
}
