package nodeset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Andy3189/async-opcua/pkg/graph"
	"github.com/Andy3189/async-opcua/pkg/nodes"
	"github.com/Andy3189/async-opcua/pkg/space"
	"github.com/Andy3189/async-opcua/pkg/ua"
)

const testTypeDoc = `<?xml version="1.0" encoding="utf-8"?>
<UANodeSet xmlns="http://opcfoundation.org/UA/2011/03/UANodeSet.xsd">
  <NamespaceUris>
    <Uri>http://test</Uri>
  </NamespaceUris>
  <Aliases>
    <Alias Alias="HasComponent">i=47</Alias>
  </Aliases>
  <UAObjectType NodeId="ns=1;i=1000" BrowseName="1:TestType">
    <DisplayName>TestType</DisplayName>
  </UAObjectType>
  <UAObject NodeId="ns=1;i=2000" BrowseName="1:TestObject">
    <DisplayName>TestObject</DisplayName>
    <References>
      <Reference ReferenceType="HasComponent">ns=1;i=1000</Reference>
    </References>
  </UAObject>
</UANodeSet>`

func newImporter(t *testing.T) (*Importer, *space.AddressSpace) {
	t.Helper()
	s := space.New()
	im, err := NewImporter(s, DefaultOptions())
	if err != nil {
		t.Fatalf("creating importer: %v", err)
	}
	return im, s
}

func TestImportTwoNodeDocument(t *testing.T) {
	im, s := newImporter(t)

	baseNodes := s.NodeCount()
	baseRefs := s.ReferenceCount()

	report, err := im.ImportReader(strings.NewReader(testTypeDoc), "test.xml")
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	if report.NodesCreated != 2 {
		t.Errorf("nodes created = %d, want 2", report.NodesCreated)
	}
	if report.RefsCreated != 1 {
		t.Errorf("references created = %d, want 1", report.RefsCreated)
	}
	if len(report.Diagnostics) != 0 {
		t.Errorf("unexpected diagnostics: %v", report.Diagnostics)
	}
	if got := s.NodeCount(); got != baseNodes+2 {
		t.Errorf("space node count = %d, want %d", got, baseNodes+2)
	}
	if got := s.ReferenceCount(); got != baseRefs+1 {
		t.Errorf("space reference count = %d, want %d", got, baseRefs+1)
	}

	// The alias must have resolved to the standard HasComponent type.
	refs := s.References(ua.NewNumericNodeID(1, 2000), graph.Filter{Type: ua.IDHasComponent})
	if len(refs) != 1 || refs[0].Target != ua.NewNumericNodeID(1, 1000) {
		t.Fatalf("references from TestObject = %v", refs)
	}
	if !refs[0].IsForward {
		t.Error("reference should default to forward")
	}

	structural, err := im.Finalize()
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if len(structural) != 0 {
		t.Fatalf("structural errors: %v", structural)
	}
	if im.Stage() != StageDone {
		t.Errorf("stage = %v, want done", im.Stage())
	}
}

func TestImportRemapsNamespaceIndexes(t *testing.T) {
	im, s := newImporter(t)

	// Occupy index 1 so the document's namespace lands on index 2.
	s.ResolveNamespace("http://already.there")

	report, err := im.ImportReader(strings.NewReader(testTypeDoc), "test.xml")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(report.NamespacesAdded) != 1 || report.NamespacesAdded[0] != "http://test" {
		t.Fatalf("namespaces added = %v", report.NamespacesAdded)
	}

	idx, ok := s.NamespaceIndex("http://test")
	if !ok || idx != 2 {
		t.Fatalf("http://test index = (%d, %v), want (2, true)", idx, ok)
	}

	// Node ids and browse names must follow the remap.
	n, ok := s.GetNode(ua.NewNumericNodeID(2, 2000))
	if !ok {
		t.Fatal("expected TestObject at ns=2;i=2000")
	}
	if n.BrowseName().Namespace != 2 {
		t.Errorf("browse name namespace = %d, want 2", n.BrowseName().Namespace)
	}
	if s.ContainsNode(ua.NewNumericNodeID(1, 2000)) {
		t.Error("document-numbered id must not appear in the space")
	}
}

func TestReimportSkipsExistingNodes(t *testing.T) {
	im, s := newImporter(t)

	if _, err := im.ImportReader(strings.NewReader(testTypeDoc), "first.xml"); err != nil {
		t.Fatal(err)
	}
	nodesAfterFirst := s.NodeCount()
	refsAfterFirst := s.ReferenceCount()

	report, err := im.ImportReader(strings.NewReader(testTypeDoc), "second.xml")
	if err != nil {
		t.Fatalf("re-import: %v", err)
	}
	if report.NodesCreated != 0 || report.NodesSkipped != 2 {
		t.Errorf("re-import created %d, skipped %d; want 0 and 2",
			report.NodesCreated, report.NodesSkipped)
	}
	if got := s.NodeCount(); got != nodesAfterFirst {
		t.Errorf("node count changed on re-import: %d -> %d", nodesAfterFirst, got)
	}
	if got := s.ReferenceCount(); got != refsAfterFirst {
		t.Errorf("reference count changed on re-import: %d -> %d", refsAfterFirst, got)
	}
}

func TestDuplicatePolicyError(t *testing.T) {
	s := space.New()
	opts := DefaultOptions()
	opts.DuplicatePolicy = DuplicateError
	im, err := NewImporter(s, opts)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := im.ImportReader(strings.NewReader(testTypeDoc), "first.xml"); err != nil {
		t.Fatal(err)
	}
	_, err = im.ImportReader(strings.NewReader(testTypeDoc), "second.xml")
	if !errors.Is(err, ErrDuplicateNode) {
		t.Fatalf("err = %v, want ErrDuplicateNode", err)
	}
	if im.Stage() != StageFailed {
		t.Errorf("stage = %v, want failed", im.Stage())
	}

	_, err = im.ImportReader(strings.NewReader(testTypeDoc), "third.xml")
	if !errors.Is(err, ErrSessionClosed) {
		t.Errorf("import after failure err = %v, want ErrSessionClosed", err)
	}
}

func TestMultiFileForwardReference(t *testing.T) {
	producer := `<?xml version="1.0"?>
<UANodeSet xmlns="http://opcfoundation.org/UA/2011/03/UANodeSet.xsd">
  <NamespaceUris><Uri>http://test</Uri></NamespaceUris>
  <UAObject NodeId="ns=1;i=1" BrowseName="1:Machine">
    <DisplayName>Machine</DisplayName>
    <References>
      <Reference ReferenceType="i=47">ns=1;i=2</Reference>
    </References>
  </UAObject>
</UANodeSet>`
	consumer := `<?xml version="1.0"?>
<UANodeSet xmlns="http://opcfoundation.org/UA/2011/03/UANodeSet.xsd">
  <NamespaceUris><Uri>http://test</Uri></NamespaceUris>
  <UAObject NodeId="ns=1;i=2" BrowseName="1:Motor">
    <DisplayName>Motor</DisplayName>
  </UAObject>
</UANodeSet>`

	im, _ := newImporter(t)

	report, err := im.ImportReader(strings.NewReader(producer), "producer.xml")
	if err != nil {
		t.Fatal(err)
	}
	if report.Deferred != 1 {
		t.Errorf("deferred references = %d, want 1", report.Deferred)
	}

	if _, err := im.ImportReader(strings.NewReader(consumer), "consumer.xml"); err != nil {
		t.Fatal(err)
	}

	structural, err := im.Finalize()
	if err != nil {
		t.Fatal(err)
	}
	if len(structural) != 0 {
		t.Fatalf("structural errors after both files: %v", structural)
	}
}

func TestUnresolvedDeferredReferenceFailsFinalize(t *testing.T) {
	doc := `<?xml version="1.0"?>
<UANodeSet xmlns="http://opcfoundation.org/UA/2011/03/UANodeSet.xsd">
  <NamespaceUris><Uri>http://test</Uri></NamespaceUris>
  <UAObject NodeId="ns=1;i=1" BrowseName="1:Orphan">
    <DisplayName>Orphan</DisplayName>
    <References>
      <Reference ReferenceType="i=35">ns=1;i=9999</Reference>
    </References>
  </UAObject>
</UANodeSet>`

	im, _ := newImporter(t)
	if _, err := im.ImportReader(strings.NewReader(doc), "orphan.xml"); err != nil {
		t.Fatal(err)
	}

	structural, err := im.Finalize()
	if err != nil {
		t.Fatal(err)
	}
	if len(structural) != 1 {
		t.Fatalf("structural errors = %v, want exactly one", structural)
	}
	if structural[0].Kind != space.StructuralDanglingTarget {
		t.Errorf("kind = %v, want dangling target", structural[0].Kind)
	}
	if im.Stage() != StageFailed {
		t.Errorf("stage = %v, want failed", im.Stage())
	}
}

func TestMalformedElementsBecomeDiagnostics(t *testing.T) {
	doc := `<?xml version="1.0"?>
<UANodeSet xmlns="http://opcfoundation.org/UA/2011/03/UANodeSet.xsd">
  <NamespaceUris><Uri>http://test</Uri></NamespaceUris>
  <UAObject NodeId="not-a-node-id" BrowseName="1:Broken">
    <DisplayName>Broken</DisplayName>
  </UAObject>
  <UAObject NodeId="ns=1;i=1" BrowseName="1:Fine">
    <DisplayName>Fine</DisplayName>
    <References>
      <Reference ReferenceType="NoSuchAlias">ns=1;i=2</Reference>
    </References>
  </UAObject>
</UANodeSet>`

	im, s := newImporter(t)
	report, err := im.ImportReader(strings.NewReader(doc), "broken.xml")
	if err != nil {
		t.Fatalf("malformed elements must not abort the import: %v", err)
	}

	if report.NodesCreated != 1 {
		t.Errorf("nodes created = %d, want 1", report.NodesCreated)
	}
	if report.RefsSkipped != 1 {
		t.Errorf("references skipped = %d, want 1", report.RefsSkipped)
	}
	if len(report.Diagnostics) != 2 {
		t.Fatalf("diagnostics = %v, want 2", report.Diagnostics)
	}
	if !s.ContainsNode(ua.NewNumericNodeID(1, 1)) {
		t.Error("valid sibling node should have been created")
	}
}

func TestMalformedDocumentIsFatal(t *testing.T) {
	im, _ := newImporter(t)
	_, err := im.ImportReader(strings.NewReader("<UANodeSet><Unclosed"), "bad.xml")
	if err == nil {
		t.Fatal("expected parse error")
	}
	var ie *ImportError
	if !errors.As(err, &ie) {
		t.Fatalf("err = %T, want *ImportError", err)
	}
	if im.Stage() != StageFailed {
		t.Errorf("stage = %v, want failed", im.Stage())
	}
}

func TestImportFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.xml")
	if err := os.WriteFile(path, []byte(testTypeDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	im, _ := newImporter(t)
	report, err := im.ImportFile(path)
	if err != nil {
		t.Fatalf("import file: %v", err)
	}
	if report.File != "model.xml" {
		t.Errorf("report file = %q, want base name", report.File)
	}
	if report.NodesCreated != 2 {
		t.Errorf("nodes created = %d, want 2", report.NodesCreated)
	}
}

func TestVariableAttributesAndDefaults(t *testing.T) {
	doc := `<?xml version="1.0"?>
<UANodeSet xmlns="http://opcfoundation.org/UA/2011/03/UANodeSet.xsd">
  <NamespaceUris><Uri>http://test</Uri></NamespaceUris>
  <UAVariable NodeId="ns=1;i=10" BrowseName="1:Speed" DataType="i=24" ValueRank="1" ArrayDimensions="3" AccessLevel="3" Historizing="true">
    <DisplayName>Speed</DisplayName>
  </UAVariable>
  <UAVariable NodeId="ns=1;i=11" BrowseName="1:Plain">
    <DisplayName>Plain</DisplayName>
  </UAVariable>
</UANodeSet>`

	im, s := newImporter(t)
	if _, err := im.ImportReader(strings.NewReader(doc), "vars.xml"); err != nil {
		t.Fatal(err)
	}

	n, ok := s.GetNode(ua.NewNumericNodeID(1, 10))
	if !ok {
		t.Fatal("missing Speed variable")
	}
	v := n.(*nodes.VariableNode)
	if v.ValueRank != 1 || len(v.ArrayDimensions) != 1 || v.ArrayDimensions[0] != 3 {
		t.Errorf("rank/dims = %d/%v", v.ValueRank, v.ArrayDimensions)
	}
	if v.AccessLevel != 3 || !v.Historizing {
		t.Errorf("access=%d historizing=%v", v.AccessLevel, v.Historizing)
	}

	plain, _ := s.GetNode(ua.NewNumericNodeID(1, 11))
	p := plain.(*nodes.VariableNode)
	if p.ValueRank != -1 {
		t.Errorf("default value rank = %d, want -1", p.ValueRank)
	}
	if p.DataType != ua.IDBaseDataType {
		t.Errorf("default data type = %s, want BaseDataType", p.DataType)
	}
}
