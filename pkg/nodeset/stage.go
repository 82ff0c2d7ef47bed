package nodeset

// Stage identifies a step of the import pipeline. Each document runs the
// parse and create stages in order; Finalize closes the whole session.
type Stage uint8

const (
	StageIdle Stage = iota
	StageParseNamespaces
	StageParseAliases
	StageCreateNodes
	StageCreateReferences
	StageFinalize
	StageDone
	StageFailed
)

// String returns the snake_case stage name used in logs and metrics.
func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageParseNamespaces:
		return "parse_namespaces"
	case StageParseAliases:
		return "parse_aliases"
	case StageCreateNodes:
		return "create_nodes"
	case StageCreateReferences:
		return "create_references"
	case StageFinalize:
		return "finalize"
	case StageDone:
		return "done"
	case StageFailed:
		return "failed"
	default:
		return "unknown"
	}
}
