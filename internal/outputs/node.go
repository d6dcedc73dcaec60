// Package outputs walks a workflow outputs document and downloads every
// object it references, mirroring the output names rather than the original
// bucket paths.
package outputs

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind identifies the shape of a node in an outputs tree.
type Kind int

const (
	// KindNull is an optional output that was not produced.
	KindNull Kind = iota
	// KindString is a leaf locator.
	KindString
	// KindSeq is an ordered sequence of nodes.
	KindSeq
	// KindMap is a mapping from output name to node.
	KindMap
	// KindScalar is any other scalar (number, boolean); not downloadable.
	KindScalar
)

// Node is one value in a workflow outputs tree. It is populated once during
// decoding and never mutated afterwards.
type Node struct {
	Kind Kind
	Seq  []Node
	Map  map[string]Node
	Str  string
	// Raw keeps the original bytes of a KindScalar value for diagnostics.
	Raw json.RawMessage
}

func (n *Node) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty JSON value")
	}

	switch trimmed[0] {
	case 'n':
		*n = Node{Kind: KindNull}
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*n = Node{Kind: KindString, Str: s}
	case '[':
		var seq []Node
		if err := json.Unmarshal(trimmed, &seq); err != nil {
			return err
		}
		*n = Node{Kind: KindSeq, Seq: seq}
	case '{':
		var m map[string]Node
		if err := json.Unmarshal(trimmed, &m); err != nil {
			return err
		}
		*n = Node{Kind: KindMap, Map: m}
	default:
		*n = Node{Kind: KindScalar, Raw: append(json.RawMessage(nil), trimmed...)}
	}
	return nil
}

// Document is the top-level outputs file shape produced by the workflow
// engine: output names are dotted, e.g. "workflow.task.output_name".
type Document struct {
	Outputs map[string]Node `json:"outputs"`
}
