package server

import (
	"encoding/json"

	"github.com/tether-dev/tether/pkg/vdom"
)

// frameType discriminates messages sent to the client.
type frameType string

const (
	// frameTree carries the full rendered tree (first render, resync).
	frameTree frameType = "tree"

	// framePatches carries incremental patches against the last tree.
	framePatches frameType = "patches"
)

// frame is a single message pushed to the client.
type frame struct {
	Type    frameType    `json:"type"`
	Seq     uint64       `json:"seq"`
	Tree    *vdom.VNode  `json:"tree,omitempty"`
	Patches []vdom.Patch `json:"patches,omitempty"`
}

// encode marshals the frame for the wire.
func (f frame) encode() ([]byte, error) {
	return json.Marshal(f)
}
