package puzzleio

import "encoding/json"

// document is the on-disk shape of a Puzzle file.
type document struct {
	Grid    gridDoc     `json:"grid"`
	Cells   []cellDoc   `json:"cells"`
	Bundles []bundleDoc `json:"bundles"`
}

type gridDoc struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	Type     int `json:"type"`
	MaxPorts int `json:"max_ports"`
}

// cellDoc mirrors one board cell. BundleID/FigureID are pointers so an
// absent key unmarshals to nil rather than the JSON zero value 0: a
// missing tag means "untagged" (board.EmptyTag, -1), which is not the
// same thing as a present tag whose value happens to be 0.
type cellDoc struct {
	ID       int   `json:"id"`
	X        int   `json:"x"`
	Y        int   `json:"y"`
	BundleID *int  `json:"bundle_id,omitempty"`
	FigureID *int  `json:"figure_id,omitempty"`
	Ports    []int `json:"ports"`
}

// UnmarshalJSON accepts a legacy "neighbors" key in place of "ports", for
// files written before the field was renamed. Both keys land on the same
// Ports field; ports wins if a document somehow carries both.
func (c *cellDoc) UnmarshalJSON(data []byte) error {
	type alias struct {
		ID        int   `json:"id"`
		X         int   `json:"x"`
		Y         int   `json:"y"`
		BundleID  *int  `json:"bundle_id"`
		FigureID  *int  `json:"figure_id"`
		Ports     []int `json:"ports"`
		Neighbors []int `json:"neighbors"`
	}
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	c.ID, c.X, c.Y = a.ID, a.X, a.Y
	c.BundleID, c.FigureID = a.BundleID, a.FigureID
	if a.Ports != nil {
		c.Ports = a.Ports
	} else {
		c.Ports = a.Neighbors
	}
	return nil
}

type bundleDoc struct {
	ID     int        `json:"id"`
	Color  [3]uint8   `json:"color"`
	Area   int        `json:"area"`
	Shapes []shapeDoc `json:"shapes"`
}

type shapeDoc struct {
	Name     string            `json:"name"`
	Size     int               `json:"size"`
	MaxPorts int               `json:"max_ports"`
	Topology []topologyNodeDoc `json:"topology"`
}

// topologyNodeDoc is one shape-local node's port array, in node-id order.
// A shape's topology is restored by first adding size nodes in order,
// then replaying each node's ports in turn.
type topologyNodeDoc struct {
	ID    int   `json:"id"`
	Ports []int `json:"ports"`
}
