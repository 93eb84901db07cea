package drawio

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	host    = "Electron"
	version = "21.7.5"
)

// NewFile returns an empty diagram with a single page named name. The first
// two cells are the layer cells every draw.io page carries.
func NewFile(name string, width, height int) *MxFile {
	return &MxFile{
		Host:     host,
		Modified: time.Now(),
		Agent:    "binheap/" + version,
		Etag:     RandId(),
		Version:  version,
		Type:     "device",
		Diagram: Diagram{
			Name: name,
			Id:   uuid.NewString(),
			MxGraphModel: MxGraphModel{
				MxGraphModelBase: MxGraphModelBase{
					Dx:         width / 2,
					Dy:         height / 2,
					Grid:       1,
					GridSize:   10,
					Guides:     1,
					Tooltips:   1,
					Connect:    1,
					Arrows:     1,
					Fold:       1,
					Page:       1,
					PageScale:  1,
					PageWidth:  width,
					PageHeight: height,
					Background: "none",
				},
				Cells: []MxCell{
					&Shape{MxCellBase: MxCellBase{Id: "0"}},
					&Shape{MxCellBase: MxCellBase{Id: "1", Parent: "0"}},
				},
			},
		},
	}
}

// Layer returns the default layer cell new cells are attached to.
func (f *MxFile) Layer() MxCell {
	return f.Diagram.MxGraphModel.Cells[1]
}

func (f *MxFile) Marshal() ([]byte, error) {
	content, err := xml.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal diagram: %w", err)
	}
	return content, nil
}

// Parse decodes a diagram previously produced by Marshal or by draw.io.
func Parse(content []byte) (*MxFile, error) {
	f := &MxFile{}
	if err := xml.Unmarshal(content, f); err != nil {
		return nil, fmt.Errorf("parse diagram: %w", err)
	}
	return f, nil
}

func NewShape(id string, x, y, width, height float64, style map[string]string) *Shape {
	return &Shape{
		MxCellBase: MxCellBase{
			Id:     id,
			Vertex: "1",
			Style:  Join(style, "="),
			Geometry: &Geometry{
				X:      formatFloat(x),
				Y:      formatFloat(y),
				Width:  formatFloat(width),
				Height: formatFloat(height),
				As:     "geometry",
			},
		},
	}
}

func NewLine(sourceId, targetId string, style map[string]string) *Line {
	return &Line{
		MxCellBase: MxCellBase{
			Id:    RandId(),
			Style: Join(style, "="),
			Geometry: &Geometry{
				Relative: "1",
				As:       "geometry",
			},
		},
		Edge:   "1",
		Source: sourceId,
		Target: targetId,
	}
}

// NewEdgeLabel returns a label cell placed at the middle of the line.
func (s Line) NewEdgeLabel(value string, style map[string]string) *Label {
	return &Label{
		MxCellBase: MxCellBase{
			Id:     s.Id + "-label",
			Parent: s.Id,
			Vertex: "1",
			Value:  value,
			Style:  Join(style, "="),
			Geometry: &Geometry{
				X:        "0",
				Y:        "0",
				Relative: "1",
				As:       "geometry",
				Point:    &Point{As: "offset"},
			},
		},
		Connectable: "0",
	}
}

func RandId() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Join renders a style map as "k<assign>v;" pairs in key order. Keys with an
// empty value are written bare.
func Join(style map[string]string, assignChar string) string {
	keys := maps.Keys(style)
	slices.Sort(keys)

	sb := strings.Builder{}
	for _, k := range keys {
		if v := style[k]; len(v) > 0 {
			sb.WriteString(fmt.Sprintf("%v%v%v;", k, assignChar, v))
		} else {
			sb.WriteString(fmt.Sprintf("%v;", k))
		}
	}
	return sb.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
