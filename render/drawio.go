package render

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/codeindex2937/binheap"
	"github.com/codeindex2937/binheap/drawio"
	"github.com/codeindex2937/binheap/html"
	"github.com/codeindex2937/binheap/toposort"
	"github.com/google/uuid"
	"github.com/iancoleman/strcase"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	nodeWidth   = 120
	rowHeight   = 18
	titleHeight = 20
	hGap        = 40
	vGap        = 60
)

type DrawioConfig struct {
	ExportPath     string
	Name           string
	CellId         string
	EntityStyle    map[string]string
	HeaderStyle    map[string]string
	TableStyle     map[string]string
	CellStyle      map[string]string
	LinkStyle      map[string]string
	SiblingStyle   map[string]string
	EdgeLabelStyle map[string]string
}

type position struct {
	x int
	y int
}

func GetDefaultDrawioConfig() DrawioConfig {
	return DrawioConfig{
		Name:   "Binomial Heap",
		CellId: uuid.NewString()[:8],
		EntityStyle: map[string]string{
			"verticalAlign":        "top",
			"align":                "left",
			"overflow":             "fill",
			"html":                 "1",
			"rounded":              "0",
			"shadow":               "0",
			"labelBackgroundColor": "none",
			"strokeWidth":          "1",
			"fontFamily":           "Verdana",
			"fontSize":             "12",
		},
		HeaderStyle: map[string]string{
			"box-sizing": "border-box",
			"width":      "100%",
			"background": "#e4e4e4",
			"padding":    "2px",
			"color":      "black",
			"text-align": "center",
		},
		TableStyle: map[string]string{
			"width":           "100%",
			"font-size":       "1em",
			"border-collapse": "collapse",
		},
		CellStyle: map[string]string{
			"border": "1px solid",
		},
		LinkStyle: map[string]string{
			"edgeStyle":      "orthogonalEdgeStyle",
			"rounded":        "0",
			"orthogonalLoop": "1",
			"jettySize":      "auto",
			"html":           "1",
			"exitX":          "0.5",
			"exitY":          "1",
			"entryX":         "0.5",
			"entryY":         "0",
		},
		SiblingStyle: map[string]string{
			"edgeStyle": "orthogonalEdgeStyle",
			"dashed":    "1",
			"html":      "1",
			"exitX":     "1",
			"exitY":     "0.5",
			"entryX":    "0",
			"entryY":    "0.5",
		},
		EdgeLabelStyle: map[string]string{
			"edgeLabel":     "",
			"html":          "1",
			"align":         "center",
			"verticalAlign": "middle",
			"resizable":     "0",
			"points":        "[]",
		},
	}
}

type cell[T any] struct {
	node  *binheap.Node[T]
	title string
	id    string
}

// GenerateDrawio lays the forest starting at root out as a draw.io diagram.
// Every node becomes a shape, child links are drawn solid and the root list
// dashed. When config.ExportPath already holds a diagram, shapes keep the
// geometry they had there.
func GenerateDrawio[T any](config DrawioConfig, root *binheap.Node[T], label Label[T]) (File, error) {
	cells, index := collect(config, root, label)

	g := toposort.NewGraph[int]()
	for i, c := range cells {
		if err := g.AddNode(i); err != nil {
			return File{}, err
		}
		if p := c.node.Parent(); p != nil {
			g.AddEdge(index[p], i)
		}
	}
	layers, err := g.Layers()
	if err != nil {
		return File{}, fmt.Errorf("layout: %w", err)
	}

	positionMap, width, height := getPositions(layers, len(cells))
	f := drawio.NewFile(strcase.ToKebab(config.Name), width, height)
	model := &f.Diagram.MxGraphModel

	for i, c := range cells {
		entity := getEntityBody(config, c.node, c.title)
		body, err := entity.Marshal()
		if err != nil {
			return File{}, err
		}
		pos := positionMap[i]
		shape := drawio.NewShape(c.id, float64(pos.x), float64(pos.y), float64(nodeWidth), float64(entityHeight()), config.EntityStyle)
		shape.Value = body
		model.AddCells(shape)
	}

	for i, c := range cells {
		if p := c.node.Parent(); p != nil {
			model.AddCells(drawio.NewLine(cells[index[p]].id, cells[i].id, config.LinkStyle))
		}
	}

	siblingStyle := map[string]string{}
	maps.Copy(siblingStyle, config.SiblingStyle)
	for r := root; r != nil && r.Sibling() != nil; r = r.Sibling() {
		next := r.Sibling()
		link := drawio.NewLine(cells[index[r]].id, cells[index[next]].id, siblingStyle)
		model.AddCells(link, link.NewEdgeLabel("B"+strconv.Itoa(next.Degree()), config.EdgeLabelStyle))
	}

	if len(config.ExportPath) > 0 {
		if err := mergePosition(config.ExportPath, f); err != nil {
			return File{}, err
		}
	}

	file := File{Path: config.ExportPath}
	file.Content, err = f.Marshal()
	if err != nil {
		return File{}, err
	}
	return file, nil
}

// collect lists the nodes of the forest in preorder. Titles repeat when
// values do, so the shape id carries the occurrence of the title.
func collect[T any](config DrawioConfig, root *binheap.Node[T], label Label[T]) ([]cell[T], map[*binheap.Node[T]]int) {
	prefix := strcase.ToSnake(config.Name)
	if len(config.CellId) > 0 {
		prefix += "-" + config.CellId
	}

	cells := []cell[T]{}
	index := map[*binheap.Node[T]]int{}
	var visit func(n *binheap.Node[T])
	visit = func(n *binheap.Node[T]) {
		for ; n != nil; n = n.Sibling() {
			index[n] = len(cells)
			cells = append(cells, cell[T]{
				node:  n,
				title: label.format(n.Value()),
				id:    fmt.Sprintf("%v-%v", prefix, len(cells)),
			})
			visit(n.Child())
		}
	}
	visit(root)
	return cells, index
}

func entityHeight() int {
	return titleHeight + 2*rowHeight
}

func getPositions(layers [][]int, count int) (map[int]position, int, int) {
	positionMap := make(map[int]position, count)
	if count == 0 {
		return positionMap, nodeWidth, entityHeight()
	}

	widths := []int{}
	for depth, layer := range layers {
		for i, key := range layer {
			positionMap[key] = position{
				x: i * (nodeWidth + hGap),
				y: depth * (entityHeight() + vGap),
			}
		}
		widths = append(widths, len(layer))
	}

	width := slices.Max(widths)*(nodeWidth+hGap) - hGap
	height := len(layers)*(entityHeight()+vGap) - vGap
	return positionMap, width, height
}

func getEntityBody[T any](config DrawioConfig, n *binheap.Node[T], title string) html.Entity {
	entity := html.Entity{}
	entity.Style = drawio.Join(map[string]string{
		"display":        "flex",
		"flex-direction": "column",
		"height":         "100%",
	}, ":")
	entity.Title.Body = title
	entity.Title.Style = drawio.Join(config.HeaderStyle, ":") + "flex:0;"
	entity.Table.Style = drawio.Join(config.TableStyle, ":") + "flex:1;"
	dataStyle := drawio.Join(config.CellStyle, ":")

	entity.AddRow(dataStyle, "degree", strconv.Itoa(n.Degree()))
	entity.AddRow(dataStyle, "size", strconv.Itoa(1<<n.Degree()))
	return entity
}

// mergePosition copies the geometry of shapes found in the diagram at path
// onto the matching shapes of f. Shapes match on their title and on the
// occurrence of that title in preorder.
func mergePosition(path string, f *drawio.MxFile) error {
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %v: %w", path, err)
	}

	src, err := drawio.Parse(content)
	if err != nil {
		return fmt.Errorf("merge %v: %w", path, err)
	}

	fileEntities, err := GetEntities(src.Diagram.MxGraphModel)
	if err != nil {
		return err
	}
	entities, err := GetEntities(f.Diagram.MxGraphModel)
	if err != nil {
		return err
	}
	for k, entity := range entities {
		fileEntity, ok := fileEntities[k]
		if !ok {
			continue
		}
		entity.Geometry = fileEntity.Geometry
	}
	return nil
}

// GetEntities indexes the node shapes of m by "title#occurrence".
func GetEntities(m drawio.MxGraphModel) (map[string]*drawio.Shape, error) {
	shapes := make(map[string]*drawio.Shape)
	seen := map[string]int{}

	for _, shape := range m.Shapes() {
		entity, err := html.Parse(shape.Value)
		if err != nil {
			return nil, fmt.Errorf("shape %v: %w", shape.Id, err)
		}

		title := entity.Title.Body
		shapes[fmt.Sprintf("%v#%v", title, seen[title])] = shape
		seen[title]++
	}

	return shapes, nil
}
