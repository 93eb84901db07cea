package html

import (
	"encoding/xml"
	"fmt"
)

// Entity is the html body of a draw.io shape: a title bar over a table.
type Entity struct {
	XMLName xml.Name `xml:"div"`
	Style   string   `xml:"style,attr"`
	Title   Title    `xml:"div"`
	Table   Table    `xml:"table"`
}

type Title struct {
	XMLName xml.Name `xml:"div"`
	Style   string   `xml:"style,attr"`
	Body    string   `xml:",chardata"`
}

type Table struct {
	XMLName xml.Name   `xml:"table"`
	Style   string     `xml:"style,attr"`
	Row     []TableRow `xml:"tr"`
}

type TableRow struct {
	XMLName xml.Name    `xml:"tr"`
	Data    []TableData `xml:"td"`
}

type TableData struct {
	XMLName xml.Name `xml:"td"`
	Style   string   `xml:"style,attr"`
	Data    string   `xml:",chardata"`
}

// AddRow appends a row of cells sharing style.
func (e *Entity) AddRow(style string, cells ...string) {
	row := TableRow{}
	for _, c := range cells {
		row.Data = append(row.Data, TableData{Style: style, Data: c})
	}
	e.Table.Row = append(e.Table.Row, row)
}

func (e Entity) Marshal() (string, error) {
	serialized, err := xml.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("marshal entity %q: %w", e.Title.Body, err)
	}
	return string(serialized), nil
}

func Parse(body string) (Entity, error) {
	e := Entity{}
	if err := xml.Unmarshal([]byte(body), &e); err != nil {
		return e, fmt.Errorf("parse entity: %w", err)
	}
	return e, nil
}
