// Package tapn compiles attack trees into TAPAAL timed-arc Petri nets and
// serializes them as PNML XML.
package tapn

import (
	"encoding/xml"
	"fmt"
)

// Document is the root PNML element of one net.
type Document struct {
	XMLName xml.Name `xml:"pnml"`
	Xmlns   string   `xml:"xmlns,attr"`
	Net     Net      `xml:"net"`
}

// Net holds a single page of places, transitions and arcs.
type Net struct {
	ID   string `xml:"id,attr"`
	Type string `xml:"type,attr"`
	Name Name   `xml:"name"`
	Page Page   `xml:"page"`
}

// Name wraps a display label.
type Name struct {
	Text string `xml:"text"`
}

// Page groups net elements. TAPAAL reads exactly one page.
type Page struct {
	ID          string       `xml:"id,attr"`
	Places      []Place      `xml:"place"`
	Transitions []Transition `xml:"transition"`
	Arcs        []Arc        `xml:"arc"`
}

// Place is a token store with an initial marking and an int type.
type Place struct {
	ID             string    `xml:"id,attr"`
	Graphics       Graphics  `xml:"graphics"`
	Name           Name      `xml:"name"`
	InitialMarking Marking   `xml:"initialMarking"`
	Type           PlaceType `xml:"type"`
}

// Graphics positions an element on the TAPAAL canvas.
type Graphics struct {
	Position Position `xml:"position"`
}

// Position is a canvas coordinate.
type Position struct {
	X int `xml:"x,attr"`
	Y int `xml:"y,attr"`
}

// Marking is an initial token count.
type Marking struct {
	Text int `xml:"text"`
}

// PlaceType names the token type of a place.
type PlaceType struct {
	Text string `xml:"text"`
}

// Transition fires within its time guard interval.
type Transition struct {
	ID        string    `xml:"id,attr"`
	Graphics  Graphics  `xml:"graphics"`
	Name      Name      `xml:"name"`
	TimeGuard TimeGuard `xml:"timeguard"`
}

// TimeGuard bounds when a transition may fire.
type TimeGuard struct {
	Interval Interval `xml:"interval"`
}

// Interval is a closed firing window in hours.
type Interval struct {
	Start int `xml:"start,attr"`
	End   int `xml:"end,attr"`
}

// Arc connects a place and a transition with a token weight.
type Arc struct {
	ID          string      `xml:"id,attr"`
	Source      string      `xml:"source,attr"`
	Target      string      `xml:"target,attr"`
	Inscription Inscription `xml:"inscription"`
}

// Inscription is an arc weight.
type Inscription struct {
	Text int `xml:"text"`
}

// XML serializes the document with a declaration header, two-space
// indentation and a trailing newline, matching what TAPAAL expects to open.
func (d *Document) XML() (string, error) {
	data, err := xml.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal PNML: %w", err)
	}
	return xml.Header + string(data) + "\n", nil
}

// PlaceIDs returns the set of place IDs in the document.
func (d *Document) PlaceIDs() map[string]bool {
	ids := make(map[string]bool, len(d.Net.Page.Places))
	for _, p := range d.Net.Page.Places {
		ids[p.ID] = true
	}
	return ids
}
