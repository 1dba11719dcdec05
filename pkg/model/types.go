package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/yumyai/netalign/pkg/ensembl"
)

type Species int

const (
	Species1 Species = 1
	Species2 Species = 2
)

func (s Species) Valid() bool {
	return s == Species1 || s == Species2
}

// Tag is the class used on protein nodes and interaction edges ("species1").
func (s Species) Tag() string {
	return fmt.Sprintf("species%d", int(s))
}

// Short is the class used on the species containers ("s1").
func (s Species) Short() string {
	return fmt.Sprintf("s%d", int(s))
}

// ContainerID is the id of the species container node.
func (s Species) ContainerID() string {
	return s.Tag()
}

type Kind int

const (
	KindContainer Kind = iota
	KindGroup
	KindProtein
	KindEdge
)

// Classes is the ordered set of class tags of an element.
type Classes []string

func (c Classes) String() string {
	return strings.Join(c, " ")
}

func (c Classes) Has(tag string) bool {
	for _, t := range c {
		if t == tag {
			return true
		}
	}
	return false
}

// Element is one node or edge of a rendered graph. Which fields are
// meaningful depends on Kind.
type Element struct {
	Kind Kind

	// nodes
	ID     string
	Name   string
	Parent string

	// protein nodes
	GeneID  string
	Species Species
	Xrefs   ensembl.Bundle

	// edges
	Source string
	Target string
	Weight int

	Classes Classes
}

func (e *Element) IsNode() bool {
	return e.Kind != KindEdge
}

func (e *Element) IsProtein() bool {
	return e.Kind == KindProtein
}

func (e *Element) IsEdge() bool {
	return e.Kind == KindEdge
}

func (e *Element) Clone() *Element {
	c := *e
	c.Classes = append(Classes{}, e.Classes...)
	if e.Kind == KindProtein {
		c.Xrefs = e.Xrefs.Clone()
	}
	return &c
}

type containerData struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type proteinData struct {
	ID        string              `json:"id"`
	GeneID    string              `json:"e_id"`
	Name      string              `json:"name"`
	Parent    string              `json:"parent,omitempty"`
	TID       string              `json:"t_id"`
	PID       string              `json:"p_id"`
	NCBI      string              `json:"ncbi"`
	SwissProt string              `json:"swissprot"`
	TrEMBL    string              `json:"trembl"`
	RefSeq    string              `json:"refseq"`
	Xrefs     map[string][]string `json:"xrefs"`
}

type edgeData struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Weight int    `json:"weight,omitempty"`
}

type wireElement struct {
	Data    any    `json:"data"`
	Classes string `json:"classes"`
}

func (e *Element) MarshalJSON() ([]byte, error) {
	var data any
	switch e.Kind {
	case KindContainer, KindGroup:
		data = containerData{ID: e.ID, Name: e.Name}
	case KindProtein:
		data = proteinData{
			ID:        e.ID,
			GeneID:    e.GeneID,
			Name:      e.Name,
			Parent:    e.Parent,
			TID:       e.Xrefs.First(ensembl.KindTranscript),
			PID:       e.Xrefs.First(ensembl.KindProtein),
			NCBI:      e.Xrefs.First(ensembl.KindNCBI),
			SwissProt: e.Xrefs.First(ensembl.KindSwissProt),
			TrEMBL:    e.Xrefs.First(ensembl.KindTrEMBL),
			RefSeq:    e.Xrefs.First(ensembl.KindRefSeq),
			Xrefs:     e.Xrefs.Map(),
		}
	case KindEdge:
		data = edgeData{Source: e.Source, Target: e.Target, Weight: e.Weight}
	default:
		return nil, fmt.Errorf("unknown element kind %d", e.Kind)
	}
	return json.Marshal(wireElement{Data: data, Classes: e.Classes.String()})
}

// Graph is an ordered list of elements. Order is render order.
type Graph []*Element

func (g Graph) Clone() Graph {
	out := make(Graph, len(g))
	for i, e := range g {
		out[i] = e.Clone()
	}
	return out
}

// Proteins returns the protein nodes keyed by gene id.
func (g Graph) Proteins() map[string]*Element {
	m := make(map[string]*Element)
	for _, e := range g {
		if e.IsProtein() {
			m[e.GeneID] = e
		}
	}
	return m
}

// Members maps each protein's gene id to its species.
func (g Graph) Members() map[string]Species {
	m := make(map[string]Species)
	for _, e := range g {
		if e.IsProtein() {
			m[e.GeneID] = e.Species
		}
	}
	return m
}

func (g Graph) Edges() Graph {
	var out Graph
	for _, e := range g {
		if e.IsEdge() {
			out = append(out, e)
		}
	}
	return out
}

// ByClasses orders elements by their class string. Ties keep input order.
func ByClasses(a, b *Element) bool {
	return a.Classes.String() < b.Classes.String()
}

// SortByClasses stable-sorts g in place by class string.
func (g Graph) SortByClasses() {
	sort.SliceStable(g, func(i, j int) bool {
		return ByClasses(g[i], g[j])
	})
}

// IsSortedByClasses reports whether class strings never decrease.
func (g Graph) IsSortedByClasses() bool {
	for i := 1; i < len(g); i++ {
		if ByClasses(g[i], g[i-1]) {
			return false
		}
	}
	return true
}
