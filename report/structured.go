package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/edom/domset"
	"github.com/katalvlaran/edom/eternal"
)

// Document is the machine-readable form of a search. Vertex ids are 1-based
// to match the instance files.
type Document struct {
	RunID       string       `yaml:"run_id" json:"run_id"`
	Instance    string       `yaml:"instance" json:"instance"`
	Vertices    int          `yaml:"vertices" json:"vertices"`
	Edges       int          `yaml:"edges" json:"edges"`
	Status      string       `yaml:"status" json:"status"`
	K           *int         `yaml:"k,omitempty" json:"k,omitempty"`
	SafeSets    [][]int      `yaml:"safe_sets,omitempty" json:"safe_sets,omitempty"`
	Levels      []LevelDoc   `yaml:"levels" json:"levels"`
	Transitions []Transition `yaml:"transitions,omitempty" json:"transitions,omitempty"`
	ElapsedMS   int64        `yaml:"elapsed_ms" json:"elapsed_ms"`
}

// LevelDoc summarizes one k.
type LevelDoc struct {
	K              int   `yaml:"k" json:"k"`
	DominatingSets int   `yaml:"dominating_sets" json:"dominating_sets"`
	Checks         int64 `yaml:"transition_checks" json:"transition_checks"`
	Edges          int   `yaml:"configuration_edges" json:"configuration_edges"`
	Passes         int   `yaml:"passes" json:"passes"`
	Safe           int   `yaml:"safe" json:"safe"`
	ElapsedMS      int64 `yaml:"elapsed_ms" json:"elapsed_ms"`
}

// Transition lists guard moves between two safe configurations.
type Transition struct {
	From  []int    `yaml:"from" json:"from"`
	To    []int    `yaml:"to" json:"to"`
	Moves [][2]int `yaml:"moves" json:"moves"` // [from, to] per guard
}

// NewDocument converts res.
func NewDocument(instance string, res *eternal.Result) Document {
	doc := Document{
		RunID:     res.RunID,
		Instance:  instance,
		Vertices:  res.Vertices,
		Edges:     res.Edges,
		Status:    res.Status.String(),
		Levels:    make([]LevelDoc, 0, len(res.Levels)),
		ElapsedMS: res.Elapsed.Milliseconds(),
	}
	if res.Status == eternal.StatusFound {
		k := res.K
		doc.K = &k
		doc.SafeSets = oneBased(res.SafeSets)
	}
	for _, l := range res.Levels {
		doc.Levels = append(doc.Levels, LevelDoc{
			K:              l.K,
			DominatingSets: l.DominatingSets,
			Checks:         l.Pairs,
			Edges:          l.Edges,
			Passes:         l.Passes,
			Safe:           l.Safe,
			ElapsedMS:      l.Total().Milliseconds(),
		})
	}
	for _, tr := range res.Transitions {
		t := Transition{From: tr.From.OneBased(), To: tr.To.OneBased()}
		for _, m := range tr.Moves {
			t.Moves = append(t.Moves, [2]int{m.From + 1, m.To + 1})
		}
		doc.Transitions = append(doc.Transitions, t)
	}

	return doc
}

func oneBased(sets []domset.Set) [][]int {
	out := make([][]int, len(sets))
	for i, s := range sets {
		out[i] = s.OneBased()
	}

	return out
}

// WriteYAML encodes doc as a YAML document.
func WriteYAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("report: yaml: %w", err)
	}

	return enc.Close()
}

// WriteJSON encodes doc as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("report: json: %w", err)
	}

	return nil
}

// Write renders res in format: "text", "yaml" or "json".
func Write(w io.Writer, format, instance string, res *eternal.Result) error {
	switch format {
	case "text", "":
		return Text(w, instance, res)
	case "yaml":
		return WriteYAML(w, NewDocument(instance, res))
	case "json":
		return WriteJSON(w, NewDocument(instance, res))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
