package model

import "fmt"

type ParamKind string

const PARAM_TEXT ParamKind = "text"
const PARAM_SELECT ParamKind = "select"
const PARAM_NUMBER ParamKind = "number"

// ParamSpec is the schema of a single workflow step parameter. The Kind tag
// decides which of the optional fields are meaningful: a select carries
// either static Options or a Source endpoint whose response is plucked with
// a jsonpath expression; text and number carry neither.
type ParamSpec struct {
	Kind     ParamKind `json:"kind"`
	Label    string    `json:"label"`
	Required bool      `json:"required"`
	Options  []string  `json:"options,omitempty"`
	Source   string    `json:"source,omitempty"`
	Pluck    string    `json:"pluck,omitempty"`
}

func (p ParamSpec) Validate() error {
	switch p.Kind {
	case PARAM_TEXT, PARAM_NUMBER:
		if len(p.Options) > 0 || p.Source != "" {
			return fmt.Errorf("param %s: options and source are only valid for select", p.Label)
		}
	case PARAM_SELECT:
		if len(p.Options) > 0 && p.Source != "" {
			return fmt.Errorf("param %s: static options and dynamic source are exclusive", p.Label)
		}
		if len(p.Options) == 0 && p.Source == "" {
			return fmt.Errorf("param %s: select needs options or a source", p.Label)
		}
	default:
		return fmt.Errorf("unknown param kind %s", p.Kind)
	}
	return nil
}

// Dynamic reports whether the options must be fetched from the backend
// when the edit form opens.
func (p ParamSpec) Dynamic() bool {
	return p.Kind == PARAM_SELECT && p.Source != ""
}
