package mapping

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// --- StringOrArray YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrArray.
// Outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// --- ParamList YAML methods ---

// UnmarshalYAML implements yaml.Unmarshaler for ParamList.
func (p *ParamList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: expected a list of parameters", node.Line)
	}

	result := make(ParamList, 0, len(node.Content))

	for _, item := range node.Content {
		param, err := parseParam(item)
		if err != nil {
			return fmt.Errorf("line %d: %w", item.Line, err)
		}

		result = append(result, param)
	}

	*p = result

	return nil
}

func parseParam(node *yaml.Node) (ParamDef, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return variadic(ParamDef{Type: node.Value}), nil

	case yaml.MappingNode:
		// Explicit object definition when a "type" key is present.
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == "type" {
				var def ParamDef
				if err := node.Decode(&def); err != nil {
					return ParamDef{}, err
				}

				return variadic(def), nil
			}
		}

		// Fallback to key-value definition: { paramName: paramType }
		if len(node.Content) != 2 || node.Content[1].Kind != yaml.ScalarNode {
			return ParamDef{}, errors.New("invalid parameter definition, expected {name: type} or {name: ..., type: ...}")
		}

		return variadic(ParamDef{Name: node.Content[0].Value, Type: node.Content[1].Value}), nil

	default:
		return ParamDef{}, errors.New("expected string or map for parameter definition")
	}
}

// variadic moves a "..." type prefix into the Variadic flag.
func variadic(def ParamDef) ParamDef {
	def.Type = strings.TrimSpace(def.Type)
	if rest, ok := strings.CutPrefix(def.Type, "..."); ok {
		def.Type = strings.TrimSpace(rest)
		def.Variadic = true
	}

	return def
}
