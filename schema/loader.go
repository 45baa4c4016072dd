package schema

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// autoValue marks a member whose value was omitted in the source document
// and will be assigned by applyDefaults.
const autoValue = math.MinInt64

// enumFile is the YAML document shape for declarative enum-set definitions:
//
//	enums:
//	  - name: access
//	    flags: true
//	    members:
//	      - None: 0
//	      - Read
//	      - Write
//	  - name: color
//	    members: [red, green, blue]
type enumFile struct {
	Enums []enumDef `yaml:"enums"`
}

type enumDef struct {
	Name    string     `yaml:"name"`
	Flags   bool       `yaml:"flags"`
	Members memberList `yaml:"members"`
}

type memberList []EnumMember

// LoadEnumFile loads and parses a YAML enum-set file from the given path.
func LoadEnumFile(path string) (map[string]*EnumSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read enum file %s: %w", path, err)
	}

	return ParseEnums(data)
}

// ParseEnums parses YAML data into named enum sets. Omitted member values
// are auto-assigned: sequential from 0 for plain enums, doubling powers of
// two for flag sets.
func ParseEnums(data []byte) (map[string]*EnumSet, error) {
	var ef enumFile

	err := yaml.Unmarshal(data, &ef)
	if err != nil {
		return nil, fmt.Errorf("failed to parse enum YAML: %w", err)
	}

	sets := make(map[string]*EnumSet, len(ef.Enums))

	for i := range ef.Enums {
		def := &ef.Enums[i]
		if def.Name == "" {
			return nil, errors.New("enum set without a name")
		}

		if len(def.Members) == 0 {
			return nil, fmt.Errorf("enum set %q has no members", def.Name)
		}

		if _, dup := sets[def.Name]; dup {
			return nil, fmt.Errorf("duplicate enum set %q", def.Name)
		}

		applyDefaults(def)

		sets[def.Name] = &EnumSet{
			Name:    def.Name,
			Flags:   def.Flags,
			Members: def.Members,
		}
	}

	return sets, nil
}

// applyDefaults assigns values to auto-numbered members. The counter tracks
// the last assigned value: plus one for plain enums, next power of two for
// flag sets (an explicit zero member such as None does not stall it).
func applyDefaults(def *enumDef) {
	next := int64(0)
	if def.Flags {
		next = 1
	}

	for i := range def.Members {
		m := &def.Members[i]
		if m.Value == autoValue {
			m.Value = next
		}

		if def.Flags {
			next = m.Value * 2
			if next < 1 {
				next = 1
			}
		} else {
			next = m.Value + 1
		}
	}
}

// UnmarshalYAML implements custom YAML unmarshaling for memberList.
// Accepts either a sequence whose items are plain names or single-pair
// {Name: value} maps, or a mapping of names to values (document order is
// preserved either way).
func (m *memberList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		members := make([]EnumMember, 0, len(node.Content))

		for _, item := range node.Content {
			switch item.Kind {
			case yaml.ScalarNode:
				// Plain name: value assigned later
				var name string

				err := item.Decode(&name)
				if err != nil {
					return err
				}

				members = append(members, EnumMember{Name: name, Value: autoValue})

			case yaml.MappingNode:
				member, err := parseMemberPair(item)
				if err != nil {
					return err
				}

				members = append(members, member)

			default:
				return fmt.Errorf("expected string or map in members, got %v", item.Kind)
			}
		}

		*m = members

		return nil

	case yaml.MappingNode:
		members := make([]EnumMember, 0, len(node.Content)/2)

		for i := 0; i+1 < len(node.Content); i += 2 {
			var (
				name  string
				value int64
			)

			err := node.Content[i].Decode(&name)
			if err != nil {
				return fmt.Errorf("invalid member name: %w", err)
			}

			err = node.Content[i+1].Decode(&value)
			if err != nil {
				return fmt.Errorf("invalid value for member %q: %w", name, err)
			}

			members = append(members, EnumMember{Name: name, Value: value})
		}

		*m = members

		return nil

	default:
		return fmt.Errorf("expected sequence or mapping for members, got %v", node.Kind)
	}
}

// parseMemberPair parses a YAML mapping node like {Read: 1} into a member.
func parseMemberPair(node *yaml.Node) (EnumMember, error) {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return EnumMember{}, errors.New("expected single key-value map like {Read: 1}")
	}

	var (
		name  string
		value int64
	)

	err := node.Content[0].Decode(&name)
	if err != nil {
		return EnumMember{}, fmt.Errorf("invalid member name: %w", err)
	}

	err = node.Content[1].Decode(&value)
	if err != nil {
		return EnumMember{}, fmt.Errorf("invalid value for member %q: %w", name, err)
	}

	return EnumMember{Name: name, Value: value}, nil
}
