package feature

import (
	"errors"
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

// Model is the kind-specific configuration of a descriptor.
type Model interface {
	Kind() Kind
}

// Descriptor is a feature attached to a scene node.
type Descriptor struct {
	Model Model
}

// New wraps a model in a descriptor.
func New(m Model) Descriptor {
	return Descriptor{Model: m}
}

// Kind returns the model's kind, or "" for an empty descriptor.
func (d Descriptor) Kind() Kind {
	if d.Model == nil {
		return ""
	}

	return d.Model.Kind()
}

// UnmarshalYAML decodes the "type" discriminant and then the matching model.
func (d *Descriptor) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: feature must be a mapping", node.Line)
	}

	var head struct {
		Type Kind `yaml:"type"`
	}

	if err := node.Decode(&head); err != nil {
		return err
	}

	if head.Type == "" {
		return fmt.Errorf("line %d: feature is missing its type", node.Line)
	}

	target := newModel(head.Type)
	if target == nil {
		return fmt.Errorf("line %d: unknown feature type %q", node.Line, head.Type)
	}

	if err := node.Decode(target); err != nil {
		return fmt.Errorf("line %d: decoding %s: %w", node.Line, head.Type, err)
	}

	model, ok := reflect.ValueOf(target).Elem().Interface().(Model)
	if !ok {
		return fmt.Errorf("feature type %q has no model", head.Type)
	}

	d.Model = model

	return nil
}

// MarshalYAML encodes the model with its "type" key first.
func (d Descriptor) MarshalYAML() (any, error) {
	if d.Model == nil {
		return nil, errors.New("cannot marshal empty feature")
	}

	var body yaml.Node
	if err := body.Encode(d.Model); err != nil {
		return nil, err
	}

	if body.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("feature %s did not encode as a mapping", d.Kind())
	}

	typeKey := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "type"}
	typeVal := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(d.Kind())}
	body.Content = append([]*yaml.Node{typeKey, typeVal}, body.Content...)

	return &body, nil
}
