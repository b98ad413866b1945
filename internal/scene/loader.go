package scene

import (
	"errors"
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// CurrentVersion is the scene format written by Marshal.
const CurrentVersion = "1.0.0"

// SupportedVersions is the range of scene formats Parse accepts.
const SupportedVersions = ">=1.0.0, <2.0.0"

var supported = mustConstraint(SupportedVersions)

func mustConstraint(s string) *semver.Constraints {
	c, err := semver.NewConstraint(s)
	if err != nil {
		panic(err)
	}

	return c
}

// LoadFile loads and parses a YAML scene file from the given path.
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Parse parses YAML data into a Scene.
func Parse(data []byte) (*Scene, error) {
	var doc sceneDoc

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse scene YAML: %w", err)
	}

	applyDefaults(&doc)

	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}

	if doc.Root == nil {
		return nil, errors.New("scene has no root node")
	}

	root := buildNode(doc.Root)
	r := &refResolver{root: root}
	resolveRefs(root, doc.Root, r)

	if err := errors.Join(r.errs...); err != nil {
		return nil, err
	}

	s := &Scene{
		Version:   doc.Version,
		Root:      root,
		Humanoid:  doc.Humanoid,
		Artifacts: doc.Artifacts,
	}

	for bone, path := range s.Humanoid {
		if root.FindPath(path) == nil {
			return nil, fmt.Errorf("humanoid bone %s maps to missing node %q", bone, path)
		}
	}

	return s, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(doc *sceneDoc) {
	if doc.Version == "" {
		doc.Version = CurrentVersion
	}

	if doc.Humanoid == nil {
		doc.Humanoid = map[string]string{}
	}
}

func checkVersion(v string) error {
	ver, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("invalid scene version %q: %w", v, err)
	}

	if !supported.Check(ver) {
		return fmt.Errorf("scene version %s is not supported (want %s)", ver, SupportedVersions)
	}

	return nil
}

// Marshal serializes a Scene to YAML.
func Marshal(s *Scene) ([]byte, error) {
	doc := sceneDoc{
		Version:   s.Version,
		Humanoid:  s.Humanoid,
		Root:      nodeToDoc(s.Root),
		Artifacts: s.Artifacts,
	}

	return yaml.Marshal(&doc)
}

// WriteFile writes a Scene to the given path.
func WriteFile(s *Scene, path string) error {
	data, err := Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write scene file %s: %w", path, err)
	}

	return nil
}
