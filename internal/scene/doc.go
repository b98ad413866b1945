// Package scene provides the in-memory scene graph that features are attached to.
//
// A Scene owns a tree of named Nodes. Nodes carry a local transform and optional
// components (renderer, physbone, contact, parent constraint) whose references to
// other nodes are plain pointers inside the same tree. Paths are the names of the
// nodes below the scene root joined with "/", the same form used by clip bindings.
//
// Scenes are loaded from and saved to YAML. Node references inside components are
// stored as root-relative paths in the file and resolved after the whole tree is read.
package scene
