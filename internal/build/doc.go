// Package build runs one compilation of a scene's feature descriptors.
//
// A Builder clones the input scene, stands up working copies of its
// controller, menu and parameter table, and creates one Feature per
// descriptor found in the tree. Each Feature is handed to the Processor
// factory registered for its kind, and the Actions the processor returns are
// queued by (priority, insertion order). Actions run one at a time against a
// shared Session; an action may add further descriptors to its own node, whose
// actions join the same queue.
//
// When the queue is empty the defaults harmonizer runs, authoring-only content
// is stripped, the artifacts are validated and written to the staging
// directory, and the built clone is returned. Any fatal problem aborts the
// build and deletes the staging output; the input scene is never modified.
package build
