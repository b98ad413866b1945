// Package anim provides the three correlated build artifacts and the builders
// every feature uses to extend them.
//
// Artifacts:
//   - Controller: layers of states with transitions; a state may play a Clip and
//     carries the write-defaults flag selecting its playback convention
//   - Menu: a tree of controls, each a submenu or bound to a parameter
//   - ParamTable: name -> type, default, saved and synced flags
//
// Builders:
//   - ControllerManager: collision-free layers, states, transitions, clips,
//     the canonical noop clip and parameter declaration
//   - ParamManager: table-driven declaration that rejects conflicting types
//   - MenuManager: path-addressed controls and merging of existing menus
//
// Generated layers are named "[VF<n>] <name>" and generated parameters
// "VF<n>_<name>", where n is the identity number of the owning feature. Those
// prefixes are how stale output of an earlier build is recognised and purged.
package anim
