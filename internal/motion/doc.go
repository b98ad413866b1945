// Package motion writes and reads clip curves in terms of scene nodes.
//
// A Builder knows the scene root, so every binding it produces carries the
// root-relative path of the node it targets. It also answers the inverse
// question: what value does a binding have when nothing animates it. The
// defaults harmonizer relies on that to build its resting-values clip.
package motion
