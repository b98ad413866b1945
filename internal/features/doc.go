// Package features holds the processor of every descriptor kind and the
// registry the builder dispatches through.
//
// Each processor turns one descriptor into prioritized build actions. Problems
// with a single feature are reported as warnings and the feature is skipped;
// errors returned from an action abort the build.
package features
