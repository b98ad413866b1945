// Package feature defines the declarative descriptors users attach to scene nodes.
//
// A Descriptor wraps exactly one Model. The model's Kind is the discriminant that
// selects the processor interpreting it; in YAML it is written as the "type" key:
//
//	features:
//	  - type: armature_link
//	    prop_bone: Armature/Hips
//	    bone_on_avatar: Hips
//	    mode: bone_merge
//	  - type: toggle
//	    name: Clothes/Hat
//	    saved: true
//	    state:
//	      actions:
//	        - type: object_toggle
//	          obj: Hat
//
// Paths inside a descriptor are relative to the node the descriptor is attached
// to, unless the field name says otherwise (e.g. bone_path_on_avatar).
// Descriptors are never mutated by the build.
package feature
